// Package kv implementa los repositorios de dominio sobre el puerto
// storage.Store: cada colección vive entera bajo una clave y se accede
// con el patrón leer-todo / mutar / escribir-todo. Un valor ausente o
// corrupto degrada al fallback (colección vacía), nunca a un error de parseo.
package kv

import (
	"context"

	"peptide-protocol-tracker/internal/domain/protocol"
	"peptide-protocol-tracker/internal/ports/storage"
)

const (
	keyProtocolItems = "protocol:items"
	keyProtocolLog   = "protocol:log"
)

type protocolRepo struct {
	store storage.Store
}

func NewProtocolRepo(store storage.Store) protocol.Repository {
	return &protocolRepo{store: store}
}

func (r *protocolRepo) Items(ctx context.Context) ([]protocol.Item, error) {
	return storage.LoadJSON(ctx, r.store, keyProtocolItems, []protocol.Item{})
}

func (r *protocolRepo) SaveItems(ctx context.Context, items []protocol.Item) error {
	return storage.SaveJSON(ctx, r.store, keyProtocolItems, items)
}

func (r *protocolRepo) Log(ctx context.Context) (protocol.TakeLog, error) {
	return storage.LoadJSON(ctx, r.store, keyProtocolLog, protocol.TakeLog{})
}

func (r *protocolRepo) SaveLog(ctx context.Context, log protocol.TakeLog) error {
	return storage.SaveJSON(ctx, r.store, keyProtocolLog, log)
}
