package protocol

import "context"

// Repository persiste la lista completa de items y el log de tomas.
// Acceso estricto leer-valor-entero / mutar / escribir-entero.
type Repository interface {
	Items(ctx context.Context) ([]Item, error)
	SaveItems(ctx context.Context, items []Item) error

	Log(ctx context.Context) (TakeLog, error)
	SaveLog(ctx context.Context, log TakeLog) error
}
