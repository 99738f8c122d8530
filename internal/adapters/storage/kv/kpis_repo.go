package kv

import (
	"context"

	"peptide-protocol-tracker/internal/domain/kpis"
	"peptide-protocol-tracker/internal/ports/storage"
)

const keyKPIEntries = "kpis:entries"

type kpisRepo struct {
	store storage.Store
}

func NewKPIsRepo(store storage.Store) kpis.Repository {
	return &kpisRepo{store: store}
}

func (r *kpisRepo) Entries(ctx context.Context) ([]kpis.Entry, error) {
	return storage.LoadJSON(ctx, r.store, keyKPIEntries, []kpis.Entry{})
}

func (r *kpisRepo) SaveEntries(ctx context.Context, entries []kpis.Entry) error {
	return storage.SaveJSON(ctx, r.store, keyKPIEntries, entries)
}
