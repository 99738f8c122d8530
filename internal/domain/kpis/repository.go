package kpis

import "context"

// Repository persiste la lista completa de entradas de KPI.
type Repository interface {
	Entries(ctx context.Context) ([]Entry, error)
	SaveEntries(ctx context.Context, entries []Entry) error
}
