package kv

import (
	"context"

	"peptide-protocol-tracker/internal/domain/alerts"
	"peptide-protocol-tracker/internal/ports/storage"
)

const (
	keyAlerts    = "alerts:items"
	keyAlertAcks = "alerts:acks"
)

type alertsRepo struct {
	store storage.Store
}

func NewAlertsRepo(store storage.Store) alerts.Repository {
	return &alertsRepo{store: store}
}

func (r *alertsRepo) Alerts(ctx context.Context) ([]alerts.Alert, error) {
	return storage.LoadJSON(ctx, r.store, keyAlerts, []alerts.Alert{})
}

func (r *alertsRepo) SaveAlerts(ctx context.Context, items []alerts.Alert) error {
	return storage.SaveJSON(ctx, r.store, keyAlerts, items)
}

func (r *alertsRepo) Acks(ctx context.Context) (alerts.AckLog, error) {
	return storage.LoadJSON(ctx, r.store, keyAlertAcks, alerts.AckLog{})
}

func (r *alertsRepo) SaveAcks(ctx context.Context, log alerts.AckLog) error {
	return storage.SaveJSON(ctx, r.store, keyAlertAcks, log)
}
