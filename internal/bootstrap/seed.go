// Package bootstrap corre la inicialización de datos: un único paso
// explícito que siembra datos de ejemplo solo cuando el store está vacío
// (nunca acceso global implícito ni re-siembra sobre datos del usuario).
package bootstrap

import (
	"context"
	"time"

	"peptide-protocol-tracker/internal/domain/alerts"
	"peptide-protocol-tracker/internal/domain/kpis"
	"peptide-protocol-tracker/internal/domain/protocol"
	"peptide-protocol-tracker/internal/domain/schedule"
	"peptide-protocol-tracker/internal/platform/logger"
	"peptide-protocol-tracker/internal/ports/storage"
)

const seedMarkerKey = "seed:v1"

type Services struct {
	Protocol *protocol.Service
	Alerts   *alerts.Service
	KPIs     *kpis.Service
}

// Seed siembra el dashboard demo una sola vez. El marcador se escribe
// antes que los datos: si la siembra falla a mitad, preferimos un
// dashboard a medias antes que duplicar items en el próximo arranque.
func Seed(ctx context.Context, store storage.Store, svcs Services, log logger.Logger) error {
	_, ok, err := store.Get(ctx, seedMarkerKey)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	if err := store.Set(ctx, seedMarkerKey, []byte(`{"seeded_at":"`+time.Now().UTC().Format(time.RFC3339)+`"}`)); err != nil {
		return err
	}

	log.Info("seeding demo data", nil)

	items := []protocol.CreateInput{
		{
			Name:     "BPC-157",
			DoseText: "250 mcg",
			Schedule: schedule.Daily(),
		},
		{
			Name:        "TB-500",
			DoseText:    "2 mg",
			Schedule:    schedule.FixedPattern("MWF"),
			TimesPerDay: 1,
		},
		{
			Name:     "CJC-1295 / Ipamorelin",
			DoseText: "100 mcg",
			Schedule: schedule.EveryOtherDay(time.Now()),
			Notes:    "antes de dormir",
		},
	}
	for _, in := range items {
		if _, err := svcs.Protocol.Create(ctx, in); err != nil {
			return err
		}
	}

	demoAlerts := []alerts.CreateInput{
		{Label: "HGH", Plan: "M-W-F after workout — 50 IU"},
		{Label: "Pesarse", Plan: "sat morning, fasted"},
	}
	for _, in := range demoAlerts {
		if _, err := svcs.Alerts.Create(ctx, in); err != nil {
			return err
		}
	}

	if _, err := svcs.KPIs.Record(ctx, "weight", time.Now(), 185.0); err != nil {
		return err
	}

	return nil
}
