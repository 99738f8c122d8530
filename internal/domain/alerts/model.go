package alerts

import (
	"time"

	"peptide-protocol-tracker/internal/domain/schedule"
)

// Alert es un recordatorio recurrente del dashboard.
// Plan es el string libre que escribió el usuario
// (ej. "M-W-F after workout — 50 IU"); cuando no hay schedule
// estructurado, ese texto se parsea como regla free_text.
type Alert struct {
	ID string

	Label string
	Plan  string

	Schedule schedule.Spec

	CreatedAt time.Time
}

// DueAlert es una alerta activa en una fecha junto a su estado de ack.
type DueAlert struct {
	Alert Alert
	Acked bool
}

// AckLog registra acks por día: clave de día (YYYY-MM-DD) => alertID => true.
type AckLog map[string]map[string]bool

// DayKey es el formato de clave de día del log.
const DayKey = "2006-01-02"

func (l AckLog) acked(day, alertID string) bool {
	if l == nil {
		return false
	}
	return l[day][alertID]
}
