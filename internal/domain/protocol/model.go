package protocol

import (
	"time"

	"peptide-protocol-tracker/internal/domain/schedule"
)

// Item es una entrada del checklist diario de dosificación.
type Item struct {
	ID string

	Name     string
	DoseText string // texto libre: "250 mcg", "10 IU", etc.

	Schedule schedule.Spec

	// TimesPerDay es cuántas tomas marca el item por día activo (mínimo 1).
	TimesPerDay int

	Notes string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DueItem es un item activo en una fecha concreta junto a su estado de toma.
type DueItem struct {
	Item       Item
	TakenCount int
	Done       bool
}

// TakeLog registra tomas por día: clave de día (YYYY-MM-DD) => itemID => count.
type TakeLog map[string]map[string]int

// DayKey es el formato de clave de día del log.
const DayKey = "2006-01-02"

func (l TakeLog) count(day, itemID string) int {
	if l == nil {
		return 0
	}
	return l[day][itemID]
}
