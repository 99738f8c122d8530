package kpis

import "time"

// Entry es un valor de KPI registrado para un día concreto
// (peso, cintura, glucosa en ayunas, lo que el usuario trackee).
// Hay a lo sumo un valor por métrica por día: registrar de nuevo reemplaza.
type Entry struct {
	ID string

	Metric string
	Day    string // YYYY-MM-DD
	Value  float64

	RecordedAt time.Time
}

// DayKey es el formato del campo Day.
const DayKey = "2006-01-02"
