package calculator

import "context"

// PresetRepository persiste la colección completa de presets.
// El patrón de acceso es leer el valor entero, mutar en memoria y
// escribirlo de vuelta (un solo escritor, sin escrituras parciales).
type PresetRepository interface {
	List(ctx context.Context) ([]Preset, error)
	Save(ctx context.Context, presets []Preset) error
}
