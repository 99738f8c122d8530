package calculator

import "time"

// Component es un ingrediente de la mezcla reconstituida.
// Masa y volumen se guardan como el texto crudo que tipeó el usuario;
// el parseo laxo (blanco/no-numérico => 0) vive en Compute.
type Component struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	DryMassMg     string `json:"dry_mass_mg"`
	ReconVolumeMl string `json:"recon_volume_ml"`
}

// DoseUnit define la unidad en la que viene expresada la dosis deseada.
// @Enum mg, iu
type DoseUnit string

const (
	DoseUnitNone DoseUnit = ""
	DoseUnitMass DoseUnit = "mg"

	// DoseUnitVolumetric asume jeringa U-100: 100 unidades = 1 ml.
	DoseUnitVolumetric DoseUnit = "iu"
)

// DoseInput es la dosis deseada como union etiquetada:
// exactamente una unidad activa por vez (o ninguna).
type DoseInput struct {
	Unit   DoseUnit `json:"unit"`
	Amount float64  `json:"amount"`
}

// ComponentMetrics es la contribución de un componente a la dosis actual.
type ComponentMetrics struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	DryMassMg    float64 `json:"dry_mass_mg"`
	Share        float64 `json:"share"`
	MassInDoseMg float64 `json:"mass_in_dose_mg"`
}

// Metrics son los valores derivados de la calculadora.
// Nunca se persisten como autoridad: se recalculan en cada cambio de input.
type Metrics struct {
	TotalDryMassMg       float64 `json:"total_dry_mass_mg"`
	TotalVolumeMl        float64 `json:"total_volume_ml"`
	ConcentrationMgPerMl float64 `json:"concentration_mg_per_ml"`

	MassPerUnitMg float64 `json:"mass_per_unit_mg"`
	UnitsPerMg    float64 `json:"units_per_mg"`

	TotalDoseMassMg float64 `json:"total_dose_mass_mg"`
	DrawVolumeMl    float64 `json:"draw_volume_ml"`
	DrawUnits       float64 `json:"draw_units"`

	Components []ComponentMetrics `json:"components"`
}

// Preset es un snapshot nombrado de la configuración completa de la
// calculadora (componentes + dosis), para reutilizar después.
type Preset struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	Components []Component `json:"components"`
	Dose       DoseInput   `json:"dose"`

	CreatedAt time.Time `json:"created_at"`
}
