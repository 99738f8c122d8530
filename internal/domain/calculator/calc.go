package calculator

import (
	"fmt"
	"strconv"
	"strings"
)

// unitsPerMl es la convención U-100: 100 unidades marcadas = 1 ml de solución.
const unitsPerMl = 100.0

// ResolveDose construye la union de dosis a partir de los dos campos de
// formulario. La masa gana cuando ambos parsean positivo (la UI borra uno
// al tipear el otro, pero acá no confiamos en eso).
func ResolveDose(massText, unitsText string) DoseInput {
	if mg := parseDecimal(massText); mg > 0 {
		return DoseInput{Unit: DoseUnitMass, Amount: mg}
	}
	if iu := parseDecimal(unitsText); iu > 0 {
		return DoseInput{Unit: DoseUnitVolumetric, Amount: iu}
	}
	return DoseInput{}
}

// Compute es la transformación pura componentes+dosis => métricas derivadas.
// Total sobre cualquier input: los caminos de división por cero producen 0
// (nunca NaN/Inf), que para la UI significa "input insuficiente".
// El modelo asume que todos los componentes reconstituidos se combinan en
// una sola mezcla física.
func Compute(components []Component, dose DoseInput) Metrics {
	m := Metrics{
		Components: make([]ComponentMetrics, 0, len(components)),
	}

	masses := make([]float64, len(components))
	for i, c := range components {
		masses[i] = parseDecimal(c.DryMassMg)
		m.TotalDryMassMg += masses[i]
		m.TotalVolumeMl += parseDecimal(c.ReconVolumeMl)
	}

	if m.TotalVolumeMl > 0 {
		m.ConcentrationMgPerMl = m.TotalDryMassMg / m.TotalVolumeMl
	}

	m.MassPerUnitMg = m.ConcentrationMgPerMl / unitsPerMl
	if m.MassPerUnitMg > 0 {
		m.UnitsPerMg = 1 / m.MassPerUnitMg
	}

	switch {
	case dose.Unit == DoseUnitMass && dose.Amount > 0:
		m.TotalDoseMassMg = dose.Amount
	case dose.Unit == DoseUnitVolumetric && dose.Amount > 0:
		m.TotalDoseMassMg = (dose.Amount / unitsPerMl) * m.ConcentrationMgPerMl
	}

	if m.ConcentrationMgPerMl > 0 {
		m.DrawVolumeMl = m.TotalDoseMassMg / m.ConcentrationMgPerMl
	}
	m.DrawUnits = m.DrawVolumeMl * unitsPerMl

	for i, c := range components {
		cm := ComponentMetrics{
			ID:        c.ID,
			Name:      displayName(c, i),
			DryMassMg: masses[i],
		}
		if m.TotalDryMassMg > 0 {
			cm.Share = masses[i] / m.TotalDryMassMg
		}
		cm.MassInDoseMg = m.TotalDoseMassMg * cm.Share
		m.Components = append(m.Components, cm)
	}

	return m
}

// parseDecimal es el parseo laxo de los campos de formulario:
// blanco, no-numérico o negativo => 0, nunca un error.
func parseDecimal(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func displayName(c Component, idx int) string {
	if name := strings.TrimSpace(c.Name); name != "" {
		return name
	}
	if id := strings.TrimSpace(c.ID); id != "" {
		return "Peptide " + id
	}
	return fmt.Sprintf("Peptide %d", idx+1)
}
