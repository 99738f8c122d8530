package calculator

import (
	"math"
	"reflect"
	"testing"
)

func twoComponentBlend() []Component {
	return []Component{
		{ID: "a", Name: "BPC-157", DryMassMg: "5", ReconVolumeMl: "2"},
		{ID: "b", Name: "TB-500", DryMassMg: "5", ReconVolumeMl: "2"},
	}
}

func TestCompute_MassDose(t *testing.T) {
	m := Compute(twoComponentBlend(), DoseInput{Unit: DoseUnitMass, Amount: 0.5})

	assertFloat(t, "total dry mass", m.TotalDryMassMg, 10)
	assertFloat(t, "total volume", m.TotalVolumeMl, 4)
	assertFloat(t, "concentration", m.ConcentrationMgPerMl, 2.5)
	assertFloat(t, "mass per unit", m.MassPerUnitMg, 0.025)
	assertFloat(t, "units per mg", m.UnitsPerMg, 40)
	assertFloat(t, "total dose mass", m.TotalDoseMassMg, 0.5)
	assertFloat(t, "draw volume", m.DrawVolumeMl, 0.2)
	assertFloat(t, "draw units", m.DrawUnits, 20)

	if len(m.Components) != 2 {
		t.Fatalf("expected 2 component metrics, got %d", len(m.Components))
	}
	for _, cm := range m.Components {
		assertFloat(t, cm.Name+" share", cm.Share, 0.5)
		assertFloat(t, cm.Name+" mass in dose", cm.MassInDoseMg, 0.25)
	}
}

func TestCompute_VolumetricDose(t *testing.T) {
	m := Compute(twoComponentBlend(), DoseInput{Unit: DoseUnitVolumetric, Amount: 10})

	assertFloat(t, "total dose mass", m.TotalDoseMassMg, 0.25)
	assertFloat(t, "draw volume", m.DrawVolumeMl, 0.1)
	assertFloat(t, "draw units", m.DrawUnits, 10)
}

func TestCompute_Idempotent(t *testing.T) {
	dose := DoseInput{Unit: DoseUnitMass, Amount: 0.5}
	a := Compute(twoComponentBlend(), dose)
	b := Compute(twoComponentBlend(), dose)

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected identical metrics on identical inputs:\n%#v\n%#v", a, b)
	}
}

func TestCompute_ZeroVolumeNeverNaN(t *testing.T) {
	comps := []Component{
		{ID: "a", DryMassMg: "5", ReconVolumeMl: "0"},
		{ID: "b", DryMassMg: "5", ReconVolumeMl: ""},
	}
	m := Compute(comps, DoseInput{Unit: DoseUnitVolumetric, Amount: 10})

	assertFloat(t, "concentration", m.ConcentrationMgPerMl, 0)
	assertFloat(t, "mass per unit", m.MassPerUnitMg, 0)
	assertFloat(t, "units per mg", m.UnitsPerMg, 0)
	assertFloat(t, "total dose mass", m.TotalDoseMassMg, 0)
	assertFloat(t, "draw volume", m.DrawVolumeMl, 0)
	assertFloat(t, "draw units", m.DrawUnits, 0)

	for _, f := range []float64{m.ConcentrationMgPerMl, m.UnitsPerMg, m.DrawVolumeMl, m.DrawUnits} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			t.Fatalf("derived metric must never be NaN/Inf, got %v", f)
		}
	}
}

func TestCompute_LenientParsing(t *testing.T) {
	comps := []Component{
		{ID: "a", DryMassMg: "abc", ReconVolumeMl: "2"},
		{ID: "b", DryMassMg: "-3", ReconVolumeMl: "  1 "},
	}
	m := Compute(comps, DoseInput{})

	assertFloat(t, "total dry mass", m.TotalDryMassMg, 0)
	assertFloat(t, "total volume", m.TotalVolumeMl, 3)
}

func TestCompute_NameFallback(t *testing.T) {
	comps := []Component{
		{ID: "a1", Name: "  ", DryMassMg: "5", ReconVolumeMl: "1"},
		{Name: "", DryMassMg: "5", ReconVolumeMl: "1"},
	}
	m := Compute(comps, DoseInput{})

	if m.Components[0].Name != "Peptide a1" {
		t.Fatalf("expected generated name from id, got %q", m.Components[0].Name)
	}
	if m.Components[1].Name != "Peptide 2" {
		t.Fatalf("expected positional generated name, got %q", m.Components[1].Name)
	}
}

func TestResolveDose_MassWins(t *testing.T) {
	d := ResolveDose("0.5", "10")
	if d.Unit != DoseUnitMass || d.Amount != 0.5 {
		t.Fatalf("mass must take priority, got %+v", d)
	}

	d = ResolveDose("", "10")
	if d.Unit != DoseUnitVolumetric || d.Amount != 10 {
		t.Fatalf("expected volumetric dose, got %+v", d)
	}

	d = ResolveDose("garbage", "")
	if d.Unit != DoseUnitNone || d.Amount != 0 {
		t.Fatalf("expected empty dose, got %+v", d)
	}
}

func assertFloat(t *testing.T, label string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s: got %v want %v", label, got, want)
	}
}
