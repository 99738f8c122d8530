package calculator

import (
	"context"
	"fmt"
	"testing"
	"time"
)

type fakePresetRepo struct {
	presets []Preset
}

func (f *fakePresetRepo) List(ctx context.Context) ([]Preset, error) {
	return append([]Preset(nil), f.presets...), nil
}

func (f *fakePresetRepo) Save(ctx context.Context, presets []Preset) error {
	f.presets = append([]Preset(nil), presets...)
	return nil
}

func TestSavePreset_MostRecentFirstAndCapped(t *testing.T) {
	repo := &fakePresetRepo{}
	svc := NewService(repo)

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	i := 0
	svc.now = func() time.Time {
		i++
		return base.Add(time.Duration(i) * time.Minute)
	}

	ctx := context.Background()
	for n := 0; n < maxPresets+5; n++ {
		_, err := svc.SavePreset(ctx, fmt.Sprintf("preset-%d", n), twoComponentBlend(), DoseInput{Unit: DoseUnitMass, Amount: 0.5})
		if err != nil {
			t.Fatalf("save preset %d: %v", n, err)
		}
	}

	got, err := svc.ListPresets(ctx)
	if err != nil {
		t.Fatalf("list presets: %v", err)
	}
	if len(got) != maxPresets {
		t.Fatalf("expected cap at %d presets, got %d", maxPresets, len(got))
	}
	if got[0].Name != fmt.Sprintf("preset-%d", maxPresets+4) {
		t.Fatalf("expected newest preset first, got %q", got[0].Name)
	}
}

func TestSavePreset_RequiresName(t *testing.T) {
	svc := NewService(&fakePresetRepo{})

	if _, err := svc.SavePreset(context.Background(), "   ", nil, DoseInput{}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestDeletePreset(t *testing.T) {
	repo := &fakePresetRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	p, err := svc.SavePreset(ctx, "keep", twoComponentBlend(), DoseInput{})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := svc.DeletePreset(ctx, "nope"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for unknown id, got %v", err)
	}

	if err := svc.DeletePreset(ctx, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	got, _ := svc.ListPresets(ctx)
	if len(got) != 0 {
		t.Fatalf("expected empty preset list, got %d", len(got))
	}
}
