package calculator

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// maxPresets limita la colección retenida (más reciente primero).
const maxPresets = 20

// maxComponents refleja el límite de la UI (1 a 4 filas de componentes).
const maxComponents = 4

type Service struct {
	presets PresetRepository
	now     func() time.Time
}

func NewService(presets PresetRepository) *Service {
	return &Service{
		presets: presets,
		now:     time.Now,
	}
}

// Compute expone la transformación pura recortando la lista de componentes
// al máximo soportado. No toca persistencia.
func (s *Service) Compute(components []Component, dose DoseInput) Metrics {
	if len(components) > maxComponents {
		components = components[:maxComponents]
	}
	return Compute(components, dose)
}

// SavePreset agrega un snapshot al frente de la colección y recorta al cap.
func (s *Service) SavePreset(ctx context.Context, name string, components []Component, dose DoseInput) (Preset, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Preset{}, ErrInvalidInput
	}
	if len(components) > maxComponents {
		components = components[:maxComponents]
	}

	existing, err := s.presets.List(ctx)
	if err != nil {
		return Preset{}, err
	}

	p := Preset{
		ID:         uuid.NewString(),
		Name:       name,
		Components: components,
		Dose:       dose,
		CreatedAt:  s.now(),
	}

	updated := append([]Preset{p}, existing...)
	if len(updated) > maxPresets {
		updated = updated[:maxPresets]
	}

	if err := s.presets.Save(ctx, updated); err != nil {
		return Preset{}, err
	}
	return p, nil
}

func (s *Service) ListPresets(ctx context.Context) ([]Preset, error) {
	return s.presets.List(ctx)
}

func (s *Service) DeletePreset(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}

	existing, err := s.presets.List(ctx)
	if err != nil {
		return err
	}

	out := make([]Preset, 0, len(existing))
	found := false
	for _, p := range existing {
		if p.ID == id {
			found = true
			continue
		}
		out = append(out, p)
	}
	if !found {
		return ErrNotFound
	}

	return s.presets.Save(ctx, out)
}
