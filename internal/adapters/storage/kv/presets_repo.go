package kv

import (
	"context"

	"peptide-protocol-tracker/internal/domain/calculator"
	"peptide-protocol-tracker/internal/ports/storage"
)

const keyPresets = "calculator:presets"

type presetsRepo struct {
	store storage.Store
}

func NewPresetsRepo(store storage.Store) calculator.PresetRepository {
	return &presetsRepo{store: store}
}

func (r *presetsRepo) List(ctx context.Context) ([]calculator.Preset, error) {
	return storage.LoadJSON(ctx, r.store, keyPresets, []calculator.Preset{})
}

func (r *presetsRepo) Save(ctx context.Context, presets []calculator.Preset) error {
	return storage.SaveJSON(ctx, r.store, keyPresets, presets)
}
