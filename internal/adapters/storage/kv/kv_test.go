package kv_test

import (
	"context"
	"reflect"
	"testing"
	"time"

	"peptide-protocol-tracker/internal/adapters/storage/kv"
	"peptide-protocol-tracker/internal/adapters/storage/memory"
	"peptide-protocol-tracker/internal/domain/calculator"
	"peptide-protocol-tracker/internal/domain/protocol"
	"peptide-protocol-tracker/internal/domain/schedule"
)

func TestProtocolRepo_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := kv.NewProtocolRepo(memory.NewStore())

	items := []protocol.Item{
		{
			ID:          "i1",
			Name:        "BPC-157",
			DoseText:    "250 mcg",
			Schedule:    schedule.FixedPattern("MWF"),
			TimesPerDay: 2,
			CreatedAt:   time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
		},
		{
			ID:       "i2",
			Name:     "HGH",
			Schedule: schedule.EveryOtherDay(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		},
	}

	if err := repo.SaveItems(ctx, items); err != nil {
		t.Fatalf("save items: %v", err)
	}

	got, err := repo.Items(ctx)
	if err != nil {
		t.Fatalf("load items: %v", err)
	}
	if !reflect.DeepEqual(got, items) {
		t.Fatalf("round trip mismatch:\ngot  %#v\nwant %#v", got, items)
	}

	log := protocol.TakeLog{"2024-01-03": {"i1": 2}}
	if err := repo.SaveLog(ctx, log); err != nil {
		t.Fatalf("save log: %v", err)
	}
	gotLog, _ := repo.Log(ctx)
	if !reflect.DeepEqual(gotLog, log) {
		t.Fatalf("log round trip mismatch: %#v", gotLog)
	}
}

func TestPresetsRepo_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := kv.NewPresetsRepo(memory.NewStore())

	presets := []calculator.Preset{
		{
			ID:   "p1",
			Name: "healing blend",
			Components: []calculator.Component{
				{ID: "a", Name: "BPC-157", DryMassMg: "5", ReconVolumeMl: "2"},
				{ID: "b", DryMassMg: "5", ReconVolumeMl: "2"},
			},
			Dose:      calculator.DoseInput{Unit: calculator.DoseUnitMass, Amount: 0.5},
			CreatedAt: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
		},
	}

	if err := repo.Save(ctx, presets); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !reflect.DeepEqual(got, presets) {
		t.Fatalf("round trip mismatch:\ngot  %#v\nwant %#v", got, presets)
	}
}

func TestCorruptValueFallsBackToEmpty(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	if err := store.Set(ctx, "protocol:items", []byte("{not json")); err != nil {
		t.Fatalf("set: %v", err)
	}

	repo := kv.NewProtocolRepo(store)
	got, err := repo.Items(ctx)
	if err != nil {
		t.Fatalf("corrupt value must not surface an error, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected the empty fallback, got %#v", got)
	}
}

func TestMissingKeyFallsBackToEmpty(t *testing.T) {
	ctx := context.Background()
	repo := kv.NewKPIsRepo(memory.NewStore())

	got, err := repo.Entries(ctx)
	if err != nil {
		t.Fatalf("missing key must not surface an error, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty entries, got %#v", got)
	}
}
