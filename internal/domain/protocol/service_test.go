package protocol

import (
	"context"
	"testing"
	"time"

	"peptide-protocol-tracker/internal/domain/schedule"
)

type fakeRepo struct {
	items []Item
	log   TakeLog
}

func (f *fakeRepo) Items(ctx context.Context) ([]Item, error) {
	return append([]Item(nil), f.items...), nil
}

func (f *fakeRepo) SaveItems(ctx context.Context, items []Item) error {
	f.items = append([]Item(nil), items...)
	return nil
}

func (f *fakeRepo) Log(ctx context.Context) (TakeLog, error) {
	return f.log, nil
}

func (f *fakeRepo) SaveLog(ctx context.Context, log TakeLog) error {
	f.log = log
	return nil
}

func TestCreate_DefaultsToDaily(t *testing.T) {
	svc := NewService(&fakeRepo{})

	item, err := svc.Create(context.Background(), CreateInput{Name: "BPC-157", DoseText: "250 mcg"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if item.Schedule.Kind != schedule.KindFixedPattern || item.Schedule.Pattern != "Daily" {
		t.Fatalf("expected Daily default schedule, got %+v", item.Schedule)
	}
	if item.TimesPerDay != 1 {
		t.Fatalf("expected times_per_day floor 1, got %d", item.TimesPerDay)
	}
}

func TestCreate_RequiresName(t *testing.T) {
	svc := NewService(&fakeRepo{})

	if _, err := svc.Create(context.Background(), CreateInput{Name: "  "}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestDueOn_FiltersBySchedule(t *testing.T) {
	svc := NewService(&fakeRepo{})
	ctx := context.Background()

	daily, _ := svc.Create(ctx, CreateInput{Name: "daily item"})
	mwf, _ := svc.Create(ctx, CreateInput{
		Name:     "mwf item",
		Schedule: schedule.FixedPattern("MWF"),
	})
	_, _ = svc.Create(ctx, CreateInput{
		Name:     "saturday item",
		Schedule: schedule.FixedPattern("Sat"),
	})

	wednesday := time.Date(2024, 1, 3, 8, 0, 0, 0, time.UTC)
	due, err := svc.DueOn(ctx, wednesday)
	if err != nil {
		t.Fatalf("due on: %v", err)
	}

	if len(due) != 2 {
		t.Fatalf("expected 2 due items on Wednesday, got %d", len(due))
	}
	ids := map[string]bool{due[0].Item.ID: true, due[1].Item.ID: true}
	if !ids[daily.ID] || !ids[mwf.ID] {
		t.Fatalf("wrong due set: %v", ids)
	}
}

func TestMarkTaken_CountsAndDone(t *testing.T) {
	svc := NewService(&fakeRepo{})
	ctx := context.Background()

	item, _ := svc.Create(ctx, CreateInput{Name: "twice a day", TimesPerDay: 2})
	day := time.Date(2024, 1, 3, 8, 0, 0, 0, time.UTC)

	d, err := svc.MarkTaken(ctx, item.ID, day)
	if err != nil {
		t.Fatalf("mark taken: %v", err)
	}
	if d.TakenCount != 1 || d.Done {
		t.Fatalf("expected count=1 not done, got %+v", d)
	}

	d, _ = svc.MarkTaken(ctx, item.ID, day)
	if d.TakenCount != 2 || !d.Done {
		t.Fatalf("expected count=2 done, got %+v", d)
	}

	// Otro día arranca de cero.
	next := day.AddDate(0, 0, 1)
	due, _ := svc.DueOn(ctx, next)
	if due[0].TakenCount != 0 || due[0].Done {
		t.Fatalf("expected fresh day, got %+v", due[0])
	}

	// Untake con piso en cero.
	d, _ = svc.UnmarkTaken(ctx, item.ID, day)
	d, _ = svc.UnmarkTaken(ctx, item.ID, day)
	d, err = svc.UnmarkTaken(ctx, item.ID, day)
	if err != nil {
		t.Fatalf("unmark taken: %v", err)
	}
	if d.TakenCount != 0 {
		t.Fatalf("expected floor at 0, got %d", d.TakenCount)
	}
}

func TestMarkTaken_UnknownItem(t *testing.T) {
	svc := NewService(&fakeRepo{})

	if _, err := svc.MarkTaken(context.Background(), "nope", time.Now()); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdate_Partial(t *testing.T) {
	svc := NewService(&fakeRepo{})
	ctx := context.Background()

	item, _ := svc.Create(ctx, CreateInput{Name: "original", DoseText: "1 mg"})

	newName := "renamed"
	spec := schedule.FixedPattern("TuThSa")
	updated, err := svc.Update(ctx, item.ID, UpdateInput{Name: &newName, Schedule: &spec})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Name != "renamed" {
		t.Fatalf("expected renamed, got %q", updated.Name)
	}
	if updated.DoseText != "1 mg" {
		t.Fatalf("dose text must be untouched, got %q", updated.DoseText)
	}
	if updated.Schedule.Pattern != "TuThSa" {
		t.Fatalf("expected updated schedule, got %+v", updated.Schedule)
	}
}

func TestDelete(t *testing.T) {
	svc := NewService(&fakeRepo{})
	ctx := context.Background()

	item, _ := svc.Create(ctx, CreateInput{Name: "to delete"})

	if err := svc.Delete(ctx, "unknown"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, item.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	items, _ := svc.List(ctx)
	if len(items) != 0 {
		t.Fatalf("expected no items, got %d", len(items))
	}
}
