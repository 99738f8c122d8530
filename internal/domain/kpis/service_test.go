package kpis

import (
	"context"
	"testing"
	"time"
)

type fakeRepo struct {
	entries []Entry
}

func (f *fakeRepo) Entries(ctx context.Context) ([]Entry, error) {
	return append([]Entry(nil), f.entries...), nil
}

func (f *fakeRepo) SaveEntries(ctx context.Context, entries []Entry) error {
	f.entries = append([]Entry(nil), entries...)
	return nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRecord_ReplacesSameMetricAndDay(t *testing.T) {
	svc := NewService(&fakeRepo{})
	ctx := context.Background()

	_, err := svc.Record(ctx, "Weight", day(2024, 1, 1), 185.0)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	_, _ = svc.Record(ctx, "weight", day(2024, 1, 1), 184.2)

	series, err := svc.Series(ctx, "weight", nil, nil)
	if err != nil {
		t.Fatalf("series: %v", err)
	}
	if len(series) != 1 {
		t.Fatalf("expected replacement, got %d entries", len(series))
	}
	if series[0].Value != 184.2 {
		t.Fatalf("expected the newer value, got %v", series[0].Value)
	}
}

func TestRecord_RequiresMetric(t *testing.T) {
	svc := NewService(&fakeRepo{})

	if _, err := svc.Record(context.Background(), "  ", time.Now(), 1); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSeries_OrderedAndBounded(t *testing.T) {
	svc := NewService(&fakeRepo{})
	ctx := context.Background()

	_, _ = svc.Record(ctx, "weight", day(2024, 1, 5), 184)
	_, _ = svc.Record(ctx, "weight", day(2024, 1, 1), 186)
	_, _ = svc.Record(ctx, "weight", day(2024, 1, 3), 185)
	_, _ = svc.Record(ctx, "waist", day(2024, 1, 3), 34)

	series, _ := svc.Series(ctx, "weight", nil, nil)
	if len(series) != 3 {
		t.Fatalf("expected 3 weight entries, got %d", len(series))
	}
	for i := 1; i < len(series); i++ {
		if series[i-1].Day >= series[i].Day {
			t.Fatalf("series must be ascending by day: %v", series)
		}
	}

	from := day(2024, 1, 2)
	to := day(2024, 1, 4)
	bounded, _ := svc.Series(ctx, "weight", &from, &to)
	if len(bounded) != 1 || bounded[0].Day != "2024-01-03" {
		t.Fatalf("expected only the 2024-01-03 entry, got %+v", bounded)
	}
}

func TestLatest_NewestPerMetric(t *testing.T) {
	svc := NewService(&fakeRepo{})
	ctx := context.Background()

	_, _ = svc.Record(ctx, "weight", day(2024, 1, 1), 186)
	_, _ = svc.Record(ctx, "weight", day(2024, 1, 5), 184)
	_, _ = svc.Record(ctx, "waist", day(2024, 1, 2), 34)

	latest, err := svc.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest["weight"].Value != 184 {
		t.Fatalf("expected newest weight, got %+v", latest["weight"])
	}
	if latest["waist"].Day != "2024-01-02" {
		t.Fatalf("expected waist entry, got %+v", latest["waist"])
	}
}

func TestMetrics_SortedUnique(t *testing.T) {
	svc := NewService(&fakeRepo{})
	ctx := context.Background()

	_, _ = svc.Record(ctx, "weight", day(2024, 1, 1), 186)
	_, _ = svc.Record(ctx, "waist", day(2024, 1, 1), 34)
	_, _ = svc.Record(ctx, "weight", day(2024, 1, 2), 185)

	names, _ := svc.Metrics(ctx)
	if len(names) != 2 || names[0] != "waist" || names[1] != "weight" {
		t.Fatalf("expected [waist weight], got %v", names)
	}
}
