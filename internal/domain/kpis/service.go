package kpis

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Record registra el valor de una métrica para un día.
// Si ya había un valor para esa métrica ese día, se reemplaza.
func (s *Service) Record(ctx context.Context, metric string, day time.Time, value float64) (Entry, error) {
	metric = normalizeMetric(metric)
	if metric == "" {
		return Entry{}, ErrInvalidInput
	}

	entries, err := s.repo.Entries(ctx)
	if err != nil {
		return Entry{}, err
	}

	e := Entry{
		ID:         uuid.NewString(),
		Metric:     metric,
		Day:        day.Format(DayKey),
		Value:      value,
		RecordedAt: s.now(),
	}

	out := make([]Entry, 0, len(entries)+1)
	for _, prev := range entries {
		if prev.Metric == e.Metric && prev.Day == e.Day {
			continue
		}
		out = append(out, prev)
	}
	out = append(out, e)

	if err := s.repo.SaveEntries(ctx, out); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// Latest devuelve la entrada más reciente de cada métrica (para las cards).
func (s *Service) Latest(ctx context.Context) (map[string]Entry, error) {
	entries, err := s.repo.Entries(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string]Entry)
	for _, e := range entries {
		cur, ok := out[e.Metric]
		if !ok || e.Day > cur.Day {
			out[e.Metric] = e
		}
	}
	return out, nil
}

// Series devuelve las entradas de una métrica ordenadas por día ascendente,
// opcionalmente acotadas a [from, to] (para los gráficos de tendencia).
func (s *Service) Series(ctx context.Context, metric string, from, to *time.Time) ([]Entry, error) {
	metric = normalizeMetric(metric)
	if metric == "" {
		return nil, ErrInvalidInput
	}

	entries, err := s.repo.Entries(ctx)
	if err != nil {
		return nil, err
	}

	var fromKey, toKey string
	if from != nil {
		fromKey = from.Format(DayKey)
	}
	if to != nil {
		toKey = to.Format(DayKey)
	}

	out := make([]Entry, 0)
	for _, e := range entries {
		if e.Metric != metric {
			continue
		}
		if fromKey != "" && e.Day < fromKey {
			continue
		}
		if toKey != "" && e.Day > toKey {
			continue
		}
		out = append(out, e)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Day < out[j].Day
	})
	return out, nil
}

// Metrics devuelve los nombres de métrica conocidos, ordenados.
func (s *Service) Metrics(ctx context.Context) ([]string, error) {
	entries, err := s.repo.Entries(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, e := range entries {
		if !seen[e.Metric] {
			seen[e.Metric] = true
			out = append(out, e.Metric)
		}
	}
	sort.Strings(out)
	return out, nil
}

func normalizeMetric(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
