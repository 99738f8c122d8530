package protocol

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"peptide-protocol-tracker/internal/domain/schedule"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
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

type CreateInput struct {
	Name        string
	DoseText    string
	Schedule    schedule.Spec
	TimesPerDay int
	Notes       string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Item, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Item{}, ErrInvalidInput
	}

	spec := in.Schedule
	if spec.Kind == "" {
		spec = schedule.Daily()
	}

	times := in.TimesPerDay
	if times < 1 {
		times = 1
	}

	now := s.now()
	item := Item{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		DoseText:    strings.TrimSpace(in.DoseText),
		Schedule:    spec,
		TimesPerDay: times,
		Notes:       strings.TrimSpace(in.Notes),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	items, err := s.repo.Items(ctx)
	if err != nil {
		return Item{}, err
	}
	if err := s.repo.SaveItems(ctx, append(items, item)); err != nil {
		return Item{}, err
	}
	return item, nil
}

// UpdateInput hace update parcial: solo campos no-nil se tocan.
type UpdateInput struct {
	Name        *string
	DoseText    *string
	Schedule    *schedule.Spec
	TimesPerDay *int
	Notes       *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Item, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Item{}, ErrInvalidInput
	}

	items, err := s.repo.Items(ctx)
	if err != nil {
		return Item{}, err
	}

	idx := -1
	for i, it := range items {
		if it.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Item{}, ErrNotFound
	}

	item := items[idx]
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return Item{}, ErrInvalidInput
		}
		item.Name = strings.TrimSpace(*in.Name)
	}
	if in.DoseText != nil {
		item.DoseText = strings.TrimSpace(*in.DoseText)
	}
	if in.Schedule != nil {
		item.Schedule = *in.Schedule
	}
	if in.TimesPerDay != nil {
		item.TimesPerDay = *in.TimesPerDay
		if item.TimesPerDay < 1 {
			item.TimesPerDay = 1
		}
	}
	if in.Notes != nil {
		item.Notes = strings.TrimSpace(*in.Notes)
	}
	item.UpdatedAt = s.now()

	items[idx] = item
	if err := s.repo.SaveItems(ctx, items); err != nil {
		return Item{}, err
	}
	return item, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}

	items, err := s.repo.Items(ctx)
	if err != nil {
		return err
	}

	out := make([]Item, 0, len(items))
	found := false
	for _, it := range items {
		if it.ID == id {
			found = true
			continue
		}
		out = append(out, it)
	}
	if !found {
		return ErrNotFound
	}
	return s.repo.SaveItems(ctx, out)
}

func (s *Service) List(ctx context.Context) ([]Item, error) {
	return s.repo.Items(ctx)
}

// DueOn devuelve los items activos en la fecha, con su estado de toma.
// Done cuando el count del día alcanza TimesPerDay.
func (s *Service) DueOn(ctx context.Context, date time.Time) ([]DueItem, error) {
	items, err := s.repo.Items(ctx)
	if err != nil {
		return nil, err
	}
	log, err := s.repo.Log(ctx)
	if err != nil {
		return nil, err
	}

	day := date.Format(DayKey)
	out := make([]DueItem, 0, len(items))
	for _, it := range items {
		if !schedule.IsDueOn(it.Schedule, date) {
			continue
		}
		count := log.count(day, it.ID)
		out = append(out, DueItem{
			Item:       it,
			TakenCount: count,
			Done:       count >= it.TimesPerDay,
		})
	}
	return out, nil
}

// MarkTaken suma una toma del item en la fecha dada.
func (s *Service) MarkTaken(ctx context.Context, id string, date time.Time) (DueItem, error) {
	return s.adjustTaken(ctx, id, date, +1)
}

// UnmarkTaken resta una toma (piso 0).
func (s *Service) UnmarkTaken(ctx context.Context, id string, date time.Time) (DueItem, error) {
	return s.adjustTaken(ctx, id, date, -1)
}

func (s *Service) adjustTaken(ctx context.Context, id string, date time.Time, delta int) (DueItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return DueItem{}, ErrInvalidInput
	}

	items, err := s.repo.Items(ctx)
	if err != nil {
		return DueItem{}, err
	}

	var item Item
	found := false
	for _, it := range items {
		if it.ID == id {
			item = it
			found = true
			break
		}
	}
	if !found {
		return DueItem{}, ErrNotFound
	}

	log, err := s.repo.Log(ctx)
	if err != nil {
		return DueItem{}, err
	}
	if log == nil {
		log = TakeLog{}
	}

	day := date.Format(DayKey)
	if log[day] == nil {
		log[day] = map[string]int{}
	}

	count := log[day][id] + delta
	if count < 0 {
		count = 0
	}
	log[day][id] = count

	if err := s.repo.SaveLog(ctx, log); err != nil {
		return DueItem{}, err
	}

	return DueItem{
		Item:       item,
		TakenCount: count,
		Done:       count >= item.TimesPerDay,
	}, nil
}
