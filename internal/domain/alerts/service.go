package alerts

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
	Label    string
	Plan     string
	Schedule schedule.Spec
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Alert, error) {
	if strings.TrimSpace(in.Label) == "" {
		return Alert{}, ErrInvalidInput
	}

	spec := in.Schedule
	if spec.Kind == "" {
		// Sin schedule estructurado, el plan libre es la regla.
		spec = schedule.FreeText(in.Plan)
	}

	a := Alert{
		ID:        uuid.NewString(),
		Label:     strings.TrimSpace(in.Label),
		Plan:      strings.TrimSpace(in.Plan),
		Schedule:  spec,
		CreatedAt: s.now(),
	}

	existing, err := s.repo.Alerts(ctx)
	if err != nil {
		return Alert{}, err
	}
	if err := s.repo.SaveAlerts(ctx, append(existing, a)); err != nil {
		return Alert{}, err
	}
	return a, nil
}

func (s *Service) List(ctx context.Context) ([]Alert, error) {
	return s.repo.Alerts(ctx)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}

	existing, err := s.repo.Alerts(ctx)
	if err != nil {
		return err
	}

	out := make([]Alert, 0, len(existing))
	found := false
	for _, a := range existing {
		if a.ID == id {
			found = true
			continue
		}
		out = append(out, a)
	}
	if !found {
		return ErrNotFound
	}
	return s.repo.SaveAlerts(ctx, out)
}

// DueOn devuelve las alertas activas en la fecha, con su estado de ack del día.
func (s *Service) DueOn(ctx context.Context, date time.Time) ([]DueAlert, error) {
	all, err := s.repo.Alerts(ctx)
	if err != nil {
		return nil, err
	}
	acks, err := s.repo.Acks(ctx)
	if err != nil {
		return nil, err
	}

	day := date.Format(DayKey)
	out := make([]DueAlert, 0, len(all))
	for _, a := range all {
		if !schedule.IsDueOn(a.Schedule, date) {
			continue
		}
		out = append(out, DueAlert{
			Alert: a,
			Acked: acks.acked(day, a.ID),
		})
	}
	return out, nil
}

// Acknowledge marca la alerta como atendida en la fecha dada.
func (s *Service) Acknowledge(ctx context.Context, id string, date time.Time) (DueAlert, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return DueAlert{}, ErrInvalidInput
	}

	all, err := s.repo.Alerts(ctx)
	if err != nil {
		return DueAlert{}, err
	}

	var alert Alert
	found := false
	for _, a := range all {
		if a.ID == id {
			alert = a
			found = true
			break
		}
	}
	if !found {
		return DueAlert{}, ErrNotFound
	}

	acks, err := s.repo.Acks(ctx)
	if err != nil {
		return DueAlert{}, err
	}
	if acks == nil {
		acks = AckLog{}
	}

	day := date.Format(DayKey)
	if acks[day] == nil {
		acks[day] = map[string]bool{}
	}
	acks[day][id] = true

	if err := s.repo.SaveAcks(ctx, acks); err != nil {
		return DueAlert{}, err
	}

	return DueAlert{Alert: alert, Acked: true}, nil
}
