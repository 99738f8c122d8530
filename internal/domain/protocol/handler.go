package protocol

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"peptide-protocol-tracker/internal/domain/schedule"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/protocol", func(pr chi.Router) {
		pr.Post("/items", createItemHandler(svc))
		pr.Get("/items", listItemsHandler(svc))
		pr.Patch("/items/{itemID}", updateItemHandler(svc))
		pr.Delete("/items/{itemID}", deleteItemHandler(svc))

		pr.Get("/today", dueTodayHandler(svc))

		pr.Post("/items/{itemID}/take", takeHandler(svc, +1))
		pr.Post("/items/{itemID}/untake", takeHandler(svc, -1))
	})
}

// scheduleSpec es la representación wire de una regla de recurrencia.
// start_date en formato YYYY-MM-DD (solo importa la fecha, no la hora).
type scheduleSpec struct {
	Kind      schedule.Kind `json:"kind" enums:"fixed_pattern,every_other_day,free_text"`
	Pattern   string        `json:"pattern,omitempty"`
	StartDate string        `json:"start_date,omitempty"`
	Text      string        `json:"text,omitempty"`
}

// createItemRequest es el cuerpo para crear un item del checklist.
type createItemRequest struct {
	Name        string        `json:"name"`
	DoseText    string        `json:"dose_text"`
	Schedule    *scheduleSpec `json:"schedule"` // opcional; default Daily
	TimesPerDay int           `json:"times_per_day"`
	Notes       string        `json:"notes"`
}

// updateItemRequest hace update parcial; solo los campos presentes se tocan.
type updateItemRequest struct {
	Name        *string       `json:"name"`
	DoseText    *string       `json:"dose_text"`
	Schedule    *scheduleSpec `json:"schedule"`
	TimesPerDay *int          `json:"times_per_day"`
	Notes       *string       `json:"notes"`
}

// itemResponse representa un item del checklist devuelto por la API.
// weekdays es el set resuelto del schedule (vacío para every_other_day).
type itemResponse struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	DoseText    string       `json:"dose_text"`
	Schedule    scheduleSpec `json:"schedule"`
	Weekdays    []string     `json:"weekdays"`
	TimesPerDay int          `json:"times_per_day"`
	Notes       string       `json:"notes"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// dueItemResponse es un item activo hoy con su estado de toma.
type dueItemResponse struct {
	itemResponse
	TakenCount int  `json:"taken_count"`
	Done       bool `json:"done"`
}

// createItemHandler godoc
// @Summary Crear item del checklist
// @Description Crea un item del protocolo de dosificación con su regla de recurrencia (patrón fijo, every-other-day anclado a una fecha, o texto libre). Sin schedule, el item es diario.
// @Tags protocol
// @Accept json
// @Produce json
// @Param payload body createItemRequest true "Datos del item; schedule.start_date en YYYY-MM-DD"
// @Success 201 {object} itemResponse
// @Failure 400 {string} string "invalid json / name requerido / start_date inválido"
// @Router /protocol/items [post]
func createItemHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		spec, err := toSpec(req.Schedule)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		item, err := svc.Create(r.Context(), CreateInput{
			Name:        req.Name,
			DoseText:    req.DoseText,
			Schedule:    spec,
			TimesPerDay: req.TimesPerDay,
			Notes:       req.Notes,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toItemResponse(item))
	}
}

// listItemsHandler godoc
// @Summary Listar items del checklist
// @Tags protocol
// @Produce json
// @Success 200 {array} itemResponse
// @Failure 500 {string} string "internal error"
// @Router /protocol/items [get]
func listItemsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]itemResponse, 0, len(items))
		for _, it := range items {
			out = append(out, toItemResponse(it))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// updateItemHandler godoc
// @Summary Editar item del checklist
// @Description Update parcial: solo los campos presentes en el cuerpo se modifican.
// @Tags protocol
// @Accept json
// @Produce json
// @Param itemID path string true "ID del item"
// @Param payload body updateItemRequest true "Campos a modificar"
// @Success 200 {object} itemResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Failure 404 {string} string "item not found"
// @Router /protocol/items/{itemID} [patch]
func updateItemHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := UpdateInput{
			Name:        req.Name,
			DoseText:    req.DoseText,
			TimesPerDay: req.TimesPerDay,
			Notes:       req.Notes,
		}
		if req.Schedule != nil {
			spec, err := toSpec(req.Schedule)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			in.Schedule = &spec
		}

		item, err := svc.Update(r.Context(), chi.URLParam(r, "itemID"), in)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "item not found", http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusOK, toItemResponse(item))
	}
}

// deleteItemHandler godoc
// @Summary Borrar item del checklist
// @Tags protocol
// @Param itemID path string true "ID del item"
// @Success 204 {string} string "sin contenido"
// @Failure 404 {string} string "item not found"
// @Router /protocol/items/{itemID} [delete]
func deleteItemHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := svc.Delete(r.Context(), chi.URLParam(r, "itemID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidInput) {
				http.Error(w, "item not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// dueTodayHandler godoc
// @Summary Checklist del día
// @Description Devuelve los items cuyo schedule dispara en la fecha dada (query date=YYYY-MM-DD, default hoy), con el conteo de tomas del día.
// @Tags protocol
// @Produce json
// @Param date query string false "Fecha YYYY-MM-DD; por defecto hoy"
// @Success 200 {array} dueItemResponse
// @Failure 400 {string} string "date inválida"
// @Failure 500 {string} string "internal error"
// @Router /protocol/today [get]
func dueTodayHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date, err := parseDateParam(r, "date")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		due, err := svc.DueOn(r.Context(), date)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]dueItemResponse, 0, len(due))
		for _, d := range due {
			out = append(out, toDueItemResponse(d))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// takeHandler godoc
// @Summary Marcar / desmarcar toma
// @Description Suma (take) o resta (untake) una toma del item en la fecha dada (query date=YYYY-MM-DD, default hoy).
// @Tags protocol
// @Produce json
// @Param itemID path string true "ID del item"
// @Param date query string false "Fecha YYYY-MM-DD; por defecto hoy"
// @Success 200 {object} dueItemResponse
// @Failure 400 {string} string "date inválida"
// @Failure 404 {string} string "item not found"
// @Router /protocol/items/{itemID}/take [post]
func takeHandler(svc *Service, delta int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date, err := parseDateParam(r, "date")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var due DueItem
		if delta > 0 {
			due, err = svc.MarkTaken(r.Context(), chi.URLParam(r, "itemID"), date)
		} else {
			due, err = svc.UnmarkTaken(r.Context(), chi.URLParam(r, "itemID"), date)
		}
		if err != nil {
			if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidInput) {
				http.Error(w, "item not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toDueItemResponse(due))
	}
}

func toSpec(in *scheduleSpec) (schedule.Spec, error) {
	if in == nil {
		return schedule.Spec{}, nil
	}

	switch in.Kind {
	case schedule.KindEveryOtherDay:
		start, err := time.Parse(DayKey, strings.TrimSpace(in.StartDate))
		if err != nil {
			return schedule.Spec{}, errors.New("start_date must be YYYY-MM-DD")
		}
		return schedule.EveryOtherDay(start), nil
	case schedule.KindFreeText:
		return schedule.FreeText(in.Text), nil
	case schedule.KindFixedPattern, "":
		return schedule.FixedPattern(in.Pattern), nil
	default:
		return schedule.Spec{}, errors.New("unknown schedule kind")
	}
}

func fromSpec(spec schedule.Spec) scheduleSpec {
	out := scheduleSpec{Kind: spec.Kind, Pattern: spec.Pattern, Text: spec.Text}
	if !spec.StartDate.IsZero() {
		out.StartDate = spec.StartDate.Format(DayKey)
	}
	return out
}

func parseDateParam(r *http.Request, name string) (time.Time, error) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return time.Now(), nil
	}
	t, err := time.Parse(DayKey, v)
	if err != nil {
		return time.Time{}, errors.New(name + " must be YYYY-MM-DD")
	}
	return t, nil
}

func toItemResponse(it Item) itemResponse {
	days := schedule.ResolveWeekdays(it.Schedule).Days()
	names := make([]string, 0, len(days))
	for _, d := range days {
		names = append(names, d.String())
	}

	return itemResponse{
		ID:          it.ID,
		Name:        it.Name,
		DoseText:    it.DoseText,
		Schedule:    fromSpec(it.Schedule),
		Weekdays:    names,
		TimesPerDay: it.TimesPerDay,
		Notes:       it.Notes,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}

func toDueItemResponse(d DueItem) dueItemResponse {
	return dueItemResponse{
		itemResponse: toItemResponse(d.Item),
		TakenCount:   d.TakenCount,
		Done:         d.Done,
	}
}

// writeJSON duplicado a propósito por módulo (ver nota en calculator/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
