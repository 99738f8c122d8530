package alerts

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
	r.Route("/alerts", func(ar chi.Router) {
		ar.Post("/", createAlertHandler(svc))
		ar.Get("/", listAlertsHandler(svc))
		ar.Delete("/{alertID}", deleteAlertHandler(svc))

		ar.Get("/today", dueTodayHandler(svc))
		ar.Post("/{alertID}/ack", ackHandler(svc))
	})
}

// createAlertRequest es el cuerpo para crear un recordatorio.
// Si no viene schedule, el texto de plan se parsea como regla free_text.
type createAlertRequest struct {
	Label    string `json:"label"`
	Plan     string `json:"plan"`
	Pattern  string `json:"pattern,omitempty"`   // opcional: patrón fijo ("MWF", ...)
	EODStart string `json:"eod_start,omitempty"` // opcional: YYYY-MM-DD, every-other-day
}

// alertResponse representa un recordatorio devuelto por la API.
type alertResponse struct {
	ID        string        `json:"id"`
	Label     string        `json:"label"`
	Plan      string        `json:"plan"`
	Kind      schedule.Kind `json:"kind"`
	Weekdays  []string      `json:"weekdays"`
	CreatedAt time.Time     `json:"created_at"`
}

// dueAlertResponse es una alerta activa hoy con su estado de ack.
type dueAlertResponse struct {
	alertResponse
	Acked bool `json:"acked"`
}

// createAlertHandler godoc
// @Summary Crear recordatorio
// @Description Crea un recordatorio recurrente. pattern y eod_start son opcionales y excluyentes; sin ellos, los días activos salen del texto de plan (matching léxico de días de la semana).
// @Tags alerts
// @Accept json
// @Produce json
// @Param payload body createAlertRequest true "Label, plan libre y recurrencia opcional"
// @Success 201 {object} alertResponse
// @Failure 400 {string} string "invalid json / label requerido / eod_start inválido"
// @Router /alerts [post]
func createAlertHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAlertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var spec schedule.Spec
		switch {
		case strings.TrimSpace(req.EODStart) != "":
			start, err := time.Parse(DayKey, strings.TrimSpace(req.EODStart))
			if err != nil {
				http.Error(w, "eod_start must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			spec = schedule.EveryOtherDay(start)
		case strings.TrimSpace(req.Pattern) != "":
			spec = schedule.FixedPattern(req.Pattern)
		}

		a, err := svc.Create(r.Context(), CreateInput{
			Label:    req.Label,
			Plan:     req.Plan,
			Schedule: spec,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toAlertResponse(a))
	}
}

// listAlertsHandler godoc
// @Summary Listar recordatorios
// @Tags alerts
// @Produce json
// @Success 200 {array} alertResponse
// @Failure 500 {string} string "internal error"
// @Router /alerts [get]
func listAlertsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]alertResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAlertResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// deleteAlertHandler godoc
// @Summary Borrar recordatorio
// @Tags alerts
// @Param alertID path string true "ID de la alerta"
// @Success 204 {string} string "sin contenido"
// @Failure 404 {string} string "alert not found"
// @Router /alerts/{alertID} [delete]
func deleteAlertHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := svc.Delete(r.Context(), chi.URLParam(r, "alertID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidInput) {
				http.Error(w, "alert not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// dueTodayHandler godoc
// @Summary Recordatorios del día
// @Description Alertas cuyo schedule dispara en la fecha dada (query date=YYYY-MM-DD, default hoy), con su estado de ack.
// @Tags alerts
// @Produce json
// @Param date query string false "Fecha YYYY-MM-DD; por defecto hoy"
// @Success 200 {array} dueAlertResponse
// @Failure 400 {string} string "date inválida"
// @Failure 500 {string} string "internal error"
// @Router /alerts/today [get]
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

		out := make([]dueAlertResponse, 0, len(due))
		for _, d := range due {
			out = append(out, dueAlertResponse{
				alertResponse: toAlertResponse(d.Alert),
				Acked:         d.Acked,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// ackHandler godoc
// @Summary Marcar recordatorio como atendido
// @Tags alerts
// @Produce json
// @Param alertID path string true "ID de la alerta"
// @Param date query string false "Fecha YYYY-MM-DD; por defecto hoy"
// @Success 200 {object} dueAlertResponse
// @Failure 400 {string} string "date inválida"
// @Failure 404 {string} string "alert not found"
// @Router /alerts/{alertID}/ack [post]
func ackHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date, err := parseDateParam(r, "date")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		d, err := svc.Acknowledge(r.Context(), chi.URLParam(r, "alertID"), date)
		if err != nil {
			if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidInput) {
				http.Error(w, "alert not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, dueAlertResponse{
			alertResponse: toAlertResponse(d.Alert),
			Acked:         d.Acked,
		})
	}
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

func toAlertResponse(a Alert) alertResponse {
	days := schedule.ResolveWeekdays(a.Schedule).Days()
	names := make([]string, 0, len(days))
	for _, d := range days {
		names = append(names, d.String())
	}

	return alertResponse{
		ID:        a.ID,
		Label:     a.Label,
		Plan:      a.Plan,
		Kind:      a.Schedule.Kind,
		Weekdays:  names,
		CreatedAt: a.CreatedAt,
	}
}

// writeJSON duplicado a propósito por módulo (ver nota en calculator/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
