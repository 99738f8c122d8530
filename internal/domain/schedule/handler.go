package schedule

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

const dayKey = "2006-01-02"

func RegisterRoutes(r chi.Router) {
	r.Get("/schedule/resolve", resolveHandler())
}

// resolveResponse es el resultado de evaluar una regla contra una fecha.
type resolveResponse struct {
	Kind     Kind     `json:"kind"`
	Weekdays []string `json:"weekdays"`
	Date     string   `json:"date"`
	Due      bool     `json:"due"`
}

// resolveHandler godoc
// @Summary Resolver una regla de recurrencia
// @Description Evalúa una regla (fixed_pattern, every_other_day o free_text) sin persistir nada: devuelve el set de días activos y si dispara en la fecha dada (query date=YYYY-MM-DD, default hoy). Útil para previsualizar un schedule antes de guardarlo.
// @Tags schedule
// @Produce json
// @Param kind query string false "fixed_pattern (default), every_other_day o free_text"
// @Param pattern query string false "Patrón fijo ('Daily', 'MWF', 'Tu-Th-Sat', ...)"
// @Param text query string false "Plan libre para kind=free_text"
// @Param start query string false "Ancla YYYY-MM-DD, requerida para every_other_day"
// @Param date query string false "Fecha YYYY-MM-DD; por defecto hoy"
// @Success 200 {object} resolveResponse
// @Failure 400 {string} string "kind desconocido / start o date inválidos"
// @Router /schedule/resolve [get]
func resolveHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		var spec Spec
		switch Kind(strings.TrimSpace(q.Get("kind"))) {
		case KindEveryOtherDay:
			start, err := time.Parse(dayKey, strings.TrimSpace(q.Get("start")))
			if err != nil {
				http.Error(w, "start must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			spec = EveryOtherDay(start)
		case KindFreeText:
			spec = FreeText(q.Get("text"))
		case KindFixedPattern, "":
			spec = FixedPattern(q.Get("pattern"))
		default:
			http.Error(w, "unknown schedule kind", http.StatusBadRequest)
			return
		}

		date := time.Now()
		if v := strings.TrimSpace(q.Get("date")); v != "" {
			t, err := time.Parse(dayKey, v)
			if err != nil {
				http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			date = t
		}

		days := ResolveWeekdays(spec).Days()
		names := make([]string, 0, len(days))
		for _, d := range days {
			names = append(names, d.String())
		}

		writeJSON(w, http.StatusOK, resolveResponse{
			Kind:     spec.Kind,
			Weekdays: names,
			Date:     date.Format(dayKey),
			Due:      IsDueOn(spec, date),
		})
	}
}

// writeJSON duplicado a propósito por módulo (ver nota en calculator/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
