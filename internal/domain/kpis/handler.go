package kpis

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/kpis", func(kr chi.Router) {
		kr.Post("/", recordHandler(svc))
		kr.Get("/latest", latestHandler(svc))
		kr.Get("/metrics", metricsHandler(svc))
		kr.Get("/{metric}/series", seriesHandler(svc))
	})
}

// recordKPIRequest es el cuerpo para registrar un valor de KPI.
type recordKPIRequest struct {
	Metric string  `json:"metric"`
	Day    string  `json:"day"` // YYYY-MM-DD; vacío = hoy
	Value  float64 `json:"value"`
}

// entryResponse representa una entrada de KPI devuelta por la API.
type entryResponse struct {
	ID         string    `json:"id"`
	Metric     string    `json:"metric"`
	Day        string    `json:"day"`
	Value      float64   `json:"value"`
	RecordedAt time.Time `json:"recorded_at"`
}

// recordHandler godoc
// @Summary Registrar valor de KPI
// @Description Registra el valor de una métrica para un día (default hoy). Un segundo registro para la misma métrica y día reemplaza al anterior.
// @Tags kpis
// @Accept json
// @Produce json
// @Param payload body recordKPIRequest true "Métrica, día (YYYY-MM-DD, opcional) y valor"
// @Success 201 {object} entryResponse
// @Failure 400 {string} string "invalid json / metric requerida / day inválido"
// @Router /kpis [post]
func recordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req recordKPIRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		day := time.Now()
		if v := strings.TrimSpace(req.Day); v != "" {
			t, err := time.Parse(DayKey, v)
			if err != nil {
				http.Error(w, "day must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			day = t
		}

		e, err := svc.Record(r.Context(), req.Metric, day, req.Value)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toEntryResponse(e))
	}
}

// latestHandler godoc
// @Summary Último valor por métrica
// @Description Devuelve la entrada más reciente de cada métrica, para las KPI cards del dashboard.
// @Tags kpis
// @Produce json
// @Success 200 {object} map[string]entryResponse
// @Failure 500 {string} string "internal error"
// @Router /kpis/latest [get]
func latestHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		latest, err := svc.Latest(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make(map[string]entryResponse, len(latest))
		for metric, e := range latest {
			out[metric] = toEntryResponse(e)
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// metricsHandler godoc
// @Summary Métricas conocidas
// @Tags kpis
// @Produce json
// @Success 200 {array} string
// @Failure 500 {string} string "internal error"
// @Router /kpis/metrics [get]
func metricsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names, err := svc.Metrics(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, names)
	}
}

// seriesHandler godoc
// @Summary Serie histórica de una métrica
// @Description Entradas de la métrica ordenadas por día ascendente, acotables con from/to (YYYY-MM-DD). Es el insumo de los gráficos de tendencia.
// @Tags kpis
// @Produce json
// @Param metric path string true "Nombre de la métrica (ej: weight)"
// @Param from query string false "Día mínimo YYYY-MM-DD"
// @Param to query string false "Día máximo YYYY-MM-DD"
// @Success 200 {array} entryResponse
// @Failure 400 {string} string "from/to inválidos"
// @Failure 500 {string} string "internal error"
// @Router /kpis/{metric}/series [get]
func seriesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var from, to *time.Time
		if v := strings.TrimSpace(r.URL.Query().Get("from")); v != "" {
			t, err := time.Parse(DayKey, v)
			if err != nil {
				http.Error(w, "from must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			from = &t
		}
		if v := strings.TrimSpace(r.URL.Query().Get("to")); v != "" {
			t, err := time.Parse(DayKey, v)
			if err != nil {
				http.Error(w, "to must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			to = &t
		}

		entries, err := svc.Series(r.Context(), chi.URLParam(r, "metric"), from, to)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]entryResponse, 0, len(entries))
		for _, e := range entries {
			out = append(out, toEntryResponse(e))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func toEntryResponse(e Entry) entryResponse {
	return entryResponse{
		ID:         e.ID,
		Metric:     e.Metric,
		Day:        e.Day,
		Value:      e.Value,
		RecordedAt: e.RecordedAt,
	}
}

// writeJSON duplicado a propósito por módulo (ver nota en calculator/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
