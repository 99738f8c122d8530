package calculator

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/calculator", func(cr chi.Router) {
		cr.Post("/compute", computeHandler(svc))

		cr.Post("/presets", savePresetHandler(svc))
		cr.Get("/presets", listPresetsHandler(svc))
		cr.Delete("/presets/{presetID}", deletePresetHandler(svc))
	})
}

// componentRequest es una fila de componente tal como viene del formulario:
// masa y volumen como texto crudo (el parseo laxo es del dominio).
type componentRequest struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	DryMassMg     string `json:"dry_mass_mg"`
	ReconVolumeMl string `json:"recon_volume_ml"`
}

// computeRequest es el cuerpo para calcular métricas de la mezcla.
// dose_mg y dose_units son mutuamente excluyentes; si vienen ambos,
// gana dose_mg.
type computeRequest struct {
	Components []componentRequest `json:"components"`
	DoseMg     string             `json:"dose_mg"`
	DoseUnits  string             `json:"dose_units"`
}

// presetResponse representa un preset guardado devuelto por la API.
type presetResponse struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Components []componentRequest `json:"components"`
	DoseUnit   DoseUnit           `json:"dose_unit"`
	DoseAmount float64            `json:"dose_amount"`
	CreatedAt  time.Time          `json:"created_at"`
}

// computeHandler godoc
// @Summary Calcular métricas de la mezcla
// @Description Transformación pura: componentes + dosis deseada => concentración, factores de conversión U-100, volumen a cargar y contribución por componente. Campos en blanco o no numéricos cuentan como 0; nunca falla.
// @Tags calculator
// @Accept json
// @Produce json
// @Param payload body computeRequest true "Componentes (1-4) y dosis deseada en mg o IU"
// @Success 200 {object} Metrics
// @Failure 400 {string} string "invalid json"
// @Router /calculator/compute [post]
func computeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req computeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		m := svc.Compute(toComponents(req.Components), ResolveDose(req.DoseMg, req.DoseUnits))
		writeJSON(w, http.StatusOK, m)
	}
}

// savePresetRequest es el cuerpo para guardar un snapshot nombrado.
type savePresetRequest struct {
	Name       string             `json:"name"`
	Components []componentRequest `json:"components"`
	DoseMg     string             `json:"dose_mg"`
	DoseUnits  string             `json:"dose_units"`
}

// savePresetHandler godoc
// @Summary Guardar preset de calculadora
// @Description Guarda la configuración completa (componentes + dosis) como preset nombrado. La colección es más-reciente-primero y retiene como máximo 20.
// @Tags calculator
// @Accept json
// @Produce json
// @Param payload body savePresetRequest true "Nombre y configuración a guardar"
// @Success 201 {object} presetResponse
// @Failure 400 {string} string "invalid json / name requerido"
// @Router /calculator/presets [post]
func savePresetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req savePresetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.SavePreset(r.Context(), req.Name, toComponents(req.Components), ResolveDose(req.DoseMg, req.DoseUnits))
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toPresetResponse(p))
	}
}

// listPresetsHandler godoc
// @Summary Listar presets guardados
// @Tags calculator
// @Produce json
// @Success 200 {array} presetResponse
// @Failure 500 {string} string "internal error"
// @Router /calculator/presets [get]
func listPresetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListPresets(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]presetResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPresetResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// deletePresetHandler godoc
// @Summary Borrar un preset
// @Tags calculator
// @Param presetID path string true "ID del preset"
// @Success 204 {string} string "sin contenido"
// @Failure 404 {string} string "preset not found"
// @Router /calculator/presets/{presetID} [delete]
func deletePresetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := svc.DeletePreset(r.Context(), chi.URLParam(r, "presetID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidInput) {
				http.Error(w, "preset not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toComponents(in []componentRequest) []Component {
	out := make([]Component, 0, len(in))
	for _, c := range in {
		out = append(out, Component{
			ID:            c.ID,
			Name:          c.Name,
			DryMassMg:     c.DryMassMg,
			ReconVolumeMl: c.ReconVolumeMl,
		})
	}
	return out
}

func toPresetResponse(p Preset) presetResponse {
	comps := make([]componentRequest, 0, len(p.Components))
	for _, c := range p.Components {
		comps = append(comps, componentRequest{
			ID:            c.ID,
			Name:          c.Name,
			DryMassMg:     c.DryMassMg,
			ReconVolumeMl: c.ReconVolumeMl,
		})
	}
	return presetResponse{
		ID:         p.ID,
		Name:       p.Name,
		Components: comps,
		DoseUnit:   p.Dose.Unit,
		DoseAmount: p.Dose.Amount,
		CreatedAt:  p.CreatedAt,
	}
}

// writeJSON está duplicado a propósito en los handlers de cada módulo
// (mismo criterio que el resto del repo: no extraer helpers compartidos
// hasta que duela).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
