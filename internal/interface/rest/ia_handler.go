package rest

import (
	"net/http"
	"strings"

	"github.com/copipaste/agencia-SGE/internal/usecase"
)

// IAHandler serves the cancellation prediction and reminder endpoints.
type IAHandler struct {
	prediccion   *usecase.PrediccionService
	recordatorio *usecase.RecordatorioService
}

// NewIAHandler creates a new prediction handler
func NewIAHandler(prediccion *usecase.PrediccionService, recordatorio *usecase.RecordatorioService) *IAHandler {
	return &IAHandler{prediccion: prediccion, recordatorio: recordatorio}
}

type predictRequest struct {
	VentaID string `json:"ventaId"`
}

// Predict runs an on-demand cancellation prediction for a sale.
func (h *IAHandler) Predict(w http.ResponseWriter, r *http.Request) {
	var req predictRequest
	if err := decodeBody(r, &req); err != nil || req.VentaID == "" {
		writeError(w, http.StatusBadRequest, "ventaId is required")
		return
	}

	resp, err := h.prediccion.PredecirCancelacion(r.Context(), req.VentaID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusBadGateway, "prediction service unavailable")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// EnviarRecordatorios triggers an immediate send over every pending alert.
func (h *IAHandler) EnviarRecordatorios(w http.ResponseWriter, r *http.Request) {
	enviados, total := h.recordatorio.EnviarRecordatoriosManuales(r.Context())
	writeJSON(w, http.StatusOK, map[string]int{
		"enviados": enviados,
		"total":    total,
	})
}

// Estadisticas reports how many alerts still await a reminder.
func (h *IAHandler) Estadisticas(w http.ResponseWriter, r *http.Request) {
	pendientes, err := h.recordatorio.ContarPendientes(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to count pending alerts")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"alertasPendientes": pendientes})
}

// AlertasPendientes lists the alerts still awaiting a reminder.
func (h *IAHandler) AlertasPendientes(w http.ResponseWriter, r *http.Request) {
	alertas, err := h.recordatorio.ObtenerPendientes(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list pending alerts")
		return
	}
	writeJSON(w, http.StatusOK, alertas)
}
