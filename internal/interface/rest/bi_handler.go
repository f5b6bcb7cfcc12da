package rest

import (
	"net/http"

	"github.com/copipaste/agencia-SGE/internal/domain/repository"
)

// BiHandler proxies the business-intelligence microservice.
type BiHandler struct {
	bi repository.BiRepository
}

// NewBiHandler creates a new BI handler
func NewBiHandler(bi repository.BiRepository) *BiHandler {
	return &BiHandler{bi: bi}
}

func (h *BiHandler) Health(w http.ResponseWriter, r *http.Request) {
	health, err := h.bi.CheckHealth(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, "BI service unavailable")
		return
	}
	writeJSON(w, http.StatusOK, health)
}

func (h *BiHandler) SyncStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.bi.GetSyncStatus(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, "BI service unavailable")
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (h *BiHandler) RestartSync(w http.ResponseWriter, r *http.Request) {
	result, err := h.bi.RestartSync(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, "BI service unavailable")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *BiHandler) ForceSync(w http.ResponseWriter, r *http.Request) {
	result, err := h.bi.ForceSync(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, "BI service unavailable")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *BiHandler) DashboardResumen(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	resumen, err := h.bi.GetDashboardResumen(r.Context(), q.Get("fechaInicio"), q.Get("fechaFin"))
	if err != nil {
		writeError(w, http.StatusBadGateway, "BI service unavailable")
		return
	}
	writeJSON(w, http.StatusOK, resumen)
}

func (h *BiHandler) MargenBruto(w http.ResponseWriter, r *http.Request) {
	kpi, err := h.bi.GetMargenBruto(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, "BI service unavailable")
		return
	}
	writeJSON(w, http.StatusOK, kpi)
}

func (h *BiHandler) TasaConversion(w http.ResponseWriter, r *http.Request) {
	kpi, err := h.bi.GetTasaConversion(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, "BI service unavailable")
		return
	}
	writeJSON(w, http.StatusOK, kpi)
}

func (h *BiHandler) TasaCancelacion(w http.ResponseWriter, r *http.Request) {
	kpi, err := h.bi.GetTasaCancelacion(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, "BI service unavailable")
		return
	}
	writeJSON(w, http.StatusOK, kpi)
}

// ExportVentas redirects to the BI export endpoint for the period.
func (h *BiHandler) ExportVentas(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	url := h.bi.ExportVentasURL(q.Get("fechaInicio"), q.Get("fechaFin"))
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}
