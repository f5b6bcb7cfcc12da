package rest

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/copipaste/agencia-SGE/internal/domain/entity"
	"github.com/copipaste/agencia-SGE/internal/usecase"
)

// VentaHandler serves the sale lifecycle endpoints.
type VentaHandler struct {
	ventas *usecase.VentaService
}

// NewVentaHandler creates a new sale handler
func NewVentaHandler(ventas *usecase.VentaService) *VentaHandler {
	return &VentaHandler{ventas: ventas}
}

func (h *VentaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateVentaInput
	if err := decodeBody(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	venta, err := h.ventas.CreateVenta(r.Context(), input)
	if err != nil {
		if isValidationError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create venta")
		return
	}
	writeJSON(w, http.StatusCreated, venta)
}

func (h *VentaHandler) Get(w http.ResponseWriter, r *http.Request) {
	venta, detalles, err := h.ventas.GetVenta(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load venta")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"venta":    venta,
		"detalles": detalles,
	})
}

func (h *VentaHandler) List(w http.ResponseWriter, r *http.Request) {
	ventas, err := h.ventas.ListVentas(r.Context(), r.URL.Query().Get("estado"))
	if err != nil {
		if isValidationError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to list ventas")
		return
	}
	writeJSON(w, http.StatusOK, ventas)
}

func (h *VentaHandler) ListByCliente(w http.ResponseWriter, r *http.Request) {
	ventas, err := h.ventas.ListVentasByCliente(r.Context(), chi.URLParam(r, "clienteId"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list ventas")
		return
	}
	writeJSON(w, http.StatusOK, ventas)
}

func (h *VentaHandler) ListByAgente(w http.ResponseWriter, r *http.Request) {
	ventas, err := h.ventas.ListVentasByAgente(r.Context(), chi.URLParam(r, "agenteId"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list ventas")
		return
	}
	writeJSON(w, http.StatusOK, ventas)
}

func (h *VentaHandler) Confirmar(w http.ResponseWriter, r *http.Request) {
	h.cambiarEstado(w, r, h.ventas.ConfirmarVenta)
}

func (h *VentaHandler) Cancelar(w http.ResponseWriter, r *http.Request) {
	h.cambiarEstado(w, r, h.ventas.CancelarVenta)
}

func (h *VentaHandler) cambiarEstado(w http.ResponseWriter, r *http.Request, op func(context.Context, string) (*entity.Venta, error)) {
	venta, err := op(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update venta")
		return
	}
	writeJSON(w, http.StatusOK, venta)
}

func (h *VentaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.ventas.DeleteVenta(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete venta")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *VentaHandler) Reporte(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	inicio, err := parseFecha(q.Get("fechaInicio"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "fechaInicio must be YYYY-MM-DD")
		return
	}
	fin, err := parseFecha(q.Get("fechaFin"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "fechaFin must be YYYY-MM-DD")
		return
	}

	reporte, err := h.ventas.GetReporteVentas(r.Context(), inicio, fin)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to build report")
		return
	}
	writeJSON(w, http.StatusOK, reporte)
}

func parseFecha(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", s)
}

// isValidationError distinguishes bad input from infrastructure failures.
func isValidationError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "no válido") || strings.Contains(msg, "not found")
}
