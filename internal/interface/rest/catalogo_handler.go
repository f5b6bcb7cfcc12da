package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/copipaste/agencia-SGE/internal/domain/entity"
	"github.com/copipaste/agencia-SGE/internal/domain/repository"
)

// CatalogoHandler serves providers, services and tour packages.
type CatalogoHandler struct {
	proveedorRepo repository.ProveedorRepository
	servicioRepo  repository.ServicioRepository
	paqueteRepo   repository.PaqueteRepository
}

// NewCatalogoHandler creates a new catalog handler
func NewCatalogoHandler(
	proveedorRepo repository.ProveedorRepository,
	servicioRepo repository.ServicioRepository,
	paqueteRepo repository.PaqueteRepository,
) *CatalogoHandler {
	return &CatalogoHandler{
		proveedorRepo: proveedorRepo,
		servicioRepo:  servicioRepo,
		paqueteRepo:   paqueteRepo,
	}
}

func (h *CatalogoHandler) ListProveedores(w http.ResponseWriter, r *http.Request) {
	proveedores, err := h.proveedorRepo.FindAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list providers")
		return
	}
	writeJSON(w, http.StatusOK, proveedores)
}

func (h *CatalogoHandler) CreateProveedor(w http.ResponseWriter, r *http.Request) {
	var proveedor entity.Proveedor
	if err := decodeBody(r, &proveedor); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if proveedor.NombreEmpresa == "" {
		writeError(w, http.StatusBadRequest, "nombreEmpresa is required")
		return
	}

	if err := h.proveedorRepo.Save(r.Context(), &proveedor); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save provider")
		return
	}
	writeJSON(w, http.StatusCreated, proveedor)
}

func (h *CatalogoHandler) UpdateProveedor(w http.ResponseWriter, r *http.Request) {
	var proveedor entity.Proveedor
	if err := decodeBody(r, &proveedor); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	proveedor.ID = chi.URLParam(r, "id")

	if err := h.proveedorRepo.Update(r.Context(), &proveedor); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update provider")
		return
	}
	writeJSON(w, http.StatusOK, proveedor)
}

func (h *CatalogoHandler) DeleteProveedor(w http.ResponseWriter, r *http.Request) {
	if err := h.proveedorRepo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete provider")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *CatalogoHandler) ListServicios(w http.ResponseWriter, r *http.Request) {
	if proveedorID := r.URL.Query().Get("proveedorId"); proveedorID != "" {
		servicios, err := h.servicioRepo.FindByProveedorID(r.Context(), proveedorID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to list services")
			return
		}
		writeJSON(w, http.StatusOK, servicios)
		return
	}

	servicios, err := h.servicioRepo.FindAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list services")
		return
	}
	writeJSON(w, http.StatusOK, servicios)
}

func (h *CatalogoHandler) GetServicio(w http.ResponseWriter, r *http.Request) {
	servicio, err := h.servicioRepo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load service")
		return
	}
	if servicio == nil {
		writeError(w, http.StatusNotFound, "service not found")
		return
	}
	writeJSON(w, http.StatusOK, servicio)
}

func (h *CatalogoHandler) CreateServicio(w http.ResponseWriter, r *http.Request) {
	var servicio entity.Servicio
	if err := decodeBody(r, &servicio); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if servicio.NombreServicio == "" {
		writeError(w, http.StatusBadRequest, "nombreServicio is required")
		return
	}

	if err := h.servicioRepo.Save(r.Context(), &servicio); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save service")
		return
	}
	writeJSON(w, http.StatusCreated, servicio)
}

func (h *CatalogoHandler) UpdateServicio(w http.ResponseWriter, r *http.Request) {
	var servicio entity.Servicio
	if err := decodeBody(r, &servicio); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	servicio.ID = chi.URLParam(r, "id")

	if err := h.servicioRepo.Update(r.Context(), &servicio); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update service")
		return
	}
	writeJSON(w, http.StatusOK, servicio)
}

func (h *CatalogoHandler) DeleteServicio(w http.ResponseWriter, r *http.Request) {
	if err := h.servicioRepo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete service")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *CatalogoHandler) ListPaquetes(w http.ResponseWriter, r *http.Request) {
	paquetes, err := h.paqueteRepo.FindAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list packages")
		return
	}
	writeJSON(w, http.StatusOK, paquetes)
}

func (h *CatalogoHandler) GetPaquete(w http.ResponseWriter, r *http.Request) {
	paquete, err := h.paqueteRepo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load package")
		return
	}
	if paquete == nil {
		writeError(w, http.StatusNotFound, "package not found")
		return
	}
	writeJSON(w, http.StatusOK, paquete)
}

type createPaqueteRequest struct {
	entity.PaqueteTuristico
	ServicioIDs []string `json:"servicioIds,omitempty"`
}

func (h *CatalogoHandler) CreatePaquete(w http.ResponseWriter, r *http.Request) {
	var req createPaqueteRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.NombrePaquete == "" || req.DestinoPrincipal == "" {
		writeError(w, http.StatusBadRequest, "nombrePaquete and destinoPrincipal are required")
		return
	}

	if err := h.paqueteRepo.Save(r.Context(), &req.PaqueteTuristico); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save package")
		return
	}

	for _, servicioID := range req.ServicioIDs {
		link := &entity.PaqueteServicio{PaqueteID: req.PaqueteTuristico.ID, ServicioID: servicioID}
		if err := h.paqueteRepo.AddServicio(r.Context(), link); err != nil {
			writeError(w, http.StatusInternalServerError, "failed to link service to package")
			return
		}
	}

	writeJSON(w, http.StatusCreated, req.PaqueteTuristico)
}

func (h *CatalogoHandler) UpdatePaquete(w http.ResponseWriter, r *http.Request) {
	var paquete entity.PaqueteTuristico
	if err := decodeBody(r, &paquete); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	paquete.ID = chi.URLParam(r, "id")

	if err := h.paqueteRepo.Update(r.Context(), &paquete); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update package")
		return
	}
	writeJSON(w, http.StatusOK, paquete)
}

func (h *CatalogoHandler) DeletePaquete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.paqueteRepo.RemoveServicios(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to unlink package services")
		return
	}
	if err := h.paqueteRepo.Delete(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete package")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *CatalogoHandler) GetPaqueteServicios(w http.ResponseWriter, r *http.Request) {
	links, err := h.paqueteRepo.FindServicios(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list package services")
		return
	}

	servicios := make([]*entity.Servicio, 0, len(links))
	for _, link := range links {
		servicio, err := h.servicioRepo.FindByID(r.Context(), link.ServicioID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to load package services")
			return
		}
		if servicio != nil {
			servicios = append(servicios, servicio)
		}
	}
	writeJSON(w, http.StatusOK, servicios)
}
