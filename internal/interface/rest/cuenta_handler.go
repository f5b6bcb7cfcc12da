package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/copipaste/agencia-SGE/internal/domain/entity"
	"github.com/copipaste/agencia-SGE/internal/domain/repository"
)

// CuentaHandler serves user, client and agent account management.
type CuentaHandler struct {
	usuarioRepo repository.UsuarioRepository
	clienteRepo repository.ClienteRepository
	agenteRepo  repository.AgenteRepository
}

// NewCuentaHandler creates a new account handler
func NewCuentaHandler(
	usuarioRepo repository.UsuarioRepository,
	clienteRepo repository.ClienteRepository,
	agenteRepo repository.AgenteRepository,
) *CuentaHandler {
	return &CuentaHandler{
		usuarioRepo: usuarioRepo,
		clienteRepo: clienteRepo,
		agenteRepo:  agenteRepo,
	}
}

func (h *CuentaHandler) ListUsuarios(w http.ResponseWriter, r *http.Request) {
	usuarios, err := h.usuarioRepo.FindAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list users")
		return
	}
	writeJSON(w, http.StatusOK, usuarios)
}

func (h *CuentaHandler) GetUsuario(w http.ResponseWriter, r *http.Request) {
	usuario, err := h.usuarioRepo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load user")
		return
	}
	if usuario == nil {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, usuario)
}

func (h *CuentaHandler) DeleteUsuario(w http.ResponseWriter, r *http.Request) {
	if err := h.usuarioRepo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete user")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *CuentaHandler) ListClientes(w http.ResponseWriter, r *http.Request) {
	clientes, err := h.clienteRepo.FindAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list clients")
		return
	}
	writeJSON(w, http.StatusOK, clientes)
}

func (h *CuentaHandler) GetCliente(w http.ResponseWriter, r *http.Request) {
	cliente, err := h.clienteRepo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load client")
		return
	}
	if cliente == nil {
		writeError(w, http.StatusNotFound, "client not found")
		return
	}
	writeJSON(w, http.StatusOK, cliente)
}

func (h *CuentaHandler) CreateCliente(w http.ResponseWriter, r *http.Request) {
	var cliente entity.Cliente
	if err := decodeBody(r, &cliente); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if cliente.UsuarioID == "" {
		writeError(w, http.StatusBadRequest, "usuarioId is required")
		return
	}

	usuario, err := h.usuarioRepo.FindByID(r.Context(), cliente.UsuarioID)
	if err != nil || usuario == nil {
		writeError(w, http.StatusBadRequest, "usuario does not exist")
		return
	}

	if err := h.clienteRepo.Save(r.Context(), &cliente); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save client")
		return
	}
	writeJSON(w, http.StatusCreated, cliente)
}

func (h *CuentaHandler) UpdateCliente(w http.ResponseWriter, r *http.Request) {
	var cliente entity.Cliente
	if err := decodeBody(r, &cliente); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	cliente.ID = chi.URLParam(r, "id")

	if err := h.clienteRepo.Update(r.Context(), &cliente); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update client")
		return
	}
	writeJSON(w, http.StatusOK, cliente)
}

func (h *CuentaHandler) DeleteCliente(w http.ResponseWriter, r *http.Request) {
	if err := h.clienteRepo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete client")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *CuentaHandler) ListAgentes(w http.ResponseWriter, r *http.Request) {
	agentes, err := h.agenteRepo.FindAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list agents")
		return
	}
	writeJSON(w, http.StatusOK, agentes)
}

func (h *CuentaHandler) CreateAgente(w http.ResponseWriter, r *http.Request) {
	var agente entity.Agente
	if err := decodeBody(r, &agente); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if agente.UsuarioID == "" {
		writeError(w, http.StatusBadRequest, "usuarioId is required")
		return
	}

	usuario, err := h.usuarioRepo.FindByID(r.Context(), agente.UsuarioID)
	if err != nil || usuario == nil {
		writeError(w, http.StatusBadRequest, "usuario does not exist")
		return
	}

	if err := h.agenteRepo.Save(r.Context(), &agente); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save agent")
		return
	}
	writeJSON(w, http.StatusCreated, agente)
}

func (h *CuentaHandler) UpdateAgente(w http.ResponseWriter, r *http.Request) {
	var agente entity.Agente
	if err := decodeBody(r, &agente); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	agente.ID = chi.URLParam(r, "id")

	if err := h.agenteRepo.Update(r.Context(), &agente); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update agent")
		return
	}
	writeJSON(w, http.StatusOK, agente)
}

func (h *CuentaHandler) DeleteAgente(w http.ResponseWriter, r *http.Request) {
	if err := h.agenteRepo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete agent")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
