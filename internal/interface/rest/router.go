package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/copipaste/agencia-SGE/internal/usecase"
)

// Handlers groups the dependencies of the HTTP surface.
type Handlers struct {
	Auth     *AuthHandler
	Cuentas  *CuentaHandler
	Catalogo *CatalogoHandler
	Ventas   *VentaHandler
	IA       *IAHandler
	Bi       *BiHandler

	AuthService *usecase.AuthService
}

// NewRouter wires the routes. Everything under /api except the auth
// endpoints requires a valid token; mutating catalog and account routes
// additionally require staff credentials.
func NewRouter(h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.Auth.Login)
		r.Post("/auth/register", h.Auth.Register)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware(h.AuthService))

			r.Post("/auth/fcm-token", h.Auth.RegisterFcmToken)

			r.Group(func(r chi.Router) {
				r.Use(requireAdmin)
				r.Get("/usuarios", h.Cuentas.ListUsuarios)
				r.Get("/usuarios/{id}", h.Cuentas.GetUsuario)
				r.Delete("/usuarios/{id}", h.Cuentas.DeleteUsuario)
			})

			r.Group(func(r chi.Router) {
				r.Use(requireStaff)

				r.Get("/clientes", h.Cuentas.ListClientes)
				r.Post("/clientes", h.Cuentas.CreateCliente)
				r.Get("/clientes/{id}", h.Cuentas.GetCliente)
				r.Put("/clientes/{id}", h.Cuentas.UpdateCliente)
				r.Delete("/clientes/{id}", h.Cuentas.DeleteCliente)

				r.Get("/agentes", h.Cuentas.ListAgentes)
				r.Post("/agentes", h.Cuentas.CreateAgente)
				r.Put("/agentes/{id}", h.Cuentas.UpdateAgente)
				r.Delete("/agentes/{id}", h.Cuentas.DeleteAgente)

				r.Post("/proveedores", h.Catalogo.CreateProveedor)
				r.Put("/proveedores/{id}", h.Catalogo.UpdateProveedor)
				r.Delete("/proveedores/{id}", h.Catalogo.DeleteProveedor)
				r.Post("/servicios", h.Catalogo.CreateServicio)
				r.Put("/servicios/{id}", h.Catalogo.UpdateServicio)
				r.Delete("/servicios/{id}", h.Catalogo.DeleteServicio)
				r.Post("/paquetes", h.Catalogo.CreatePaquete)
				r.Put("/paquetes/{id}", h.Catalogo.UpdatePaquete)
				r.Delete("/paquetes/{id}", h.Catalogo.DeletePaquete)

				r.Post("/ventas", h.Ventas.Create)
				r.Get("/ventas", h.Ventas.List)
				r.Get("/ventas/reporte", h.Ventas.Reporte)
				r.Get("/ventas/{id}", h.Ventas.Get)
				r.Delete("/ventas/{id}", h.Ventas.Delete)
				r.Post("/ventas/{id}/confirmar", h.Ventas.Confirmar)
				r.Post("/ventas/{id}/cancelar", h.Ventas.Cancelar)
				r.Get("/ventas/cliente/{clienteId}", h.Ventas.ListByCliente)
				r.Get("/ventas/agente/{agenteId}", h.Ventas.ListByAgente)

				r.Post("/ia/cancelacion/predict", h.IA.Predict)
				r.Post("/ia/cancelacion/recordatorios/enviar", h.IA.EnviarRecordatorios)
				r.Get("/ia/cancelacion/recordatorios/estadisticas", h.IA.Estadisticas)
				r.Get("/ia/cancelacion/alertas/pendientes", h.IA.AlertasPendientes)

				r.Get("/bi/health", h.Bi.Health)
				r.Get("/bi/sync/status", h.Bi.SyncStatus)
				r.Post("/bi/sync/restart", h.Bi.RestartSync)
				r.Post("/bi/sync/force", h.Bi.ForceSync)
				r.Get("/bi/dashboard/resumen", h.Bi.DashboardResumen)
				r.Get("/bi/kpi/margen-bruto", h.Bi.MargenBruto)
				r.Get("/bi/kpi/tasa-conversion", h.Bi.TasaConversion)
				r.Get("/bi/kpi/tasa-cancelacion", h.Bi.TasaCancelacion)
				r.Get("/bi/export/ventas", h.Bi.ExportVentas)
			})

			// Catalog reads are open to any authenticated account.
			r.Get("/proveedores", h.Catalogo.ListProveedores)
			r.Get("/servicios", h.Catalogo.ListServicios)
			r.Get("/servicios/{id}", h.Catalogo.GetServicio)
			r.Get("/paquetes", h.Catalogo.ListPaquetes)
			r.Get("/paquetes/{id}", h.Catalogo.GetPaquete)
			r.Get("/paquetes/{id}/servicios", h.Catalogo.GetPaqueteServicios)
		})
	})

	return r
}
