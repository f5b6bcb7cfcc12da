package entity

// Response shapes of the business-intelligence microservice.

type BiHealth struct {
	Status string `json:"status"`
}

type BiSyncStatus struct {
	SyncEnabled bool   `json:"sync_enabled"`
	SyncRunning bool   `json:"sync_running"`
	Message     string `json:"message"`
}

type BiSyncRestart struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type BiKpi struct {
	Nombre        string  `json:"nombre"`
	Valor         float64 `json:"valor"`
	PeriodoInicio string  `json:"periodo_inicio"`
	PeriodoFin    string  `json:"periodo_fin"`
	Unidad        string  `json:"unidad"`
	Descripcion   string  `json:"descripcion"`
}

type BiDashboardResumen struct {
	Periodo struct {
		Inicio string `json:"inicio"`
		Fin    string `json:"fin"`
	} `json:"periodo"`
	Kpis struct {
		TotalClientes          int     `json:"total_clientes"`
		TotalVentasConfirmadas int     `json:"total_ventas_confirmadas"`
		TotalVentasPendientes  int     `json:"total_ventas_pendientes"`
		TotalVentasCanceladas  int     `json:"total_ventas_canceladas"`
		TotalVentas            int     `json:"total_ventas"`
		TotalMontoVendido      float64 `json:"total_monto_vendido"`
		TotalMontoPendiente    float64 `json:"total_monto_pendiente"`
		TasaCancelacion        float64 `json:"tasa_cancelacion"`
	} `json:"kpis"`
	TopDestinos []struct {
		Destino  string  `json:"destino"`
		Ingresos float64 `json:"ingresos"`
	} `json:"top_destinos"`
	TendenciaReservasPorDia []struct {
		Fecha            string `json:"fecha"`
		CantidadReservas int    `json:"cantidad_reservas"`
	} `json:"tendencia_reservas_por_dia"`
}
