package entity

import "time"

// Recommendation labels returned by the cancellation model.
const (
	RecomendacionSinAccion          = "sin_accion"
	RecomendacionRevisarManual      = "revisar_manual"
	RecomendacionEnviarRecordatorio = "enviar_recordatorio"
)

// PredictRequest is the feature vector sent to the cancellation model for an
// on-demand prediction. It is computed fresh on every call and never stored.
type PredictRequest struct {
	VentaID   string `json:"ventaId"`
	ClienteID string `json:"clienteId"`

	// Sale features
	MontoTotal        float64 `json:"montoTotal"`
	EsTemporadaAlta   int     `json:"esTemporadaAlta"`
	DiaSemanaReserva  int     `json:"diaSemanaReserva"`
	MetodoPagoTarjeta int     `json:"metodoPagoTarjeta"`
	TienePaquete      int     `json:"tienePaquete"`
	DuracionDias      int     `json:"duracionDias"`
	DestinoCategoria  int     `json:"destinoCategoria"`

	// Client history features
	TotalComprasPrevias       int     `json:"totalComprasPrevias"`
	TotalCancelacionesPrevias int     `json:"totalCancelacionesPrevias"`
	TasaCancelacionHistorica  float64 `json:"tasaCancelacionHistorica"`
	MontoPromedioCompras      float64 `json:"montoPromedioCompras"`
}

// PredictRequestFull extends the feature vector with the denormalized client
// and package identity the downstream alerting needs. Field names follow the
// model service's snake_case contract.
type PredictRequestFull struct {
	VentaID   string `json:"venta_id"`
	ClienteID string `json:"cliente_id"`

	EmailCliente  string    `json:"email_cliente,omitempty"`
	NombreCliente string    `json:"nombre_cliente,omitempty"`
	NombrePaquete string    `json:"nombre_paquete,omitempty"`
	Destino       string    `json:"destino,omitempty"`
	FechaVenta    time.Time `json:"fecha_venta"`
	MontoTotal    float64   `json:"monto_total"`

	EsTemporadaAlta   int `json:"es_temporada_alta"`
	DiaSemanaReserva  int `json:"dia_semana_reserva"`
	MetodoPagoTarjeta int `json:"metodo_pago_tarjeta"`
	TienePaquete      int `json:"tiene_paquete"`
	DuracionDias      int `json:"duracion_dias"`
	DestinoCategoria  int `json:"destino_categoria"`

	TotalComprasPrevias       int     `json:"total_compras_previas"`
	TotalCancelacionesPrevias int     `json:"total_cancelaciones_previas"`
	TasaCancelacionHistorica  float64 `json:"tasa_cancelacion_historica"`
	MontoPromedioCompras      float64 `json:"monto_promedio_compras"`
}

// PredictResponse is the cancellation model's answer.
type PredictResponse struct {
	Success                 bool     `json:"success"`
	VentaID                 string   `json:"venta_id"`
	ClienteID               string   `json:"cliente_id"`
	ProbabilidadCancelacion float64  `json:"probabilidad_cancelacion"`
	Recomendacion           string   `json:"recomendacion"`
	FactoresRiesgo          []string `json:"factores_riesgo"`
}
