package entity

import "time"

// AlertaCancelacion flags a sale as high cancellation risk. At most one alert
// exists per sale. Client and package data are denormalized at creation time
// so the reminder can be rendered without further lookups.
type AlertaCancelacion struct {
	ID            string `bson:"_id,omitempty" json:"id"`
	VentaID       string `bson:"ventaId" json:"ventaId"`
	ClienteID     string `bson:"clienteId" json:"clienteId"`
	EmailCliente  string `bson:"emailCliente" json:"emailCliente"`
	NombreCliente string `bson:"nombreCliente" json:"nombreCliente"`

	// Empty when the sale has no package.
	NombrePaquete string `bson:"nombrePaquete,omitempty" json:"nombrePaquete,omitempty"`
	Destino       string `bson:"destino,omitempty" json:"destino,omitempty"`

	FechaVenta              time.Time   `bson:"fechaVenta" json:"fechaVenta"`
	MontoTotal              float64     `bson:"montoTotal" json:"montoTotal"`
	ProbabilidadCancelacion float64     `bson:"probabilidadCancelacion" json:"probabilidadCancelacion"`
	Recomendacion           string      `bson:"recomendacion" json:"recomendacion"`
	FechaPrediccion         time.Time   `bson:"fechaPrediccion" json:"fechaPrediccion"`
	RecordatorioEnviado     bool        `bson:"recordatorioEnviado" json:"recordatorioEnviado"`
	FechaEnvioRecordatorio  *time.Time  `bson:"fechaEnvioRecordatorio,omitempty" json:"fechaEnvioRecordatorio,omitempty"`
	EstadoVenta             EstadoVenta `bson:"estadoVenta" json:"estadoVenta"`
}
