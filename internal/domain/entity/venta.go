package entity

import (
	"fmt"
	"time"
)

// EstadoVenta is the lifecycle state of a sale.
type EstadoVenta string

const (
	EstadoPendiente  EstadoVenta = "Pendiente"
	EstadoConfirmada EstadoVenta = "Confirmada"
	EstadoCancelada  EstadoVenta = "Cancelada"
)

// ParseEstadoVenta validates a raw status string.
func ParseEstadoVenta(s string) (EstadoVenta, error) {
	switch EstadoVenta(s) {
	case EstadoPendiente, EstadoConfirmada, EstadoCancelada:
		return EstadoVenta(s), nil
	default:
		return "", fmt.Errorf("estado de venta no válido: %q", s)
	}
}

// MetodoPago is the payment method of a sale.
type MetodoPago string

const (
	MetodoEfectivo      MetodoPago = "EFECTIVO"
	MetodoTarjeta       MetodoPago = "TARJETA"
	MetodoTransferencia MetodoPago = "TRANSFERENCIA"
)

// ParseMetodoPago validates a raw payment method string.
func ParseMetodoPago(s string) (MetodoPago, error) {
	switch MetodoPago(s) {
	case MetodoEfectivo, MetodoTarjeta, MetodoTransferencia:
		return MetodoPago(s), nil
	default:
		return "", fmt.Errorf("método de pago no válido: %q", s)
	}
}

// PaqueteRef is an optional reference to a PaqueteTuristico. The zero value
// means the sale has no package.
type PaqueteRef struct {
	id string
}

// SomePaquete builds a reference to the given package id.
func SomePaquete(id string) PaqueteRef {
	return PaqueteRef{id: id}
}

// Ref returns the package id and whether the reference is set.
func (r PaqueteRef) Ref() (string, bool) {
	return r.id, r.id != ""
}

// Venta represents a booking linking a client, an agent and optionally a
// tour package. FechaVenta is the travel start date.
type Venta struct {
	ID          string      `bson:"_id,omitempty" json:"id"`
	ClienteID   string      `bson:"clienteId" json:"clienteId"`
	AgenteID    string      `bson:"agenteId" json:"agenteId"`
	PaqueteID   string      `bson:"paqueteId,omitempty" json:"paqueteId,omitempty"`
	FechaVenta  time.Time   `bson:"fechaVenta" json:"fechaVenta"`
	MontoTotal  float64     `bson:"montoTotal" json:"montoTotal"`
	EstadoVenta EstadoVenta `bson:"estadoVenta" json:"estadoVenta"`
	MetodoPago  MetodoPago  `bson:"metodoPago" json:"metodoPago"`
	CreatedAt   time.Time   `bson:"createdAt" json:"createdAt"`
}

// Paquete returns the sale's package reference.
func (v *Venta) Paquete() PaqueteRef {
	return PaqueteRef{id: v.PaqueteID}
}

// DetalleVenta is a single line of a sale, pointing at either a service or a
// tour package.
type DetalleVenta struct {
	ID                  string  `bson:"_id,omitempty" json:"id"`
	VentaID             string  `bson:"ventaId" json:"ventaId"`
	ServicioID          string  `bson:"servicioId,omitempty" json:"servicioId,omitempty"`
	PaqueteID           string  `bson:"paqueteId,omitempty" json:"paqueteId,omitempty"`
	Cantidad            int     `bson:"cantidad" json:"cantidad"`
	PrecioUnitarioVenta float64 `bson:"precioUnitarioVenta" json:"precioUnitarioVenta"`
	Subtotal            float64 `bson:"subtotal" json:"subtotal"`
}
