package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/copipaste/agencia-SGE/internal/domain/entity"
	"github.com/copipaste/agencia-SGE/internal/domain/repository"
	"github.com/copipaste/agencia-SGE/pkg/logger"
)

// Defaults used when a sale has no package or the package lookup misses.
const (
	defaultDuracionDias     = 5
	defaultDestinoCategoria = 2
)

// Destination categories.
const (
	DestinoPlaya    = 0
	DestinoCiudad   = 1
	DestinoAventura = 2
)

var (
	terminosPlaya  = []string{"playa", "cancún", "mar", "caribe", "costa", "isla"}
	terminosCiudad = []string{"ciudad", "urbano", "la paz", "cochabamba", "santa cruz"}
)

// FeatureCalculator derives the feature vector the cancellation model
// expects from a sale and its client's purchase history. Every lookup is
// best-effort: a missing package or an unreadable history yields defaults,
// never an error.
type FeatureCalculator struct {
	ventaRepo   repository.VentaRepository
	paqueteRepo repository.PaqueteRepository
	clienteRepo repository.ClienteRepository
	usuarioRepo repository.UsuarioRepository
	logger      logger.Logger
}

// NewFeatureCalculator creates a new feature calculator
func NewFeatureCalculator(
	ventaRepo repository.VentaRepository,
	paqueteRepo repository.PaqueteRepository,
	clienteRepo repository.ClienteRepository,
	usuarioRepo repository.UsuarioRepository,
	logger logger.Logger,
) *FeatureCalculator {
	return &FeatureCalculator{
		ventaRepo:   ventaRepo,
		paqueteRepo: paqueteRepo,
		clienteRepo: clienteRepo,
		usuarioRepo: usuarioRepo,
		logger:      logger,
	}
}

// CalcularFeatures builds the bare feature vector for an on-demand
// prediction.
func (c *FeatureCalculator) CalcularFeatures(ctx context.Context, venta *entity.Venta, clienteID string) *entity.PredictRequest {
	req := &entity.PredictRequest{
		VentaID:   venta.ID,
		ClienteID: clienteID,

		MontoTotal:        venta.MontoTotal,
		EsTemporadaAlta:   boolToInt(esTemporadaAlta(venta.FechaVenta)),
		DiaSemanaReserva:  diaSemanaReserva(venta.FechaVenta),
		MetodoPagoTarjeta: boolToInt(venta.MetodoPago == entity.MetodoTarjeta),
	}

	req.DuracionDias = defaultDuracionDias
	req.DestinoCategoria = defaultDestinoCategoria

	if paqueteID, ok := venta.Paquete().Ref(); ok {
		req.TienePaquete = 1
		if paquete, err := c.paqueteRepo.FindByID(ctx, paqueteID); err == nil && paquete != nil {
			req.DuracionDias = paquete.DuracionDias
			req.DestinoCategoria = clasificarDestino(paquete.DestinoPrincipal)
		}
	}

	historial := c.historialCliente(ctx, clienteID)
	req.TotalComprasPrevias = historial.compras
	req.TotalCancelacionesPrevias = historial.cancelaciones
	req.TasaCancelacionHistorica = historial.tasaCancelacion
	req.MontoPromedioCompras = historial.montoPromedio

	return req
}

// CalcularFeaturesCompletas builds the feature vector extended with the
// denormalized client and package identity the alert store needs. Used when
// a booking is created.
func (c *FeatureCalculator) CalcularFeaturesCompletas(ctx context.Context, venta *entity.Venta, clienteID string) *entity.PredictRequestFull {
	req := &entity.PredictRequestFull{
		VentaID:   venta.ID,
		ClienteID: clienteID,

		FechaVenta: venta.FechaVenta,
		MontoTotal: venta.MontoTotal,

		EsTemporadaAlta:   boolToInt(esTemporadaAlta(venta.FechaVenta)),
		DiaSemanaReserva:  diaSemanaReserva(venta.FechaVenta),
		MetodoPagoTarjeta: boolToInt(venta.MetodoPago == entity.MetodoTarjeta),
	}

	if cliente, err := c.clienteRepo.FindByID(ctx, clienteID); err == nil && cliente != nil {
		if usuario, err := c.usuarioRepo.FindByID(ctx, cliente.UsuarioID); err == nil && usuario != nil {
			req.EmailCliente = usuario.Email
			req.NombreCliente = usuario.NombreCompleto()
		}
	}

	req.DuracionDias = defaultDuracionDias
	req.DestinoCategoria = defaultDestinoCategoria

	if paqueteID, ok := venta.Paquete().Ref(); ok {
		req.TienePaquete = 1
		if paquete, err := c.paqueteRepo.FindByID(ctx, paqueteID); err == nil && paquete != nil {
			req.NombrePaquete = paquete.NombrePaquete
			req.Destino = paquete.DestinoPrincipal
			req.DuracionDias = paquete.DuracionDias
			req.DestinoCategoria = clasificarDestino(paquete.DestinoPrincipal)
		}
	}

	historial := c.historialCliente(ctx, clienteID)
	req.TotalComprasPrevias = historial.compras
	req.TotalCancelacionesPrevias = historial.cancelaciones
	req.TasaCancelacionHistorica = historial.tasaCancelacion
	req.MontoPromedioCompras = historial.montoPromedio

	return req
}

type historialFeatures struct {
	compras         int
	cancelaciones   int
	tasaCancelacion float64
	montoPromedio   float64
}

func (c *FeatureCalculator) historialCliente(ctx context.Context, clienteID string) historialFeatures {
	ventas, err := c.ventaRepo.FindByClienteID(ctx, clienteID)
	if err != nil {
		c.logger.Warn("Failed to load client history, using zero features", "clienteId", clienteID, "error", err)
		return historialFeatures{}
	}

	var h historialFeatures
	h.compras = len(ventas)

	var montoTotal float64
	for _, v := range ventas {
		if v.EstadoVenta == entity.EstadoCancelada {
			h.cancelaciones++
		}
		montoTotal += v.MontoTotal
	}

	if h.compras > 0 {
		h.tasaCancelacion = float64(h.cancelaciones) / float64(h.compras)
		h.montoPromedio = montoTotal / float64(h.compras)
	}

	return h
}

// esTemporadaAlta reports whether the travel date falls in high season:
// July, August or December.
func esTemporadaAlta(fecha time.Time) bool {
	mes := int(fecha.Month())
	return mes == 7 || mes == 8 || mes == 12
}

// diaSemanaReserva maps the travel date's weekday to 0=Monday .. 6=Sunday.
func diaSemanaReserva(fecha time.Time) int {
	return (int(fecha.Weekday()) + 6) % 7
}

// clasificarDestino buckets a destination string: 0 beach/coast,
// 1 city/urban, 2 adventure/other. Case-insensitive substring match, beach
// terms checked first.
func clasificarDestino(destino string) int {
	d := strings.ToLower(destino)

	for _, t := range terminosPlaya {
		if strings.Contains(d, t) {
			return DestinoPlaya
		}
	}

	for _, t := range terminosCiudad {
		if strings.Contains(d, t) {
			return DestinoCiudad
		}
	}

	return DestinoAventura
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
