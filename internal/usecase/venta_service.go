package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/copipaste/agencia-SGE/internal/domain/entity"
	"github.com/copipaste/agencia-SGE/internal/domain/repository"
	"github.com/copipaste/agencia-SGE/pkg/logger"
)

// DetalleVentaInput is one line of a booking request.
type DetalleVentaInput struct {
	ServicioID          string  `json:"servicioId,omitempty"`
	PaqueteID           string  `json:"paqueteId,omitempty"`
	Cantidad            int     `json:"cantidad"`
	PrecioUnitarioVenta float64 `json:"precioUnitarioVenta"`
}

// CreateVentaInput is a booking registration request.
type CreateVentaInput struct {
	ClienteID  string              `json:"clienteId"`
	AgenteID   string              `json:"agenteId"`
	PaqueteID  string              `json:"paqueteId,omitempty"`
	FechaVenta time.Time           `json:"fechaVenta"`
	Estado     string              `json:"estadoVenta"`
	MetodoPago string              `json:"metodoPago"`
	Detalles   []DetalleVentaInput `json:"detalles"`
}

// ReporteVentas aggregates sales over a period.
type ReporteVentas struct {
	Total       int     `json:"total"`
	Pendientes  int     `json:"pendientes"`
	Confirmadas int     `json:"confirmadas"`
	Canceladas  int     `json:"canceladas"`
	MontoTotal  float64 `json:"montoTotal"`
}

// VentaService manages the sale lifecycle. Registering a pending booking
// also feeds the cancellation risk pipeline and notifies the client's
// device; both are best-effort and never fail the booking.
type VentaService struct {
	ventaRepo    repository.VentaRepository
	detalleRepo  repository.DetalleVentaRepository
	clienteRepo  repository.ClienteRepository
	agenteRepo   repository.AgenteRepository
	usuarioRepo  repository.UsuarioRepository
	prediccion   *PrediccionService
	recordatorio *RecordatorioService
	push         repository.PushRepository
	logger       logger.Logger
}

// NewVentaService creates a new sale service
func NewVentaService(
	ventaRepo repository.VentaRepository,
	detalleRepo repository.DetalleVentaRepository,
	clienteRepo repository.ClienteRepository,
	agenteRepo repository.AgenteRepository,
	usuarioRepo repository.UsuarioRepository,
	prediccion *PrediccionService,
	recordatorio *RecordatorioService,
	push repository.PushRepository,
	logger logger.Logger,
) *VentaService {
	return &VentaService{
		ventaRepo:    ventaRepo,
		detalleRepo:  detalleRepo,
		clienteRepo:  clienteRepo,
		agenteRepo:   agenteRepo,
		usuarioRepo:  usuarioRepo,
		prediccion:   prediccion,
		recordatorio: recordatorio,
		push:         push,
		logger:       logger,
	}
}

// CreateVenta registers a booking with its lines, computes the total from
// the lines, and for pending bookings runs the cancellation prediction.
func (s *VentaService) CreateVenta(ctx context.Context, input CreateVentaInput) (*entity.Venta, error) {
	estado, err := entity.ParseEstadoVenta(input.Estado)
	if err != nil {
		return nil, err
	}
	metodo, err := entity.ParseMetodoPago(input.MetodoPago)
	if err != nil {
		return nil, err
	}

	cliente, err := s.clienteRepo.FindByID(ctx, input.ClienteID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cliente: %w", err)
	}
	if cliente == nil {
		return nil, fmt.Errorf("cliente %s not found", input.ClienteID)
	}

	agente, err := s.agenteRepo.FindByID(ctx, input.AgenteID)
	if err != nil {
		return nil, fmt.Errorf("failed to load agente: %w", err)
	}
	if agente == nil {
		return nil, fmt.Errorf("agente %s not found", input.AgenteID)
	}

	var monto float64
	for _, d := range input.Detalles {
		monto += float64(d.Cantidad) * d.PrecioUnitarioVenta
	}

	venta := &entity.Venta{
		ClienteID:   input.ClienteID,
		AgenteID:    input.AgenteID,
		PaqueteID:   input.PaqueteID,
		FechaVenta:  input.FechaVenta,
		MontoTotal:  monto,
		EstadoVenta: estado,
		MetodoPago:  metodo,
		CreatedAt:   time.Now(),
	}

	if err := s.ventaRepo.Save(ctx, venta); err != nil {
		return nil, fmt.Errorf("failed to save venta: %w", err)
	}

	for _, d := range input.Detalles {
		detalle := &entity.DetalleVenta{
			VentaID:             venta.ID,
			ServicioID:          d.ServicioID,
			PaqueteID:           d.PaqueteID,
			Cantidad:            d.Cantidad,
			PrecioUnitarioVenta: d.PrecioUnitarioVenta,
			Subtotal:            float64(d.Cantidad) * d.PrecioUnitarioVenta,
		}
		if err := s.detalleRepo.Save(ctx, detalle); err != nil {
			return nil, fmt.Errorf("failed to save detalle for venta %s: %w", venta.ID, err)
		}
	}

	s.logger.Info("Venta created",
		"ventaId", venta.ID,
		"clienteId", venta.ClienteID,
		"monto", venta.MontoTotal,
		"estado", venta.EstadoVenta)

	s.notificarCliente(ctx, cliente.UsuarioID, "Nueva Reserva Registrada",
		fmt.Sprintf("Tu reserva por Bs. %.2f fue registrada. Estado: %s.", venta.MontoTotal, venta.EstadoVenta),
		venta.ID)

	if estado == entity.EstadoPendiente {
		if req, prediccion := s.prediccion.PredecirCancelacionSinFallar(ctx, venta); prediccion != nil {
			s.recordatorio.RegistrarAlerta(ctx, req, prediccion)
		}
	}

	return venta, nil
}

// GetVenta returns a sale with its lines.
func (s *VentaService) GetVenta(ctx context.Context, id string) (*entity.Venta, []*entity.DetalleVenta, error) {
	venta, err := s.ventaRepo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if venta == nil {
		return nil, nil, fmt.Errorf("venta %s not found", id)
	}

	detalles, err := s.detalleRepo.FindByVentaID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return venta, detalles, nil
}

// ListVentas returns all sales, optionally filtered by status.
func (s *VentaService) ListVentas(ctx context.Context, estado string) ([]*entity.Venta, error) {
	if estado == "" {
		return s.ventaRepo.FindAll(ctx)
	}
	parsed, err := entity.ParseEstadoVenta(estado)
	if err != nil {
		return nil, err
	}
	return s.ventaRepo.FindByEstado(ctx, parsed)
}

// ListVentasByCliente returns a client's sales.
func (s *VentaService) ListVentasByCliente(ctx context.Context, clienteID string) ([]*entity.Venta, error) {
	return s.ventaRepo.FindByClienteID(ctx, clienteID)
}

// ListVentasByAgente returns an agent's sales.
func (s *VentaService) ListVentasByAgente(ctx context.Context, agenteID string) ([]*entity.Venta, error) {
	return s.ventaRepo.FindByAgenteID(ctx, agenteID)
}

// ConfirmarVenta moves a sale to Confirmada and notifies the client.
func (s *VentaService) ConfirmarVenta(ctx context.Context, id string) (*entity.Venta, error) {
	return s.cambiarEstado(ctx, id, entity.EstadoConfirmada,
		"Reserva Confirmada", "Tu pago fue recibido y tu reserva está confirmada. ¡Buen viaje!")
}

// CancelarVenta moves a sale to Cancelada and notifies the client.
func (s *VentaService) CancelarVenta(ctx context.Context, id string) (*entity.Venta, error) {
	return s.cambiarEstado(ctx, id, entity.EstadoCancelada,
		"Reserva Cancelada", "Tu reserva fue cancelada. Contáctanos si se trata de un error.")
}

func (s *VentaService) cambiarEstado(ctx context.Context, id string, estado entity.EstadoVenta, titulo, cuerpo string) (*entity.Venta, error) {
	venta, err := s.ventaRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if venta == nil {
		return nil, fmt.Errorf("venta %s not found", id)
	}

	venta.EstadoVenta = estado
	if err := s.ventaRepo.Update(ctx, venta); err != nil {
		return nil, fmt.Errorf("failed to update venta %s: %w", id, err)
	}

	s.logger.Info("Venta status changed", "ventaId", id, "estado", estado)

	if cliente, err := s.clienteRepo.FindByID(ctx, venta.ClienteID); err == nil && cliente != nil {
		s.notificarCliente(ctx, cliente.UsuarioID, titulo, cuerpo, venta.ID)
	}

	return venta, nil
}

// DeleteVenta removes a sale and its lines.
func (s *VentaService) DeleteVenta(ctx context.Context, id string) error {
	if err := s.detalleRepo.DeleteByVentaID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete detalles for venta %s: %w", id, err)
	}
	return s.ventaRepo.Delete(ctx, id)
}

// GetReporteVentas summarizes sales by status and total amount, optionally
// bounded by travel date. Zero bounds mean no bound.
func (s *VentaService) GetReporteVentas(ctx context.Context, inicio, fin time.Time) (*ReporteVentas, error) {
	ventas, err := s.ventaRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	reporte := &ReporteVentas{}
	for _, v := range ventas {
		if !inicio.IsZero() && v.FechaVenta.Before(inicio) {
			continue
		}
		if !fin.IsZero() && v.FechaVenta.After(fin) {
			continue
		}

		reporte.Total++
		reporte.MontoTotal += v.MontoTotal
		switch v.EstadoVenta {
		case entity.EstadoPendiente:
			reporte.Pendientes++
		case entity.EstadoConfirmada:
			reporte.Confirmadas++
		case entity.EstadoCancelada:
			reporte.Canceladas++
		}
	}
	return reporte, nil
}

// notificarCliente pushes a notification to the client's registered device.
// Missing tokens and delivery failures are logged only.
func (s *VentaService) notificarCliente(ctx context.Context, usuarioID, titulo, cuerpo, ventaID string) {
	usuario, err := s.usuarioRepo.FindByID(ctx, usuarioID)
	if err != nil || usuario == nil {
		s.logger.Debug("Skipping push, user not found", "usuarioId", usuarioID)
		return
	}

	data := map[string]string{"ventaId": ventaID, "tipo": "venta"}
	if err := s.push.SendPush(ctx, usuario.FcmToken, titulo, cuerpo, data); err != nil {
		s.logger.Warn("Failed to send push notification",
			"usuarioId", usuarioID,
			"ventaId", ventaID,
			"error", err)
	}
}
