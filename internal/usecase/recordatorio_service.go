package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/copipaste/agencia-SGE/internal/domain/entity"
	"github.com/copipaste/agencia-SGE/internal/domain/repository"
	"github.com/copipaste/agencia-SGE/pkg/logger"
	"github.com/copipaste/agencia-SGE/pkg/metrics"
)

// RecordatorioService stores cancellation alerts and delivers payment
// confirmation reminders for them. Delivery is at-least-once: an alert is
// marked sent only after the email goes out, and a crash between the two
// means the alert stays pending and is retried on the next run.
type RecordatorioService struct {
	alertaRepo repository.AlertaRepository
	ventaRepo  repository.VentaRepository
	mailer     repository.MailerRepository
	logger     logger.Logger
	metrics    *metrics.Metrics

	umbral       float64
	reminderHour int

	// Serializes scheduled and manual scans so two runs never race over the
	// same pending alerts.
	mu sync.Mutex
}

// NewRecordatorioService creates a new reminder service
func NewRecordatorioService(
	alertaRepo repository.AlertaRepository,
	ventaRepo repository.VentaRepository,
	mailer repository.MailerRepository,
	logger logger.Logger,
	metrics *metrics.Metrics,
	umbral float64,
	reminderHour int,
) *RecordatorioService {
	return &RecordatorioService{
		alertaRepo:   alertaRepo,
		ventaRepo:    ventaRepo,
		mailer:       mailer,
		logger:       logger,
		metrics:      metrics,
		umbral:       umbral,
		reminderHour: reminderHour,
	}
}

// RegistrarAlerta stores a cancellation alert for a sale whose predicted
// probability reaches the threshold. Below-threshold predictions and sales
// that already carry an alert are skipped. This never fails the caller.
func (s *RecordatorioService) RegistrarAlerta(ctx context.Context, req *entity.PredictRequestFull, prediccion *entity.PredictResponse) {
	if prediccion == nil {
		return
	}
	if prediccion.ProbabilidadCancelacion < s.umbral {
		s.logger.Debug("Prediction below threshold, no alert",
			"ventaId", req.VentaID,
			"probabilidad", prediccion.ProbabilidadCancelacion)
		return
	}

	if req.EmailCliente == "" {
		s.logger.Warn("Skipping alert, client has no email on record", "ventaId", req.VentaID)
		return
	}

	existente, err := s.alertaRepo.FindByVentaID(ctx, req.VentaID)
	if err != nil {
		s.logger.Error("Failed to check for existing alert", "ventaId", req.VentaID, "error", err)
		return
	}
	if existente != nil {
		s.logger.Debug("Alert already registered for sale", "ventaId", req.VentaID)
		return
	}

	alerta := &entity.AlertaCancelacion{
		VentaID:                 req.VentaID,
		ClienteID:               req.ClienteID,
		EmailCliente:            req.EmailCliente,
		NombreCliente:           req.NombreCliente,
		NombrePaquete:           req.NombrePaquete,
		Destino:                 req.Destino,
		FechaVenta:              req.FechaVenta,
		MontoTotal:              req.MontoTotal,
		ProbabilidadCancelacion: prediccion.ProbabilidadCancelacion,
		Recomendacion:           prediccion.Recomendacion,
		FechaPrediccion:         time.Now(),
		RecordatorioEnviado:     false,
		EstadoVenta:             entity.EstadoPendiente,
	}

	if err := s.alertaRepo.Save(ctx, alerta); err != nil {
		s.logger.Error("Failed to save cancellation alert", "ventaId", req.VentaID, "error", err)
		return
	}

	s.metrics.AlertasRegistradas.Inc()
	s.logger.Info("Cancellation alert registered",
		"ventaId", req.VentaID,
		"probabilidad", prediccion.ProbabilidadCancelacion,
		"recomendacion", prediccion.Recomendacion)
}

// EnviarRecordatoriosAutomaticos is the daily scan: it sends reminders for
// pending alerts whose travel date falls within the next 24 hours.
func (s *RecordatorioService) EnviarRecordatoriosAutomaticos(ctx context.Context) (enviados, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ahora := time.Now()
	alertas, err := s.alertaRepo.FindPendientesEntre(ctx, ahora, ahora.Add(24*time.Hour))
	if err != nil {
		s.logger.Error("Failed to load pending alerts for daily scan", "error", err)
		return 0, 0
	}

	return s.enviarLote(ctx, alertas), len(alertas)
}

// EnviarRecordatoriosManuales sends reminders for every pending alert
// regardless of travel date. Used by the manual trigger.
func (s *RecordatorioService) EnviarRecordatoriosManuales(ctx context.Context) (enviados, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	alertas, err := s.alertaRepo.FindPendientes(ctx)
	if err != nil {
		s.logger.Error("Failed to load pending alerts for manual send", "error", err)
		return 0, 0
	}

	return s.enviarLote(ctx, alertas), len(alertas)
}

// enviarLote processes alerts one by one. A failure on one alert is logged
// and the loop continues.
func (s *RecordatorioService) enviarLote(ctx context.Context, alertas []*entity.AlertaCancelacion) int {
	enviados := 0
	for _, alerta := range alertas {
		if s.enviarRecordatorio(ctx, alerta) {
			enviados++
		}
	}

	if len(alertas) > 0 {
		s.logger.Info("Reminder batch finished", "enviados", enviados, "total", len(alertas))
	}
	return enviados
}

func (s *RecordatorioService) enviarRecordatorio(ctx context.Context, alerta *entity.AlertaCancelacion) bool {
	// The alert denormalizes the sale status at prediction time; re-check the
	// sale so a booking confirmed or cancelled since then gets no reminder.
	if venta, err := s.ventaRepo.FindByID(ctx, alerta.VentaID); err == nil && venta != nil {
		if venta.EstadoVenta != entity.EstadoPendiente {
			s.logger.Debug("Skipping reminder, sale no longer pending",
				"ventaId", alerta.VentaID,
				"estado", venta.EstadoVenta)
			return false
		}
	}

	asunto := "Recordatorio: confirma el pago de tu viaje"
	cuerpo := s.construirMensaje(alerta)

	if err := s.mailer.SendEmail(ctx, alerta.EmailCliente, asunto, cuerpo); err != nil {
		s.metrics.ErrorsCount.WithLabelValues("send_reminder").Inc()
		s.logger.Error("Failed to send reminder email",
			"alertaId", alerta.ID,
			"ventaId", alerta.VentaID,
			"email", alerta.EmailCliente,
			"error", err)
		return false
	}

	if err := s.alertaRepo.MarcarRecordatorioEnviado(ctx, alerta.ID, time.Now()); err != nil {
		// The email went out but the flag did not flip; the next run will
		// send again. Acceptable under at-least-once delivery.
		s.logger.Error("Failed to mark reminder as sent",
			"alertaId", alerta.ID,
			"ventaId", alerta.VentaID,
			"error", err)
		return false
	}

	s.metrics.RecordatoriosEnviados.Inc()
	s.logger.Info("Reminder sent", "ventaId", alerta.VentaID, "email", alerta.EmailCliente)
	return true
}

// construirMensaje renders the reminder body, substituting placeholders for
// alerts without package data.
func (s *RecordatorioService) construirMensaje(alerta *entity.AlertaCancelacion) string {
	paquete := alerta.NombrePaquete
	if paquete == "" {
		paquete = "Viaje personalizado"
	}
	destino := alerta.Destino
	if destino == "" {
		destino = "Destino especial"
	}

	return fmt.Sprintf(
		"Hola %s,\n\n"+
			"Te recordamos que tu viaje \"%s\" con destino a %s está programado para el %s.\n\n"+
			"Para asegurar tu reserva, por favor confirma el pago de Bs. %.2f lo antes posible.\n\n"+
			"Si ya realizaste el pago, puedes ignorar este mensaje.\n\n"+
			"Saludos,\nAgencia de Viajes",
		alerta.NombreCliente,
		paquete,
		destino,
		alerta.FechaVenta.Format("02/01/2006"),
		alerta.MontoTotal,
	)
}

// ContarPendientes returns how many alerts still await a reminder.
func (s *RecordatorioService) ContarPendientes(ctx context.Context) (int64, error) {
	return s.alertaRepo.CountPendientes(ctx)
}

// ObtenerPendientes lists the alerts still awaiting a reminder.
func (s *RecordatorioService) ObtenerPendientes(ctx context.Context) ([]*entity.AlertaCancelacion, error) {
	return s.alertaRepo.FindPendientes(ctx)
}

// StartScheduler runs the daily scan at the configured wall-clock hour until
// the context is cancelled. It is meant to run in its own goroutine.
func (s *RecordatorioService) StartScheduler(ctx context.Context) {
	s.logger.Info("Reminder scheduler started", "hour", s.reminderHour)

	for {
		next := s.nextRun(time.Now())
		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()
			s.logger.Info("Reminder scheduler stopped")
			return
		case <-timer.C:
			enviados, total := s.EnviarRecordatoriosAutomaticos(ctx)
			s.logger.Info("Daily reminder run finished", "enviados", enviados, "total", total)
		}
	}
}

func (s *RecordatorioService) nextRun(from time.Time) time.Time {
	next := time.Date(from.Year(), from.Month(), from.Day(), s.reminderHour, 0, 0, 0, from.Location())
	if !next.After(from) {
		next = next.Add(24 * time.Hour)
	}
	return next
}
