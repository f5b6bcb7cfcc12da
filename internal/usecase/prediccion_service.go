package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/copipaste/agencia-SGE/internal/domain/entity"
	"github.com/copipaste/agencia-SGE/internal/domain/repository"
	"github.com/copipaste/agencia-SGE/pkg/logger"
	"github.com/copipaste/agencia-SGE/pkg/metrics"
)

// PrediccionService asks the external model for a cancellation probability.
// It carries two entry points with different failure contracts: the manual
// path propagates errors to the caller, the pipeline path swallows them so a
// booking never fails because the model is down.
type PrediccionService struct {
	ventaRepo  repository.VentaRepository
	calculator *FeatureCalculator
	predictor  repository.PredictorRepository
	logger     logger.Logger
	metrics    *metrics.Metrics
}

// NewPrediccionService creates a new prediction service
func NewPrediccionService(
	ventaRepo repository.VentaRepository,
	calculator *FeatureCalculator,
	predictor repository.PredictorRepository,
	logger logger.Logger,
	metrics *metrics.Metrics,
) *PrediccionService {
	return &PrediccionService{
		ventaRepo:  ventaRepo,
		calculator: calculator,
		predictor:  predictor,
		logger:     logger,
		metrics:    metrics,
	}
}

// PredecirCancelacion runs an on-demand prediction for an existing sale.
// Errors from the model service are returned to the caller.
func (s *PrediccionService) PredecirCancelacion(ctx context.Context, ventaID string) (*entity.PredictResponse, error) {
	venta, err := s.ventaRepo.FindByID(ctx, ventaID)
	if err != nil {
		return nil, fmt.Errorf("failed to load venta %s: %w", ventaID, err)
	}
	if venta == nil {
		return nil, fmt.Errorf("venta %s not found", ventaID)
	}

	req := s.calculator.CalcularFeatures(ctx, venta, venta.ClienteID)

	start := time.Now()
	resp, err := s.predictor.Predict(ctx, req)
	s.metrics.PredictionLatency.Observe(time.Since(start).Seconds())
	s.metrics.PredictionsTotal.Inc()

	if err != nil {
		s.metrics.ErrorsCount.WithLabelValues("predict").Inc()
		return nil, fmt.Errorf("prediction failed for venta %s: %w", ventaID, err)
	}

	s.logger.Info("Prediction completed",
		"ventaId", ventaID,
		"probabilidad", resp.ProbabilidadCancelacion,
		"recomendacion", resp.Recomendacion)

	return resp, nil
}

// PredecirCancelacionSinFallar runs the full-feature prediction used when a
// booking is registered. Any failure is logged and a nil response returned;
// the caller proceeds without a prediction. The computed feature vector is
// returned alongside so the caller can register an alert from it.
func (s *PrediccionService) PredecirCancelacionSinFallar(ctx context.Context, venta *entity.Venta) (*entity.PredictRequestFull, *entity.PredictResponse) {
	req := s.calculator.CalcularFeaturesCompletas(ctx, venta, venta.ClienteID)

	start := time.Now()
	resp, err := s.predictor.PredictFull(ctx, req)
	s.metrics.PredictionLatency.Observe(time.Since(start).Seconds())
	s.metrics.PredictionsTotal.Inc()

	if err != nil {
		s.metrics.ErrorsCount.WithLabelValues("predict_full").Inc()
		s.logger.Warn("Prediction failed, booking continues without it",
			"ventaId", venta.ID,
			"error", err)
		return req, nil
	}

	s.logger.Info("Prediction completed for new booking",
		"ventaId", venta.ID,
		"probabilidad", resp.ProbabilidadCancelacion,
		"recomendacion", resp.Recomendacion)

	return req, resp
}
