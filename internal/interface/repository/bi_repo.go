// internal/interface/repository/bi_repo.go
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/copipaste/agencia-SGE/internal/domain/entity"
	"github.com/copipaste/agencia-SGE/internal/domain/repository"
	"github.com/copipaste/agencia-SGE/pkg/logger"
)

// HTTPBiRepository talks to the business-intelligence microservice with
// bounded retries
type HTTPBiRepository struct {
	logger     logger.Logger
	baseURL    string
	authToken  string
	maxRetries int
	retryDelay time.Duration
	client     *http.Client
}

// NewHTTPBiRepository creates a new BI service client
func NewHTTPBiRepository(baseURL, authToken string, maxRetries int, retryDelay time.Duration, logger logger.Logger) repository.BiRepository {
	return &HTTPBiRepository{
		logger:     logger,
		baseURL:    baseURL,
		authToken:  authToken,
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		client:     &http.Client{Timeout: 30 * time.Second},
	}
}

// doWithRetry performs one request per attempt, sleeping retryDelay·attempt
// between attempts, and fails after maxRetries attempts.
func (r *HTTPBiRepository) doWithRetry(ctx context.Context, method, endpoint string, out interface{}) error {
	var lastErr error

	for attempt := 1; attempt <= r.maxRetries; attempt++ {
		url := r.baseURL + endpoint
		r.logger.Debug("Calling BI service", "method", method, "url", url, "attempt", attempt)

		err := r.doOnce(ctx, method, url, out)
		if err == nil {
			return nil
		}
		lastErr = err
		r.logger.Warn("BI service call failed", "endpoint", endpoint, "attempt", attempt, "error", err)

		if attempt < r.maxRetries {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(r.retryDelay * time.Duration(attempt)):
			}
		}
	}

	return fmt.Errorf("BI service unreachable after %d attempts: %w", r.maxRetries, lastErr)
}

func (r *HTTPBiRepository) doOnce(ctx context.Context, method, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if r.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+r.authToken)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("BI service returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode BI response: %w", err)
	}

	return nil
}

// CheckHealth verifies the BI service is up
func (r *HTTPBiRepository) CheckHealth(ctx context.Context) (*entity.BiHealth, error) {
	var out entity.BiHealth
	if err := r.doWithRetry(ctx, "GET", "/health", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetSyncStatus reports the state of the realtime sync
func (r *HTTPBiRepository) GetSyncStatus(ctx context.Context) (*entity.BiSyncStatus, error) {
	var out entity.BiSyncStatus
	if err := r.doWithRetry(ctx, "GET", "/sync/status", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RestartSync restarts the realtime sync
func (r *HTTPBiRepository) RestartSync(ctx context.Context) (*entity.BiSyncRestart, error) {
	var out entity.BiSyncRestart
	if err := r.doWithRetry(ctx, "POST", "/sync/restart", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ForceSync triggers an immediate sync, cheaper than a restart
func (r *HTTPBiRepository) ForceSync(ctx context.Context) (*entity.BiSyncRestart, error) {
	var out entity.BiSyncRestart
	if err := r.doWithRetry(ctx, "POST", "/sync/force", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetDashboardResumen fetches KPI and trend data, optionally bounded by
// fecha_inicio/fecha_fin (YYYY-MM-DD)
func (r *HTTPBiRepository) GetDashboardResumen(ctx context.Context, fechaInicio, fechaFin string) (*entity.BiDashboardResumen, error) {
	endpoint := "/dashboard/resumen"
	if qs := periodoQuery(fechaInicio, fechaFin); qs != "" {
		endpoint += "?" + qs
	}

	var out entity.BiDashboardResumen
	if err := r.doWithRetry(ctx, "GET", endpoint, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetMargenBruto fetches the gross margin KPI
func (r *HTTPBiRepository) GetMargenBruto(ctx context.Context) (*entity.BiKpi, error) {
	return r.getKpi(ctx, "/kpi/margen-bruto")
}

// GetTasaConversion fetches the conversion rate KPI
func (r *HTTPBiRepository) GetTasaConversion(ctx context.Context) (*entity.BiKpi, error) {
	return r.getKpi(ctx, "/kpi/tasa-conversion")
}

// GetTasaCancelacion fetches the cancellation rate KPI
func (r *HTTPBiRepository) GetTasaCancelacion(ctx context.Context) (*entity.BiKpi, error) {
	return r.getKpi(ctx, "/kpi/tasa-cancelacion")
}

func (r *HTTPBiRepository) getKpi(ctx context.Context, endpoint string) (*entity.BiKpi, error) {
	var out entity.BiKpi
	if err := r.doWithRetry(ctx, "GET", endpoint, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExportVentasURL builds the CSV export URL for the given period
func (r *HTTPBiRepository) ExportVentasURL(fechaInicio, fechaFin string) string {
	url := r.baseURL + "/export/ventas.csv"
	if qs := periodoQuery(fechaInicio, fechaFin); qs != "" {
		url += "?" + qs
	}
	return url
}

func periodoQuery(fechaInicio, fechaFin string) string {
	var params []string
	if fechaInicio != "" {
		params = append(params, "fecha_inicio="+fechaInicio)
	}
	if fechaFin != "" {
		params = append(params, "fecha_fin="+fechaFin)
	}
	return strings.Join(params, "&")
}
