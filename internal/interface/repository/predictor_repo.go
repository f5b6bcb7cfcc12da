// internal/interface/repository/predictor_repo.go
package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/copipaste/agencia-SGE/internal/domain/entity"
	"github.com/copipaste/agencia-SGE/internal/domain/repository"
	"github.com/copipaste/agencia-SGE/pkg/logger"
)

// HTTPPredictorRepository calls the external cancellation prediction service
type HTTPPredictorRepository struct {
	logger  logger.Logger
	baseURL string
	client  *http.Client
}

// NewHTTPPredictorRepository creates a new prediction service client
func NewHTTPPredictorRepository(baseURL string, logger logger.Logger) repository.PredictorRepository {
	return &HTTPPredictorRepository{
		logger:  logger,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Predict submits the bare feature vector for an on-demand prediction
func (r *HTTPPredictorRepository) Predict(ctx context.Context, req *entity.PredictRequest) (*entity.PredictResponse, error) {
	return r.post(ctx, req)
}

// PredictFull submits the feature vector extended with the denormalized
// client and package identity used by downstream alerting
func (r *HTTPPredictorRepository) PredictFull(ctx context.Context, req *entity.PredictRequestFull) (*entity.PredictResponse, error) {
	return r.post(ctx, req)
}

func (r *HTTPPredictorRepository) post(ctx context.Context, payload interface{}) (*entity.PredictResponse, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal predict payload: %w", err)
	}

	url := fmt.Sprintf("%s/predict", r.baseURL)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	r.logger.Debug("Sending features to prediction service", "url", url)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call prediction service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var errorBody map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&errorBody)
		return nil, fmt.Errorf("prediction service returned status %d: %v", resp.StatusCode, errorBody)
	}

	var response entity.PredictResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode prediction response: %w", err)
	}

	r.logger.Info("Prediction received",
		"ventaId", response.VentaID,
		"probabilidad", response.ProbabilidadCancelacion,
		"recomendacion", response.Recomendacion)

	return &response, nil
}
