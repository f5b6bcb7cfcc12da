package repository

import (
	"context"

	"github.com/copipaste/agencia-SGE/internal/domain/entity"
)

// PredictorRepository defines the interface to the external cancellation
// prediction service. Both calls are blocking HTTP; neither retries.
type PredictorRepository interface {
	Predict(ctx context.Context, req *entity.PredictRequest) (*entity.PredictResponse, error)
	PredictFull(ctx context.Context, req *entity.PredictRequestFull) (*entity.PredictResponse, error)
}
