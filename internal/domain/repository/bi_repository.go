package repository

import (
	"context"

	"github.com/copipaste/agencia-SGE/internal/domain/entity"
)

// BiRepository defines the interface to the business-intelligence
// microservice. Implementations retry transport failures with backoff.
type BiRepository interface {
	CheckHealth(ctx context.Context) (*entity.BiHealth, error)
	GetSyncStatus(ctx context.Context) (*entity.BiSyncStatus, error)
	RestartSync(ctx context.Context) (*entity.BiSyncRestart, error)
	ForceSync(ctx context.Context) (*entity.BiSyncRestart, error)
	GetDashboardResumen(ctx context.Context, fechaInicio, fechaFin string) (*entity.BiDashboardResumen, error)
	GetMargenBruto(ctx context.Context) (*entity.BiKpi, error)
	GetTasaConversion(ctx context.Context) (*entity.BiKpi, error)
	GetTasaCancelacion(ctx context.Context) (*entity.BiKpi, error)
	ExportVentasURL(fechaInicio, fechaFin string) string
}
