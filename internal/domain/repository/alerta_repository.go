package repository

import (
	"context"
	"time"

	"github.com/copipaste/agencia-SGE/internal/domain/entity"
)

// AlertaRepository defines storage operations for cancellation alerts.
// "Pending" means recordatorioEnviado=false and estadoVenta=Pendiente.
type AlertaRepository interface {
	Save(ctx context.Context, alerta *entity.AlertaCancelacion) error
	FindByVentaID(ctx context.Context, ventaID string) (*entity.AlertaCancelacion, error)

	// FindPendientesEntre returns pending alerts whose travel date falls in
	// [inicio, fin].
	FindPendientesEntre(ctx context.Context, inicio, fin time.Time) ([]*entity.AlertaCancelacion, error)
	FindPendientes(ctx context.Context) ([]*entity.AlertaCancelacion, error)
	CountPendientes(ctx context.Context) (int64, error)

	// MarcarRecordatorioEnviado flips the reminder-sent flag and stamps the
	// send time. The transition is one-way.
	MarcarRecordatorioEnviado(ctx context.Context, id string, enviadoAt time.Time) error
}
