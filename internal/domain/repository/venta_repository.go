package repository

import (
	"context"

	"github.com/copipaste/agencia-SGE/internal/domain/entity"
)

// VentaRepository defines storage operations for sales.
type VentaRepository interface {
	Save(ctx context.Context, venta *entity.Venta) error
	FindByID(ctx context.Context, id string) (*entity.Venta, error)
	FindAll(ctx context.Context) ([]*entity.Venta, error)
	FindByClienteID(ctx context.Context, clienteID string) ([]*entity.Venta, error)
	FindByAgenteID(ctx context.Context, agenteID string) ([]*entity.Venta, error)
	FindByEstado(ctx context.Context, estado entity.EstadoVenta) ([]*entity.Venta, error)
	Update(ctx context.Context, venta *entity.Venta) error
	Delete(ctx context.Context, id string) error
}

// DetalleVentaRepository defines storage operations for sale lines.
type DetalleVentaRepository interface {
	Save(ctx context.Context, detalle *entity.DetalleVenta) error
	FindByVentaID(ctx context.Context, ventaID string) ([]*entity.DetalleVenta, error)
	DeleteByVentaID(ctx context.Context, ventaID string) error
}
