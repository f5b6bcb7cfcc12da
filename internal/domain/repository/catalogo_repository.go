package repository

import (
	"context"

	"github.com/copipaste/agencia-SGE/internal/domain/entity"
)

// ProveedorRepository defines storage operations for providers.
type ProveedorRepository interface {
	Save(ctx context.Context, proveedor *entity.Proveedor) error
	FindByID(ctx context.Context, id string) (*entity.Proveedor, error)
	FindAll(ctx context.Context) ([]*entity.Proveedor, error)
	Update(ctx context.Context, proveedor *entity.Proveedor) error
	Delete(ctx context.Context, id string) error
}

// ServicioRepository defines storage operations for services.
type ServicioRepository interface {
	Save(ctx context.Context, servicio *entity.Servicio) error
	FindByID(ctx context.Context, id string) (*entity.Servicio, error)
	FindAll(ctx context.Context) ([]*entity.Servicio, error)
	FindByProveedorID(ctx context.Context, proveedorID string) ([]*entity.Servicio, error)
	Update(ctx context.Context, servicio *entity.Servicio) error
	Delete(ctx context.Context, id string) error
}

// PaqueteRepository defines storage operations for tour packages and their
// service links.
type PaqueteRepository interface {
	Save(ctx context.Context, paquete *entity.PaqueteTuristico) error
	FindByID(ctx context.Context, id string) (*entity.PaqueteTuristico, error)
	FindAll(ctx context.Context) ([]*entity.PaqueteTuristico, error)
	Update(ctx context.Context, paquete *entity.PaqueteTuristico) error
	Delete(ctx context.Context, id string) error

	AddServicio(ctx context.Context, link *entity.PaqueteServicio) error
	FindServicios(ctx context.Context, paqueteID string) ([]*entity.PaqueteServicio, error)
	RemoveServicios(ctx context.Context, paqueteID string) error
}
