package repository

import (
	"context"

	"github.com/copipaste/agencia-SGE/internal/domain/entity"
)

// ClienteRepository defines storage operations for client profiles.
type ClienteRepository interface {
	Save(ctx context.Context, cliente *entity.Cliente) error
	FindByID(ctx context.Context, id string) (*entity.Cliente, error)
	FindByUsuarioID(ctx context.Context, usuarioID string) (*entity.Cliente, error)
	FindAll(ctx context.Context) ([]*entity.Cliente, error)
	Update(ctx context.Context, cliente *entity.Cliente) error
	Delete(ctx context.Context, id string) error
}

// AgenteRepository defines storage operations for agent profiles.
type AgenteRepository interface {
	Save(ctx context.Context, agente *entity.Agente) error
	FindByID(ctx context.Context, id string) (*entity.Agente, error)
	FindAll(ctx context.Context) ([]*entity.Agente, error)
	Update(ctx context.Context, agente *entity.Agente) error
	Delete(ctx context.Context, id string) error
}
