package repository

import (
	"context"

	"github.com/copipaste/agencia-SGE/internal/domain/entity"
)

// UsuarioRepository defines storage operations for user accounts.
// Lookups return (nil, nil) when no document matches.
type UsuarioRepository interface {
	Save(ctx context.Context, usuario *entity.Usuario) error
	FindByID(ctx context.Context, id string) (*entity.Usuario, error)
	FindByEmail(ctx context.Context, email string) (*entity.Usuario, error)
	FindAll(ctx context.Context) ([]*entity.Usuario, error)
	Update(ctx context.Context, usuario *entity.Usuario) error
	UpdateFcmToken(ctx context.Context, id, token string) error
	Delete(ctx context.Context, id string) error
}
