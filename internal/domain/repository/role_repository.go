package repository

import (
	"context"

	"github.com/jhoicas/Salon-api/internal/domain/entity"
)

// RoleRepository puerto de persistencia para Role.
type RoleRepository interface {
	// EnsureDefaults inserta los roles fijos que falten; no modifica los existentes.
	EnsureDefaults(ctx context.Context, roles []entity.Role) error
	GetByID(ctx context.Context, id int) (*entity.Role, error)
	List(ctx context.Context) ([]*entity.Role, error)
}
