package repository

import (
	"context"

	"github.com/jhoicas/Salon-api/internal/domain/entity"
)

// UserRepository puerto de persistencia para User.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string, roleID int) error
}
