package repository

import (
	"context"

	"github.com/jhoicas/Salon-api/internal/domain/entity"
)

// MasterRepository puerto de persistencia para Master.
type MasterRepository interface {
	Create(ctx context.Context, master *entity.Master) error
	GetByID(ctx context.Context, id int64) (*entity.Master, error)
	GetByPhone(ctx context.Context, phone string) (*entity.Master, error)
	List(ctx context.Context) ([]*entity.Master, error)
	Delete(ctx context.Context, id int64) error
}
