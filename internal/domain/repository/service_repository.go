package repository

import (
	"context"

	"github.com/jhoicas/Salon-api/internal/domain/entity"
)

// ServiceRepository puerto de persistencia para Service.
type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	GetByID(ctx context.Context, id int64) (*entity.Service, error)
	GetByName(ctx context.Context, name string) (*entity.Service, error)
	List(ctx context.Context) ([]*entity.Service, error)
	Delete(ctx context.Context, id int64) error
}
