package repository

import (
	"context"

	"github.com/jhoicas/Salon-api/internal/domain/entity"
)

// ClientRepository puerto de persistencia para Client.
// Los Get* devuelven (nil, nil) si no hay fila.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id int64) (*entity.Client, error)
	GetByPhone(ctx context.Context, phone string) (*entity.Client, error)
	List(ctx context.Context) ([]*entity.Client, error)
	Delete(ctx context.Context, id int64) error
}
