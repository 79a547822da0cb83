package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/Salon-api/internal/application/dto"
	"github.com/jhoicas/Salon-api/internal/domain"
	"github.com/jhoicas/Salon-api/internal/domain/entity"
	"github.com/jhoicas/Salon-api/internal/domain/repository"
	"github.com/jhoicas/Salon-api/internal/infrastructure/cache"
)

// ServiceUseCase casos de uso del catálogo de servicios.
type ServiceUseCase struct {
	repo  repository.ServiceRepository
	cache ListCache
}

// NewServiceUseCase construye el caso de uso.
func NewServiceUseCase(repo repository.ServiceRepository, lc ListCache) *ServiceUseCase {
	return &ServiceUseCase{repo: repo, cache: lc}
}

// Create da de alta un servicio. Devuelve ErrDuplicate si el nombre ya existe.
func (uc *ServiceUseCase) Create(ctx context.Context, in dto.CreateServiceRequest) (int64, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Price == nil || in.Price.IsNegative() || in.Duration <= 0 {
		return 0, domain.ErrInvalidInput
	}

	existing, err := uc.repo.GetByName(ctx, name)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, domain.ErrDuplicate
	}

	service := &entity.Service{
		Name:        name,
		Description: in.Description,
		Price:       in.Price.Round(2),
		Duration:    in.Duration,
	}
	if err := uc.repo.Create(ctx, service); err != nil {
		return 0, err
	}
	uc.cache.invalidate(ctx, cache.KeyServices)
	return service.ID, nil
}

// Delete elimina un servicio. ErrServiceNotFound si no existe.
func (uc *ServiceUseCase) Delete(ctx context.Context, id int64) error {
	service, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if service == nil {
		return domain.ErrServiceNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.cache.invalidate(ctx, cache.KeyServices)
	return nil
}

// List devuelve el catálogo completo.
func (uc *ServiceUseCase) List(ctx context.Context) ([]dto.ServiceResponse, error) {
	return cachedList(ctx, uc.cache, cache.KeyServices, func(ctx context.Context) ([]dto.ServiceResponse, error) {
		list, err := uc.repo.List(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]dto.ServiceResponse, 0, len(list))
		for _, s := range list {
			out = append(out, dto.ServiceResponse{
				ID:          s.ID,
				Name:        s.Name,
				Description: s.Description,
				Price:       s.Price,
				Duration:    s.Duration,
			})
		}
		return out, nil
	})
}
