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

// MasterUseCase casos de uso de maestros.
type MasterUseCase struct {
	repo  repository.MasterRepository
	cache ListCache
}

// NewMasterUseCase construye el caso de uso.
func NewMasterUseCase(repo repository.MasterRepository, lc ListCache) *MasterUseCase {
	return &MasterUseCase{repo: repo, cache: lc}
}

// Create da de alta un maestro. Devuelve ErrDuplicate si el teléfono ya existe.
func (uc *MasterUseCase) Create(ctx context.Context, in dto.CreateMasterRequest) (int64, error) {
	name := strings.TrimSpace(in.Name)
	phone := strings.TrimSpace(in.Phone)
	if name == "" || phone == "" {
		return 0, domain.ErrInvalidInput
	}

	existing, err := uc.repo.GetByPhone(ctx, phone)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, domain.ErrDuplicate
	}

	master := &entity.Master{Name: name, Phone: phone, Email: strings.TrimSpace(in.Email)}
	if err := uc.repo.Create(ctx, master); err != nil {
		return 0, err
	}
	uc.cache.invalidate(ctx, cache.KeyMasters)
	return master.ID, nil
}

// Delete elimina un maestro. ErrMasterNotFound si no existe.
func (uc *MasterUseCase) Delete(ctx context.Context, id int64) error {
	master, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if master == nil {
		return domain.ErrMasterNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.cache.invalidate(ctx, cache.KeyMasters)
	return nil
}

// List devuelve todos los maestros.
func (uc *MasterUseCase) List(ctx context.Context) ([]dto.MasterResponse, error) {
	return cachedList(ctx, uc.cache, cache.KeyMasters, func(ctx context.Context) ([]dto.MasterResponse, error) {
		list, err := uc.repo.List(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]dto.MasterResponse, 0, len(list))
		for _, m := range list {
			out = append(out, dto.MasterResponse{ID: m.ID, Name: m.Name, Phone: m.Phone, Email: m.Email})
		}
		return out, nil
	})
}
