package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/Salon-api/internal/application/dto"
	"github.com/jhoicas/Salon-api/internal/domain"
	"github.com/jhoicas/Salon-api/internal/domain/entity"
	"github.com/jhoicas/Salon-api/internal/domain/repository"
	"github.com/jhoicas/Salon-api/internal/infrastructure/cache"
)

const dateLayout = "2006-01-02"

// ClientUseCase casos de uso de clientes del salón.
type ClientUseCase struct {
	repo  repository.ClientRepository
	cache ListCache
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository, lc ListCache) *ClientUseCase {
	return &ClientUseCase{repo: repo, cache: lc}
}

// Create da de alta un cliente. Devuelve ErrDuplicate si el teléfono ya existe.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) (int64, error) {
	name := strings.TrimSpace(in.Name)
	phone := strings.TrimSpace(in.Phone)
	if name == "" || phone == "" {
		return 0, domain.ErrInvalidInput
	}
	var birth *time.Time
	if in.BirthDate != nil && strings.TrimSpace(*in.BirthDate) != "" {
		d, err := time.Parse(dateLayout, strings.TrimSpace(*in.BirthDate))
		if err != nil {
			return 0, domain.ErrInvalidInput
		}
		birth = &d
	}

	existing, err := uc.repo.GetByPhone(ctx, phone)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, domain.ErrDuplicate
	}

	client := &entity.Client{Name: name, Phone: phone, BirthDate: birth}
	if err := uc.repo.Create(ctx, client); err != nil {
		return 0, err
	}
	uc.cache.invalidate(ctx, cache.KeyClients)
	return client.ID, nil
}

// Delete elimina un cliente. ErrClientNotFound si no existe.
func (uc *ClientUseCase) Delete(ctx context.Context, id int64) error {
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrClientNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.cache.invalidate(ctx, cache.KeyClients)
	return nil
}

// List devuelve todos los clientes.
func (uc *ClientUseCase) List(ctx context.Context) ([]dto.ClientResponse, error) {
	return cachedList(ctx, uc.cache, cache.KeyClients, func(ctx context.Context) ([]dto.ClientResponse, error) {
		list, err := uc.repo.List(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]dto.ClientResponse, 0, len(list))
		for _, c := range list {
			out = append(out, toClientResponse(c))
		}
		return out, nil
	})
}

func toClientResponse(c *entity.Client) dto.ClientResponse {
	resp := dto.ClientResponse{ID: c.ID, Name: c.Name, Phone: c.Phone}
	if c.BirthDate != nil {
		s := c.BirthDate.Format(dateLayout)
		resp.BirthDate = &s
	}
	return resp
}
