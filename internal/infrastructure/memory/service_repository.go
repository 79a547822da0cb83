package memory

import (
	"context"

	"github.com/jhoicas/Salon-api/internal/domain"
	"github.com/jhoicas/Salon-api/internal/domain/entity"
	"github.com/jhoicas/Salon-api/internal/domain/repository"
)

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

// ServiceRepo servicios en memoria.
type ServiceRepo struct {
	s    *Store
	inTx bool
}

// NewServiceRepository construye el repositorio.
func NewServiceRepository(s *Store) *ServiceRepo { return &ServiceRepo{s: s} }

func (r *ServiceRepo) Create(_ context.Context, service *entity.Service) error {
	unlock, err := r.s.write("services.create", r.inTx)
	if err != nil {
		return err
	}
	defer unlock()
	for _, sv := range r.s.data.services {
		if sv.Name == service.Name {
			return domain.ErrDuplicate
		}
	}
	service.ID = r.s.nextID()
	r.s.data.services[service.ID] = *service
	return nil
}

func (r *ServiceRepo) GetByID(_ context.Context, id int64) (*entity.Service, error) {
	if err := r.s.begin("services.get"); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()
	sv, ok := r.s.data.services[id]
	if !ok {
		return nil, nil
	}
	return &sv, nil
}

func (r *ServiceRepo) GetByName(_ context.Context, name string) (*entity.Service, error) {
	if err := r.s.begin("services.get_by_name"); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()
	for _, id := range sortedIDs(r.s.data.services) {
		if sv := r.s.data.services[id]; sv.Name == name {
			return &sv, nil
		}
	}
	return nil, nil
}

func (r *ServiceRepo) List(_ context.Context) ([]*entity.Service, error) {
	if err := r.s.begin("services.list"); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()
	ids := sortedIDs(r.s.data.services)
	out := make([]*entity.Service, 0, len(ids))
	for _, id := range ids {
		sv := r.s.data.services[id]
		out = append(out, &sv)
	}
	return out, nil
}

func (r *ServiceRepo) Delete(_ context.Context, id int64) error {
	unlock, err := r.s.write("services.delete", r.inTx)
	if err != nil {
		return err
	}
	defer unlock()
	for _, a := range r.s.data.appointments {
		if a.ServiceID == id {
			return domain.ErrInUse
		}
	}
	delete(r.s.data.services, id)
	return nil
}
