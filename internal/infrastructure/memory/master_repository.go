package memory

import (
	"context"

	"github.com/jhoicas/Salon-api/internal/domain"
	"github.com/jhoicas/Salon-api/internal/domain/entity"
	"github.com/jhoicas/Salon-api/internal/domain/repository"
)

var _ repository.MasterRepository = (*MasterRepo)(nil)

// MasterRepo maestros en memoria.
type MasterRepo struct {
	s    *Store
	inTx bool
}

// NewMasterRepository construye el repositorio.
func NewMasterRepository(s *Store) *MasterRepo { return &MasterRepo{s: s} }

func (r *MasterRepo) Create(_ context.Context, master *entity.Master) error {
	unlock, err := r.s.write("masters.create", r.inTx)
	if err != nil {
		return err
	}
	defer unlock()
	for _, m := range r.s.data.masters {
		if m.Phone == master.Phone {
			return domain.ErrDuplicate
		}
	}
	master.ID = r.s.nextID()
	r.s.data.masters[master.ID] = *master
	return nil
}

func (r *MasterRepo) GetByID(_ context.Context, id int64) (*entity.Master, error) {
	if err := r.s.begin("masters.get"); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()
	m, ok := r.s.data.masters[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *MasterRepo) GetByPhone(_ context.Context, phone string) (*entity.Master, error) {
	if err := r.s.begin("masters.get_by_phone"); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()
	for _, id := range sortedIDs(r.s.data.masters) {
		if m := r.s.data.masters[id]; m.Phone == phone {
			return &m, nil
		}
	}
	return nil, nil
}

func (r *MasterRepo) List(_ context.Context) ([]*entity.Master, error) {
	if err := r.s.begin("masters.list"); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()
	ids := sortedIDs(r.s.data.masters)
	out := make([]*entity.Master, 0, len(ids))
	for _, id := range ids {
		m := r.s.data.masters[id]
		out = append(out, &m)
	}
	return out, nil
}

func (r *MasterRepo) Delete(_ context.Context, id int64) error {
	unlock, err := r.s.write("masters.delete", r.inTx)
	if err != nil {
		return err
	}
	defer unlock()
	for _, a := range r.s.data.appointments {
		if a.MasterID == id {
			return domain.ErrInUse
		}
	}
	delete(r.s.data.masters, id)
	return nil
}
