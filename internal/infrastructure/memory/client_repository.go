package memory

import (
	"context"

	"github.com/jhoicas/Salon-api/internal/domain"
	"github.com/jhoicas/Salon-api/internal/domain/entity"
	"github.com/jhoicas/Salon-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo clientes en memoria.
type ClientRepo struct {
	s    *Store
	inTx bool
}

// NewClientRepository construye el repositorio.
func NewClientRepository(s *Store) *ClientRepo { return &ClientRepo{s: s} }

func (r *ClientRepo) Create(_ context.Context, client *entity.Client) error {
	unlock, err := r.s.write("clients.create", r.inTx)
	if err != nil {
		return err
	}
	defer unlock()
	for _, c := range r.s.data.clients {
		if c.Phone == client.Phone {
			return domain.ErrDuplicate
		}
	}
	client.ID = r.s.nextID()
	r.s.data.clients[client.ID] = *client
	return nil
}

func (r *ClientRepo) GetByID(_ context.Context, id int64) (*entity.Client, error) {
	if err := r.s.begin("clients.get"); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()
	c, ok := r.s.data.clients[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *ClientRepo) GetByPhone(_ context.Context, phone string) (*entity.Client, error) {
	if err := r.s.begin("clients.get_by_phone"); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()
	for _, id := range sortedIDs(r.s.data.clients) {
		if c := r.s.data.clients[id]; c.Phone == phone {
			return &c, nil
		}
	}
	return nil, nil
}

func (r *ClientRepo) List(_ context.Context) ([]*entity.Client, error) {
	if err := r.s.begin("clients.list"); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()
	ids := sortedIDs(r.s.data.clients)
	out := make([]*entity.Client, 0, len(ids))
	for _, id := range ids {
		c := r.s.data.clients[id]
		out = append(out, &c)
	}
	return out, nil
}

func (r *ClientRepo) Delete(_ context.Context, id int64) error {
	unlock, err := r.s.write("clients.delete", r.inTx)
	if err != nil {
		return err
	}
	defer unlock()
	for _, a := range r.s.data.appointments {
		if a.ClientID == id {
			return domain.ErrInUse
		}
	}
	for _, p := range r.s.data.payments {
		if p.ClientID == id {
			return domain.ErrInUse
		}
	}
	delete(r.s.data.clients, id)
	return nil
}
