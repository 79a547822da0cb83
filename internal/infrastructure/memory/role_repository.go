package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/Salon-api/internal/domain/entity"
	"github.com/jhoicas/Salon-api/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo roles en memoria.
type RoleRepo struct {
	s    *Store
	inTx bool
}

// NewRoleRepository construye el repositorio.
func NewRoleRepository(s *Store) *RoleRepo { return &RoleRepo{s: s} }

func (r *RoleRepo) EnsureDefaults(_ context.Context, roles []entity.Role) error {
	unlock, err := r.s.write("roles.ensure_defaults", r.inTx)
	if err != nil {
		return err
	}
	defer unlock()
	for _, role := range roles {
		if _, ok := r.s.data.roles[role.ID]; !ok {
			r.s.data.roles[role.ID] = role
		}
	}
	return nil
}

func (r *RoleRepo) GetByID(_ context.Context, id int) (*entity.Role, error) {
	if err := r.s.begin("roles.get"); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()
	role, ok := r.s.data.roles[id]
	if !ok {
		return nil, nil
	}
	return &role, nil
}

func (r *RoleRepo) List(_ context.Context) ([]*entity.Role, error) {
	if err := r.s.begin("roles.list"); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()
	out := make([]*entity.Role, 0, len(r.s.data.roles))
	for _, role := range r.s.data.roles {
		role := role
		out = append(out, &role)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
