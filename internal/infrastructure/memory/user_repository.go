package memory

import (
	"context"

	"github.com/jhoicas/Salon-api/internal/domain"
	"github.com/jhoicas/Salon-api/internal/domain/entity"
	"github.com/jhoicas/Salon-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo usuarios en memoria.
type UserRepo struct {
	s    *Store
	inTx bool
}

// NewUserRepository construye el repositorio.
func NewUserRepository(s *Store) *UserRepo { return &UserRepo{s: s} }

func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	unlock, err := r.s.write("users.create", r.inTx)
	if err != nil {
		return err
	}
	defer unlock()
	for _, u := range r.s.data.users {
		if u.Username == user.Username {
			return domain.ErrDuplicate
		}
	}
	if _, ok := r.s.data.roles[user.RoleID]; !ok {
		return domain.ErrNotFound
	}
	user.ID = r.s.nextID()
	r.s.data.users[user.ID] = *user
	return nil
}

func (r *UserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	if err := r.s.begin("users.get_by_username"); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()
	for _, id := range sortedIDs(r.s.data.users) {
		if u := r.s.data.users[id]; u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) UpdatePassword(_ context.Context, id int64, passwordHash string, roleID int) error {
	unlock, err := r.s.write("users.update_password", r.inTx)
	if err != nil {
		return err
	}
	defer unlock()
	u, ok := r.s.data.users[id]
	if !ok {
		return nil
	}
	u.PasswordHash = passwordHash
	u.RoleID = roleID
	r.s.data.users[id] = u
	return nil
}
