package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Salon-api/internal/domain"
	"github.com/jhoicas/Salon-api/internal/domain/entity"
	"github.com/jhoicas/Salon-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario y asigna su ID.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO users (username, password_hash, role_id)
		VALUES ($1, $2, $3)
		RETURNING user_id`,
		user.Username, user.PasswordHash, user.RoleID,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByUsername obtiene un usuario por nombre de usuario.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var u entity.User
	var roleID *int
	err := r.q.QueryRow(ctx, `
		SELECT user_id, username, password_hash, role_id
		FROM users WHERE username = $1`, username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &roleID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	if roleID != nil {
		u.RoleID = *roleID
	}
	return &u, nil
}

// UpdatePassword cambia hash y rol de un usuario existente.
func (r *UserRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string, roleID int) error {
	_, err := r.q.Exec(ctx,
		`UPDATE users SET password_hash = $2, role_id = $3 WHERE user_id = $1`,
		id, passwordHash, roleID,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}
