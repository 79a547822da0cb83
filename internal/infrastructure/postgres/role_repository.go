package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Salon-api/internal/domain/entity"
	"github.com/jhoicas/Salon-api/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación de RoleRepository sobre PostgreSQL.
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// EnsureDefaults inserta los roles que falten sin tocar los existentes.
func (r *RoleRepo) EnsureDefaults(ctx context.Context, roles []entity.Role) error {
	for _, role := range roles {
		_, err := r.q.Exec(ctx, `
			INSERT INTO roles (role_id, role_name, permissions)
			VALUES ($1, $2, $3)
			ON CONFLICT (role_id) DO NOTHING`,
			role.ID, role.Name, role.Permissions,
		)
		if err != nil {
			return fmt.Errorf("seed role %d: %w", role.ID, err)
		}
	}
	return nil
}

// GetByID obtiene un rol por ID.
func (r *RoleRepo) GetByID(ctx context.Context, id int) (*entity.Role, error) {
	var role entity.Role
	var perms *string
	err := r.q.QueryRow(ctx,
		`SELECT role_id, role_name, permissions FROM roles WHERE role_id = $1`, id,
	).Scan(&role.ID, &role.Name, &perms)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	role.Permissions = deref(perms)
	return &role, nil
}

// List devuelve todos los roles ordenados por ID.
func (r *RoleRepo) List(ctx context.Context) ([]*entity.Role, error) {
	rows, err := r.q.Query(ctx, `SELECT role_id, role_name, permissions FROM roles ORDER BY role_id`)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Role
	for rows.Next() {
		var role entity.Role
		var perms *string
		if err := rows.Scan(&role.ID, &role.Name, &perms); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		role.Permissions = deref(perms)
		list = append(list, &role)
	}
	return list, rows.Err()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
