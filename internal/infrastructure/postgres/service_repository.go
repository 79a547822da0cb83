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

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

// ServiceRepo implementación de ServiceRepository (usable con pool o tx).
type ServiceRepo struct {
	q Querier
}

// NewServiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewServiceRepository(q Querier) *ServiceRepo {
	return &ServiceRepo{q: q}
}

const serviceColumns = `service_id, service_name, description, price, duration`

// Create persiste un nuevo servicio y asigna su ID.
func (r *ServiceRepo) Create(ctx context.Context, service *entity.Service) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO services (service_name, description, price, duration)
		VALUES ($1, $2, $3, $4)
		RETURNING service_id`,
		service.Name, service.Description, service.Price, service.Duration,
	).Scan(&service.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert service: %w", err)
	}
	return nil
}

// GetByID obtiene un servicio por ID.
func (r *ServiceRepo) GetByID(ctx context.Context, id int64) (*entity.Service, error) {
	return r.getOne(ctx, `SELECT `+serviceColumns+` FROM services WHERE service_id = $1`, id)
}

// GetByName obtiene un servicio por nombre exacto.
func (r *ServiceRepo) GetByName(ctx context.Context, name string) (*entity.Service, error) {
	return r.getOne(ctx, `SELECT `+serviceColumns+` FROM services WHERE service_name = $1`, name)
}

func (r *ServiceRepo) getOne(ctx context.Context, query string, arg any) (*entity.Service, error) {
	s, err := scanService(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return s, nil
}

// List devuelve el catálogo completo.
func (r *ServiceRepo) List(ctx context.Context) ([]*entity.Service, error) {
	rows, err := r.q.Query(ctx, `SELECT `+serviceColumns+` FROM services ORDER BY service_id`)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()
	var list []*entity.Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Delete elimina un servicio. ErrInUse si alguna cita lo referencia.
func (r *ServiceRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM services WHERE service_id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete service: %w", err)
	}
	return nil
}

func scanService(row pgxScanner) (*entity.Service, error) {
	var s entity.Service
	var desc *string
	if err := row.Scan(&s.ID, &s.Name, &desc, &s.Price, &s.Duration); err != nil {
		return nil, err
	}
	s.Description = deref(desc)
	return &s, nil
}
