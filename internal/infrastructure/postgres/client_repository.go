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

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

const clientColumns = `client_id, client_name, phone, birth_date`

// Create persiste un nuevo cliente y asigna su ID.
func (r *ClientRepo) Create(ctx context.Context, client *entity.Client) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO clients (client_name, phone, birth_date)
		VALUES ($1, $2, $3)
		RETURNING client_id`,
		client.Name, client.Phone, client.BirthDate,
	).Scan(&client.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClientRepo) GetByID(ctx context.Context, id int64) (*entity.Client, error) {
	return r.getOne(ctx, `SELECT `+clientColumns+` FROM clients WHERE client_id = $1`, id)
}

// GetByPhone obtiene un cliente por teléfono.
func (r *ClientRepo) GetByPhone(ctx context.Context, phone string) (*entity.Client, error) {
	return r.getOne(ctx, `SELECT `+clientColumns+` FROM clients WHERE phone = $1`, phone)
}

func (r *ClientRepo) getOne(ctx context.Context, query string, arg any) (*entity.Client, error) {
	var c entity.Client
	err := r.q.QueryRow(ctx, query, arg).Scan(&c.ID, &c.Name, &c.Phone, &c.BirthDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// List devuelve todos los clientes.
func (r *ClientRepo) List(ctx context.Context) ([]*entity.Client, error) {
	rows, err := r.q.Query(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY client_id`)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.BirthDate); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina un cliente. ErrInUse si tiene citas o pagos.
func (r *ClientRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM clients WHERE client_id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}
