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

var _ repository.MasterRepository = (*MasterRepo)(nil)

// MasterRepo implementación de MasterRepository (usable con pool o tx).
type MasterRepo struct {
	q Querier
}

// NewMasterRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMasterRepository(q Querier) *MasterRepo {
	return &MasterRepo{q: q}
}

const masterColumns = `master_id, master_name, phone, email`

// Create persiste un nuevo maestro y asigna su ID.
func (r *MasterRepo) Create(ctx context.Context, master *entity.Master) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO masters (master_name, phone, email)
		VALUES ($1, $2, $3)
		RETURNING master_id`,
		master.Name, master.Phone, nullIfEmpty(master.Email),
	).Scan(&master.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert master: %w", err)
	}
	return nil
}

// GetByID obtiene un maestro por ID.
func (r *MasterRepo) GetByID(ctx context.Context, id int64) (*entity.Master, error) {
	return r.getOne(ctx, `SELECT `+masterColumns+` FROM masters WHERE master_id = $1`, id)
}

// GetByPhone obtiene un maestro por teléfono.
func (r *MasterRepo) GetByPhone(ctx context.Context, phone string) (*entity.Master, error) {
	return r.getOne(ctx, `SELECT `+masterColumns+` FROM masters WHERE phone = $1`, phone)
}

func (r *MasterRepo) getOne(ctx context.Context, query string, arg any) (*entity.Master, error) {
	m, err := scanMaster(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get master: %w", err)
	}
	return m, nil
}

// List devuelve todos los maestros.
func (r *MasterRepo) List(ctx context.Context) ([]*entity.Master, error) {
	rows, err := r.q.Query(ctx, `SELECT `+masterColumns+` FROM masters ORDER BY master_id`)
	if err != nil {
		return nil, fmt.Errorf("list masters: %w", err)
	}
	defer rows.Close()
	var list []*entity.Master
	for rows.Next() {
		m, err := scanMaster(rows)
		if err != nil {
			return nil, fmt.Errorf("scan master: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// Delete elimina un maestro. ErrInUse si tiene citas.
func (r *MasterRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM masters WHERE master_id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete master: %w", err)
	}
	return nil
}

type pgxScanner interface {
	Scan(dest ...any) error
}

func scanMaster(row pgxScanner) (*entity.Master, error) {
	var m entity.Master
	var phone, email *string
	if err := row.Scan(&m.ID, &m.Name, &phone, &email); err != nil {
		return nil, err
	}
	m.Phone = deref(phone)
	m.Email = deref(email)
	return &m, nil
}
