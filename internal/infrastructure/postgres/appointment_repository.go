package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Salon-api/internal/domain"
	"github.com/jhoicas/Salon-api/internal/domain/entity"
	"github.com/jhoicas/Salon-api/internal/domain/repository"
)

var _ repository.AppointmentRepository = (*AppointmentRepo)(nil)

// AppointmentRepo implementación de AppointmentRepository (usable con pool o tx).
type AppointmentRepo struct {
	q Querier
}

// NewAppointmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAppointmentRepository(q Querier) *AppointmentRepo {
	return &AppointmentRepo{q: q}
}

const appointmentColumns = `appointment_id, client_id, master_id, service_id, appointment_date, status`

// Create persiste una cita y asigna su ID.
func (r *AppointmentRepo) Create(ctx context.Context, appt *entity.Appointment) error {
	status := appt.Status
	if status == "" {
		status = entity.AppointmentScheduled
	}
	err := r.q.QueryRow(ctx, `
		INSERT INTO appointments (client_id, master_id, service_id, appointment_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING appointment_id`,
		appt.ClientID, appt.MasterID, appt.ServiceID, appt.Date, status,
	).Scan(&appt.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert appointment: %w", err)
	}
	appt.Status = status
	return nil
}

// GetByID obtiene una cita por ID.
func (r *AppointmentRepo) GetByID(ctx context.Context, id int64) (*entity.Appointment, error) {
	return r.getOne(ctx, `SELECT `+appointmentColumns+` FROM appointments WHERE appointment_id = $1`, id)
}

// FindByMasterAndDate devuelve la cita del maestro en ese instante exacto, si existe.
func (r *AppointmentRepo) FindByMasterAndDate(ctx context.Context, masterID int64, date time.Time) (*entity.Appointment, error) {
	return r.getOne(ctx, `
		SELECT `+appointmentColumns+` FROM appointments
		WHERE master_id = $1 AND appointment_date = $2
		LIMIT 1`, masterID, date)
}

func (r *AppointmentRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Appointment, error) {
	var a entity.Appointment
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&a.ID, &a.ClientID, &a.MasterID, &a.ServiceID, &a.Date, &a.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return &a, nil
}

// UpdateStatus cambia el estado de una cita. ErrAppointmentNotFound si no existe.
func (r *AppointmentRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE appointments SET status = $2 WHERE appointment_id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update appointment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAppointmentNotFound
	}
	return nil
}

// ListDetailed lista las citas con nombres de cliente, maestro y servicio y el pago, si lo hay.
func (r *AppointmentRepo) ListDetailed(ctx context.Context) ([]*entity.AppointmentDetail, error) {
	rows, err := r.q.Query(ctx, `
		SELECT a.appointment_id,
		       COALESCE(c.client_name, ''),
		       COALESCE(m.master_name, ''),
		       COALESCE(s.service_name, ''),
		       a.appointment_date,
		       a.status,
		       p.payment_amount,
		       COALESCE(p.payment_status, '')
		FROM appointments a
		LEFT JOIN clients c ON c.client_id = a.client_id
		LEFT JOIN masters m ON m.master_id = a.master_id
		LEFT JOIN services s ON s.service_id = a.service_id
		LEFT JOIN payments p ON p.appointment_id = a.appointment_id
		ORDER BY a.appointment_date, a.appointment_id`)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()
	var list []*entity.AppointmentDetail
	for rows.Next() {
		var d entity.AppointmentDetail
		var amount decimal.NullDecimal
		if err := rows.Scan(
			&d.ID, &d.ClientName, &d.MasterName, &d.ServiceName,
			&d.Date, &d.Status, &amount, &d.PaymentStatus,
		); err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		if amount.Valid {
			v := amount.Decimal
			d.PaymentAmount = &v
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
