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

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación de PaymentRepository (usable con pool o tx).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create persiste un pago y asigna su ID.
func (r *PaymentRepo) Create(ctx context.Context, p *entity.Payment) error {
	status := p.Status
	if status == "" {
		status = entity.PaymentCompleted
	}
	err := r.q.QueryRow(ctx, `
		INSERT INTO payments (client_id, appointment_id, payment_amount, payment_date, payment_method, payment_status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING payment_id`,
		p.ClientID, p.AppointmentID, p.Amount, p.Date, nullIfEmpty(p.Method), status,
	).Scan(&p.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert payment: %w", err)
	}
	p.Status = status
	return nil
}

// GetByAppointmentID obtiene el pago de una cita, si existe.
func (r *PaymentRepo) GetByAppointmentID(ctx context.Context, appointmentID int64) (*entity.Payment, error) {
	var p entity.Payment
	var method *string
	err := r.q.QueryRow(ctx, `
		SELECT payment_id, client_id, appointment_id, payment_amount, payment_date, payment_method, payment_status
		FROM payments WHERE appointment_id = $1
		ORDER BY payment_id LIMIT 1`, appointmentID,
	).Scan(&p.ID, &p.ClientID, &p.AppointmentID, &p.Amount, &p.Date, &method, &p.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	p.Method = deref(method)
	return &p, nil
}
