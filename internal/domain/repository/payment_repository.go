package repository

import (
	"context"

	"github.com/jhoicas/Salon-api/internal/domain/entity"
)

// PaymentRepository puerto de persistencia para Payment.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	GetByAppointmentID(ctx context.Context, appointmentID int64) (*entity.Payment, error)
}
