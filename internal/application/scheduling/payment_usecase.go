package scheduling

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/Salon-api/internal/application/dto"
	"github.com/jhoicas/Salon-api/internal/domain"
	"github.com/jhoicas/Salon-api/internal/domain/entity"
)

// PaymentUseCase registro de cobros.
type PaymentUseCase struct {
	tx  TxRunner
	now func() time.Time
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(tx TxRunner) *PaymentUseCase {
	return &PaymentUseCase{tx: tx, now: time.Now}
}

// Record registra el pago de una cita y la marca como completada, todo en una transacción.
// ErrAppointmentNotFound si la cita no existe, ErrClientNotFound si el cliente no existe,
// ErrClientMismatch si el cliente no es el de la cita y ErrAlreadyPaid si ya tiene un pago.
// Si falla cualquiera de las dos escrituras no queda ninguna.
func (uc *PaymentUseCase) Record(ctx context.Context, in dto.RecordPaymentRequest) (int64, error) {
	method := strings.TrimSpace(in.Method)
	if in.AppointmentID <= 0 || in.ClientID <= 0 || in.Amount == nil || in.Amount.IsNegative() || method == "" {
		return 0, domain.ErrInvalidInput
	}

	var id int64
	err := uc.tx.Run(ctx, func(r Repos) error {
		appt, err := r.Appointments.GetByID(ctx, in.AppointmentID)
		if err != nil {
			return err
		}
		if appt == nil {
			return domain.ErrAppointmentNotFound
		}
		client, err := r.Clients.GetByID(ctx, in.ClientID)
		if err != nil {
			return err
		}
		if client == nil {
			return domain.ErrClientNotFound
		}
		if appt.ClientID != in.ClientID {
			return domain.ErrClientMismatch
		}
		paid, err := r.Payments.GetByAppointmentID(ctx, in.AppointmentID)
		if err != nil {
			return err
		}
		if paid != nil {
			return domain.ErrAlreadyPaid
		}

		payment := &entity.Payment{
			ClientID:      in.ClientID,
			AppointmentID: in.AppointmentID,
			Amount:        in.Amount.Round(2),
			Method:        method,
			Date:          uc.now(),
			Status:        entity.PaymentCompleted,
		}
		if err := r.Payments.Create(ctx, payment); err != nil {
			return err
		}
		if err := r.Appointments.UpdateStatus(ctx, in.AppointmentID, entity.AppointmentCompleted); err != nil {
			return err
		}
		id = payment.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}
