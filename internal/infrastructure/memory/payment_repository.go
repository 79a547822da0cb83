package memory

import (
	"context"

	"github.com/jhoicas/Salon-api/internal/domain"
	"github.com/jhoicas/Salon-api/internal/domain/entity"
	"github.com/jhoicas/Salon-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo pagos en memoria.
type PaymentRepo struct {
	s    *Store
	inTx bool
}

// NewPaymentRepository construye el repositorio.
func NewPaymentRepository(s *Store) *PaymentRepo { return &PaymentRepo{s: s} }

func (r *PaymentRepo) Create(_ context.Context, payment *entity.Payment) error {
	unlock, err := r.s.write("payments.create", r.inTx)
	if err != nil {
		return err
	}
	defer unlock()
	if _, ok := r.s.data.clients[payment.ClientID]; !ok {
		return domain.ErrClientNotFound
	}
	if _, ok := r.s.data.appointments[payment.AppointmentID]; !ok {
		return domain.ErrAppointmentNotFound
	}
	if payment.Status == "" {
		payment.Status = entity.PaymentCompleted
	}
	payment.ID = r.s.nextID()
	r.s.data.payments[payment.ID] = *payment
	return nil
}

func (r *PaymentRepo) GetByAppointmentID(_ context.Context, appointmentID int64) (*entity.Payment, error) {
	if err := r.s.begin("payments.get_by_appointment"); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()
	for _, id := range sortedIDs(r.s.data.payments) {
		if p := r.s.data.payments[id]; p.AppointmentID == appointmentID {
			return &p, nil
		}
	}
	return nil, nil
}
