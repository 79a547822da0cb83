package memory

import (
	"context"
	"time"

	"github.com/jhoicas/Salon-api/internal/domain"
	"github.com/jhoicas/Salon-api/internal/domain/entity"
	"github.com/jhoicas/Salon-api/internal/domain/repository"
)

var _ repository.AppointmentRepository = (*AppointmentRepo)(nil)

// AppointmentRepo citas en memoria.
type AppointmentRepo struct {
	s    *Store
	inTx bool
}

// NewAppointmentRepository construye el repositorio.
func NewAppointmentRepository(s *Store) *AppointmentRepo { return &AppointmentRepo{s: s} }

func (r *AppointmentRepo) Create(_ context.Context, appt *entity.Appointment) error {
	unlock, err := r.s.write("appointments.create", r.inTx)
	if err != nil {
		return err
	}
	defer unlock()
	if _, ok := r.s.data.clients[appt.ClientID]; !ok {
		return domain.ErrClientNotFound
	}
	if _, ok := r.s.data.masters[appt.MasterID]; !ok {
		return domain.ErrMasterNotFound
	}
	if _, ok := r.s.data.services[appt.ServiceID]; !ok {
		return domain.ErrServiceNotFound
	}
	if appt.Status == "" {
		appt.Status = entity.AppointmentScheduled
	}
	appt.ID = r.s.nextID()
	r.s.data.appointments[appt.ID] = *appt
	return nil
}

func (r *AppointmentRepo) GetByID(_ context.Context, id int64) (*entity.Appointment, error) {
	if err := r.s.begin("appointments.get"); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()
	a, ok := r.s.data.appointments[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *AppointmentRepo) FindByMasterAndDate(_ context.Context, masterID int64, date time.Time) (*entity.Appointment, error) {
	if err := r.s.begin("appointments.find_by_master_and_date"); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()
	for _, id := range sortedIDs(r.s.data.appointments) {
		a := r.s.data.appointments[id]
		if a.MasterID == masterID && a.Date.Equal(date) {
			return &a, nil
		}
	}
	return nil, nil
}

func (r *AppointmentRepo) UpdateStatus(_ context.Context, id int64, status string) error {
	unlock, err := r.s.write("appointments.update_status", r.inTx)
	if err != nil {
		return err
	}
	defer unlock()
	a, ok := r.s.data.appointments[id]
	if !ok {
		return domain.ErrAppointmentNotFound
	}
	a.Status = status
	r.s.data.appointments[id] = a
	return nil
}

func (r *AppointmentRepo) ListDetailed(_ context.Context) ([]*entity.AppointmentDetail, error) {
	if err := r.s.begin("appointments.list_detailed"); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()
	ids := sortedIDs(r.s.data.appointments)
	out := make([]*entity.AppointmentDetail, 0, len(ids))
	for _, id := range ids {
		a := r.s.data.appointments[id]
		d := &entity.AppointmentDetail{ID: a.ID, Date: a.Date, Status: a.Status}
		if c, ok := r.s.data.clients[a.ClientID]; ok {
			d.ClientName = c.Name
		}
		if m, ok := r.s.data.masters[a.MasterID]; ok {
			d.MasterName = m.Name
		}
		if sv, ok := r.s.data.services[a.ServiceID]; ok {
			d.ServiceName = sv.Name
		}
		for _, pid := range sortedIDs(r.s.data.payments) {
			if p := r.s.data.payments[pid]; p.AppointmentID == a.ID {
				amount := p.Amount
				d.PaymentAmount = &amount
				d.PaymentStatus = p.Status
				break
			}
		}
		out = append(out, d)
	}
	return out, nil
}
