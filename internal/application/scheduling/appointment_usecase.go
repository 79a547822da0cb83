package scheduling

import (
	"context"

	"github.com/jhoicas/Salon-api/internal/application/dto"
	"github.com/jhoicas/Salon-api/internal/domain"
	"github.com/jhoicas/Salon-api/internal/domain/entity"
	"github.com/jhoicas/Salon-api/internal/domain/repository"
)

// AppointmentUseCase alta y listado de citas.
type AppointmentUseCase struct {
	tx   TxRunner
	repo repository.AppointmentRepository
}

// NewAppointmentUseCase construye el caso de uso. repo se usa para lecturas fuera de transacción.
func NewAppointmentUseCase(tx TxRunner, repo repository.AppointmentRepository) *AppointmentUseCase {
	return &AppointmentUseCase{tx: tx, repo: repo}
}

// Create registra una cita. Comprueba, en este orden, cliente, maestro y servicio
// (cada uno con su propio ErrXNotFound) y después que el maestro esté libre a esa hora.
//
// La comprobación de disponibilidad es una lectura seguida de un INSERT sin bloqueo de
// fila ni constraint único: dos altas concurrentes para el mismo maestro y hora pueden
// pasar ambas.
func (uc *AppointmentUseCase) Create(ctx context.Context, in dto.CreateAppointmentRequest) (int64, error) {
	if in.ClientID <= 0 || in.MasterID <= 0 || in.ServiceID <= 0 {
		return 0, domain.ErrInvalidInput
	}
	date, err := ParseAppointmentDate(in.AppointmentDate)
	if err != nil {
		return 0, err
	}

	var id int64
	err = uc.tx.Run(ctx, func(r Repos) error {
		client, err := r.Clients.GetByID(ctx, in.ClientID)
		if err != nil {
			return err
		}
		if client == nil {
			return domain.ErrClientNotFound
		}
		master, err := r.Masters.GetByID(ctx, in.MasterID)
		if err != nil {
			return err
		}
		if master == nil {
			return domain.ErrMasterNotFound
		}
		service, err := r.Services.GetByID(ctx, in.ServiceID)
		if err != nil {
			return err
		}
		if service == nil {
			return domain.ErrServiceNotFound
		}

		busy, err := r.Appointments.FindByMasterAndDate(ctx, in.MasterID, date)
		if err != nil {
			return err
		}
		if busy != nil {
			return domain.ErrMasterBusy
		}

		appt := &entity.Appointment{
			ClientID:  in.ClientID,
			MasterID:  in.MasterID,
			ServiceID: in.ServiceID,
			Date:      date,
			Status:    entity.AppointmentScheduled,
		}
		if err := r.Appointments.Create(ctx, appt); err != nil {
			return err
		}
		id = appt.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// List devuelve todas las citas con nombres resueltos. Sin pago, payment_amount es 0.
func (uc *AppointmentUseCase) List(ctx context.Context) ([]dto.AppointmentResponse, error) {
	list, err := uc.repo.ListDetailed(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AppointmentResponse, 0, len(list))
	for _, a := range list {
		resp := dto.AppointmentResponse{
			ID:              a.ID,
			ClientName:      a.ClientName,
			MasterName:      a.MasterName,
			ServiceName:     a.ServiceName,
			AppointmentDate: a.Date.Format(DateTimeLayout),
			Status:          a.Status,
			PaymentStatus:   a.PaymentStatus,
		}
		if a.PaymentAmount != nil {
			resp.PaymentAmount = a.PaymentAmount.InexactFloat64()
		}
		out = append(out, resp)
	}
	return out, nil
}
