package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Salon-api/internal/domain/entity"
)

// AppointmentRepository puerto de persistencia para Appointment.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *entity.Appointment) error
	GetByID(ctx context.Context, id int64) (*entity.Appointment, error)
	// FindByMasterAndDate busca una cita del maestro exactamente en esa fecha/hora.
	FindByMasterAndDate(ctx context.Context, masterID int64, date time.Time) (*entity.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	// ListDetailed devuelve las citas con cliente, maestro, servicio y pago resueltos.
	ListDetailed(ctx context.Context) ([]*entity.AppointmentDetail, error)
}
