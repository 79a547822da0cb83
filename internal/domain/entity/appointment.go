package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una cita.
const (
	AppointmentScheduled = "scheduled"
	AppointmentCompleted = "completed"
)

// Appointment cita de un cliente con un maestro para un servicio.
type Appointment struct {
	ID        int64
	ClientID  int64
	MasterID  int64
	ServiceID int64
	Date      time.Time
	Status    string
}

// AppointmentDetail fila del listado de citas con los nombres ya resueltos.
// Los campos de texto son vacíos si la fila referenciada ya no existe (LEFT JOIN).
type AppointmentDetail struct {
	ID            int64
	ClientName    string
	MasterName    string
	ServiceName   string
	Date          time.Time
	Status        string
	PaymentAmount *decimal.Decimal
	PaymentStatus string
}
