package dto

import "github.com/shopspring/decimal"

// CreateAppointmentRequest alta de cita.
// appointment_date admite "2006-01-02T15:04:05", "2006-01-02 15:04", RFC 3339 o solo fecha.
type CreateAppointmentRequest struct {
	ClientID        int64  `json:"client_id" validate:"required"`
	MasterID        int64  `json:"master_id" validate:"required"`
	ServiceID       int64  `json:"service_id" validate:"required"`
	AppointmentDate string `json:"appointment_date" validate:"required"`
}

// AppointmentResponse fila del listado de citas con nombres y monto pagado.
type AppointmentResponse struct {
	ID              int64   `json:"appointment_id"`
	ClientName      string  `json:"client_name"`
	MasterName      string  `json:"master_name"`
	ServiceName     string  `json:"service_name"`
	AppointmentDate string  `json:"appointment_date"`
	Status          string  `json:"status"`
	PaymentAmount   float64 `json:"payment_amount"`
	PaymentStatus   string  `json:"payment_status"`
}

// RecordPaymentRequest cobro de una cita.
type RecordPaymentRequest struct {
	ClientID      int64            `json:"client_id" validate:"required"`
	AppointmentID int64            `json:"appointment_id" validate:"required"`
	Amount        *decimal.Decimal `json:"payment_amount" validate:"required"`
	Method        string           `json:"payment_method" validate:"required"`
}
