package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentCompleted estado por defecto de un pago registrado.
const PaymentCompleted = "completed"

// Payment cobro de una cita. Se registra una sola vez por cita.
type Payment struct {
	ID            int64
	ClientID      int64
	AppointmentID int64
	Amount        decimal.Decimal
	Method        string
	Date          time.Time
	Status        string
}
