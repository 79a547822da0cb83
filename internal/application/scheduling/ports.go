// Package scheduling contiene los casos de uso de citas y cobros, los únicos
// que tocan varias tablas y por eso se ejecutan dentro de una transacción.
package scheduling

import (
	"context"

	"github.com/jhoicas/Salon-api/internal/domain/repository"
)

// Repos repositorios atados a una misma transacción.
type Repos struct {
	Clients      repository.ClientRepository
	Masters      repository.MasterRepository
	Services     repository.ServiceRepository
	Appointments repository.AppointmentRepository
	Payments     repository.PaymentRepository
}

// TxRunner ejecuta fn dentro de una transacción: Commit si fn devuelve nil, Rollback en otro caso.
type TxRunner interface {
	Run(ctx context.Context, fn func(r Repos) error) error
}
