package memory

import (
	"context"

	"github.com/jhoicas/Salon-api/internal/application/scheduling"
)

var _ scheduling.TxRunner = (*TxRunner)(nil)

// TxRunner transacciones en memoria: serializa las transacciones (y las escrituras
// sueltas de los demás repositorios) y, si fn falla, restaura la foto del estado
// tomada al empezar.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run ejecuta fn con los repositorios del store y deshace sus cambios si devuelve error.
func (r *TxRunner) Run(ctx context.Context, fn func(repos scheduling.Repos) error) error {
	r.store.txMu.Lock()
	defer r.store.txMu.Unlock()

	r.store.mu.Lock()
	snapshot := r.store.data.clone()
	r.store.mu.Unlock()

	err := fn(scheduling.Repos{
		Clients:      &ClientRepo{s: r.store, inTx: true},
		Masters:      &MasterRepo{s: r.store, inTx: true},
		Services:     &ServiceRepo{s: r.store, inTx: true},
		Appointments: &AppointmentRepo{s: r.store, inTx: true},
		Payments:     &PaymentRepo{s: r.store, inTx: true},
	})
	if err != nil {
		r.store.mu.Lock()
		r.store.data = snapshot
		r.store.mu.Unlock()
		return err
	}
	return nil
}
