package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Salon-api/internal/application/scheduling"
	"github.com/jhoicas/Salon-api/internal/domain"
	"github.com/jhoicas/Salon-api/internal/domain/entity"
	"github.com/jhoicas/Salon-api/internal/infrastructure/memory"
)

func TestRoles_EnsureDefaultsIdempotente(t *testing.T) {
	store := memory.NewStore()
	roles := memory.NewRoleRepository(store)
	ctx := context.Background()

	require.NoError(t, roles.EnsureDefaults(ctx, entity.DefaultRoles()))
	require.NoError(t, roles.EnsureDefaults(ctx, []entity.Role{{ID: entity.RoleAdmin, Name: "Otro", Permissions: "view"}}))

	list, err := roles.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Administrador", list[0].Name, "un rol existente no se sobrescribe")
}

func TestClients_UnicidadYClaveForanea(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	clients := memory.NewClientRepository(store)

	c := &entity.Client{Name: "Ana", Phone: "300"}
	require.NoError(t, clients.Create(ctx, c))
	assert.ErrorIs(t, clients.Create(ctx, &entity.Client{Name: "Bea", Phone: "300"}), domain.ErrDuplicate)

	m := &entity.Master{Name: "Laura", Phone: "301"}
	require.NoError(t, memory.NewMasterRepository(store).Create(ctx, m))
	s := &entity.Service{Name: "Gel", Price: decimal.NewFromInt(10), Duration: 30}
	require.NoError(t, memory.NewServiceRepository(store).Create(ctx, s))

	appts := memory.NewAppointmentRepository(store)
	assert.ErrorIs(t, appts.Create(ctx, &entity.Appointment{ClientID: 999, MasterID: m.ID, ServiceID: s.ID}), domain.ErrClientNotFound)
	require.NoError(t, appts.Create(ctx, &entity.Appointment{ClientID: c.ID, MasterID: m.ID, ServiceID: s.ID}))
	assert.ErrorIs(t, clients.Delete(ctx, c.ID), domain.ErrInUse)
}

func TestTxRunner_RevierteSiFallaElCallback(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	tx := memory.NewTxRunner(store)
	boom := errors.New("boom")

	err := tx.Run(ctx, func(r scheduling.Repos) error {
		if err := r.Clients.Create(ctx, &entity.Client{Name: "Ana", Phone: "300"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, store.Counts()["clients"])

	err = tx.Run(ctx, func(r scheduling.Repos) error {
		return r.Clients.Create(ctx, &entity.Client{Name: "Ana", Phone: "300"})
	})
	require.NoError(t, err)
	assert.Equal(t, 1, store.Counts()["clients"])
}

func TestTxRunner_RollbackConservaEscriturasAjenas(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	tx := memory.NewTxRunner(store)
	clients := memory.NewClientRepository(store)
	boom := errors.New("boom")

	inTx := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		<-inTx
		done <- clients.Create(ctx, &entity.Client{Name: "Bea", Phone: "301"})
	}()

	err := tx.Run(ctx, func(r scheduling.Repos) error {
		if err := r.Clients.Create(ctx, &entity.Client{Name: "Ana", Phone: "300"}); err != nil {
			return err
		}
		close(inTx)
		// La escritura externa espera a que termine la transacción.
		select {
		case err := <-done:
			t.Errorf("escritura externa terminó dentro de la transacción: %v", err)
		case <-time.After(50 * time.Millisecond):
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)
	require.NoError(t, <-done)

	assert.Equal(t, 1, store.Counts()["clients"])
	bea, err := clients.GetByPhone(ctx, "301")
	require.NoError(t, err)
	assert.NotNil(t, bea, "la escritura externa sobrevive al rollback")
	ana, err := clients.GetByPhone(ctx, "300")
	require.NoError(t, err)
	assert.Nil(t, ana, "la escritura de la transacción se deshace")
}

func TestStore_FailOnYCalls(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	clients := memory.NewClientRepository(store)
	boom := errors.New("boom")

	store.FailOn("clients.list", boom)
	_, err := clients.List(ctx)
	assert.ErrorIs(t, err, boom)

	store.FailOn("clients.list", nil)
	_, err = clients.List(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, store.Calls())
}

func TestAppointments_UpdateStatusInexistente(t *testing.T) {
	store := memory.NewStore()
	err := memory.NewAppointmentRepository(store).UpdateStatus(context.Background(), 5, entity.AppointmentCompleted)
	assert.ErrorIs(t, err, domain.ErrAppointmentNotFound)
}
