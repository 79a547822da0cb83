package scheduling_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Salon-api/internal/application/dto"
	"github.com/jhoicas/Salon-api/internal/application/scheduling"
	"github.com/jhoicas/Salon-api/internal/domain"
	"github.com/jhoicas/Salon-api/internal/domain/entity"
	"github.com/jhoicas/Salon-api/internal/infrastructure/memory"
)

type fixture struct {
	store     *memory.Store
	appts     *scheduling.AppointmentUseCase
	payments  *scheduling.PaymentUseCase
	clientID  int64
	masterID  int64
	serviceID int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	client := &entity.Client{Name: "Ana", Phone: "3001112233"}
	require.NoError(t, memory.NewClientRepository(store).Create(ctx, client))
	master := &entity.Master{Name: "Laura", Phone: "3004445566"}
	require.NoError(t, memory.NewMasterRepository(store).Create(ctx, master))
	service := &entity.Service{Name: "Manicure", Price: decimal.NewFromInt(30), Duration: 45}
	require.NoError(t, memory.NewServiceRepository(store).Create(ctx, service))

	tx := memory.NewTxRunner(store)
	return &fixture{
		store:     store,
		appts:     scheduling.NewAppointmentUseCase(tx, memory.NewAppointmentRepository(store)),
		payments:  scheduling.NewPaymentUseCase(tx),
		clientID:  client.ID,
		masterID:  master.ID,
		serviceID: service.ID,
	}
}

func (f *fixture) request(date string) dto.CreateAppointmentRequest {
	return dto.CreateAppointmentRequest{ClientID: f.clientID, MasterID: f.masterID, ServiceID: f.serviceID, AppointmentDate: date}
}

func TestAppointmentCreate_OK(t *testing.T) {
	f := newFixture(t)
	id, err := f.appts.Create(context.Background(), f.request("2026-03-10T14:00:00"))
	require.NoError(t, err)
	assert.NotZero(t, id)

	appt, err := memory.NewAppointmentRepository(f.store).GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, appt)
	assert.Equal(t, entity.AppointmentScheduled, appt.Status)
	assert.Equal(t, time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC), appt.Date)
}

func TestAppointmentCreate_MaestroOcupadoMismaHora(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.appts.Create(ctx, f.request("2026-03-10T14:00:00"))
	require.NoError(t, err)

	// Mismo instante en otro formato admitido.
	_, err = f.appts.Create(ctx, f.request("2026-03-10 14:00"))
	assert.ErrorIs(t, err, domain.ErrMasterBusy)
	assert.Equal(t, 1, f.store.Counts()["appointments"])
}

func TestAppointmentCreate_NoExiste(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	req := f.request("2026-03-10T14:00:00")
	req.ClientID = 999
	_, err := f.appts.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrClientNotFound)

	req = f.request("2026-03-10T14:00:00")
	req.MasterID = 999
	_, err = f.appts.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrMasterNotFound)

	req = f.request("2026-03-10T14:00:00")
	req.ServiceID = 999
	_, err = f.appts.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrServiceNotFound)

	assert.Equal(t, 0, f.store.Counts()["appointments"])
}

func TestAppointmentCreate_FechaInvalidaNoTocaDatos(t *testing.T) {
	f := newFixture(t)
	before := f.store.Calls()
	_, err := f.appts.Create(context.Background(), f.request("10/03/2026"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, before, f.store.Calls())
}

func TestAppointmentList_SinPagoMontoCero(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.appts.Create(ctx, f.request("2026-03-10"))
	require.NoError(t, err)

	list, err := f.appts.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ana", list[0].ClientName)
	assert.Equal(t, "Laura", list[0].MasterName)
	assert.Equal(t, "Manicure", list[0].ServiceName)
	assert.Equal(t, "2026-03-10T00:00:00", list[0].AppointmentDate)
	assert.Zero(t, list[0].PaymentAmount)
	assert.Empty(t, list[0].PaymentStatus)
}

func TestParseAppointmentDate(t *testing.T) {
	want := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
	for _, in := range []string{
		"2026-03-10T14:30:00",
		"2026-03-10T14:30",
		"2026-03-10 14:30:00",
		"2026-03-10 14:30",
		" 2026-03-10T14:30:00 ",
		"2026-03-10T14:30:00Z",
		"2026-03-10T09:30:00-05:00",
	} {
		got, err := scheduling.ParseAppointmentDate(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), "%s -> %s", in, got)
	}

	_, err := scheduling.ParseAppointmentDate("")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPaymentRecord_CompletaCita(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	apptID, err := f.appts.Create(ctx, f.request("2026-03-10T14:00:00"))
	require.NoError(t, err)

	amount := decimal.RequireFromString("30.456")
	payID, err := f.payments.Record(ctx, dto.RecordPaymentRequest{
		ClientID: f.clientID, AppointmentID: apptID, Amount: &amount, Method: "efectivo",
	})
	require.NoError(t, err)
	assert.NotZero(t, payID)

	p, err := memory.NewPaymentRepository(f.store).GetByAppointmentID(ctx, apptID)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, entity.PaymentCompleted, p.Status)
	assert.True(t, p.Amount.Equal(decimal.RequireFromString("30.46")), p.Amount.String())

	appt, err := memory.NewAppointmentRepository(f.store).GetByID(ctx, apptID)
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentCompleted, appt.Status)
}

func TestPaymentRecord_SegundoPagoRechazado(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	apptID, err := f.appts.Create(ctx, f.request("2026-03-10T14:00:00"))
	require.NoError(t, err)
	amount := decimal.NewFromInt(30)
	req := dto.RecordPaymentRequest{ClientID: f.clientID, AppointmentID: apptID, Amount: &amount, Method: "tarjeta"}

	_, err = f.payments.Record(ctx, req)
	require.NoError(t, err)
	_, err = f.payments.Record(ctx, req)
	assert.ErrorIs(t, err, domain.ErrAlreadyPaid)
	assert.Equal(t, 1, f.store.Counts()["payments"])
}

func TestPaymentRecord_CitaInexistente(t *testing.T) {
	f := newFixture(t)
	amount := decimal.NewFromInt(30)
	_, err := f.payments.Record(context.Background(), dto.RecordPaymentRequest{
		ClientID: f.clientID, AppointmentID: 404, Amount: &amount, Method: "efectivo",
	})
	assert.ErrorIs(t, err, domain.ErrAppointmentNotFound)
	assert.Equal(t, 0, f.store.Counts()["payments"])
}

func TestPaymentRecord_ClienteInexistente(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	apptID, err := f.appts.Create(ctx, f.request("2026-03-10T14:00:00"))
	require.NoError(t, err)

	amount := decimal.NewFromInt(30)
	_, err = f.payments.Record(ctx, dto.RecordPaymentRequest{
		ClientID: 999, AppointmentID: apptID, Amount: &amount, Method: "efectivo",
	})
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
	assert.Equal(t, 0, f.store.Counts()["payments"])
}

func TestPaymentRecord_ClienteDistintoAlDeLaCita(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	apptID, err := f.appts.Create(ctx, f.request("2026-03-10T14:00:00"))
	require.NoError(t, err)
	other := &entity.Client{Name: "Bea", Phone: "3009998877"}
	require.NoError(t, memory.NewClientRepository(f.store).Create(ctx, other))

	amount := decimal.NewFromInt(30)
	_, err = f.payments.Record(ctx, dto.RecordPaymentRequest{
		ClientID: other.ID, AppointmentID: apptID, Amount: &amount, Method: "efectivo",
	})
	assert.ErrorIs(t, err, domain.ErrClientMismatch)
	assert.Equal(t, 0, f.store.Counts()["payments"])

	appt, err := memory.NewAppointmentRepository(f.store).GetByID(ctx, apptID)
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentScheduled, appt.Status)
}

func TestPaymentRecord_MontoNegativo(t *testing.T) {
	f := newFixture(t)
	amount := decimal.NewFromInt(-1)
	_, err := f.payments.Record(context.Background(), dto.RecordPaymentRequest{
		ClientID: f.clientID, AppointmentID: 1, Amount: &amount, Method: "efectivo",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPaymentRecord_FalloEnSegundaEscrituraRevierteAmbas(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	apptID, err := f.appts.Create(ctx, f.request("2026-03-10T14:00:00"))
	require.NoError(t, err)

	boom := errors.New("boom")
	f.store.FailOn("appointments.update_status", boom)
	amount := decimal.NewFromInt(30)
	_, err = f.payments.Record(ctx, dto.RecordPaymentRequest{
		ClientID: f.clientID, AppointmentID: apptID, Amount: &amount, Method: "efectivo",
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, f.store.Counts()["payments"])

	appt, err := memory.NewAppointmentRepository(f.store).GetByID(ctx, apptID)
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentScheduled, appt.Status)
}
