package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Salon-api/internal/application/dto"
	"github.com/jhoicas/Salon-api/internal/application/usecase"
	"github.com/jhoicas/Salon-api/internal/domain"
	"github.com/jhoicas/Salon-api/internal/domain/entity"
	"github.com/jhoicas/Salon-api/internal/infrastructure/cache"
	"github.com/jhoicas/Salon-api/internal/infrastructure/memory"
)

func ptr[T any](v T) *T { return &v }

func TestClientCreate_TelefonoDuplicado(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewClientUseCase(memory.NewClientRepository(store), usecase.NewListCache(nil, 0))
	ctx := context.Background()

	id, err := uc.Create(ctx, dto.CreateClientRequest{Name: " Ana ", Phone: "300"})
	require.NoError(t, err)
	assert.NotZero(t, id)

	_, err = uc.Create(ctx, dto.CreateClientRequest{Name: "Otra", Phone: "300"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, 1, store.Counts()["clients"])

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ana", list[0].Name)
	assert.Nil(t, list[0].BirthDate)
}

func TestClientCreate_FechaNacimientoInvalida(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewClientUseCase(memory.NewClientRepository(store), usecase.NewListCache(nil, 0))

	_, err := uc.Create(context.Background(), dto.CreateClientRequest{Name: "Ana", Phone: "300", BirthDate: ptr("17/05/1990")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, store.Counts()["clients"])
}

func TestClientDelete_NoExisteYEnUso(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	uc := usecase.NewClientUseCase(memory.NewClientRepository(store), usecase.NewListCache(nil, 0))

	assert.ErrorIs(t, uc.Delete(ctx, 42), domain.ErrClientNotFound)

	clientID, err := uc.Create(ctx, dto.CreateClientRequest{Name: "Ana", Phone: "300"})
	require.NoError(t, err)
	master := &entity.Master{Name: "Laura", Phone: "301"}
	require.NoError(t, memory.NewMasterRepository(store).Create(ctx, master))
	service := &entity.Service{Name: "Gel", Price: decimal.NewFromInt(10), Duration: 30}
	require.NoError(t, memory.NewServiceRepository(store).Create(ctx, service))
	require.NoError(t, memory.NewAppointmentRepository(store).Create(ctx, &entity.Appointment{
		ClientID: clientID, MasterID: master.ID, ServiceID: service.ID, Date: time.Now().UTC(),
	}))

	assert.ErrorIs(t, uc.Delete(ctx, clientID), domain.ErrInUse)
	assert.Equal(t, 1, store.Counts()["clients"])
}

func TestMasterCreate_ValidaYDetectaDuplicado(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewMasterUseCase(memory.NewMasterRepository(store), usecase.NewListCache(nil, 0))
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateMasterRequest{Name: "", Phone: "301"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateMasterRequest{Name: "Laura", Phone: "301", Email: "laura@salon.co"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateMasterRequest{Name: "Laura B", Phone: "301"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "laura@salon.co", list[0].Email)
}

func TestServiceCreate_PrecioRedondeadoYNombreUnico(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewServiceUseCase(memory.NewServiceRepository(store), usecase.NewListCache(nil, 0))
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateServiceRequest{Name: "Gel", Price: ptr(decimal.RequireFromString("25.499")), Duration: 30})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateServiceRequest{Name: "Gel", Price: ptr(decimal.NewFromInt(1)), Duration: 30})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	_, err = uc.Create(ctx, dto.CreateServiceRequest{Name: "Barato", Price: ptr(decimal.NewFromInt(-1)), Duration: 30})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Price.Equal(decimal.RequireFromString("25.50")), list[0].Price.String())
}

func TestListCache_SirveDeCacheEInvalidaEnEscritura(t *testing.T) {
	store := memory.NewStore()
	mc := cache.NewMemory()
	uc := usecase.NewClientUseCase(memory.NewClientRepository(store), usecase.NewListCache(mc, time.Minute))
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateClientRequest{Name: "Ana", Phone: "300"})
	require.NoError(t, err)

	first, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)
	_, cached, err := mc.Get(ctx, cache.KeyClients)
	require.NoError(t, err)
	assert.True(t, cached)

	// Segunda lectura sin tocar el repositorio.
	calls := store.Calls()
	second, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, calls, store.Calls())

	// Un alta invalida la entrada.
	_, err = uc.Create(ctx, dto.CreateClientRequest{Name: "Bea", Phone: "301"})
	require.NoError(t, err)
	_, cached, err = mc.Get(ctx, cache.KeyClients)
	require.NoError(t, err)
	assert.False(t, cached)

	third, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, third, 2)
}

type failingCache struct{}

func (failingCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("redis caído")
}
func (failingCache) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("redis caído")
}
func (failingCache) Delete(context.Context, string) error { return errors.New("redis caído") }

func TestListCache_FalloDeCacheNoCortaLaPeticion(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewServiceUseCase(memory.NewServiceRepository(store), usecase.NewListCache(failingCache{}, time.Minute))
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateServiceRequest{Name: "Gel", Price: ptr(decimal.NewFromInt(10)), Duration: 30})
	require.NoError(t, err)
	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
