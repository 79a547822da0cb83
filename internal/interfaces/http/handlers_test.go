package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Salon-api/internal/application/auth"
	"github.com/jhoicas/Salon-api/internal/application/scheduling"
	"github.com/jhoicas/Salon-api/internal/application/usecase"
	"github.com/jhoicas/Salon-api/internal/domain/entity"
	"github.com/jhoicas/Salon-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/Salon-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Salon-api/pkg/jwt"
)

// testEnv API completa sobre el almacén en memoria.
type testEnv struct {
	app   *fiber.App
	store *memory.Store
}

func newTestEnv(t *testing.T, limiter *apphttp.LoginLimiter) *testEnv {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	roles := memory.NewRoleRepository(store)
	require.NoError(t, roles.EnsureDefaults(ctx, entity.DefaultRoles()))

	authUC := auth.NewAuthUseCase(memory.NewUserRepository(store), roles, auth.JWTConfig{
		Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
	})
	_, _, err := authUC.UpsertUser(ctx, "admin", "admin-pass", entity.RoleAdmin)
	require.NoError(t, err)

	lc := usecase.NewListCache(nil, time.Minute)
	tx := memory.NewTxRunner(store)
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:        authUC,
		ClientUC:      usecase.NewClientUseCase(memory.NewClientRepository(store), lc),
		MasterUC:      usecase.NewMasterUseCase(memory.NewMasterRepository(store), lc),
		ServiceUC:     usecase.NewServiceUseCase(memory.NewServiceRepository(store), lc),
		AppointmentUC: scheduling.NewAppointmentUseCase(tx, memory.NewAppointmentRepository(store)),
		PaymentUC:     scheduling.NewPaymentUseCase(tx),
		JWTSecret:     testJWTSecret,
		LoginLimiter:  limiter,
	})
	return &testEnv{app: app, store: store}
}

// call lanza la petición y decodifica el cuerpo JSON en out (si no es nil).
func (e *testEnv) call(t *testing.T, method, path, authHeader string, body any, out any) int {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type messageBody struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// seedBooking crea cliente, maestro y servicio y devuelve sus IDs.
func (e *testEnv) seedBooking(t *testing.T) (clientID, masterID, serviceID int64) {
	t.Helper()
	admin := tokenForRole(t, entity.RoleAdmin)
	var m messageBody
	require.Equal(t, http.StatusCreated, e.call(t, http.MethodPost, "/client", admin,
		map[string]any{"client_name": "Ana Pérez", "phone": "3001112233"}, &m))
	clientID = m.ID
	require.Equal(t, http.StatusCreated, e.call(t, http.MethodPost, "/master", admin,
		map[string]any{"master_name": "Laura", "phone": "3004445566", "email": "laura@salon.co"}, &m))
	masterID = m.ID
	require.Equal(t, http.StatusCreated, e.call(t, http.MethodPost, "/service", admin,
		map[string]any{"service_name": "Manicure gel", "description": "semipermanente", "price": 40.5, "duration": 60}, &m))
	serviceID = m.ID
	return clientID, masterID, serviceID
}

func (e *testEnv) book(t *testing.T, clientID, masterID, serviceID int64, date string) (int, messageBody) {
	t.Helper()
	var m messageBody
	status := e.call(t, http.MethodPost, "/appointment", tokenForRole(t, entity.RoleStaff), map[string]any{
		"client_id": clientID, "master_id": masterID, "service_id": serviceID, "appointment_date": date,
	}, &m)
	return status, m
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_OK_TokenSirveParaRutasProtegidas(t *testing.T) {
	env := newTestEnv(t, nil)

	var out struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		User        struct {
			Username string `json:"username"`
			RoleID   int    `json:"role_id"`
		} `json:"user"`
	}
	status := env.call(t, http.MethodPost, "/auth/login", "", map[string]string{"username": "admin", "password": "admin-pass"}, &out)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Bearer", out.TokenType)
	assert.Equal(t, "admin", out.User.Username)
	assert.Equal(t, entity.RoleAdmin, out.User.RoleID)

	var clients []map[string]any
	assert.Equal(t, http.StatusOK, env.call(t, http.MethodGet, "/clients", "Bearer "+out.AccessToken, nil, &clients))
	assert.Empty(t, clients)
}

func TestLogin_MismaRespuestaParaUsuarioYPasswordIncorrectos(t *testing.T) {
	env := newTestEnv(t, nil)

	var wrongPass, unknownUser errorBody
	s1 := env.call(t, http.MethodPost, "/auth/login", "", map[string]string{"username": "admin", "password": "nope"}, &wrongPass)
	s2 := env.call(t, http.MethodPost, "/auth/login", "", map[string]string{"username": "ghost", "password": "nope"}, &unknownUser)

	assert.Equal(t, http.StatusUnauthorized, s1)
	assert.Equal(t, http.StatusUnauthorized, s2)
	assert.Equal(t, wrongPass, unknownUser, "no debe revelar cuál comprobación falló")
}

func TestLogin_CamposFaltantes_Retorna400(t *testing.T) {
	env := newTestEnv(t, nil)

	var out errorBody
	status := env.call(t, http.MethodPost, "/auth/login", "", map[string]string{"username": "admin"}, &out)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", out.Code)
	assert.Contains(t, out.Message, "password")
}

func TestLogin_LimitePorIP_Retorna429(t *testing.T) {
	env := newTestEnv(t, apphttp.NewLoginLimiter(0.001, 2))
	creds := map[string]string{"username": "admin", "password": "nope"}

	assert.Equal(t, http.StatusUnauthorized, env.call(t, http.MethodPost, "/auth/login", "", creds, nil))
	assert.Equal(t, http.StatusUnauthorized, env.call(t, http.MethodPost, "/auth/login", "", creds, nil))

	var out errorBody
	assert.Equal(t, http.StatusTooManyRequests, env.call(t, http.MethodPost, "/auth/login", "", creds, &out))
	assert.Equal(t, "TOO_MANY_REQUESTS", out.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Guardas: sin efectos laterales cuando se rechaza
// ──────────────────────────────────────────────────────────────────────────────

func TestRutasProtegidas_TokenAusenteInvalidoOExpirado_SinLlamarRepositorios(t *testing.T) {
	env := newTestEnv(t, nil)
	expired, err := pkgjwt.Generate(testJWTSecret, pkgjwt.Identity{UserID: 1, RoleID: entity.RoleAdmin}, testIssuer, -5)
	require.NoError(t, err)
	otherSecret, err := pkgjwt.Generate("otro-secret", pkgjwt.Identity{UserID: 1, RoleID: entity.RoleAdmin}, testIssuer, testExpMin)
	require.NoError(t, err)

	headers := map[string]string{
		"sin token":     "",
		"malformado":    "Bearer abc.def.ghi",
		"expirado":      "Bearer " + expired,
		"otra firma":    "Bearer " + otherSecret,
		"esquema Basic": "Basic YWRtaW46YWRtaW4=",
	}
	for name, h := range headers {
		t.Run(name, func(t *testing.T) {
			before := env.store.Calls()
			status := env.call(t, http.MethodPost, "/client", h, map[string]any{"client_name": "X", "phone": "1"}, nil)
			assert.Equal(t, http.StatusUnauthorized, status)
			assert.Equal(t, before, env.store.Calls(), "no debe tocar la capa de datos")
		})
	}
}

func TestDeleteClient_RolUsuario_Retorna403YNoBorra(t *testing.T) {
	env := newTestEnv(t, nil)
	clientID, _, _ := env.seedBooking(t)
	before := env.store.Counts()["clients"]
	calls := env.store.Calls()

	var out errorBody
	status := env.call(t, http.MethodDelete, fmt.Sprintf("/client/%d", clientID), tokenForRole(t, entity.RoleViewer), nil, &out)

	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "FORBIDDEN", out.Code)
	assert.Equal(t, before, env.store.Counts()["clients"])
	assert.Equal(t, calls, env.store.Calls())
}

func TestListados_RolUsuarioPuedeLeer(t *testing.T) {
	env := newTestEnv(t, nil)
	env.seedBooking(t)
	viewer := tokenForRole(t, entity.RoleViewer)

	for _, path := range []string{"/clients", "/masters", "/services", "/appointment"} {
		var list []map[string]any
		assert.Equal(t, http.StatusOK, env.call(t, http.MethodGet, path, viewer, nil, &list), path)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD de catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateClient_AgregaUnaFilaYRechazaTelefonoDuplicado(t *testing.T) {
	env := newTestEnv(t, nil)
	staff := tokenForRole(t, entity.RoleStaff)

	var created messageBody
	status := env.call(t, http.MethodPost, "/client", staff,
		map[string]any{"client_name": "Marta", "phone": "3100000000", "birth_date": "1990-05-17"}, &created)
	require.Equal(t, http.StatusCreated, status)
	assert.NotZero(t, created.ID)
	assert.NotEmpty(t, created.Message)
	assert.Equal(t, 1, env.store.Counts()["clients"])

	var dup errorBody
	status = env.call(t, http.MethodPost, "/client", staff,
		map[string]any{"client_name": "Otra Marta", "phone": "3100000000"}, &dup)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "DUPLICATE", dup.Code)
	assert.Equal(t, 1, env.store.Counts()["clients"])

	var list []struct {
		ID        int64   `json:"client_id"`
		Name      string  `json:"name"`
		Phone     string  `json:"phone"`
		BirthDate *string `json:"birth_date"`
	}
	require.Equal(t, http.StatusOK, env.call(t, http.MethodGet, "/clients", staff, nil, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Marta", list[0].Name)
	require.NotNil(t, list[0].BirthDate)
	assert.Equal(t, "1990-05-17", *list[0].BirthDate)
}

func TestCreateMaster_TelefonoDuplicado_Retorna400(t *testing.T) {
	env := newTestEnv(t, nil)
	admin := tokenForRole(t, entity.RoleAdmin)
	body := map[string]any{"master_name": "Laura", "phone": "3004445566"}

	require.Equal(t, http.StatusCreated, env.call(t, http.MethodPost, "/master", admin, body, nil))
	var dup errorBody
	assert.Equal(t, http.StatusBadRequest, env.call(t, http.MethodPost, "/master", admin, body, &dup))
	assert.Equal(t, "DUPLICATE", dup.Code)
	assert.Equal(t, 1, env.store.Counts()["masters"])
}

func TestCreateClient_SinTelefono_Retorna400SinLlamarRepositorios(t *testing.T) {
	env := newTestEnv(t, nil)
	before := env.store.Calls()

	var out errorBody
	status := env.call(t, http.MethodPost, "/client", tokenForRole(t, entity.RoleAdmin), map[string]any{"client_name": "Sin Tel"}, &out)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", out.Code)
	assert.Contains(t, out.Message, "phone")
	assert.Equal(t, before, env.store.Calls())
}

func TestCreateService_PrecioComoString(t *testing.T) {
	env := newTestEnv(t, nil)
	admin := tokenForRole(t, entity.RoleAdmin)

	require.Equal(t, http.StatusCreated, env.call(t, http.MethodPost, "/service", admin,
		map[string]any{"service_name": "Pedicure", "price": "35.00", "duration": 45}, nil))

	var list []struct {
		Name     string `json:"name"`
		Price    string `json:"price"`
		Duration int    `json:"duration"`
	}
	require.Equal(t, http.StatusOK, env.call(t, http.MethodGet, "/services", admin, nil, &list))
	require.Len(t, list, 1)
	assert.True(t, decimal.RequireFromString(list[0].Price).Equal(decimal.NewFromInt(35)), list[0].Price)
	assert.Equal(t, 45, list[0].Duration)
}

func TestDelete_Inexistente_Retorna404(t *testing.T) {
	env := newTestEnv(t, nil)
	admin := tokenForRole(t, entity.RoleAdmin)

	for _, path := range []string{"/client/999", "/master/999", "/service/999"} {
		var out errorBody
		assert.Equal(t, http.StatusNotFound, env.call(t, http.MethodDelete, path, admin, nil, &out), path)
		assert.Equal(t, "NOT_FOUND", out.Code)
	}
}

func TestDelete_IDNoNumerico_Retorna400(t *testing.T) {
	env := newTestEnv(t, nil)
	assert.Equal(t, http.StatusBadRequest,
		env.call(t, http.MethodDelete, "/client/abc", tokenForRole(t, entity.RoleAdmin), nil, nil))
}

func TestDeleteService_ConCitas_Retorna400InUse(t *testing.T) {
	env := newTestEnv(t, nil)
	c, m, s := env.seedBooking(t)
	status, _ := env.book(t, c, m, s, "2026-03-10T14:00:00")
	require.Equal(t, http.StatusCreated, status)

	var out errorBody
	status = env.call(t, http.MethodDelete, fmt.Sprintf("/service/%d", s), tokenForRole(t, entity.RoleAdmin), nil, &out)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "IN_USE", out.Code)
	assert.Equal(t, 1, env.store.Counts()["services"])
}

func TestDeleteClient_OK_QuitaUnaFila(t *testing.T) {
	env := newTestEnv(t, nil)
	c, _, _ := env.seedBooking(t)

	var out messageBody
	status := env.call(t, http.MethodDelete, fmt.Sprintf("/client/%d", c), tokenForRole(t, entity.RoleStaff), nil, &out)
	assert.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, out.Message)
	assert.Equal(t, 0, env.store.Counts()["clients"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Citas y pagos
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateAppointment_MaestroOcupado(t *testing.T) {
	env := newTestEnv(t, nil)
	c, m, s := env.seedBooking(t)

	status, created := env.book(t, c, m, s, "2026-03-10T14:00:00")
	require.Equal(t, http.StatusCreated, status)
	assert.NotZero(t, created.ID)

	var busy errorBody
	status = env.call(t, http.MethodPost, "/appointment", tokenForRole(t, entity.RoleAdmin), map[string]any{
		"client_id": c, "master_id": m, "service_id": s, "appointment_date": "2026-03-10 14:00:00",
	}, &busy)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "MASTER_BUSY", busy.Code)
	assert.Equal(t, 1, env.store.Counts()["appointments"])

	status, _ = env.book(t, c, m, s, "2026-03-10T15:00:00")
	assert.Equal(t, http.StatusCreated, status, "otra hora sí está libre")
}

func TestCreateAppointment_OrdenDeComprobaciones(t *testing.T) {
	env := newTestEnv(t, nil)
	c, m, _ := env.seedBooking(t)

	cases := []struct {
		name                string
		client, master, svc int64
		want                string
	}{
		{"todo inexistente reporta cliente", 900, 901, 902, "cliente no encontrado"},
		{"maestro inexistente", c, 901, 902, "maestro no encontrado"},
		{"servicio inexistente", c, m, 902, "servicio no encontrado"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out errorBody
			status := env.call(t, http.MethodPost, "/appointment", tokenForRole(t, entity.RoleAdmin), map[string]any{
				"client_id": tc.client, "master_id": tc.master, "service_id": tc.svc, "appointment_date": "2026-03-10T10:00:00",
			}, &out)
			assert.Equal(t, http.StatusNotFound, status)
			assert.Equal(t, tc.want, out.Message)
		})
	}
	assert.Equal(t, 0, env.store.Counts()["appointments"])
}

func TestCreateAppointment_FechaInvalida_Retorna400(t *testing.T) {
	env := newTestEnv(t, nil)
	c, m, s := env.seedBooking(t)

	status, _ := env.book(t, c, m, s, "mañana a las 3")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, 0, env.store.Counts()["appointments"])
}

type appointmentRow struct {
	ID              int64   `json:"appointment_id"`
	ClientName      string  `json:"client_name"`
	MasterName      string  `json:"master_name"`
	ServiceName     string  `json:"service_name"`
	AppointmentDate string  `json:"appointment_date"`
	Status          string  `json:"status"`
	PaymentAmount   float64 `json:"payment_amount"`
}

func TestListAppointments_SinPago_MontoCero(t *testing.T) {
	env := newTestEnv(t, nil)
	c, m, s := env.seedBooking(t)
	status, _ := env.book(t, c, m, s, "2026-03-10T14:00:00")
	require.Equal(t, http.StatusCreated, status)

	var rows []appointmentRow
	require.Equal(t, http.StatusOK, env.call(t, http.MethodGet, "/appointment", tokenForRole(t, entity.RoleViewer), nil, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Ana Pérez", rows[0].ClientName)
	assert.Equal(t, "Laura", rows[0].MasterName)
	assert.Equal(t, "Manicure gel", rows[0].ServiceName)
	assert.Equal(t, "2026-03-10T14:00:00", rows[0].AppointmentDate)
	assert.Equal(t, entity.AppointmentScheduled, rows[0].Status)
	assert.Zero(t, rows[0].PaymentAmount)
}

func TestRecordPayment_CompletaLaCitaUnaSolaVez(t *testing.T) {
	env := newTestEnv(t, nil)
	c, m, s := env.seedBooking(t)
	_, appt := env.book(t, c, m, s, "2026-03-10T14:00:00")
	staff := tokenForRole(t, entity.RoleStaff)
	payment := map[string]any{"client_id": c, "appointment_id": appt.ID, "payment_amount": 40.5, "payment_method": "efectivo"}

	var out messageBody
	require.Equal(t, http.StatusOK, env.call(t, http.MethodPost, "/payment", staff, payment, &out))
	assert.NotEmpty(t, out.Message)
	assert.Equal(t, 1, env.store.Counts()["payments"])

	var rows []appointmentRow
	require.Equal(t, http.StatusOK, env.call(t, http.MethodGet, "/appointment", staff, nil, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, entity.AppointmentCompleted, rows[0].Status)
	assert.InDelta(t, 40.5, rows[0].PaymentAmount, 0.001)

	var again errorBody
	assert.Equal(t, http.StatusBadRequest, env.call(t, http.MethodPost, "/payment", staff, payment, &again))
	assert.Equal(t, "ALREADY_PAID", again.Code)
	assert.Equal(t, 1, env.store.Counts()["payments"])
}

func TestRecordPayment_CitaInexistente_Retorna404SinFilas(t *testing.T) {
	env := newTestEnv(t, nil)
	c, _, _ := env.seedBooking(t)

	var out errorBody
	status := env.call(t, http.MethodPost, "/payment", tokenForRole(t, entity.RoleAdmin),
		map[string]any{"client_id": c, "appointment_id": 777, "payment_amount": 10, "payment_method": "tarjeta"}, &out)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", out.Code)
	assert.Equal(t, 0, env.store.Counts()["payments"])
}

func TestRecordPayment_ClienteInexistente_Retorna404(t *testing.T) {
	env := newTestEnv(t, nil)
	c, m, s := env.seedBooking(t)
	_, appt := env.book(t, c, m, s, "2026-03-10T14:00:00")

	var out errorBody
	status := env.call(t, http.MethodPost, "/payment", tokenForRole(t, entity.RoleAdmin),
		map[string]any{"client_id": 999, "appointment_id": appt.ID, "payment_amount": 10, "payment_method": "tarjeta"}, &out)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", out.Code)
	assert.Equal(t, "cliente no encontrado", out.Message)
	assert.Equal(t, 0, env.store.Counts()["payments"])
}

func TestRecordPayment_ClienteDeOtraCita_Retorna400(t *testing.T) {
	env := newTestEnv(t, nil)
	c, m, s := env.seedBooking(t)
	_, appt := env.book(t, c, m, s, "2026-03-10T14:00:00")
	admin := tokenForRole(t, entity.RoleAdmin)

	var created messageBody
	require.Equal(t, http.StatusCreated, env.call(t, http.MethodPost, "/client", admin,
		map[string]any{"client_name": "Otra", "phone": "3117776655"}, &created))

	var out errorBody
	status := env.call(t, http.MethodPost, "/payment", admin,
		map[string]any{"client_id": created.ID, "appointment_id": appt.ID, "payment_amount": 10, "payment_method": "tarjeta"}, &out)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "CLIENT_MISMATCH", out.Code)
	assert.Equal(t, 0, env.store.Counts()["payments"])
}

func TestRecordPayment_FallaActualizarEstado_RevierteYOcultaDetalle(t *testing.T) {
	env := newTestEnv(t, nil)
	c, m, s := env.seedBooking(t)
	_, appt := env.book(t, c, m, s, "2026-03-10T14:00:00")
	env.store.FailOn("appointments.update_status", errors.New("conexión perdida con la base"))

	var out errorBody
	status := env.call(t, http.MethodPost, "/payment", tokenForRole(t, entity.RoleAdmin),
		map[string]any{"client_id": c, "appointment_id": appt.ID, "payment_amount": 40.5, "payment_method": "efectivo"}, &out)

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL", out.Code)
	assert.NotContains(t, out.Message, "conexión perdida")
	assert.Equal(t, 0, env.store.Counts()["payments"], "el pago debe revertirse")

	env.store.FailOn("appointments.update_status", nil)
	var rows []appointmentRow
	require.Equal(t, http.StatusOK, env.call(t, http.MethodGet, "/appointment", tokenForRole(t, entity.RoleAdmin), nil, &rows))
	assert.Equal(t, entity.AppointmentScheduled, rows[0].Status)
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t, nil)
	var out map[string]string
	assert.Equal(t, http.StatusOK, env.call(t, http.MethodGet, "/health", "", nil, &out))
	assert.Equal(t, "ok", out["status"])
}
