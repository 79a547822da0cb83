// Package client es el cliente de operador de la API del salón: llamadas HTTP,
// decodificación local del rol, ejecución en segundo plano y exportaciones.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/jhoicas/Salon-api/internal/application/dto"
)

// ErrConnection el servidor no respondió (caído, DNS, conexión rechazada).
var ErrConnection = errors.New("no se pudo conectar con el servidor")

// APIError respuesta no 2xx del servidor. Error() devuelve el mensaje del servidor tal cual.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("error HTTP %d", e.Status)
}

// API cliente HTTP de la API del salón. Guarda el token en memoria tras Login.
// Sin reintentos ni timeout propio: la cancelación viene del ctx del llamador.
type API struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.RWMutex
	token string
}

// NewAPI construye el cliente. token puede ir vacío y fijarse después con Login o SetToken.
func NewAPI(baseURL, token string) *API {
	return &API{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		token:      token,
	}
}

// Token devuelve el token actual.
func (a *API) Token() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.token
}

// SetToken reemplaza el token.
func (a *API) SetToken(token string) {
	a.mu.Lock()
	a.token = token
	a.mu.Unlock()
}

// Login obtiene un token y lo guarda para las siguientes llamadas.
func (a *API) Login(ctx context.Context, username, password string) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	if err := a.do(ctx, http.MethodPost, "/auth/login", dto.LoginRequest{Username: username, Password: password}, &out); err != nil {
		return nil, err
	}
	a.SetToken(out.AccessToken)
	return &out, nil
}

// ListAppointments GET /appointment.
func (a *API) ListAppointments(ctx context.Context) ([]dto.AppointmentResponse, error) {
	var out []dto.AppointmentResponse
	if err := a.do(ctx, http.MethodGet, "/appointment", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListClients GET /clients.
func (a *API) ListClients(ctx context.Context) ([]dto.ClientResponse, error) {
	var out []dto.ClientResponse
	if err := a.do(ctx, http.MethodGet, "/clients", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListMasters GET /masters.
func (a *API) ListMasters(ctx context.Context) ([]dto.MasterResponse, error) {
	var out []dto.MasterResponse
	if err := a.do(ctx, http.MethodGet, "/masters", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListServices GET /services.
func (a *API) ListServices(ctx context.Context) ([]dto.ServiceResponse, error) {
	var out []dto.ServiceResponse
	if err := a.do(ctx, http.MethodGet, "/services", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateAppointment POST /appointment.
func (a *API) CreateAppointment(ctx context.Context, in dto.CreateAppointmentRequest) (dto.MessageResponse, error) {
	return a.write(ctx, http.MethodPost, "/appointment", in)
}

// RecordPayment POST /payment.
func (a *API) RecordPayment(ctx context.Context, in dto.RecordPaymentRequest) (dto.MessageResponse, error) {
	return a.write(ctx, http.MethodPost, "/payment", in)
}

// CreateClient POST /client.
func (a *API) CreateClient(ctx context.Context, in dto.CreateClientRequest) (dto.MessageResponse, error) {
	return a.write(ctx, http.MethodPost, "/client", in)
}

// CreateMaster POST /master.
func (a *API) CreateMaster(ctx context.Context, in dto.CreateMasterRequest) (dto.MessageResponse, error) {
	return a.write(ctx, http.MethodPost, "/master", in)
}

// CreateService POST /service.
func (a *API) CreateService(ctx context.Context, in dto.CreateServiceRequest) (dto.MessageResponse, error) {
	return a.write(ctx, http.MethodPost, "/service", in)
}

// DeleteClient DELETE /client/{id}.
func (a *API) DeleteClient(ctx context.Context, id int64) (dto.MessageResponse, error) {
	return a.write(ctx, http.MethodDelete, fmt.Sprintf("/client/%d", id), nil)
}

// DeleteMaster DELETE /master/{id}.
func (a *API) DeleteMaster(ctx context.Context, id int64) (dto.MessageResponse, error) {
	return a.write(ctx, http.MethodDelete, fmt.Sprintf("/master/%d", id), nil)
}

// DeleteService DELETE /service/{id}.
func (a *API) DeleteService(ctx context.Context, id int64) (dto.MessageResponse, error) {
	return a.write(ctx, http.MethodDelete, fmt.Sprintf("/service/%d", id), nil)
}

func (a *API) write(ctx context.Context, method, path string, body any) (dto.MessageResponse, error) {
	var out dto.MessageResponse
	err := a.do(ctx, method, path, body, &out)
	return out, err
}

func (a *API) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("serializar request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("crear HTTP request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if tok := a.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("%w: leer respuesta: %v", ErrConnection, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var errResp dto.ErrorResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil {
			apiErr.Code, apiErr.Message = errResp.Code, errResp.Message
		}
		return apiErr
	}
	if out == nil || len(rawBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(rawBody, out); err != nil {
		return fmt.Errorf("deserializar respuesta: %w", err)
	}
	return nil
}
