package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Salon-api/internal/application/auth"
	"github.com/jhoicas/Salon-api/internal/application/scheduling"
	"github.com/jhoicas/Salon-api/internal/application/usecase"
	"github.com/jhoicas/Salon-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	ClientUC      *usecase.ClientUseCase
	MasterUC      *usecase.MasterUseCase
	ServiceUC     *usecase.ServiceUseCase
	AppointmentUC *scheduling.AppointmentUseCase
	PaymentUC     *scheduling.PaymentUseCase
	JWTSecret     string
	LoginLimiter  *LoginLimiter
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", Health)

	// Auth (público, con límite por IP)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/auth/login", deps.LoginLimiter.Handler(), authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := app.Group("/", AuthMiddleware(deps.JWTSecret))
	read := RequireRole(entity.ReadRoles()...)
	write := RequireRole(entity.WriteRoles()...)

	clientHandler := NewClientHandler(deps.ClientUC)
	protected.Get("/clients", read, clientHandler.List)
	protected.Post("/client", write, clientHandler.Create)
	protected.Delete("/client/:id", write, clientHandler.Delete)

	masterHandler := NewMasterHandler(deps.MasterUC)
	protected.Get("/masters", read, masterHandler.List)
	protected.Post("/master", write, masterHandler.Create)
	protected.Delete("/master/:id", write, masterHandler.Delete)

	serviceHandler := NewServiceHandler(deps.ServiceUC)
	protected.Get("/services", read, serviceHandler.List)
	protected.Post("/service", write, serviceHandler.Create)
	protected.Delete("/service/:id", write, serviceHandler.Delete)

	appointmentHandler := NewAppointmentHandler(deps.AppointmentUC, deps.PaymentUC)
	protected.Get("/appointment", read, appointmentHandler.List)
	protected.Post("/appointment", write, appointmentHandler.Create)
	protected.Post("/payment", write, appointmentHandler.RecordPayment)
}
