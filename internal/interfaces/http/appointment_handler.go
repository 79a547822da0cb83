package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Salon-api/internal/application/dto"
	"github.com/jhoicas/Salon-api/internal/application/scheduling"
)

// AppointmentHandler maneja citas y cobros.
type AppointmentHandler struct {
	appointments *scheduling.AppointmentUseCase
	payments     *scheduling.PaymentUseCase
}

// NewAppointmentHandler construye el handler.
func NewAppointmentHandler(appointments *scheduling.AppointmentUseCase, payments *scheduling.PaymentUseCase) *AppointmentHandler {
	return &AppointmentHandler{appointments: appointments, payments: payments}
}

// List godoc
// @Summary      Listar citas
// @Description  Citas con nombres de cliente, maestro y servicio. payment_amount es 0 si no hay pago.
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.AppointmentResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /appointment [get]
func (h *AppointmentHandler) List(c *fiber.Ctx) error {
	list, err := h.appointments.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Create godoc
// @Summary      Crear cita
// @Description  Comprueba cliente, maestro y servicio (en ese orden) y que el maestro esté libre a esa hora exacta.
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateAppointmentRequest  true  "client_id, master_id, service_id, appointment_date"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /appointment [post]
func (h *AppointmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAppointmentRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	id, err := h.appointments.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "cita creada correctamente", ID: id})
}

// RecordPayment godoc
// @Summary      Registrar pago
// @Description  Inserta el pago y marca la cita como completed en la misma transacción.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.RecordPaymentRequest  true  "client_id, appointment_id, payment_amount, payment_method"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /payment [post]
func (h *AppointmentHandler) RecordPayment(c *fiber.Ctx) error {
	var in dto.RecordPaymentRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	id, err := h.payments.Record(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "pago registrado correctamente", ID: id})
}
