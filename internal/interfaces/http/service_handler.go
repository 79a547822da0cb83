package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Salon-api/internal/application/dto"
	"github.com/jhoicas/Salon-api/internal/application/usecase"
)

// ServiceHandler maneja las peticiones HTTP de del catálogo de servicios.
type ServiceHandler struct {
	uc *usecase.ServiceUseCase
}

// NewServiceHandler construye el handler.
func NewServiceHandler(uc *usecase.ServiceUseCase) *ServiceHandler {
	return &ServiceHandler{uc: uc}
}

// List godoc
// @Summary      Listar servicios
// @Tags         services
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.ServiceResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /services [get]
func (h *ServiceHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Create godoc
// @Summary      Alta de servicio
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateServiceRequest  true  "service_name, description, price, duration"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /service [post]
func (h *ServiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateServiceRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	id, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "servicio creado correctamente", ID: id})
}

// Delete godoc
// @Summary      Baja de servicio
// @Tags         services
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "service_id"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /service/{id} [delete]
func (h *ServiceHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "VALIDATION", "id inválido")
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "servicio eliminado correctamente"})
}
