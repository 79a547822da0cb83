package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Salon-api/internal/application/dto"
	"github.com/jhoicas/Salon-api/internal/application/usecase"
)

// ClientHandler maneja las peticiones HTTP de clientes del salón.
type ClientHandler struct {
	uc *usecase.ClientUseCase
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// List godoc
// @Summary      Listar clientes
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.ClientResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /clients [get]
func (h *ClientHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Create godoc
// @Summary      Alta de cliente
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateClientRequest  true  "client_name, phone, birth_date"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /client [post]
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	id, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "cliente creado correctamente", ID: id})
}

// Delete godoc
// @Summary      Baja de cliente
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "client_id"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /client/{id} [delete]
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "VALIDATION", "id inválido")
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "cliente eliminado correctamente"})
}
