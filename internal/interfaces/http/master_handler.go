package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Salon-api/internal/application/dto"
	"github.com/jhoicas/Salon-api/internal/application/usecase"
)

// MasterHandler maneja las peticiones HTTP de maestros (manicuristas).
type MasterHandler struct {
	uc *usecase.MasterUseCase
}

// NewMasterHandler construye el handler.
func NewMasterHandler(uc *usecase.MasterUseCase) *MasterHandler {
	return &MasterHandler{uc: uc}
}

// List godoc
// @Summary      Listar maestros
// @Tags         masters
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.MasterResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /masters [get]
func (h *MasterHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Create godoc
// @Summary      Alta de maestro
// @Tags         masters
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateMasterRequest  true  "master_name, phone, email"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /master [post]
func (h *MasterHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMasterRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	id, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "maestro creado correctamente", ID: id})
}

// Delete godoc
// @Summary      Baja de maestro
// @Tags         masters
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "master_id"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /master/{id} [delete]
func (h *MasterHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "VALIDATION", "id inválido")
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "maestro eliminado correctamente"})
}
