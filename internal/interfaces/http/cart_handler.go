package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/crunchyspot/crunchyspot-api/internal/application/dto"
	"github.com/crunchyspot/crunchyspot-api/internal/application/usecase"
	"github.com/crunchyspot/crunchyspot-api/internal/domain"
)

// CartHandler carrito de compras.
type CartHandler struct {
	uc *usecase.CartUseCase
}

// NewCartHandler construye el handler del carrito.
func NewCartHandler(uc *usecase.CartUseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// List godoc
// @Summary      Listar el carrito de un email
// @Tags         carts
// @Produce      json
// @Param        email  query  string  true  "dueño del carrito"
// @Success      200  {array}  dto.CartItemResponse
// @Router       /carts [get]
func (h *CartHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListByEmail(c.Query("email"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// Add godoc
// @Summary      Agregar un plato al carrito
// @Tags         carts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddCartItemRequest  true  "renglón del carrito"
// @Success      201   {object}  dto.InsertResult
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /carts [post]
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var in dto.AddCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Add(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "menuItemId y email son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Remove godoc
// @Summary      Eliminar un renglón del carrito
// @Tags         carts
// @Produce      json
// @Param        id   path  string  true  "ObjectID del renglón"
// @Success      200  {object}  dto.DeleteResult
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /carts/{id} [delete]
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	out, err := h.uc.Remove(c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "renglón no encontrado"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
		}
	}
	return c.JSON(out)
}
