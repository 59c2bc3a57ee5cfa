package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/crunchyspot/crunchyspot-api/internal/application/dto"
	"github.com/crunchyspot/crunchyspot-api/internal/application/payments"
	"github.com/crunchyspot/crunchyspot-api/internal/domain"
)

// PaymentHandler intents de pago, registro de pagos y reportes admin.
type PaymentHandler struct {
	uc *payments.PaymentUseCase
}

// NewPaymentHandler construye el handler de pagos.
func NewPaymentHandler(uc *payments.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// CreateIntent godoc
// @Summary      Crear un payment intent en la pasarela
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PaymentIntentRequest  true  "monto (unidades mayores)"
// @Success      200   {object}  dto.PaymentIntentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /create-payment-intent [post]
func (h *PaymentHandler) CreateIntent(c *fiber.Ctx) error {
	var in dto.PaymentIntentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateIntent(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "price (> 0) es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// Record godoc
// @Summary      Registrar un pago confirmado (purga carritos y envía recibo)
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordPaymentRequest  true  "pago confirmado"
// @Success      201   {object}  dto.RecordPaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /payments [post]
func (h *PaymentHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Record(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email, price y transactionId son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByEmail godoc
// @Summary      Listar los pagos del Principal
// @Tags         payments
// @Produce      json
// @Param        email  path  string  true  "email (debe ser el propio)"
// @Success      200  {array}   dto.PaymentResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /payments/{email} [get]
func (h *PaymentHandler) ListByEmail(c *fiber.Ctx) error {
	email := c.Params("email")
	if !isSelf(c, email) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo puedes consultar tus propios pagos"})
	}
	out, err := h.uc.ListByEmail(email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// AdminStats godoc
// @Summary      Métricas globales del panel admin
// @Tags         stats
// @Produce      json
// @Success      200  {object}  dto.AdminStatsResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /admin-stats [get]
func (h *PaymentHandler) AdminStats(c *fiber.Ctx) error {
	out, err := h.uc.AdminStats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// OrderStats godoc
// @Summary      Ventas agrupadas por categoría del menú
// @Tags         stats
// @Produce      json
// @Success      200  {array}   dto.CategoryStatResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /order-stats [get]
func (h *PaymentHandler) OrderStats(c *fiber.Ctx) error {
	out, err := h.uc.OrderStats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}
