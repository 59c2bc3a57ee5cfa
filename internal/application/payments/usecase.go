package payments

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/crunchyspot/crunchyspot-api/internal/application/dto"
	"github.com/crunchyspot/crunchyspot-api/internal/domain"
	"github.com/crunchyspot/crunchyspot-api/internal/domain/entity"
	"github.com/crunchyspot/crunchyspot-api/internal/domain/repository"
	"github.com/crunchyspot/crunchyspot-api/pkg/logger"
)

// PaymentUseCase intents de pago, registro de pagos confirmados y reportes.
type PaymentUseCase struct {
	paymentRepo repository.PaymentRepository
	cartRepo    repository.CartRepository
	userRepo    repository.UserRepository
	menuRepo    repository.MenuRepository
	gateway     Gateway
	mailer      Mailer
	currency    string
	log         *logger.Logger
	validate    *validator.Validate
}

// NewPaymentUseCase construye el caso de uso de pagos.
func NewPaymentUseCase(
	paymentRepo repository.PaymentRepository,
	cartRepo repository.CartRepository,
	userRepo repository.UserRepository,
	menuRepo repository.MenuRepository,
	gateway Gateway,
	mailer Mailer,
	currency string,
	log *logger.Logger,
) *PaymentUseCase {
	return &PaymentUseCase{
		paymentRepo: paymentRepo,
		cartRepo:    cartRepo,
		userRepo:    userRepo,
		menuRepo:    menuRepo,
		gateway:     gateway,
		mailer:      mailer,
		currency:    currency,
		log:         log,
		validate:    validator.New(),
	}
}

// CreateIntent crea un intent en la pasarela por el monto indicado y devuelve
// el client secret. La conversión a centavos usa decimal para no arrastrar
// errores de redondeo binario (10.99 → 1099, nunca 1098).
func (uc *PaymentUseCase) CreateIntent(in dto.PaymentIntentRequest) (*dto.PaymentIntentResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	cents := decimal.NewFromFloat(in.Price).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	secret, err := uc.gateway.CreateIntent(cents, uc.currency, uuid.NewString())
	if err != nil {
		return nil, fmt.Errorf("crear payment intent: %w", err)
	}
	return &dto.PaymentIntentResponse{ClientSecret: secret}, nil
}

// Record registra un pago confirmado, purga los carritos referenciados y
// despacha el recibo por correo. El pago y la purga son secuenciales sin
// transacción multi-documento: un corte entre ambos deja carritos huérfanos
// reconciliables (no fatal). El recibo se envía en una goroutine aparte y su
// resultado nunca afecta la respuesta del pago.
func (uc *PaymentUseCase) Record(in dto.RecordPaymentRequest) (*dto.RecordPaymentResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	payment := &entity.Payment{
		Email:         in.Email,
		Price:         in.Price,
		TransactionID: in.TransactionID,
		CartIDs:       in.CartIDs,
		MenuItemIDs:   in.MenuItemIDs,
		Status:        "paid",
		Date:          time.Now(),
	}
	id, err := uc.paymentRepo.Insert(payment)
	if err != nil {
		return nil, err
	}
	deleted, err := uc.cartRepo.DeleteByIDs(in.CartIDs)
	if err != nil {
		// El pago ya quedó registrado; la purga fallida se reporta pero no lo revierte.
		uc.log.Error().Err(err).Str("payment_id", id).Msg("purga de carritos fallida tras el pago")
	}

	uc.dispatchReceipt(id, payment)

	return &dto.RecordPaymentResponse{PaymentID: id, DeletedCarts: deleted}, nil
}

// dispatchReceipt envía el recibo desacoplado del ciclo request/response.
func (uc *PaymentUseCase) dispatchReceipt(paymentID string, payment *entity.Payment) {
	p := *payment
	go func() {
		if err := uc.mailer.SendReceipt(p.Email, &p); err != nil {
			uc.log.Error().Err(err).
				Str("payment_id", paymentID).
				Str("email", p.Email).
				Msg("envío de recibo fallido")
			return
		}
		uc.log.Info().Str("payment_id", paymentID).Str("email", p.Email).Msg("recibo enviado")
	}()
}

// ListByEmail devuelve los pagos de un usuario.
func (uc *PaymentUseCase) ListByEmail(email string) ([]dto.PaymentResponse, error) {
	list, err := uc.paymentRepo.ListByEmail(email)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.PaymentResponse{
			ID:            p.ID.Hex(),
			Email:         p.Email,
			Price:         p.Price,
			TransactionID: p.TransactionID,
			CartIDs:       p.CartIDs,
			MenuItemIDs:   p.MenuItemIDs,
			Status:        p.Status,
			Date:          p.Date,
		})
	}
	return out, nil
}

// AdminStats métricas globales: usuarios, platos, órdenes y revenue total.
func (uc *PaymentUseCase) AdminStats() (*dto.AdminStatsResponse, error) {
	users, err := uc.userRepo.Count()
	if err != nil {
		return nil, err
	}
	menuItems, err := uc.menuRepo.Count()
	if err != nil {
		return nil, err
	}
	orders, err := uc.paymentRepo.Count()
	if err != nil {
		return nil, err
	}
	revenue, err := uc.paymentRepo.Revenue()
	if err != nil {
		return nil, err
	}
	// Redondeo a 2 decimales con decimal: el agregado suma float64 del store.
	revenue, _ = decimal.NewFromFloat(revenue).Round(2).Float64()
	return &dto.AdminStatsResponse{
		Users:     users,
		MenuItems: menuItems,
		Orders:    orders,
		Revenue:   revenue,
	}, nil
}

// OrderStats ventas agrupadas por categoría del menú.
func (uc *PaymentUseCase) OrderStats() ([]dto.CategoryStatResponse, error) {
	stats, err := uc.paymentRepo.OrdersByCategory()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryStatResponse, 0, len(stats))
	for _, s := range stats {
		revenue, _ := decimal.NewFromFloat(s.Revenue).Round(2).Float64()
		out = append(out, dto.CategoryStatResponse{
			Category: s.Category,
			Quantity: s.Quantity,
			Revenue:  revenue,
		})
	}
	return out, nil
}
