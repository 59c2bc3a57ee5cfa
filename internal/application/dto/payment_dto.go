package dto

import "time"

// PaymentIntentRequest monto a cobrar (unidades mayores: 10.99 = $10.99).
type PaymentIntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

// PaymentIntentResponse secreto de cliente de la pasarela para confirmar el pago.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// RecordPaymentRequest registro de un pago ya confirmado por la pasarela.
type RecordPaymentRequest struct {
	Email         string   `json:"email" validate:"required,email"`
	Price         float64  `json:"price" validate:"required,gt=0"`
	TransactionID string   `json:"transactionId" validate:"required"`
	CartIDs       []string `json:"cartIds"`
	MenuItemIDs   []string `json:"menuItemIds"`
}

// RecordPaymentResponse resultado del registro: pago insertado y carritos purgados.
type RecordPaymentResponse struct {
	PaymentID    string `json:"paymentId"`
	DeletedCarts int64  `json:"deletedCarts"`
}

// PaymentResponse un pago registrado.
type PaymentResponse struct {
	ID            string    `json:"_id"`
	Email         string    `json:"email"`
	Price         float64   `json:"price"`
	TransactionID string    `json:"transactionId"`
	CartIDs       []string  `json:"cartIds"`
	MenuItemIDs   []string  `json:"menuItemIds"`
	Status        string    `json:"status"`
	Date          time.Time `json:"date"`
}

// AdminStatsResponse métricas globales del panel admin.
type AdminStatsResponse struct {
	Users     int64   `json:"users"`
	MenuItems int64   `json:"menuItems"`
	Orders    int64   `json:"orders"`
	Revenue   float64 `json:"revenue"`
}

// CategoryStatResponse ventas agrupadas por categoría del menú.
type CategoryStatResponse struct {
	Category string  `json:"category"`
	Quantity int64   `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}
