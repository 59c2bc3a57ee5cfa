package payments

import "github.com/crunchyspot/crunchyspot-api/internal/domain/entity"

// Gateway puerto hacia la pasarela de pagos. amountCents va en unidades
// menores (centavos); idempotencyKey evita intentos duplicados ante reintentos.
type Gateway interface {
	CreateIntent(amountCents int64, currency, idempotencyKey string) (clientSecret string, err error)
}

// Mailer puerto hacia el despachador de correo transaccional.
// El envío del recibo es best-effort: un error se registra y se descarta.
type Mailer interface {
	SendReceipt(to string, payment *entity.Payment) error
}
