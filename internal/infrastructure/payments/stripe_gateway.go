package payments

import (
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	apppayments "github.com/crunchyspot/crunchyspot-api/internal/application/payments"
)

// Verificar en tiempo de compilación que StripeGateway implementa Gateway.
var _ apppayments.Gateway = (*StripeGateway)(nil)

// StripeGateway adaptador de la pasarela de pagos sobre el SDK de Stripe.
// El client.API es propio de la instancia: nada de estado global del SDK.
type StripeGateway struct {
	api *client.API
}

// NewStripeGateway construye el adaptador con la clave secreta de la cuenta.
// Si secretKey está vacío las llamadas devuelven error descriptivo en lugar de panic.
func NewStripeGateway(secretKey string) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{api: api}
}

// CreateIntent crea un PaymentIntent por el monto en centavos y devuelve el
// client secret con el que el frontend confirma el pago.
func (g *StripeGateway) CreateIntent(amountCents int64, currency, idempotencyKey string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountCents),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.SetIdempotencyKey(idempotencyKey)

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}
