package interfaces

import (
	"context"
	"damage_report/internal/domain/entities"
	"net/http"
)

// ICheckoutGateway abstracts hosted checkout providers (Stripe, Mercado Pago).
type ICheckoutGateway interface {
	Provider() string
	CreateCheckoutSession(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutSession, error)
	// ParseCompletion verifies and decodes a provider webhook.
	ParseCompletion(ctx context.Context, payload []byte, headers http.Header) (entities.CheckoutCompletion, error)
}
