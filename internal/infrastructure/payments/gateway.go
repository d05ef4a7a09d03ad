package payments

import (
	"damage_report/internal/config"
	"damage_report/internal/usecase/interfaces"
	"fmt"
)

// NewCheckoutGateway picks the gateway for the configured provider. It
// returns a nil interface when no credential is set, which puts the payment
// gate in demo mode.
func NewCheckoutGateway(cfg config.PaymentsConfig) (interfaces.ICheckoutGateway, error) {
	if cfg.CheckoutCredential() == "" {
		return nil, nil
	}
	switch cfg.Provider {
	case ProviderStripe:
		g, err := NewStripeGateway(cfg.StripeSecretKey, cfg.StripeWebhookSecret)
		if err != nil {
			return nil, err
		}
		return g, nil
	case ProviderMercadoPago:
		g, err := NewMercadoPagoGateway(cfg.MercadoPagoAccessToken)
		if err != nil {
			return nil, err
		}
		return g, nil
	}
	return nil, fmt.Errorf("unsupported payment provider %q", cfg.Provider)
}
