package payments

import (
	"context"
	"damage_report/internal/domain/entities"
	"damage_report/internal/usecase/interfaces"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
	"github.com/stripe/stripe-go/v81/webhook"
	"go.uber.org/zap"
)

const ProviderStripe = "stripe"

const (
	metadataAssessmentID = "assessmentId"
	metadataProduct      = "product"
)

var (
	ErrMissingStripeSecretKey     = errors.New("missing STRIPE_SECRET_KEY")
	ErrMissingStripeWebhookSecret = errors.New("missing STRIPE_WEBHOOK_SECRET")
)

// checkoutSessions is the part of the Stripe checkout session client used here.
type checkoutSessions interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// StripeGateway creates hosted Stripe Checkout sessions and verifies the
// checkout.session.completed webhook.
type StripeGateway struct {
	sessions      checkoutSessions
	webhookSecret string
}

var _ interfaces.ICheckoutGateway = (*StripeGateway)(nil)

func NewStripeGateway(secretKey, webhookSecret string) (*StripeGateway, error) {
	if secretKey == "" {
		return nil, ErrMissingStripeSecretKey
	}
	sc := client.New(secretKey, nil)
	zap.L().Info("[payment][gateway] Stripe client initialized")
	return &StripeGateway{sessions: sc.CheckoutSessions, webhookSecret: webhookSecret}, nil
}

func (g *StripeGateway) Provider() string {
	return ProviderStripe
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(req.Currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(req.Title),
				},
				UnitAmount: stripe.Int64(req.AmountCents),
			},
			Quantity: stripe.Int64(1),
		}},
		SuccessURL:        stripe.String(req.SuccessURL),
		CancelURL:         stripe.String(req.CancelURL),
		ClientReferenceID: stripe.String(req.AssessmentID),
	}
	params.Context = ctx
	params.AddMetadata(metadataAssessmentID, req.AssessmentID)
	params.AddMetadata(metadataProduct, string(req.Product))

	s, err := g.sessions.New(params)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	return entities.CheckoutSession{ID: s.ID, URL: s.URL}, nil
}

// ParseCompletion verifies the Stripe-Signature header (5 minute tolerance)
// and extracts the checkout metadata of paid sessions.
func (g *StripeGateway) ParseCompletion(_ context.Context, payload []byte, headers http.Header) (entities.CheckoutCompletion, error) {
	if g.webhookSecret == "" {
		return entities.CheckoutCompletion{}, ErrMissingStripeWebhookSecret
	}
	event, err := webhook.ConstructEventWithOptions(payload, headers.Get("Stripe-Signature"), g.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return entities.CheckoutCompletion{}, err
	}

	switch event.Type {
	case stripe.EventTypeCheckoutSessionCompleted, stripe.EventTypeCheckoutSessionAsyncPaymentSucceeded:
	default:
		return entities.CheckoutCompletion{Ignored: true}, nil
	}

	var s stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &s); err != nil {
		return entities.CheckoutCompletion{}, fmt.Errorf("decode checkout session: %w", err)
	}
	if s.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
		zap.L().Info("[payment][gateway] session not paid yet",
			zap.String("session_id", s.ID),
			zap.String("payment_status", string(s.PaymentStatus)))
		return entities.CheckoutCompletion{Ignored: true}, nil
	}

	return entities.CheckoutCompletion{
		AssessmentID: s.Metadata[metadataAssessmentID],
		Product:      entities.Product(s.Metadata[metadataProduct]),
	}, nil
}
