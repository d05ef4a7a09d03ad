package payments

import (
	"context"
	"damage_report/internal/domain/entities"
	"damage_report/internal/usecase/interfaces"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"go.uber.org/zap"
)

const ProviderMercadoPago = "mercadopago"

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

// preferenceCreator and paymentFetcher are the SDK calls used by the gateway.
type preferenceCreator interface {
	Create(ctx context.Context, request preference.Request) (*preference.Response, error)
}

type paymentFetcher interface {
	Get(ctx context.Context, id int) (*payment.Response, error)
}

// MercadoPagoGateway sells products through Checkout Pro preferences.
//
// The (assessmentId, product) pair travels as the external reference
// "<assessmentId>|<product>". Webhooks only carry a payment id, so the payment
// is fetched back from the API before anything is unlocked.
type MercadoPagoGateway struct {
	preferences preferenceCreator
	payments    paymentFetcher
}

var _ interfaces.ICheckoutGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if accessToken == "" {
		zap.L().Warn("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		zap.L().Error("[payment][gateway] failed creating sdk config", zap.Error(err))
		return nil, err
	}
	zap.L().Info("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		preferences: preference.NewClient(cfg),
		payments:    payment.NewClient(cfg),
	}, nil
}

func (g *MercadoPagoGateway) Provider() string {
	return ProviderMercadoPago
}

func (g *MercadoPagoGateway) CreateCheckoutSession(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutSession, error) {
	resp, err := g.preferences.Create(ctx, preference.Request{
		Items: []preference.ItemRequest{{
			ID:         string(req.Product),
			Title:      req.Title,
			Quantity:   1,
			UnitPrice:  float64(req.AmountCents) / 100,
			CurrencyID: strings.ToUpper(req.Currency),
		}},
		BackURLs: &preference.BackURLsRequest{
			Success: req.SuccessURL,
			Pending: req.CancelURL,
			Failure: req.CancelURL,
		},
		AutoReturn:        "approved",
		ExternalReference: externalReference(req.AssessmentID, req.Product),
		Metadata: map[string]any{
			"assessment_id": req.AssessmentID,
			"product":       string(req.Product),
		},
	})
	if err != nil {
		zap.L().Error("[payment][gateway] preference create failed", zap.Error(err))
		return entities.CheckoutSession{}, err
	}
	zap.L().Info("[payment][gateway] preference created", zap.String("preference_id", resp.ID))
	return entities.CheckoutSession{ID: resp.ID, URL: resp.InitPoint}, nil
}

type mercadoPagoNotification struct {
	Type   string `json:"type"`
	Action string `json:"action"`
	Data   struct {
		ID json.RawMessage `json:"id"`
	} `json:"data"`
}

func (g *MercadoPagoGateway) ParseCompletion(ctx context.Context, payload []byte, _ http.Header) (entities.CheckoutCompletion, error) {
	var n mercadoPagoNotification
	if err := json.Unmarshal(payload, &n); err != nil {
		return entities.CheckoutCompletion{}, fmt.Errorf("decode notification: %w", err)
	}
	if n.Type != "payment" {
		return entities.CheckoutCompletion{Ignored: true}, nil
	}

	id, err := strconv.Atoi(strings.Trim(string(n.Data.ID), `"`))
	if err != nil {
		return entities.CheckoutCompletion{}, fmt.Errorf("invalid payment id %s", n.Data.ID)
	}

	p, err := g.payments.Get(ctx, id)
	if err != nil {
		return entities.CheckoutCompletion{}, fmt.Errorf("fetch payment %d: %w", id, err)
	}
	if p.Status != "approved" {
		zap.L().Info("[payment][gateway] payment not approved",
			zap.Int("payment_id", id),
			zap.String("status", p.Status))
		return entities.CheckoutCompletion{Ignored: true}, nil
	}

	assessmentID, product, ok := parseExternalReference(p.ExternalReference)
	if !ok {
		return entities.CheckoutCompletion{}, fmt.Errorf("payment %d has no checkout reference", id)
	}
	return entities.CheckoutCompletion{AssessmentID: assessmentID, Product: product}, nil
}

func externalReference(assessmentID string, product entities.Product) string {
	return assessmentID + "|" + string(product)
}

func parseExternalReference(ref string) (string, entities.Product, bool) {
	i := strings.LastIndex(ref, "|")
	if i <= 0 || i == len(ref)-1 {
		return "", "", false
	}
	return ref[:i], entities.Product(ref[i+1:]), true
}
