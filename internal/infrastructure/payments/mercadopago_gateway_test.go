package payments

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"damage_report/internal/config"
	"damage_report/internal/domain/entities"

	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePreferences struct {
	got preference.Request
}

func (f *fakePreferences) Create(_ context.Context, req preference.Request) (*preference.Response, error) {
	f.got = req
	return &preference.Response{ID: "pref-1", InitPoint: "https://www.mercadopago.com/checkout/pref-1"}, nil
}

type fakePayments map[int]*payment.Response

func (f fakePayments) Get(_ context.Context, id int) (*payment.Response, error) {
	p, ok := f[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return p, nil
}

func TestNewMercadoPagoGateway_RequiresToken(t *testing.T) {
	_, err := NewMercadoPagoGateway("")
	if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}
}

func TestMercadoPagoGateway_CreateCheckoutSession(t *testing.T) {
	prefs := &fakePreferences{}
	g := &MercadoPagoGateway{preferences: prefs, payments: fakePayments{}}

	s, err := g.CreateCheckoutSession(context.Background(), entities.CheckoutRequest{
		AssessmentID: "a-1",
		Product:      entities.ProductEbayUpgrade,
		Title:        "eBay Parts Search Upgrade",
		AmountCents:  499,
		Currency:     "brl",
		SuccessURL:   "https://app.example.com/payment/success",
		CancelURL:    "https://app.example.com/report/a-1",
	})
	require.NoError(t, err)
	assert.Equal(t, entities.CheckoutSession{ID: "pref-1", URL: "https://www.mercadopago.com/checkout/pref-1"}, s)

	require.Len(t, prefs.got.Items, 1)
	assert.Equal(t, 4.99, prefs.got.Items[0].UnitPrice)
	assert.Equal(t, "BRL", prefs.got.Items[0].CurrencyID)
	assert.Equal(t, "a-1|ebay_upgrade", prefs.got.ExternalReference)
	assert.Equal(t, "approved", prefs.got.AutoReturn)
	assert.Equal(t, "https://app.example.com/payment/success", prefs.got.BackURLs.Success)
}

func TestMercadoPagoGateway_ParseCompletion(t *testing.T) {
	g := &MercadoPagoGateway{
		preferences: &fakePreferences{},
		payments: fakePayments{
			10: {ID: 10, Status: "approved", ExternalReference: "a-1|full_report"},
			11: {ID: 11, Status: "pending", ExternalReference: "a-1|full_report"},
			12: {ID: 12, Status: "approved"},
		},
	}

	cases := []struct {
		name    string
		body    string
		want    entities.CheckoutCompletion
		wantErr bool
	}{
		{name: "approved string id", body: `{"type":"payment","data":{"id":"10"}}`, want: entities.CheckoutCompletion{AssessmentID: "a-1", Product: entities.ProductFullReport}},
		{name: "approved numeric id", body: `{"type":"payment","data":{"id":10}}`, want: entities.CheckoutCompletion{AssessmentID: "a-1", Product: entities.ProductFullReport}},
		{name: "pending", body: `{"type":"payment","data":{"id":"11"}}`, want: entities.CheckoutCompletion{Ignored: true}},
		{name: "merchant order", body: `{"type":"merchant_order","data":{"id":"99"}}`, want: entities.CheckoutCompletion{Ignored: true}},
		{name: "missing reference", body: `{"type":"payment","data":{"id":"12"}}`, wantErr: true},
		{name: "unknown payment", body: `{"type":"payment","data":{"id":"13"}}`, wantErr: true},
		{name: "bad id", body: `{"type":"payment","data":{"id":"abc"}}`, wantErr: true},
		{name: "not json", body: `type=payment`, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := g.ParseCompletion(context.Background(), []byte(tc.body), http.Header{})
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseExternalReference(t *testing.T) {
	id, product, ok := parseExternalReference("a|b|ebay_upgrade")
	assert.True(t, ok)
	assert.Equal(t, "a|b", id)
	assert.Equal(t, entities.ProductEbayUpgrade, product)

	for _, ref := range []string{"", "a-1", "|full_report", "a-1|"} {
		_, _, ok := parseExternalReference(ref)
		assert.False(t, ok, ref)
	}
}

func TestNewCheckoutGateway(t *testing.T) {
	g, err := NewCheckoutGateway(config.PaymentsConfig{Provider: "stripe"})
	require.NoError(t, err)
	assert.Nil(t, g)

	g, err = NewCheckoutGateway(config.PaymentsConfig{Provider: "stripe", StripeSecretKey: "sk_test", ForceDemo: true})
	require.NoError(t, err)
	assert.Nil(t, g)

	g, err = NewCheckoutGateway(config.PaymentsConfig{Provider: "stripe", StripeSecretKey: "sk_test"})
	require.NoError(t, err)
	assert.Equal(t, ProviderStripe, g.Provider())

	_, err = NewCheckoutGateway(config.PaymentsConfig{Provider: "paypal", StripeSecretKey: "sk_test"})
	assert.Error(t, err)
}
