package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "STORAGE_BACKEND", "PAYMENT_STATUS_BACKEND", "LLM_PROVIDER", "PAYMENT_PROVIDER", "STRIPE_SECRET_KEY", "PAYMENT_GATEWAY_MOCK", "PRICE_FULL_REPORT_CENTS", "PUBLIC_BASE_URL"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected port 8080, got %q", cfg.Port)
	}
	if cfg.Storage.Backend != BackendMemory || cfg.Storage.PaymentStatusBackend != BackendMemory {
		t.Fatalf("expected memory backends, got %+v", cfg.Storage)
	}
	if cfg.LLM.Provider != "anthropic" {
		t.Fatalf("expected anthropic, got %q", cfg.LLM.Provider)
	}
	if cfg.Payments.FullReportPriceCents != 999 || cfg.Payments.EbayUpgradePriceCents != 499 {
		t.Fatalf("unexpected prices: %+v", cfg.Payments)
	}
	if cfg.Payments.CheckoutCredential() != "" {
		t.Fatalf("expected demo mode without credentials")
	}
	if cfg.PublicBaseURL != "http://localhost:3000" {
		t.Fatalf("unexpected base url %q", cfg.PublicBaseURL)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "DynamoDB")
	t.Setenv("PAYMENT_STATUS_BACKEND", "redis")
	t.Setenv("PRICE_FULL_REPORT_CENTS", "1500")
	t.Setenv("PRICE_EBAY_UPGRADE_CENTS", "not-a-number")
	t.Setenv("PUBLIC_BASE_URL", "https://app.example.com/")
	t.Setenv("REDIS_DB", "2")

	cfg := Load()
	if cfg.Storage.Backend != BackendDynamoDB || cfg.Storage.PaymentStatusBackend != BackendRedis {
		t.Fatalf("unexpected backends: %+v", cfg.Storage)
	}
	if cfg.Payments.FullReportPriceCents != 1500 || cfg.Payments.EbayUpgradePriceCents != 499 {
		t.Fatalf("unexpected prices: %+v", cfg.Payments)
	}
	if cfg.PublicBaseURL != "https://app.example.com" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.PublicBaseURL)
	}
	if cfg.Redis.DB != 2 {
		t.Fatalf("expected redis db 2, got %d", cfg.Redis.DB)
	}
}

func TestPaymentsConfig_CheckoutCredential(t *testing.T) {
	cases := []struct {
		name string
		cfg  PaymentsConfig
		want string
	}{
		{name: "stripe", cfg: PaymentsConfig{Provider: "stripe", StripeSecretKey: "sk_test"}, want: "sk_test"},
		{name: "mercadopago", cfg: PaymentsConfig{Provider: "mercadopago", MercadoPagoAccessToken: "TEST-1", StripeSecretKey: "sk_test"}, want: "TEST-1"},
		{name: "forced demo", cfg: PaymentsConfig{Provider: "stripe", StripeSecretKey: "sk_test", ForceDemo: true}, want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cfg.CheckoutCredential(); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
