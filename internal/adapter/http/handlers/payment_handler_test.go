package handlers

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"damage_report/internal/adapter/http/handlers/mocks"
	"damage_report/internal/domain/entities"
	"damage_report/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newPaymentRouter(h *PaymentHandler) *gin.Engine {
	r := gin.New()
	r.POST("/payment/create-checkout", h.CreateCheckout)
	r.GET("/payment/status/:id", h.GetStatus)
	r.POST("/payment/status/:id", h.UpdateStatus)
	r.POST("/payment/webhook/:provider", h.Webhook)
	r.GET("/payment/success", h.Success)
	return r
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestPaymentHandler_CreateCheckout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewPaymentHandler(mocks.NewMockIPaymentUseCase(ctrl), "http://app")

		w := httptest.NewRecorder()
		newPaymentRouter(h).ServeHTTP(w, jsonRequest(http.MethodPost, "/payment/create-checkout", `{"assessmentId":"a-1"}`))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc, "http://app")

		uc.EXPECT().CreateCheckout(gomock.Any(), "a-1", entities.Product("gold")).Return(entities.CheckoutResult{}, usecase.ErrInvalidProduct)

		w := httptest.NewRecorder()
		newPaymentRouter(h).ServeHTTP(w, jsonRequest(http.MethodPost, "/payment/create-checkout", `{"assessmentId":"a-1","product":"gold"}`))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("demo mode", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc, "http://app")

		uc.EXPECT().CreateCheckout(gomock.Any(), "a-1", entities.ProductEbayUpgrade).Return(entities.CheckoutResult{Success: true}, nil)

		w := httptest.NewRecorder()
		newPaymentRouter(h).ServeHTTP(w, jsonRequest(http.MethodPost, "/payment/create-checkout", `{"assessmentId":"a-1","product":"ebay_upgrade"}`))
		if w.Code != http.StatusOK || w.Body.String() != `{"success":true}` {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("hosted checkout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc, "http://app")

		uc.EXPECT().CreateCheckout(gomock.Any(), "a-1", entities.ProductFullReport).Return(entities.CheckoutResult{URL: "https://checkout.stripe.com/c/cs_1"}, nil)

		w := httptest.NewRecorder()
		newPaymentRouter(h).ServeHTTP(w, jsonRequest(http.MethodPost, "/payment/create-checkout", `{"assessmentId":"a-1","product":"full_report"}`))
		if w.Body.String() != `{"url":"https://checkout.stripe.com/c/cs_1"}` {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("processor failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc, "http://app")

		uc.EXPECT().CreateCheckout(gomock.Any(), "a-1", entities.ProductFullReport).Return(entities.CheckoutResult{}, fmt.Errorf("%w: card_declined", usecase.ErrCheckoutUpstream))

		w := httptest.NewRecorder()
		newPaymentRouter(h).ServeHTTP(w, jsonRequest(http.MethodPost, "/payment/create-checkout", `{"assessmentId":"a-1","product":"full_report"}`))
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_Status(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc, "http://app")

		uc.EXPECT().GetStatus(gomock.Any(), "a-1").Return(entities.PaymentStatus{AssessmentID: "a-1"}, nil)

		w := httptest.NewRecorder()
		newPaymentRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payment/status/a-1", nil))
		want := `{"assessmentId":"a-1","hasPaidForFullReport":false,"hasPaidForEbayUpgrade":false}`
		if w.Code != http.StatusOK || w.Body.String() != want {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("post by product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc, "http://app")

		uc.EXPECT().MarkPaid(gomock.Any(), "a-1", entities.ProductFullReport).Return(entities.PaymentStatus{AssessmentID: "a-1", HasPaidForFullReport: true}, nil)

		w := httptest.NewRecorder()
		newPaymentRouter(h).ServeHTTP(w, jsonRequest(http.MethodPost, "/payment/status/a-1", `{"product":"full_report"}`))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("post by flags", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc, "http://app")

		uc.EXPECT().ApplyPatch(gomock.Any(), "a-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, p entities.PaymentStatusPatch) (entities.PaymentStatus, error) {
				if p.HasPaidForEbayUpgrade == nil || !*p.HasPaidForEbayUpgrade || p.HasPaidForFullReport != nil {
					return entities.PaymentStatus{}, usecase.ErrInvalidProduct
				}
				return entities.PaymentStatus{AssessmentID: "a-1", HasPaidForEbayUpgrade: true}, nil
			},
		)

		w := httptest.NewRecorder()
		newPaymentRouter(h).ServeHTTP(w, jsonRequest(http.MethodPost, "/payment/status/a-1", `{"hasPaidForEbayUpgrade":true}`))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("post bad product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc, "http://app")

		uc.EXPECT().MarkPaid(gomock.Any(), "a-1", entities.Product("vip")).Return(entities.PaymentStatus{}, usecase.ErrInvalidProduct)

		w := httptest.NewRecorder()
		newPaymentRouter(h).ServeHTTP(w, jsonRequest(http.MethodPost, "/payment/status/a-1", `{"product":"vip"}`))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_Webhook(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc, "http://app")

		uc.EXPECT().HandleWebhook(gomock.Any(), "stripe", []byte(`{"id":"evt_1"}`), gomock.Any()).
			Return(entities.CheckoutCompletion{AssessmentID: "a-1", Product: entities.ProductFullReport}, nil)

		req := jsonRequest(http.MethodPost, "/payment/webhook/stripe", `{"id":"evt_1"}`)
		req.Header.Set("Stripe-Signature", "t=1,v1=abc")
		w := httptest.NewRecorder()
		newPaymentRouter(h).ServeHTTP(w, req)
		if w.Code != http.StatusOK || w.Body.String() != `{"received":true,"ignored":false}` {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc, "http://app")

		uc.EXPECT().HandleWebhook(gomock.Any(), "paypal", gomock.Any(), gomock.Any()).Return(entities.CheckoutCompletion{}, usecase.ErrUnknownPaymentProvider)

		w := httptest.NewRecorder()
		newPaymentRouter(h).ServeHTTP(w, jsonRequest(http.MethodPost, "/payment/webhook/paypal", `{}`))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	h := NewPaymentHandler(uc, "https://app.example.com")

	uc.EXPECT().MarkPaid(gomock.Any(), "a-1", entities.ProductEbayUpgrade).Return(entities.PaymentStatus{AssessmentID: "a-1", HasPaidForEbayUpgrade: true}, nil)
	uc.EXPECT().MarkPaid(gomock.Any(), "", entities.ProductEbayUpgrade).Return(entities.PaymentStatus{}, usecase.ErrInvalidPaymentAssessmentID)

	w := httptest.NewRecorder()
	newPaymentRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payment/success?assessmentId=a-1&product=ebay_upgrade", nil))
	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "https://app.example.com/report/a-1" {
		t.Fatalf("unexpected redirect %q", loc)
	}

	w = httptest.NewRecorder()
	newPaymentRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payment/success?product=ebay_upgrade", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
