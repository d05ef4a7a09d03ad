package usecase

import (
	"context"
	"damage_report/internal/domain/entities"
	"damage_report/internal/usecase/interfaces"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

var (
	ErrInvalidPaymentAssessmentID = errors.New("invalid assessmentId")
	ErrInvalidProduct             = errors.New("invalid product")
	ErrPaymentRequired            = errors.New("payment required")
	ErrCheckoutUpstream           = errors.New("payment processor error")
	ErrUnknownPaymentProvider     = errors.New("unknown payment provider")
	ErrInvalidWebhook             = errors.New("invalid webhook")
)

// IPaymentUseCase is the payment gate of an assessment.
//
//   - GET /payment/status/{id}          => GetStatus()
//   - POST /payment/status/{id}         => ApplyPatch()
//   - POST /payment/create-checkout     => CreateCheckout()
//   - POST /payment/webhook/{provider}  => HandleWebhook()
//   - GET /payment/success              => MarkPaid()
type IPaymentUseCase interface {
	GetStatus(ctx context.Context, assessmentID string) (entities.PaymentStatus, error)
	MarkPaid(ctx context.Context, assessmentID string, product entities.Product) (entities.PaymentStatus, error)
	ApplyPatch(ctx context.Context, assessmentID string, patch entities.PaymentStatusPatch) (entities.PaymentStatus, error)
	CreateCheckout(ctx context.Context, assessmentID string, product entities.Product) (entities.CheckoutResult, error)
	HandleWebhook(ctx context.Context, provider string, payload []byte, headers http.Header) (entities.CheckoutCompletion, error)
	RequirePaid(ctx context.Context, assessmentID string, product entities.Product) error
}

// PaymentSettings holds the fixed prices and redirect base of the gate.
type PaymentSettings struct {
	Currency         string
	FullReportCents  int64
	EbayUpgradeCents int64
	PublicBaseURL    string
}

type PaymentUseCase struct {
	repo     interfaces.IPaymentStatusRepository
	gateway  interfaces.ICheckoutGateway
	settings PaymentSettings
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

// NewPaymentUseCase builds the gate. A nil gateway means demo mode: checkout
// unlocks the product immediately.
func NewPaymentUseCase(repo interfaces.IPaymentStatusRepository, gateway interfaces.ICheckoutGateway, settings PaymentSettings) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, gateway: gateway, settings: settings}
}

func (u *PaymentUseCase) DemoMode() bool {
	return u.gateway == nil
}

func (u *PaymentUseCase) GetStatus(ctx context.Context, assessmentID string) (entities.PaymentStatus, error) {
	assessmentID = strings.TrimSpace(assessmentID)
	if assessmentID == "" {
		return entities.PaymentStatus{}, ErrInvalidPaymentAssessmentID
	}
	s, err := u.repo.Get(ctx, assessmentID)
	if err != nil {
		return entities.PaymentStatus{}, err
	}
	s.AssessmentID = assessmentID
	return s, nil
}

func (u *PaymentUseCase) MarkPaid(ctx context.Context, assessmentID string, product entities.Product) (entities.PaymentStatus, error) {
	if !product.IsValid() {
		return entities.PaymentStatus{}, ErrInvalidProduct
	}
	return u.ApplyPatch(ctx, assessmentID, entities.PatchForProduct(product))
}

// ApplyPatch unlocks the flags set to true in patch. False values are ignored
// since a paid flag never goes back.
func (u *PaymentUseCase) ApplyPatch(ctx context.Context, assessmentID string, patch entities.PaymentStatusPatch) (entities.PaymentStatus, error) {
	assessmentID = strings.TrimSpace(assessmentID)
	if assessmentID == "" {
		return entities.PaymentStatus{}, ErrInvalidPaymentAssessmentID
	}
	if patch.HasPaidForFullReport != nil && !*patch.HasPaidForFullReport {
		patch.HasPaidForFullReport = nil
	}
	if patch.HasPaidForEbayUpgrade != nil && !*patch.HasPaidForEbayUpgrade {
		patch.HasPaidForEbayUpgrade = nil
	}
	if patch.IsEmpty() {
		return entities.PaymentStatus{}, ErrInvalidProduct
	}

	s, err := u.repo.Merge(ctx, assessmentID, patch)
	if err != nil {
		return entities.PaymentStatus{}, err
	}
	s.AssessmentID = assessmentID
	zap.L().Info("[payment][usecase] flags updated",
		zap.String("assessment_id", assessmentID),
		zap.Bool("full_report", s.HasPaidForFullReport),
		zap.Bool("ebay_upgrade", s.HasPaidForEbayUpgrade))
	return s, nil
}

func (u *PaymentUseCase) CreateCheckout(ctx context.Context, assessmentID string, product entities.Product) (entities.CheckoutResult, error) {
	assessmentID = strings.TrimSpace(assessmentID)
	if assessmentID == "" {
		return entities.CheckoutResult{}, ErrInvalidPaymentAssessmentID
	}
	if !product.IsValid() {
		return entities.CheckoutResult{}, ErrInvalidProduct
	}

	if u.DemoMode() {
		zap.L().Info("[payment][usecase] demo mode, unlocking without checkout",
			zap.String("assessment_id", assessmentID),
			zap.String("product", string(product)))
		if _, err := u.MarkPaid(ctx, assessmentID, product); err != nil {
			return entities.CheckoutResult{}, err
		}
		return entities.CheckoutResult{Success: true}, nil
	}

	req := entities.CheckoutRequest{
		AssessmentID: assessmentID,
		Product:      product,
		Title:        productTitle(product),
		AmountCents:  u.priceCents(product),
		Currency:     u.settings.Currency,
		SuccessURL:   u.successURL(assessmentID, product),
		CancelURL:    u.settings.PublicBaseURL + "/report/" + url.PathEscape(assessmentID),
	}
	session, err := u.gateway.CreateCheckoutSession(ctx, req)
	if err != nil {
		zap.L().Error("[payment][usecase] checkout session failed",
			zap.String("provider", u.gateway.Provider()),
			zap.String("assessment_id", assessmentID),
			zap.Error(err))
		return entities.CheckoutResult{}, fmt.Errorf("%w: %v", ErrCheckoutUpstream, err)
	}
	zap.L().Info("[payment][usecase] checkout session created",
		zap.String("provider", u.gateway.Provider()),
		zap.String("session_id", session.ID),
		zap.String("assessment_id", assessmentID),
		zap.String("product", string(product)))
	return entities.CheckoutResult{URL: session.URL}, nil
}

func (u *PaymentUseCase) HandleWebhook(ctx context.Context, provider string, payload []byte, headers http.Header) (entities.CheckoutCompletion, error) {
	if u.gateway == nil || !strings.EqualFold(strings.TrimSpace(provider), u.gateway.Provider()) {
		return entities.CheckoutCompletion{}, ErrUnknownPaymentProvider
	}

	c, err := u.gateway.ParseCompletion(ctx, payload, headers)
	if err != nil {
		zap.L().Warn("[payment][usecase] rejected webhook", zap.String("provider", provider), zap.Error(err))
		return entities.CheckoutCompletion{}, fmt.Errorf("%w: %v", ErrInvalidWebhook, err)
	}
	if c.Ignored {
		return c, nil
	}
	if strings.TrimSpace(c.AssessmentID) == "" || !c.Product.IsValid() {
		return entities.CheckoutCompletion{}, fmt.Errorf("%w: missing checkout metadata", ErrInvalidWebhook)
	}
	if _, err := u.MarkPaid(ctx, c.AssessmentID, c.Product); err != nil {
		return entities.CheckoutCompletion{}, err
	}
	return c, nil
}

// RequirePaid returns ErrPaymentRequired unless product is unlocked.
func (u *PaymentUseCase) RequirePaid(ctx context.Context, assessmentID string, product entities.Product) error {
	s, err := u.GetStatus(ctx, assessmentID)
	if err != nil {
		return err
	}
	if !s.HasPaid(product) {
		return ErrPaymentRequired
	}
	return nil
}

func (u *PaymentUseCase) priceCents(product entities.Product) int64 {
	if product == entities.ProductEbayUpgrade {
		return u.settings.EbayUpgradeCents
	}
	return u.settings.FullReportCents
}

func (u *PaymentUseCase) successURL(assessmentID string, product entities.Product) string {
	q := url.Values{}
	q.Set("assessmentId", assessmentID)
	q.Set("product", string(product))
	return u.settings.PublicBaseURL + "/payment/success?" + q.Encode()
}

func productTitle(product entities.Product) string {
	if product == entities.ProductEbayUpgrade {
		return "eBay Parts Search Upgrade"
	}
	return "Full Damage Report"
}
