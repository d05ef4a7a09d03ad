package response

import "damage_report/internal/domain/entities"

// CheckoutResponse carries either the hosted checkout URL or, in demo mode,
// success=true.
type CheckoutResponse struct {
	URL     string `json:"url,omitempty"`
	Success bool   `json:"success,omitempty"`
}

func FromCheckoutResult(r entities.CheckoutResult) CheckoutResponse {
	return CheckoutResponse{URL: r.URL, Success: r.Success}
}

type PaymentStatusResponse struct {
	AssessmentID          string `json:"assessmentId"`
	HasPaidForFullReport  bool   `json:"hasPaidForFullReport"`
	HasPaidForEbayUpgrade bool   `json:"hasPaidForEbayUpgrade"`
}

func FromPaymentStatus(s entities.PaymentStatus) PaymentStatusResponse {
	return PaymentStatusResponse{
		AssessmentID:          s.AssessmentID,
		HasPaidForFullReport:  s.HasPaidForFullReport,
		HasPaidForEbayUpgrade: s.HasPaidForEbayUpgrade,
	}
}

type WebhookResponse struct {
	Received bool `json:"received"`
	Ignored  bool `json:"ignored"`
}

// PaymentRequiredResponse is the 402 body: the error plus where to buy.
type PaymentRequiredResponse struct {
	Error        string `json:"error"`
	Code         string `json:"code"`
	AssessmentID string `json:"assessmentId"`
	Product      string `json:"product"`
	CheckoutPath string `json:"checkoutPath"`
}

func PaymentRequired(assessmentID string, product entities.Product) PaymentRequiredResponse {
	return PaymentRequiredResponse{
		Error:        "Payment required",
		Code:         "PAYMENT_REQUIRED",
		AssessmentID: assessmentID,
		Product:      string(product),
		CheckoutPath: "/payment/create-checkout",
	}
}
