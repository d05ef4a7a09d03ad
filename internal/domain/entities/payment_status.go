package entities

// Product is a paid add-on unlocking part of an assessment.
type Product string

const (
	ProductFullReport  Product = "full_report"
	ProductEbayUpgrade Product = "ebay_upgrade"
)

func (p Product) IsValid() bool {
	return p == ProductFullReport || p == ProductEbayUpgrade
}

// PaymentStatus holds the two independent payment flags of an assessment.
//
// Flags only move from false to true: there is no refund flow.
type PaymentStatus struct {
	AssessmentID          string `json:"assessmentId" dynamodbav:"id"`
	HasPaidForFullReport  bool   `json:"hasPaidForFullReport" dynamodbav:"has_paid_for_full_report"`
	HasPaidForEbayUpgrade bool   `json:"hasPaidForEbayUpgrade" dynamodbav:"has_paid_for_ebay_upgrade"`
}

// HasPaid reports whether product is unlocked.
func (s PaymentStatus) HasPaid(product Product) bool {
	switch product {
	case ProductFullReport:
		return s.HasPaidForFullReport
	case ProductEbayUpgrade:
		return s.HasPaidForEbayUpgrade
	}
	return false
}

// PaymentStatusPatch is a partial update; nil fields are left untouched.
type PaymentStatusPatch struct {
	HasPaidForFullReport  *bool
	HasPaidForEbayUpgrade *bool
}

// PatchForProduct returns the patch that marks product as paid.
func PatchForProduct(product Product) PaymentStatusPatch {
	paid := true
	switch product {
	case ProductFullReport:
		return PaymentStatusPatch{HasPaidForFullReport: &paid}
	case ProductEbayUpgrade:
		return PaymentStatusPatch{HasPaidForEbayUpgrade: &paid}
	}
	return PaymentStatusPatch{}
}

// Apply overlays the fields present in p onto s.
func (p PaymentStatusPatch) Apply(s PaymentStatus) PaymentStatus {
	if p.HasPaidForFullReport != nil {
		s.HasPaidForFullReport = *p.HasPaidForFullReport
	}
	if p.HasPaidForEbayUpgrade != nil {
		s.HasPaidForEbayUpgrade = *p.HasPaidForEbayUpgrade
	}
	return s
}

func (p PaymentStatusPatch) IsEmpty() bool {
	return p.HasPaidForFullReport == nil && p.HasPaidForEbayUpgrade == nil
}
