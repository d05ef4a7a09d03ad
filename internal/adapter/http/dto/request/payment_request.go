package request

import "damage_report/internal/domain/entities"

type CreateCheckoutRequest struct {
	AssessmentID string `json:"assessmentId" binding:"required"`
	Product      string `json:"product" binding:"required"`
}

// PaymentStatusRequest marks an assessment as paid, either by product name or
// with explicit flags.
type PaymentStatusRequest struct {
	Product               string `json:"product"`
	HasPaidForFullReport  *bool  `json:"hasPaidForFullReport"`
	HasPaidForEbayUpgrade *bool  `json:"hasPaidForEbayUpgrade"`
}

func (r PaymentStatusRequest) ToPatch() entities.PaymentStatusPatch {
	return entities.PaymentStatusPatch{
		HasPaidForFullReport:  r.HasPaidForFullReport,
		HasPaidForEbayUpgrade: r.HasPaidForEbayUpgrade,
	}
}
