package response

import "damage_report/internal/domain/entities"

type AssessResponse struct {
	AssessmentID string `json:"assessmentId"`
	Success      bool   `json:"success"`
}

// AssessmentResponse is the assessment as shown to a client. Redacted is true
// when the full report has not been paid for.
type AssessmentResponse struct {
	entities.Assessment
	Redacted bool `json:"redacted"`
}

// FromAssessment withholds part costs, hidden damage costs, the cost
// breakdown components, repair recommendations and the market value
// explanation unless the full report is paid. Only the grand total range is
// left in the breakdown. The input record is never modified.
func FromAssessment(a entities.Assessment, status entities.PaymentStatus) AssessmentResponse {
	if status.HasPaidForFullReport {
		return AssessmentResponse{Assessment: a}
	}

	parts := make([]entities.DamagedPart, len(a.DamagedParts))
	for i, p := range a.DamagedParts {
		p.PartCost = nil
		p.LaborCost = nil
		p.LaborHours = nil
		parts[i] = p
	}
	hidden := make([]entities.HiddenDamage, len(a.HiddenDamage))
	for i, h := range a.HiddenDamage {
		h.AdditionalCost = nil
		hidden[i] = h
	}

	a.DamagedParts = parts
	a.HiddenDamage = hidden
	a.CostBreakdown = entities.CostBreakdown{
		GrandTotalLow:  a.CostBreakdown.GrandTotalLow,
		GrandTotalHigh: a.CostBreakdown.GrandTotalHigh,
	}
	a.RepairRecommendations = []string{}
	a.MarketValueComparison.Explanation = ""
	return AssessmentResponse{Assessment: a, Redacted: true}
}
