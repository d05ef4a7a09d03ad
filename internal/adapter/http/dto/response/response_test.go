package response

import (
	"encoding/json"
	"strings"
	"testing"

	"damage_report/internal/domain/entities"
)

func paidAssessment() entities.Assessment {
	return entities.Assessment{
		ID:      "a-1",
		Summary: entities.DamageSummary{OverallSeverity: entities.SeverityMinor, Summary: "Scratched door"},
		DamagedParts: []entities.DamagedPart{{
			Name:       "Front Door",
			PartCost:   &entities.Range{Low: 100, High: 200},
			LaborCost:  &entities.Range{Low: 50, High: 80},
			LaborHours: &entities.Range{Low: 1, High: 2},
		}},
		HiddenDamage: []entities.HiddenDamage{{
			Description:    "Door hinge",
			AdditionalCost: &entities.Range{Low: 10, High: 40},
		}},
		CostBreakdown: entities.CostBreakdown{
			PartsCostLow:         100,
			PartsCostHigh:        200,
			LaborCostLow:         50,
			LaborCostHigh:        80,
			TotalCostLow:         150,
			TotalCostHigh:        280,
			HiddenDamageCostLow:  10,
			HiddenDamageCostHigh: 40,
			GrandTotalLow:        160,
			GrandTotalHigh:       320,
		},
		MarketValueComparison: entities.MarketValueComparison{
			EstimatedValueAverage: 9000,
			Explanation:           "Cheap relative to value",
		},
		RepairRecommendations: []string{"Touch up paint"},
		SafetyWarnings:        []string{"None"},
		ImageURLs:             []string{},
	}
}

func TestFromAssessment_Redacted(t *testing.T) {
	a := paidAssessment()
	res := FromAssessment(a, entities.PaymentStatus{AssessmentID: "a-1"})

	if !res.Redacted {
		t.Fatalf("expected redacted response")
	}
	if res.DamagedParts[0].PartCost != nil || res.DamagedParts[0].LaborCost != nil || res.DamagedParts[0].LaborHours != nil {
		t.Fatalf("part costs leaked: %+v", res.DamagedParts[0])
	}
	if res.DamagedParts[0].Name != "Front Door" {
		t.Fatalf("part list should stay visible")
	}
	if res.HiddenDamage[0].AdditionalCost != nil {
		t.Fatalf("hidden damage cost leaked")
	}
	if len(res.RepairRecommendations) != 0 || res.MarketValueComparison.Explanation != "" {
		t.Fatalf("paid sections leaked: %+v", res)
	}
	if res.Summary.Summary != "Scratched door" || len(res.SafetyWarnings) != 1 {
		t.Fatalf("free sections missing: %+v", res)
	}

	if a.DamagedParts[0].PartCost == nil || a.HiddenDamage[0].AdditionalCost == nil || len(a.RepairRecommendations) != 1 {
		t.Fatalf("stored record was mutated")
	}

	body, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{`"partCost"`, `"additionalCost"`, `"explanation"`} {
		if strings.Contains(string(body), key) {
			t.Fatalf("body should not contain %s: %s", key, body)
		}
	}
	if !strings.Contains(string(body), `"id":"a-1"`) || !strings.Contains(string(body), `"redacted":true`) {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestFromAssessment_RedactedCostBreakdown(t *testing.T) {
	a := paidAssessment()
	res := FromAssessment(a, entities.PaymentStatus{AssessmentID: "a-1"})

	want := entities.CostBreakdown{GrandTotalLow: 160, GrandTotalHigh: 320}
	if res.CostBreakdown != want {
		t.Fatalf("expected only the grand total, got %+v", res.CostBreakdown)
	}
	if a.CostBreakdown.PartsCostHigh != 200 || a.CostBreakdown.HiddenDamageCostHigh != 40 {
		t.Fatalf("stored breakdown was mutated: %+v", a.CostBreakdown)
	}

	paid := FromAssessment(a, entities.PaymentStatus{HasPaidForFullReport: true})
	if paid.CostBreakdown != a.CostBreakdown {
		t.Fatalf("paid breakdown should be complete, got %+v", paid.CostBreakdown)
	}
}

func TestFromAssessment_Paid(t *testing.T) {
	res := FromAssessment(paidAssessment(), entities.PaymentStatus{HasPaidForFullReport: true})
	if res.Redacted {
		t.Fatalf("expected full response")
	}
	if res.DamagedParts[0].PartCost == nil || res.MarketValueComparison.Explanation == "" {
		t.Fatalf("paid fields missing: %+v", res)
	}
}

func TestFromCheckoutResult(t *testing.T) {
	body, _ := json.Marshal(FromCheckoutResult(entities.CheckoutResult{Success: true}))
	if string(body) != `{"success":true}` {
		t.Fatalf("unexpected demo body: %s", body)
	}
	body, _ = json.Marshal(FromCheckoutResult(entities.CheckoutResult{URL: "https://pay"}))
	if string(body) != `{"url":"https://pay"}` {
		t.Fatalf("unexpected checkout body: %s", body)
	}
}

func TestFromCalendarPosts(t *testing.T) {
	body, _ := json.Marshal(FromCalendarPosts(nil))
	if string(body) != `{"posts":[]}` {
		t.Fatalf("unexpected body: %s", body)
	}
}
