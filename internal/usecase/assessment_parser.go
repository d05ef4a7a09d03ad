package usecase

import (
	"damage_report/internal/domain/entities"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
)

var replyValidator = validator.New()

// assessmentReply is the JSON object the vision model is asked to return.
// summary is mandatory; a missing costBreakdown is rebuilt from the parts.
type assessmentReply struct {
	VehicleInfo           *entities.VehicleInfo           `json:"vehicleInfo"`
	Summary               *entities.DamageSummary         `json:"summary" validate:"required"`
	DamagedParts          []entities.DamagedPart          `json:"damagedParts" validate:"dive"`
	HiddenDamage          []entities.HiddenDamage         `json:"hiddenDamage" validate:"dive"`
	CostBreakdown         *entities.CostBreakdown         `json:"costBreakdown"`
	MarketValueComparison *entities.MarketValueComparison `json:"marketValueComparison"`
	RepairRecommendations []string                        `json:"repairRecommendations"`
	SafetyWarnings        []string                        `json:"safetyWarnings"`
}

// ParseAssessmentReply turns a raw model reply into an assessment without
// id or timestamp. Every failure wraps ErrAssessmentParse.
func ParseAssessmentReply(raw string, hint entities.VehicleInfo) (entities.Assessment, error) {
	body := StripCodeFence(raw)
	if body == "" {
		return entities.Assessment{}, fmt.Errorf("%w: empty reply", ErrAssessmentParse)
	}

	var reply assessmentReply
	if err := json.Unmarshal([]byte(body), &reply); err != nil {
		return entities.Assessment{}, fmt.Errorf("%w: %v", ErrAssessmentParse, err)
	}
	canonicalizeReply(&reply)
	if err := replyValidator.Struct(reply); err != nil {
		return entities.Assessment{}, fmt.Errorf("%w: %v", ErrAssessmentParse, err)
	}

	a := entities.Assessment{
		VehicleInfo:           mergeVehicleInfo(reply.VehicleInfo, hint),
		Summary:               *reply.Summary,
		DamagedParts:          reply.DamagedParts,
		HiddenDamage:          reply.HiddenDamage,
		RepairRecommendations: nonNilStrings(reply.RepairRecommendations),
		SafetyWarnings:        nonNilStrings(reply.SafetyWarnings),
		ImageURLs:             []string{},
	}
	if a.DamagedParts == nil {
		a.DamagedParts = []entities.DamagedPart{}
	}
	if a.HiddenDamage == nil {
		a.HiddenDamage = []entities.HiddenDamage{}
	}
	for i := range a.DamagedParts {
		a.DamagedParts[i].PartCost = normalizeRange(a.DamagedParts[i].PartCost)
		a.DamagedParts[i].LaborCost = normalizeRange(a.DamagedParts[i].LaborCost)
		a.DamagedParts[i].LaborHours = normalizeRange(a.DamagedParts[i].LaborHours)
	}
	for i := range a.HiddenDamage {
		a.HiddenDamage[i].AdditionalCost = normalizeRange(a.HiddenDamage[i].AdditionalCost)
	}

	a.CostBreakdown = normalizeCostBreakdown(reply.CostBreakdown, a.DamagedParts, a.HiddenDamage)
	if reply.MarketValueComparison != nil {
		a.MarketValueComparison = normalizeMarketValue(*reply.MarketValueComparison, a.CostBreakdown)
	}
	return a, nil
}

// partSeverityAliases maps the likelihood-style words models often use for
// part damage onto the severity scale.
var partSeverityAliases = map[string]entities.Severity{
	"low":    entities.SeverityMinor,
	"medium": entities.SeverityModerate,
	"high":   entities.SeveritySevere,
}

// canonicalizeReply folds enum casing. Only summary.overallSeverity is kept
// as-is when unknown so validation rejects it; every other unknown value is
// blanked and parts without a name are dropped.
func canonicalizeReply(r *assessmentReply) {
	severities := []entities.Severity{entities.SeverityMinor, entities.SeverityModerate, entities.SeveritySevere, entities.SeverityCritical}
	skills := []entities.SkillLevel{entities.SkillLevelDIY, entities.SkillLevelIntermediate, entities.SkillLevelProfessional}

	if s := r.Summary; s != nil {
		s.OverallSeverity = canonical(s.OverallSeverity, severities...)
		s.EstimatedRepairDifficulty = known(s.EstimatedRepairDifficulty, skills...)
		s.SafetyImpact = known(s.SafetyImpact, entities.SafetyImpactNone, entities.SafetyImpactLow, entities.SafetyImpactMedium, entities.SafetyImpactHigh)
	}

	parts := r.DamagedParts[:0]
	for _, p := range r.DamagedParts {
		p.Name = strings.TrimSpace(p.Name)
		if p.Name == "" {
			continue
		}
		if alias, ok := partSeverityAliases[strings.ToLower(strings.TrimSpace(string(p.Severity)))]; ok {
			p.Severity = alias
		}
		p.Severity = known(p.Severity, severities...)
		p.SkillLevel = known(p.SkillLevel, skills...)
		p.RepairOrReplace = known(p.RepairOrReplace, entities.RepairActionRepair, entities.RepairActionReplace)
		parts = append(parts, p)
	}
	if r.DamagedParts != nil {
		r.DamagedParts = parts
	}

	for i := range r.HiddenDamage {
		h := &r.HiddenDamage[i]
		h.Likelihood = known(h.Likelihood, entities.LikelihoodLow, entities.LikelihoodMedium, entities.LikelihoodHigh)
	}
	if m := r.MarketValueComparison; m != nil {
		m.Recommendation = known(m.Recommendation,
			entities.MarketRecommendationRepair,
			entities.MarketRecommendationConsiderReplacement,
			entities.MarketRecommendationTotalLoss)
	}
}

// mergeVehicleInfo prefers what the model detected and falls back to the
// owner's hint field by field.
func mergeVehicleInfo(detected *entities.VehicleInfo, hint entities.VehicleInfo) entities.VehicleInfo {
	if detected == nil {
		hint.DetectedFromImage = false
		return hint
	}
	v := *detected
	v.Make = strings.TrimSpace(v.Make)
	v.Model = strings.TrimSpace(v.Model)
	if v.Year <= 0 {
		v.Year = hint.Year
	}
	if v.Make == "" {
		v.Make = hint.Make
	}
	if v.Model == "" {
		v.Model = hint.Model
	}
	return v
}

func normalizeRange(r *entities.Range) *entities.Range {
	if r == nil {
		return nil
	}
	low, high := normalizePair(r.Low, r.High)
	return &entities.Range{Low: low, High: high}
}

// normalizePair clamps negatives to zero and orders the pair.
func normalizePair(low, high float64) (float64, float64) {
	low = math.Max(low, 0)
	high = math.Max(high, 0)
	if low > high {
		low, high = high, low
	}
	return low, high
}

func normalizeCostBreakdown(cb *entities.CostBreakdown, parts []entities.DamagedPart, hidden []entities.HiddenDamage) entities.CostBreakdown {
	var out entities.CostBreakdown
	if cb == nil {
		for _, p := range parts {
			if p.PartCost != nil {
				out.PartsCostLow += p.PartCost.Low
				out.PartsCostHigh += p.PartCost.High
			}
			if p.LaborCost != nil {
				out.LaborCostLow += p.LaborCost.Low
				out.LaborCostHigh += p.LaborCost.High
			}
		}
		for _, h := range hidden {
			if h.AdditionalCost != nil {
				out.HiddenDamageCostLow += h.AdditionalCost.Low
				out.HiddenDamageCostHigh += h.AdditionalCost.High
			}
		}
		out.TotalCostLow = out.PartsCostLow + out.LaborCostLow
		out.TotalCostHigh = out.PartsCostHigh + out.LaborCostHigh
	} else {
		out = *cb
		out.PartsCostLow, out.PartsCostHigh = normalizePair(out.PartsCostLow, out.PartsCostHigh)
		out.LaborCostLow, out.LaborCostHigh = normalizePair(out.LaborCostLow, out.LaborCostHigh)
		out.TotalCostLow, out.TotalCostHigh = normalizePair(out.TotalCostLow, out.TotalCostHigh)
		out.HiddenDamageCostLow, out.HiddenDamageCostHigh = normalizePair(out.HiddenDamageCostLow, out.HiddenDamageCostHigh)
		if out.TotalCostHigh == 0 {
			out.TotalCostLow = out.PartsCostLow + out.LaborCostLow
			out.TotalCostHigh = out.PartsCostHigh + out.LaborCostHigh
		}
	}

	out.GrandTotalLow = out.TotalCostLow + out.HiddenDamageCostLow
	out.GrandTotalHigh = out.TotalCostHigh + out.HiddenDamageCostHigh
	return out
}

func normalizeMarketValue(m entities.MarketValueComparison, cb entities.CostBreakdown) entities.MarketValueComparison {
	m.EstimatedValueLow, m.EstimatedValueHigh = normalizePair(m.EstimatedValueLow, m.EstimatedValueHigh)
	if m.EstimatedValueAverage <= 0 && m.EstimatedValueHigh > 0 {
		m.EstimatedValueAverage = (m.EstimatedValueLow + m.EstimatedValueHigh) / 2
	}
	if m.RepairToValueRatio <= 0 && m.EstimatedValueAverage > 0 {
		m.RepairToValueRatio = math.Round(cb.GrandTotalHigh/m.EstimatedValueAverage*100) / 100
	}
	m.RepairToValueRatio = math.Max(m.RepairToValueRatio, 0)
	return m
}
