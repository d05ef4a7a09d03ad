package entities

import "time"

// Severity grades overall and per-part damage, from least to most severe.
type Severity string

const (
	SeverityMinor    Severity = "Minor"
	SeverityModerate Severity = "Moderate"
	SeveritySevere   Severity = "Severe"
	SeverityCritical Severity = "Critical"
)

// SkillLevel is the repair difficulty, shared by the summary and each part.
type SkillLevel string

const (
	SkillLevelDIY          SkillLevel = "DIY"
	SkillLevelIntermediate SkillLevel = "Intermediate"
	SkillLevelProfessional SkillLevel = "Professional"
)

type SafetyImpact string

const (
	SafetyImpactNone   SafetyImpact = "None"
	SafetyImpactLow    SafetyImpact = "Low"
	SafetyImpactMedium SafetyImpact = "Medium"
	SafetyImpactHigh   SafetyImpact = "High"
)

type Likelihood string

const (
	LikelihoodLow    Likelihood = "Low"
	LikelihoodMedium Likelihood = "Medium"
	LikelihoodHigh   Likelihood = "High"
)

type RepairAction string

const (
	RepairActionRepair  RepairAction = "Repair"
	RepairActionReplace RepairAction = "Replace"
)

type MarketRecommendation string

const (
	MarketRecommendationRepair              MarketRecommendation = "Repair"
	MarketRecommendationConsiderReplacement MarketRecommendation = "Consider Replacement"
	MarketRecommendationTotalLoss           MarketRecommendation = "Total Loss"
)

// Assessment is one completed damage analysis.
//
// It is written once, as a whole, by the assessment pipeline and never
// updated afterwards. The ID is the only access key: whoever holds it can
// read the record.
type Assessment struct {
	ID                    string                `json:"id" dynamodbav:"id"`
	CreatedAt             time.Time             `json:"createdAt" dynamodbav:"created_at"`
	VehicleInfo           VehicleInfo           `json:"vehicleInfo" dynamodbav:"vehicle_info"`
	Summary               DamageSummary         `json:"summary" dynamodbav:"summary"`
	DamagedParts          []DamagedPart         `json:"damagedParts" dynamodbav:"damaged_parts"`
	HiddenDamage          []HiddenDamage        `json:"hiddenDamage" dynamodbav:"hidden_damage"`
	CostBreakdown         CostBreakdown         `json:"costBreakdown" dynamodbav:"cost_breakdown"`
	MarketValueComparison MarketValueComparison `json:"marketValueComparison" dynamodbav:"market_value_comparison"`
	RepairRecommendations []string              `json:"repairRecommendations" dynamodbav:"repair_recommendations"`
	SafetyWarnings        []string              `json:"safetyWarnings" dynamodbav:"safety_warnings"`
	ImageURLs             []string              `json:"imageUrls" dynamodbav:"image_urls"`
}

type VehicleInfo struct {
	Year              int    `json:"year,omitempty" dynamodbav:"year,omitempty"`
	Make              string `json:"make,omitempty" dynamodbav:"make,omitempty"`
	Model             string `json:"model,omitempty" dynamodbav:"model,omitempty"`
	DetectedFromImage bool   `json:"detectedFromImage" dynamodbav:"detected_from_image"`
}

// IsEmpty reports whether no vehicle detail is known.
func (v VehicleInfo) IsEmpty() bool {
	return v.Year == 0 && v.Make == "" && v.Model == ""
}

type DamageSummary struct {
	OverallSeverity           Severity     `json:"overallSeverity" dynamodbav:"overall_severity" validate:"required,oneof=Minor Moderate Severe Critical"`
	PrimaryDamageType         string       `json:"primaryDamageType" dynamodbav:"primary_damage_type"`
	EstimatedRepairDifficulty SkillLevel   `json:"estimatedRepairDifficulty" dynamodbav:"estimated_repair_difficulty" validate:"omitempty,oneof=DIY Intermediate Professional"`
	SafetyImpact              SafetyImpact `json:"safetyImpact" dynamodbav:"safety_impact" validate:"omitempty,oneof=None Low Medium High"`
	IsDriveable               bool         `json:"isDriveable" dynamodbav:"is_driveable"`
	Summary                   string       `json:"summary" dynamodbav:"summary"`
}

// Range is a {low, high} pair; both ends are non-negative and low <= high.
type Range struct {
	Low  float64 `json:"low" dynamodbav:"low"`
	High float64 `json:"high" dynamodbav:"high"`
}

type DamagedPart struct {
	Name            string       `json:"name" dynamodbav:"name" validate:"required"`
	Location        string       `json:"location" dynamodbav:"location"`
	DamageType      string       `json:"damageType" dynamodbav:"damage_type"`
	Severity        Severity     `json:"severity" dynamodbav:"severity" validate:"omitempty,oneof=Minor Moderate Severe Critical"`
	RepairOrReplace RepairAction `json:"repairOrReplace" dynamodbav:"repair_or_replace" validate:"omitempty,oneof=Repair Replace"`
	PartCost        *Range       `json:"partCost,omitempty" dynamodbav:"part_cost,omitempty"`
	LaborCost       *Range       `json:"laborCost,omitempty" dynamodbav:"labor_cost,omitempty"`
	LaborHours      *Range       `json:"laborHours,omitempty" dynamodbav:"labor_hours,omitempty"`
	SkillLevel      SkillLevel   `json:"skillLevel" dynamodbav:"skill_level" validate:"omitempty,oneof=DIY Intermediate Professional"`
	Notes           string       `json:"notes,omitempty" dynamodbav:"notes,omitempty"`
}

type HiddenDamage struct {
	Likelihood            Likelihood `json:"likelihood" dynamodbav:"likelihood" validate:"omitempty,oneof=Low Medium High"`
	Description           string     `json:"description" dynamodbav:"description"`
	AdditionalCost        *Range     `json:"additionalCost,omitempty" dynamodbav:"additional_cost,omitempty"`
	InspectionRecommended string     `json:"inspectionRecommended" dynamodbav:"inspection_recommended"`
}

// CostBreakdown totals the estimate. GrandTotal = TotalCost + HiddenDamageCost
// on both ends of the range.
type CostBreakdown struct {
	PartsCostLow         float64 `json:"partsCostLow" dynamodbav:"parts_cost_low"`
	PartsCostHigh        float64 `json:"partsCostHigh" dynamodbav:"parts_cost_high"`
	LaborCostLow         float64 `json:"laborCostLow" dynamodbav:"labor_cost_low"`
	LaborCostHigh        float64 `json:"laborCostHigh" dynamodbav:"labor_cost_high"`
	TotalCostLow         float64 `json:"totalCostLow" dynamodbav:"total_cost_low"`
	TotalCostHigh        float64 `json:"totalCostHigh" dynamodbav:"total_cost_high"`
	HiddenDamageCostLow  float64 `json:"hiddenDamageCostLow" dynamodbav:"hidden_damage_cost_low"`
	HiddenDamageCostHigh float64 `json:"hiddenDamageCostHigh" dynamodbav:"hidden_damage_cost_high"`
	GrandTotalLow        float64 `json:"grandTotalLow" dynamodbav:"grand_total_low"`
	GrandTotalHigh       float64 `json:"grandTotalHigh" dynamodbav:"grand_total_high"`
}

type MarketValueComparison struct {
	EstimatedValueLow     float64              `json:"estimatedValueLow" dynamodbav:"estimated_value_low"`
	EstimatedValueHigh    float64              `json:"estimatedValueHigh" dynamodbav:"estimated_value_high"`
	EstimatedValueAverage float64              `json:"estimatedValueAverage" dynamodbav:"estimated_value_average"`
	RepairToValueRatio    float64              `json:"repairToValueRatio" dynamodbav:"repair_to_value_ratio"`
	Recommendation        MarketRecommendation `json:"recommendation" dynamodbav:"recommendation" validate:"omitempty,oneof=Repair 'Consider Replacement' 'Total Loss'"`
	Explanation           string               `json:"explanation,omitempty" dynamodbav:"explanation,omitempty"`
}

// AssessmentImage is one uploaded photo. Images are only forwarded to the
// vision model; they are never stored.
type AssessmentImage struct {
	Data      []byte
	MediaType string
}
