package usecase

import (
	"damage_report/internal/domain/entities"
	"fmt"
	"strings"
)

const assessmentMaxTokens = 4096

const assessmentPromptTemplate = `You are an experienced auto body estimator and insurance adjuster. Analyze the attached photos of a damaged vehicle and produce a repair assessment.

## OUTPUT RULES
1. Respond with ONLY a JSON object matching the schema below. No markdown, no commentary.
2. All money values are US dollars as plain numbers. Every range has low <= high.
3. costBreakdown.totalCost* = partsCost* + laborCost*; grandTotal* = totalCost* + hiddenDamageCost*.
4. If the vehicle cannot be identified from the photos, use the owner-provided details and set detectedFromImage to false.

## SCHEMA
{
  "vehicleInfo": {"year": 2018, "make": "string", "model": "string", "detectedFromImage": true},
  "summary": {
    "overallSeverity": "Minor | Moderate | Severe | Critical",
    "primaryDamageType": "string",
    "estimatedRepairDifficulty": "DIY | Intermediate | Professional",
    "safetyImpact": "None | Low | Medium | High",
    "isDriveable": true,
    "summary": "2-3 sentence plain-language description"
  },
  "damagedParts": [{
    "name": "string", "location": "string", "damageType": "string",
    "severity": "Minor | Moderate | Severe | Critical",
    "repairOrReplace": "Repair | Replace",
    "partCost": {"low": 0, "high": 0},
    "laborCost": {"low": 0, "high": 0},
    "laborHours": {"low": 0, "high": 0},
    "skillLevel": "DIY | Intermediate | Professional",
    "notes": "optional string"
  }],
  "hiddenDamage": [{
    "likelihood": "Low | Medium | High",
    "description": "string",
    "additionalCost": {"low": 0, "high": 0},
    "inspectionRecommended": "string"
  }],
  "costBreakdown": {
    "partsCostLow": 0, "partsCostHigh": 0,
    "laborCostLow": 0, "laborCostHigh": 0,
    "totalCostLow": 0, "totalCostHigh": 0,
    "hiddenDamageCostLow": 0, "hiddenDamageCostHigh": 0,
    "grandTotalLow": 0, "grandTotalHigh": 0
  },
  "marketValueComparison": {
    "estimatedValueLow": 0, "estimatedValueHigh": 0, "estimatedValueAverage": 0,
    "repairToValueRatio": 0.0,
    "recommendation": "Repair | Consider Replacement | Total Loss",
    "explanation": "string"
  },
  "repairRecommendations": ["string"],
  "safetyWarnings": ["string"]
}
%s`

func buildAssessmentPrompt(hint entities.VehicleInfo) string {
	return fmt.Sprintf(assessmentPromptTemplate, vehicleHintSection(hint))
}

func vehicleHintSection(hint entities.VehicleInfo) string {
	if hint.IsEmpty() {
		return ""
	}
	parts := make([]string, 0, 3)
	if hint.Year > 0 {
		parts = append(parts, fmt.Sprintf("%d", hint.Year))
	}
	if hint.Make != "" {
		parts = append(parts, hint.Make)
	}
	if hint.Model != "" {
		parts = append(parts, hint.Model)
	}
	return "\n## OWNER-PROVIDED VEHICLE\n" + strings.Join(parts, " ") + "\n"
}
