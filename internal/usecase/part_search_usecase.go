package usecase

import (
	"context"
	"damage_report/internal/domain/entities"
	"damage_report/internal/usecase/interfaces"
	"errors"
	"math"
	"net/url"
	"strconv"
	"strings"
)

var (
	ErrInvalidPartName = errors.New("invalid part name")
	ErrPartNotFound    = errors.New("part not found in assessment")
)

const ebaySearchURL = "https://www.ebay.com/sch/i.html"

// eBay item condition filters.
const (
	ebayConditionNew  = "1000"
	ebayConditionUsed = "3000"
)

// IPartSearchUseCase looks up replacement parts for a damaged part. It is
// the feature unlocked by the ebay_upgrade product.
type IPartSearchUseCase interface {
	Search(ctx context.Context, assessmentID, partName string) (entities.PartSearchResult, error)
}

type PartSearchUseCase struct {
	assessments interfaces.IAssessmentRepository
	payments    IPaymentUseCase
}

var _ IPartSearchUseCase = (*PartSearchUseCase)(nil)

// NewPartSearchUseCase checks the ebay_upgrade flag through the payment gate.
func NewPartSearchUseCase(assessments interfaces.IAssessmentRepository, payments IPaymentUseCase) *PartSearchUseCase {
	return &PartSearchUseCase{assessments: assessments, payments: payments}
}

func (u *PartSearchUseCase) Search(ctx context.Context, assessmentID, partName string) (entities.PartSearchResult, error) {
	assessmentID = strings.TrimSpace(assessmentID)
	partName = strings.TrimSpace(partName)
	if assessmentID == "" {
		return entities.PartSearchResult{}, ErrInvalidAssessmentID
	}
	if partName == "" {
		return entities.PartSearchResult{}, ErrInvalidPartName
	}

	a, err := u.assessments.GetByID(ctx, assessmentID)
	if err != nil {
		return entities.PartSearchResult{}, err
	}
	if a.ID == "" {
		return entities.PartSearchResult{}, ErrAssessmentNotFound
	}

	if err := u.payments.RequirePaid(ctx, assessmentID, entities.ProductEbayUpgrade); err != nil {
		return entities.PartSearchResult{}, err
	}

	part, ok := findPart(a.DamagedParts, partName)
	if !ok {
		return entities.PartSearchResult{}, ErrPartNotFound
	}

	query := partQuery(a.VehicleInfo, part.Name)
	res := entities.PartSearchResult{
		AssessmentID: a.ID,
		Part:         part.Name,
		Query:        query,
		SearchURL:    ebayURL(query, ""),
		Listings:     []entities.PartListing{},
	}
	if part.PartCost != nil && part.PartCost.High > 0 {
		low, high := part.PartCost.Low, part.PartCost.High
		res.Listings = append(res.Listings,
			entities.PartListing{Title: query + " OEM", Condition: entities.PartConditionNewOEM, Price: roundCents(high), URL: ebayURL(query+" OEM", ebayConditionNew)},
			entities.PartListing{Title: query, Condition: entities.PartConditionAftermarket, Price: roundCents(low), URL: ebayURL(query, ebayConditionNew)},
			entities.PartListing{Title: query, Condition: entities.PartConditionUsed, Price: roundCents(low * 0.6), URL: ebayURL(query, ebayConditionUsed)},
		)
	}
	return res, nil
}

// findPart prefers an exact case-insensitive name match, then a substring.
func findPart(parts []entities.DamagedPart, name string) (entities.DamagedPart, bool) {
	for _, p := range parts {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	lower := strings.ToLower(name)
	for _, p := range parts {
		if strings.Contains(strings.ToLower(p.Name), lower) {
			return p, true
		}
	}
	return entities.DamagedPart{}, false
}

func partQuery(v entities.VehicleInfo, part string) string {
	terms := make([]string, 0, 4)
	if v.Year > 0 {
		terms = append(terms, strconv.Itoa(v.Year))
	}
	if v.Make != "" {
		terms = append(terms, v.Make)
	}
	if v.Model != "" {
		terms = append(terms, v.Model)
	}
	return strings.Join(append(terms, part), " ")
}

func ebayURL(query, condition string) string {
	q := url.Values{}
	q.Set("_nkw", query)
	if condition != "" {
		q.Set("LH_ItemCondition", condition)
	}
	return ebaySearchURL + "?" + q.Encode()
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
