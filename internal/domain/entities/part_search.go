package entities

// PartCondition labels a marketplace listing.
type PartCondition string

const (
	PartConditionNewOEM      PartCondition = "New (OEM)"
	PartConditionAftermarket PartCondition = "New (Aftermarket)"
	PartConditionUsed        PartCondition = "Used"
)

type PartListing struct {
	Title     string        `json:"title"`
	Condition PartCondition `json:"condition"`
	Price     float64       `json:"price"`
	URL       string        `json:"url"`
}

// PartSearchResult is the marketplace lookup for one damaged part.
type PartSearchResult struct {
	AssessmentID string        `json:"assessmentId"`
	Part         string        `json:"part"`
	Query        string        `json:"query"`
	SearchURL    string        `json:"searchUrl"`
	Listings     []PartListing `json:"listings"`
}
