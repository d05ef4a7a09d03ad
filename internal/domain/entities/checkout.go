package entities

// CheckoutRequest describes a hosted checkout session for one product of one
// assessment. AssessmentID and Product travel as session metadata so the
// completion callback can unlock the right flag.
type CheckoutRequest struct {
	AssessmentID string
	Product      Product
	Title        string
	AmountCents  int64
	Currency     string
	SuccessURL   string
	CancelURL    string
}

// CheckoutSession is what a payment processor returns for a created session.
type CheckoutSession struct {
	ID  string
	URL string
}

// CheckoutResult is returned by the payment gate. URL is empty in demo mode,
// where the product is unlocked immediately.
type CheckoutResult struct {
	URL     string
	Success bool
}

// CheckoutCompletion is a verified "payment completed" notification.
// Ignored is set for well-formed events that do not unlock anything.
type CheckoutCompletion struct {
	AssessmentID string
	Product      Product
	Ignored      bool
}
