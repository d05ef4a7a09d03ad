package interfaces

import (
	"context"
	"damage_report/internal/domain/entities"
)

// IPaymentStatusRepository stores the payment flags of each assessment.
//
// Get never reports "not found": unknown ids yield both flags false.
// Merge overlays only the fields present in the patch and returns the
// resulting record, so paying for one product never clobbers the other.
type IPaymentStatusRepository interface {
	Get(ctx context.Context, assessmentID string) (entities.PaymentStatus, error)
	Merge(ctx context.Context, assessmentID string, patch entities.PaymentStatusPatch) (entities.PaymentStatus, error)
}
