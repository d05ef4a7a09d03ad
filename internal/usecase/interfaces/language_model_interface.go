package interfaces

import (
	"context"
	"damage_report/internal/domain/entities"
)

// ILanguageModel sends one prompt to a hosted model and returns its raw text
// reply. Implementations do not retry.
type ILanguageModel interface {
	Provider() string
	Complete(ctx context.Context, prompt entities.ModelPrompt) (string, error)
}
