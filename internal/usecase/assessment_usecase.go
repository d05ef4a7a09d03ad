package usecase

import (
	"context"
	"damage_report/internal/domain/entities"
	"damage_report/internal/usecase/interfaces"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrNoImages            = errors.New("at least one image is required")
	ErrInvalidImage        = errors.New("invalid image")
	ErrInvalidAssessmentID = errors.New("invalid assessment id")
	ErrAssessmentNotFound  = errors.New("assessment not found")
	ErrAssessmentParse     = errors.New("failed to parse assessment")
	ErrModelUpstream       = errors.New("model provider error")
	ErrModelNotConfigured  = errors.New("model provider not configured")
)

// IAssessmentUseCase runs the photo-to-estimate pipeline.
//
//   - POST /assess     => Assess()
//   - GET /assess/{id} => GetByID()
type IAssessmentUseCase interface {
	Assess(ctx context.Context, images []entities.AssessmentImage, hint entities.VehicleInfo) (string, error)
	GetByID(ctx context.Context, id string) (entities.Assessment, error)
}

type AssessmentUseCase struct {
	repo  interfaces.IAssessmentRepository
	model interfaces.ILanguageModel
}

var _ IAssessmentUseCase = (*AssessmentUseCase)(nil)

func NewAssessmentUseCase(repo interfaces.IAssessmentRepository, model interfaces.ILanguageModel) *AssessmentUseCase {
	return &AssessmentUseCase{repo: repo, model: model}
}

func (u *AssessmentUseCase) Assess(ctx context.Context, images []entities.AssessmentImage, hint entities.VehicleInfo) (string, error) {
	if len(images) == 0 {
		return "", ErrNoImages
	}
	for i, img := range images {
		if len(img.Data) == 0 || !strings.HasPrefix(img.MediaType, "image/") {
			return "", fmt.Errorf("%w: image %d", ErrInvalidImage, i)
		}
	}
	if u.model == nil {
		return "", ErrModelNotConfigured
	}

	hint.Make = strings.TrimSpace(hint.Make)
	hint.Model = strings.TrimSpace(hint.Model)

	zap.L().Info("[assessment][usecase] requesting analysis",
		zap.String("provider", u.model.Provider()),
		zap.Int("images", len(images)),
		zap.Bool("vehicle_hint", !hint.IsEmpty()))

	reply, err := u.model.Complete(ctx, entities.ModelPrompt{
		Text:      buildAssessmentPrompt(hint),
		Images:    images,
		MaxTokens: assessmentMaxTokens,
	})
	if err != nil {
		zap.L().Error("[assessment][usecase] model call failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrModelUpstream, err)
	}

	a, err := ParseAssessmentReply(reply, hint)
	if err != nil {
		zap.L().Error("[assessment][usecase] unparseable model reply",
			zap.Error(err),
			zap.String("raw_reply", reply))
		return "", err
	}

	a.ID = uuid.NewString()
	a.CreatedAt = time.Now().UTC()
	if err := u.repo.Put(ctx, a); err != nil {
		return "", err
	}

	zap.L().Info("[assessment][usecase] assessment stored",
		zap.String("assessment_id", a.ID),
		zap.String("severity", string(a.Summary.OverallSeverity)),
		zap.Int("damaged_parts", len(a.DamagedParts)))
	return a.ID, nil
}

func (u *AssessmentUseCase) GetByID(ctx context.Context, id string) (entities.Assessment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Assessment{}, ErrInvalidAssessmentID
	}
	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Assessment{}, err
	}
	if a.ID == "" {
		return entities.Assessment{}, ErrAssessmentNotFound
	}
	return a, nil
}
