package handlers

import (
	"errors"
	"net/http"

	request "damage_report/internal/adapter/http/dto/request"
	"damage_report/internal/usecase"
	"damage_report/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidContentPayload = pkg.NewDomainErrorSimple("INVALID_CONTENT_INPUT", "businessName, industry, topic and platforms are required", http.StatusBadRequest)

type ContentHandler struct {
	usecase usecase.IContentUseCase
}

func NewContentHandler(uc usecase.IContentUseCase) *ContentHandler {
	return &ContentHandler{usecase: uc}
}

// Generate godoc
// @Summary      Generate social media posts
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        body  body      request.GenerateContentRequest  true  "Brief"
// @Success      200   {object}  entities.ContentPlan
// @Failure      400   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /content/generate [post]
func (h *ContentHandler) Generate(c *gin.Context) {
	var payload request.GenerateContentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContentPayload.HTTPStatus, errInvalidContentPayload.ToHTTPError())
		return
	}

	plan, err := h.usecase.Generate(c.Request.Context(), payload.ToBrief())
	if err != nil {
		appErr := mapContentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, plan)
}

func mapContentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidContentBrief):
		return pkg.NewDomainError("INVALID_CONTENT_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownModelProvider):
		return pkg.NewDomainError("UNKNOWN_MODEL_PROVIDER", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrContentParse):
		return pkg.NewDomainError("CONTENT_PARSE_ERROR", "Failed to parse generated content", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrModelUpstream):
		return pkg.NewDomainError("MODEL_UPSTREAM_ERROR", err.Error(), err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
