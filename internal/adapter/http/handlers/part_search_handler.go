package handlers

import (
	"errors"
	"net/http"

	response "damage_report/internal/adapter/http/dto/response"
	"damage_report/internal/domain/entities"
	"damage_report/internal/usecase"
	"damage_report/pkg"

	"github.com/gin-gonic/gin"
)

type PartSearchHandler struct {
	usecase usecase.IPartSearchUseCase
}

func NewPartSearchHandler(uc usecase.IPartSearchUseCase) *PartSearchHandler {
	return &PartSearchHandler{usecase: uc}
}

// Search godoc
// @Summary      Search replacement parts
// @Description  Marketplace listings for one damaged part. Requires the ebay_upgrade product.
// @Tags         assessment
// @Produce      json
// @Param        id    path      string  true  "Assessment ID"
// @Param        part  query     string  true  "Damaged part name"
// @Success      200   {object}  entities.PartSearchResult
// @Failure      402   {object}  response.PaymentRequiredResponse
// @Failure      404   {object}  pkg.HTTPError
// @Router       /assess/{id}/parts/search [get]
func (h *PartSearchHandler) Search(c *gin.Context) {
	id := c.Param("id")
	res, err := h.usecase.Search(c.Request.Context(), id, c.Query("part"))
	if errors.Is(err, usecase.ErrPaymentRequired) {
		c.JSON(http.StatusPaymentRequired, response.PaymentRequired(id, entities.ProductEbayUpgrade))
		return
	}
	if err != nil {
		appErr := mapPartSearchError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, res)
}

func mapPartSearchError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAssessmentID), errors.Is(err, usecase.ErrInvalidPartName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAssessmentNotFound):
		return pkg.NewDomainErrorSimple("ASSESSMENT_NOT_FOUND", "Assessment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPartNotFound):
		return pkg.NewDomainErrorSimple("PART_NOT_FOUND", "Part not found in assessment", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
