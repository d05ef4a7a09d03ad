package handlers

import (
	"errors"
	"io"
	"net/http"
	"net/url"

	request "damage_report/internal/adapter/http/dto/request"
	response "damage_report/internal/adapter/http/dto/response"
	"damage_report/internal/domain/entities"
	"damage_report/internal/usecase"
	"damage_report/pkg"

	"github.com/gin-gonic/gin"
)

const maxWebhookBytes = 1 << 20

var (
	errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "assessmentId and product are required", http.StatusBadRequest)
	errInvalidStatusPayload   = pkg.NewDomainErrorSimple("INVALID_PAYMENT_STATUS_INPUT", "Invalid payment status payload", http.StatusBadRequest)
)

// PaymentHandler exposes the payment gate.
type PaymentHandler struct {
	usecase       usecase.IPaymentUseCase
	publicBaseURL string
}

func NewPaymentHandler(uc usecase.IPaymentUseCase, publicBaseURL string) *PaymentHandler {
	return &PaymentHandler{usecase: uc, publicBaseURL: publicBaseURL}
}

// CreateCheckout godoc
// @Summary      Start a checkout
// @Description  Returns the hosted checkout URL, or unlocks the product right away and returns success=true when no payment processor is configured.
// @Tags         payment
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateCheckoutRequest  true  "Checkout"
// @Success      200   {object}  response.CheckoutResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      502   {object}  pkg.HTTPError
// @Router       /payment/create-checkout [post]
func (h *PaymentHandler) CreateCheckout(c *gin.Context) {
	var payload request.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.CreateCheckout(c.Request.Context(), payload.AssessmentID, entities.Product(payload.Product))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCheckoutResult(res))
}

// GetStatus godoc
// @Summary      Payment flags of an assessment
// @Tags         payment
// @Produce      json
// @Param        id   path      string  true  "Assessment ID"
// @Success      200  {object}  response.PaymentStatusResponse
// @Router       /payment/status/{id} [get]
func (h *PaymentHandler) GetStatus(c *gin.Context) {
	s, err := h.usecase.GetStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentStatus(s))
}

// UpdateStatus godoc
// @Summary      Mark an assessment as paid
// @Description  Body is {"product": "full_report"|"ebay_upgrade"} or explicit flags. Flags never go back to false.
// @Tags         payment
// @Accept       json
// @Produce      json
// @Param        id    path      string                        true  "Assessment ID"
// @Param        body  body      request.PaymentStatusRequest  true  "Product or flags"
// @Success      200   {object}  response.PaymentStatusResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /payment/status/{id} [post]
func (h *PaymentHandler) UpdateStatus(c *gin.Context) {
	var payload request.PaymentStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStatusPayload.HTTPStatus, errInvalidStatusPayload.ToHTTPError())
		return
	}

	var (
		s   entities.PaymentStatus
		err error
	)
	if payload.Product != "" {
		s, err = h.usecase.MarkPaid(c.Request.Context(), c.Param("id"), entities.Product(payload.Product))
	} else {
		s, err = h.usecase.ApplyPatch(c.Request.Context(), c.Param("id"), payload.ToPatch())
	}
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentStatus(s))
}

// Webhook godoc
// @Summary      Payment processor webhook
// @Description  Verifies a checkout completion notification and unlocks the paid product.
// @Tags         payment
// @Accept       json
// @Produce      json
// @Param        provider  path      string  true  "stripe or mercadopago"
// @Success      200       {object}  response.WebhookResponse
// @Failure      400       {object}  pkg.HTTPError
// @Router       /payment/webhook/{provider} [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_WEBHOOK", "Unreadable webhook body", http.StatusBadRequest).ToHTTPError())
		return
	}

	completion, err := h.usecase.HandleWebhook(c.Request.Context(), c.Param("provider"), payload, c.Request.Header)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.WebhookResponse{Received: true, Ignored: completion.Ignored})
}

// Success godoc
// @Summary      Checkout return page
// @Description  Success redirect target of the hosted checkout. Marks the product paid and redirects to the report.
// @Tags         payment
// @Param        assessmentId  query  string  true  "Assessment ID"
// @Param        product       query  string  true  "full_report or ebay_upgrade"
// @Success      302
// @Failure      400  {object}  pkg.HTTPError
// @Router       /payment/success [get]
func (h *PaymentHandler) Success(c *gin.Context) {
	id := c.Query("assessmentId")
	if _, err := h.usecase.MarkPaid(c.Request.Context(), id, entities.Product(c.Query("product"))); err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Redirect(http.StatusFound, h.publicBaseURL+"/report/"+url.PathEscape(id))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentAssessmentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "assessmentId is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidProduct):
		return pkg.NewDomainErrorSimple("INVALID_PRODUCT", "product must be full_report or ebay_upgrade", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownPaymentProvider):
		return pkg.NewDomainErrorSimple("UNKNOWN_PAYMENT_PROVIDER", "Unknown payment provider", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidWebhook):
		return pkg.NewDomainError("INVALID_WEBHOOK", "Invalid webhook", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentRequired):
		return pkg.NewDomainErrorSimple("PAYMENT_REQUIRED", "Payment required", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrCheckoutUpstream):
		return pkg.NewDomainError("PAYMENT_PROCESSOR_ERROR", "Payment processor error", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
