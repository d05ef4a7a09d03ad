package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	request "damage_report/internal/adapter/http/dto/request"
	response "damage_report/internal/adapter/http/dto/response"
	"damage_report/internal/domain/entities"
	"damage_report/internal/usecase"
	"damage_report/pkg"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	maxImageBytes  = 10 << 20
	maxUploadBytes = 64 << 20
)

var (
	errInvalidAssessPayload = pkg.NewDomainErrorSimple("INVALID_ASSESSMENT_INPUT", "Invalid assessment payload", http.StatusBadRequest)
	errImageTooLarge        = pkg.NewDomainErrorSimple("IMAGE_TOO_LARGE", "Image exceeds 10MB", http.StatusBadRequest)
)

// AssessmentHandler serves the damage assessment pipeline and the
// (payment-gated) report.
type AssessmentHandler struct {
	usecase  usecase.IAssessmentUseCase
	payments usecase.IPaymentUseCase
}

func NewAssessmentHandler(uc usecase.IAssessmentUseCase, payments usecase.IPaymentUseCase) *AssessmentHandler {
	return &AssessmentHandler{usecase: uc, payments: payments}
}

// Assess godoc
// @Summary      Assess vehicle damage
// @Description  Runs the vision model over the uploaded photos and stores the assessment. Accepts multipart "images" files (plus year/make/model fields) or JSON with base64 images.
// @Tags         assessment
// @Accept       mpfd,json
// @Produce      json
// @Param        images  formData  file                    false  "Damage photos"
// @Param        body    body      request.AssessRequest  false  "Base64 images"
// @Success      200     {object}  response.AssessResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      500     {object}  pkg.HTTPError
// @Router       /assess [post]
func (h *AssessmentHandler) Assess(c *gin.Context) {
	var (
		images []entities.AssessmentImage
		hint   request.VehicleInfoRequest
		err    *pkg.AppError
	)
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		images, hint, err = readMultipartImages(c)
	} else {
		images, hint, err = readJSONImages(c)
	}
	if err != nil {
		c.JSON(err.HTTPStatus, err.ToHTTPError())
		return
	}

	for i := range images {
		images[i].MediaType = detectMediaType(images[i].Data, images[i].MediaType)
	}

	id, assessErr := h.usecase.Assess(c.Request.Context(), images, hint.ToEntity())
	if assessErr != nil {
		appErr := mapAssessmentError(assessErr)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.AssessResponse{AssessmentID: id, Success: true})
}

// GetAssessment godoc
// @Summary      Get an assessment
// @Description  Returns the assessment. Cost details are withheld until the full report is paid.
// @Tags         assessment
// @Produce      json
// @Param        id   path      string  true  "Assessment ID"
// @Success      200  {object}  response.AssessmentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /assess/{id} [get]
func (h *AssessmentHandler) GetAssessment(c *gin.Context) {
	id := c.Param("id")
	a, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapAssessmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status, err := h.payments.GetStatus(c.Request.Context(), a.ID)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAssessment(a, status))
}

// detectMediaType sniffs the bytes. The declared type is used only when it is
// an image type and the content is not recognised as an image.
func detectMediaType(data []byte, declared string) string {
	sniffed := mimetype.Detect(data).String()
	if strings.HasPrefix(sniffed, "image/") {
		return sniffed
	}
	declared = strings.ToLower(strings.TrimSpace(declared))
	if strings.HasPrefix(declared, "image/") {
		return declared
	}
	return sniffed
}

func readMultipartImages(c *gin.Context) ([]entities.AssessmentImage, request.VehicleInfoRequest, *pkg.AppError) {
	var hint request.VehicleInfoRequest
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)
	form, err := c.MultipartForm()
	if err != nil {
		return nil, hint, errInvalidAssessPayload
	}
	if err := c.ShouldBind(&hint); err != nil {
		return nil, hint, errInvalidAssessPayload
	}

	files := form.File["images"]
	out := make([]entities.AssessmentImage, 0, len(files))
	for _, fh := range files {
		if fh.Size > maxImageBytes {
			return nil, hint, errImageTooLarge
		}
		b, err := readFile(fh)
		if err != nil {
			zap.L().Warn("[assessment][handler] unreadable upload", zap.String("filename", fh.Filename), zap.Error(err))
			return nil, hint, errInvalidAssessPayload
		}
		out = append(out, entities.AssessmentImage{Data: b, MediaType: fh.Header.Get("Content-Type")})
	}
	return out, hint, nil
}

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func readJSONImages(c *gin.Context) ([]entities.AssessmentImage, request.VehicleInfoRequest, *pkg.AppError) {
	var payload request.AssessRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		return nil, payload.VehicleInfo, errInvalidAssessPayload
	}
	images, err := payload.DecodeImages()
	if err != nil {
		return nil, payload.VehicleInfo, pkg.NewDomainError("INVALID_IMAGE", "Images must be base64 encoded", err, http.StatusBadRequest)
	}
	for _, img := range images {
		if len(img.Data) > maxImageBytes {
			return nil, payload.VehicleInfo, errImageTooLarge
		}
	}
	return images, payload.VehicleInfo, nil
}

func mapAssessmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNoImages):
		return pkg.NewDomainErrorSimple("NO_IMAGES", "At least one image is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidImage):
		return pkg.NewDomainError("INVALID_IMAGE", "Uploaded files must be images", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAssessmentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAssessmentNotFound):
		return pkg.NewDomainErrorSimple("ASSESSMENT_NOT_FOUND", "Assessment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAssessmentParse):
		return pkg.NewDomainError("ASSESSMENT_PARSE_ERROR", "Failed to parse assessment", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrModelUpstream):
		return pkg.NewDomainError("MODEL_UPSTREAM_ERROR", err.Error(), err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrModelNotConfigured):
		return pkg.NewDomainError("MODEL_NOT_CONFIGURED", "No vision model is configured", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
