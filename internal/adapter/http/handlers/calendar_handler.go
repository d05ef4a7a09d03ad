package handlers

import (
	"errors"
	"net/http"
	"time"

	request "damage_report/internal/adapter/http/dto/request"
	response "damage_report/internal/adapter/http/dto/response"
	"damage_report/internal/usecase"
	"damage_report/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCalendarPayload = pkg.NewDomainErrorSimple("INVALID_CALENDAR_INPUT", "platform, content and scheduledAt are required", http.StatusBadRequest)
	errInvalidCalendarQuery   = pkg.NewDomainErrorSimple("INVALID_CALENDAR_RANGE", "from and to must be RFC3339 or YYYY-MM-DD", http.StatusBadRequest)
)

type CalendarHandler struct {
	usecase usecase.ICalendarUseCase
	now     func() time.Time
}

func NewCalendarHandler(uc usecase.ICalendarUseCase) *CalendarHandler {
	return &CalendarHandler{usecase: uc, now: time.Now}
}

// Schedule godoc
// @Summary      Schedule a post
// @Tags         calendar
// @Accept       json
// @Produce      json
// @Param        body  body      request.SchedulePostRequest  true  "Post"
// @Success      201   {object}  entities.CalendarPost
// @Failure      400   {object}  pkg.HTTPError
// @Router       /calendar/posts [post]
func (h *CalendarHandler) Schedule(c *gin.Context) {
	var payload request.SchedulePostRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCalendarPayload.HTTPStatus, errInvalidCalendarPayload.ToHTTPError())
		return
	}

	post, err := h.usecase.Schedule(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapCalendarError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, post)
}

// List godoc
// @Summary      List scheduled posts
// @Description  Posts scheduled in [from, to). Defaults to the current month.
// @Tags         calendar
// @Produce      json
// @Param        from  query     string  false  "RFC3339 or YYYY-MM-DD"
// @Param        to    query     string  false  "RFC3339 or YYYY-MM-DD"
// @Success      200   {object}  response.CalendarPostsResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /calendar/posts [get]
func (h *CalendarHandler) List(c *gin.Context) {
	var q request.ListPostsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidCalendarQuery.HTTPStatus, errInvalidCalendarQuery.ToHTTPError())
		return
	}
	defFrom, defTo := usecase.MonthBounds(h.now())
	from, to, err := q.Resolve(defFrom, defTo)
	if err != nil {
		c.JSON(errInvalidCalendarQuery.HTTPStatus, errInvalidCalendarQuery.ToHTTPError())
		return
	}

	posts, err := h.usecase.List(c.Request.Context(), from, to)
	if err != nil {
		appErr := mapCalendarError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCalendarPosts(posts))
}

// Delete godoc
// @Summary      Delete a scheduled post
// @Tags         calendar
// @Param        id   path  string  true  "Post ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /calendar/posts/{id} [delete]
func (h *CalendarHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapCalendarError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapCalendarError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCalendarPost):
		return pkg.NewDomainError("INVALID_CALENDAR_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCalendarRange):
		return pkg.NewDomainError("INVALID_CALENDAR_RANGE", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCalendarPostNotFound):
		return pkg.NewDomainErrorSimple("CALENDAR_POST_NOT_FOUND", "Calendar post not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
