package routes

import (
	"damage_report/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathContent  = "/content"
	PathCalendar = "/calendar"
)

func addContentRoutes(rg *gin.RouterGroup, contentHandler *handlers.ContentHandler, calendarHandler *handlers.CalendarHandler) {
	rg.POST(PathContent+"/generate", contentHandler.Generate)

	calendar := rg.Group(PathCalendar)
	{
		calendar.POST("/posts", calendarHandler.Schedule)
		calendar.GET("/posts", calendarHandler.List)
		calendar.DELETE("/posts/:id", calendarHandler.Delete)
	}
}
