package routes

import (
	"damage_report/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAssess  = "/assess"
	PathPayment = "/payment"
)

func addAssessmentRoutes(rg *gin.RouterGroup, assessmentHandler *handlers.AssessmentHandler, partSearchHandler *handlers.PartSearchHandler) {
	assess := rg.Group(PathAssess)
	{
		assess.POST("", assessmentHandler.Assess)
		assess.GET("/:id", assessmentHandler.GetAssessment)
		assess.GET("/:id/parts/search", partSearchHandler.Search)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payment := rg.Group(PathPayment)
	{
		payment.POST("/create-checkout", paymentHandler.CreateCheckout)
		payment.GET("/status/:id", paymentHandler.GetStatus)
		payment.POST("/status/:id", paymentHandler.UpdateStatus)
		// Processor callbacks.
		payment.POST("/webhook/:provider", paymentHandler.Webhook)
		payment.GET("/success", paymentHandler.Success)
	}
}
