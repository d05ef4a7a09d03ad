package routes

import (
	"context"
	"fmt"

	_ "damage_report/docs"
	"damage_report/internal/adapter/http/handlers"
	"damage_report/internal/adapter/http/middleware"
	"damage_report/internal/config"
	"damage_report/internal/infrastructure/llm"
	"damage_report/internal/infrastructure/payments"
	"damage_report/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers are the HTTP entry points mounted by NewRouter.
type Handlers struct {
	Assessment *handlers.AssessmentHandler
	PartSearch *handlers.PartSearchHandler
	Payment    *handlers.PaymentHandler
	Content    *handlers.ContentHandler
	Calendar   *handlers.CalendarHandler
}

// Run wires stores, model providers and the payment gateway, then serves
// HTTP on cfg.Port until the listener fails.
func Run(ctx context.Context, cfg config.Config) error {
	st, err := newStores(ctx, cfg)
	if err != nil {
		return fmt.Errorf("storage init failed: %w", err)
	}
	defer st.Close()

	models, err := llm.NewRegistry(ctx, cfg.LLM)
	if err != nil {
		return fmt.Errorf("llm init failed: %w", err)
	}
	defer models.Close()

	gateway, err := payments.NewCheckoutGateway(cfg.Payments)
	if err != nil {
		return fmt.Errorf("payment gateway init failed: %w", err)
	}

	paymentUseCase := usecase.NewPaymentUseCase(st.paymentStatus, gateway, usecase.PaymentSettings{
		Currency:         cfg.Payments.Currency,
		FullReportCents:  cfg.Payments.FullReportPriceCents,
		EbayUpgradeCents: cfg.Payments.EbayUpgradePriceCents,
		PublicBaseURL:    cfg.PublicBaseURL,
	})
	if paymentUseCase.DemoMode() {
		zap.L().Warn("[payment] no processor credential, running in demo mode")
	}

	assessmentUseCase := usecase.NewAssessmentUseCase(st.assessments, models.Get(cfg.LLM.Provider))
	partSearchUseCase := usecase.NewPartSearchUseCase(st.assessments, paymentUseCase)
	contentUseCase := usecase.NewContentUseCase(models.Models(), cfg.LLM.Provider)
	calendarUseCase := usecase.NewCalendarUseCase(st.calendar)

	router := NewRouter(Handlers{
		Assessment: handlers.NewAssessmentHandler(assessmentUseCase, paymentUseCase),
		PartSearch: handlers.NewPartSearchHandler(partSearchUseCase),
		Payment:    handlers.NewPaymentHandler(paymentUseCase, cfg.PublicBaseURL),
		Content:    handlers.NewContentHandler(contentUseCase),
		Calendar:   handlers.NewCalendarHandler(calendarUseCase),
	})

	zap.L().Info("[http] listening",
		zap.String("port", cfg.Port),
		zap.String("storage", cfg.Storage.Backend),
		zap.String("payment_status_storage", cfg.Storage.PaymentStatusBackend),
		zap.String("vision_provider", cfg.LLM.Provider))
	return router.Run(":" + cfg.Port)
}

// NewRouter mounts every route on a fresh engine.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(), middleware.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	root := router.Group("")
	addPingRoutes(root)
	addAssessmentRoutes(root, h.Assessment, h.PartSearch)
	addPaymentRoutes(root, h.Payment)
	addContentRoutes(root, h.Content, h.Calendar)
	return router
}
