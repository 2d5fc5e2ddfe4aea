package routes

import (
	coreport "github.com/payless-tz/payment-reconciler/internal/domain/port/core"
	"github.com/payless-tz/payment-reconciler/internal/infrastructure/adapter/api/handler"
	"github.com/payless-tz/payment-reconciler/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API. Every route sits
// behind the auth gate: an unauthenticated caller is rejected before any
// record-store query runs.
func SetupRoutes(
	router *gin.Engine,
	authSecret string,
	paymentHandler *handler.PaymentHandler,
	refundHandler *handler.RefundHandler,
	smsHandler *handler.SMSHandler,
) {
	api := router.Group("/api", middleware.AuthRequired(authSecret))
	{
		// GET /api/payments
		api.GET("/payments", paymentHandler.List)

		// GET /api/refunds, /api/refunds/export; POST /api/refunds/upload
		api.GET("/refunds", refundHandler.ListByDateRange)
		api.GET("/refunds/export", refundHandler.Export)
		api.POST("/refunds/upload", refundHandler.Upload)

		// POST /api/sms/send
		api.POST("/sms/send", smsHandler.Send)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS())
}
