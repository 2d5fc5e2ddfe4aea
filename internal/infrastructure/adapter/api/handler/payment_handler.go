package handler

import (
	"net/http"
	"strconv"

	domainerr "github.com/payless-tz/payment-reconciler/internal/domain/error"
	coreport "github.com/payless-tz/payment-reconciler/internal/domain/port/core"
	"github.com/payless-tz/payment-reconciler/internal/domain/port/usecase"
	"github.com/payless-tz/payment-reconciler/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// PaymentHandler serves the paginated payment listing.
type PaymentHandler struct {
	paymentUseCase usecase.PaymentUseCase
	logger         coreport.Logger
}

// NewPaymentHandler creates a new payment handler instance
func NewPaymentHandler(paymentUseCase usecase.PaymentUseCase, logger coreport.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentUseCase: paymentUseCase,
		logger:         logger,
	}
}

// List handles the GET /api/payments endpoint. Invalid page/limit values
// silently fall back to defaults rather than erroring; the listing is a
// read-only screen and partial input is routine.
func (h *PaymentHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	req := usecase.ListPaymentsRequest{
		Page:          page,
		PageSize:      limit,
		Search:        c.Query("search"),
		Status:        c.Query("status"),
		PaymentMethod: c.Query("paymentMethod"),
	}

	result, err := h.paymentUseCase.ListPayments(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("Error listing payments", map[string]any{
			"page":  page,
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Failed to fetch payments",
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewPaymentListResponse(result))
}
