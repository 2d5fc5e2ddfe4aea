package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/payless-tz/payment-reconciler/internal/domain/error"
	coreport "github.com/payless-tz/payment-reconciler/internal/domain/port/core"
	"github.com/payless-tz/payment-reconciler/internal/domain/port/usecase"
	"github.com/payless-tz/payment-reconciler/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// SMSHandler serves the notification send endpoint.
type SMSHandler struct {
	notificationUseCase usecase.NotificationUseCase
	logger              coreport.Logger
}

// NewSMSHandler creates a new SMS handler instance
func NewSMSHandler(notificationUseCase usecase.NotificationUseCase, logger coreport.Logger) *SMSHandler {
	return &SMSHandler{
		notificationUseCase: notificationUseCase,
		logger:              logger,
	}
}

// Send handles the POST /api/sms/send endpoint. Delivery failures are
// independent of any reconciliation result the caller just obtained; this
// endpoint reports only its own outcome.
func (h *SMSHandler) Send(c *gin.Context) {
	var req dto.SendSMSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeMissingMessage,
			Message: "Phone number and message are required",
		})
		return
	}

	result, err := h.notificationUseCase.SendSMS(c.Request.Context(), usecase.SendSMSRequest{
		PhoneNumber: req.PhoneNumber,
		Message:     req.Message,
	})
	if err != nil {
		if errors.Is(err, domainerr.ErrInvalidPhoneNumber) || errors.Is(err, domainerr.ErrMissingMessage) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(err),
				Message: err.Error(),
			})
			return
		}
		h.logger.Error("Error sending SMS", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Failed to send SMS",
		})
		return
	}

	resp := dto.SendSMSResponse{
		Success: result.Success,
		Message: result.Message,
	}
	if result.MessageID != "" {
		resp.Data = &dto.SMSSendData{MessageID: result.MessageID}
	}
	c.JSON(http.StatusOK, resp)
}
