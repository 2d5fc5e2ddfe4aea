package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/payless-tz/payment-reconciler/internal/domain/entity"
	domainerr "github.com/payless-tz/payment-reconciler/internal/domain/error"
	coreport "github.com/payless-tz/payment-reconciler/internal/domain/port/core"
	"github.com/payless-tz/payment-reconciler/internal/domain/port/usecase"
	"github.com/payless-tz/payment-reconciler/internal/infrastructure/adapter/api/dto"
	"github.com/payless-tz/payment-reconciler/internal/infrastructure/adapter/spreadsheet"
	"github.com/gin-gonic/gin"
)

// RefundHandler serves the refund extraction endpoints.
type RefundHandler struct {
	refundUseCase usecase.RefundUseCase
	logger        coreport.Logger
}

// NewRefundHandler creates a new refund handler instance
func NewRefundHandler(refundUseCase usecase.RefundUseCase, logger coreport.Logger) *RefundHandler {
	return &RefundHandler{
		refundUseCase: refundUseCase,
		logger:        logger,
	}
}

// ListByDateRange handles the GET /api/refunds endpoint.
func (h *RefundHandler) ListByDateRange(c *gin.Context) {
	rows, err := h.exportByDateRange(c)
	if err != nil {
		h.respondError(c, err, "Failed to fetch refund data")
		return
	}
	c.JSON(http.StatusOK, dto.RefundListResponse{
		Payments: rows,
		Count:    len(rows),
	})
}

// Export handles the GET /api/refunds/export endpoint: the same selection
// as ListByDateRange, delivered as an xlsx attachment.
func (h *RefundHandler) Export(c *gin.Context) {
	rows, err := h.exportByDateRange(c)
	if err != nil {
		h.respondError(c, err, "Failed to fetch refund data")
		return
	}

	data, err := spreadsheet.Serialize(rows, spreadsheet.ExportSheetName)
	if err != nil {
		h.logger.Error("Failed to serialize refund export", map[string]any{
			"rows":  len(rows),
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.CodeInternalServer,
			Message: "Failed to build export file",
		})
		return
	}

	filename := fmt.Sprintf("refunds_%s_%s_%s.xlsx",
		c.Query("paymentMethod"), c.Query("startDate"), c.Query("endDate"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// Upload handles the POST /api/refunds/upload endpoint. Two input forms are
// accepted: a multipart file (parsed server-side with the method-specific
// ID column) or a JSON body with pre-extracted transaction IDs.
func (h *RefundHandler) Upload(c *gin.Context) {
	req, err := h.bindUpload(c)
	if err != nil {
		h.respondError(c, err, "Invalid upload")
		return
	}

	report, err := h.refundUseCase.ReconcileUpload(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err, "Failed to process uploaded data")
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *RefundHandler) exportByDateRange(c *gin.Context) ([]entity.RefundExportRow, error) {
	return h.refundUseCase.ExportByDateRange(c.Request.Context(), usecase.DateRangeRequest{
		StartDate:     c.Query("startDate"),
		EndDate:       c.Query("endDate"),
		PaymentMethod: c.Query("paymentMethod"),
	})
}

func (h *RefundHandler) bindUpload(c *gin.Context) (usecase.UploadRequest, error) {
	fileHeader, fileErr := c.FormFile("file")
	if fileErr == nil {
		method := c.PostForm("paymentMethod")
		file, err := fileHeader.Open()
		if err != nil {
			return usecase.UploadRequest{}, fmt.Errorf("%w: %s", domainerr.ErrFileParse, err.Error())
		}
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			return usecase.UploadRequest{}, fmt.Errorf("%w: %s", domainerr.ErrFileParse, err.Error())
		}
		rows, err := spreadsheet.Parse(data, fileHeader.Filename)
		if err != nil {
			return usecase.UploadRequest{}, err
		}
		ids, err := spreadsheet.ExtractTransactionIDs(rows, method)
		if err != nil {
			return usecase.UploadRequest{}, err
		}
		return usecase.UploadRequest{TransactionIDs: ids, PaymentMethod: method}, nil
	}

	var body dto.UploadRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		return usecase.UploadRequest{}, domainerr.ErrMissingTransactionIDs
	}
	return usecase.UploadRequest{
		TransactionIDs: body.TransactionIDs,
		PaymentMethod:  body.PaymentMethod,
	}, nil
}

func (h *RefundHandler) respondError(c *gin.Context, err error, fallback string) {
	if domainerr.IsInvalidInput(err) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
		return
	}
	h.logger.Error("Refund operation failed", map[string]any{
		"path":  c.Request.URL.Path,
		"error": err.Error(),
	})
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: fallback,
	})
}
