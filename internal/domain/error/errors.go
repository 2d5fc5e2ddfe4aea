package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeMissingDateRange     = 4001
	CodeMissingPaymentMethod = 4002
	CodeInvalidPaymentMethod = 4003
	CodeMissingTransactionID = 4004
	CodeInvalidPhoneNumber   = 4005
	CodeMissingMessage       = 4006
	CodeEmptyFile            = 4007
	CodeUnsupportedFileType  = 4008
	CodeColumnNotFound       = 4009
	CodeUnauthenticated      = 4010

	// 5xxx - Server errors
	CodeInternalServer = 5000
	CodeRecordStore    = 5001
	CodeNotification   = 5002
	CodeFileParse      = 5003
)

// Base error types
var (
	// ErrUnauthenticated is returned when the caller carries no valid session
	ErrUnauthenticated = errors.New("caller is not authenticated")

	// ErrMissingDateRange is returned when startDate or endDate is absent
	ErrMissingDateRange = errors.New("start date and end date are required")

	// ErrMissingPaymentMethod is returned when no payment method was supplied
	ErrMissingPaymentMethod = errors.New("payment method is required")

	// ErrInvalidPaymentMethod is returned for an unrecognized payment method
	ErrInvalidPaymentMethod = errors.New("unknown payment method")

	// ErrMissingTransactionIDs is returned when an upload carries no transaction IDs
	ErrMissingTransactionIDs = errors.New("transaction IDs are required")

	// ErrInvalidPhoneNumber is returned when the destination number has an unexpected shape
	ErrInvalidPhoneNumber = errors.New("invalid phone number format")

	// ErrMissingMessage is returned when a notification request lacks a number or body
	ErrMissingMessage = errors.New("phone number and message are required")

	// ErrEmptyFile is returned when an uploaded spreadsheet contains no data rows
	ErrEmptyFile = errors.New("uploaded file is empty")

	// ErrUnsupportedFileType is returned for file extensions the codec cannot read
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrColumnNotFound is returned when the expected ID column is absent from an upload
	ErrColumnNotFound = errors.New("expected column not found in uploaded file")

	// ErrRecordStore is returned when a record-store query fails
	ErrRecordStore = errors.New("record store query failed")

	// ErrNotification is returned when the SMS provider rejects or fails a send
	ErrNotification = errors.New("notification delivery failed")

	// ErrFileParse is returned when an uploaded file cannot be parsed
	ErrFileParse = errors.New("failed to parse uploaded file")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return CodeUnauthenticated
	case errors.Is(err, ErrMissingDateRange):
		return CodeMissingDateRange
	case errors.Is(err, ErrMissingPaymentMethod):
		return CodeMissingPaymentMethod
	case errors.Is(err, ErrInvalidPaymentMethod):
		return CodeInvalidPaymentMethod
	case errors.Is(err, ErrMissingTransactionIDs):
		return CodeMissingTransactionID
	case errors.Is(err, ErrInvalidPhoneNumber):
		return CodeInvalidPhoneNumber
	case errors.Is(err, ErrMissingMessage):
		return CodeMissingMessage
	case errors.Is(err, ErrEmptyFile):
		return CodeEmptyFile
	case errors.Is(err, ErrUnsupportedFileType):
		return CodeUnsupportedFileType
	case errors.Is(err, ErrColumnNotFound):
		return CodeColumnNotFound
	case errors.Is(err, ErrRecordStore):
		return CodeRecordStore
	case errors.Is(err, ErrNotification):
		return CodeNotification
	case errors.Is(err, ErrFileParse):
		return CodeFileParse
	default:
		return CodeInternalServer
	}
}

// IsInvalidInput reports whether the error is caller-correctable: raised by
// validation before any I/O happened.
func IsInvalidInput(err error) bool {
	for _, target := range []error{
		ErrMissingDateRange,
		ErrMissingPaymentMethod,
		ErrInvalidPaymentMethod,
		ErrMissingTransactionIDs,
		ErrInvalidPhoneNumber,
		ErrMissingMessage,
		ErrEmptyFile,
		ErrUnsupportedFileType,
		ErrColumnNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// QueryError wraps a record-store failure with the operation that issued it
type QueryError struct {
	Operation string
	Err       error
}

// Error implements the error interface for QueryError
func (e *QueryError) Error() string {
	return fmt.Sprintf("record store failure during %s: %v", e.Operation, e.Err)
}

// Unwrap returns the underlying error
func (e *QueryError) Unwrap() error {
	return e.Err
}

// Is lets QueryError match ErrRecordStore in errors.Is chains
func (e *QueryError) Is(target error) bool {
	return target == ErrRecordStore
}

// LogFields returns a map of fields for structured logging
func (e *QueryError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "record_store_error",
		"operation":  e.Operation,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e),
	}
}

// NotificationError wraps an SMS provider failure with delivery context
type NotificationError struct {
	To     string
	Reason string
	Err    error
}

// Error implements the error interface for NotificationError
func (e *NotificationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("notification to %s failed: %s: %v", e.To, e.Reason, e.Err)
	}
	return fmt.Sprintf("notification to %s failed: %s", e.To, e.Reason)
}

// Unwrap returns the underlying error
func (e *NotificationError) Unwrap() error {
	return e.Err
}

// Is lets NotificationError match ErrNotification in errors.Is chains
func (e *NotificationError) Is(target error) bool {
	return target == ErrNotification
}

// LogFields returns a map of fields for structured logging
func (e *NotificationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "notification_error",
		"to":         e.To,
		"reason":     e.Reason,
		"error_code": ErrorCode(e),
	}
}
