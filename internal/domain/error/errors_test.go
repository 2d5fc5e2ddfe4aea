package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"MissingDateRange", ErrMissingDateRange, 4001},
		{"MissingPaymentMethod", ErrMissingPaymentMethod, 4002},
		{"InvalidPaymentMethod", ErrInvalidPaymentMethod, 4003},
		{"MissingTransactionIDs", ErrMissingTransactionIDs, 4004},
		{"InvalidPhoneNumber", ErrInvalidPhoneNumber, 4005},
		{"MissingMessage", ErrMissingMessage, 4006},
		{"EmptyFile", ErrEmptyFile, 4007},
		{"UnsupportedFileType", ErrUnsupportedFileType, 4008},
		{"ColumnNotFound", ErrColumnNotFound, 4009},
		{"Unauthenticated", ErrUnauthenticated, 4010},
		{"RecordStore", ErrRecordStore, 5001},
		{"Notification", ErrNotification, 5002},
		{"FileParse", ErrFileParse, 5003},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrMissingDateRange), 4001},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestIsInvalidInput(t *testing.T) {
	if !IsInvalidInput(ErrMissingDateRange) {
		t.Error("IsInvalidInput(ErrMissingDateRange) = false, want true")
	}
	if !IsInvalidInput(fmt.Errorf("context: %w", ErrInvalidPaymentMethod)) {
		t.Error("IsInvalidInput(wrapped ErrInvalidPaymentMethod) = false, want true")
	}
	if IsInvalidInput(ErrRecordStore) {
		t.Error("IsInvalidInput(ErrRecordStore) = true, want false")
	}
	if IsInvalidInput(errors.New("something else")) {
		t.Error("IsInvalidInput(unknown) = true, want false")
	}
}

func TestQueryError(t *testing.T) {
	baseErr := errors.New("connection refused")
	queryErr := &QueryError{
		Operation: "listing payments",
		Err:       baseErr,
	}

	expectedMsg := "record store failure during listing payments: connection refused"
	if queryErr.Error() != expectedMsg {
		t.Errorf("QueryError.Error() = %s, want %s", queryErr.Error(), expectedMsg)
	}

	if !errors.Is(queryErr, ErrRecordStore) {
		t.Error("errors.Is(queryErr, ErrRecordStore) = false, want true")
	}
	if !errors.Is(queryErr, baseErr) {
		t.Error("errors.Is(queryErr, baseErr) = false, want true")
	}

	fields := queryErr.LogFields()
	if fields["operation"] != "listing payments" {
		t.Errorf("LogFields operation = %v, want listing payments", fields["operation"])
	}
	if fields["error_code"] != CodeRecordStore {
		t.Errorf("LogFields error_code = %v, want %d", fields["error_code"], CodeRecordStore)
	}
}

func TestNotificationError(t *testing.T) {
	notifErr := &NotificationError{
		To:     "255712345678",
		Reason: "gateway returned 500",
	}

	expectedMsg := "notification to 255712345678 failed: gateway returned 500"
	if notifErr.Error() != expectedMsg {
		t.Errorf("NotificationError.Error() = %s, want %s", notifErr.Error(), expectedMsg)
	}

	if !errors.Is(notifErr, ErrNotification) {
		t.Error("errors.Is(notifErr, ErrNotification) = false, want true")
	}

	withCause := &NotificationError{To: "0712345678", Reason: "gateway unreachable", Err: errors.New("dial tcp: timeout")}
	if !errors.Is(withCause, ErrNotification) {
		t.Error("errors.Is(withCause, ErrNotification) = false, want true")
	}
	if ErrorCode(withCause) != CodeNotification {
		t.Errorf("ErrorCode(withCause) = %d, want %d", ErrorCode(withCause), CodeNotification)
	}
}
