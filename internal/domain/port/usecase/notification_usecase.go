package usecase

import "context"

// SendSMSRequest carries a user-initiated notification send.
type SendSMSRequest struct {
	PhoneNumber string
	Message     string
}

// SendSMSResponse reports the provider outcome for a delivered message.
type SendSMSResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	MessageID string `json:"messageId,omitempty"`
}

// NotificationUseCase validates and dispatches outbound SMS.
type NotificationUseCase interface {
	// SendSMS validates the destination number shape before any provider
	// call, then awaits delivery.
	//
	// Possible errors:
	// - ErrMissingMessage, ErrInvalidPhoneNumber
	// - ErrNotification
	SendSMS(ctx context.Context, req SendSMSRequest) (*SendSMSResponse, error)

	// SendSMSAsync dispatches without awaiting delivery. Failures are
	// logged, never surfaced; the caller must not assume delivery occurred.
	SendSMSAsync(req SendSMSRequest)
}
