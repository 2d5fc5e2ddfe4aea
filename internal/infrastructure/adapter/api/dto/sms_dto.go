package dto

// SendSMSRequest is the body of POST /api/sms/send.
type SendSMSRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Message     string `json:"message" binding:"required"`
}

// SendSMSResponse reports the delivery outcome.
type SendSMSResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    *SMSSendData `json:"data,omitempty"`
}

// SMSSendData carries provider metadata for a delivered message.
type SMSSendData struct {
	MessageID string `json:"messageId"`
}
