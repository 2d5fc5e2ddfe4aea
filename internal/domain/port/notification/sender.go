package notification

import "context"

// Result is the provider's answer to a single send attempt.
type Result struct {
	Success   bool
	Message   string
	MessageID string
}

// Sender is the outbound SMS capability. It is constructed once at process
// start from configuration and passed explicitly to whatever needs it; no
// package-level singleton exists.
type Sender interface {
	// Send delivers one message. A nil error with Success=false never
	// occurs: provider rejections come back as an error wrapping
	// ErrNotification.
	Send(ctx context.Context, to, message string) (*Result, error)
}
