package core

import (
	"context"
	"time"
)

// TimeProvider abstracts time operations so usecases and adapters can be
// tested with a frozen clock.
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
