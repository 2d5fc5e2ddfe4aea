// Package notification validates destination numbers and dispatches
// outbound SMS through the injected provider.
package notification

import (
	"context"
	"strings"
	"time"

	errs "github.com/payless-tz/payment-reconciler/internal/domain/error"
	coreport "github.com/payless-tz/payment-reconciler/internal/domain/port/core"
	notifport "github.com/payless-tz/payment-reconciler/internal/domain/port/notification"
	"github.com/payless-tz/payment-reconciler/internal/domain/port/usecase"
)

// PhoneRules describes the accepted subscriber number shapes. The country
// code is configuration, not a hardcoded literal: deployments outside
// Tanzania only change config.
type PhoneRules struct {
	CountryCode      string // e.g. "255"
	SubscriberDigits int    // digits after the prefix, e.g. 9
}

// DefaultPhoneRules matches Tanzanian MSISDNs.
func DefaultPhoneRules() PhoneRules {
	return PhoneRules{CountryCode: "255", SubscriberDigits: 9}
}

// asyncSendTimeout bounds fire-and-forget sends, which have no caller
// context to inherit.
const asyncSendTimeout = 30 * time.Second

// Service implements usecase.NotificationUseCase.
type Service struct {
	sender       notifport.Sender
	rules        PhoneRules
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a notification service around the injected sender.
func NewService(sender notifport.Sender, rules PhoneRules, timeProvider coreport.TimeProvider, logger coreport.Logger) *Service {
	if rules.CountryCode == "" || rules.SubscriberDigits == 0 {
		rules = DefaultPhoneRules()
	}
	return &Service{
		sender:       sender,
		rules:        rules,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// SendSMS validates input, then awaits one provider delivery. Validation
// failures never reach the provider.
func (s *Service) SendSMS(ctx context.Context, req usecase.SendSMSRequest) (*usecase.SendSMSResponse, error) {
	number := stripSpaces(req.PhoneNumber)
	if number == "" || strings.TrimSpace(req.Message) == "" {
		return nil, errs.ErrMissingMessage
	}
	if !s.rules.Valid(number) {
		return nil, errs.ErrInvalidPhoneNumber
	}

	result, err := s.sender.Send(ctx, number, req.Message)
	if err != nil {
		s.logger.Error("SMS delivery failed", map[string]any{
			"to":    number,
			"error": err.Error(),
		})
		return nil, err
	}

	return &usecase.SendSMSResponse{
		Success:   result.Success,
		Message:   result.Message,
		MessageID: result.MessageID,
	}, nil
}

// SendSMSAsync dispatches without awaiting delivery. Used for one-way alerts
// where the caller must not block on, or learn about, provider failures.
func (s *Service) SendSMSAsync(req usecase.SendSMSRequest) {
	go func() {
		ctx, cancel := s.timeProvider.WithTimeout(context.Background(), asyncSendTimeout)
		defer cancel()
		if _, err := s.SendSMS(ctx, req); err != nil {
			s.logger.Error("Async SMS delivery failed", map[string]any{
				"to":    req.PhoneNumber,
				"error": err.Error(),
			})
		}
	}()
}

// Valid reports whether the number matches one of the accepted shapes:
// +<cc><subscriber>, <cc><subscriber>, or 0<subscriber>.
func (r PhoneRules) Valid(number string) bool {
	switch {
	case strings.HasPrefix(number, "+"+r.CountryCode):
		return allDigits(number[1:]) && len(number) == 1+len(r.CountryCode)+r.SubscriberDigits
	case strings.HasPrefix(number, r.CountryCode):
		return allDigits(number) && len(number) == len(r.CountryCode)+r.SubscriberDigits
	case strings.HasPrefix(number, "0"):
		return allDigits(number) && len(number) == 1+r.SubscriberDigits
	}
	return false
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}
