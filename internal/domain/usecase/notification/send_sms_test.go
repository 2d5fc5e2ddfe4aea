package notification

import (
	"context"
	"testing"
	"time"

	errs "github.com/payless-tz/payment-reconciler/internal/domain/error"
	notifport "github.com/payless-tz/payment-reconciler/internal/domain/port/notification"
	"github.com/payless-tz/payment-reconciler/internal/domain/port/usecase"
	coremocks "github.com/payless-tz/payment-reconciler/mocks/port/core"
	notifmocks "github.com/payless-tz/payment-reconciler/mocks/port/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSMSService(t *testing.T) (*Service, *notifmocks.MockSender, *coremocks.MockTimeProvider) {
	mockSender := notifmocks.NewMockSender(t)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()

	return NewService(mockSender, DefaultPhoneRules(), mockTime, mockLogger), mockSender, mockTime
}

func TestPhoneRulesValid(t *testing.T) {
	rules := DefaultPhoneRules()

	testCases := []struct {
		name     string
		number   string
		expected bool
	}{
		{"InternationalPlus", "+255712345678", true},
		{"International", "255712345678", true},
		{"Local", "0712345678", true},
		{"TooShortLocal", "071234567", false},
		{"TooLongLocal", "07123456789", false},
		{"TooShortInternational", "25571234567", false},
		{"Letters", "0712E45678", false},
		{"WrongCountryCode", "+254712345678", false},
		{"Empty", "", false},
		{"PlusOnly", "+", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, rules.Valid(tc.number))
		})
	}
}

func TestSendSMS(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid request reaches the provider", func(t *testing.T) {
		svc, mockSender, _ := newSMSService(t)

		mockSender.EXPECT().Send(mock.Anything, "255712345678", "Your token is ready").
			Return(&notifport.Result{Success: true, Message: "SMS sent successfully", MessageID: "msg-1"}, nil).Once()

		resp, err := svc.SendSMS(ctx, usecase.SendSMSRequest{
			PhoneNumber: "255712345678",
			Message:     "Your token is ready",
		})

		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, "msg-1", resp.MessageID)
	})

	t.Run("Spaces stripped before validation", func(t *testing.T) {
		svc, mockSender, _ := newSMSService(t)

		mockSender.EXPECT().Send(mock.Anything, "0712345678", "hello").
			Return(&notifport.Result{Success: true}, nil).Once()

		_, err := svc.SendSMS(ctx, usecase.SendSMSRequest{
			PhoneNumber: "0712 345 678",
			Message:     "hello",
		})
		require.NoError(t, err)
	})

	t.Run("Missing fields rejected before the provider", func(t *testing.T) {
		svc, _, _ := newSMSService(t)

		_, err := svc.SendSMS(ctx, usecase.SendSMSRequest{PhoneNumber: "", Message: "hello"})
		assert.ErrorIs(t, err, errs.ErrMissingMessage)

		_, err = svc.SendSMS(ctx, usecase.SendSMSRequest{PhoneNumber: "0712345678", Message: "   "})
		assert.ErrorIs(t, err, errs.ErrMissingMessage)
	})

	t.Run("Invalid number rejected before the provider", func(t *testing.T) {
		svc, _, _ := newSMSService(t)

		_, err := svc.SendSMS(ctx, usecase.SendSMSRequest{PhoneNumber: "12345", Message: "hello"})
		assert.ErrorIs(t, err, errs.ErrInvalidPhoneNumber)
	})

	t.Run("Provider failure surfaces", func(t *testing.T) {
		svc, mockSender, _ := newSMSService(t)

		provErr := &errs.NotificationError{To: "0712345678", Reason: "gateway returned 500"}
		mockSender.EXPECT().Send(mock.Anything, "0712345678", "hello").Return(nil, provErr).Once()

		resp, err := svc.SendSMS(ctx, usecase.SendSMSRequest{PhoneNumber: "0712345678", Message: "hello"})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, errs.ErrNotification)
	})
}

func TestSendSMSAsync(t *testing.T) {
	t.Run("Dispatches in the background", func(t *testing.T) {
		svc, mockSender, mockTime := newSMSService(t)

		sent := make(chan struct{})
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		mockTime.EXPECT().WithTimeout(mock.Anything, asyncSendTimeout).
			Return(ctx, context.CancelFunc(func() {})).Once()
		mockSender.EXPECT().Send(mock.Anything, "0712345678", "async hello").
			Run(func(_ context.Context, _ string, _ string) {
				close(sent)
			}).
			Return(&notifport.Result{Success: true}, nil).Once()

		svc.SendSMSAsync(usecase.SendSMSRequest{PhoneNumber: "0712345678", Message: "async hello"})

		select {
		case <-sent:
		case <-time.After(2 * time.Second):
			t.Fatal("async send never reached the provider")
		}
	})

	t.Run("Provider failure is swallowed", func(t *testing.T) {
		svc, mockSender, mockTime := newSMSService(t)

		sent := make(chan struct{})
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		mockTime.EXPECT().WithTimeout(mock.Anything, asyncSendTimeout).
			Return(ctx, context.CancelFunc(func() {})).Once()
		provErr := &errs.NotificationError{To: "0712345678", Reason: "gateway unreachable"}
		mockSender.EXPECT().Send(mock.Anything, "0712345678", "async hello").
			Run(func(_ context.Context, _ string, _ string) {
				close(sent)
			}).
			Return(nil, provErr).Once()

		// Must not panic or block the caller.
		svc.SendSMSAsync(usecase.SendSMSRequest{PhoneNumber: "0712345678", Message: "async hello"})

		select {
		case <-sent:
		case <-time.After(2 * time.Second):
			t.Fatal("async send never reached the provider")
		}
	})
}
