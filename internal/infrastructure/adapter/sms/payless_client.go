// Package sms implements the notification.Sender port against the Payless
// SMS gateway. The gateway is a legacy HTTP API: parameters travel as query
// string values on a GET request and the response body may or may not be
// JSON.
package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	errs "github.com/payless-tz/payment-reconciler/internal/domain/error"
	coreport "github.com/payless-tz/payment-reconciler/internal/domain/port/core"
	"github.com/payless-tz/payment-reconciler/internal/domain/port/notification"
)

// Config holds the gateway credentials and endpoint.
type Config struct {
	BaseURL  string
	APIKey   string
	Password string
	Sender   string
	Timeout  time.Duration
}

// DefaultSender is the registered alphanumeric sender ID.
const DefaultSender = "Payless"

// Client is a Payless SMS gateway client implementing notification.Sender.
type Client struct {
	cfg    Config
	http   *http.Client
	logger coreport.Logger
}

// NewClient creates a gateway client. BaseURL and APIKey are required; the
// caller validates configuration at startup, so this constructor only fills
// defaults.
func NewClient(cfg Config, logger coreport.Logger) *Client {
	if cfg.Sender == "" {
		cfg.Sender = DefaultSender
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// gatewayResponse covers the JSON shape the gateway returns on success.
// Plain-text bodies are tolerated and treated as success on 2xx.
type gatewayResponse struct {
	MessageID string `json:"messageId"`
	Message   string `json:"message"`
}

// Send delivers one message through the gateway.
func (c *Client) Send(ctx context.Context, to, message string) (*notification.Result, error) {
	trackingID := uuid.NewString()

	params := url.Values{}
	params.Set("api_key", c.cfg.APIKey)
	params.Set("password", c.cfg.Password)
	params.Set("action", "send_sms")
	params.Set("from", c.cfg.Sender)
	params.Set("to", to)
	params.Set("message", message)
	params.Set("_id", trackingID)

	endpoint := c.cfg.BaseURL + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &errs.NotificationError{To: to, Reason: "building request", Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "Payless-SMS-Service/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("SMS gateway request failed", map[string]any{
			"to":          to,
			"tracking_id": trackingID,
			"error":       err.Error(),
		})
		return nil, &errs.NotificationError{To: to, Reason: "gateway unreachable", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &errs.NotificationError{To: to, Reason: "reading response", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("SMS gateway rejected message", map[string]any{
			"to":          to,
			"tracking_id": trackingID,
			"status":      resp.StatusCode,
		})
		return nil, &errs.NotificationError{
			To:     to,
			Reason: fmt.Sprintf("gateway returned %d", resp.StatusCode),
		}
	}

	// The gateway sometimes answers with plain text on success.
	var parsed gatewayResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		parsed = gatewayResponse{Message: string(body)}
	}
	messageID := parsed.MessageID
	if messageID == "" {
		messageID = trackingID
	}

	c.logger.Info("SMS dispatched", map[string]any{
		"to":          to,
		"tracking_id": trackingID,
		"message_id":  messageID,
	})
	return &notification.Result{
		Success:   true,
		Message:   "SMS sent successfully",
		MessageID: messageID,
	}, nil
}
