package notify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/rangeland-tools/grazeplan/internal/config"
)

// Client exposes the outbound notification operation used by the scheduler.
type Client interface {
	SendNotification(ctx context.Context, req Notification) error
}

// Notification is the payload posted to the configured webhook.
type Notification struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// WebhookClient is a resty-backed implementation of Client.
type WebhookClient struct {
	httpClient *resty.Client
}

// NewClient builds a webhook notifier from the provided configuration values.
func NewClient(cfg config.NotifyConfig) *WebhookClient {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(cfg.WebhookURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	if cfg.AuthToken != "" {
		restyClient.SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.AuthToken))
	}

	return &WebhookClient{httpClient: restyClient}
}

// apiError covers the common {"error": "..."} shape webhook receivers return.
type apiError struct {
	Error string `json:"error"`
}

// SendNotification posts the notification to the webhook.
func (c *WebhookClient) SendNotification(ctx context.Context, req Notification) error {
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(req).
		SetError(apiErr).
		Post("")
	if err != nil {
		return fmt.Errorf("send notification: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("notification webhook error: code=%d, message=%s", resp.StatusCode(), apiErr.Error)
	}

	return nil
}
