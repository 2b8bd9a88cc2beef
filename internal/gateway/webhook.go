package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const deliverTimeout = 10 * time.Second

// WebhookDeliverer relays messages as a JSON POST to a configured URL
// (a mail relay, a chat hook, whatever the operator points it at).
type WebhookDeliverer struct {
	url    string
	client *http.Client
}

// NewWebhookDeliverer returns a deliverer for the given URL, or nil
// when the URL is empty so callers can pass the result straight to
// NewService as "not configured".
func NewWebhookDeliverer(url string) *WebhookDeliverer {
	if url == "" {
		return nil
	}
	return &WebhookDeliverer{
		url:    url,
		client: &http.Client{Timeout: deliverTimeout},
	}
}

// Deliver posts the message to the webhook.
func (w *WebhookDeliverer) Deliver(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encoding message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("posting to webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook responded %d", resp.StatusCode)
	}
	return nil
}
