package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client is the in-process consumer of the messaging gateway, used by
// the contact form. It guards non-empty inputs before calling and
// surfaces the server's error text opaquely.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient builds a client for a gateway base URL ("" disables it;
// Send then fails with ErrNotConfigured without a network call).
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// Send submits a message and returns nil on success. Failure reasons
// are opaque text suitable for inline display.
func (c *Client) Send(ctx context.Context, name, message string) error {
	name = strings.TrimSpace(name)
	message = strings.TrimSpace(message)
	if name == "" {
		return ErrEmptyName
	}
	if message == "" {
		return ErrEmptyMessage
	}
	if c.baseURL == "" {
		return ErrNotConfigured
	}

	payload, err := json.Marshal(map[string]string{"name": name, "message": message})
	if err != nil {
		return fmt.Errorf("encoding message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/messages", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.New("network error")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		return nil
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		return errors.New(body.Error)
	}
	return errors.New("failed to send message")
}
