// Package notify sends push notifications to users through an external
// notification service. Delivery is best-effort: callers log failures and
// never let them affect the result of the operation that triggered them.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Data is the payload of a push notification.
type Data struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
	DocID   string `json:"docId"`
}

// Message is a push notification addressed to a topic.
type Message struct {
	Data  Data   `json:"data"`
	Topic string `json:"topic"`
}

// Notifier sends push notifications.
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}

// HTTPNotifier posts notification messages as JSON to a webhook endpoint.
type HTTPNotifier struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewHTTPNotifier creates a notifier that posts to the given endpoint.
// The API key is sent as a bearer credential when non-empty.
func NewHTTPNotifier(endpoint, apiKey string) *HTTPNotifier {
	return &HTTPNotifier{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Send posts the message to the notification endpoint.
func (n *HTTPNotifier) Send(ctx context.Context, msg Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if n.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+n.apiKey)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("notification endpoint returned status %d", resp.StatusCode)
	}
	return nil
}
