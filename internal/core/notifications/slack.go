package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// slackTimeout bounds a single webhook delivery.
const slackTimeout = 10 * time.Second

// SlackWebhook posts notifications to a slack incoming-webhook URL.
type SlackWebhook struct {
	client     *http.Client
	webhookURL string
}

// NewSlackWebhook creates a sink for the given incoming-webhook URL.
func NewSlackWebhook(webhookURL string) *SlackWebhook {
	return &SlackWebhook{
		client:     &http.Client{Timeout: slackTimeout},
		webhookURL: webhookURL,
	}
}

// slackMessage is the incoming-webhook wire format.
type slackMessage struct {
	Text string `json:"text"`
}

// Send posts the notification as a single chat message.
func (s *SlackWebhook) Send(ctx context.Context, n Notification) error {
	msg := slackMessage{
		Text: fmt.Sprintf("%s by %s\n%s\n%s", n.Title, n.Actor, n.Body, n.Link),
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode slack payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build slack request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post to slack webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("slack webhook returned %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
