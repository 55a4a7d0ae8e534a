package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"sge-logistics/internal/core/httpclient"
	"sge-logistics/internal/features/notifications/domain"
)

// MailAPIMailer implements ports.Mailer against a JSON send endpoint.
type MailAPIMailer struct {
	apiURL string
	apiKey string
	from   string
	client *http.Client
}

// NewMailAPIMailer creates a new MailAPIMailer.
func NewMailAPIMailer(apiURL, apiKey, from string) *MailAPIMailer {
	return &MailAPIMailer{
		apiURL: apiURL,
		apiKey: apiKey,
		from:   from,
		client: httpclient.NewClient(10 * time.Second),
	}
}

type sendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Send delivers one message through the mail API.
func (m *MailAPIMailer) Send(ctx context.Context, msg domain.Message) error {
	payload, err := json.Marshal(sendRequest{
		From:    m.from,
		To:      msg.To,
		Subject: msg.Subject,
		Body:    msg.Body,
	})
	if err != nil {
		return fmt.Errorf("adapter: failed to marshal mail payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.apiURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("adapter: failed to create mail request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.apiKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("adapter: mail request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("adapter: mail API returned status %d", resp.StatusCode)
	}

	return nil
}
