package deliver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const webhookTimeout = 15 * time.Second

type Webhook struct {
	url    string
	client *http.Client
}

func NewWebhook(url string) *Webhook {
	return &Webhook{
		url:    url,
		client: &http.Client{Timeout: webhookTimeout},
	}
}

type webhookPayload struct {
	Text string `json:"text"`
}

// Post sends the text to the chat webhook as a JSON {"text": ...} body.
// Anything other than HTTP 200 counts as a failed delivery.
func (w *Webhook) Post(text string) error {
	if w.url == "" {
		return ErrNotConfigured
	}

	jsonData, err := json.Marshal(webhookPayload{Text: text})
	if err != nil {
		return fmt.Errorf("marshaling payload: %w", err)
	}

	resp, err := w.client.Post(w.url, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("posting to webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("webhook error (status %d): %s", resp.StatusCode, string(body))
	}
	return nil
}
