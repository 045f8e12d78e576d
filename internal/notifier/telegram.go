package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

// Delivery defaults. Reports are best-effort: the scheduler logs a
// delivery failure but never fails a run over one.
const (
	defaultAPIBase    = "https://api.telegram.org"
	defaultMaxRetries = 3
	defaultRetryDelay = time.Second
)

// TelegramNotifier delivers run reports via the Telegram Bot API.
type TelegramNotifier struct {
	BotToken   string
	ChatID     string
	APIBase    string
	MaxRetries int
	RetryDelay time.Duration
	Client     *http.Client
}

// NewTelegramNotifier creates a notifier with optional proxy support
// and the default retry policy.
func NewTelegramNotifier(botToken, chatID, proxyURL string) *TelegramNotifier {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &TelegramNotifier{
		BotToken:   botToken,
		ChatID:     chatID,
		APIBase:    defaultAPIBase,
		MaxRetries: defaultMaxRetries,
		RetryDelay: defaultRetryDelay,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

// SendReport delivers one report to the configured chat, retrying
// transient failures with exponential backoff until MaxRetries is
// exhausted or ctx is cancelled.
func (t *TelegramNotifier) SendReport(ctx context.Context, text string) error {
	var lastErr error
	for attempt := 0; attempt <= t.MaxRetries; attempt++ {
		if err := t.send(ctx, text); err != nil {
			lastErr = err
			delay := t.RetryDelay << uint(attempt)
			log.Printf("[WARN] telegram delivery failed (attempt %d/%d): %v, retrying in %v",
				attempt+1, t.MaxRetries+1, err, delay)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
			continue
		}
		return nil
	}
	return fmt.Errorf("telegram delivery failed after %d attempts: %w", t.MaxRetries+1, lastErr)
}

// send posts a single sendMessage call.
func (t *TelegramNotifier) send(ctx context.Context, text string) error {
	payload, err := json.Marshal(map[string]string{
		"chat_id":    t.ChatID,
		"text":       text,
		"parse_mode": "HTML",
	})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", t.APIBase, t.BotToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := t.Client.Do(req)
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram API: status %d, body: %s", resp.StatusCode, string(body))
	}
	return nil
}
