package notifier

import "context"

// Notifier delivers run reports to an operator channel. Implementations
// own their retry policy.
type Notifier interface {
	SendReport(ctx context.Context, text string) error
}

// NoopNotifier is used when no Telegram credentials are configured.
type NoopNotifier struct{}

func NewNoopNotifier() *NoopNotifier { return &NoopNotifier{} }

func (n *NoopNotifier) SendReport(_ context.Context, _ string) error { return nil }
