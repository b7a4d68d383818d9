package notify

import (
	"context"

	"claritext/internal/infra/notifier"
)

// SlackChannel adapts the Slack webhook notifier to the Channel interface.
type SlackChannel struct {
	config   notifier.SlackConfig
	notifier *notifier.SlackNotifier
}

func NewSlackChannel(config notifier.SlackConfig) *SlackChannel {
	return &SlackChannel{
		config:   config,
		notifier: notifier.NewSlackNotifier(config),
	}
}

func (c *SlackChannel) Name() string {
	return "slack"
}

func (c *SlackChannel) IsEnabled() bool {
	return c.config.Enabled && c.config.WebhookURL != ""
}

func (c *SlackChannel) Send(ctx context.Context, report *notifier.Report) error {
	if !c.IsEnabled() {
		return ErrChannelDisabled
	}
	if report == nil {
		return ErrInvalidReport
	}
	return c.notifier.NotifyDigest(ctx, report)
}
