package notify

import (
	"context"

	"claritext/internal/infra/notifier"
)

// DiscordChannel adapts the Discord webhook notifier to the Channel
// interface.
type DiscordChannel struct {
	config   notifier.DiscordConfig
	notifier *notifier.DiscordNotifier
}

func NewDiscordChannel(config notifier.DiscordConfig) *DiscordChannel {
	return &DiscordChannel{
		config:   config,
		notifier: notifier.NewDiscordNotifier(config),
	}
}

func (c *DiscordChannel) Name() string {
	return "discord"
}

func (c *DiscordChannel) IsEnabled() bool {
	return c.config.Enabled && c.config.WebhookURL != ""
}

func (c *DiscordChannel) Send(ctx context.Context, report *notifier.Report) error {
	if !c.IsEnabled() {
		return ErrChannelDisabled
	}
	if report == nil {
		return ErrInvalidReport
	}
	return c.notifier.NotifyDigest(ctx, report)
}
