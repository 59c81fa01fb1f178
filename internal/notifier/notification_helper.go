package notifier

import (
	"context"
	"errors"
	"os"

	"github.com/aleister1102/gamewatch/internal/notifier/discord"
	"github.com/rs/zerolog"
)

// NotificationHelper provides a high-level interface for sending change
// notifications. Delivery is best effort: a webhook failure is reported to
// the caller but must never block snapshot persistence.
type NotificationHelper struct {
	discordNotifier *discord.DiscordNotifier
	logger          zerolog.Logger
}

// NewNotificationHelper creates a new NotificationHelper.
func NewNotificationHelper(dn *discord.DiscordNotifier, logger zerolog.Logger) *NotificationHelper {
	return &NotificationHelper{
		discordNotifier: dn,
		logger:          logger.With().Str("module", "NotificationHelper").Logger(),
	}
}

// SendDiffNotification delivers the given payloads to the webhook in order.
// Remaining payloads are still attempted after a failure; all delivery errors
// are joined into the returned error.
func (nh *NotificationHelper) SendDiffNotification(ctx context.Context, webhookURL string, payloads []discord.DiscordMessagePayload) error {
	if len(payloads) == 0 {
		return nil
	}
	if webhookURL == "" {
		nh.logger.Warn().Msg("Webhook URL not set, skipping diff notification")
		return nil
	}

	var deliveryErrs []error
	for _, payload := range payloads {
		if err := nh.discordNotifier.SendNotification(ctx, webhookURL, payload); err != nil {
			deliveryErrs = append(deliveryErrs, err)
		}
	}

	if len(deliveryErrs) > 0 {
		nh.logger.Error().
			Int("failed", len(deliveryErrs)).
			Int("total", len(payloads)).
			Msg("Some diff notifications failed to deliver")
		return errors.Join(deliveryErrs...)
	}

	nh.logger.Info().Int("payloads", len(payloads)).Msg("Diff notification delivered")
	return nil
}

// ResolveWebhookURL picks the webhook destination for a monitor instance.
// The environment variable is the secret-provided channel and wins over any
// value from the config file.
func ResolveWebhookURL(configURL, envVar string) string {
	if envVar != "" {
		if fromEnv := os.Getenv(envVar); fromEnv != "" {
			return fromEnv
		}
	}
	return configURL
}
