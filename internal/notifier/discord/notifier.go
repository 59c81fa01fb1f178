package discord

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aleister1102/gamewatch/internal/errorwrapper"
	"github.com/aleister1102/gamewatch/internal/httpclient"
	"github.com/rs/zerolog"
)

// DiscordNotifier handles sending notifications to Discord
type DiscordNotifier struct {
	logger     zerolog.Logger
	httpClient *httpclient.HTTPClient
}

// NewDiscordNotifier creates a new DiscordNotifier instance
func NewDiscordNotifier(logger zerolog.Logger, httpClient *httpclient.HTTPClient) *DiscordNotifier {
	return &DiscordNotifier{
		logger:     logger.With().Str("module", "DiscordNotifier").Logger(),
		httpClient: httpClient,
	}
}

// SendNotification sends a message payload to the given webhook URL.
// An empty webhook URL skips delivery without error so unconfigured
// environments stay quiet.
func (dn *DiscordNotifier) SendNotification(ctx context.Context, webhookURL string, payload DiscordMessagePayload) error {
	if webhookURL == "" {
		dn.logger.Warn().Msg("Discord webhook URL is not configured, skipping notification")
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errorwrapper.WrapError(err, "failed to marshal Discord payload")
	}

	status, err := dn.httpClient.PostJSON(ctx, webhookURL, body)
	if err != nil {
		dn.logger.Error().Err(err).Msg("Failed to send Discord notification")
		return err
	}

	if status != http.StatusOK && status != http.StatusNoContent {
		dn.logger.Error().Int("status_code", status).Msg("Discord webhook rejected notification")
		return errorwrapper.NewHTTPErrorWithURL(status, "webhook delivery failed", webhookURL)
	}

	dn.logger.Info().Int("embeds", len(payload.Embeds)).Msg("Discord notification sent successfully")
	return nil
}
