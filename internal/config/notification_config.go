package config

// NotificationConfig defines configuration for notifications. Webhook URLs
// normally arrive through per-monitor environment secrets; the file values
// exist for local testing and are overridden by the environment.
type NotificationConfig struct {
	FurnidataWebhookURL  string `json:"furnidata_webhook_url,omitempty" yaml:"furnidata_webhook_url,omitempty" validate:"omitempty,url"`
	FlashTextsWebhookURL string `json:"flashtexts_webhook_url,omitempty" yaml:"flashtexts_webhook_url,omitempty" validate:"omitempty,url"`
	VariablesWebhookURL  string `json:"variables_webhook_url,omitempty" yaml:"variables_webhook_url,omitempty" validate:"omitempty,url"`
}

// NewDefaultNotificationConfig creates default notification configuration
func NewDefaultNotificationConfig() NotificationConfig {
	return NotificationConfig{}
}

// WebhookURLFor returns the config-file webhook URL for a monitor instance.
func (nc NotificationConfig) WebhookURLFor(monitorName string) string {
	switch monitorName {
	case "furnidata":
		return nc.FurnidataWebhookURL
	case "flashtexts":
		return nc.FlashTextsWebhookURL
	case "variables":
		return nc.VariablesWebhookURL
	default:
		return ""
	}
}
