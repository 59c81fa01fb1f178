package notifier

// Embed colors, matching the palette the Discord channels already expect:
// green for additions, yellow for modifications, orange for removals, blue
// for informational messages.
const (
	AdditionEmbedColor     = 65280
	ModificationEmbedColor = 16776960
	RemovalEmbedColor      = 16753920
	InfoEmbedColor         = 3447003
)

// MaxEmbedDescriptionLength is the usable description budget per embed,
// leaving headroom under Discord's 2000-char hard limit for the code fence.
const MaxEmbedDescriptionLength = 1900

// EmbedFooterText is attached to every outgoing embed.
const EmbedFooterText = "gamewatch"
