package notifier

import (
	"strings"
	"time"

	"github.com/aleister1102/gamewatch/internal/differ"
	"github.com/aleister1102/gamewatch/internal/notifier/discord"
)

// FormatTextDiffMessages renders a line diff as Discord payloads: a green
// additions embed and an orange deletions embed, each truncated to the embed
// description budget.
func FormatTextDiffMessages(title string, result differ.LineDiffResult) []discord.DiscordMessagePayload {
	var embeds []discord.DiscordEmbed

	if len(result.Added) > 0 {
		embeds = append(embeds, buildTextDiffEmbed(
			title+" Additions",
			renderDiffLines("+", result.Added),
			AdditionEmbedColor,
		))
	}

	if len(result.Removed) > 0 {
		embeds = append(embeds, buildTextDiffEmbed(
			title+" Deletions",
			renderDiffLines("-", result.Removed),
			RemovalEmbedColor,
		))
	}

	if len(embeds) == 0 {
		return nil
	}

	return []discord.DiscordMessagePayload{{Embeds: embeds}}
}

func buildTextDiffEmbed(title, body string, color int) discord.DiscordEmbed {
	description := truncateWithMarker(body, MaxEmbedDescriptionLength)
	return discord.NewDiscordEmbedBuilder().
		WithTitle(title).
		WithDescription("```diff\n" + description + "\n```").
		WithColor(color).
		WithTimestamp(time.Now()).
		WithFooter(EmbedFooterText, "").
		Build()
}

func renderDiffLines(prefix string, lines []string) string {
	rendered := make([]string, 0, len(lines))
	for _, line := range lines {
		rendered = append(rendered, prefix+line)
	}
	return strings.Join(rendered, "\n")
}
