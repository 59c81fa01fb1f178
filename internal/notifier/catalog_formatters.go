package notifier

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/aleister1102/gamewatch/internal/differ"
	"github.com/aleister1102/gamewatch/internal/notifier/discord"
	"github.com/aleister1102/gamewatch/internal/snapshot"
)

// FormatCatalogDiffMessages renders a structured diff as Discord payloads:
// one green embed per new object, one orange embed per removed object, one
// yellow embed per modified object. Bodies use Discord's diff syntax inside
// a code fence; oversized descriptions are chunked without splitting lines.
func FormatCatalogDiffMessages(title string, result differ.DocumentDiffResult) []discord.DiscordMessagePayload {
	var payloads []discord.DiscordMessagePayload

	for _, key := range sortedKeys(result.Added) {
		body := renderNewObject(result.Added[key])
		payloads = append(payloads, buildDiffPayloads(title+" New Object", key, body, AdditionEmbedColor)...)
	}

	for _, key := range sortedKeys(result.Removed) {
		body := renderRemovedObject(result.Removed[key])
		payloads = append(payloads, buildDiffPayloads(title+" Removed Object", key, body, RemovalEmbedColor)...)
	}

	modifiedKeys := make([]string, 0, len(result.Modified))
	for key := range result.Modified {
		modifiedKeys = append(modifiedKeys, key)
	}
	sort.Strings(modifiedKeys)

	for _, key := range modifiedKeys {
		body := renderModifiedObject(result.Modified[key])
		payloads = append(payloads, buildDiffPayloads(title+" Modifications", key, body, ModificationEmbedColor)...)
	}

	return payloads
}

// buildDiffPayloads wraps a diff body in fenced embeds, one payload per chunk.
func buildDiffPayloads(title, key, body string, color int) []discord.DiscordMessagePayload {
	var payloads []discord.DiscordMessagePayload
	for _, chunk := range splitIntoChunks(body, MaxEmbedDescriptionLength) {
		embed := discord.NewDiscordEmbedBuilder().
			WithTitle(title).
			WithDescription("```diff\n" + chunk + "\n```").
			WithColor(color).
			WithTimestamp(time.Now()).
			WithFooter(EmbedFooterText, "").
			AddField("Key", "`"+key+"`", true).
			Build()
		payloads = append(payloads, discord.DiscordMessagePayload{
			Embeds: []discord.DiscordEmbed{embed},
		})
	}
	return payloads
}

// renderNewObject renders every field of a new entry as an added diff line.
func renderNewObject(entry snapshot.Entry) string {
	var lines []string
	lines = append(lines, "{")
	for _, field := range sortedFields(entry) {
		lines = append(lines, fmt.Sprintf("+ %s: %s,", renderValue(field), renderValue(entry[field])))
	}
	lines = append(lines, "}")
	return strings.Join(lines, "\n")
}

// renderRemovedObject renders every field of a removed entry as a deleted diff line.
func renderRemovedObject(entry snapshot.Entry) string {
	var lines []string
	lines = append(lines, "{")
	for _, field := range sortedFields(entry) {
		lines = append(lines, fmt.Sprintf("- %s: %s,", renderValue(field), renderValue(entry[field])))
	}
	lines = append(lines, "}")
	return strings.Join(lines, "\n")
}

// renderModifiedObject renders changed fields as -/+ line pairs. Unchanged
// fields are omitted: furnitype entries carry dozens of fields and the
// interesting ones would drown in context.
func renderModifiedObject(changes differ.EntryChanges) string {
	fields := make([]string, 0, len(changes))
	for field := range changes {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var lines []string
	lines = append(lines, "{")
	for _, field := range fields {
		change := changes[field]
		lines = append(lines, fmt.Sprintf("- %s: %s,", renderValue(field), renderValue(change.Old)))
		lines = append(lines, fmt.Sprintf("+ %s: %s,", renderValue(field), renderValue(change.New)))
	}
	lines = append(lines, "}")
	return strings.Join(lines, "\n")
}

func renderValue(value any) string {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%q", fmt.Sprint(value))
	}
	return string(encoded)
}

func sortedKeys(entries map[string]snapshot.Entry) []string {
	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func sortedFields(entry snapshot.Entry) []string {
	fields := make([]string, 0, len(entry))
	for field := range entry {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}
