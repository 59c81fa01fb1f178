package notifier

import (
	"strings"
)

// splitIntoChunks splits text into chunks of at most maxLength characters
// without breaking lines. A single line longer than maxLength becomes its own
// chunk and is truncated by the caller's budget downstream.
func splitIntoChunks(text string, maxLength int) []string {
	lines := strings.Split(text, "\n")

	var chunks []string
	var current strings.Builder

	for _, line := range lines {
		if current.Len() == 0 {
			current.WriteString(line)
			continue
		}
		if current.Len()+len(line)+1 > maxLength {
			chunks = append(chunks, current.String())
			current.Reset()
			current.WriteString(line)
		} else {
			current.WriteString("\n")
			current.WriteString(line)
		}
	}

	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}

// truncateWithMarker cuts text at maxLength and appends a truncation marker.
func truncateWithMarker(text string, maxLength int) string {
	if len(text) <= maxLength {
		return text
	}
	return text[:maxLength] + "\n...(truncated)"
}
