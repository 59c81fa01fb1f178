package gamedata

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/aleister1102/gamewatch/internal/errorwrapper"
	"github.com/aleister1102/gamewatch/internal/snapshot"
)

// ParseTextLines converts a raw text payload into a LineSet. The gamedata text
// endpoints serve plain key=value lines; an empty body or an HTML error page
// means the fetch went wrong and must not overwrite the snapshot.
func ParseTextLines(raw []byte) (snapshot.LineSet, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, errorwrapper.NewError("text payload is empty")
	}
	if !utf8.Valid(raw) {
		return nil, errorwrapper.NewError("text payload is not valid UTF-8")
	}
	if looksLikeHTML(raw) {
		return nil, errorwrapper.NewError("text payload looks like an HTML error page")
	}

	normalized := strings.ReplaceAll(string(raw), "\r\n", "\n")
	lines := strings.Split(normalized, "\n")

	// Drop the trailing empty element produced by a final newline
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return snapshot.LineSet(lines), nil
}

func looksLikeHTML(raw []byte) bool {
	head := strings.ToLower(string(bytes.TrimSpace(raw)))
	return strings.HasPrefix(head, "<!doctype") || strings.HasPrefix(head, "<html")
}
