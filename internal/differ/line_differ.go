package differ

import (
	"strings"

	"github.com/aleister1102/gamewatch/internal/snapshot"
	"github.com/rs/zerolog"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// LineDiffer compares line-based snapshots. The diff runs in line mode through
// diffmatchpatch; lines that merely moved within the file appear on both sides
// of the raw diff and are filtered out, leaving pure membership changes.
type LineDiffer struct {
	dmp    *diffmatchpatch.DiffMatchPatch
	logger zerolog.Logger
}

// NewLineDiffer creates a new LineDiffer
func NewLineDiffer(logger zerolog.Logger) *LineDiffer {
	return &LineDiffer{
		dmp:    diffmatchpatch.New(),
		logger: logger.With().Str("component", "LineDiffer").Logger(),
	}
}

// Diff computes added and removed lines between two line sets.
func (ld *LineDiffer) Diff(previous, current snapshot.LineSet) LineDiffResult {
	prevText := joinLines(previous)
	currText := joinLines(current)

	chars1, chars2, lineArray := ld.dmp.DiffLinesToChars(prevText, currText)
	diffs := ld.dmp.DiffMain(chars1, chars2, false)
	diffs = ld.dmp.DiffCharsToLines(diffs, lineArray)

	addedCount := make(map[string]int)
	removedCount := make(map[string]int)
	var addedOrder, removedOrder []string

	for _, diff := range diffs {
		for _, line := range splitDiffLines(diff.Text) {
			switch diff.Type {
			case diffmatchpatch.DiffInsert:
				if addedCount[line] == 0 {
					addedOrder = append(addedOrder, line)
				}
				addedCount[line]++
			case diffmatchpatch.DiffDelete:
				if removedCount[line] == 0 {
					removedOrder = append(removedOrder, line)
				}
				removedCount[line]++
			}
		}
	}

	result := LineDiffResult{}
	for _, line := range addedOrder {
		// A line deleted in one place and inserted in another only moved
		if removedCount[line] == 0 {
			result.Added = append(result.Added, line)
		}
	}
	for _, line := range removedOrder {
		if addedCount[line] == 0 {
			result.Removed = append(result.Removed, line)
		}
	}

	ld.logger.Debug().
		Int("added", len(result.Added)).
		Int("removed", len(result.Removed)).
		Msg("Line diff computed")

	return result
}

func joinLines(lines snapshot.LineSet) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func splitDiffLines(text string) []string {
	trimmed := strings.TrimSuffix(text, "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}
