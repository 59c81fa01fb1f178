package differ

import (
	"reflect"

	"github.com/aleister1102/gamewatch/internal/snapshot"
	"github.com/rs/zerolog"
)

// DocumentDiffer compares structured snapshots key by key: a key present only
// in current is an addition, only in previous a removal, present in both with
// differing fields a modification.
type DocumentDiffer struct {
	logger zerolog.Logger
}

// NewDocumentDiffer creates a new DocumentDiffer
func NewDocumentDiffer(logger zerolog.Logger) *DocumentDiffer {
	return &DocumentDiffer{
		logger: logger.With().Str("component", "DocumentDiffer").Logger(),
	}
}

// Diff computes added, removed and modified entries between two documents.
func (dd *DocumentDiffer) Diff(previous, current snapshot.Document) DocumentDiffResult {
	result := DocumentDiffResult{
		Added:    make(map[string]snapshot.Entry),
		Removed:  make(map[string]snapshot.Entry),
		Modified: make(map[string]EntryChanges),
	}

	for key, currEntry := range current {
		prevEntry, exists := previous[key]
		if !exists {
			result.Added[key] = currEntry
			continue
		}
		if changes := diffEntries(prevEntry, currEntry); len(changes) > 0 {
			result.Modified[key] = changes
		}
	}

	for key, prevEntry := range previous {
		if _, exists := current[key]; !exists {
			result.Removed[key] = prevEntry
		}
	}

	added, removed, modified := result.Counts()
	dd.logger.Debug().
		Int("added", added).
		Int("removed", removed).
		Int("modified", modified).
		Msg("Document diff computed")

	return result
}

// diffEntries compares two entries field by field. Fields present on only one
// side are reported as a change from or to nil.
func diffEntries(previous, current snapshot.Entry) EntryChanges {
	changes := make(EntryChanges)

	for field, currValue := range current {
		prevValue, exists := previous[field]
		if !exists {
			changes[field] = FieldChange{Old: nil, New: currValue}
			continue
		}
		if !reflect.DeepEqual(prevValue, currValue) {
			changes[field] = FieldChange{Old: prevValue, New: currValue}
		}
	}

	for field, prevValue := range previous {
		if _, exists := current[field]; !exists {
			changes[field] = FieldChange{Old: prevValue, New: nil}
		}
	}

	return changes
}
