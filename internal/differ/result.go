package differ

import (
	"github.com/aleister1102/gamewatch/internal/snapshot"
)

// FieldChange records an old and new value for one field of a modified entry.
type FieldChange struct {
	Old any
	New any
}

// EntryChanges maps field names to their changes within one modified entry.
type EntryChanges map[string]FieldChange

// DocumentDiffResult is the outcome of comparing two structured snapshots.
type DocumentDiffResult struct {
	Added    map[string]snapshot.Entry
	Removed  map[string]snapshot.Entry
	Modified map[string]EntryChanges
}

// IsEmpty reports whether no changes were detected.
func (r DocumentDiffResult) IsEmpty() bool {
	return len(r.Added) == 0 && len(r.Removed) == 0 && len(r.Modified) == 0
}

// Counts returns the number of added, removed and modified entries.
func (r DocumentDiffResult) Counts() (added, removed, modified int) {
	return len(r.Added), len(r.Removed), len(r.Modified)
}

// LineDiffResult is the outcome of comparing two line-based snapshots.
// Entries are atomic lines, so there is no modification concept: a changed
// line shows up as one removal plus one addition.
type LineDiffResult struct {
	Added   []string
	Removed []string
}

// IsEmpty reports whether no changes were detected.
func (r LineDiffResult) IsEmpty() bool {
	return len(r.Added) == 0 && len(r.Removed) == 0
}

// Counts returns the number of added and removed lines.
func (r LineDiffResult) Counts() (added, removed int) {
	return len(r.Added), len(r.Removed)
}
