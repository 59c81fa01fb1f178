package snapshot

import (
	"sort"
	"strings"
)

// Entry is a single keyed record inside a structured snapshot.
type Entry map[string]any

// Document is the structured snapshot shape: a set of records compared key by key.
// A missing previous snapshot is represented by an empty Document.
type Document map[string]Entry

// Keys returns the document keys in sorted order for deterministic iteration.
func (d Document) Keys() []string {
	keys := make([]string, 0, len(d))
	for key := range d {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// LineSet is the line-based snapshot shape. Line order is preserved for
// persistence, comparison is by membership.
type LineSet []string

// Members returns the set of lines for membership checks.
func (ls LineSet) Members() map[string]struct{} {
	members := make(map[string]struct{}, len(ls))
	for _, line := range ls {
		members[line] = struct{}{}
	}
	return members
}

// Encode renders the line set back to its newline-delimited file form.
func (ls LineSet) Encode() []byte {
	if len(ls) == 0 {
		return []byte{}
	}
	return []byte(strings.Join(ls, "\n") + "\n")
}
