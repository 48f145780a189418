package diff

import (
	"fmt"
	"strings"
)

// Stats holds per-category counts for a comparison result.
type Stats struct {
	KeyDiffs   int `json:"key_diffs"`
	TypeDiffs  int `json:"type_diffs"`
	ValueDiffs int `json:"value_diffs"`
	ArrayDiffs int `json:"array_diffs"`
}

// CollectStats counts the records in each category of a result.
func CollectStats(r *Result) Stats {
	return Stats{
		KeyDiffs:   len(r.Keys),
		TypeDiffs:  len(r.Types),
		ValueDiffs: len(r.Values),
		ArrayDiffs: len(r.Arrays),
	}
}

// Total returns the number of records across all categories.
func (s Stats) Total() int {
	return s.KeyDiffs + s.TypeDiffs + s.ValueDiffs + s.ArrayDiffs
}

// Summary renders a one-line human-readable digest of the counts.
func (s Stats) Summary() string {
	if s.Total() == 0 {
		return "No differences found"
	}

	parts := []string{}
	if s.KeyDiffs > 0 {
		parts = append(parts, fmt.Sprintf("%d key", s.KeyDiffs))
	}
	if s.TypeDiffs > 0 {
		parts = append(parts, fmt.Sprintf("%d type", s.TypeDiffs))
	}
	if s.ValueDiffs > 0 {
		parts = append(parts, fmt.Sprintf("%d value", s.ValueDiffs))
	}
	if s.ArrayDiffs > 0 {
		parts = append(parts, fmt.Sprintf("%d array", s.ArrayDiffs))
	}

	return fmt.Sprintf("%s differences (%d total)", strings.Join(parts, ", "), s.Total())
}
