package session

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/emt/dtf/pkg/diff"
	"github.com/emt/dtf/pkg/parser"
)

// OutputError is reported for any failure to persist results.
type OutputError struct {
	Path string
	Err  error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("writing output '%s': %v", e.Path, e.Err)
}

func (e *OutputError) Unwrap() error { return e.Err }

// SavedConfig is the on-disk copy of a run's configuration: which
// categories were checked, the two file names, and the ordering mode.
type SavedConfig struct {
	CheckForKeyDiffs   bool   `json:"check_for_key_diffs"`
	CheckForTypeDiffs  bool   `json:"check_for_type_diffs"`
	CheckForValueDiffs bool   `json:"check_for_value_diffs"`
	CheckForArrayDiffs bool   `json:"check_for_array_diffs"`
	FileA              string `json:"file_a"`
	FileB              string `json:"file_b"`
	ArraySameOrder     bool   `json:"array_same_order"`
}

// SavedContext is the persisted form of one comparison run: the four diff
// sequences plus the configuration that produced them, enabling a later
// replay without recomputation.
type SavedContext struct {
	KeyDiff   []diff.KeyDiff   `json:"key_diff"`
	TypeDiff  []diff.TypeDiff  `json:"type_diff"`
	ValueDiff []diff.ValueDiff `json:"value_diff"`
	ArrayDiff []diff.ArrayDiff `json:"array_diff"`
	Config    SavedConfig      `json:"config"`
}

// New builds a SavedContext from a comparison result and its context.
// All four sequences are persisted even for disabled categories, as
// empty lists.
func New(result *diff.Result, ctx *diff.WorkingContext) *SavedContext {
	return &SavedContext{
		KeyDiff:   orEmpty(result.Keys),
		TypeDiff:  orEmpty(result.Types),
		ValueDiff: orEmpty(result.Values),
		ArrayDiff: orEmpty(result.Arrays),
		Config: SavedConfig{
			CheckForKeyDiffs:   ctx.Config.CheckKeys,
			CheckForTypeDiffs:  ctx.Config.CheckTypes,
			CheckForValueDiffs: ctx.Config.CheckValues,
			CheckForArrayDiffs: ctx.Config.CheckArrays,
			FileA:              ctx.FileA.Name,
			FileB:              ctx.FileB.Name,
			ArraySameOrder:     ctx.Config.ArraySameOrder,
		},
	}
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// Result reassembles the saved diff sequences into an engine result.
func (s *SavedContext) Result() *diff.Result {
	return &diff.Result{
		Keys:   s.KeyDiff,
		Types:  s.TypeDiff,
		Values: s.ValueDiff,
		Arrays: s.ArrayDiff,
	}
}

// WorkingContext rebuilds the comparison context a saved run was made
// with, for replaying its rendering.
func (s *SavedContext) WorkingContext() *diff.WorkingContext {
	return diff.NewWorkingContext(s.Config.FileA, s.Config.FileB, diff.Config{
		ArraySameOrder: s.Config.ArraySameOrder,
		CheckKeys:      s.Config.CheckForKeyDiffs,
		CheckTypes:     s.Config.CheckForTypeDiffs,
		CheckValues:    s.Config.CheckForValueDiffs,
		CheckArrays:    s.Config.CheckForArrayDiffs,
	})
}

// Save persists a session as indented JSON.
func Save(path string, sc *SavedContext) error {
	data, err := json.MarshalIndent(sc, "", "  ")
	if err != nil {
		return &OutputError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &OutputError{Path: path, Err: err}
	}
	return nil
}

// Load reads back a session saved by a previous run.
func Load(path string) (*SavedContext, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &parser.InputError{Path: path, Err: err}
	}

	var sc SavedContext
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, &parser.InputError{Path: path, Err: err}
	}

	return &sc, nil
}
