package diff

// The four finders are the top-level traversal entry points, one per diff
// category. Each walks both documents from the root and returns a single
// flat sequence for its category. Collect is the combined form: one walk
// computing every enabled category at once.

// FindKeyDiffs walks both documents and reports keys present in exactly
// one of them.
func FindKeyDiffs(key string, a, b map[string]interface{}, ctx *WorkingContext) []KeyDiff {
	return compareObjects(key, a, b, ctx, 0).Keys
}

// FindTypeDiffs walks both documents and reports shared keys holding
// values of different kinds.
func FindTypeDiffs(key string, a, b map[string]interface{}, ctx *WorkingContext) []TypeDiff {
	return compareObjects(key, a, b, ctx, 0).Types
}

// FindValueDiffs walks both documents and reports shared keys holding
// comparable but unequal values.
func FindValueDiffs(key string, a, b map[string]interface{}, ctx *WorkingContext) []ValueDiff {
	return compareObjects(key, a, b, ctx, 0).Values
}

// FindArrayDiffs walks both documents and reports array-membership
// discrepancies found under unordered comparison.
func FindArrayDiffs(key string, a, b map[string]interface{}, ctx *WorkingContext) []ArrayDiff {
	return compareObjects(key, a, b, ctx, 0).Arrays
}

// Collect runs a single traversal over both documents and returns the
// categories enabled in the context's config; disabled categories are nil.
func Collect(a, b map[string]interface{}, ctx *WorkingContext) *Result {
	cfg := ctx.Config
	if !cfg.CheckKeys && !cfg.CheckTypes && !cfg.CheckValues && !cfg.CheckArrays {
		return &Result{}
	}

	result := compareObjects("", a, b, ctx, 0)

	// Enabled categories are always non-nil so they serialize as [];
	// disabled ones are nil and were never asked for.
	if cfg.CheckKeys {
		if result.Keys == nil {
			result.Keys = []KeyDiff{}
		}
	} else {
		result.Keys = nil
	}
	if cfg.CheckTypes {
		if result.Types == nil {
			result.Types = []TypeDiff{}
		}
	} else {
		result.Types = nil
	}
	if cfg.CheckValues {
		if result.Values == nil {
			result.Values = []ValueDiff{}
		}
	} else {
		result.Values = nil
	}
	if cfg.CheckArrays {
		if result.Arrays == nil {
			result.Arrays = []ArrayDiff{}
		}
	} else {
		result.Arrays = nil
	}

	return &result
}
