package diff

// Kind classifies a document node into one of the six value kinds.
type Kind string

const (
	KindNull   Kind = "null"
	KindBool   Kind = "bool"
	KindNumber Kind = "number"
	KindString Kind = "string"
	KindArray  Kind = "array"
	KindObject Kind = "object"
)

// KindOf reports the kind of a parsed document node. Documents come from
// pkg/parser, so numbers are json.Number and composites are the generic
// map/slice forms.
func KindOf(v interface{}) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case string:
		return KindString
	case []interface{}:
		return KindArray
	case map[string]interface{}:
		return KindObject
	default:
		// json.Number, or any other scalar numeric a caller hands us
		return KindNumber
	}
}

// ArrayDiffDesc tags which side of the comparison holds or misses an
// array element. Descriptors are emitted in complementary pairs:
// AHas/BMisses for elements only in A, BHas/AMisses for elements only in B.
type ArrayDiffDesc string

const (
	AHas    ArrayDiffDesc = "AHas"
	AMisses ArrayDiffDesc = "AMisses"
	BHas    ArrayDiffDesc = "BHas"
	BMisses ArrayDiffDesc = "BMisses"
)

// KeyDiff records a key present in exactly one of the two documents.
// Has and Misses are always the two file names of the current context.
type KeyDiff struct {
	Key    string `json:"key"`
	Has    string `json:"has"`
	Misses string `json:"misses"`
}

// TypeDiff records a key present in both documents with values of
// different kinds.
type TypeDiff struct {
	Key   string `json:"key"`
	Type1 string `json:"type1"`
	Type2 string `json:"type2"`
}

// ValueDiff records a key present in both documents, comparable on both
// sides, with differing values. Both sides are canonical serializations.
type ValueDiff struct {
	Key    string `json:"key"`
	Value1 string `json:"value1"`
	Value2 string `json:"value2"`
}

// ArrayDiff records one side of an array-membership discrepancy found
// under unordered comparison.
type ArrayDiff struct {
	Key        string        `json:"key"`
	Descriptor ArrayDiffDesc `json:"descriptor"`
	Value      string        `json:"value"`
}

// Result is the four-way classified batch produced for a field and
// everything nested beneath it.
type Result struct {
	Keys   []KeyDiff   `json:"key_diff"`
	Types  []TypeDiff  `json:"type_diff"`
	Values []ValueDiff `json:"value_diff"`
	Arrays []ArrayDiff `json:"array_diff"`
}

// HasDiffs reports whether any category holds at least one record.
func (r *Result) HasDiffs() bool {
	return len(r.Keys) > 0 || len(r.Types) > 0 || len(r.Values) > 0 || len(r.Arrays) > 0
}

func (r *Result) merge(other Result) {
	r.Keys = append(r.Keys, other.Keys...)
	r.Types = append(r.Types, other.Types...)
	r.Values = append(r.Values, other.Values...)
	r.Arrays = append(r.Arrays, other.Arrays...)
}
