package diff

import (
	"encoding/json"
	"fmt"
	"math/big"
)

// Canonical returns the single serialized text form used everywhere a
// value is compared or displayed as text: compact JSON with object keys
// sorted and numeric literals preserved. Null serializes as "null".
func Canonical(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		// Only reachable for values outside the document model.
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

// numberEqual compares two numeric nodes exactly. Literal equality is the
// fast path; otherwise both literals are compared as arbitrary-precision
// rationals so 1.0 equals 1 and large integers never round through floats.
func numberEqual(a, b interface{}) bool {
	la, lb := numberLiteral(a), numberLiteral(b)
	if la == lb {
		return true
	}

	ra, okA := new(big.Rat).SetString(la)
	rb, okB := new(big.Rat).SetString(lb)
	if !okA || !okB {
		return false
	}
	return ra.Cmp(rb) == 0
}

func numberLiteral(v interface{}) string {
	if n, ok := v.(json.Number); ok {
		return n.String()
	}
	return fmt.Sprintf("%v", v)
}

// joinPath extends a dotted field path by one object key. The empty
// parent path denotes the document root.
func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

// indexPath extends a field path by an array index, used in ordered mode.
func indexPath(parent string, i int) string {
	return fmt.Sprintf("%s[%d]", parent, i)
}
