package diff

// CompareField is the single recursive entry point: it dispatches on the
// pair of value kinds and returns the four-way classified batch for this
// field and everything nested beneath it. Every one of the 36 ordered
// kind pairs routes through exactly one case below.
func CompareField(key string, a, b interface{}, ctx *WorkingContext) Result {
	return compareField(key, a, b, ctx, 0)
}

func compareField(key string, a, b interface{}, ctx *WorkingContext, depth int) Result {
	if depth >= ctx.maxDepth() {
		return compareCanonical(key, a, b)
	}

	kindA, kindB := KindOf(a), KindOf(b)

	switch {
	case kindA == KindNull && kindB == KindNull:
		return Result{}

	case kindA == kindB:
		switch kindA {
		case KindObject:
			return compareObjects(key, a.(map[string]interface{}), b.(map[string]interface{}), ctx, depth)
		case KindArray:
			return compareArrays(key, a.([]interface{}), b.([]interface{}), ctx, depth)
		default:
			return Result{Values: comparePrimitives(key, a, b, kindA)}
		}

	case kindA == KindNull || kindB == KindNull:
		return handleOneSideNull(key, a, b, kindA, kindB, ctx, depth)

	default:
		return Result{Types: handleDifferentTypes(key, kindA, kindB)}
	}
}

// comparePrimitives compares two same-kinded scalars by exact value
// equality. Numbers are significant-digit exact, never epsilon-based.
func comparePrimitives(key string, a, b interface{}, kind Kind) []ValueDiff {
	equal := false
	switch kind {
	case KindNumber:
		equal = numberEqual(a, b)
	default:
		equal = a == b
	}

	if equal {
		return nil
	}
	return []ValueDiff{{Key: key, Value1: Canonical(a), Value2: Canonical(b)}}
}

// handleOneSideNull resolves comparisons where exactly one side is null.
// Null against a primitive is a value difference; null against an array
// or object treats the null side as empty and delegates.
func handleOneSideNull(key string, a, b interface{}, kindA, kindB Kind, ctx *WorkingContext, depth int) Result {
	other := kindB
	if kindB == KindNull {
		other = kindA
	}

	switch other {
	case KindObject:
		objA, _ := a.(map[string]interface{})
		objB, _ := b.(map[string]interface{})
		if objA == nil {
			objA = map[string]interface{}{}
		}
		if objB == nil {
			objB = map[string]interface{}{}
		}
		return compareObjects(key, objA, objB, ctx, depth)

	case KindArray:
		return Result{Arrays: handleNullArray(key, a, b)}

	default:
		return Result{Values: []ValueDiff{{Key: key, Value1: Canonical(a), Value2: Canonical(b)}}}
	}
}

// handleNullArray treats the null side as an empty array: every element
// of the non-null side is reported as present only on its own side.
func handleNullArray(key string, a, b interface{}) []ArrayDiff {
	var diffs []ArrayDiff
	if arr, ok := a.([]interface{}); ok {
		for _, v := range arr {
			c := Canonical(v)
			diffs = append(diffs,
				ArrayDiff{Key: key, Descriptor: AHas, Value: c},
				ArrayDiff{Key: key, Descriptor: BMisses, Value: c})
		}
		return diffs
	}
	if arr, ok := b.([]interface{}); ok {
		for _, v := range arr {
			c := Canonical(v)
			diffs = append(diffs,
				ArrayDiff{Key: key, Descriptor: BHas, Value: c},
				ArrayDiff{Key: key, Descriptor: AMisses, Value: c})
		}
	}
	return diffs
}

// handleDifferentTypes resolves comparisons where both sides are non-null
// and of different kinds: exactly one type difference, no recursion.
func handleDifferentTypes(key string, kindA, kindB Kind) []TypeDiff {
	return []TypeDiff{{Key: key, Type1: string(kindA), Type2: string(kindB)}}
}

// compareCanonical is the depth-limit fallback: subtrees past MaxDepth
// are compared by their canonical serializations without recursing.
func compareCanonical(key string, a, b interface{}) Result {
	ca, cb := Canonical(a), Canonical(b)
	if ca == cb {
		return Result{}
	}
	return Result{Values: []ValueDiff{{Key: key, Value1: ca, Value2: cb}}}
}

func (ctx *WorkingContext) maxDepth() int {
	if ctx.Config.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return ctx.Config.MaxDepth
}
