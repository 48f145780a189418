package diff

// compareArrays resolves array-vs-array comparison under one of two
// policies. Ordered mode pairs elements by index; unordered mode (the
// default) compares multisets of canonical serializations and ignores
// position entirely.
func compareArrays(key string, a, b []interface{}, ctx *WorkingContext, depth int) Result {
	if ctx.Config.ArraySameOrder {
		return compareArraysOrdered(key, a, b, ctx, depth)
	}
	return Result{Arrays: compareArraysUnordered(key, a, b)}
}

// compareArraysOrdered walks both arrays index by index. An index present
// on only one side is compared against null, following the null-pair
// handler's absent-side convention.
func compareArraysOrdered(key string, a, b []interface{}, ctx *WorkingContext, depth int) Result {
	result := Result{}

	max := len(a)
	if len(b) > max {
		max = len(b)
	}

	for i := 0; i < max; i++ {
		var valA, valB interface{}
		if i < len(a) {
			valA = a[i]
		}
		if i < len(b) {
			valB = b[i]
		}
		result.merge(compareField(indexPath(key, i), valA, valB, ctx, depth+1))
	}

	return result
}

// compareArraysUnordered reduces each array to a multiset of canonical
// serializations. Occurrences on one side beyond the other side's count
// are reported as complementary descriptor pairs, so duplicates are not
// deduplicated away. Element equality is structural, via serialization.
func compareArraysUnordered(key string, a, b []interface{}) []ArrayDiff {
	countsA := canonicalCounts(a)
	countsB := canonicalCounts(b)

	var diffs []ArrayDiff

	seenA := make(map[string]int, len(countsA))
	for _, v := range a {
		c := Canonical(v)
		seenA[c]++
		if seenA[c] > countsB[c] {
			diffs = append(diffs,
				ArrayDiff{Key: key, Descriptor: AHas, Value: c},
				ArrayDiff{Key: key, Descriptor: BMisses, Value: c})
		}
	}

	seenB := make(map[string]int, len(countsB))
	for _, v := range b {
		c := Canonical(v)
		seenB[c]++
		if seenB[c] > countsA[c] {
			diffs = append(diffs,
				ArrayDiff{Key: key, Descriptor: BHas, Value: c},
				ArrayDiff{Key: key, Descriptor: AMisses, Value: c})
		}
	}

	return diffs
}

func canonicalCounts(arr []interface{}) map[string]int {
	counts := make(map[string]int, len(arr))
	for _, v := range arr {
		counts[Canonical(v)]++
	}
	return counts
}
