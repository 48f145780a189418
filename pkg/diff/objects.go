package diff

import "sort"

// compareObjects walks the union of both objects' key sets. Shared keys
// recurse through the field dispatcher; one-sided keys become key diffs.
// Keys are visited in sorted order so output is deterministic regardless
// of either document's original ordering.
func compareObjects(key string, a, b map[string]interface{}, ctx *WorkingContext, depth int) Result {
	result := Result{}

	for _, k := range unionKeys(a, b) {
		valA, inA := a[k]
		valB, inB := b[k]
		childKey := joinPath(key, k)

		switch {
		case inA && inB:
			result.merge(compareField(childKey, valA, valB, ctx, depth+1))
		case inA:
			result.Keys = append(result.Keys, KeyDiff{
				Key:    childKey,
				Has:    ctx.FileA.Name,
				Misses: ctx.FileB.Name,
			})
		default:
			result.Keys = append(result.Keys, KeyDiff{
				Key:    childKey,
				Has:    ctx.FileB.Name,
				Misses: ctx.FileA.Name,
			})
		}
	}

	return result
}

func unionKeys(a, b map[string]interface{}) []string {
	seen := make(map[string]bool, len(a)+len(b))
	for k := range a {
		seen[k] = true
	}
	for k := range b {
		seen[k] = true
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
