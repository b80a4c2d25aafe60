package merge

import "errors"

// ErrNoLayers is returned by MergeAll when it is called without any layers.
var ErrNoLayers = errors.New("merge: at least one layer is required")

// Merge deep-merges src into dst and returns the result as a new map.
// Neither input is mutated.
//
// For every key in src: a nil value is skipped (dst keeps its value), two
// nested maps are merged recursively, and any other value replaces the dst
// value wholesale. Arrays are values, not mergeable containers, so an
// override list always replaces the base list instead of combining with it.
func Merge(dst, src map[string]any) map[string]any {
	out := Clone(dst)

	for key, sv := range src {
		if sv == nil {
			continue
		}

		if sm, ok := sv.(map[string]any); ok {
			if dm, ok := out[key].(map[string]any); ok {
				out[key] = Merge(dm, sm)
				continue
			}
		}

		out[key] = cloneValue(sv)
	}

	return out
}

// MergeAll folds Merge over the given layers left to right, so later layers
// take precedence. Calling it without layers is a programmer error.
func MergeAll(layers ...map[string]any) (map[string]any, error) {
	if len(layers) == 0 {
		return nil, ErrNoLayers
	}

	out := Clone(layers[0])
	for _, layer := range layers[1:] {
		out = Merge(out, layer)
	}

	return out, nil
}

// Clone returns a deep copy of m. Nested maps and slices are copied;
// scalar values are shared as-is.
func Clone(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for key, value := range m {
		out[key] = cloneValue(value)
	}
	return out
}

func cloneValue(v any) any {
	switch tv := v.(type) {
	case map[string]any:
		return Clone(tv)
	case []any:
		out := make([]any, len(tv))
		for i, item := range tv {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
