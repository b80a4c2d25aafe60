// Package merge provides deep merging of nested option maps, the foundation
// for layered settings resolution.
//
// Settings layers (defaults, environment assertions, market overrides) are
// plain map[string]any trees. Merging them requires "later layer wins, but
// only for keys it actually specifies": a shallow merge would blank out
// sibling keys of a partially overridden section, while element-wise array
// merging would combine override lists that must replace each other.
//
// Basic usage:
//
//	base := map[string]any{
//		"search": map[string]any{"debounceMs": 300, "maxResults": 50},
//	}
//	override := map[string]any{
//		"search": map[string]any{"debounceMs": 150},
//	}
//
//	merged := merge.Merge(base, override)
//	// merged["search"] == map[string]any{"debounceMs": 150, "maxResults": 50}
//
// More than two layers fold left to right:
//
//	resolved, err := merge.MergeAll(defaults, envOverrides, marketOverrides)
//
// All functions return new maps; inputs are never mutated.
package merge
