package settings

import "github.com/notexhq/notex/core/merge"

// kind drives the fallback rule applied to a key during validation.
type kind int

const (
	kindString kind = iota
	kindNumber
	kindBool
	kindStringList
	kindOptionList
)

// schema enumerates every recognized section and key. Validation guarantees
// each of them holds a usable value afterwards.
var schema = map[string]map[string]kind{
	"setup": {
		"appName":      kindString,
		"language":     kindString,
		"market":       kindString,
		"supportEmail": kindString,
		"baseUrl":      kindString,
	},
	"ui": {
		"theme":          kindString,
		"compactMode":    kindBool,
		"cardsPerPage":   kindNumber,
		"showCardCounts": kindBool,
		"accentColor":    kindString,
	},
	"search": {
		"debounceMs":       kindNumber,
		"minQueryLength":   kindNumber,
		"maxResults":       kindNumber,
		"fullTextEnabled":  kindBool,
		"highlightMatches": kindBool,
	},
	"editor": {
		"autosaveSeconds":      kindNumber,
		"markdownPreview":      kindBool,
		"allowAnonymousDrafts": kindBool,
		"maxAttachmentMb":      kindNumber,
	},
	"homepage": {
		"recentCardCount":    kindNumber,
		"showOnboarding":     kindBool,
		"featuredCategories": kindStringList,
	},
	"filters": {
		"categories":   kindOptionList,
		"difficulties": kindOptionList,
		"tags":         kindOptionList,
	},
}

// Validate fills every recognized gap in raw with the corresponding default,
// returning a new map in which no recognized key is missing or unusable.
// It is total and idempotent. Unrecognized keys pass through untouched.
//
// Fallback rules differ by kind. Booleans use a defined-check so a market
// that deliberately disables a feature with an explicit false is not
// silently re-enabled by a truthy default. Strings use a truthy-check: an
// empty string takes the default. Numbers keep any explicit numeric value,
// zero included, so an override like debounceMs=0 survives; only absent or
// mistyped values take the default. Lists are replaced by the default when
// absent or malformed, never element-patched.
func Validate(raw map[string]any) map[string]any {
	defaults := Defaults()
	out := merge.Clone(raw)

	for sectionName, keys := range schema {
		section, _ := out[sectionName].(map[string]any)
		if section == nil {
			section = make(map[string]any, len(keys))
		}
		defSection := defaults[sectionName].(map[string]any)

		for key, k := range keys {
			section[key] = coerce(k, section[key], defSection[key])
		}
		out[sectionName] = section
	}

	return out
}

func coerce(k kind, value, fallback any) any {
	switch k {
	case kindBool:
		if b, ok := value.(bool); ok {
			return b
		}
	case kindString:
		if s, ok := value.(string); ok && s != "" {
			return s
		}
	case kindNumber:
		if isNumber(value) {
			return value
		}
	case kindStringList:
		if isStringList(value) {
			return value
		}
	case kindOptionList:
		if isOptionList(value) {
			return value
		}
	}
	return fallback
}

func isNumber(v any) bool {
	switch v.(type) {
	case int, int32, int64, float32, float64:
		return true
	}
	return false
}

func isStringList(v any) bool {
	switch list := v.(type) {
	case []string:
		return true
	case []any:
		for _, item := range list {
			if _, ok := item.(string); !ok {
				return false
			}
		}
		return true
	}
	return false
}

// isOptionList accepts lists whose every element carries a non-empty value
// and a label. An empty list is valid: a market may clear a facet.
func isOptionList(v any) bool {
	list, ok := v.([]any)
	if !ok {
		return false
	}
	for _, item := range list {
		entry, ok := item.(map[string]any)
		if !ok {
			return false
		}
		if s, ok := entry["value"].(string); !ok || s == "" {
			return false
		}
		if _, ok := entry["label"].(string); !ok {
			return false
		}
	}
	return true
}
