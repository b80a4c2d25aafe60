package settings

// Defaults returns the complete default settings map. Every recognized key
// is present, so validating an empty input yields exactly these values.
// Callers receive a fresh map on every call and may mutate it freely.
func Defaults() map[string]any {
	return map[string]any{
		"setup": map[string]any{
			"appName":      "NoteX",
			"language":     DefaultLanguage,
			"market":       DefaultMarket,
			"supportEmail": "suporte@notex.pt",
			"baseUrl":      "https://notex.pt",
		},
		"ui": map[string]any{
			"theme":          "system",
			"compactMode":    false,
			"cardsPerPage":   24,
			"showCardCounts": true,
			"accentColor":    "#2f6f4f",
		},
		"search": map[string]any{
			"debounceMs":       300,
			"minQueryLength":   2,
			"maxResults":       50,
			"fullTextEnabled":  true,
			"highlightMatches": true,
		},
		"editor": map[string]any{
			"autosaveSeconds":      30,
			"markdownPreview":      true,
			"allowAnonymousDrafts": false,
			"maxAttachmentMb":      10,
		},
		"homepage": map[string]any{
			"recentCardCount":    6,
			"showOnboarding":     true,
			"featuredCategories": []any{"grammar", "vocabulary", "culture"},
		},
		"filters": map[string]any{
			"categories": []any{
				option("grammar", "FILTER_CATEGORY_GRAMMAR"),
				option("vocabulary", "FILTER_CATEGORY_VOCABULARY"),
				option("culture", "FILTER_CATEGORY_CULTURE"),
				option("expressions", "FILTER_CATEGORY_EXPRESSIONS"),
			},
			"difficulties": []any{
				option("beginner", "FILTER_DIFFICULTY_BEGINNER"),
				option("intermediate", "FILTER_DIFFICULTY_INTERMEDIATE"),
				option("advanced", "FILTER_DIFFICULTY_ADVANCED"),
			},
			"tags": []any{},
		},
	}
}

func option(value, label string) map[string]any {
	return map[string]any{"value": value, "label": label}
}
