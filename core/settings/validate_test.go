package settings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notexhq/notex/core/settings"
)

func TestValidate(t *testing.T) {
	t.Run("empty input yields defaults", func(t *testing.T) {
		validated := settings.Validate(map[string]any{})

		assert.Equal(t, settings.Defaults(), validated)
	})

	t.Run("is idempotent", func(t *testing.T) {
		input := map[string]any{
			"ui":     map[string]any{"compactMode": true, "theme": "dark"},
			"search": map[string]any{"debounceMs": 150},
		}

		once := settings.Validate(input)
		twice := settings.Validate(once)

		assert.Equal(t, once, twice)
	})

	t.Run("explicit false survives", func(t *testing.T) {
		validated := settings.Validate(map[string]any{
			"ui": map[string]any{"compactMode": false},
		})

		// showCardCounts defaults to true; compactMode was set to false
		// explicitly and must not be reverted by the truthy default.
		ui := validated["ui"].(map[string]any)
		assert.Equal(t, false, ui["compactMode"])
		assert.Equal(t, true, ui["showCardCounts"])
	})

	t.Run("explicit zero survives for numbers", func(t *testing.T) {
		validated := settings.Validate(map[string]any{
			"search": map[string]any{"debounceMs": 0},
		})

		search := validated["search"].(map[string]any)
		assert.Equal(t, 0, search["debounceMs"])
	})

	t.Run("empty string takes the default", func(t *testing.T) {
		validated := settings.Validate(map[string]any{
			"ui": map[string]any{"theme": ""},
		})

		ui := validated["ui"].(map[string]any)
		assert.Equal(t, "system", ui["theme"])
	})

	t.Run("mistyped values take the default", func(t *testing.T) {
		validated := settings.Validate(map[string]any{
			"search": map[string]any{
				"debounceMs":      "soon",
				"fullTextEnabled": "yes",
			},
		})

		search := validated["search"].(map[string]any)
		assert.Equal(t, 300, search["debounceMs"])
		assert.Equal(t, true, search["fullTextEnabled"])
	})

	t.Run("partial section keeps sibling sections intact", func(t *testing.T) {
		validated := settings.Validate(map[string]any{
			"editor": map[string]any{"autosaveSeconds": 10},
		})

		editor := validated["editor"].(map[string]any)
		assert.Equal(t, 10, editor["autosaveSeconds"])
		assert.Equal(t, true, editor["markdownPreview"])

		search := validated["search"].(map[string]any)
		assert.Equal(t, 300, search["debounceMs"])
	})

	t.Run("malformed section is rebuilt from defaults", func(t *testing.T) {
		validated := settings.Validate(map[string]any{
			"homepage": "not a section",
		})

		homepage, ok := validated["homepage"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, 6, homepage["recentCardCount"])
	})

	t.Run("valid option list is kept including empty", func(t *testing.T) {
		validated := settings.Validate(map[string]any{
			"filters": map[string]any{
				"categories": []any{
					map[string]any{"value": "history", "label": "FILTER_CATEGORY_HISTORY"},
				},
				"difficulties": []any{},
			},
		})

		filters := validated["filters"].(map[string]any)
		assert.Len(t, filters["categories"], 1)
		assert.Empty(t, filters["difficulties"], "a market may clear a facet")
	})

	t.Run("malformed option list takes the default", func(t *testing.T) {
		validated := settings.Validate(map[string]any{
			"filters": map[string]any{
				"categories": []any{
					map[string]any{"label": "missing value"},
				},
			},
		})

		filters := validated["filters"].(map[string]any)
		defFilters := settings.Defaults()["filters"].(map[string]any)
		assert.Equal(t, defFilters["categories"], filters["categories"])
	})

	t.Run("unrecognized keys pass through", func(t *testing.T) {
		validated := settings.Validate(map[string]any{
			"experimental": map[string]any{"flag": true},
			"ui":           map[string]any{"customKey": "kept"},
		})

		assert.Equal(t, map[string]any{"flag": true}, validated["experimental"])
		assert.Equal(t, "kept", validated["ui"].(map[string]any)["customKey"])
	})

	t.Run("does not mutate its input", func(t *testing.T) {
		input := map[string]any{"ui": map[string]any{"theme": "dark"}}

		settings.Validate(input)

		assert.Equal(t, map[string]any{"ui": map[string]any{"theme": "dark"}}, input)
	})
}

func TestDecode(t *testing.T) {
	t.Run("decodes validated defaults", func(t *testing.T) {
		s, err := settings.Decode(settings.Validate(map[string]any{}))
		require.NoError(t, err)

		assert.Equal(t, "NoteX", s.Setup.AppName)
		assert.Equal(t, "pt-PT", s.Setup.Language)
		assert.Equal(t, 300, s.Search.DebounceMs)
		assert.Equal(t, 24, s.UI.CardsPerPage)
		assert.False(t, s.UI.CompactMode)
		assert.Equal(t, []string{"grammar", "vocabulary", "culture"}, s.Homepage.FeaturedCategories)
		require.Len(t, s.Filters.Difficulties, 3)
		assert.Equal(t, settings.Option{Value: "beginner", Label: "FILTER_DIFFICULTY_BEGINNER"}, s.Filters.Difficulties[0])
	})

	t.Run("carries option counts", func(t *testing.T) {
		raw := settings.Validate(map[string]any{
			"filters": map[string]any{
				"tags": []any{
					map[string]any{"value": "verbs", "label": "verbos", "count": 12},
				},
			},
		})

		s, err := settings.Decode(raw)
		require.NoError(t, err)

		require.Len(t, s.Filters.Tags, 1)
		assert.Equal(t, settings.Option{Value: "verbs", Label: "verbos", Count: 12}, s.Filters.Tags[0])
	})
}
