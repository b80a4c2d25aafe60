package settings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notexhq/notex/core/config"
	"github.com/notexhq/notex/core/settings"
)

func TestCurrentEnvironment(t *testing.T) {
	t.Run("reads process configuration", func(t *testing.T) {
		config.ClearCache()
		t.Setenv("NOTEX_LANGUAGE", "en-GB")
		t.Setenv("NOTEX_MARKET", "uk")
		t.Setenv("NOTEX_ENV", "development")

		env := settings.CurrentEnvironment()

		assert.Equal(t, "en-GB", env.Language)
		assert.Equal(t, "uk", env.Market)
		assert.Equal(t, settings.ModeDevelopment, env.RuntimeMode)
		assert.False(t, env.IsProduction())
	})

	t.Run("substitutes defaults when unset", func(t *testing.T) {
		config.ClearCache()
		t.Setenv("NOTEX_LANGUAGE", "")
		t.Setenv("NOTEX_MARKET", "")
		t.Setenv("NOTEX_ENV", "")

		env := settings.CurrentEnvironment()

		assert.Equal(t, settings.DefaultLanguage, env.Language)
		assert.Equal(t, settings.DefaultMarket, env.Market)
		assert.Equal(t, settings.ModeProduction, env.RuntimeMode)
		assert.True(t, env.IsProduction())
	})

	t.Run("unknown runtime mode falls back to production", func(t *testing.T) {
		config.ClearCache()
		t.Setenv("NOTEX_ENV", "staging")

		env := settings.CurrentEnvironment()

		assert.Equal(t, settings.ModeProduction, env.RuntimeMode)
	})
}
