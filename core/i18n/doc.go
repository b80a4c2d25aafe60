// Package i18n provides locale dictionary loading and message localization
// for the NoteX UI.
//
// A Bundle wraps a default dictionary and a per-locale loader. Dictionaries
// are flat key-to-template maps; loading merges the default dictionary
// underneath the locale's own, so every handed-out dictionary is a superset
// of the default. Loads are cached per locale and deduplicated under
// concurrency; any load failure degrades to the default dictionary with a
// logged warning. Nothing in this package fails during normal lookup.
//
//	//go:embed locales/pt-PT.json
//	var defaultDict []byte
//
//	//go:embed locales
//	var locales embed.FS
//
//	bundle := i18n.NewBundle("pt-PT",
//		i18n.MustParseDictionary(defaultDict),
//		i18n.FSLoader(locales, "locales"))
//
//	loc := bundle.Localizer(ctx, "en-GB")
//	loc.Localize("GREETING", i18n.M{"name": "Ana"}) // "Hey, Ana"
//
// # Lookup and fallback
//
// Localize resolves locale dictionary, then default dictionary, then the
// key itself. Missing translations therefore render as the raw key, which
// keeps them visible in the UI instead of crashing or blanking the page.
//
// # Placeholders
//
// Templates interpolate {{name}} placeholders from the supplied params.
// Placeholders without a matching param stay verbatim.
//
// # Pluralization
//
// LocalizeCount selects a CLDR plural category for the count under the
// locale's rule and looks up "key_category" variants:
//
//	"CARD_COUNT_one":   "{{count}} cartão",
//	"CARD_COUNT_other": "{{count}} cartões",
//
// Missing categories degrade toward "other", then the bare key. The count
// is always available to the template as {{count}}.
package i18n
