package i18n

import (
	"context"
	"log/slog"
	"maps"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/notexhq/notex/core/logger"
)

// DefaultLocale is used when no default locale is specified.
const DefaultLocale = "pt-PT"

// Dictionary is a flat mapping from message key to template string.
// Templates may contain {{name}} placeholders and plural-suffixed variants
// such as "CARD_COUNT_one" / "CARD_COUNT_other".
type Dictionary map[string]string

// Loader fetches the dictionary for a locale. Returning (nil, nil) means no
// dictionary exists for that locale, which is an expected condition.
type Loader func(ctx context.Context, locale string) (Dictionary, error)

// M is a convenience type for placeholder maps.
type M map[string]any

// Bundle loads and caches locale dictionaries. The default dictionary is a
// superset guarantee: every dictionary the bundle hands out contains at
// least the default keys, so a missing translation degrades to the default
// language instead of a blank string. Loaded dictionaries are cached per
// locale for the life of the process; concurrent first loads of the same
// locale share one underlying fetch.
type Bundle struct {
	defaultLocale string
	defaultDict   Dictionary
	loader        Loader
	log           *slog.Logger
	missing       func(locale, key string)

	mu    sync.RWMutex
	cache map[string]Dictionary

	group singleflight.Group
}

// BundleOption configures a Bundle during construction.
type BundleOption func(*Bundle)

// WithLogger sets the logger used for load-failure warnings.
func WithLogger(log *slog.Logger) BundleOption {
	return func(b *Bundle) {
		if log != nil {
			b.log = log
		}
	}
}

// WithMissingKeyHandler sets a handler invoked when a key resolves in
// neither the locale nor the default dictionary. Useful for surfacing
// missing translations during development.
func WithMissingKeyHandler(fn func(locale, key string)) BundleOption {
	return func(b *Bundle) {
		b.missing = fn
	}
}

// NewBundle creates a Bundle around a default dictionary and a loader.
// A nil loader is allowed: every locale then resolves to the default
// dictionary.
func NewBundle(defaultLocale string, defaultDict Dictionary, loader Loader, opts ...BundleOption) *Bundle {
	if defaultLocale == "" {
		defaultLocale = DefaultLocale
	}

	b := &Bundle{
		defaultLocale: defaultLocale,
		defaultDict:   defaultDict,
		loader:        loader,
		log:           slog.Default(),
		cache:         make(map[string]Dictionary),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// DefaultLocale returns the bundle's default locale.
func (b *Bundle) DefaultLocale() string {
	return b.defaultLocale
}

// Load returns the merged dictionary for a locale. It is total: any load
// failure is logged and the default dictionary is substituted wholesale.
// Results are cached per locale string.
func (b *Bundle) Load(ctx context.Context, locale string) Dictionary {
	b.mu.RLock()
	d, ok := b.cache[locale]
	b.mu.RUnlock()
	if ok {
		return d
	}

	v, _, _ := b.group.Do(locale, func() (any, error) {
		b.mu.RLock()
		d, ok := b.cache[locale]
		b.mu.RUnlock()
		if ok {
			return d, nil
		}

		d = b.load(ctx, locale)

		b.mu.Lock()
		b.cache[locale] = d
		b.mu.Unlock()
		return d, nil
	})

	return v.(Dictionary)
}

// ClearCache drops all cached dictionaries so subsequent loads re-run the
// loader. Intended for tests and hot reload.
func (b *Bundle) ClearCache() {
	b.mu.Lock()
	b.cache = make(map[string]Dictionary)
	b.mu.Unlock()
}

// Localizer returns a localizer bound to the locale's merged dictionary.
func (b *Bundle) Localizer(ctx context.Context, locale string) *Localizer {
	return &Localizer{
		locale:  locale,
		dict:    b.Load(ctx, locale),
		def:     b.defaultDict,
		rule:    RuleForLocale(locale),
		missing: b.missing,
		log:     b.log,
	}
}

func (b *Bundle) load(ctx context.Context, locale string) Dictionary {
	if b.loader == nil {
		return b.cloneDefault()
	}

	loaded, err := b.loader(ctx, locale)
	if err != nil {
		// A missing translation must never break page rendering; the
		// default dictionary stands in wholesale.
		b.log.WarnContext(ctx, "locale dictionary failed to load, using default",
			logger.Component("i18n"),
			logger.Locale(locale),
			logger.Error(err))
		return b.cloneDefault()
	}
	if loaded == nil {
		return b.cloneDefault()
	}

	// Default fills the gaps underneath; loaded keys win.
	merged := make(Dictionary, len(b.defaultDict)+len(loaded))
	maps.Copy(merged, b.defaultDict)
	maps.Copy(merged, loaded)
	return merged
}

func (b *Bundle) cloneDefault() Dictionary {
	if b.defaultDict == nil {
		return Dictionary{}
	}
	return maps.Clone(b.defaultDict)
}
