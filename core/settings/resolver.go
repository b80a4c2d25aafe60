package settings

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/notexhq/notex/core/logger"
	"github.com/notexhq/notex/core/merge"
)

// Loader fetches the partial settings override for a market. Returning
// (nil, nil) means the market has no override, which is an expected
// condition, not an error.
type Loader func(ctx context.Context, market string) (map[string]any, error)

// Resolver resolves complete, validated market settings. Resolution layers
// the hard-coded defaults, the environment-asserted language and the
// market-specific partial override, then validates the result. Resolved
// settings are cached per market for the life of the process; concurrent
// first requests for the same market share one underlying load.
type Resolver struct {
	loader   Loader
	env      Environment
	defaults func() map[string]any
	log      *slog.Logger

	mu    sync.RWMutex
	cache map[string]*Settings

	group singleflight.Group
}

// ResolverOption configures a Resolver during construction.
type ResolverOption func(*Resolver)

// WithEnvironment overrides the environment read at construction time.
func WithEnvironment(env Environment) ResolverOption {
	return func(r *Resolver) {
		r.env = env
	}
}

// WithLogger sets the logger used for fallback warnings.
func WithLogger(log *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		if log != nil {
			r.log = log
		}
	}
}

// WithDefaults replaces the default settings source.
func WithDefaults(fn func() map[string]any) ResolverOption {
	return func(r *Resolver) {
		if fn != nil {
			r.defaults = fn
		}
	}
}

// NewResolver creates a Resolver. A nil loader is allowed and behaves as
// "no market has an override".
func NewResolver(loader Loader, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		loader:   loader,
		env:      CurrentEnvironment(),
		defaults: Defaults,
		log:      slog.Default(),
		cache:    make(map[string]*Settings),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve returns the complete settings for a market. It is total: source
// failures are logged and fall back to defaults, so the caller always
// receives a usable settings object. Results are cached per market string.
func (r *Resolver) Resolve(ctx context.Context, market string) *Settings {
	r.mu.RLock()
	s, ok := r.cache[market]
	r.mu.RUnlock()
	if ok {
		return s
	}

	v, _, _ := r.group.Do(market, func() (any, error) {
		// Re-check under the flight: a previous flight may have populated
		// the cache between the fast path and Do.
		r.mu.RLock()
		s, ok := r.cache[market]
		r.mu.RUnlock()
		if ok {
			return s, nil
		}

		s = r.resolve(ctx, market)

		r.mu.Lock()
		r.cache[market] = s
		r.mu.Unlock()
		return s, nil
	})

	return v.(*Settings)
}

// ClearCache drops all resolved settings so subsequent resolutions re-run
// their loaders. Intended for tests and hot reload.
func (r *Resolver) ClearCache() {
	r.mu.Lock()
	r.cache = make(map[string]*Settings)
	r.mu.Unlock()
}

func (r *Resolver) resolve(ctx context.Context, market string) *Settings {
	var partial map[string]any
	if r.loader != nil {
		loaded, err := r.loader(ctx, market)
		if err != nil {
			// A broken override source must never take the page down;
			// resolution continues with defaults.
			r.log.WarnContext(ctx, "market settings source failed, using defaults",
				logger.Component("settings"),
				logger.Market(market),
				logger.Error(err))
		} else {
			partial = loaded
		}
	}

	base := merge.Merge(r.defaults(), map[string]any{
		"setup": map[string]any{
			"language": r.env.Language,
			"market":   market,
		},
	})
	if partial != nil {
		base = merge.Merge(base, partial)
	}

	s, err := Decode(Validate(base))
	if err != nil {
		r.log.WarnContext(ctx, "market settings failed to decode, using defaults",
			logger.Component("settings"),
			logger.Market(market),
			logger.Error(err))
		s, _ = Decode(Validate(r.defaults()))
	}

	return &s
}
