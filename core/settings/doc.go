// Package settings resolves the layered market configuration of the NoteX
// application.
//
// Resolution layers three sources, later layers winning only for keys they
// actually specify: the hard-coded defaults, the environment-asserted
// language, and the market-specific partial override supplied by an
// injected Loader. The merged result is validated so every recognized key
// holds a usable value, then cached per market for the life of the process.
//
//	//go:embed markets
//	var markets embed.FS
//
//	resolver := settings.NewResolver(settings.FSLoader(markets, "markets"))
//
//	s := resolver.Resolve(ctx, "pt-PT")
//	fmt.Println(s.Search.DebounceMs) // 300 unless the market overrides it
//
// A missing market override is an expected condition; a malformed one is
// logged and recovered by falling back to defaults. Resolution never fails.
//
// Concurrent first requests for the same market converge on one underlying
// load; callers either hit the cache or join the in-flight resolution.
// ClearCache exists for tests and hot reload.
//
// # Validation
//
// Validate applies per-kind fallback rules. Boolean keys use a defined
// check, so a market setting ui.compactMode=false keeps its explicit false.
// String keys use a truthy check: empty strings take the default. Numeric
// keys keep any explicit number including zero (a market may set
// search.debounceMs=0 to disable debouncing); absent or mistyped values
// take the default. Option lists replace wholesale.
package settings
