// Package config provides type-safe environment variable loading with
// per-type caching using Go generics.
//
// The package automatically loads .env files on first use and parses
// environment variables into struct fields via the caarlos0/env library.
//
// Basic usage:
//
//	import "github.com/notexhq/notex/core/config"
//
//	type AppConfig struct {
//		Language string `env:"NOTEX_LANGUAGE" envDefault:"pt-PT"`
//		Market   string `env:"NOTEX_MARKET" envDefault:"pt-PT"`
//	}
//
//	func main() {
//		var cfg AppConfig
//
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure during startup
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per process; subsequent loads
// of the same type return the cached value even if the environment changed
// in between. Different types are cached independently. ClearCache resets
// the cache for tests.
package config
