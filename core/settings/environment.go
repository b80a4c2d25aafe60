package settings

import (
	"github.com/notexhq/notex/core/config"
)

// Runtime modes. The mode is fixed at deployment time and is not
// user-togglable at runtime.
const (
	ModeDevelopment = "development"
	ModeTest        = "test"
	ModeProduction  = "production"
)

// Hard fallbacks applied when the environment provides nothing usable.
const (
	DefaultLanguage = "pt-PT"
	DefaultMarket   = "pt-PT"
)

// Environment carries process-level deployment configuration: the target
// language, the market profile and the runtime mode. It is read once and
// immutable thereafter.
type Environment struct {
	Language    string `env:"NOTEX_LANGUAGE" envDefault:"pt-PT"`
	Market      string `env:"NOTEX_MARKET" envDefault:"pt-PT"`
	RuntimeMode string `env:"NOTEX_ENV" envDefault:"production"`
}

// CurrentEnvironment reads the process environment. It never fails: parse
// errors and blank or unknown values are substituted with hard defaults.
func CurrentEnvironment() Environment {
	var e Environment
	if err := config.Load(&e); err != nil {
		e = Environment{}
	}

	if e.Language == "" {
		e.Language = DefaultLanguage
	}
	if e.Market == "" {
		e.Market = DefaultMarket
	}
	switch e.RuntimeMode {
	case ModeDevelopment, ModeTest, ModeProduction:
	default:
		e.RuntimeMode = ModeProduction
	}

	return e
}

// IsProduction reports whether the process runs in production mode.
func (e Environment) IsProduction() bool {
	return e.RuntimeMode == ModeProduction
}
