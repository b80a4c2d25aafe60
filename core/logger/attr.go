package logger

import (
	"log/slog"
	"time"
)

// Attribute helpers use the empty Attr pattern for nil safety: zero-value
// inputs yield an empty Attr that slog drops, so call sites don't need
// explicit checks.

// Error creates an attribute for a single error under the key "error".
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component names the subsystem emitting the record (e.g. "settings", "i18n").
func Component(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("component", name)
}

// Market identifies the market profile being resolved.
func Market(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("market", id)
}

// Locale identifies the locale whose dictionary is being loaded.
func Locale(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("locale", id)
}

// Key carries a settings or translation key.
func Key(key string) slog.Attr {
	if key == "" {
		return slog.Attr{}
	}
	return slog.String("key", key)
}

// Elapsed calculates and logs the duration since the start time.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}
