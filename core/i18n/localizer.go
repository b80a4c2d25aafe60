package i18n

import (
	"fmt"
	"log/slog"
	"maps"
	"strings"
	"time"

	"github.com/notexhq/notex/core/logger"
)

// Localizer resolves message keys for one locale. It is immutable after
// creation and safe for concurrent use.
type Localizer struct {
	locale  string
	dict    Dictionary
	def     Dictionary
	rule    PluralRule
	missing func(locale, key string)
	log     *slog.Logger
}

// Locale returns the locale this localizer is bound to.
func (l *Localizer) Locale() string {
	return l.locale
}

// Localize resolves a key to its template and interpolates params into it.
// Lookup falls back from the locale dictionary to the default dictionary to
// the key itself; it never fails, so a missing translation shows up as the
// raw key rather than a crash or a blank.
func (l *Localizer) Localize(key string, params ...M) string {
	tmpl, ok := l.lookup(key)
	if !ok {
		l.reportMissing(key)
		tmpl = key
	}
	return Interpolate(tmpl, mergeParams(params))
}

// LocalizeCount resolves a pluralized key. The plural category for n under
// the locale's rule selects a "key_category" variant, falling back through
// related categories, then the bare key, then the key itself. The count is
// always available to the template as {{count}}, and explicit params may
// override it.
func (l *Localizer) LocalizeCount(key string, n int, params ...M) string {
	category := l.rule(n)

	tmpl, ok := l.lookup(key + "_" + category)
	if !ok {
		for _, fallback := range categoryFallbacks(category) {
			if tmpl, ok = l.lookup(key + "_" + fallback); ok {
				break
			}
		}
	}
	if !ok {
		tmpl, ok = l.lookup(key)
	}
	if !ok {
		l.reportMissing(key)
		tmpl = key
	}

	merged := M{"count": n}
	for _, p := range params {
		maps.Copy(merged, p)
	}
	return Interpolate(tmpl, merged)
}

// FormatNumber formats a number with the locale's separators.
func (l *Localizer) FormatNumber(n float64) string {
	return FormatNumber(n, l.locale)
}

// FormatDate formats a date the way the locale writes it.
func (l *Localizer) FormatDate(t time.Time) string {
	return FormatDate(t, l.locale)
}

// FormatTime formats a clock time the way the locale writes it.
func (l *Localizer) FormatTime(t time.Time) string {
	return FormatTime(t, l.locale)
}

func (l *Localizer) lookup(key string) (string, bool) {
	if tmpl, ok := l.dict[key]; ok {
		return tmpl, true
	}
	if tmpl, ok := l.def[key]; ok {
		return tmpl, true
	}
	return "", false
}

func (l *Localizer) reportMissing(key string) {
	if l.missing != nil {
		l.missing(l.locale, key)
		return
	}
	if l.log != nil {
		l.log.Debug("translation key not found",
			logger.Component("i18n"),
			logger.Locale(l.locale),
			logger.Key(key))
	}
}

// Interpolate replaces every {{name}} placeholder in the template with the
// stringified value from params. Placeholders with no matching param are
// left verbatim so untranslated gaps stay visible. The template is scanned
// once left to right; substituted values are never re-scanned, so a param
// value containing placeholder syntax passes through literally.
func Interpolate(template string, params M) string {
	if len(params) == 0 || !strings.Contains(template, "{{") {
		return template
	}

	var b strings.Builder
	rest := template
	for {
		start := strings.Index(rest, "{{")
		if start < 0 {
			b.WriteString(rest)
			break
		}
		end := strings.Index(rest[start:], "}}")
		if end < 0 {
			b.WriteString(rest)
			break
		}

		b.WriteString(rest[:start])
		name := rest[start+2 : start+end]
		if value, ok := params[name]; ok {
			b.WriteString(fmt.Sprint(value))
		} else {
			b.WriteString(rest[start : start+end+2])
		}
		rest = rest[start+end+2:]
	}
	return b.String()
}

func mergeParams(params []M) M {
	switch len(params) {
	case 0:
		return nil
	case 1:
		return params[0]
	}

	merged := make(M)
	for _, p := range params {
		maps.Copy(merged, p)
	}
	return merged
}
