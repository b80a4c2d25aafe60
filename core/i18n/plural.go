package i18n

import (
	"golang.org/x/text/language"
)

// PluralRule selects the CLDR plural category for a count.
type PluralRule func(n int) string

// CLDR plural categories. Portuguese uses one/many/other; English one/other.
// Not all languages use all categories.
const (
	PluralOne   = "one"
	PluralTwo   = "two"
	PluralFew   = "few"
	PluralMany  = "many"
	PluralOther = "other"
)

// DefaultPluralRule distinguishes exactly one from everything else, which
// is correct for unknown languages more often than any richer guess.
var DefaultPluralRule PluralRule = func(n int) string {
	if n == 1 || n == -1 {
		return PluralOne
	}
	return PluralOther
}

// PortuguesePluralRule covers European Portuguese and the close Romance
// family (es, it): one for exactly one, many from a million up.
var PortuguesePluralRule PluralRule = func(n int) string {
	if n == 1 || n == -1 {
		return PluralOne
	}
	if abs(n) >= 1000000 {
		return PluralMany
	}
	return PluralOther
}

// FrenchPluralRule treats zero as singular, unlike the rest of the Romance
// family.
var FrenchPluralRule PluralRule = func(n int) string {
	if n == 0 || n == 1 || n == -1 {
		return PluralOne
	}
	if abs(n) >= 1000000 {
		return PluralMany
	}
	return PluralOther
}

// SlavicPluralRule covers Polish, Czech, Ukrainian and relatives:
// 2-4 (except 12-14) take few, the rest many.
var SlavicPluralRule PluralRule = func(n int) string {
	if n == 1 || n == -1 {
		return PluralOne
	}

	mod10 := abs(n) % 10
	mod100 := abs(n) % 100
	if mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14) {
		return PluralFew
	}
	return PluralMany
}

// NoPluralRule is for languages without grammatical number (ja, zh, ko).
var NoPluralRule PluralRule = func(int) string {
	return PluralOther
}

// RuleForLocale returns the plural rule for a locale tag such as "pt-PT".
// The tag is normalized with x/text; unparseable or unknown tags get
// DefaultPluralRule.
func RuleForLocale(locale string) PluralRule {
	tag, err := language.Parse(locale)
	if err != nil {
		return DefaultPluralRule
	}
	base, _ := tag.Base()

	switch base.String() {
	case "pt", "es", "it":
		return PortuguesePluralRule
	case "fr":
		return FrenchPluralRule
	case "en", "de", "nl", "sv", "da", "no":
		return DefaultPluralRule
	case "pl", "cs", "sk", "uk", "ru", "hr", "sr":
		return SlavicPluralRule
	case "ja", "zh", "ko", "th", "vi":
		return NoPluralRule
	default:
		return DefaultPluralRule
	}
}

// categoryFallbacks returns the lookup order after a missing exact
// category, degrading toward "other" per CLDR recommendations.
func categoryFallbacks(category string) []string {
	switch category {
	case PluralOther:
		return nil
	case PluralTwo:
		return []string{PluralFew, PluralMany, PluralOther}
	case PluralFew:
		return []string{PluralMany, PluralOther}
	default:
		return []string{PluralOther}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
