package i18n

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// localeFormat holds the separators and layouts for one language family.
type localeFormat struct {
	decimalSep  string
	thousandSep string
	dateLayout  string
	timeLayout  string
}

var formatsByBase = map[string]localeFormat{
	"pt": {decimalSep: ",", thousandSep: " ", dateLayout: "02-01-2006", timeLayout: "15:04"},
	"es": {decimalSep: ",", thousandSep: ".", dateLayout: "02/01/2006", timeLayout: "15:04"},
	"fr": {decimalSep: ",", thousandSep: " ", dateLayout: "02/01/2006", timeLayout: "15:04"},
	"de": {decimalSep: ",", thousandSep: ".", dateLayout: "02.01.2006", timeLayout: "15:04"},
	"en": {decimalSep: ".", thousandSep: ",", dateLayout: "01/02/2006", timeLayout: "3:04 PM"},
}

// The application is Portuguese-first, so unknown locales format the
// Portuguese way rather than falling back to English conventions.
var defaultLocaleFormat = formatsByBase["pt"]

func formatFor(locale string) localeFormat {
	tag, err := language.Parse(locale)
	if err != nil {
		return defaultLocaleFormat
	}
	base, _ := tag.Base()
	if f, ok := formatsByBase[base.String()]; ok {
		return f
	}
	return defaultLocaleFormat
}

// FormatNumber renders n with the locale's thousand and decimal separators.
// Up to two decimal places are kept; trailing zeros are trimmed.
func FormatNumber(n float64, locale string) string {
	f := formatFor(locale)

	negative := n < 0
	if negative {
		n = -n
	}

	// Round the whole value before splitting so a fraction that rounds up
	// to 1.00 carries into the integer part.
	digits, dec, _ := strings.Cut(strconv.FormatFloat(n, 'f', 2, 64), ".")

	out := groupDigits(digits, f.thousandSep)
	if dec = strings.TrimRight(dec, "0"); dec != "" {
		out += f.decimalSep + dec
	}

	if negative {
		out = "-" + out
	}
	return out
}

// FormatDate formats a calendar date the way the locale writes it.
func FormatDate(t time.Time, locale string) string {
	return t.Format(formatFor(locale).dateLayout)
}

// FormatTime formats a clock time the way the locale writes it.
func FormatTime(t time.Time, locale string) string {
	return t.Format(formatFor(locale).timeLayout)
}

func groupDigits(digits, sep string) string {
	if len(digits) <= 3 || sep == "" {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
