// Package cityname provides the canonical city-name normalisations used by
// the tariff lookup and the search surface. The two forms are deliberately
// separate: LookupKey feeds price resolution and must never strip article
// prefixes, SearchKey feeds autocomplete/dedup and does.
package cityname

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrEmptyCityName signals blank input that must not reach the rate table.
var ErrEmptyCityName = errors.New("cityname: empty city name")

// stripDiacritics decomposes the string and removes combining marks,
// so "Évry" becomes "Evry" and "Saint-Mandé" becomes "Saint-Mande".
var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize converts an arbitrary user- or database-supplied city string into
// the canonical lookup key used for price resolution: uppercase, diacritics
// stripped, apostrophes and whitespace runs collapsed to single hyphens.
// "L'Haÿ les Roses" -> "L-HAY-LES-ROSES", "Paris 15" -> "PARIS-15".
func Normalize(city string) (string, error) {
	trimmed := strings.TrimSpace(city)
	if trimmed == "" {
		return "", ErrEmptyCityName
	}

	ascii, _, err := transform.String(stripDiacritics, trimmed)
	if err != nil {
		// NFD decomposition does not fail on valid UTF-8; keep the raw
		// string rather than dropping the request.
		ascii = trimmed
	}

	var b strings.Builder
	b.Grow(len(ascii))
	for _, r := range strings.ToUpper(ascii) {
		switch {
		case r == '\'' || r == '’':
			b.WriteByte('-')
		case unicode.IsSpace(r):
			b.WriteByte('-')
		default:
			b.WriteRune(r)
		}
	}

	key := collapseHyphens(b.String())
	if key == "" {
		return "", ErrEmptyCityName
	}
	return key, nil
}

// SearchKey produces the looser form used only by search, autocomplete, and
// row deduplication: uppercase, diacritics stripped, hyphens and apostrophes
// become spaces, parenthesised qualifiers are dropped, and leading French
// articles (LE, LA, LES, L') are removed. "Raincy (le)" and "Le Raincy" both
// map to "RAINCY". Never use this form for price lookup.
func SearchKey(city string) string {
	s := dropParens(city)
	ascii, _, err := transform.String(stripDiacritics, s)
	if err != nil {
		ascii = s
	}

	var b strings.Builder
	b.Grow(len(ascii))
	for _, r := range strings.ToUpper(ascii) {
		switch {
		case r == '\'' || r == '’' || r == '-':
			b.WriteByte(' ')
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		default:
			b.WriteRune(r)
		}
	}

	key := strings.Join(strings.Fields(b.String()), " ")
	for _, article := range []string{"LE ", "LA ", "LES ", "L "} {
		if rest, ok := strings.CutPrefix(key, article); ok {
			key = rest
			break
		}
	}
	return key
}

// IsCapital reports whether a normalized city name designates the capital:
// "PARIS" itself or any arrondissement-qualified form such as "PARIS-15".
// The rate grid stores outlying communes under their own names ("SACLAY",
// not "PARIS-SACLAY"), so the prefix rule is safe for names resolved against
// the grid; unresolved caller-supplied "PARIS-..." strings also count as the
// capital by this rule.
func IsCapital(normalized string) bool {
	return normalized == "PARIS" || strings.HasPrefix(normalized, "PARIS-")
}

func collapseHyphens(s string) string {
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.Trim(s, "-")
}

func dropParens(s string) string {
	for {
		open := strings.IndexByte(s, '(')
		if open < 0 {
			return s
		}
		end := strings.IndexByte(s[open:], ')')
		if end < 0 {
			return s[:open]
		}
		s = s[:open] + s[open+end+1:]
	}
}
