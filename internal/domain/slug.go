package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ligatures spells out lowercase Latin letters that have no canonical
// decomposition, so folding accents alone would drop them.
var ligatures = map[rune]string{
	'ß': "ss",
	'æ': "ae",
	'œ': "oe",
	'ø': "o",
	'đ': "d",
	'ð': "d",
	'ħ': "h",
	'ı': "i",
	'ł': "l",
	'þ': "th",
}

// Slugify derives a lowercase, hyphen-separated identifier from a title.
// Accents are folded ("Café" becomes "cafe"), Latin ligatures are spelled
// out ("Straße" becomes "strasse") and letters of other scripts are kept
// as they are. Every other run of characters collapses to one hyphen.
func Slugify(title string) string {
	lower := strings.ToLower(title)

	folded, _, err := transform.String(
		transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		lower,
	)
	if err != nil {
		folded = lower
	}

	var b strings.Builder

	b.Grow(len(folded))

	pendingDash := false

	for _, r := range folded {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			pendingDash = true
			continue
		}

		if pendingDash && b.Len() > 0 {
			b.WriteByte('-')
		}

		pendingDash = false

		if s, ok := ligatures[r]; ok {
			b.WriteString(s)
			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}
