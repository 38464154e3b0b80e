package classify

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold decomposes accented characters and strips combining marks, so
// "cuñado" and "cunado" (or "consultoría" and "consultoria") compare
// equal. All pattern and keyword tables in this package are stored in
// folded lowercase form and must only be matched against folded text.
func Fold(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, text)
	if err != nil {
		// Transform only fails on malformed input; fall back to the
		// raw text rather than dropping the item.
		folded = text
	}
	return strings.ToLower(folded)
}
