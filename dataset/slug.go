package dataset

import (
	"strings"

	"github.com/mozillazg/go-unidecode"
)

// Slug transliterates a chart or column title into a lowercase identifier
// safe for filenames and column lookups: "Выручка, $" -> "vyruchka".
func Slug(title string) string {
	ascii := unidecode.Unidecode(title)
	var b strings.Builder
	lastUnderscore := true
	for _, r := range strings.ToLower(ascii) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.Trim(b.String(), "_")
}
