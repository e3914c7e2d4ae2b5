package css

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	tagPattern     = regexp.MustCompile(`<[^>]*>`)
	entityPattern  = regexp.MustCompile(`&.+?;`)
	slugInvalid    = regexp.MustCompile(`[^a-z0-9 _-]`)
	slugSeparators = regexp.MustCompile(`[\s-]+`)
)

// Slug turns a title into a lower-case, dash separated handle, the way theme
// names become stylesheet handles. "Business Pro" becomes "business-pro".
func Slug(title string) string {
	s := tagPattern.ReplaceAllString(title, "")
	s = entityPattern.ReplaceAllString(s, "")
	s = stripAccents(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, ".", "-")
	s = slugInvalid.ReplaceAllString(s, "")
	s = slugSeparators.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func stripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
