package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	reHyphen   = regexp.MustCompile(`-+`)
	reValid    = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

// Make превращает произвольное имя в slug [a-z0-9-]:
// снимает диакритику (ö → o), сжимает разделители, обрезает дефисы по краям.
func Make(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))

	// Убираем комбинируемые знаки после NFD-декомпозиции
	var buf []rune
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		buf = append(buf, r)
	}
	s = string(buf)

	s = reNonAlnum.ReplaceAllString(s, "-")
	s = reHyphen.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// IsValid проверяет, что строка уже является корректным slug.
func IsValid(s string) bool {
	return reValid.MatchString(s)
}
