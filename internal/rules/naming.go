package rules

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ComponentName turns a file stem into a PascalCase identifier: the stem is
// split on underscores (and any other character that cannot appear in an
// identifier) and each segment gets an upper-case first letter. The rest of
// each segment is kept, so "OnlineClasses" stays as it is.
func ComponentName(stem string) string {
	caser := cases.Title(language.Und, cases.NoLower)

	var b strings.Builder
	for _, part := range strings.FieldsFunc(stem, notIdentRune) {
		b.WriteString(caser.String(part))
	}
	return b.String()
}

// validComponentName reports whether name can be used as a JSX component.
func validComponentName(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return name != "" && unicode.IsLetter(r)
}

func notIdentRune(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
