package rules

import "strings"

// Name matches an exact file name, case-sensitive.
func Name(base string) Matcher {
	return func(t Target) bool { return t.Base == base }
}

// Ext matches a lower-cased extension given without the dot.
func Ext(ext string) Matcher {
	ext = strings.ToLower(ext)
	return func(t Target) bool { return t.Ext == ext }
}

// StemContains matches targets whose stem contains sub.
func StemContains(sub string) Matcher {
	return func(t Target) bool { return strings.Contains(t.Stem, sub) }
}

// All matches when every matcher does.
func All(ms ...Matcher) Matcher {
	return func(t Target) bool {
		for _, m := range ms {
			if !m(t) {
				return false
			}
		}
		return true
	}
}

// ComponentStem matches targets whose stem yields a usable component name.
func ComponentStem() Matcher {
	return func(t Target) bool { return validComponentName(ComponentName(t.Stem)) }
}
