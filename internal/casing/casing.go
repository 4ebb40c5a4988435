// Package casing derives identifier casing variants used to fill templates
// and build output filenames.
//
// All functions are pure and deterministic: the same input always yields the
// same output, so a request can recompute variants at any point and get
// identical results. Safe for concurrent use.
package casing

import (
	"strings"
	"unicode"
)

// Variants bundles every derived form of one raw identifier.
// Compute once per request via Derive.
type Variants struct {
	Original string
	Camel    string
	Kebab    string
	Snake    string
	Pascal   string
}

// Derive computes all casing variants of s.
func Derive(s string) Variants {
	return Variants{
		Original: s,
		Camel:    Camel(s),
		Kebab:    Kebab(s),
		Snake:    Snake(s),
		Pascal:   Pascal(s),
	}
}

// Camel lower-cases the first character and leaves the rest untouched.
// Already-camel input passes through unchanged.
func Camel(s string) string {
	if s == "" {
		return ""
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// Pascal upper-cases the first character and leaves the rest untouched.
func Pascal(s string) string {
	if s == "" {
		return ""
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// Kebab inserts a hyphen before every non-initial upper-case character,
// then lower-cases the whole string.
//
// Consecutive capitals each get their own separator, so an all-caps
// acronym comes out as "a-b-c". That boundary rule is part of the
// compatibility contract; tools consuming generated filenames rely on it.
func Kebab(s string) string {
	return separate(s, '-')
}

// Snake applies the same boundary rule as Kebab but joins with underscores.
func Snake(s string) string {
	return separate(s, '_')
}

func separate(s string, sep rune) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s) + len(s)/2)
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteRune(sep)
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
