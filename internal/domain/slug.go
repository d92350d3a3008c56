package domain

import (
	"fmt"
	"strings"
	"unicode"
)

// Slugify derives a URL-safe slug from a title or name: lowercase ASCII
// letters and digits, with runs of whitespace and punctuation collapsed
// to single hyphens and anything else dropped. Diacritics are stripped
// for the Latin-1 range.
func Slugify(s string) string {
	var b strings.Builder
	prevHyphen := true // suppress leading hyphen
	for _, r := range strings.ToLower(s) {
		r = foldDiacritic(r)
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevHyphen = false
		case unicode.IsSpace(r) || unicode.IsPunct(r):
			if !prevHyphen {
				b.WriteByte('-')
				prevHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// SlugWithSuffix appends a collision counter: SlugWithSuffix("go-rocks", 2)
// returns "go-rocks-2". n < 2 returns the slug unchanged.
func SlugWithSuffix(slug string, n int) string {
	if n < 2 {
		return slug
	}
	return fmt.Sprintf("%s-%d", slug, n)
}

func foldDiacritic(r rune) rune {
	switch {
	case strings.ContainsRune("àáâãäå", r):
		return 'a'
	case strings.ContainsRune("èéêë", r):
		return 'e'
	case strings.ContainsRune("ìíîï", r):
		return 'i'
	case strings.ContainsRune("òóôõö", r):
		return 'o'
	case strings.ContainsRune("ùúûü", r):
		return 'u'
	case r == 'ç':
		return 'c'
	case r == 'ñ':
		return 'n'
	case r == 'ý' || r == 'ÿ':
		return 'y'
	}
	return r
}
