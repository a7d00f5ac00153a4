// Package kana folds Japanese text into a canonical form so that hiragana,
// katakana and letter case do not affect matching.
package kana

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	hiraganaFirst = 'ぁ'
	hiraganaLast  = 'ゖ'

	// Distance between a hiragana code point and its katakana twin.
	katakanaOffset = 0x60
)

// Normalize lowercases s and maps hiragana to katakana. Every other rune is
// left untouched, so the function is total and idempotent.
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	// A Caser keeps state between calls, so each call builds its own.
	lower := cases.Lower(language.Und).String(s)

	return strings.Map(toKatakana, lower)
}

func toKatakana(r rune) rune {
	if r >= hiraganaFirst && r <= hiraganaLast {
		return r + katakanaOffset
	}
	return r
}

// Matches reports whether the raw needle occurs in a haystack that is already
// in canonical form. An empty needle matches everything.
func Matches(haystackCanonical, needleRaw string) bool {
	return strings.Contains(haystackCanonical, Normalize(needleRaw))
}

// MatchesAny normalizes each raw haystack and reports whether any of them
// contains the needle.
func MatchesAny(needleRaw string, haystacksRaw ...string) bool {
	needle := Normalize(needleRaw)
	for _, h := range haystacksRaw {
		if strings.Contains(Normalize(h), needle) {
			return true
		}
	}
	return false
}

// Equal reports whether a and b are identical once normalized.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
