// Package script detects the writing systems used in verse text.
package script

import (
	"regexp"
	"strings"
)

// IsDevanagari reports whether r is in the Devanagari block.
func IsDevanagari(r rune) bool { return r >= 0x0900 && r <= 0x097F }

// IsBengali reports whether r is in the Bengali block.
func IsBengali(r rune) bool { return r >= 0x0980 && r <= 0x09FF }

// HasDevanagari reports whether s contains a Devanagari character.
func HasDevanagari(s string) bool { return strings.IndexFunc(s, IsDevanagari) >= 0 }

// HasDevanagariLetters is HasDevanagari ignoring the dandas, which Bengali
// text shares with Devanagari.
func HasDevanagariLetters(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return IsDevanagari(r) && r != '।' && r != '॥'
	}) >= 0
}

// HasBengali reports whether s contains a Bengali character.
func HasBengali(s string) bool { return strings.IndexFunc(s, IsBengali) >= 0 }

// HasIndic reports whether s contains Devanagari or Bengali characters.
func HasIndic(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return IsDevanagari(r) || IsBengali(r) }) >= 0
}

const iastLetters = "āīūṛṝḷḹṅñṭḍṇśṣḥṁṃĀĪŪṚṜḶḸṄÑṬḌṆŚṢḤṀṂ"

// HasIAST reports whether s contains an IAST diacritic letter.
func HasIAST(s string) bool { return strings.ContainsAny(s, iastLetters) }

// Danda and double danda as used in Bengali and Devanagari verse.
const (
	Danda       = "।"
	DoubleDanda = "॥"
)

var (
	asciiDoubleDanda = regexp.MustCompile(`\s*\|\|\s*`)
	asciiDanda       = regexp.MustCompile(`\s*\|\s*`)
	numberedDanda    = regexp.MustCompile(`॥\s*([০-৯०-९0-9]+)\s*॥`)
	verseMarkerBreak = regexp.MustCompile(`॥\s*([০-৯०-९0-9]+)\s*॥[ \t]*`)
)

// NormalizeDandas rewrites ASCII pipes and doubled single dandas to dandas
// and tightens the spacing of the closing "॥ N ॥" verse marker.
func NormalizeDandas(s string) string {
	s = strings.ReplaceAll(s, Danda+Danda, DoubleDanda)
	s = asciiDoubleDanda.ReplaceAllString(s, " "+DoubleDanda+" ")
	s = asciiDanda.ReplaceAllString(s, " "+Danda+" ")
	s = numberedDanda.ReplaceAllString(s, "॥ $1 ॥")
	return strings.TrimSpace(s)
}

// BreakAfterVerseMarker inserts a line break after every "॥ N ॥" marker.
func BreakAfterVerseMarker(s string) string {
	out := verseMarkerBreak.ReplaceAllString(s, "॥ $1 ॥\n")
	return strings.TrimRight(out, "\n")
}

// StripDevanagari removes Devanagari letters but keeps the dandas shared
// with Bengali text.
func StripDevanagari(s string) string {
	return strings.Map(func(r rune) rune {
		if IsDevanagari(r) && r != '।' && r != '॥' {
			return -1
		}
		return r
	}, s)
}
