// Package pua decodes text typed in the legacy Ukrainian BBT fonts, which
// place Cyrillic letters and IAST diacritics in the Unicode Private Use Area.
package pua

import (
	"strings"
	"unicode/utf8"
)

var sequenceReplacer = newSequenceReplacer()

func newSequenceReplacer() *strings.Replacer {
	pairs := make([]string, 0, len(sequences)*2)
	for _, s := range sequences {
		pairs = append(pairs, s.from, s.to)
	}
	return strings.NewReplacer(pairs...)
}

// Decode maps every PUA glyph to Unicode. Characters outside both tables
// pass through unchanged, so plain Unicode input is returned as is.
func Decode(text string) string {
	if !ContainsPUA(text) {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if mapped, ok := glyphs[r]; ok {
			b.WriteRune(mapped)
			continue
		}
		b.WriteRune(r)
	}
	return sequenceReplacer.Replace(b.String())
}

// ContainsPUA reports whether text has any codepoint in the BMP private use area.
func ContainsPUA(text string) bool {
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r >= 0xE000 && r <= 0xF8FF {
			return true
		}
		i += size
	}
	return false
}
