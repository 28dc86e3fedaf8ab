package segment

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// unitWords covers Ukrainian ordinals (feminine and masculine) and cardinals
// from one to nineteen.
var unitWords = map[string]int{
	"ПЕРША": 1, "ПЕРШИЙ": 1, "ОДНА": 1, "ОДИН": 1,
	"ДРУГА": 2, "ДРУГИЙ": 2, "ДВА": 2, "ДВІ": 2,
	"ТРЕТЯ": 3, "ТРЕТІЙ": 3, "ТРИ": 3,
	"ЧЕТВЕРТА": 4, "ЧЕТВЕРТИЙ": 4, "ЧОТИРИ": 4,
	"П'ЯТА": 5, "П'ЯТИЙ": 5, "П'ЯТЬ": 5,
	"ШОСТА": 6, "ШОСТИЙ": 6, "ШІСТЬ": 6,
	"СЬОМА": 7, "С'ОМА": 7, "СЬОМИЙ": 7, "СІМ": 7,
	"ВОСЬМА": 8, "ВОСЬМИЙ": 8, "ВІСІМ": 8,
	"ДЕВ'ЯТА": 9, "ДЕВ'ЯТИЙ": 9, "ДЕВ'ЯТЬ": 9,
	"ДЕСЯТА": 10, "ДЕСЯТИЙ": 10, "ДЕСЯТЬ": 10,
	"ОДИНАДЦЯТА": 11, "ОДИНАДЦЯТИЙ": 11, "ОДИНАДЦЯТЬ": 11,
	"ДВАНАДЦЯТА": 12, "ДВАНАДЦЯТИЙ": 12, "ДВАНАДЦЯТЬ": 12,
	"ТРИНАДЦЯТА": 13, "ТРИНАДЦЯТИЙ": 13, "ТРИНАДЦЯТЬ": 13,
	"ЧОТИРНАДЦЯТА": 14, "ЧОТИРНАДЦЯТИЙ": 14, "ЧОТИРНАДЦЯТЬ": 14,
	"П'ЯТНАДЦЯТА": 15, "П'ЯТНАДЦЯТИЙ": 15, "П'ЯТНАДЦЯТЬ": 15,
	"ШІСТНАДЦЯТА": 16, "ШІСТНАДЦЯТИЙ": 16, "ШІСТНАДЦЯТЬ": 16,
	"СІМНАДЦЯТА": 17, "СІМНАДЦЯТИЙ": 17, "СІМНАДЦЯТЬ": 17,
	"ВІСІМНАДЦЯТА": 18, "ВІСІМНАДЦЯТИЙ": 18, "ВІСІМНАДЦЯТЬ": 18,
	"ДЕВ'ЯТНАДЦЯТА": 19, "ДЕВ'ЯТНАДЦЯТИЙ": 19, "ДЕВ'ЯТНАДЦЯТЬ": 19,
}

// tensWords are the tens that may stand alone or head a compound
// ("ДВАДЦЯТЬ ПЕРША" is 21).
var tensWords = map[string]int{
	"ДВАДЦЯТА": 20, "ДВАДЦЯТИЙ": 20, "ДВАДЦЯТЬ": 20,
	"ТРИДЦЯТА": 30, "ТРИДЦЯТИЙ": 30, "ТРИДЦЯТЬ": 30,
}

var apostrophes = strings.NewReplacer("ʼ", "'", "’", "'", "`", "'", "′", "'")

// normalizeWords upper-cases s, composes it to NFC and folds apostrophe
// variants to ASCII.
func normalizeWords(s string) string {
	return apostrophes.Replace(strings.ToUpper(norm.NFC.String(s)))
}

func wordFields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
}

// ParseNumberWords finds the first Ukrainian number word in s. Compounds of
// a tens word followed by a unit below ten are summed.
func ParseNumberWords(s string) (int, bool) {
	fields := wordFields(normalizeWords(s))
	for i, f := range fields {
		if tens, ok := tensWords[f]; ok {
			if i+1 < len(fields) {
				if unit, ok := unitWords[fields[i+1]]; ok && unit < 10 {
					return tens + unit, true
				}
			}
			return tens, true
		}
		if unit, ok := unitWords[f]; ok {
			return unit, true
		}
	}
	return 0, false
}

var firstDigits = regexp.MustCompile(`\d+`)

// ParseArabic returns the first run of digits in s.
func ParseArabic(s string) (int, bool) {
	d := firstDigits.FindString(s)
	if d == "" {
		return 0, false
	}
	n, err := strconv.Atoi(d)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseChapterNumber reads a chapter numeral written in digits or words.
func ParseChapterNumber(raw string) (int, bool) {
	if n, ok := ParseArabic(raw); ok {
		return n, true
	}
	return ParseNumberWords(raw)
}

var (
	dottedPrefix = regexp.MustCompile(`^(?:\d+\.)+(\d)`)
	numericRange = regexp.MustCompile(`(\d+)\s*[-–—]\s*(\d+)`)
	nonNumeric   = regexp.MustCompile(`[^\d-]+`)
)

// NormalizeVerseNumber turns a raw verse token into its canonical form:
// number words become digits, a dotted "1.1." prefix is dropped, ranges are
// kept as "a-b" and everything that is not a digit or hyphen is removed.
// An empty result means the number could not be resolved.
func NormalizeVerseNumber(raw string) string {
	s := strings.TrimSpace(raw)
	if !firstDigits.MatchString(s) {
		if n, ok := ParseNumberWords(s); ok {
			return strconv.Itoa(n)
		}
	}

	s = dottedPrefix.ReplaceAllString(s, "$1")
	if m := numericRange.FindStringSubmatch(s); m != nil {
		return m[1] + "-" + m[2]
	}

	s = nonNumeric.ReplaceAllString(s, "")
	return strings.Trim(s, "-")
}
