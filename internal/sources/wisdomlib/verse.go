// Package wisdomlib imports Śrī Caitanya-bhāgavata from wisdomlib.org,
// where every verse lives on its own page.
package wisdomlib

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"vedaimport/internal/domain/models/scripture"
	"vedaimport/internal/sources/htmlutil"
	"vedaimport/internal/textproc/lines"
	"vedaimport/internal/textproc/script"
)

var contentSelectors = []string{"#scontent", "#pageContent", "body"}

var (
	versePageNumber  = regexp.MustCompile(`(?i)Verse\s+\d+\.\d+\.(\d+(?:\s*[-–—]\s*\d+)?)`)
	quotedEnglish    = regexp.MustCompile(`"[^"]*"`)
	iastMarker       = regexp.MustCompile(`\|\|\s*(\d+(?:-\d+)?)\s*\|\|`)
	bengaliVerseEnd  = regexp.MustCompile(`॥\s*[০-৯\d]+(?:-[০-৯\d]+)?\s*॥`)
	iastLineStart    = regexp.MustCompile(`(?i)^[a-zāīūṛṝḷḹṃḥśṣṇṭḍñṅ]`)
	numberedLine     = regexp.MustCompile(`^\((\d+(?:-\d+)?)\)\s*(.+)`)
	englishWord      = regexp.MustCompile(`[a-zA-Z]{3,}`)
	commentaryStart  = regexp.MustCompile(`(?i)Commentary:|Gauḍīya-bhāṣya`)
	commentarySplit  = regexp.MustCompile(`(?i)Commentary:\s*Gauḍīya-bhāṣya[^:]*:|Commentary:`)
	commentaryStop   = regexp.MustCompile(`(?i)^(Previous|Next|Like what you read|Let's grow together|parent:|source:)`)
	nextVerseHeading = regexp.MustCompile(`(?i)^Verse\s+\d+\.\d+\.\d+`)
)

// Shorter lines inside a commentary are page furniture.
const minCommentaryLine = 20

// ParseVersePage extracts one verse. Bengali text and the IAST
// transliteration come from the first blockquote (second and fourth
// paragraph), with whole-page line scans as fallbacks. It returns nil when
// the page has neither Bengali text nor a translation.
func ParseVersePage(body []byte) (*scripture.Verse, error) {
	doc, err := htmlutil.Parse(body)
	if err != nil {
		return nil, err
	}
	pageLines := lines.NonBlank(lines.TrimAll(lines.Split(htmlutil.Text(doc.Find("body")))))

	number := "1"
	if m := versePageNumber.FindStringSubmatch(strings.Join(pageLines, "\n")); m != nil {
		number = normalizeRange(m[1])
	}
	verse := &scripture.Verse{Number: scripture.NumberedVerse(number)}

	content := htmlutil.MainContent(doc, contentSelectors...)
	if bq := content.Find("blockquote").First(); bq.Length() > 0 {
		paragraphs := bq.Find("p")
		verse.Sanskrit = blockquoteBengali(paragraphs)
		verse.Transliteration = blockquoteIAST(paragraphs)
	}

	if verse.Sanskrit == "" {
		for _, line := range pageLines {
			if script.HasBengali(line) && !script.HasDevanagariLetters(line) && bengaliVerseEnd.MatchString(line) {
				verse.Sanskrit = Bengali(line)
				break
			}
		}
	}
	if verse.Transliteration == "" {
		for _, line := range pageLines {
			if script.HasIAST(line) && strings.Contains(line, "||") &&
				iastLineStart.MatchString(line) && iastMarker.MatchString(line) {
				verse.Transliteration = Transliteration(line)
				break
			}
		}
	}

	for _, line := range pageLines {
		if m := numberedLine.FindStringSubmatch(line); m != nil {
			if utf8.RuneCountInString(m[2]) > 20 && englishWord.MatchString(m[2]) {
				verse.Translation = line
				break
			}
		}
	}
	verse.Commentary = commentary(pageLines)

	if verse.Sanskrit == "" && verse.Translation == "" {
		return nil, nil
	}
	return verse, nil
}

func blockquoteBengali(paragraphs *goquery.Selection) string {
	if paragraphs.Length() < 2 {
		return ""
	}
	text := htmlutil.Text(paragraphs.Eq(1))
	if !script.HasBengali(text) {
		return ""
	}
	cleaned := script.StripDevanagari(text)
	if !script.HasBengali(cleaned) {
		return ""
	}
	return Bengali(cleaned)
}

func blockquoteIAST(paragraphs *goquery.Selection) string {
	if paragraphs.Length() >= 4 {
		if em := paragraphs.Eq(3).Find("em").First(); em.Length() > 0 {
			if text := strings.TrimSpace(em.Text()); script.HasIAST(text) {
				return Transliteration(text)
			}
		}
	}
	if paragraphs.Length() >= 1 {
		first := htmlutil.Text(paragraphs.Eq(0))
		if script.HasIAST(first) && strings.Contains(first, "||") {
			return Transliteration(first)
		}
	}
	return ""
}

// Bengali cleans a Bengali verse: English glosses in quotes are removed,
// dandas are normalised and every "॥ N ॥" marker ends a line.
func Bengali(text string) string {
	text = quotedEnglish.ReplaceAllString(text, "")
	text = script.BreakAfterVerseMarker(script.NormalizeDandas(text))
	out := lines.NonBlank(lines.Split(text))
	for i, l := range out {
		out[i] = strings.Join(strings.Fields(l), " ")
	}
	return strings.Join(out, "\n")
}

// Transliteration collapses whitespace and normalises the "|| N ||" marker.
func Transliteration(text string) string {
	text = iastMarker.ReplaceAllString(text, "|| $1 ||")
	return strings.Join(strings.Fields(text), " ")
}

func commentary(pageLines []string) string {
	var parts []string
	in := false
	for _, line := range pageLines {
		if !in {
			if !commentaryStart.MatchString(line) {
				continue
			}
			in = true
			split := commentarySplit.Split(line, -1)
			if len(split) > 1 {
				if rest := strings.TrimSpace(split[len(split)-1]); utf8.RuneCountInString(rest) > minCommentaryLine {
					parts = append(parts, rest)
				}
			}
			continue
		}
		if commentaryStop.MatchString(line) || nextVerseHeading.MatchString(line) {
			break
		}
		if utf8.RuneCountInString(line) < minCommentaryLine {
			continue
		}
		if script.HasBengali(line) || script.HasDevanagari(line) {
			continue
		}
		parts = append(parts, line)
	}
	return strings.Join(parts, "\n\n")
}

var rangeDash = regexp.MustCompile(`\s*[-–—]\s*`)

func normalizeRange(s string) string {
	return rangeDash.ReplaceAllString(strings.TrimSpace(s), "-")
}
