// Package bhaktivinoda scrapes Śaraṇāgati songs from the Bhaktivinoda
// Institute site.
package bhaktivinoda

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"vedaimport/internal/domain/models/scripture"
	"vedaimport/internal/sources/htmlutil"
	"vedaimport/internal/textproc/lines"
)

// Song is one parsed song page.
type Song struct {
	URL     string
	Number  int // 0 when the title carries no song number
	TitleEN string
	Verses  []scripture.Verse
}

var (
	songLink    = regexp.MustCompile(`(?i)/(song-|dainya|atmanivedana|goptritve|varana|avaśya|avasya|raksibe|krsna|bhakti-anukula|bhakti-pratikula|bhava|svikara|bhajana|lalasa|siddhi|vijnaptih|vijnapti|nama-mahatmya|sri-nama)`)
	blockNumber = regexp.MustCompile(`^\((\d+(?:-\d+)?)\)`)
	siteSuffix  = regexp.MustCompile(`(?i)\s*-\s*Bhaktivinoda Institute\s*$`)
	songTitle   = regexp.MustCompile(`(?i)Song\s+(One|Two|Three|Four|Five|Six|Seven|Eight|Nine|Ten|Eleven|Twelve|Thirteen|\d+)`)
)

var numberWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6, "seven": 7,
	"eight": 8, "nine": 9, "ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13,
}

var contentSelectors = []string{"main", "article", ".entry-content", ".post-content", "body"}

// ExtractSongURLs lists the song pages linked from an index page.
func ExtractSongURLs(body []byte, baseURL string) ([]string, error) {
	doc, err := htmlutil.Parse(body)
	if err != nil {
		return nil, err
	}
	links := htmlutil.Links(doc.Selection, baseURL, func(href, _ string) bool {
		return songLink.MatchString(href)
	})
	urls := make([]string, 0, len(links))
	for _, l := range links {
		if l.URL == baseURL {
			continue
		}
		urls = append(urls, l.URL)
	}
	return urls, nil
}

// ParseSongPage extracts the numbered verse blocks of a song. It returns
// nil when the page holds no verses.
func ParseSongPage(body []byte, pageURL string) (*Song, error) {
	doc, err := htmlutil.Parse(body)
	if err != nil {
		return nil, err
	}
	verses := parseBlocks(htmlutil.Text(htmlutil.MainContent(doc, contentSelectors...)))
	if len(verses) == 0 {
		return nil, nil
	}

	title := strings.TrimSpace(doc.Find("h1").First().Text())
	if title == "" {
		title = siteSuffix.ReplaceAllString(strings.TrimSpace(doc.Find("title").First().Text()), "")
	}
	number := 0
	if m := songTitle.FindStringSubmatch(title); m != nil {
		number = songNumber(m[1])
		title = fmt.Sprintf("Song %d", number)
	}
	if title == "" {
		title = "Untitled"
	}

	return &Song{URL: pageURL, Number: number, TitleEN: title, Verses: verses}, nil
}

func songNumber(word string) int {
	if n, ok := numberWords[strings.ToLower(word)]; ok {
		return n
	}
	n, _ := strconv.Atoi(word)
	return n
}

// parseBlocks reads "(N)" blocks: transliteration lines followed by an
// "N) translation" line.
func parseBlocks(text string) []scripture.Verse {
	var verses []scripture.Verse
	groups := lines.GroupBy(lines.NonBlank(lines.TrimAll(lines.Split(text))), func(l string) bool {
		return strings.HasPrefix(l, "(")
	})
	for _, g := range groups {
		m := blockNumber.FindStringSubmatch(g.Header)
		if m == nil {
			continue
		}
		number := m[1]
		content := g.Body
		if rest := strings.TrimSpace(g.Header[len(m[0]):]); rest != "" {
			content = append([]string{rest}, content...)
		}
		for _, v := range blockVerses(number, content) {
			if v.HasText() {
				verses = append(verses, v)
			}
		}
	}
	return verses
}

func blockVerses(number string, content []string) []scripture.Verse {
	marker := number + ")"
	split := -1
	for i := 1; i < len(content); i++ {
		if rest, ok := strings.CutPrefix(content[i], marker); ok && rest != "" && (rest[0] == ' ' || rest[0] == '\t') {
			split = i
			break
		}
	}
	if split < 0 {
		return []scripture.Verse{{
			Number:          scripture.NumberedVerse(number),
			Transliteration: strings.Join(content, "\n"),
		}}
	}

	translit := content[:split]
	tail := append([]string{strings.TrimSpace(strings.TrimPrefix(content[split], marker))}, content[split+1:]...)
	translation := strings.TrimSpace(strings.Join(tail, "\n"))

	start, end, composite := compositeRange(number)
	if !composite || end-start >= maxCompositeSpan {
		return []scripture.Verse{{
			Number:          scripture.NumberedVerse(number),
			Transliteration: strings.Join(translit, "\n"),
			Translation:     translation,
		}}
	}

	// A composite block becomes separate verses that share the translation;
	// the transliteration lines are divided evenly between them.
	count := end - start + 1
	per := int(math.Ceil(float64(len(translit)) / float64(count)))
	verses := make([]scripture.Verse, 0, count)
	for v := start; v <= end; v++ {
		from := min((v-start)*per, len(translit))
		to := min(from+per, len(translit))
		verses = append(verses, scripture.Verse{
			Number:          scripture.NumberedVerse(strconv.Itoa(v)),
			Transliteration: strings.Join(translit[from:to], "\n"),
			Translation:     translation,
		})
	}
	return verses
}

// maxCompositeSpan bounds how many verses one "(N-M)" block may expand to.
// Wider ranges are kept as a single composite verse.
const maxCompositeSpan = 12

func compositeRange(number string) (start, end int, ok bool) {
	a, b, found := strings.Cut(number, "-")
	if !found {
		return 0, 0, false
	}
	start, err1 := strconv.Atoi(a)
	end, err2 := strconv.Atoi(b)
	if err1 != nil || err2 != nil || end < start {
		return 0, 0, false
	}
	return start, end, true
}

// SongToChapter converts a song into a verse chapter numbered n.
func SongToChapter(song *Song, n int, canto *Canto) scripture.Chapter {
	ch := scripture.NewVerseChapter(n, fmt.Sprintf("Пісня %d", n), song.Verses)
	ch.TitleEN = song.TitleEN
	if ch.TitleEN == "" || ch.TitleEN == "Untitled" {
		ch.TitleEN = fmt.Sprintf("Song %d", n)
	}
	if canto != nil {
		number := canto.Number
		ch.CantoNumber = &number
	}
	return ch
}
