// Package kksongs imports songs from kksongs.org. A song is spread over
// three pages: the main page with transliteration and translation, a
// Bengali script page and a purport page. They are joined by verse position.
package kksongs

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"vedaimport/internal/domain/models/scripture"
	"vedaimport/internal/sources/bhaktivinoda"
	"vedaimport/internal/sources/htmlutil"
	"vedaimport/internal/textproc/lines"
	"vedaimport/internal/textproc/script"
)

var (
	songLink        = regexp.MustCompile(`(?i)/songs/[a-z]/[^/]+\.html`)
	translationLine = regexp.MustCompile(`^[A-Z].*[.!?]$`)
)

var contentSelectors = []string{"main", "article", ".content", "pre", "body"}

// SongURLs are the three pages that make up one song.
type SongURLs struct {
	Main       string
	Bengali    string
	Commentary string
}

// DeriveURLs computes the Bengali and purport page addresses from the main
// song page address.
func DeriveURLs(mainURL string) SongURLs {
	urls := SongURLs{Main: mainURL}
	origin := htmlutil.Origin(mainURL)
	name := htmlutil.LastSegment(mainURL)
	if origin == "" || name == "" {
		return urls
	}
	urls.Bengali = fmt.Sprintf("%s/unicode/b/%s_beng.html", origin, name)
	urls.Commentary = fmt.Sprintf("%s/authors/purports/%s_acbsp.html", origin, name)
	return urls
}

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
		urls = append(urls, l.URL)
	}
	return urls, nil
}

// MainPage is the parsed transliteration and translation page.
type MainPage struct {
	Title  string
	Verses []scripture.Verse
}

// ParseMainPage groups transliteration lines into verses. A sentence-like
// line (capitalised, more than five words, ending in terminal punctuation)
// following transliteration lines is that verse's translation.
func ParseMainPage(body []byte) (*MainPage, error) {
	doc, err := htmlutil.Parse(body)
	if err != nil {
		return nil, err
	}
	title := strings.TrimSpace(doc.Find("h1, h2, title").First().Text())
	if title == "" {
		title = "Untitled"
	}

	text := htmlutil.Text(htmlutil.MainContent(doc, contentSelectors...))
	var (
		verses  []scripture.Verse
		pending []string
	)
	flush := func(translation string) {
		verses = append(verses, scripture.Verse{
			Number:          scripture.NumberedVerse(strconv.Itoa(len(verses) + 1)),
			Transliteration: strings.Join(pending, "\n"),
			Translation:     translation,
		})
		pending = nil
	}
	for _, line := range lines.NonBlank(lines.TrimAll(lines.Split(text))) {
		if len(pending) > 0 && isTranslation(line) {
			flush(line)
			continue
		}
		pending = append(pending, line)
	}
	if len(pending) > 0 {
		flush("")
	}
	return &MainPage{Title: title, Verses: verses}, nil
}

func isTranslation(line string) bool {
	return translationLine.MatchString(line) && len(strings.Split(line, " ")) > 5
}

// ParseBengaliPage returns the Bengali stanzas in page order. Stanzas are
// separated by blank lines; lines without Bengali script are ignored.
func ParseBengaliPage(body []byte) ([]string, error) {
	doc, err := htmlutil.Parse(body)
	if err != nil {
		return nil, err
	}
	text := htmlutil.Text(htmlutil.MainContent(doc, contentSelectors...))

	var (
		stanzas []string
		current []string
	)
	// Blank lines separate stanzas, so they must survive trimming
	for _, line := range lines.Split(text) {
		line = strings.TrimSpace(line)
		if line == "" {
			if len(current) > 0 {
				stanzas = append(stanzas, strings.Join(current, "\n"))
				current = nil
			}
			continue
		}
		if script.HasBengali(line) {
			current = append(current, line)
		}
	}
	if len(current) > 0 {
		stanzas = append(stanzas, strings.Join(current, "\n"))
	}
	return stanzas, nil
}

// ParseCommentaryPage returns the purport text.
func ParseCommentaryPage(body []byte) (string, error) {
	doc, err := htmlutil.Parse(body)
	if err != nil {
		return "", err
	}
	return htmlutil.Text(htmlutil.MainContent(doc, contentSelectors...)), nil
}

// Song is a merged song.
type Song struct {
	URL    string
	Title  string
	Canto  *bhaktivinoda.Canto
	Verses []scripture.Verse
}

// Combine merges the three pages by verse position: the i-th Bengali stanza
// becomes the i-th verse's original text. The purport belongs to the song
// as a whole and is attached to its last verse. It returns nil when the
// main page has no verses.
func Combine(main *MainPage, bengali []string, commentary, songURL string) *Song {
	if main == nil || len(main.Verses) == 0 {
		return nil
	}
	verses := make([]scripture.Verse, len(main.Verses))
	copy(verses, main.Verses)
	for i := range verses {
		if i < len(bengali) {
			verses[i].Sanskrit = bengali[i]
		}
	}
	verses[len(verses)-1].Commentary = strings.TrimSpace(commentary)

	kept := verses[:0]
	for _, v := range verses {
		if v.HasText() {
			kept = append(kept, v)
		}
	}
	if len(kept) == 0 {
		return nil
	}

	song := &Song{URL: songURL, Title: main.Title, Verses: kept}
	if c, ok := bhaktivinoda.CantoFromURL(songURL); ok {
		song.Canto = &c
	}
	return song
}

// ToChapter converts a song into a verse chapter numbered n.
func (s *Song) ToChapter(n int) scripture.Chapter {
	ch := scripture.NewVerseChapter(n, fmt.Sprintf("Пісня %d", n), s.Verses)
	ch.TitleEN = s.Title
	if s.Canto != nil {
		number := s.Canto.Number
		ch.CantoNumber = &number
	}
	return ch
}
