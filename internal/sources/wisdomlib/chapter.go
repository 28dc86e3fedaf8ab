package wisdomlib

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"vedaimport/internal/sources/htmlutil"
)

// Khanda is one of the three large divisions of the book.
type Khanda struct {
	Name   string
	Number int
}

var khandas = []struct {
	Khanda
	keys []string
}{
	{Khanda{"adi", 1}, []string{"adi", "1092508"}},
	{Khanda{"madhya", 2}, []string{"madhya", "1098648"}},
	{Khanda{"antya", 3}, []string{"antya", "1108917"}},
}

// KhandaFromURL detects the khanda from slugs or known document ids in url.
// Unrecognised URLs belong to the Ādi-khaṇḍa.
func KhandaFromURL(url string) Khanda {
	lower := strings.ToLower(url)
	for _, k := range khandas {
		for _, key := range k.keys {
			if strings.Contains(lower, key) {
				return k.Khanda
			}
		}
	}
	return khandas[0].Khanda
}

var (
	chapterLinkText = regexp.MustCompile(`(?i)Chapter\s+(\d+)(?:\s*[-–]\s*(.+))?`)
	verseLinkText   = regexp.MustCompile(`(?i)Verse\s+(\d+)\.(\d+)\.(\d+(?:\s*[-–—]\s*\d+)?)`)
	chapterHeading  = regexp.MustCompile(`(?i)Chapter\s+(\d+)`)
)

func isDocLink(href, _ string) bool { return strings.Contains(href, "/d/doc") }

// ChapterLink is a chapter listed on a khanda index page.
type ChapterLink struct {
	URL    string
	Title  string
	Number int
	Khanda Khanda
}

// ExtractChapterURLs lists the chapters linked from a khanda index page,
// ordered by chapter number.
func ExtractChapterURLs(body []byte, baseURL string) ([]ChapterLink, error) {
	doc, err := htmlutil.Parse(body)
	if err != nil {
		return nil, err
	}
	khanda := KhandaFromURL(baseURL)
	var chapters []ChapterLink
	for _, l := range htmlutil.Links(htmlutil.MainContent(doc, contentSelectors...), baseURL, isDocLink) {
		m := chapterLinkText.FindStringSubmatch(l.Text)
		if m == nil {
			continue
		}
		n, _ := strconv.Atoi(m[1])
		title := strings.TrimSpace(m[2])
		if title == "" {
			title = fmt.Sprintf("Chapter %d", n)
		}
		chapters = append(chapters, ChapterLink{URL: l.URL, Title: title, Number: n, Khanda: khanda})
	}
	sort.SliceStable(chapters, func(i, j int) bool { return chapters[i].Number < chapters[j].Number })
	return chapters, nil
}

// VerseLink is a verse listed on a chapter page.
type VerseLink struct {
	URL       string
	Number    string
	Composite bool
}

// ExtractVerseURLs lists the verse pages linked from a chapter page,
// de-duplicated and ordered by first verse number.
func ExtractVerseURLs(body []byte, chapterURL string) ([]VerseLink, error) {
	doc, err := htmlutil.Parse(body)
	if err != nil {
		return nil, err
	}
	return verseLinks(htmlutil.Links(htmlutil.MainContent(doc, contentSelectors...), chapterURL, isDocLink)), nil
}

func verseLinks(links []htmlutil.Link) []VerseLink {
	var verses []VerseLink
	for _, l := range links {
		m := verseLinkText.FindStringSubmatch(l.Text)
		if m == nil {
			continue
		}
		number := normalizeRange(m[3])
		verses = append(verses, VerseLink{URL: l.URL, Number: number, Composite: strings.Contains(number, "-")})
	}
	sort.SliceStable(verses, func(i, j int) bool { return firstVerse(verses[i].Number) < firstVerse(verses[j].Number) })
	return verses
}

func firstVerse(number string) int {
	head, _, _ := strings.Cut(number, "-")
	n, _ := strconv.Atoi(head)
	return n
}

// ChapterPage is a parsed chapter page: its heading and the verse pages it
// links to.
type ChapterPage struct {
	Number int
	Title  string
	Khanda Khanda
	Verses []VerseLink
}

// ParseChapterPage reads a chapter page. The chapter number comes from the
// first "Chapter N" in the page text and defaults to 1.
func ParseChapterPage(body []byte, chapterURL string) (*ChapterPage, error) {
	doc, err := htmlutil.Parse(body)
	if err != nil {
		return nil, err
	}
	number := 1
	if m := chapterHeading.FindStringSubmatch(htmlutil.Text(doc.Find("body"))); m != nil {
		number, _ = strconv.Atoi(m[1])
	}
	title := strings.TrimSpace(doc.Find("h1, h2, .chapter-title").First().Text())
	if title == "" {
		title = fmt.Sprintf("Chapter %d", number)
	}
	links := htmlutil.Links(htmlutil.MainContent(doc, contentSelectors...), chapterURL, isDocLink)
	return &ChapterPage{
		Number: number,
		Title:  title,
		Khanda: KhandaFromURL(chapterURL),
		Verses: verseLinks(links),
	}, nil
}
