package wisdomlib

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vedaimport/internal/fetch/fetchtest"
)

const versePage = `<html><body>
<div id="header"><a href="/d/doc1.html">Chapter 7</a></div>
<div id="scontent">
<h1>Verse 1.2.3</h1>
<blockquote>
<p>Original text:</p>
<p>কৃষ্ণ বলো ভাই "krishna" । কৃষ্ণ ভজ ।।৩।। दो</p>
<p>कृष्ण बोलो</p>
<p><em>kṛṣṇa bolo bhāi kṛṣṇa bhaja ||3||</em></p>
</blockquote>
<p>English translation:</p>
<p>(3) Chant the name of Kṛṣṇa, my brother, and worship Kṛṣṇa always.</p>
<p>Commentary: Gauḍīya-bhāṣya by Śrīla Bhaktisiddhānta Sarasvatī Ṭhākura:</p>
<p>This verse instructs the living entities to take up chanting.</p>
<p>short</p>
<p>কৃষ্ণ বাংলা লাইন যা বেশ লম্বা এবং বিশ</p>
<p>Another long line of commentary that should be kept.</p>
<p>Previous page</p>
<p>Trailing line that should never be included anywhere.</p>
</div></body></html>`

func TestParseVersePage(t *testing.T) {
	v, err := ParseVersePage([]byte(versePage))
	require.NoError(t, err)
	require.NotNil(t, v)

	assert.Equal(t, "3", v.Number.String())
	assert.Equal(t, "কৃষ্ণ বলো ভাই । কৃষ্ণ ভজ ॥ ৩ ॥", v.Sanskrit)
	assert.Equal(t, "kṛṣṇa bolo bhāi kṛṣṇa bhaja || 3 ||", v.Transliteration)
	assert.Equal(t, "(3) Chant the name of Kṛṣṇa, my brother, and worship Kṛṣṇa always.", v.Translation)
	assert.Equal(t, "This verse instructs the living entities to take up chanting.\n\nAnother long line of commentary that should be kept.", v.Commentary)
}

func TestParseVersePage_LineFallbacks(t *testing.T) {
	page := `<html><body><div id="pageContent">
<p>কৃষ্ণ নাম ॥ ৫ ॥</p>
<p>kṛṣṇa nāma || 5 ||</p>
<p>(5) The holy name of Kṛṣṇa is the only shelter.</p>
</div></body></html>`
	v, err := ParseVersePage([]byte(page))
	require.NoError(t, err)
	require.NotNil(t, v)

	assert.Equal(t, "1", v.Number.String())
	assert.Equal(t, "কৃষ্ণ নাম ॥ ৫ ॥", v.Sanskrit)
	assert.Equal(t, "kṛṣṇa nāma || 5 ||", v.Transliteration)
	assert.Equal(t, "(5) The holy name of Kṛṣṇa is the only shelter.", v.Translation)
	assert.Empty(t, v.Commentary)
}

func TestParseVersePage_CompositeNumber(t *testing.T) {
	page := `<body><h1>Verse 2.1.10–11</h1><p>(10-11) Long enough translation text for both verses here.</p></body>`
	v, err := ParseVersePage([]byte(page))
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, "10-11", v.Number.String())
	assert.True(t, v.Number.IsComposite())
}

func TestParseVersePage_NoContent(t *testing.T) {
	v, err := ParseVersePage([]byte(`<body><p>(1) too short</p><p>Only English prose here.</p></body>`))
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestBengaliBreaksAfterVerseMarkers(t *testing.T) {
	assert.Equal(t, "এক ॥ ১ ॥\nদুই ॥ ২ ॥", Bengali("এক ।।১।। দুই ॥২॥"))
}

func TestKhandaFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want Khanda
	}{
		{"https://www.wisdomlib.org/book/adi-khanda", Khanda{"adi", 1}},
		{"https://www.wisdomlib.org/d/doc1098648.html", Khanda{"madhya", 2}},
		{"https://www.wisdomlib.org/book/Antya-Khanda", Khanda{"antya", 3}},
		{"https://www.wisdomlib.org/d/doc42.html", Khanda{"adi", 1}},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, KhandaFromURL(tt.url))
		})
	}
}

const khandaURL = "https://www.wisdomlib.org/hinduism/book/chaitanya-bhagavata/d/doc1092508.html"

const khandaIndex = `<html><body><div id="scontent">
<a href="/hinduism/book/chaitanya-bhagavata/d/doc1092510.html">Chapter 2 - Lord's Birth</a>
<a href="/hinduism/book/chaitanya-bhagavata/d/doc1092509.html">Chapter 1 - Summary</a>
<a href="/hinduism/book/chaitanya-bhagavata/d/doc1092509.html">Chapter 1 - Summary</a>
<a href="/hinduism/book/chaitanya-bhagavata/d/doc1.html">Introduction</a>
<a href="/about">Chapter 9</a>
</div></body></html>`

func TestExtractChapterURLs(t *testing.T) {
	links, err := ExtractChapterURLs([]byte(khandaIndex), khandaURL)
	require.NoError(t, err)
	require.Len(t, links, 2)

	assert.Equal(t, ChapterLink{
		URL:    "https://www.wisdomlib.org/hinduism/book/chaitanya-bhagavata/d/doc1092509.html",
		Title:  "Summary",
		Number: 1,
		Khanda: Khanda{"adi", 1},
	}, links[0])
	assert.Equal(t, 2, links[1].Number)
	assert.Equal(t, "Lord's Birth", links[1].Title)
}

const chapterOne = `<html><body><div id="scontent">
<h1>Chapter 1 - Summary</h1>
<a href="/d/doc2010.html">Verse 1.1.10</a>
<a href="/d/doc2002.html">Verse 1.1.2-3</a>
<a href="/d/doc2001.html">Verse 1.1.1</a>
<a href="/d/doc2001.html">Verse 1.1.1</a>
</div></body></html>`

func TestExtractVerseURLs(t *testing.T) {
	verses, err := ExtractVerseURLs([]byte(chapterOne), "https://www.wisdomlib.org/d/doc1092509.html")
	require.NoError(t, err)
	require.Len(t, verses, 3)
	assert.Equal(t, VerseLink{URL: "https://www.wisdomlib.org/d/doc2001.html", Number: "1"}, verses[0])
	assert.Equal(t, VerseLink{URL: "https://www.wisdomlib.org/d/doc2002.html", Number: "2-3", Composite: true}, verses[1])
	assert.Equal(t, "10", verses[2].Number)
}

func TestParseChapterPage(t *testing.T) {
	page, err := ParseChapterPage([]byte(chapterOne), "https://www.wisdomlib.org/madhya/d/doc1.html")
	require.NoError(t, err)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, "Chapter 1 - Summary", page.Title)
	assert.Equal(t, Khanda{"madhya", 2}, page.Khanda)
	assert.Len(t, page.Verses, 3)
}

func simpleVerse(n, translation string) string {
	return `<html><body><h1>Verse 1.1.` + n + `</h1><p>(` + n + `) ` + translation + `</p></body></html>`
}

func TestImporter_Khanda(t *testing.T) {
	pages := map[string]string{khandaURL: khandaIndex}
	pages["https://www.wisdomlib.org/hinduism/book/chaitanya-bhagavata/d/doc1092509.html"] = chapterOne
	pages["https://www.wisdomlib.org/hinduism/book/chaitanya-bhagavata/d/doc1092510.html"] = `<div id="scontent"><a href="/d/doc3001.html">Verse 1.2.1</a></div>`
	pages["https://www.wisdomlib.org/d/doc2001.html"] = simpleVerse("1", "All glories to the Lord who appeared in Navadvīpa.")
	pages["https://www.wisdomlib.org/d/doc2002.html"] = simpleVerse("2-3", "These two verses describe His associates in detail.")
	pages["https://www.wisdomlib.org/d/doc2010.html"] = `<body>nothing useful</body>`
	fake := fetchtest.New(pages)

	chapters, err := NewImporter(fake, nil).Import(context.Background(), khandaURL)
	require.NoError(t, err)
	require.Len(t, chapters, 2)

	first := chapters[0]
	assert.Equal(t, 1, first.Number)
	assert.Equal(t, "Summary", first.Title)
	assert.Equal(t, "Summary", first.TitleEN)
	require.NotNil(t, first.CantoNumber)
	assert.Equal(t, 1, *first.CantoNumber)
	require.Len(t, first.Verses, 2)
	assert.Equal(t, "1", first.Verses[0].Number.String())
	assert.Equal(t, "2-3", first.Verses[1].Number.String())

	assert.Equal(t, 2, chapters[1].Number)
	assert.Empty(t, chapters[1].Verses)
}

func TestImporter_SingleVersePage(t *testing.T) {
	url := "https://www.wisdomlib.org/antya/d/doc9.html"
	chapters, err := NewImporter(fetchtest.New(map[string]string{url: simpleVerse("4", "A translation that is long enough to count.")}), nil).
		Import(context.Background(), url)
	require.NoError(t, err)
	require.Len(t, chapters, 1)
	assert.Equal(t, 3, *chapters[0].CantoNumber)
	require.Len(t, chapters[0].Verses, 1)
	assert.Equal(t, "4", chapters[0].Verses[0].Number.String())
}
