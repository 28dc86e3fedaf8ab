package kksongs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vedaimport/internal/domain/models/scripture"
	"vedaimport/internal/fetch/fetchtest"
)

const mainPage = `<html><head><title>Bhuliya Tomare</title></head><body>
<pre>
bhuliyā tomāre, saṁsāre āsiyā,
peye nānā-vidha byathā
O Lord, forgetting You and coming to this material world, I have suffered much pain.

tomāra caraṇe, āsiyāchi āmi,
boliba duḥkhera kathā
Now I have come to Your lotus feet and will tell You my sad tale.

final stanza line
</pre>
</body></html>`

const bengaliPage = `<html><body><pre>
ভুলিয়া তোমারে, সংসারে আসিয়া,
পেয়ে নানাবিধ ব্যথা

তোমার চরণে, আসিয়াছি আমি,
বলিব দুঃখের কথা
(English note)
</pre></body></html>`

const purportPage = `<html><body><div class="content"><p>This is the purport.</p><p>Second paragraph.</p></div></body></html>`

func TestDeriveURLs(t *testing.T) {
	urls := DeriveURLs("https://kksongs.org/songs/b/bhuliyatomare.html")
	assert.Equal(t, SongURLs{
		Main:       "https://kksongs.org/songs/b/bhuliyatomare.html",
		Bengali:    "https://kksongs.org/unicode/b/bhuliyatomare_beng.html",
		Commentary: "https://kksongs.org/authors/purports/bhuliyatomare_acbsp.html",
	}, urls)

	bad := DeriveURLs("not a url")
	assert.Empty(t, bad.Bengali)
	assert.Empty(t, bad.Commentary)
}

func TestExtractSongURLs(t *testing.T) {
	index := `<html><body>
<a href="/songs/b/bhuliyatomare.html">Bhuliya</a>
<a href="../songs/a/amara.html">Amara</a>
<a href="/songs/b/bhuliyatomare.html">dup</a>
<a href="/authors/bhaktivinoda.html">Author</a>
</body></html>`
	urls, err := ExtractSongURLs([]byte(index), "https://kksongs.org/authors/saranagati.html")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://kksongs.org/songs/b/bhuliyatomare.html",
		"https://kksongs.org/songs/a/amara.html",
	}, urls)
}

func TestParseMainPage(t *testing.T) {
	page, err := ParseMainPage([]byte(mainPage))
	require.NoError(t, err)

	assert.Equal(t, "Bhuliya Tomare", page.Title)
	require.Len(t, page.Verses, 3)
	assert.Equal(t, "1", page.Verses[0].Number.String())
	assert.Equal(t, "bhuliyā tomāre, saṁsāre āsiyā,\npeye nānā-vidha byathā", page.Verses[0].Transliteration)
	assert.Equal(t, "O Lord, forgetting You and coming to this material world, I have suffered much pain.", page.Verses[0].Translation)
	assert.Equal(t, "2", page.Verses[1].Number.String())
	assert.Equal(t, "final stanza line", page.Verses[2].Transliteration)
	assert.Empty(t, page.Verses[2].Translation)
}

func TestParseMainPage_LeadingSentenceIsTransliteration(t *testing.T) {
	page, err := ParseMainPage([]byte(`<pre>A sentence that looks like a translation line.
kṛṣṇa</pre>`))
	require.NoError(t, err)
	require.Len(t, page.Verses, 1)
	assert.Equal(t, "A sentence that looks like a translation line.\nkṛṣṇa", page.Verses[0].Transliteration)
}

func TestParseBengaliPage(t *testing.T) {
	stanzas, err := ParseBengaliPage([]byte(bengaliPage))
	require.NoError(t, err)
	require.Len(t, stanzas, 2)
	assert.Equal(t, "ভুলিয়া তোমারে, সংসারে আসিয়া,\nপেয়ে নানাবিধ ব্যথা", stanzas[0])
	assert.Equal(t, "তোমার চরণে, আসিয়াছি আমি,\nবলিব দুঃখের কথা", stanzas[1])
}

func TestParseBengaliPage_StanzaPerVerse(t *testing.T) {
	tests := []struct {
		name string
		page string
		want []string
	}{
		{
			name: "paragraphs",
			page: `<html><body><div class="content"><p>প্রথম পদ<br>দ্বিতীয় পদ</p><p>তৃতীয় পদ</p><p>চতুর্থ পদ</p></div></body></html>`,
			want: []string{"প্রথম পদ\nদ্বিতীয় পদ", "তৃতীয় পদ", "চতুর্থ পদ"},
		},
		{
			name: "indented blank separators",
			page: "<html><body><pre>  প্রথম পদ  \n   \n  তৃতীয় পদ\n\n\nচতুর্থ পদ</pre></body></html>",
			want: []string{"প্রথম পদ", "তৃতীয় পদ", "চতুর্থ পদ"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stanzas, err := ParseBengaliPage([]byte(tt.page))
			require.NoError(t, err)
			assert.Equal(t, tt.want, stanzas)
		})
	}
}

func TestCombine_BengaliAlignedByPosition(t *testing.T) {
	parsed, err := ParseMainPage([]byte(mainPage))
	require.NoError(t, err)
	stanzas, err := ParseBengaliPage([]byte(bengaliPage))
	require.NoError(t, err)

	song := Combine(parsed, stanzas, "", "https://kksongs.org/songs/b/bhuliyatomare.html")
	require.NotNil(t, song)
	require.GreaterOrEqual(t, len(song.Verses), 2)
	assert.Equal(t, stanzas[0], song.Verses[0].Sanskrit)
	assert.Equal(t, stanzas[1], song.Verses[1].Sanskrit)
}

func TestCombine_DropsEmptyVerses(t *testing.T) {
	page := &MainPage{Title: "t", Verses: []scripture.Verse{
		{Number: scripture.NumberedVerse("1"), Transliteration: "a"},
		{Number: scripture.NumberedVerse("2")},
		{Number: scripture.NumberedVerse("3")},
	}}

	song := Combine(page, []string{"b1", "b2"}, "", "https://kksongs.org/songs/t/t.html")
	require.NotNil(t, song)
	require.Len(t, song.Verses, 2)
	assert.Equal(t, "1", song.Verses[0].Number.String())
	assert.Equal(t, "2", song.Verses[1].Number.String())
	assert.Equal(t, "b2", song.Verses[1].Sanskrit)

	song = Combine(page, nil, "purport", "https://kksongs.org/songs/t/t.html")
	require.NotNil(t, song)
	require.Len(t, song.Verses, 2)
	assert.Equal(t, "3", song.Verses[1].Number.String())
	assert.Equal(t, "purport", song.Verses[1].Commentary)

	empty := &MainPage{Verses: []scripture.Verse{{Number: scripture.NumberedVerse("1")}}}
	assert.Nil(t, Combine(empty, nil, "", "u"))
}

func TestCombine(t *testing.T) {
	parsed, err := ParseMainPage([]byte(mainPage))
	require.NoError(t, err)

	song := Combine(parsed, []string{"b1", "b2"}, "  purport  ", "https://kksongs.org/songs/b/bhuliyatomare.html")
	require.NotNil(t, song)
	require.Len(t, song.Verses, 3)
	assert.Equal(t, "b1", song.Verses[0].Sanskrit)
	assert.Equal(t, "b2", song.Verses[1].Sanskrit)
	assert.Empty(t, song.Verses[2].Sanskrit)
	assert.Empty(t, song.Verses[0].Commentary)
	assert.Equal(t, "purport", song.Verses[2].Commentary)
	assert.Nil(t, song.Canto)
	assert.Empty(t, parsed.Verses[0].Sanskrit, "main page verses are not modified")

	assert.Nil(t, Combine(&MainPage{Title: "x"}, nil, "", "u"))
}

func TestCombine_CantoFromURL(t *testing.T) {
	song := Combine(&MainPage{Verses: []scripture.Verse{{Transliteration: "x"}}}, nil, "", "https://kksongs.org/songs/d/dainya.html")
	require.NotNil(t, song)
	require.NotNil(t, song.Canto)
	assert.Equal(t, 1, song.Canto.Number)
	assert.Equal(t, 1, *song.ToChapter(4).CantoNumber)
}

func TestImporter_FetchSongToleratesMissingPages(t *testing.T) {
	fake := fetchtest.New(map[string]string{
		"https://kksongs.org/songs/b/bhuliyatomare.html": mainPage,
	})
	song, err := NewImporter(fake, nil).FetchSong(context.Background(), "https://kksongs.org/songs/b/bhuliyatomare.html")
	require.NoError(t, err)
	require.NotNil(t, song)
	assert.Len(t, song.Verses, 3)
	assert.Empty(t, song.Verses[0].Sanskrit)
	assert.Equal(t, []string{
		"https://kksongs.org/songs/b/bhuliyatomare.html",
		"https://kksongs.org/unicode/b/bhuliyatomare_beng.html",
		"https://kksongs.org/authors/purports/bhuliyatomare_acbsp.html",
	}, fake.Requested())
}

func TestImporter_Import(t *testing.T) {
	fake := fetchtest.New(map[string]string{
		"https://kksongs.org/authors/list.html":                         `<a href="/songs/b/bhuliyatomare.html">x</a><a href="/songs/z/gone.html">y</a>`,
		"https://kksongs.org/songs/b/bhuliyatomare.html":                mainPage,
		"https://kksongs.org/unicode/b/bhuliyatomare_beng.html":         bengaliPage,
		"https://kksongs.org/authors/purports/bhuliyatomare_acbsp.html": purportPage,
	})
	chapters, err := NewImporter(fake, nil).Import(context.Background(), "https://kksongs.org/authors/list.html")
	require.NoError(t, err)
	require.Len(t, chapters, 1)

	ch := chapters[0]
	assert.Equal(t, 1, ch.Number)
	assert.Equal(t, "Bhuliya Tomare", ch.TitleEN)
	require.Len(t, ch.Verses, 3)
	assert.Contains(t, ch.Verses[0].Sanskrit, "ভুলিয়া")
	assert.Equal(t, "This is the purport.\n\nSecond paragraph.", ch.Verses[2].Commentary)
}
