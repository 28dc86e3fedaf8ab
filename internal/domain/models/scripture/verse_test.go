package scripture

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestVerseNumber_JSON(t *testing.T) {
	tests := []struct {
		name   string
		number VerseNumber
		want   string
	}{
		{"numbered", NumberedVerse("12"), `"12"`},
		{"composite", NumberedVerse("48-49"), `"48-49"`},
		{"untitled", UntitledVerse(), `"0"`},
		{"special", SpecialVerse(), `"0"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.number)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}

	var n VerseNumber
	require.NoError(t, json.Unmarshal([]byte(`"0"`), &n))
	assert.Equal(t, Untitled, n.Kind)
}

func TestVerseNumber_Range(t *testing.T) {
	start, end, ok := NumberedVerse("48-49").Range()
	assert.True(t, ok)
	assert.Equal(t, 48, start)
	assert.Equal(t, 49, end)

	_, _, ok = NumberedVerse("7").Range()
	assert.False(t, ok)
	assert.False(t, SpecialVerse().IsComposite())
	assert.True(t, NumberedVerse("").IsZero())
}

func TestVerse_OmitsEmptyFields(t *testing.T) {
	data, err := json.Marshal(Verse{Number: NumberedVerse("1"), Translation: "Hello."})
	require.NoError(t, err)
	assert.JSONEq(t, `{"verse_number":"1","translation":"Hello."}`, string(data))
}

func TestVerseSortKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1", "001.000.000.000"},
		{"12", "012.000.000.000"},
		{"48-49", "048.000.000.000"},
		{"1.2.3", "001.002.003.000"},
		{"5a", "005.000.000.097"},
		{"0", "000.000.000.000"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, VerseSortKey(tt.input))
		})
	}
}

func TestChapter_Constructors(t *testing.T) {
	text := NewTextChapter(-2, "Передмова", "content")
	assert.Equal(t, ChapterTypeText, text.Type)
	assert.NotNil(t, text.Verses)
	assert.True(t, text.IsFrontMatter())

	verses := NewVerseChapter(3, "Глава 3", nil)
	assert.Equal(t, ChapterTypeVerses, verses.Type)
	assert.NotNil(t, verses.Verses)
	assert.False(t, verses.IsFrontMatter())
}

func TestPattern(t *testing.T) {
	p := ParsePattern(`^ГЛАВА (\d+)`)
	assert.True(t, p.Anchored)
	assert.Equal(t, `ГЛАВА (\d+)`, p.Source)
	assert.Equal(t, `^ГЛАВА (\d+)`, p.String())

	anchored, err := p.CompileAnchored()
	require.NoError(t, err)
	unanchored, err := p.CompileUnanchored()
	require.NoError(t, err)

	assert.False(t, anchored.MatchString("  глава 3"))
	assert.True(t, unanchored.MatchString("  глава 3"))
	assert.True(t, anchored.MatchString("вступ\nглава 3"))
}

func TestPattern_Unmarshal(t *testing.T) {
	var tpl ImportTemplate
	src := "id: gita\nname: Gita\nchapter: '^ГЛАВА (\\d+)'\nverse:\n  source: 'ТЕКСТ (\\d+)'\n  anchored: true\n"
	require.NoError(t, yaml.Unmarshal([]byte(src), &tpl))
	assert.Equal(t, Pattern{Source: `ГЛАВА (\d+)`, Anchored: true}, tpl.Chapter)
	assert.Equal(t, Pattern{Source: `ТЕКСТ (\d+)`, Anchored: true}, tpl.Verse)

	var fromJSON ImportTemplate
	require.NoError(t, json.Unmarshal([]byte(`{"translation":"^ПЕРЕКЛАД","commentary":{"source":"ПОЯСНЕННЯ"}}`), &fromJSON))
	assert.Equal(t, Pattern{Source: "ПЕРЕКЛАД", Anchored: true}, fromJSON.Translation)
	assert.Equal(t, Pattern{Source: "ПОЯСНЕННЯ"}, fromJSON.Commentary)
}
