package blocks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransliteration(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "one line per pada",
			input: "dharma-kṣetre kuru-kṣetre<R>samavetā yuyutsavaḥ",
			want:  "dharma-kṣetre kuru-kṣetre\nsamavetā yuyutsavaḥ",
		},
		{
			name:  "break with space marker",
			input: "first<_R><_>second",
			want:  "first\nsecond",
		},
		{
			name:  "blank and padded lines dropped",
			input: "  one  \n\n\n  two ",
			want:  "one\ntwo",
		},
		{
			name:  "never html",
			input: "<MI>kṛṣṇa<D> govinda",
			want:  "kṛṣṇa govinda",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Transliteration(tt.input))
		})
	}
}

func TestSynonyms(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "emphasized pairs",
			input: "<MI><_dt>дгарма<_/dt><D> – <_dd>релігії;<_/dd>\n<MI><_dt>кшетре<_/dt><D> – <_dd>на місці<_/dd>",
			want:  "<em>дгарма</em> — релігії; <em>кшетре</em> — на місці",
		},
		{
			name:  "plain pair without italics",
			input: "<_dt>кару<_/dt> - <_dd>діяти<_/dd>",
			want:  "<em>кару</em> — діяти",
		},
		{
			name:  "hyphen and en dash separators normalized",
			input: "дгарма - релігія; кшетре – місце",
			want:  "дгарма — релігія; кшетре — місце",
		},
		{
			name:  "lines collapsed",
			input: "a — b;\nc — d",
			want:  "a — b; c — d",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Synonyms(tt.input))
		})
	}
}

func TestProse(t *testing.T) {
	assert.Equal(t, "Hello world.", Prose("Hello\n  world.", false))
	assert.Equal(t, "Hello <em>world</em>.", Prose("Hello <MI>world<D>.", true))
	assert.Equal(t, "Hello world.", Prose("Hello <MI>world<D>.", false))
	assert.Equal(t, "Крішна", Prose("Крі-<->\nшна", false))
	assert.Equal(t, "<em>Kṛṣṇa, Arjuna</em> said", Prose("<MI>Kṛṣṇa<D><MI>, Arjuna<D> said", true))
}

func TestQuote(t *testing.T) {
	got := Quote("line one<R>line <MI>two<D>\n\nnext stanza")
	assert.Equal(t, "line one<br>\nline <em>two</em></p>\n<p>next stanza", got)
}

func TestFirstParagraph(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain",
			input: "Шрі Крішна каже",
			want:  `<p class="purport first"><span class="drop-cap">Ш</span>рі Крішна каже</p>`,
		},
		{
			name:  "leading tags kept before drop cap",
			input: "<MI>Бгаґавад<D> ґіта",
			want:  `<p class="purport first"><em><span class="drop-cap">Б</span>гаґавад</em> ґіта</p>`,
		},
		{
			name:  "empty",
			input: "",
			want:  `<p class="purport first"></p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FirstParagraph(tt.input))
		})
	}
}

func TestParagraphHelpers(t *testing.T) {
	assert.Equal(t, "", Paragraph("", "purport"))
	assert.Equal(t, "<p>x</p>", Paragraph("x", ""))
	assert.Equal(t, `<p class="purport">x</p>`, Paragraph("x", "purport"))
	assert.Equal(t, "a\n\nb", JoinParagraphs("a", "", "b"))
}
