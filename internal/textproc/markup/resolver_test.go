package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinContinuations(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no markers", "one\ntwo", "one\ntwo"},
		{"hyphen join drops print hyphen", "Крі-<->\nшна", "Крішна"},
		{"hyphen join without hyphen", "Крі<->\nшна", "Крішна"},
		{"marked hyphen", "бгакті-<&>\nйоґа", "бгактійоґа"},
		{"plain join", "one <&>\ntwo", "one two"},
		{"trailing spaces before marker line end", "a<->  \nb\nc", "ab\nc"},
		{"dangling marker at end", "a<&>", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JoinContinuations(tt.input))
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		keepHTML bool
		want     string
	}{
		{
			name:  "forced breaks become newlines",
			input: "line one<R>line two<_R>three",
			want:  "line one\nline two\nthree",
		},
		{
			name:  "space markers",
			input: "a<S>b<_>c<N>d<N|>e",
			want:  "a b cde",
		},
		{
			name:     "italic kept as em",
			input:    "the <MI>Bhagavad-gītā<D> says",
			keepHTML: true,
			want:     "the <em>Bhagavad-gītā</em> says",
		},
		{
			name:  "italic stripped",
			input: "the <MI>Bhagavad-gītā<D> says",
			want:  "the Bhagavad-gītā says",
		},
		{
			name:     "bold italic",
			input:    "<BI>Kṛṣṇa</D>",
			keepHTML: true,
			want:     "<strong><em>Kṛṣṇa</em></strong>",
		},
		{
			name:     "adjacent spans merged around punctuation",
			input:    "<MI>one<D><MI>, two<D>",
			keepHTML: true,
			want:     "<em>one, two</em>",
		},
		{
			name:     "bold spans merged around punctuation",
			input:    "<B>Kṛṣṇa<D><B>; Arjuna<D> said",
			keepHTML: true,
			want:     "<strong>Kṛṣṇa; Arjuna</strong> said",
		},
		{
			name:     "adjacent spans joined with space",
			input:    "<MI>one<D> <MI>two<D>",
			keepHTML: true,
			want:     "<em>one two</em>",
		},
		{
			name:     "empty spans removed",
			input:    "a<MI><D>b",
			keepHTML: true,
			want:     "ab",
		},
		{
			name:     "book title with html",
			input:    "read <_bt>«Бгаґавад-ґіта»<_/bt> now",
			keepHTML: true,
			want:     "read <strong>«Бгаґавад-ґіта»</strong> now",
		},
		{
			name:  "book title plain gets quotes",
			input: "<_bt>Бгаґавата<_/bt>",
			want:  "«Бгаґавата»",
		},
		{
			name:  "definition list flattened",
			input: "<_dt>term<_/dt> <_dd>meaning<_/dd>",
			want:  "term meaning",
		},
		{
			name:  "slash and mon",
			input: "a<_slash>/<_/slash>b<mon>x</mon>",
			want:  "a/b",
		},
		{
			name:  "escaped angle bracket survives in plain text only if not a tag",
			input: "x <u003C> y",
			want:  "x < y",
		},
		{
			name:  "pua decoded after tags",
			input: "<MI>\uf04b\uf072\uf069\uf077\uf06e\uf061<D>",
			want:  "Крішна",
		},
		{
			name:     "unknown ventura tags removed, html kept",
			input:    "<_foo>a <p>b</p> <XY>c",
			keepHTML: true,
			want:     "a <p>b</p> c",
		},
		{
			name:  "whitespace normalization",
			input: "  a \t b\n\n\n\nc  ",
			want:  "a b\n\nc",
		},
		{
			name:  "continuations joined before tags",
			input: "Крі-<->\nшна<R>next",
			want:  "Крішна\nnext",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.input, tt.keepHTML))
		})
	}
}

func TestResolve_IdempotentOnPlainText(t *testing.T) {
	inputs := []string{
		"plain text",
		"  spaced   out\t\ttext  ",
		"para one\n\n\n\npara two\n \n",
		"Крішна kṛṣṇa कृष्ण",
	}
	for _, in := range inputs {
		for _, keep := range []bool{false, true} {
			once := Resolve(in, keep)
			assert.Equal(t, once, Resolve(once, keep), "input %q keepHTML=%v", in, keep)
		}
	}
}
