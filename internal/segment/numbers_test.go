package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumberWords(t *testing.T) {
	tests := []struct {
		input  string
		want   int
		wantOK bool
	}{
		{"ПЕРША", 1, true},
		{"глава перша", 1, true},
		{"ДРУГИЙ", 2, true},
		{"П’ЯТА", 5, true},
		{"ДЕВʼЯТНАДЦЯТА", 19, true},
		{"С'ОМА", 7, true},
		{"ОДИНАДЦЯТА", 11, true},
		{"ДВАДЦЯТЬ ПЕРША", 21, true},
		{"Глава двадцять дев'ята", 29, true},
		{"ДВАДЦЯТА", 20, true},
		{"ТРИДЦЯТА", 30, true},
		{"ВСТУП", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseNumberWords(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseChapterNumber(t *testing.T) {
	n, ok := ParseChapterNumber("12")
	assert.True(t, ok)
	assert.Equal(t, 12, n)

	n, ok = ParseChapterNumber("ДВАДЦЯТЬ ПЕРША")
	assert.True(t, ok)
	assert.Equal(t, 21, n)

	_, ok = ParseChapterNumber("Огляд армій")
	assert.False(t, ok)
}

func TestNormalizeVerseNumber(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"12", "12"},
		{" 7. ", "7"},
		{"48-49", "48-49"},
		{"48 – 49", "48-49"},
		{"2.17.48-49", "48-49"},
		{"1.1.5", "5"},
		{"256—266", "256-266"},
		{"ПЕРШИЙ", "1"},
		{"Вірш 3", "3"},
		{"abc", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeVerseNumber(tt.input))
		})
	}
}

func TestLookupFrontMatter(t *testing.T) {
	fm, ok := LookupFrontMatter("Передмова до англійського видання")
	assert.True(t, ok)
	assert.Equal(t, -2, fm.Number)

	fm, ok = LookupFrontMatter("INTRODUCTION")
	assert.True(t, ok)
	assert.Equal(t, 0, fm.Number)
	assert.Equal(t, "Вступ", fm.Title)

	_, ok = LookupFrontMatter("ГЛАВА 1")
	assert.False(t, ok)
}
