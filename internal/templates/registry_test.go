package templates

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vedaimport/internal/domain"
	"vedaimport/internal/domain/models/scripture"
	"vedaimport/internal/segment"
)

func TestNewRegistry_LoadsPresetsInOrder(t *testing.T) {
	r, err := NewRegistry(nil)
	require.NoError(t, err)

	var ids []string
	for _, e := range r.List() {
		ids = append(ids, e.Template.ID)
		assert.True(t, e.Builtin)
		assert.NotNil(t, e.Compiled)
	}
	assert.Equal(t, []string{"bhagavad-gita", "srimad-bhagavatam", "songs", "bbt-english", "wisdomlib"}, ids)

	gita, err := r.Get("bhagavad-gita")
	require.NoError(t, err)
	assert.Equal(t, "uk", gita.Language)
	assert.True(t, gita.Template.Chapter.Anchored)
}

func TestRegistry_PresetSegmentsDocument(t *testing.T) {
	r, err := NewRegistry(nil)
	require.NoError(t, err)
	gita, err := r.Get("bhagavad-gita")
	require.NoError(t, err)

	text := "ГЛАВА ПЕРША\nОгляд армій\nТЕКСТ 1\ndharma-kṣetre\nПОСЛІВНИЙ ПЕРЕКЛАД\nдгарма — релігія\nПЕРЕКЛАД\nДгрітараштра сказав.\nПОЯСНЕННЯ\nКоментар."
	chapters := segment.New(nil).SplitChapters(text, gita.Compiled)

	require.Len(t, chapters, 1)
	assert.Equal(t, 1, chapters[0].Number)
	require.Len(t, chapters[0].Verses, 1)
	v := chapters[0].Verses[0]
	assert.Equal(t, "dharma-kṣetre", v.Transliteration)
	assert.Equal(t, "дгарма — релігія", v.Synonyms)
	assert.Equal(t, "Дгрітараштра сказав.", v.Translation)
	assert.Equal(t, "Коментар.", v.Commentary)
}

func TestRegistry_GetUnknown(t *testing.T) {
	r, err := NewRegistry(nil)
	require.NoError(t, err)

	_, err = r.Get("missing")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestRegistry_LoadDir(t *testing.T) {
	dir := t.TempDir()
	content := `language: uk
templates:
  bhagavad-gita:
    name: "Override"
    chapter: '^РОЗДІЛ\s+(\d+)'
    verse: '^ШЛОКА\s+(\d+)'
    synonyms: '^СЛОВА'
    translation: '^ПЕРЕКЛАД'
    commentary: '^ПОЯСНЕННЯ'
  custom-book:
    name: "Custom"
    chapter: '^Part\s+(\d+)'
    verse: '^Sloka\s+(\d+)'
    synonyms: '^Words'
    translation: '^Meaning'
    commentary: '^Notes'
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "extra.yaml"), []byte(content), 0o644))

	r, err := NewRegistry(nil)
	require.NoError(t, err)
	require.NoError(t, r.LoadDir(dir))

	gita, err := r.Get("bhagavad-gita")
	require.NoError(t, err)
	assert.Equal(t, "Override", gita.Template.Name)
	assert.False(t, gita.Builtin)

	custom, err := r.Get("custom-book")
	require.NoError(t, err)
	assert.Equal(t, "Custom", custom.Template.Name)
	assert.Len(t, r.List(), 6)

	assert.NoError(t, r.LoadDir(filepath.Join(dir, "absent")))
}

func TestValidate(t *testing.T) {
	valid := scripture.ImportTemplate{
		ID:          "ok",
		Name:        "OK",
		Chapter:     scripture.ParsePattern(`^CHAPTER (\d+)`),
		Verse:       scripture.ParsePattern(`^TEXT (\d+)`),
		Synonyms:    scripture.ParsePattern(`^SYNONYMS`),
		Translation: scripture.ParsePattern(`^TRANSLATION`),
		Commentary:  scripture.ParsePattern(`^PURPORT`),
	}

	tests := []struct {
		name    string
		mutate  func(*scripture.ImportTemplate)
		wantErr bool
	}{
		{"valid", func(*scripture.ImportTemplate) {}, false},
		{"missing name", func(t *scripture.ImportTemplate) { t.Name = "" }, true},
		{"bad id", func(t *scripture.ImportTemplate) { t.ID = "Has Spaces" }, true},
		{"blank pattern", func(t *scripture.ImportTemplate) { t.Synonyms = scripture.Pattern{} }, true},
		{"lookbehind is not RE2", func(t *scripture.ImportTemplate) { t.Verse = scripture.ParsePattern(`(?<=x)y`) }, true},
		{"matches empty string", func(t *scripture.ImportTemplate) { t.Verse = scripture.ParsePattern(`\d*`) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tpl := valid
			tt.mutate(&tpl)
			err := Validate(tpl)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPrepare_ReturnsValidationError(t *testing.T) {
	_, err := Prepare(scripture.ImportTemplate{ID: "x"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}
