package sanitizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizers(t *testing.T) {
	in := `<p class="purport" onclick="x()">Текст <em>вірша</em><script>alert(1)</script></p><h2>Заголовок</h2>`

	tests := []struct {
		name      string
		sanitizer *HTMLSanitizer
		want      string
	}{
		{
			name:      "commentary keeps importer markup",
			sanitizer: NewCommentaryHTMLSanitizer(),
			want:      `<p class="purport">Текст <em>вірша</em></p>Заголовок`,
		},
		{
			name:      "strict strips everything",
			sanitizer: NewStrictHTMLSanitizer(),
			want:      `Текст віршаЗаголовок`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sanitizer.Sanitize(in))
		})
	}

	ugc := NewHTMLSanitizer().Sanitize(in)
	assert.Contains(t, ugc, "<h2>Заголовок</h2>")
	assert.NotContains(t, ugc, "onclick")
	assert.NotContains(t, ugc, "alert")
}

func TestHTMLSanitizer_DropsDataURIImages(t *testing.T) {
	out := NewHTMLSanitizer().Sanitize(`<p>Текст<img src="data:image/png;base64,iVBORw0KGgo="></p>`)
	assert.NotContains(t, out, "data:")
	assert.Contains(t, out, "Текст")
}
