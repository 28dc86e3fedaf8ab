package sanitizer

import (
	"github.com/microcosm-cc/bluemonday"
)

// HTMLSanitizer removes dangerous HTML elements and attributes.
//
// Thread-safe for concurrent use.
type HTMLSanitizer struct {
	policy *bluemonday.Policy
}

// NewHTMLSanitizer creates a sanitizer for uploaded documents. The UGC
// policy keeps common formatting and strips scripts, event handlers and
// javascript: URLs.
func NewHTMLSanitizer() *HTMLSanitizer {
	return &HTMLSanitizer{policy: bluemonday.UGCPolicy()}
}

// NewCommentaryHTMLSanitizer creates a sanitizer limited to the markup the
// importer itself emits in commentary and chapter content.
func NewCommentaryHTMLSanitizer() *HTMLSanitizer {
	policy := bluemonday.NewPolicy()
	policy.AllowElements("p", "strong", "em", "br", "blockquote")
	policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("p", "blockquote")
	return &HTMLSanitizer{policy: policy}
}

// NewStrictHTMLSanitizer creates a sanitizer that strips all HTML. Output
// is still HTML-escaped.
func NewStrictHTMLSanitizer() *HTMLSanitizer {
	return &HTMLSanitizer{policy: bluemonday.StrictPolicy()}
}

// Sanitize removes disallowed HTML while preserving safe content.
func (s *HTMLSanitizer) Sanitize(html string) string {
	return s.policy.Sanitize(html)
}
