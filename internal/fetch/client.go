// Package fetch downloads source pages for the site adapters.
package fetch

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Fetcher defines the interface for retrieving remote HTML pages.
type Fetcher interface {
	// Fetch downloads one page. Implementations honor ctx cancellation.
	Fetch(ctx context.Context, url string) (*Page, error)
}

// Page is a downloaded document.
type Page struct {
	URL         string    // Final URL after redirects
	StatusCode  int       // HTTP status
	ContentType string    // Content-Type header
	Body        []byte    // Raw body, capped by the client's size limit
	FetchedAt   time.Time // When the response was read
}

// Text returns the body as a string.
func (p *Page) Text() string { return string(p.Body) }

// StatusError is returned for non-2xx responses.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
}

// NotFound reports whether the page does not exist.
func (e *StatusError) NotFound() bool { return e.StatusCode == http.StatusNotFound }
