// Package fetchtest provides an in-memory Fetcher for adapter tests.
package fetchtest

import (
	"context"
	"net/http"
	"sync"
	"time"

	"vedaimport/internal/fetch"
)

// Fake serves canned pages keyed by URL. Unknown URLs return a 404
// StatusError. Requested URLs are recorded in order.
type Fake struct {
	Pages map[string]string

	mu        sync.Mutex
	requested []string
}

// New returns a Fake serving pages.
func New(pages map[string]string) *Fake {
	return &Fake{Pages: pages}
}

// Fetch implements fetch.Fetcher.
func (f *Fake) Fetch(ctx context.Context, url string) (*fetch.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.requested = append(f.requested, url)
	f.mu.Unlock()

	body, ok := f.Pages[url]
	if !ok {
		return nil, &fetch.StatusError{URL: url, StatusCode: http.StatusNotFound}
	}
	return &fetch.Page{
		URL:         url,
		StatusCode:  http.StatusOK,
		ContentType: "text/html; charset=utf-8",
		Body:        []byte(body),
		FetchedAt:   time.Now(),
	}, nil
}

// Requested returns the URLs fetched so far.
func (f *Fake) Requested() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requested...)
}
