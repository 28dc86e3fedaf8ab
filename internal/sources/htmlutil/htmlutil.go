// Package htmlutil holds the goquery helpers shared by the site adapters.
package htmlutil

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Parse builds a goquery document from a page body.
func Parse(body []byte) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return doc, nil
}

// MainContent returns the first selector match in order, falling back to the
// whole document when none of them is present.
func MainContent(doc *goquery.Document, selectors ...string) *goquery.Selection {
	for _, sel := range selectors {
		if found := doc.Find(sel).First(); found.Length() > 0 {
			return found
		}
	}
	return doc.Selection
}

// blockElements start a new line when rendered as text.
var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"dd": true, "div": true, "dl": true, "dt": true, "footer": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "hr": true, "li": true, "main": true, "nav": true,
	"ol": true, "p": true, "pre": true, "section": true, "table": true,
	"tr": true, "ul": true,
}

// Text renders the selection as plain text, keeping line structure: block
// elements and <br> produce line breaks, scripts and styles are dropped.
// Each line is trimmed and runs of blank lines collapse to one.
func Text(sel *goquery.Selection) string {
	var b strings.Builder
	for _, n := range sel.Nodes {
		writeText(&b, n)
	}
	return tidyLines(b.String())
}

func writeText(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		switch n.Data {
		case "script", "style", "noscript":
			return
		case "br":
			b.WriteByte('\n')
			return
		}
	}

	block := n.Type == html.ElementNode && blockElements[n.Data]
	if block {
		b.WriteByte('\n')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(b, c)
	}
	if block {
		b.WriteByte('\n')
	}
}

func tidyLines(s string) string {
	raw := strings.Split(strings.ReplaceAll(s, "\r", ""), "\n")
	out := make([]string, 0, len(raw))
	blank := true
	for _, line := range raw {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			if !blank {
				out = append(out, "")
			}
			blank = true
			continue
		}
		out = append(out, line)
		blank = false
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

// Resolve turns href into an absolute URL relative to base.
func Resolve(base, href string) (string, bool) {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "javascript:") {
		return "", false
	}
	b, err := url.Parse(base)
	if err != nil {
		return "", false
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", false
	}
	abs := b.ResolveReference(ref)
	abs.Fragment = ""
	return abs.String(), true
}

// Link is an absolute link together with its anchor text.
type Link struct {
	URL  string
	Text string
}

// Links collects the anchors under sel whose href satisfies keep, resolved
// against base and de-duplicated in document order.
func Links(sel *goquery.Selection, base string, keep func(href, text string) bool) []Link {
	var links []Link
	seen := make(map[string]bool)
	sel.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		text := strings.TrimSpace(a.Text())
		if keep != nil && !keep(href, text) {
			return
		}
		abs, ok := Resolve(base, href)
		if !ok || seen[abs] {
			return
		}
		seen[abs] = true
		links = append(links, Link{URL: abs, Text: text})
	})
	return links
}

// Origin returns scheme://host of raw, or "" when raw is not absolute.
func Origin(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

// LastSegment returns the final path element of raw without its extension.
func LastSegment(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	p := strings.TrimSuffix(u.Path, "/")
	name := p[strings.LastIndex(p, "/")+1:]
	if i := strings.LastIndex(name, "."); i > 0 {
		name = name[:i]
	}
	return name
}
