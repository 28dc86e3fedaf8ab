package kksongs

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"vedaimport/internal/domain/models/scripture"
	"vedaimport/internal/fetch"
)

// SourceName identifies this adapter in the import API.
const SourceName = "kksongs"

// Importer fetches songs page by page.
type Importer struct {
	fetcher fetch.Fetcher
	logger  *slog.Logger
}

// NewImporter creates an Importer. A nil logger discards diagnostics.
func NewImporter(fetcher fetch.Fetcher, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Importer{fetcher: fetcher, logger: logger.With("source", SourceName)}
}

// Name implements sources.Source.
func (im *Importer) Name() string { return SourceName }

// Import treats url as an index page when it links to songs, otherwise as
// a single song page. Chapters are numbered in discovery order.
func (im *Importer) Import(ctx context.Context, url string) ([]scripture.Chapter, error) {
	page, err := im.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch index: %w", err)
	}
	songURLs, err := ExtractSongURLs(page.Body, page.URL)
	if err != nil {
		return nil, err
	}
	if len(songURLs) == 0 {
		songURLs = []string{page.URL}
	}
	im.logger.Info("songs found", "count", len(songURLs))

	chapters := []scripture.Chapter{}
	for _, u := range songURLs {
		song, err := im.FetchSong(ctx, u)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			im.logger.Warn("song skipped", "url", u, "error", err)
			continue
		}
		if song == nil {
			im.logger.Warn("song page holds no verses", "url", u)
			continue
		}
		chapters = append(chapters, song.ToChapter(len(chapters)+1))
	}
	return chapters, nil
}

// FetchSong downloads the three pages of a song one after another. Only the
// main page is required; a missing Bengali or purport page leaves those
// fields empty.
func (im *Importer) FetchSong(ctx context.Context, mainURL string) (*Song, error) {
	urls := DeriveURLs(mainURL)

	page, err := im.fetcher.Fetch(ctx, urls.Main)
	if err != nil {
		return nil, fmt.Errorf("fetch main page: %w", err)
	}
	main, err := ParseMainPage(page.Body)
	if err != nil {
		return nil, err
	}

	var bengali []string
	if urls.Bengali != "" {
		if p, err := im.fetcher.Fetch(ctx, urls.Bengali); err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			im.logger.Warn("bengali page unavailable", "url", urls.Bengali, "error", err)
		} else if bengali, err = ParseBengaliPage(p.Body); err != nil {
			im.logger.Warn("bengali page unreadable", "url", urls.Bengali, "error", err)
		}
	}

	var commentary string
	if urls.Commentary != "" {
		if p, err := im.fetcher.Fetch(ctx, urls.Commentary); err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			im.logger.Warn("purport page unavailable", "url", urls.Commentary, "error", err)
		} else if commentary, err = ParseCommentaryPage(p.Body); err != nil {
			im.logger.Warn("purport page unreadable", "url", urls.Commentary, "error", err)
		}
	}

	im.logger.Debug("song fetched",
		"url", mainURL,
		"verses", len(main.Verses),
		"bengali_stanzas", len(bengali),
		"has_purport", commentary != "",
	)
	return Combine(main, bengali, commentary, mainURL), nil
}
