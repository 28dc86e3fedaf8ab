package bhaktivinoda

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"vedaimport/internal/domain/models/scripture"
	"vedaimport/internal/fetch"
)

// SourceName identifies this adapter in the import API.
const SourceName = "bhaktivinoda"

// Importer walks an index page and imports every linked song.
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

// Import fetches url. When it links to song pages each song becomes a
// chapter numbered by its position inside its canto; otherwise url itself
// is parsed as a single song.
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
		song, err := ParseSongPage(page.Body, page.URL)
		if err != nil || song == nil {
			im.logger.Warn("page holds no songs", "url", url)
			return []scripture.Chapter{}, nil
		}
		canto, ok := CantoFromURL(page.URL)
		n := max(song.Number, 1)
		if !ok {
			return []scripture.Chapter{SongToChapter(song, n, nil)}, nil
		}
		return []scripture.Chapter{SongToChapter(song, n, &canto)}, nil
	}

	groups, unknown := GroupByCanto(songURLs)
	for _, u := range unknown {
		im.logger.Warn("cannot determine canto", "url", u)
	}
	im.logger.Info("song index parsed", "songs", len(songURLs), "cantos", len(groups))

	chapters := []scripture.Chapter{}
	for _, g := range groups {
		canto := g.Canto
		n := 0
		for _, u := range g.URLs {
			song, err := im.fetchSong(ctx, u)
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
			n++
			chapters = append(chapters, SongToChapter(song, n, &canto))
			im.logger.Debug("song parsed", "url", u, "canto", canto.Number, "verses", len(song.Verses))
		}
	}
	return chapters, nil
}

func (im *Importer) fetchSong(ctx context.Context, url string) (*Song, error) {
	page, err := im.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return ParseSongPage(page.Body, page.URL)
}
