package wisdomlib

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"vedaimport/internal/domain/models/scripture"
	"vedaimport/internal/fetch"
)

// SourceName identifies this adapter in the import API.
const SourceName = "wisdomlib"

// Importer crawls a khanda index, a chapter page or a single verse page.
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

// Import detects the page kind at url. A page linking to verses is a
// chapter, a page linking to chapters is a khanda index and anything else
// is read as a single verse.
func (im *Importer) Import(ctx context.Context, url string) ([]scripture.Chapter, error) {
	page, err := im.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}

	chapter, err := ParseChapterPage(page.Body, page.URL)
	if err != nil {
		return nil, err
	}
	if len(chapter.Verses) > 0 {
		ch, err := im.importChapter(ctx, chapter)
		if err != nil {
			return nil, err
		}
		return []scripture.Chapter{ch}, nil
	}

	links, err := ExtractChapterURLs(page.Body, page.URL)
	if err != nil {
		return nil, err
	}
	if len(links) > 0 {
		return im.importKhanda(ctx, links)
	}

	verse, err := ParseVersePage(page.Body)
	if err != nil {
		return nil, err
	}
	if verse == nil {
		im.logger.Warn("page holds no verse", "url", url)
		return []scripture.Chapter{}, nil
	}
	ch := scripture.NewVerseChapter(chapter.Number, chapter.Title, []scripture.Verse{*verse})
	ch.TitleEN = chapter.Title
	setKhanda(&ch, chapter.Khanda)
	return []scripture.Chapter{ch}, nil
}

func (im *Importer) importKhanda(ctx context.Context, links []ChapterLink) ([]scripture.Chapter, error) {
	im.logger.Info("khanda index parsed", "chapters", len(links))
	chapters := []scripture.Chapter{}
	for _, link := range links {
		page, err := im.fetcher.Fetch(ctx, link.URL)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			im.logger.Warn("chapter skipped", "url", link.URL, "error", err)
			continue
		}
		parsed, err := ParseChapterPage(page.Body, page.URL)
		if err != nil {
			im.logger.Warn("chapter unreadable", "url", link.URL, "error", err)
			continue
		}
		// The index knows the number and title better than the page text.
		parsed.Number = link.Number
		parsed.Title = link.Title
		parsed.Khanda = link.Khanda

		ch, err := im.importChapter(ctx, parsed)
		if err != nil {
			return nil, err
		}
		chapters = append(chapters, ch)
	}
	return chapters, nil
}

// importChapter fetches every verse page of a chapter. Verse pages that
// fail or carry no text are skipped; only cancellation aborts.
func (im *Importer) importChapter(ctx context.Context, page *ChapterPage) (scripture.Chapter, error) {
	verses := make([]scripture.Verse, 0, len(page.Verses))
	for _, link := range page.Verses {
		p, err := im.fetcher.Fetch(ctx, link.URL)
		if err != nil {
			if ctx.Err() != nil {
				return scripture.Chapter{}, ctx.Err()
			}
			im.logger.Warn("verse skipped", "url", link.URL, "error", err)
			continue
		}
		verse, err := ParseVersePage(p.Body)
		if err != nil || verse == nil {
			im.logger.Warn("verse page holds no text", "url", link.URL, "verse", link.Number)
			continue
		}
		im.logger.Debug("verse parsed",
			"verse", verse.Number.String(),
			"bengali", verse.Sanskrit != "",
			"iast", verse.Transliteration != "",
			"translation", verse.Translation != "",
			"commentary", verse.Commentary != "",
		)
		verses = append(verses, *verse)
	}

	ch := scripture.NewVerseChapter(page.Number, page.Title, verses)
	ch.TitleEN = page.Title
	setKhanda(&ch, page.Khanda)
	im.logger.Info("chapter imported", "chapter", page.Number, "verses", len(verses))
	return ch, nil
}

func setKhanda(ch *scripture.Chapter, k Khanda) {
	n := k.Number
	ch.CantoNumber = &n
}
