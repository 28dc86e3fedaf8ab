package importer

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"vedaimport/internal/config"
	importSvc "vedaimport/internal/domain/services/importer"
	"vedaimport/internal/service/importer/converter"
)

// zipFileProcessor imports every supported file of a zip archive. Entries
// are processed in name order so numbered chapter files stay in sequence.
type zipFileProcessor struct {
	converters *converter.Registry
	logger     *slog.Logger
}

// NewZipFileProcessor creates a new zip file processor
func NewZipFileProcessor(converters *converter.Registry, logger *slog.Logger) importSvc.FileProcessor {
	return &zipFileProcessor{
		converters: converters,
		logger:     logger,
	}
}

// CanProcess returns true for .zip files
func (p *zipFileProcessor) CanProcess(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".zip")
}

// Process extracts and imports the archive. An unreadable archive is an
// error; problems with single entries are recorded in result.
func (p *zipFileProcessor) Process(
	ctx context.Context,
	file io.Reader,
	filename string,
	seg importSvc.SegmentFunc,
	result *importSvc.ImportResult,
) error {
	zipData, err := io.ReadAll(io.LimitReader(file, config.MaxUploadBytes+1))
	if err != nil {
		return fmt.Errorf("failed to read zip file: %w", err)
	}
	if len(zipData) > config.MaxUploadBytes {
		return fmt.Errorf("zip file %s exceeds %d bytes", filename, config.MaxUploadBytes)
	}

	archive, err := zip.NewReader(bytes.NewReader(zipData), int64(len(zipData)))
	if err != nil {
		return fmt.Errorf("failed to open zip file: %w", err)
	}

	entries := make([]*zip.File, 0, len(archive.File))
	for _, entry := range archive.File {
		if entry.FileInfo().IsDir() || hiddenEntry(entry.Name) {
			continue
		}
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if p.converters.ForFile(entry.Name) == nil {
			p.logger.Debug("skipping unsupported file type", "file", entry.Name)
			recordSkip(result, entry.Name)
			continue
		}
		p.processEntry(ctx, entry, seg, result)
	}

	p.logger.Info("zip file processing complete",
		"filename", filename,
		"files", result.Stats.Files,
		"skipped", result.Stats.Skipped,
		"failed", result.Stats.Failed,
	)
	return nil
}

// Name returns the processor name
func (p *zipFileProcessor) Name() string {
	return "ZipFileProcessor"
}

func (p *zipFileProcessor) processEntry(
	ctx context.Context,
	entry *zip.File,
	seg importSvc.SegmentFunc,
	result *importSvc.ImportResult,
) {
	if entry.UncompressedSize64 > config.MaxDocumentBytes {
		recordFailure(result, entry.Name, "", fmt.Sprintf("file exceeds %d bytes", config.MaxDocumentBytes))
		return
	}

	r, err := entry.Open()
	if err != nil {
		recordFailure(result, entry.Name, "", fmt.Sprintf("failed to open file: %v", err))
		return
	}
	defer r.Close()

	content, err := io.ReadAll(io.LimitReader(r, config.MaxDocumentBytes))
	if err != nil {
		recordFailure(result, entry.Name, "", fmt.Sprintf("failed to read file: %v", err))
		return
	}

	chapters, name, err := convertFile(ctx, p.converters, path.Base(entry.Name), content, seg)
	if err != nil {
		recordFailure(result, entry.Name, name, fmt.Sprintf("failed to convert file: %v", err))
		p.logger.Warn("file processing failed", "file", entry.Name, "error", err)
		return
	}
	recordChapters(result, entry.Name, name, chapters)
}

// hiddenEntry reports archive metadata such as __MACOSX/ or .DS_Store
func hiddenEntry(name string) bool {
	for _, part := range strings.Split(name, "/") {
		if strings.HasPrefix(part, ".") || part == "__MACOSX" {
			return true
		}
	}
	return false
}
