package importer

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"vedaimport/internal/config"
	importSvc "vedaimport/internal/domain/services/importer"
	"vedaimport/internal/service/importer/converter"
)

// individualFileProcessor imports single uploaded documents (.txt, .md,
// .html, legacy Ventura files)
type individualFileProcessor struct {
	converters *converter.Registry
	logger     *slog.Logger
}

// NewIndividualFileProcessor creates a new individual file processor
func NewIndividualFileProcessor(converters *converter.Registry, logger *slog.Logger) importSvc.FileProcessor {
	return &individualFileProcessor{
		converters: converters,
		logger:     logger,
	}
}

// CanProcess returns true when a converter handles the file extension
func (p *individualFileProcessor) CanProcess(filename string) bool {
	return p.converters.ForFile(filename) != nil
}

// Process converts and segments one file. Failures are recorded in result
// so a batch continues past a bad file.
func (p *individualFileProcessor) Process(
	ctx context.Context,
	file io.Reader,
	filename string,
	seg importSvc.SegmentFunc,
	result *importSvc.ImportResult,
) error {
	content, err := io.ReadAll(io.LimitReader(file, config.MaxDocumentBytes+1))
	if err != nil {
		recordFailure(result, filename, "", fmt.Sprintf("failed to read file: %v", err))
		p.logger.Warn("failed to read file", "filename", filename, "error", err)
		return nil
	}
	if len(content) > config.MaxDocumentBytes {
		recordFailure(result, filename, "", fmt.Sprintf("file exceeds %d bytes", config.MaxDocumentBytes))
		return nil
	}

	chapters, name, err := convertFile(ctx, p.converters, filename, content, seg)
	if err != nil {
		recordFailure(result, filename, name, fmt.Sprintf("failed to convert file: %v", err))
		p.logger.Warn("failed to convert file", "filename", filename, "error", err)
		return nil
	}

	recordChapters(result, filename, name, chapters)
	p.logger.Debug("individual file imported",
		"filename", filename,
		"converter", name,
		"chapters", len(chapters),
	)
	return nil
}

// Name returns the processor name
func (p *individualFileProcessor) Name() string {
	return "IndividualFileProcessor"
}
