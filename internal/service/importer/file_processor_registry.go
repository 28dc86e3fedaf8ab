package importer

import (
	"context"
	"fmt"
	"sync"

	"vedaimport/internal/domain/models/scripture"
	importSvc "vedaimport/internal/domain/services/importer"
	"vedaimport/internal/service/importer/converter"
)

// FileProcessorRegistry routes uploads to the first processor whose
// CanProcess accepts the filename. Processors are checked in registration
// order, so the zip processor must be registered first.
//
// Thread-safe for concurrent access during request handling.
type FileProcessorRegistry struct {
	mu         sync.RWMutex
	processors []importSvc.FileProcessor
}

// NewFileProcessorRegistry creates a new file processor registry
func NewFileProcessorRegistry() *FileProcessorRegistry {
	return &FileProcessorRegistry{
		processors: make([]importSvc.FileProcessor, 0),
	}
}

// Register adds a file processor to the registry
func (r *FileProcessorRegistry) Register(processor importSvc.FileProcessor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.processors = append(r.processors, processor)
}

// GetProcessor returns the first processor that can handle the given
// filename, or nil.
func (r *FileProcessorRegistry) GetProcessor(filename string) importSvc.FileProcessor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, processor := range r.processors {
		if processor.CanProcess(filename) {
			return processor
		}
	}
	return nil
}

// convertFile turns one file into chapters. Converters that understand
// chapter structure themselves bypass segmentation.
func convertFile(
	ctx context.Context,
	converters *converter.Registry,
	filename string,
	content []byte,
	seg importSvc.SegmentFunc,
) ([]scripture.Chapter, string, error) {
	conv := converters.ForFile(filename)
	if conv == nil {
		return nil, "", fmt.Errorf("unsupported file type: %s", filename)
	}

	if parser, ok := conv.(converter.ChapterParser); ok {
		chapters, err := parser.ParseChapters(ctx, filename, content)
		if err != nil {
			return nil, conv.Name(), err
		}
		return chapters, conv.Name(), nil
	}

	text, err := conv.Convert(ctx, content)
	if err != nil {
		return nil, conv.Name(), err
	}
	return seg(text), conv.Name(), nil
}

// recordChapters appends a parsed file to result
func recordChapters(result *importSvc.ImportResult, file, converterName string, chapters []scripture.Chapter) {
	result.Stats.Files++
	result.Chapters = append(result.Chapters, chapters...)
	result.Files = append(result.Files, importSvc.ImportFile{
		File:      file,
		Converter: converterName,
		Chapters:  len(chapters),
		Action:    "parsed",
	})
}

// recordSkip notes a file no converter handles
func recordSkip(result *importSvc.ImportResult, file string) {
	result.Stats.Files++
	result.Stats.Skipped++
	result.Files = append(result.Files, importSvc.ImportFile{File: file, Action: "skipped"})
}

// recordFailure notes a file that could not be read or converted
func recordFailure(result *importSvc.ImportResult, file, converterName, msg string) {
	result.Stats.Files++
	result.Stats.Failed++
	result.Files = append(result.Files, importSvc.ImportFile{File: file, Converter: converterName, Action: "failed"})
	result.Errors = append(result.Errors, importSvc.ImportError{File: file, Error: msg})
}
