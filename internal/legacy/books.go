// Package legacy parses the Ventura Publisher exports of BBT books into the
// chapter JSON consumed by the importer.
package legacy

import (
	"errors"
	"fmt"
	"sort"
)

// BookKind selects the parser used for a book's chapter files.
type BookKind int

const (
	// ProseBook chapters become free-text chapters with embedded verse quotes.
	ProseBook BookKind = iota
	// VerseBook chapters are split into numbered verses with purports.
	VerseBook
)

// Book describes where a book's files live and how they are named.
type Book struct {
	Code    string
	Folder  string // directory under the docs root
	TitleUK string
	TitleEN string
	Slug    string
	Prefix  string   // file name prefix shared by all chapter files
	Files   []string // chapter file suffixes in chapter order
	Kind    BookKind
	// Discover lists chapter files from the folder instead of Files.
	Discover bool
}

// ErrUnknownBook is returned for a book code missing from the registry.
var ErrUnknownBook = errors.New("unknown book code")

func numberedFiles(n int) []string {
	files := make([]string, n)
	for i := range files {
		files[i] = fmt.Sprintf("%02dXT", i+1)
	}
	return files
}

var books = map[string]Book{
	"bbd": {
		Code:    "bbd",
		Folder:  "BBAD",
		TitleUK: "По той бік народження і смерті",
		TitleEN: "Beyond Birth and Death",
		Slug:    "bbd",
		Prefix:  "UKBB",
		Files:   []string{"01xt", "02xt", "03XT", "04XT", "05XT"},
		Kind:    ProseBook,
	},
	"lcfl": {
		Code:    "lcfl",
		Folder:  "LCFL",
		TitleUK: "Життя походить із життя",
		TitleEN: "Life Comes From Life",
		Slug:    "lcfl",
		Prefix:  "UKLC",
		Files:   numberedFiles(16),
		Kind:    ProseBook,
	},
	"sova": {
		Code:     "sova",
		Folder:   "sova",
		TitleUK:  "Пісні вайшнавських ачарʼїв",
		TitleEN:  "Songs of the Vaiṣṇava Ācāryas",
		Slug:     "sova",
		Prefix:   "UKSO",
		Kind:     ProseBook,
		Discover: true,
	},
	"bg": {
		Code:    "bg",
		Folder:  "BG",
		TitleUK: "Бгаґавад-ґіта як вона є",
		TitleEN: "Bhagavad-gītā As It Is",
		Slug:    "bg",
		Prefix:  "UKBG",
		Files:   numberedFiles(18),
		Kind:    VerseBook,
	},
}

// LookupBook returns the registered book for code.
func LookupBook(code string) (Book, error) {
	b, ok := books[code]
	if !ok {
		return Book{}, fmt.Errorf("%w: %q", ErrUnknownBook, code)
	}
	return b, nil
}

// BookCodes lists the registered book codes alphabetically.
func BookCodes() []string {
	codes := make([]string, 0, len(books))
	for code := range books {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
