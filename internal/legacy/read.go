package legacy

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadFile loads a Ventura export. Files with a byte order mark are decoded
// accordingly. Without one, UTF-16LE is tried first and kept only when the
// result looks like tagged Ventura text; otherwise the file is read as UTF-8.
func ReadFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return Decode(raw)
}

// Decode converts the raw bytes of a Ventura export to a string.
func Decode(raw []byte) (string, error) {
	if hasBOM(raw) {
		out, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), raw)
		if err != nil {
			return "", fmt.Errorf("decode: %w", err)
		}
		return string(out), nil
	}
	if len(raw)%2 == 0 {
		le := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
		if out, _, err := transform.Bytes(le, raw); err == nil && looksLikeVentura(string(out)) {
			return string(out), nil
		}
	}
	return string(raw), nil
}

func hasBOM(raw []byte) bool {
	return bytes.HasPrefix(raw, []byte{0xFF, 0xFE}) ||
		bytes.HasPrefix(raw, []byte{0xFE, 0xFF}) ||
		bytes.HasPrefix(raw, []byte{0xEF, 0xBB, 0xBF})
}

func looksLikeVentura(text string) bool {
	return strings.Contains(text, "@") && strings.Contains(text, " = ")
}

// FindFile returns the first file in dir whose name starts with prefix,
// ignoring case. Backup copies (*.bak) are skipped.
func FindFile(dir, prefix string) (string, bool, error) {
	names, err := listFiles(dir)
	if err != nil {
		return "", false, err
	}
	want := strings.ToUpper(prefix)
	for _, name := range names {
		if strings.HasPrefix(strings.ToUpper(name), want) {
			return filepath.Join(dir, name), true, nil
		}
	}
	return "", false, nil
}

var versionSuffix = regexp.MustCompile(`(?i)\.H\d+$`)

// DiscoverFiles lists the chapter suffixes present in dir for books whose
// file set is not fixed: every file named prefix + four digits, sorted, with
// the prefix and any ".H<n>" version extension removed.
func DiscoverFiles(dir, prefix string) ([]string, error) {
	names, err := listFiles(dir)
	if err != nil {
		return nil, err
	}
	pattern := regexp.MustCompile(`(?i)^` + regexp.QuoteMeta(prefix) + `\d{4}`)
	var files []string
	for _, name := range names {
		if !pattern.MatchString(name) {
			continue
		}
		suffix := versionSuffix.ReplaceAllString(name[len(prefix):], "")
		if n := len(files); n > 0 && files[n-1] == suffix {
			continue
		}
		files = append(files, suffix)
	}
	return files, nil
}

func listFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || strings.HasSuffix(strings.ToLower(e.Name()), ".bak") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}
