package scripture

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// VerseNumberKind distinguishes ordinary verse numbers from the two
// unnumbered block kinds found in source documents.
type VerseNumberKind int

const (
	// Numbered is a plain ("12") or composite ("48-49") verse number.
	Numbered VerseNumberKind = iota
	// Untitled marks an untitled address or dedication block.
	Untitled
	// Special marks a verse heading the template flags as unnumbered.
	Special
)

// UnnumberedValue is the wire value shared by Untitled and Special verses.
const UnnumberedValue = "0"

// VerseNumber is the tagged verse identifier. It serializes to a single
// string so stored rows keep the "0" sentinel for unnumbered blocks.
type VerseNumber struct {
	Kind  VerseNumberKind
	Value string
}

// NumberedVerse returns a Numbered verse number.
func NumberedVerse(value string) VerseNumber {
	return VerseNumber{Kind: Numbered, Value: value}
}

// UntitledVerse returns the Untitled verse number.
func UntitledVerse() VerseNumber {
	return VerseNumber{Kind: Untitled, Value: UnnumberedValue}
}

// SpecialVerse returns the Special verse number.
func SpecialVerse() VerseNumber {
	return VerseNumber{Kind: Special, Value: UnnumberedValue}
}

// String returns the wire representation.
func (n VerseNumber) String() string {
	if n.Kind != Numbered {
		return UnnumberedValue
	}
	return n.Value
}

// IsZero reports whether the number could not be resolved.
func (n VerseNumber) IsZero() bool {
	return n.Kind == Numbered && n.Value == ""
}

// IsComposite reports whether the number covers a range of verses.
func (n VerseNumber) IsComposite() bool {
	_, _, ok := n.Range()
	return ok
}

// Range returns the bounds of a composite number such as "48-49".
func (n VerseNumber) Range() (start, end int, ok bool) {
	if n.Kind != Numbered {
		return 0, 0, false
	}
	left, right, found := strings.Cut(n.Value, "-")
	if !found {
		return 0, 0, false
	}
	start, err1 := strconv.Atoi(left)
	end, err2 := strconv.Atoi(right)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return start, end, true
}

// MarshalJSON implements json.Marshaler.
func (n VerseNumber) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.String())
}

// UnmarshalJSON implements json.Unmarshaler. The shared "0" sentinel is
// read back as Untitled.
func (n *VerseNumber) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("verse_number: %w", err)
	}
	if s == UnnumberedValue {
		*n = UntitledVerse()
		return nil
	}
	*n = NumberedVerse(s)
	return nil
}

// Verse is one textual unit of scripture or song. Empty text fields are absent.
type Verse struct {
	Number          VerseNumber `json:"verse_number"`
	Sanskrit        string      `json:"sanskrit,omitempty"`
	Transliteration string      `json:"transliteration,omitempty"`
	Synonyms        string      `json:"synonyms,omitempty"`
	Translation     string      `json:"translation,omitempty"`
	Commentary      string      `json:"commentary,omitempty"`
}

// HasText reports whether any of the five text fields is populated.
func (v Verse) HasText() bool {
	return v.Sanskrit != "" || v.Transliteration != "" || v.Synonyms != "" ||
		v.Translation != "" || v.Commentary != ""
}

var sortKeyPattern = regexp.MustCompile(`(?i)^(\d+)(?:\.(\d+))?(?:\.(\d+))?([a-z])?$`)

// VerseSortKey builds an ordering key ("001.002.000.000") from the first
// component of a verse number. Keys collide for numbers that address the
// same verse, which persistence uses for de-duplication.
func VerseSortKey(raw string) string {
	left := raw
	if i := strings.IndexAny(raw, "-–"); i >= 0 {
		left = raw[:i]
	}
	left = strings.TrimSpace(left)

	m := sortKeyPattern.FindStringSubmatch(left)
	if m == nil {
		if n, err := strconv.Atoi(leadingDigits(left)); err == nil {
			return fmt.Sprintf("%06d", n)
		}
		return left
	}

	suffix := "000"
	if m[4] != "" {
		suffix = fmt.Sprintf("%03d", int(strings.ToLower(m[4])[0]))
	}
	return fmt.Sprintf("%s.%s.%s.%s", pad3(m[1]), pad3(m[2]), pad3(m[3]), suffix)
}

func pad3(s string) string {
	if s == "" {
		return "000"
	}
	for len(s) < 3 {
		s = "0" + s
	}
	return s
}

func leadingDigits(s string) string {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return s[:end]
}
