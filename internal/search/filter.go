// Package search filters the place catalog as the user types, splits matching
// names into highlighted segments and validates a submitted selection.
package search

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"ulascansenturk/zila-weather/internal/catalog"
)

// InvalidSelectionNotice is shown to the user when a submitted name is not in the catalog.
const InvalidSelectionNotice = "Please provide a valid zila name"

var (
	ErrInvalidSelection = errors.New("invalid zila selection")
	ErrEmptySelection   = errors.New("empty zila selection")
)

type Segment struct {
	Text        string `json:"text"`
	Highlighted bool   `json:"highlighted"`
}

// Filter returns the places whose name contains query, ignoring case, in catalog order.
// An empty query returns every place.
func Filter(places []catalog.Place, query string) []catalog.Place {
	if query == "" {
		out := make([]catalog.Place, len(places))
		copy(out, places)
		return out
	}

	out := make([]catalog.Place, 0)
	for _, place := range places {
		if ContainsFold(place.Name, query) {
			out = append(out, place)
		}
	}

	return out
}

func ContainsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	start, _ := indexFold(s, substr, 0)
	return start >= 0
}

// Highlight splits name at every non-overlapping occurrence of query (ignoring case),
// scanning left to right. Plain and highlighted segments alternate, starting and ending
// with a plain segment that may be empty. Highlighted segments keep the characters of
// name, so joining all segments gives name back.
func Highlight(name, query string) []Segment {
	if query == "" {
		return []Segment{{Text: name}}
	}

	segments := make([]Segment, 0, 3)
	pos := 0
	for {
		start, end := indexFold(name, query, pos)
		if start < 0 {
			break
		}
		segments = append(segments,
			Segment{Text: name[pos:start]},
			Segment{Text: name[start:end], Highlighted: true},
		)
		pos = end
	}

	return append(segments, Segment{Text: name[pos:]})
}

// Join concatenates segment texts.
func Join(segments []Segment) string {
	var b strings.Builder
	for _, segment := range segments {
		b.WriteString(segment.Text)
	}
	return b.String()
}

// Select validates a submitted candidate: it must equal a catalog name ignoring case.
// The matched place carries the catalog spelling.
func Select(c *catalog.Catalog, candidate string) (catalog.Place, error) {
	if strings.TrimSpace(candidate) == "" {
		return catalog.Place{}, ErrEmptySelection
	}

	place, ok := c.LookupName(candidate)
	if !ok {
		return catalog.Place{}, ErrInvalidSelection
	}

	return place, nil
}

func indexFold(s, substr string, from int) (int, int) {
	for i := from; i < len(s); {
		if end, ok := matchAt(s, i, substr); ok {
			return i, end
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}

	return -1, -1
}

func matchAt(s string, i int, substr string) (int, bool) {
	j := i
	for _, want := range substr {
		if j >= len(s) {
			return 0, false
		}
		got, size := utf8.DecodeRuneInString(s[j:])
		if !equalFoldRune(got, want) {
			return 0, false
		}
		j += size
	}

	return j, true
}

func equalFoldRune(a, b rune) bool {
	if a == b {
		return true
	}
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}
