package provider

import (
	"regexp"
	"strconv"
	"strings"
)

var nonDigit = regexp.MustCompile(`[^0-9]`)

// Digits strips every non-digit character from scraped text and parses the
// remainder as an integer.
//
// Platforms render numbers with thousands separators, star glyphs, and
// surrounding labels ("Global Rank 12,345"); this handles all of them.
// Returns ok=false when no digits remain.
func Digits(s string) (int, bool) {
	cleaned := nonDigit.ReplaceAllString(s, "")
	if cleaned == "" {
		return 0, false
	}
	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0, false
	}
	return n, true
}

// DigitsAfter extracts the digits that appear after the first occurrence of
// marker in s. Returns ok=false when the marker is absent or nothing
// parseable follows it.
func DigitsAfter(s, marker string) (int, bool) {
	idx := strings.Index(s, marker)
	if idx < 0 {
		return 0, false
	}
	return Digits(s[idx+len(marker):])
}

// FirstLabelValue scans labeled cells in document order and returns the cell
// following the first label accepted by match. The scan stops at that first
// match.
func FirstLabelValue(cells []string, match func(string) bool) (string, bool) {
	for i := 0; i+1 < len(cells); i++ {
		if match(cells[i]) {
			return cells[i+1], true
		}
	}
	return "", false
}

// LastLabelValue scans labeled cells in document order and returns the cell
// following the last label accepted by match — a later match overrides an
// earlier one.
func LastLabelValue(cells []string, match func(string) bool) (string, bool) {
	value, found := "", false
	for i := 0; i+1 < len(cells); i++ {
		if match(cells[i]) {
			value, found = cells[i+1], true
		}
	}
	return value, found
}
