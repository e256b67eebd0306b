package policy

import (
	"regexp"
	"strings"
)

// Line limits applied to embedded code in concept-snippets mode.
const (
	DefaultMaxCodeLines    = 18
	DefaultMaxExampleLines = 6
)

// TruncationMarker is appended to shortened code blocks.
const TruncationMarker = "// ... truncated (concept snippet only)"

var lineBreak = regexp.MustCompile(`\r?\n`)

// Limits holds the line budgets for truncation.
type Limits struct {
	CodeLines    int
	ExampleLines int
}

// DefaultLimits returns the standard line budgets.
func DefaultLimits() Limits {
	return Limits{CodeLines: DefaultMaxCodeLines, ExampleLines: DefaultMaxExampleLines}
}

// TruncateCode keeps the first maxLines lines of value and appends
// TruncationMarker. Values within budget, and non-positive budgets, are
// returned unchanged.
func TruncateCode(value string, maxLines int) string {
	if maxLines <= 0 {
		return value
	}
	lines := lineBreak.Split(value, -1)
	if len(lines) <= maxLines {
		return value
	}
	return strings.Join(lines[:maxLines], "\n") + "\n" + TruncationMarker
}
