package extract

import "regexp"

// Manual pages carry a lot of layout whitespace once tags are stripped,
// including non-breaking spaces from the HTML source. Normalization runs
// three rewrites in order: collapse blank lines, strip leading whitespace
// after each newline, strip trailing whitespace before each newline.
var (
	reBlankLines = regexp.MustCompile(`\n\n+`)
	reLeading    = regexp.MustCompile(`\n[\s\x{00A0}]+`)
	reTrailing   = regexp.MustCompile(`[\s\x{00A0}]+\n`)
)

// Normalize canonicalizes body text for field extraction: no blank lines,
// no per-line leading or trailing whitespace, internal line breaks kept.
// Normalize is idempotent.
func Normalize(s string) string {
	s = reBlankLines.ReplaceAllString(s, "\n")
	s = reLeading.ReplaceAllString(s, "\n")
	s = reTrailing.ReplaceAllString(s, "\n")
	return s
}
