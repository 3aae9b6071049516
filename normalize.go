package clauscan

import (
	"regexp"
	"strings"
)

var (
	pageBreakRe   = regexp.MustCompile(`[\f\r\v]+`)
	hyphenBreakRe = regexp.MustCompile(`([a-z])-\n\s*([a-z])`)
	spaceRunRe    = regexp.MustCompile(`[ \t]+`)
	caseGlueRe    = regexp.MustCompile(`([a-z])([A-Z])`)
	periodGlueRe  = regexp.MustCompile(`\.([A-Z])`)
	blankRunRe    = regexp.MustCompile(`\n[ \t]*\n([ \t]*\n)+`)
)

// NormalizeText cleans raw extracted text. It converts page breaks to
// newlines, repairs hyphenation across line breaks, collapses runs of
// spaces and tabs, restores spaces dropped by OCR (between a lowercase
// and uppercase letter, and after a sentence-ending period), and
// squeezes runs of blank lines down to a single paragraph break.
// The pass is format-agnostic and applied to every backend's output.
func NormalizeText(text string) string {
	if text == "" {
		return ""
	}

	text = pageBreakRe.ReplaceAllString(text, "\n")
	text = hyphenBreakRe.ReplaceAllString(text, "$1$2")
	text = spaceRunRe.ReplaceAllString(text, " ")
	text = caseGlueRe.ReplaceAllString(text, "$1 $2")
	text = periodGlueRe.ReplaceAllString(text, ". $1")
	text = blankRunRe.ReplaceAllString(text, "\n\n")

	// Strip the space residue the collapse pass leaves at line edges.
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}
