package markdown

import (
	"regexp"
	"strings"
)

var (
	outlineHeadingRe = regexp.MustCompile(`^(#{1,3}) (.*\S.*)$`)
	nonSlugCharRe    = regexp.MustCompile(`[^\w\s-]`)
	whitespaceRunRe  = regexp.MustCompile(`\s+`)
	hyphenRunRe      = regexp.MustCompile(`-+`)
)

// HeadingEntry is one outline entry: an ATX heading of level 1-3 with its
// derived anchor id. Entries appear in document order. Ids are not
// deduplicated; two headings with the same text share the same id.
type HeadingEntry struct {
	Text  string
	Level int
	ID    string
}

// ExtractHeadings scans a document for ATX headings of levels 1-3 and
// derives an anchor id for each. Lines inside fenced code blocks are not
// headings and are skipped, mirroring the scanner's fence rule so the
// outline only lists headings that actually render.
func ExtractHeadings(doc string) []HeadingEntry {
	var entries []HeadingEntry
	inCodeBlock := false

	for _, line := range strings.Split(doc, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inCodeBlock = !inCodeBlock
			continue
		}
		if inCodeBlock {
			continue
		}
		if m := outlineHeadingRe.FindStringSubmatch(line); m != nil {
			text := m[2]
			entries = append(entries, HeadingEntry{
				Text:  text,
				Level: len(m[1]),
				ID:    HeadingID(text),
			})
		}
	}

	return entries
}

// HeadingID derives the URL-safe anchor slug for a heading text:
// lowercased, punctuation stripped, whitespace and hyphen runs collapsed to
// single hyphens, with no leading or trailing hyphen. Text that is empty
// after stripping yields an empty id.
func HeadingID(text string) string {
	s := strings.TrimSpace(strings.ToLower(text))
	s = nonSlugCharRe.ReplaceAllString(s, "")
	s = whitespaceRunRe.ReplaceAllString(s, "-")
	s = hyphenRunRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
