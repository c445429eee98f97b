package shifttable

import (
	"html"
	"regexp"
	"strings"

	"github.com/custodia-labs/shiftsync/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.TableExtractor = (*Extractor)(nil)

// Extractor locates schedule tables in raw HTML with pre-compiled
// regular expressions. Notification emails are machine-generated and
// shallow, so tag-level matching is sufficient; no tree parser needed.
type Extractor struct{}

// NewExtractor creates a regex-based table extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Pre-compiled regular expressions for table extraction.
var (
	tableTag = regexp.MustCompile(`(?is)<table[^>]*>(.*?)</table>`)
	rowTag   = regexp.MustCompile(`(?is)<tr[^>]*>(.*?)</tr>`)
	cellTag  = regexp.MustCompile(`(?is)<t[dh][^>]*>(.*?)</t[dh]>`)
	anyTag   = regexp.MustCompile(`<[^>]+>`)
	spaces   = regexp.MustCompile(`\s+`)
)

// Extract returns the data rows of the first table whose header cells
// contain all of headerLabels, case-insensitively. Returns nil when no
// table matches.
func (e *Extractor) Extract(htmlBody string, headerLabels []string) []driven.TableRow {
	for _, table := range tableTag.FindAllStringSubmatch(htmlBody, -1) {
		rows := rowTag.FindAllStringSubmatch(table[1], -1)
		if len(rows) < 2 {
			continue
		}

		if !headerMatches(cellTexts(rows[0][1]), headerLabels) {
			continue
		}

		var out []driven.TableRow
		for _, row := range rows[1:] {
			cells := cellTexts(row[1])
			if len(cells) < 2 {
				continue
			}
			out = append(out, driven.TableRow{
				DateCell: cells[0],
				TimeCell: cells[1],
			})
		}
		return out
	}
	return nil
}

// headerMatches checks that every wanted label appears in some header
// cell, case-insensitively.
func headerMatches(cells, labels []string) bool {
	lowered := make([]string, len(cells))
	for i, c := range cells {
		lowered[i] = strings.ToLower(c)
	}

	for _, label := range labels {
		label = strings.ToLower(label)
		found := false
		for _, cell := range lowered {
			if strings.Contains(cell, label) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// cellTexts extracts the plain text of each cell in a row fragment.
func cellTexts(rowHTML string) []string {
	matches := cellTag.FindAllStringSubmatch(rowHTML, -1)
	cells := make([]string, 0, len(matches))
	for _, m := range matches {
		cells = append(cells, cleanText(m[1]))
	}
	return cells
}

// cleanText strips nested tags, decodes entities and collapses
// whitespace.
func cleanText(fragment string) string {
	return strings.TrimSpace(StripTags(fragment))
}

// StripTags reduces an HTML fragment to plain text. Used by the parser
// to scan for the publication header, which may be split across inline
// tags.
func StripTags(htmlBody string) string {
	text := anyTag.ReplaceAllString(htmlBody, " ")
	text = html.UnescapeString(text)
	// Entities decode to non-breaking spaces, which \s does not match.
	text = strings.ReplaceAll(text, "\u00a0", " ")
	return spaces.ReplaceAllString(text, " ")
}
