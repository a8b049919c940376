package fix

import (
	"regexp"
	"strings"

	"github.com/mgpai22/srtfix/internal/subtitle"
)

var (
	// complete angle-bracket tags only: an unterminated "<i" stays literal
	// instead of eating the rest of the line
	htmlTagPattern = regexp.MustCompile(`</?([a-zA-Z][a-zA-Z0-9]*)(?:\s[^<>]*)?/?>`)

	// ASS override blocks, e.g. {\i1}, {\an8}, {\pos(250,270)}
	assTagPattern = regexp.MustCompile(`\{\\[^{}]*\}`)

	// bold/italic overrides like {\b1}, {\i0}, {\b700}
	assBoldItalicPattern = regexp.MustCompile(`^\{\\[bi]\d*\}$`)
)

// StripHTML removes angle-bracket markup from every text line. Bold and
// italic tags survive unless all is set.
func StripHTML(doc *subtitle.Document, all bool) *subtitle.Document {
	return mapLines(doc, func(line string) string {
		return htmlTagPattern.ReplaceAllStringFunc(line, func(tag string) string {
			if !all {
				switch strings.ToLower(htmlTagPattern.FindStringSubmatch(tag)[1]) {
				case "b", "i":
					return tag
				}
			}
			return ""
		})
	})
}

// StripASS removes curly-brace override blocks from every text line. Bold
// and italic overrides survive unless all is set.
func StripASS(doc *subtitle.Document, all bool) *subtitle.Document {
	return mapLines(doc, func(line string) string {
		return assTagPattern.ReplaceAllStringFunc(line, func(tag string) string {
			if !all && assBoldItalicPattern.MatchString(tag) {
				return tag
			}
			return ""
		})
	})
}

// Clean strips ASS then HTML markup; timing, indices and order are
// untouched.
func Clean(doc *subtitle.Document, all bool) *subtitle.Document {
	return StripHTML(StripASS(doc, all), all)
}

func mapLines(doc *subtitle.Document, apply func(string) string) *subtitle.Document {
	entries := make([]subtitle.Entry, len(doc.Entries))
	for i, entry := range doc.Entries {
		lines := make([]string, len(entry.Lines))
		for j, line := range entry.Lines {
			lines[j] = apply(line)
		}
		entry.Lines = lines
		entries[i] = entry
	}
	return &subtitle.Document{Entries: entries}
}
