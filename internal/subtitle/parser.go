package subtitle

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var timestampPattern = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2}),(\d{3})$`)

// Parse splits decoded subtitle text into entries.
//
// Blocks are groups of non-blank lines separated by blank lines: an index
// line, a timing line, and zero or more text lines. Malformed blocks are
// dropped, never fatal; the second return value reports how many were
// dropped. A lone CR, or an LF not immediately preceded by CR, terminates
// a line, so CR, LF and CRLF files all parse the same way.
func Parse(text string) (*Document, int) {
	var (
		entries []Entry
		pending []string
		line    strings.Builder
		dropped int
		afterCR bool
	)

	endLine := func() {
		if line.Len() > 0 {
			pending = append(pending, line.String())
			line.Reset()
			return
		}
		// blank line: close the current block
		if entry, ok := parseBlock(pending); ok {
			entries = append(entries, entry)
		} else if len(pending) >= 2 {
			dropped++
		}
		pending = pending[:0]
	}

	for _, r := range text {
		switch {
		case r == '\r':
			endLine()
			afterCR = true
		case r == '\n' && afterCR:
			afterCR = false
		case r == '\n':
			endLine()
		default:
			afterCR = false
			line.WriteRune(r)
		}
	}

	// files missing a trailing blank line still yield their last block
	if line.Len() > 0 {
		pending = append(pending, line.String())
	}
	if entry, ok := parseBlock(pending); ok {
		entries = append(entries, entry)
	} else if len(pending) >= 2 {
		dropped++
	}

	return &Document{Entries: entries}, dropped
}

func parseBlock(lines []string) (Entry, bool) {
	if len(lines) < 2 {
		return Entry{}, false
	}

	// some files omit or duplicate indices; 0 stands in until renumbering
	index, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		index = 0
	}

	parts := strings.Split(lines[1], "-->")
	if len(parts) != 2 {
		return Entry{}, false
	}
	start, ok := parseTimestamp(strings.TrimSpace(parts[0]))
	if !ok {
		return Entry{}, false
	}
	end, ok := parseTimestamp(strings.TrimSpace(parts[1]))
	if !ok {
		return Entry{}, false
	}

	return Entry{
		Index: index,
		Start: start,
		End:   end,
		Lines: append([]string(nil), lines[2:]...),
	}, true
}

// parseTimestamp accepts only the fixed-width SRT form HH:MM:SS,mmm.
func parseTimestamp(s string) (time.Duration, bool) {
	m := timestampPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}

	h, _ := strconv.Atoi(m[1])
	min, _ := strconv.Atoi(m[2])
	sec, _ := strconv.Atoi(m[3])
	ms, _ := strconv.Atoi(m[4])

	return time.Duration(h)*time.Hour +
		time.Duration(min)*time.Minute +
		time.Duration(sec)*time.Second +
		time.Duration(ms)*time.Millisecond, true
}
