package subtitle

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// line ending convention for serialized output
type LineEnding string

const (
	LineEndingCR   LineEnding = "cr"
	LineEndingLF   LineEnding = "lf"
	LineEndingCRLF LineEnding = "crlf"
)

func (e LineEnding) sequence() (string, error) {
	switch e {
	case LineEndingCR:
		return "\r", nil
	case LineEndingLF:
		return "\n", nil
	case LineEndingCRLF:
		return "\r\n", nil
	default:
		return "", fmt.Errorf("unsupported line ending %q: use cr, lf or crlf", string(e))
	}
}

// Marshal renders the document in the canonical SubRip layout.
//
// Output is always UTF-8 without a byte order mark, whatever encoding the
// input was decoded from. An unknown line ending is a configuration error
// and is rejected before any output is produced.
func Marshal(doc *Document, ending LineEnding) ([]byte, error) {
	sep, err := ending.sequence()
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	for _, entry := range doc.Entries {
		sb.WriteString(strconv.Itoa(entry.Index))
		sb.WriteString(sep)

		// timestamps: 00:00:00,000 --> 00:00:00,000
		sb.WriteString(formatTimestamp(entry.Start))
		sb.WriteString(" --> ")
		sb.WriteString(formatTimestamp(entry.End))
		sb.WriteString(sep)

		for _, line := range entry.Lines {
			sb.WriteString(line)
			sb.WriteString(sep)
		}

		// blank separator line
		sb.WriteString(sep)
	}

	return []byte(sb.String()), nil
}

func formatTimestamp(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	millis := int(d.Milliseconds()) % 1000

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}
