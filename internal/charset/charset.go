package charset

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/dimchansky/utfbom"
	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// chardet emits a few names the IANA index doesn't know
var detectorAliases = map[string]string{
	"GB-18030": "GB18030",
}

// Resolve picks the text encoding for a subtitle byte stream.
//
// An explicit encoding name always wins; it is only validated against the
// IANA registry, never against the content. Otherwise the statistical
// detector runs over the whole buffer, then a strict UTF-8 validity check,
// and finally Windows-1252, which accepts every byte value. Only an unknown
// explicit name produces an error.
func Resolve(data []byte, explicit string) (encoding.Encoding, string, error) {
	if explicit != "" {
		enc, err := lookup(explicit)
		if err != nil {
			return nil, "", fmt.Errorf("unknown encoding %q: %w", explicit, err)
		}
		return enc, explicit, nil
	}

	detector := chardet.NewTextDetector()
	if result, err := detector.DetectBest(data); err == nil {
		if enc, err := lookup(result.Charset); err == nil {
			return enc, result.Charset, nil
		}
	}

	if utf8.Valid(data) {
		return unicode.UTF8, "UTF-8", nil
	}

	return charmap.Windows1252, "windows-1252", nil
}

// Decode converts raw bytes to a string under the given encoding,
// skipping any leading byte order mark.
func Decode(data []byte, enc encoding.Encoding) (string, error) {
	src := utfbom.SkipOnly(bytes.NewReader(data))
	decoded, err := io.ReadAll(transform.NewReader(src, enc.NewDecoder()))
	if err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	// a BOM that survived as the first rune (e.g. inside UTF-16 payload)
	return strings.TrimPrefix(string(decoded), "\uFEFF"), nil
}

func lookup(name string) (encoding.Encoding, error) {
	if alias, ok := detectorAliases[name]; ok {
		name = alias
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return nil, fmt.Errorf("no decoder for %q", name)
	}
	return enc, nil
}
