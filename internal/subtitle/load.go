package subtitle

import (
	"github.com/mgpai22/srtfix/internal/charset"
)

// Load decodes raw subtitle bytes and parses them into a document.
//
// With an empty encodingName the charset is inferred from the content;
// otherwise the named encoding is used unconditionally. The second return
// value is the number of malformed blocks dropped during parsing. Malformed
// content is never an error; only an unknown encoding name is.
func Load(data []byte, encodingName string) (*Document, int, error) {
	enc, _, err := charset.Resolve(data, encodingName)
	if err != nil {
		return nil, 0, err
	}
	text, err := charset.Decode(data, enc)
	if err != nil {
		return nil, 0, err
	}
	doc, dropped := Parse(text)
	return doc, dropped, nil
}

// LoadAuto loads subtitle bytes with charset auto-detection.
func LoadAuto(data []byte) (*Document, int, error) {
	return Load(data, "")
}
