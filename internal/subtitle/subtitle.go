package subtitle

import (
	"time"
)

// represents a single subtitle cue
//
// Entries are value types: correction passes never mutate an entry in
// place, they replace it with a modified copy. Index is whatever the
// source file declared (0 if unparseable) and carries no ordering
// guarantee; the position within the document does.
type Entry struct {
	Index int
	Start time.Duration
	End   time.Duration
	Lines []string
}

// represents a complete subtitle document
//
// The document owns its entries exclusively; entries are never shared
// between documents.
type Document struct {
	Entries []Entry
}
