package fix

import (
	"math"
	"sort"
	"time"

	"github.com/mgpai22/srtfix/internal/subtitle"
)

// Each pass below returns a new document and leaves its input untouched;
// entries are replaced with modified copies, never mutated in place.

// SortByTime orders entries by start time, ascending. Entries with equal
// start times are ordered by their declared index.
func SortByTime(doc *subtitle.Document) *subtitle.Document {
	entries := append([]subtitle.Entry(nil), doc.Entries...)
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Start != entries[j].Start {
			return entries[i].Start < entries[j].Start
		}
		return entries[i].Index < entries[j].Index
	})
	return &subtitle.Document{Entries: entries}
}

// ResolveOverlaps clamps each entry's end time down to the next entry's
// start time in a single left-to-right sweep. The sequence must already be
// time-ordered; run SortByTime first, as All does.
func ResolveOverlaps(doc *subtitle.Document) *subtitle.Document {
	entries := make([]subtitle.Entry, len(doc.Entries))
	for i, entry := range doc.Entries {
		bound := time.Duration(math.MaxInt64)
		if i+1 < len(doc.Entries) {
			bound = doc.Entries[i+1].Start
		}
		if entry.End > bound {
			entry.End = bound
		}
		entries[i] = entry
	}
	return &subtitle.Document{Entries: entries}
}

// Renumber rewrites every index to the entry's 1-based position. Purely
// cosmetic; timing and order are untouched.
func Renumber(doc *subtitle.Document) *subtitle.Document {
	entries := make([]subtitle.Entry, len(doc.Entries))
	for i, entry := range doc.Entries {
		entry.Index = i + 1
		entries[i] = entry
	}
	return &subtitle.Document{Entries: entries}
}

// AdjustTime shifts every entry by delta. Start and end each floor at zero
// independently, so a large negative shift collapses an entry to 0 --> 0
// rather than going negative or inverting.
func AdjustTime(doc *subtitle.Document, delta time.Duration) *subtitle.Document {
	entries := make([]subtitle.Entry, len(doc.Entries))
	for i, entry := range doc.Entries {
		entry.Start = clampZero(entry.Start + delta)
		entry.End = clampZero(entry.End + delta)
		entries[i] = entry
	}
	return &subtitle.Document{Entries: entries}
}

// All is the canonical repair composition: sort, resolve overlaps,
// renumber.
func All(doc *subtitle.Document) *subtitle.Document {
	return Renumber(ResolveOverlaps(SortByTime(doc)))
}

func clampZero(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}
