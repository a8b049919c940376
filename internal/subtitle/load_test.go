package subtitle

import (
	"testing"
	"time"
)

func TestLoadAutoUTF8(t *testing.T) {
	data := []byte("1\r\n00:00:01,000 --> 00:00:02,000\r\nCafé, naïve, jalapeño\r\n\r\n")

	doc, dropped, err := LoadAuto(data)
	if err != nil {
		t.Fatalf("LoadAuto failed: %v", err)
	}
	if dropped != 0 {
		t.Errorf("expected 0 dropped blocks, got %d", dropped)
	}
	if len(doc.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(doc.Entries))
	}
	if doc.Entries[0].Lines[0] != "Café, naïve, jalapeño" {
		t.Errorf("unexpected text %q", doc.Entries[0].Lines[0])
	}
}

func TestLoadAutoUTF8BOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF},
		[]byte("1\n00:00:01,000 --> 00:00:02,000\nHello\n\n")...)

	doc, _, err := LoadAuto(data)
	if err != nil {
		t.Fatalf("LoadAuto failed: %v", err)
	}
	if len(doc.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(doc.Entries))
	}
	if doc.Entries[0].Index != 1 {
		t.Errorf("BOM leaked into index line: got index %d", doc.Entries[0].Index)
	}
}

func TestLoadExplicitEncoding(t *testing.T) {
	// "café" in Windows-1252: é is 0xE9, invalid as UTF-8
	data := []byte("1\n00:00:01,000 --> 00:00:02,000\ncaf\xe9\n\n")

	doc, _, err := Load(data, "windows-1252")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(doc.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(doc.Entries))
	}
	if doc.Entries[0].Lines[0] != "café" {
		t.Errorf("expected %q, got %q", "café", doc.Entries[0].Lines[0])
	}
}

func TestLoadLegacySingleByteAuto(t *testing.T) {
	// no explicit encoding: detector or Windows-1252 fallback must still
	// recover readable text from a legacy single-byte stream
	data := []byte("1\n00:00:01,000 --> 00:00:02,000\ncaf\xe9 au lait\n\n")

	doc, _, err := LoadAuto(data)
	if err != nil {
		t.Fatalf("LoadAuto failed: %v", err)
	}
	if len(doc.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(doc.Entries))
	}
	if doc.Entries[0].Lines[0] != "café au lait" {
		t.Errorf("expected %q, got %q", "café au lait", doc.Entries[0].Lines[0])
	}
	if doc.Entries[0].Start != time.Second {
		t.Errorf("expected start 1s, got %v", doc.Entries[0].Start)
	}
}

func TestLoadUnknownEncoding(t *testing.T) {
	if _, _, err := Load([]byte("1\n"), "no-such-charset"); err == nil {
		t.Error("expected error for unknown encoding name")
	}
}
