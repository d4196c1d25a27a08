package translit

import (
	"errors"
	"io"
	"testing"
)

type failingReader struct {
	err error
}

func (r failingReader) Next() (string, string, error) {
	return "", "", r.err
}

func TestEntryReaderAPI(t *testing.T) {
	table, err := LoadTable("stream", 2, NewEntryReader([]Entry{
		{Trigger: "aw", Output: "ă"},
		{Trigger: "oo", Output: "ô"},
	}))
	if err != nil {
		t.Fatal(err)
	}
	if table.Len() != 2 || table.Width() != 2 {
		t.Fatalf("expected 2 triggers of width 2, got %d of width %d", table.Len(), table.Width())
	}
	if out, ok := table.LookupString("oo"); !ok || out != "ô" {
		t.Fatalf("oo should map to ô, is %q (%v)", out, ok)
	}
	if _, ok := table.LookupString("ow"); ok {
		t.Fatalf("ow should not be a trigger")
	}
	if _, ok := table.LookupString("aww"); ok {
		t.Fatalf("window of wrong width must not match")
	}
	if _, ok := table.Lookup([]rune{'a', 'ă'}); ok {
		t.Fatalf("rune outside the alphabet must not match")
	}
}

func TestTableRejectsBadEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
	}{
		{name: "short trigger", entries: []Entry{{Trigger: "a", Output: "ă"}}},
		{name: "long trigger", entries: []Entry{{Trigger: "aww", Output: "ă"}}},
		{name: "empty output", entries: []Entry{{Trigger: "aw", Output: ""}}},
		{name: "conflict", entries: []Entry{{Trigger: "aw", Output: "ă"}, {Trigger: "aw", Output: "â"}}},
	}
	for _, tt := range tests {
		if _, err := NewTable(tt.name, 2, tt.entries); err == nil {
			t.Fatalf("%s: expected error", tt.name)
		}
	}
	if _, err := NewTable("zero", 0, nil); err == nil {
		t.Fatalf("expected error for zero width")
	}
}

func TestTableToleratesRepeatedEntry(t *testing.T) {
	table, err := NewTable("dup", 2, []Entry{
		{Trigger: "aw", Output: "ă"},
		{Trigger: "aw", Output: "ă"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if table.Len() != 1 {
		t.Fatalf("expected 1 trigger, got %d", table.Len())
	}
}

func TestTableReaderError(t *testing.T) {
	boom := errors.New("boom")
	_, err := LoadTable("failing", 2, failingReader{err: boom})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped reader error, got %v", err)
	}
	_, err = LoadTable("empty", 2, failingReader{err: io.EOF})
	if err != nil {
		t.Fatalf("empty table should load, got %v", err)
	}
}

func TestTablePending(t *testing.T) {
	table, err := NewTable("pending", 2, []Entry{
		{Trigger: "oo", Output: "ô"},
		{Trigger: "aw", Output: "ă"},
		{Trigger: "ow", Output: "ơ"},
		{Trigger: "o6", Output: "ô"},
	})
	if err != nil {
		t.Fatal(err)
	}
	pending := table.Pending("o")
	want := []string{"oo", "ow", "o6"}
	if len(pending) != len(want) {
		t.Fatalf("expected %d pending entries, got %v", len(want), pending)
	}
	for i, e := range pending {
		if e.Trigger != want[i] {
			t.Fatalf("pending[%d] = %q, want %q", i, e.Trigger, want[i])
		}
	}
	if !table.HasPrefix("a") || table.HasPrefix("x") {
		t.Fatalf("prefix check mismatch")
	}
	if table.Pending("") != nil {
		t.Fatalf("empty prefix should yield no hints")
	}
}

func TestTableIndexStats(t *testing.T) {
	table, err := NewTable("stats", 3, []Entry{
		{Trigger: "aww", Output: "aw"},
		{Trigger: "aaa", Output: "aa"},
	})
	if err != nil {
		t.Fatal(err)
	}
	backend, used, total, fill := table.IndexStats()
	if backend != "dat" {
		t.Fatalf("expected dat backend, got %s", backend)
	}
	if used <= 0 || total <= 0 {
		t.Fatalf("expected positive slot counts, got used=%d total=%d", used, total)
	}
	if fill <= 0 || fill > 1 {
		t.Fatalf("expected fill ratio in (0,1], got %f", fill)
	}
}
