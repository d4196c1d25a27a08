package translit

import (
	"fmt"
	"io"
	"sort"
	"unicode/utf8"

	"github.com/derekparker/trie"
)

// Entry maps a trigger sequence to its replacement.
type Entry struct {
	Trigger string
	Output  string
}

// EntryReader yields table entries one-by-one.
// It should return io.EOF when the stream is exhausted.
type EntryReader interface {
	Next() (trigger, output string, err error)
}

// Table is an immutable mapping from fixed-width triggers to outputs.
//
// A table contains:
//   - the entries in definition order (for listings)
//   - a frozen trigger index for exact lookups of a rune window
//   - a prefix trie answering "which triggers start with ...".
//
// Tables are safe for concurrent use.
type Table struct {
	entries    []Entry
	index      triggerIndex
	prefixes   *trie.Trie
	width      int
	Identifier string // Identifies the table
}

// LoadTable compiles a table of triggers of exactly width runes from a
// streaming source.
//
// Entries with a trigger of the wrong width or an empty output are rejected.
// A trigger defined twice must map to the same output both times.
func LoadTable(name string, width int, reader EntryReader) (*Table, error) {
	if width < 1 {
		return nil, fmt.Errorf("table %q: trigger width must be positive, is %d", name, width)
	}
	t := &Table{
		index:      newDATIndex(),
		prefixes:   trie.New(),
		width:      width,
		Identifier: fmt.Sprintf("table: %s", name),
	}
	seen := make(map[string]int)
	for {
		trigger, output, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("table %q: %w", name, err)
		}
		if n := utf8.RuneCountInString(trigger); n != width {
			return nil, fmt.Errorf("table %q: trigger %q has %d characters, expected %d", name, trigger, n, width)
		}
		if output == "" {
			return nil, fmt.Errorf("table %q: trigger %q has empty output", name, trigger)
		}
		if id, dup := seen[trigger]; dup {
			if t.entries[id-1].Output != output {
				return nil, fmt.Errorf("table %q: trigger %q maps to both %q and %q",
					name, trigger, t.entries[id-1].Output, output)
			}
			continue
		}
		t.entries = append(t.entries, Entry{Trigger: trigger, Output: output})
		id := len(t.entries)
		seen[trigger] = id
		if !t.index.Insert([]rune(trigger), id) {
			return nil, fmt.Errorf("table %q: cannot index trigger %q", name, trigger)
		}
		t.prefixes.Add(trigger, id)
	}
	t.index.Freeze()
	stats := t.index.Stats()
	tracer().Infof("%s: %d triggers, index backend=%s used=%d total=%d fill=%.2f",
		t.Identifier, len(t.entries), stats.Backend, stats.UsedSlots, stats.TotalSlots, stats.FillRatio())
	return t, nil
}

// NewTable compiles a table from an in-memory entry list.
func NewTable(name string, width int, entries []Entry) (*Table, error) {
	return LoadTable(name, width, &sliceReader{entries: entries})
}

// Width returns the trigger width in runes.
func (t *Table) Width() int {
	return t.width
}

// Len returns the number of distinct triggers.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the entries in definition order.
func (t *Table) Entries() []Entry {
	ee := make([]Entry, len(t.entries))
	copy(ee, t.entries)
	return ee
}

// Lookup returns the output for an exact trigger window.
func (t *Table) Lookup(window []rune) (string, bool) {
	if len(window) != t.width {
		return "", false
	}
	id := t.index.Lookup(window)
	if id == 0 {
		return "", false
	}
	return t.entries[id-1].Output, true
}

// LookupString is Lookup for a trigger given as a string.
func (t *Table) LookupString(trigger string) (string, bool) {
	return t.Lookup([]rune(trigger))
}

// HasPrefix reports whether any trigger starts with prefix.
func (t *Table) HasPrefix(prefix string) bool {
	if prefix == "" {
		return len(t.entries) > 0
	}
	return t.prefixes.HasKeysWithPrefix(prefix)
}

// Pending returns all entries whose trigger starts with prefix, in
// definition order. Hosts use it to hint at what the next key would do.
func (t *Table) Pending(prefix string) []Entry {
	if prefix == "" {
		return nil
	}
	keys := t.prefixes.PrefixSearch(prefix)
	ids := make([]int, 0, len(keys))
	for _, k := range keys {
		if id := t.index.Lookup([]rune(k)); id > 0 {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	pending := make([]Entry, len(ids))
	for i, id := range ids {
		pending[i] = t.entries[id-1]
	}
	return pending
}

// IndexStats reports density metrics for the underlying trigger index.
func (t *Table) IndexStats() (backend string, usedSlots, totalSlots int, fillRatio float64) {
	if t == nil || t.index == nil {
		return "", 0, 0, 0
	}
	stats := t.index.Stats()
	return stats.Backend, stats.UsedSlots, stats.TotalSlots, stats.FillRatio()
}

// --- Entry readers ---------------------------------------------------------

type sliceReader struct {
	entries []Entry
	index   int
}

func (r *sliceReader) Next() (string, string, error) {
	if r.index >= len(r.entries) {
		return "", "", io.EOF
	}
	e := r.entries[r.index]
	r.index++
	return e.Trigger, e.Output, nil
}

// NewEntryReader returns an EntryReader streaming entries.
func NewEntryReader(entries []Entry) EntryReader {
	return &sliceReader{entries: entries}
}
