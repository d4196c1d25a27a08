package translit

import (
	"fmt"
	"unicode/utf8"
)

// Widths of the two trigger windows.
const (
	SubstitutionWidth = 2
	CancellationWidth = 3
)

// EditKind tells which table produced an edit.
type EditKind int8

const (
	NoEdit EditKind = iota
	Substitution
	Cancellation
)

func (k EditKind) String() string {
	switch k {
	case Substitution:
		return "substitution"
	case Cancellation:
		return "cancellation"
	}
	return "none"
}

// Edit describes one replacement in front of the cursor.
// An edit of kind NoEdit replaces nothing; its Start is the cursor it was
// matched at.
type Edit struct {
	Kind    EditKind
	Start   int    // rune offset of the replaced trigger
	Trigger string // replaced text
	Output  string // replacement text
}

// ApplyTo performs the edit on text and returns the new text and cursor.
// The cursor lands right after the replacement. NoEdit returns text
// unchanged with the cursor at Start.
func (e Edit) ApplyTo(text []rune) ([]rune, int) {
	if e.Kind == NoEdit {
		return text, e.Start
	}
	end := e.Start + len([]rune(e.Trigger))
	assert(e.Start >= 0 && end <= len(text), "edit out of text bounds")
	out := []rune(e.Output)
	res := make([]rune, 0, len(text)-(end-e.Start)+len(out))
	res = append(res, text[:e.Start]...)
	res = append(res, out...)
	res = append(res, text[end:]...)
	return res, e.Start + len(out)
}

// Engine rewrites triggers in front of a cursor. It holds read-only tables
// and may be shared between any number of buffers and goroutines.
type Engine struct {
	substitutions *Table
	cancellations *Table
}

// NewEngine validates the table pair and returns an engine.
//
// Requirements:
//   - substitutions have 2-character triggers and 1-character outputs
//   - cancellations have 3-character triggers; the first two characters are
//     a substitution trigger and the output is exactly those two characters.
//
// Outputs may occur in other triggers, as in Telex-style tone keys where
// "â" followed by "s" yields "ấ". Such a chain advances by one step per
// inserted character, never within a single call.
//
// cancellations may be nil.
func NewEngine(substitutions, cancellations *Table) (*Engine, error) {
	if substitutions == nil {
		return nil, fmt.Errorf("engine needs a substitution table")
	}
	if substitutions.Width() != SubstitutionWidth {
		return nil, fmt.Errorf("%s: trigger width %d, expected %d",
			substitutions.Identifier, substitutions.Width(), SubstitutionWidth)
	}
	for _, e := range substitutions.entries {
		if n := len([]rune(e.Output)); n != 1 {
			return nil, fmt.Errorf("%s: output %q of %q has %d characters, expected 1",
				substitutions.Identifier, e.Output, e.Trigger, n)
		}
	}
	if cancellations != nil {
		if cancellations.Width() != CancellationWidth {
			return nil, fmt.Errorf("%s: trigger width %d, expected %d",
				cancellations.Identifier, cancellations.Width(), CancellationWidth)
		}
		for _, e := range cancellations.entries {
			head := string([]rune(e.Trigger)[:SubstitutionWidth])
			if _, ok := substitutions.LookupString(head); !ok {
				return nil, fmt.Errorf("%s: %q does not extend a substitution trigger",
					cancellations.Identifier, e.Trigger)
			}
			if e.Output != head {
				return nil, fmt.Errorf("%s: %q must cancel to %q, not %q",
					cancellations.Identifier, e.Trigger, head, e.Output)
			}
		}
	}
	return &Engine{substitutions: substitutions, cancellations: cancellations}, nil
}

// Substitutions returns the substitution table.
func (eng *Engine) Substitutions() *Table {
	return eng.substitutions
}

// Cancellations returns the cancellation table, which may be nil.
func (eng *Engine) Cancellations() *Table {
	return eng.cancellations
}

// Match decides which edit, if any, applies to the characters in front of
// cursor. Cancellation is checked first, on the 3-character window; then
// substitution on the 2-character window.
//
// Without a match, Match returns a NoEdit edit starting at cursor.
// cursor must be within [0, len(text)].
func (eng *Engine) Match(text []rune, cursor int) (Edit, bool) {
	assert(cursor >= 0 && cursor <= len(text), "cursor out of range")
	if eng.cancellations != nil && cursor >= CancellationWidth {
		window := text[cursor-CancellationWidth : cursor]
		if out, ok := eng.cancellations.Lookup(window); ok {
			return Edit{
				Kind:    Cancellation,
				Start:   cursor - CancellationWidth,
				Trigger: string(window),
				Output:  out,
			}, true
		}
	}
	if cursor >= SubstitutionWidth {
		window := text[cursor-SubstitutionWidth : cursor]
		if out, ok := eng.substitutions.Lookup(window); ok {
			return Edit{
				Kind:    Substitution,
				Start:   cursor - SubstitutionWidth,
				Trigger: string(window),
				Output:  out,
			}, true
		}
	}
	return Edit{Start: cursor}, false
}

// ApplyRunes performs at most one replacement in front of cursor and
// returns the resulting text and cursor. Without a match, text and cursor
// are returned unchanged.
//
// ApplyRunes is meant to be called exactly once after each inserted
// character. Calling it again on its own output is a caller error: after a
// cancellation the restored 2-character trigger would be substituted again.
func (eng *Engine) ApplyRunes(text []rune, cursor int) ([]rune, int) {
	edit, ok := eng.Match(text, cursor)
	if ok {
		tracer().Debugf("%s %q -> %q at %d", edit.Kind, edit.Trigger, edit.Output, edit.Start)
	}
	return edit.ApplyTo(text)
}

// Apply is ApplyRunes for string buffers. cursor counts runes, an invalid
// UTF-8 byte counting as one rune. Bytes outside the replaced trigger are
// kept as they are, invalid ones included.
func (eng *Engine) Apply(text string, cursor int) (string, int) {
	edit, ok := eng.Match([]rune(text), cursor)
	if !ok {
		return text, cursor
	}
	tracer().Debugf("%s %q -> %q at %d", edit.Kind, edit.Trigger, edit.Output, edit.Start)
	start, end := byteOffset(text, edit.Start), byteOffset(text, cursor)
	return text[:start] + edit.Output + text[end:], edit.Start + utf8.RuneCountInString(edit.Output)
}

// byteOffset returns the byte offset of the rune at index n of s.
func byteOffset(s string, n int) int {
	i := 0
	for offset := range s {
		if i == n {
			return offset
		}
		i++
	}
	return len(s)
}

// Hint lists the substitutions which the next key may complete, given the
// characters in front of cursor.
func (eng *Engine) Hint(text []rune, cursor int) []Entry {
	assert(cursor >= 0 && cursor <= len(text), "cursor out of range")
	if cursor == 0 {
		return nil
	}
	prefix := string(text[cursor-1])
	if !eng.substitutions.HasPrefix(prefix) {
		return nil
	}
	return eng.substitutions.Pending(prefix)
}
