package translit

import (
	"strings"
	"testing"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	subst, err := NewTable("test-subst", SubstitutionWidth, []Entry{
		{Trigger: "aw", Output: "ă"},
		{Trigger: "aa", Output: "â"},
		{Trigger: "e6", Output: "ê"},
		{Trigger: "ee", Output: "ê"},
		{Trigger: "E6", Output: "Ê"},
	})
	if err != nil {
		t.Fatal(err)
	}
	cancel, err := NewTable("test-cancel", CancellationWidth, []Entry{
		{Trigger: "aww", Output: "aw"},
		{Trigger: "aaa", Output: "aa"},
		{Trigger: "e66", Output: "e6"},
	})
	if err != nil {
		t.Fatal(err)
	}
	eng, err := NewEngine(subst, cancel)
	if err != nil {
		t.Fatal(err)
	}
	return eng
}

func TestApply(t *testing.T) {
	eng := testEngine(t)
	tests := []struct {
		text       string
		cursor     int
		wantText   string
		wantCursor int
	}{
		{"Xaw", 3, "Xă", 2},
		{"aw", 2, "ă", 1},
		{"Xe6", 3, "Xê", 2},
		{"XE6", 3, "XÊ", 2},
		{"Xaww", 4, "Xaw", 3},
		{"Xe66", 4, "Xe6", 3},
		{"awz", 2, "ăz", 1},       // cursor in the middle
		{"Xaww", 3, "Xăw", 2},     // only the window before the cursor counts
		{"hello", 5, "hello", 5},  // no match
		{"a", 1, "a", 1},          // cursor < 2
		{"", 0, "", 0},            // empty
		{"aw", 0, "aw", 0},        // cursor at start
		{"ăww", 3, "ăww", 3},      // no trigger ends at cursor
		{"ê6", 2, "ê6", 2},        // collapsed trigger is not a window
		{"tiếng aw", 8, "tiếng ă", 7},
	}
	for _, tt := range tests {
		text, cursor := eng.Apply(tt.text, tt.cursor)
		if text != tt.wantText || cursor != tt.wantCursor {
			t.Fatalf("Apply(%q, %d) = (%q, %d), want (%q, %d)",
				tt.text, tt.cursor, text, cursor, tt.wantText, tt.wantCursor)
		}
	}
}

func TestMatchReportsEdit(t *testing.T) {
	eng := testEngine(t)
	edit, ok := eng.Match([]rune("Xaww"), 4)
	if !ok || edit.Kind != Cancellation || edit.Start != 1 || edit.Trigger != "aww" || edit.Output != "aw" {
		t.Fatalf("unexpected edit %+v (%v)", edit, ok)
	}
	edit, ok = eng.Match([]rune("Xaw"), 3)
	if !ok || edit.Kind != Substitution || edit.Start != 1 {
		t.Fatalf("unexpected edit %+v (%v)", edit, ok)
	}
	edit, ok = eng.Match([]rune("Xyz"), 2)
	if ok || edit.Kind != NoEdit || edit.Start != 2 {
		t.Fatalf("expected no edit at cursor 2, got %+v (%v)", edit, ok)
	}
	text, cursor := edit.ApplyTo([]rune("Xyz"))
	if string(text) != "Xyz" || cursor != 2 {
		t.Fatalf("NoEdit must keep text and cursor, got (%q, %d)", string(text), cursor)
	}
	if Cancellation.String() != "cancellation" || NoEdit.String() != "none" {
		t.Fatalf("edit kind names mismatch")
	}
}

func TestApplyKeepsInvalidBytes(t *testing.T) {
	eng := testEngine(t)
	tests := []struct {
		text       string
		cursor     int
		wantText   string
		wantCursor int
	}{
		{"\xffaw", 3, "\xffă", 2},
		{"\xffaw\xfe", 3, "\xffă\xfe", 2},
		{"aw\xff", 2, "ă\xff", 1},
		{"\xffaww", 4, "\xffaw", 3},
		{"\xff\xfe", 2, "\xff\xfe", 2},
	}
	for _, tt := range tests {
		text, cursor := eng.Apply(tt.text, tt.cursor)
		if text != tt.wantText || cursor != tt.wantCursor {
			t.Fatalf("Apply(%q, %d) = (%q, %d), want (%q, %d)",
				tt.text, tt.cursor, text, cursor, tt.wantText, tt.wantCursor)
		}
	}
}

func TestChainedTablesAdvanceOncePerKey(t *testing.T) {
	// Telex-style tone keys: "aa" gives "â", then "â" + "s" gives "ấ".
	subst, err := NewTable("telex", SubstitutionWidth, []Entry{
		{Trigger: "aa", Output: "â"},
		{Trigger: "âs", Output: "ấ"},
		{Trigger: "ab", Output: "x"},
		{Trigger: "xy", Output: "z"},
	})
	if err != nil {
		t.Fatal(err)
	}
	eng, err := NewEngine(subst, nil)
	if err != nil {
		t.Fatalf("outputs used in triggers should be accepted, got %v", err)
	}
	if text, cursor := eng.Apply("ab", 2); text != "x" || cursor != 1 {
		t.Fatalf("expected a single step to (x, 1), got (%q, %d)", text, cursor)
	}
	for keys, want := range map[string]string{"aas": "ấ", "aby": "z", "tay": "tay"} {
		if got := Transliterate(eng, keys); got != want {
			t.Fatalf("typing %q: got %q, want %q", keys, got, want)
		}
	}
}

func TestApplyIsFixedPointAfterSubstitution(t *testing.T) {
	eng := testEngine(t)
	for _, s := range []string{"Xaw", "aa", "hello", "e6", "tiếng ee"} {
		n := len([]rune(s))
		t1, c1 := eng.Apply(s, n)
		t2, c2 := eng.Apply(t1, c1)
		if t1 != t2 || c1 != c2 {
			t.Fatalf("%q: second application changed (%q,%d) to (%q,%d)", s, t1, c1, t2, c2)
		}
	}
}

func TestReapplyAfterCancellationResubstitutes(t *testing.T) {
	// This is why hosts must call the engine once per insertion.
	eng := testEngine(t)
	text, cursor := eng.Apply("Xaww", 4)
	if text != "Xaw" || cursor != 3 {
		t.Fatalf("expected cancellation to Xaw, got %q", text)
	}
	text, cursor = eng.Apply(text, cursor)
	if text != "Xă" || cursor != 2 {
		t.Fatalf("expected re-substitution to Xă, got %q", text)
	}
}

func TestApplyPanicsOnBadCursor(t *testing.T) {
	eng := testEngine(t)
	for _, cursor := range []int{-1, 4} {
		func() {
			defer func() {
				if r := recover(); r == nil {
					t.Fatalf("expected panic for cursor %d", cursor)
				}
			}()
			eng.Apply("abc", cursor)
		}()
	}
}

func TestNewEngineValidatesTables(t *testing.T) {
	mk := func(name string, width int, ee ...Entry) *Table {
		table, err := NewTable(name, width, ee)
		if err != nil {
			t.Fatal(err)
		}
		return table
	}
	subst := mk("s", 2, Entry{"aw", "ă"})
	tests := []struct {
		name   string
		subst  *Table
		cancel *Table
		errMsg string
	}{
		{"no substitutions", nil, nil, "needs a substitution"},
		{"wrong substitution width", mk("w", 3, Entry{"aww", "ă"}), nil, "width"},
		{"long output", mk("l", 2, Entry{"aw", "aw"}), nil, "expected 1"},
		{"wrong cancellation width", subst, mk("c", 2, Entry{"aw", "a"}), "width"},
		{"unrelated cancellation", subst, mk("c", 3, Entry{"oww", "ow"}), "does not extend"},
		{"cancellation output", subst, mk("c", 3, Entry{"aww", "ww"}), "must cancel"},
	}
	for _, tt := range tests {
		_, err := NewEngine(tt.subst, tt.cancel)
		if err == nil || !strings.Contains(err.Error(), tt.errMsg) {
			t.Fatalf("%s: expected error containing %q, got %v", tt.name, tt.errMsg, err)
		}
	}
	if _, err := NewEngine(subst, nil); err != nil {
		t.Fatalf("engine without cancellations should be valid, got %v", err)
	}
}

func TestHint(t *testing.T) {
	eng := testEngine(t)
	hints := eng.Hint([]rune("xa"), 2)
	if len(hints) != 2 || hints[0].Trigger != "aw" || hints[1].Trigger != "aa" {
		t.Fatalf("unexpected hints %v", hints)
	}
	if eng.Hint([]rune("xa"), 0) != nil {
		t.Fatalf("expected no hints at start of text")
	}
	if eng.Hint([]rune("aq"), 2) != nil {
		t.Fatalf("expected no hints when no trigger starts with q")
	}
}
