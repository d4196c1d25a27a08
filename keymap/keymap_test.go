package keymap

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/translit"
	"github.com/npillmayer/translit/bahnar"
)

func fixture(file string) string {
	return filepath.Join("..", "testdata", file)
}

func TestYAMLFixtureMatchesBuiltinTables(t *testing.T) {
	km, err := LoadFile(fixture("bahnar.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if km.Name != "bahnar" {
		t.Fatalf("name mismatch: %q", km.Name)
	}
	assertEntries(t, "substitutions", km.Substitutions, bahnar.Substitutions())
	assertEntries(t, "cancellations", km.Cancellations, bahnar.Cancellations())
	eng, err := km.Engine()
	if err != nil {
		t.Fatal(err)
	}
	if got := translit.Transliterate(eng, "ngu7o7i Bahnar bo8k"); got != "ngươi Bahnar bǒk" {
		t.Fatalf("unexpected transliteration %q", got)
	}
}

func TestTOMLFixture(t *testing.T) {
	eng, err := LoadEngine(fixture("vni-lite.toml"))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		text       string
		cursor     int
		wantText   string
		wantCursor int
	}{
		{"xa6", 3, "xâ", 2},
		{"xa66", 4, "xa6", 3},
		{"d9", 2, "đ", 1},
		{"aa", 2, "aa", 2},
	}
	for _, tt := range tests {
		text, cursor := eng.Apply(tt.text, tt.cursor)
		if text != tt.wantText || cursor != tt.wantCursor {
			t.Fatalf("Apply(%q, %d) = (%q, %d), want (%q, %d)",
				tt.text, tt.cursor, text, cursor, tt.wantText, tt.wantCursor)
		}
	}
}

func TestSchemaRejectsMalformedYAML(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "missing name", src: "substitutions:\n  aw: ă\n"},
		{name: "unknown key", src: "name: x\nsubstitutions:\n  aw: ă\nextra: 1\n"},
		{name: "no substitutions", src: "name: x\nsubstitutions: {}\n"},
		{name: "list instead of mapping", src: "name: x\nsubstitutions:\n  - aw\n"},
		{name: "empty output", src: "name: x\nsubstitutions:\n  aw: \"\"\n"},
		{name: "null output", src: "name: x\nsubstitutions:\n  aw:\n"},
		{name: "scalar document", src: "bahnar\n"},
		{name: "empty document", src: ""},
	}
	for _, tt := range tests {
		if _, err := Load(YAML, strings.NewReader(tt.src)); err == nil {
			t.Fatalf("%s: expected error", tt.name)
		}
	}
}

func TestYAMLNumericTriggers(t *testing.T) {
	yamlSrc := "name: fractions\nsubstitutions:\n  12: ½\n  34: ¾\n  0.: ∅\ncancellations:\n  122: \"12\"\n"
	tomlSrc := `name = "fractions"
[[substitution]]
trigger = "12"
output = "½"
[[substitution]]
trigger = "34"
output = "¾"
[[substitution]]
trigger = "0."
output = "∅"
[[cancellation]]
trigger = "122"
output = "12"
`
	fromYAML, err := Load(YAML, strings.NewReader(yamlSrc))
	if err != nil {
		t.Fatalf("YAML keymap with numeric triggers rejected: %v", err)
	}
	fromTOML, err := Load(TOML, strings.NewReader(tomlSrc))
	if err != nil {
		t.Fatal(err)
	}
	assertEntries(t, "substitutions", fromYAML.Substitutions, fromTOML.Substitutions)
	assertEntries(t, "cancellations", fromYAML.Cancellations, fromTOML.Cancellations)

	eng, err := fromYAML.Engine()
	if err != nil {
		t.Fatal(err)
	}
	if got := translit.Transliterate(eng, "1 12 34"); got != "1 ½ ¾" {
		t.Fatalf("unexpected transliteration %q", got)
	}

	var buf bytes.Buffer
	if err := EncodeYAML(&buf, fromYAML); err != nil {
		t.Fatal(err)
	}
	reloaded, err := Load(YAML, &buf)
	if err != nil {
		t.Fatalf("exported keymap does not reload: %v\n%s", err, buf.String())
	}
	assertEntries(t, "reloaded", reloaded.Substitutions, fromYAML.Substitutions)
}

func TestTOMLRejectsUnknownKeys(t *testing.T) {
	src := `name = "x"
[[substitution]]
trigger = "aw"
output = "ă"
weight = 3
`
	if _, err := Load(TOML, strings.NewReader(src)); err == nil {
		t.Fatalf("expected error for unknown key")
	}
	if _, err := Load(TOML, strings.NewReader(`name = "x"`)); err == nil {
		t.Fatalf("expected error for keymap without substitutions")
	}
}

func TestTablesAreCheckedOnCompile(t *testing.T) {
	km, err := Load(YAML, strings.NewReader("name: x\nsubstitutions:\n  a: ă\n"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := km.Engine(); err == nil {
		t.Fatalf("expected error for 1-character trigger")
	}
}

func TestOutputsAreNormalized(t *testing.T) {
	// "a" followed by U+0306 COMBINING BREVE
	src := "name: nfc\nsubstitutions:\n  aw: \"a\u0306\"\n"
	km, err := Load(YAML, strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if km.Substitutions[0].Output != "ă" {
		t.Fatalf("expected NFC output, got %q", km.Substitutions[0].Output)
	}
	if _, err := km.Engine(); err != nil {
		t.Fatalf("normalized keymap should compile, got %v", err)
	}
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"a.yaml", YAML}, {"a.YML", YAML}, {"dir/a.toml", TOML},
	}
	for _, tt := range tests {
		if f, err := FormatOf(tt.path); err != nil || f != tt.want {
			t.Fatalf("FormatOf(%q) = %s, %v", tt.path, f, err)
		}
	}
	if _, err := FormatOf("a.json"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if _, err := LoadFile("a.docx"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestExportReloads(t *testing.T) {
	km := FromEngine("bahnar", bahnar.MustEngine())
	encoders := []struct {
		format Format
		encode func(*bytes.Buffer, *Keymap) error
	}{
		{YAML, func(b *bytes.Buffer, km *Keymap) error { return EncodeYAML(b, km) }},
		{TOML, func(b *bytes.Buffer, km *Keymap) error { return EncodeTOML(b, km) }},
	}
	for _, enc := range encoders {
		var buf bytes.Buffer
		if err := enc.encode(&buf, km); err != nil {
			t.Fatalf("%s: %v", enc.format, err)
		}
		reloaded, err := Load(enc.format, &buf)
		if err != nil {
			t.Fatalf("%s: %v", enc.format, err)
		}
		assertEntries(t, enc.format.String(), reloaded.Substitutions, km.Substitutions)
		assertEntries(t, enc.format.String(), reloaded.Cancellations, km.Cancellations)
	}
}

func assertEntries(t *testing.T, what string, got, want []translit.Entry) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: got %d entries, want %d", what, len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%s[%d]: got %v, want %v", what, i, got[i], want[i])
		}
	}
}
