/*
Package keymap loads transliteration tables from text files.

A keymap names a substitution table and an optional cancellation table.
Two formats are understood, YAML

	name: bahnar
	substitutions:
	  aw: ă
	  "u\\": ŭ
	cancellations:
	  aww: aw

and TOML

	name = "bahnar"

	[[substitution]]
	trigger = "aw"
	output = "ă"

	[[cancellation]]
	trigger = "aww"
	output = "aw"

Entries keep their file order. Outputs and triggers are normalized to NFC,
so a decomposed "ă" (a + combining breve) in a file still counts as a single
character.
*/
package keymap

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/unicode/norm"

	"github.com/npillmayer/translit"
)

// tracer writes to trace with key 'translit.keymap'
func tracer() tracing.Trace {
	return tracing.Select("translit.keymap")
}

// Format is a keymap file format.
type Format int

const (
	YAML Format = iota + 1
	TOML
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	}
	return "unknown"
}

// ErrUnsupportedFormat is returned for files which are neither YAML nor TOML.
var ErrUnsupportedFormat = errors.New("unsupported keymap format")

// FormatOf derives the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Keymap is a named pair of entry lists.
type Keymap struct {
	Name          string
	Substitutions []translit.Entry
	Cancellations []translit.Entry
}

// Load parses a keymap in the given format.
func Load(format Format, reader io.Reader) (*Keymap, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	var km *Keymap
	switch format {
	case YAML:
		km, err = decodeYAML(data)
	case TOML:
		km, err = decodeTOML(data)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}
	km.normalize()
	tracer().Infof("keymap %q (%s): %d substitutions, %d cancellations",
		km.Name, format, len(km.Substitutions), len(km.Cancellations))
	return km, nil
}

// LoadFile reads a keymap file, choosing the format by extension.
func LoadFile(path string) (*Keymap, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	km, err := Load(format, f)
	if err != nil {
		return nil, fmt.Errorf("keymap %s: %w", path, err)
	}
	return km, nil
}

// LoadEngine is a shortcut for LoadFile followed by Engine.
func LoadEngine(path string) (*translit.Engine, error) {
	km, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return km.Engine()
}

// Engine compiles the keymap's tables into an engine.
func (km *Keymap) Engine() (*translit.Engine, error) {
	subst, err := translit.LoadTable(km.Name+"-substitutions", translit.SubstitutionWidth,
		translit.NewEntryReader(km.Substitutions))
	if err != nil {
		return nil, err
	}
	var cancel *translit.Table
	if len(km.Cancellations) > 0 {
		cancel, err = translit.LoadTable(km.Name+"-cancellations", translit.CancellationWidth,
			translit.NewEntryReader(km.Cancellations))
		if err != nil {
			return nil, err
		}
	}
	return translit.NewEngine(subst, cancel)
}

// FromEngine captures the tables of an engine as a keymap, e.g. for export.
func FromEngine(name string, eng *translit.Engine) *Keymap {
	km := &Keymap{
		Name:          name,
		Substitutions: eng.Substitutions().Entries(),
	}
	if c := eng.Cancellations(); c != nil {
		km.Cancellations = c.Entries()
	}
	return km
}

func (km *Keymap) normalize() {
	for _, ee := range [][]translit.Entry{km.Substitutions, km.Cancellations} {
		for i := range ee {
			ee[i].Trigger = norm.NFC.String(ee[i].Trigger)
			ee[i].Output = norm.NFC.String(ee[i].Output)
		}
	}
}
