package keymap

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/npillmayer/translit"
)

type tomlEntry struct {
	Trigger string `toml:"trigger"`
	Output  string `toml:"output"`
}

type tomlKeymap struct {
	Name         string      `toml:"name"`
	Substitution []tomlEntry `toml:"substitution"`
	Cancellation []tomlEntry `toml:"cancellation,omitempty"`
}

func decodeTOML(data []byte) (*Keymap, error) {
	var tk tomlKeymap
	md, err := toml.Decode(string(data), &tk)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keymap keys: %s", strings.Join(keys, ", "))
	}
	subst, err := tomlEntries(tk.Substitution)
	if err != nil {
		return nil, err
	}
	cancel, err := tomlEntries(tk.Cancellation)
	if err != nil {
		return nil, err
	}
	km := &Keymap{Name: tk.Name, Substitutions: subst, Cancellations: cancel}
	if err := validate(km.document()); err != nil {
		return nil, err
	}
	return km, nil
}

func tomlEntries(te []tomlEntry) ([]translit.Entry, error) {
	if len(te) == 0 {
		return nil, nil
	}
	ee := make([]translit.Entry, len(te))
	for i, e := range te {
		if e.Trigger == "" {
			return nil, fmt.Errorf("entry %d has no trigger", i+1)
		}
		ee[i] = translit.Entry{Trigger: e.Trigger, Output: e.Output}
	}
	return ee, nil
}

// document renders km as a generic document for schema validation.
func (km *Keymap) document() map[string]any {
	doc := map[string]any{
		"name":          km.Name,
		"substitutions": entryObject(km.Substitutions),
	}
	if len(km.Cancellations) > 0 {
		doc["cancellations"] = entryObject(km.Cancellations)
	}
	return doc
}

func entryObject(ee []translit.Entry) map[string]any {
	obj := make(map[string]any, len(ee))
	for _, e := range ee {
		obj[e.Trigger] = e.Output
	}
	return obj
}

// EncodeTOML writes km in TOML format.
func EncodeTOML(w io.Writer, km *Keymap) error {
	tk := tomlKeymap{Name: km.Name}
	for _, e := range km.Substitutions {
		tk.Substitution = append(tk.Substitution, tomlEntry{Trigger: e.Trigger, Output: e.Output})
	}
	for _, e := range km.Cancellations {
		tk.Cancellation = append(tk.Cancellation, tomlEntry{Trigger: e.Trigger, Output: e.Output})
	}
	if err := toml.NewEncoder(w).Encode(tk); err != nil {
		return fmt.Errorf("encoding keymap %q: %w", km.Name, err)
	}
	return nil
}
