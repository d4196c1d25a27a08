package keymap

import (
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "https://github.com/npillmayer/translit/keymap.schema.json"

// keymapSchema describes the document structure shared by all formats.
// Trigger widths and table relations are checked when tables are compiled.
const keymapSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["name", "substitutions"],
  "additionalProperties": false,
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "substitutions": {
      "type": "object",
      "minProperties": 1,
      "additionalProperties": {"type": "string", "minLength": 1}
    },
    "cancellations": {
      "type": "object",
      "additionalProperties": {"type": "string", "minLength": 1}
    }
  }
}`

var schema = jsonschema.MustCompileString(schemaURL, keymapSchema)

// validate checks a generically decoded document against the keymap schema.
func validate(doc any) error {
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("keymap does not match schema: %w", err)
	}
	return nil
}
