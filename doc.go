/*
Package translit implements live input transliteration for a text box.

While a user types, the last few characters in front of the cursor are
matched against two small tables of triggers. A 2-character trigger such as
"aw" is substituted by a single accented character ("ă"). A 3-character
trigger built from a substitution trigger plus a repetition of its last
character ("aww") is cancelled back to the plain 2-character sequence ("aw"),
which lets users type a literal digraph on purpose.

The engine is a pure function over (text, cursor). It keeps no state between
calls, which lets users paste text, move the cursor or edit in any order
without confusing it. A host (a browser text box, a terminal input line)
calls it exactly once per inserted character, after the insertion took place.
Type Buffer implements this protocol for Go hosts.

Cursor positions count runes (Unicode code points), not bytes.

Tables are compiled into a frozen double-array automaton for exact window
lookups (package dat) and a prefix trie for "which triggers start with ..."
queries. The default Bahnar tables live in package bahnar, custom tables may
be loaded with package keymap.

Further Reading

	https://en.wikipedia.org/wiki/Telex_(input_method)
	https://en.wikipedia.org/wiki/Bahnar_language

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package translit

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'translit'
func tracer() tracing.Trace {
	return tracing.Select("translit")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
