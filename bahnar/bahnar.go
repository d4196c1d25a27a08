/*
Package bahnar provides the input tables for typing Bahnar on a plain
keyboard.

Bahnar is written in a Latin alphabet with breves (ă ĕ ĭ ŭ), a circumflex on
c (ĉ), a tilde on n (ñ) and a caron on o (ǒ), plus the Vietnamese letters
â đ ê ô ơ ư. Each of these can be typed as a 2-character ASCII trigger, and
repeating the last trigger character reverts the substitution.
*/
package bahnar

import (
	"sync"

	"github.com/npillmayer/translit"
)

// Substitutions returns the substitution entries in definition order.
func Substitutions() []translit.Entry {
	return clone(substitutions)
}

// Cancellations returns the cancellation entries in definition order.
func Cancellations() []translit.Entry {
	return clone(cancellations)
}

// Engine returns the engine for the Bahnar tables. The tables are compiled
// on first use and shared afterwards.
func Engine() (*translit.Engine, error) {
	return engine()
}

// MustEngine is Engine for callers which cannot continue without it.
func MustEngine() *translit.Engine {
	eng, err := engine()
	if err != nil {
		panic(err)
	}
	return eng
}

var engine = sync.OnceValues(func() (*translit.Engine, error) {
	subst, err := translit.NewTable("bahnar-substitutions", translit.SubstitutionWidth, substitutions)
	if err != nil {
		return nil, err
	}
	cancel, err := translit.NewTable("bahnar-cancellations", translit.CancellationWidth, cancellations)
	if err != nil {
		return nil, err
	}
	return translit.NewEngine(subst, cancel)
})

func clone(ee []translit.Entry) []translit.Entry {
	c := make([]translit.Entry, len(ee))
	copy(c, ee)
	return c
}
