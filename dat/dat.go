package dat

// DAT is a frozen double-array trie for short trigger sequences.
//   - Nodes/states are indices into Base/Check (0 is unused; Root is typically 1).
//   - Transition: t := Base[s] + c; valid if Check[t] == s; next state is t.
//   - c is a dense alphabet ID in [1..Sigma]. c==0 means "not in alphabet".
//
// Outputs:
//   - If Out[s] != 0, state s terminates a trigger and Out[s] is the 1-based
//     ID of the entry it maps to. Out is indexed like Base and Check.
type DAT struct {
	// Root state index (commonly 1).
	Root uint32

	// Sigma is the size of the dense alphabet (maximum dense ID).
	Sigma uint16

	// Base and Check are the classic double-array.
	Base  []int32 // len == N
	Check []int32 // len == N

	// Out holds entry IDs for terminal states, 0 for inner states.
	Out []int32 // len == N
}

// NStates returns number of allocated slots/states in the arrays.
func (d *DAT) NStates() int { return len(d.Base) }

// Transition returns (nextState, ok). dense must be in [1..Sigma].
func (d *DAT) Transition(state uint32, dense uint16) (uint32, bool) {
	if dense == 0 || int(state) >= len(d.Base) || int(state) >= len(d.Check) {
		return 0, false
	}
	t := d.Base[state] + int32(dense)
	if t <= 0 || int(t) >= len(d.Check) {
		return 0, false
	}
	if d.Check[t] != int32(state) {
		return 0, false
	}
	return uint32(t), true
}

// Walk follows key from the root and returns the state reached.
// It returns (0, false) as soon as a transition is missing.
func (d *DAT) Walk(key []uint16) (uint32, bool) {
	state := d.Root
	for _, c := range key {
		next, ok := d.Transition(state, c)
		if !ok {
			return 0, false
		}
		state = next
	}
	return state, true
}

// Output returns the entry ID stored at state, or 0.
func (d *DAT) Output(state uint32) int {
	if int(state) >= len(d.Out) {
		return 0
	}
	return int(d.Out[state])
}
