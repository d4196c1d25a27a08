package translit

type indexStats struct {
	Backend    string
	Triggers   int
	UsedSlots  int
	TotalSlots int
}

func (s indexStats) FillRatio() float64 {
	if s.TotalSlots == 0 {
		return 0
	}
	return float64(s.UsedSlots) / float64(s.TotalSlots)
}

// triggerIndex is the internal backend abstraction for exact trigger lookup.
//
// Triggers are inserted while the index is mutable, then the index is frozen
// and only serves lookups. IDs are positive; Lookup returns 0 for "absent".
type triggerIndex interface {
	Insert(trigger []rune, id int) bool
	Freeze()
	Lookup(window []rune) int
	Stats() indexStats
}
