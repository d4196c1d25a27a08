package translit

import (
	"fmt"
	"sort"

	"github.com/npillmayer/translit/dat"
)

type datBuildNode struct {
	id       int // entry ID if terminal, else 0
	state    uint32
	children map[uint16]*datBuildNode
}

// datIndex compiles triggers into a double-array automaton.
// Runes are mapped to a dense alphabet on insertion; runes never seen
// during construction cannot start or continue a trigger.
type datIndex struct {
	frozen   bool
	root     *datBuildNode
	alphabet map[rune]uint16
	triggers int
	compiled *dat.DAT
}

func newDATIndex() *datIndex {
	return &datIndex{
		root:     &datBuildNode{children: make(map[uint16]*datBuildNode)},
		alphabet: make(map[rune]uint16),
		compiled: &dat.DAT{Root: 1},
	}
}

func (ix *datIndex) dense(r rune, grow bool) uint16 {
	if c, ok := ix.alphabet[r]; ok {
		return c
	}
	if !grow || len(ix.alphabet) == int(^uint16(0))-1 {
		return 0
	}
	c := uint16(len(ix.alphabet) + 1)
	ix.alphabet[r] = c
	return c
}

// Insert adds trigger with entry ID id. It returns false if the index is
// frozen, the trigger is empty or id is not positive.
func (ix *datIndex) Insert(trigger []rune, id int) bool {
	if ix.frozen || len(trigger) == 0 || id <= 0 {
		return false
	}
	n := ix.root
	for _, r := range trigger {
		c := ix.dense(r, true)
		if c == 0 {
			return false
		}
		child := n.children[c]
		if child == nil {
			child = &datBuildNode{children: make(map[uint16]*datBuildNode)}
			n.children[c] = child
		}
		n = child
	}
	if n.id == 0 {
		ix.triggers++
	}
	n.id = id
	return true
}

// Freeze lays out the build tree breadth-first into the double array.
func (ix *datIndex) Freeze() {
	if ix.frozen {
		return
	}
	d := ix.compiled
	d.Sigma = uint16(len(ix.alphabet))
	d.Base = make([]int32, int(d.Root)+1)
	d.Check = make([]int32, int(d.Root)+1)
	d.Out = make([]int32, int(d.Root)+1)
	ix.root.state = d.Root
	queue := []*datBuildNode{ix.root}
	for q := 0; q < len(queue); q++ {
		n := queue[q]
		d.Out[n.state] = int32(n.id)
		if len(n.children) == 0 {
			continue
		}
		labels := sortedLabels(n.children)
		base := findBase(d.Check, labels)
		growTo(d, base+int(labels[len(labels)-1]))
		d.Base[n.state] = int32(base)
		for _, label := range labels {
			t := base + int(label)
			child := n.children[label]
			child.state = uint32(t)
			d.Check[t] = int32(n.state)
			queue = append(queue, child)
		}
	}
	ix.root = nil
	ix.frozen = true
	tracer().Debugf("trigger index frozen: %s", ix)
}

// Lookup returns the entry ID for an exact window match, or 0.
func (ix *datIndex) Lookup(window []rune) int {
	assert(ix.frozen, "trigger index used before freeze")
	key := make([]uint16, len(window))
	for i, r := range window {
		if key[i] = ix.dense(r, false); key[i] == 0 {
			return 0
		}
	}
	state, ok := ix.compiled.Walk(key)
	if !ok {
		return 0
	}
	return ix.compiled.Output(state)
}

func sortedLabels(children map[uint16]*datBuildNode) []uint16 {
	labels := make([]uint16, 0, len(children))
	for label := range children {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return labels[i] < labels[j]
	})
	return labels
}

// findBase returns the smallest base placing all labels on free slots.
func findBase(check []int32, labels []uint16) int {
	for base := 1; ; base++ {
		ok := true
		for _, label := range labels {
			t := base + int(label)
			if t < len(check) && check[t] != 0 {
				ok = false
				break
			}
		}
		if ok {
			return base
		}
	}
}

func growTo(d *dat.DAT, idx int) {
	if idx < len(d.Base) {
		return
	}
	grow := idx + 1 - len(d.Base)
	d.Base = append(d.Base, make([]int32, grow)...)
	d.Check = append(d.Check, make([]int32, grow)...)
	d.Out = append(d.Out, make([]int32, grow)...)
}

func (ix *datIndex) String() string {
	return fmt.Sprintf("DAT(states=%d,sigma=%d,triggers=%d,frozen=%v)",
		ix.compiled.NStates(), len(ix.alphabet), ix.triggers, ix.frozen)
}

func (ix *datIndex) Stats() indexStats {
	d := ix.compiled
	stats := indexStats{
		Backend:    "dat",
		Triggers:   ix.triggers,
		TotalSlots: d.NStates(),
	}
	for i := range d.Check {
		if i == int(d.Root) || d.Check[i] != 0 {
			stats.UsedSlots++
		}
	}
	return stats
}
