package dat

import "testing"

// two-symbol alphabet {1,2}; keys "1" -> 7, "12" -> 9
func smallDAT() *DAT {
	return &DAT{
		Root:  1,
		Sigma: 2,
		Base:  []int32{0, 1, 2, 0, 0},
		Check: []int32{0, 0, 1, 0, 2},
		Out:   []int32{0, 0, 7, 0, 9},
	}
}

func TestTransition(t *testing.T) {
	d := smallDAT()
	s, ok := d.Transition(d.Root, 1)
	if !ok || s != 2 {
		t.Fatalf("expected transition 1 -> 2, got %d (%v)", s, ok)
	}
	if _, ok = d.Transition(d.Root, 2); ok {
		t.Fatalf("expected no transition for symbol 2 at root")
	}
	if _, ok = d.Transition(d.Root, 0); ok {
		t.Fatalf("symbol 0 must never transition")
	}
}

func TestWalkAndOutput(t *testing.T) {
	d := smallDAT()
	tests := []struct {
		key  []uint16
		ok   bool
		want int
	}{
		{key: []uint16{1}, ok: true, want: 7},
		{key: []uint16{1, 2}, ok: true, want: 9},
		{key: []uint16{1, 1}, ok: false},
		{key: []uint16{}, ok: true, want: 0},
	}
	for _, tt := range tests {
		s, ok := d.Walk(tt.key)
		if ok != tt.ok {
			t.Fatalf("walk %v: ok=%v, want %v", tt.key, ok, tt.ok)
		}
		if ok && d.Output(s) != tt.want {
			t.Fatalf("walk %v: output=%d, want %d", tt.key, d.Output(s), tt.want)
		}
	}
	if d.Output(100) != 0 {
		t.Fatalf("out-of-range state must have no output")
	}
}
