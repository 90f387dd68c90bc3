package barmodel

import "github.com/pmw-go/pmwcore/internal/pitch"

// ActiveSlur is one entry of a continuation state's ordered list of slurs
// still open at a bar boundary.
type ActiveSlur struct {
	ID       int
	StartX, StartY int32
	Below    bool
	Editorial bool
}

// ActiveHairpin records a hairpin (crescendo/diminuendo) crossing a bar
// boundary.
type ActiveHairpin struct {
	StartX int32
	Crescendo bool
}

// NthTimeBar records an open "first/second time" bracket chain.
type NthTimeBar struct {
	StartX int32
	Numbers []int
}

// BeamCarry records a beam that crosses a bar line, so the next bar (or,
// at a system break, the next system) can continue or close it.
type BeamCarry struct {
	FirstX, FirstY int32
	Slope          int32 // thousandths
	Remaining      int
	LongestNote    NoteType
	XCorrection    int32
	Split          bool
	StemUp         bool
}

// UnderlayPending records a pending underlay/overlay hyphen or extender
// that must be drawn up to the next syllable or the bar line.
type UnderlayPending struct {
	Active  bool
	Hyphen  bool // false => extender ('=')
	StartX  int32
	Verse   int
}

// PendingTie records a tie that must be drawn as soon as the tied-to note
// is placed.
type PendingTie struct {
	Active bool
	FromX, FromY int32
	TieIndex int
}

// ContState is the per-stave continuation record that survives across bar
// boundaries within a system, and is selectively reinstated across
// systems from a sysblock snapshot (spec.md §3).
type ContState struct {
	Slurs   []ActiveSlur
	Hairpin *ActiveHairpin
	NthBar  *NthTimeBar
	Beam    *BeamCarry
	Tie     *PendingTie
	Underlay []UnderlayPending

	Clef string
	Key  pitch.Key
	Time [2]int // numerator, denominator

	NoteheadStyle int

	BowingAbove   bool
	NotesOn       bool
	TripletsOn    bool
	NoteheadsOn   bool
	LastBarDoubleRepeat bool
}

// NewContState returns a fresh continuation record with sensible zero
// defaults (notes and noteheads enabled, triplets off).
func NewContState() *ContState {
	return &ContState{NotesOn: true, NoteheadsOn: true}
}

// Clone returns a deep-enough copy of c suitable for seeding a new
// system's working continuation record from a sysblock snapshot.
func (c *ContState) Clone() *ContState {
	cp := *c
	cp.Slurs = append([]ActiveSlur(nil), c.Slurs...)
	cp.Underlay = append([]UnderlayPending(nil), c.Underlay...)
	if c.Hairpin != nil {
		h := *c.Hairpin
		cp.Hairpin = &h
	}
	if c.NthBar != nil {
		n := *c.NthBar
		n.Numbers = append([]int(nil), c.NthBar.Numbers...)
		cp.NthBar = &n
	}
	if c.Beam != nil {
		b := *c.Beam
		cp.Beam = &b
	}
	if c.Tie != nil {
		t := *c.Tie
		cp.Tie = &t
	}
	return &cp
}
