package note

// InsideAccent is one of the accent marks drawn inside the stave
// (spec.md §4.6 step 5): staccato, staccatissimo, ring, bar-accent.
type InsideAccent uint8

const (
	AccentStaccato InsideAccent = iota
	AccentStaccatissimo
	AccentRing
	AccentBar
)

const insideAccentBaseGapMillipt int32 = 4000 // 4pt from the stem-side head
const insideAccentStackGapMillipt int32 = 4000 // 4pt between stacked accents
const staveLineAvoidOffsetMillipt int32 = 2000 // ±2pt nudge off a stave line

// InsideAccentPlacement computes the y-offset (from the stem-side head)
// of the idx-th (0-based) stacked inside-the-stave accent, nudging away
// from a stave line unless the stave has 0 or 1 lines, and applying a
// one-shot explicit [accentmove] override that does not affect later
// accents in the stack.
func InsideAccentPlacement(idx int, onStaveLine bool, staveLines int, explicitMoveOnce int32) int32 {
	y := insideAccentBaseGapMillipt + int32(idx)*insideAccentStackGapMillipt
	if idx == 0 && explicitMoveOnce != 0 {
		y += explicitMoveOnce
	}
	if onStaveLine && staveLines > 1 {
		y += staveLineAvoidOffsetMillipt
	}
	return y
}

// OutsideAccent is one of the accents drawn outside the stave, in the
// fixed ordering of spec.md §4.6 step 6 (bowing marks always last).
type OutsideAccent uint8

const (
	AccentWedge OutsideAccent = iota
	AccentGreaterThan
	AccentStaffParallel
	AccentVLine
	AccentDownBow
	AccentUpBow
)

// outsideAccentOrder is the fixed draw order; bowing marks (down/up-bow)
// sort after every other outside accent regardless of input order.
var outsideAccentOrder = map[OutsideAccent]int{
	AccentWedge:          0,
	AccentGreaterThan:    1,
	AccentStaffParallel:  2,
	AccentVLine:          3,
	AccentDownBow:        4,
	AccentUpBow:          5,
}

// SortOutsideAccents orders accents per outsideAccentOrder, stable among
// equal ranks.
func SortOutsideAccents(accents []OutsideAccent) []OutsideAccent {
	out := make([]OutsideAccent, len(accents))
	copy(out, accents)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && outsideAccentOrder[out[j-1]] > outsideAccentOrder[out[j]]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// outsideAccentConstant is the per-accent constant y-offset (millipoints)
// added beyond the note's own bound.
var outsideAccentConstant = map[OutsideAccent]int32{
	AccentWedge:         3000,
	AccentGreaterThan:   3000,
	AccentStaffParallel: 2500,
	AccentVLine:         2500,
	AccentDownBow:       4000,
	AccentUpBow:         4000,
}

// OutsideAccentY computes the y-base for one outside-the-stave accent:
// the greater (above) or lesser (below) of the stave edge and the note's
// own bound, plus the accent's constant offset, plus the accidental
// clearance accClearance.
func OutsideAccentY(acc OutsideAccent, staveEdge, noteBound int32, above bool, accClearance int32) int32 {
	base := staveEdge
	if above {
		if noteBound > base {
			base = noteBound
		}
	} else {
		if noteBound < base {
			base = noteBound
		}
	}
	off := outsideAccentConstant[acc]
	if !above {
		off = -off
	}
	return base + off + accClearance
}
