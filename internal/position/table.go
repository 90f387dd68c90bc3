// Package position implements the per-bar horizontal position table
// (component P): an ordered (musical-offset, x-offset) array, queried by
// exact lookup, either-of lookup, or linear interpolation (spec.md §4.4).
package position

import (
	"fmt"
	"sort"

	"github.com/pmw-go/pmwcore/internal/barmodel"
)

// Entry is one position-table row. Negative Moff values are auxiliary
// entries (clefs, keys, times, left-repeat marks, grace slots) that precede
// the first note.
type Entry struct {
	Moff   barmodel.Moff
	XOffset int32 // millipoints from the bar's left edge
}

// ExtrapolationRate is the millipoints-per-crotchet rate used when
// x_at_interpolated is asked for an offset beyond either end of the table.
const ExtrapolationRate = 16000

// Table is one bar's position table plus the shared "current" cursor used
// to amortise repeated non-decreasing queries to O(1) (spec.md §5).
type Table struct {
	Entries []Entry
	cursor  int

	// next, when non-nil, is consulted by XAt when a beam crossing the
	// barline needs to search into the following bar's table.
	next *Table
	// barlineWidth is added to the following bar's x-offsets when a
	// cross-barline beam query continues into next.
	barlineWidth int32
	crossingBeam bool
}

// New returns a table built from entries, which must already be sorted by
// Moff (callers build it bar-by-bar during pagination; see spec.md §8 for
// the ordering invariant this type assumes holds).
func New(entries []Entry) *Table {
	return &Table{Entries: entries}
}

// SetNext links t to the following bar's table and records the barline
// width to add when a beam crossing the barline continues the search into
// it; crossing marks whether a beam is currently being built across this
// barline (spec.md §4.4: "If moff equals the last entry and we are
// currently building a beam that crosses the barline...").
func (t *Table) SetNext(next *Table, barlineWidth int32, crossing bool) {
	t.next = next
	t.barlineWidth = barlineWidth
	t.crossingBeam = crossing
}

// ResetCursor rewinds the amortised search cursor to the start of the bar,
// called once per bar (spec.md §5: "out_posptr is reset per bar").
func (t *Table) ResetCursor() { t.cursor = 0 }

// XAt locates the entry with moff exactly equal to the argument, taking a
// hint from the cursor (which only ever moves in the direction of the
// requested moff within one call sequence). When the table is in
// crossing-beam mode and moff equals the last entry's offset, the search
// continues into the next bar's table instead. Otherwise not finding an
// exact match is a fatal error.
func (t *Table) XAt(moff barmodel.Moff) (int32, error) {
	if len(t.Entries) == 0 {
		return 0, fmt.Errorf("position: fatal: empty position table queried for moff %d", moff)
	}

	last := t.Entries[len(t.Entries)-1]
	if t.crossingBeam && t.next != nil && moff == last.Moff {
		x, err := t.next.XAt(t.next.Entries[0].Moff)
		if err != nil {
			return 0, err
		}
		return last.XOffset + t.barlineWidth + x, nil
	}

	if t.cursor < len(t.Entries) && t.Entries[t.cursor].Moff > moff {
		t.cursor = 0
	}
	i := t.cursor
	for i < len(t.Entries) && t.Entries[i].Moff < moff {
		i++
	}
	if i < len(t.Entries) && t.Entries[i].Moff == moff {
		t.cursor = i
		return t.Entries[i].XOffset, nil
	}

	return 0, fmt.Errorf("position: fatal: no position table entry at moff %d", moff)
}

// XAtEither returns XAt(moff1) if that offset exists in the table, else
// XAt(moff2).
func (t *Table) XAtEither(moff1, moff2 barmodel.Moff) (int32, error) {
	if t.has(moff1) {
		return t.XAt(moff1)
	}
	return t.XAt(moff2)
}

func (t *Table) has(moff barmodel.Moff) bool {
	i := sort.Search(len(t.Entries), func(i int) bool { return t.Entries[i].Moff >= moff })
	return i < len(t.Entries) && t.Entries[i].Moff == moff
}

// XAtInterpolated returns the exact or linearly-interpolated x for moff,
// extrapolating at ExtrapolationRate millipoints per crotchet when moff
// lies beyond either end of the table. It does not advance the shared
// cursor (spec.md §4.4).
func (t *Table) XAtInterpolated(moff barmodel.Moff) (int32, error) {
	n := len(t.Entries)
	if n == 0 {
		return 0, fmt.Errorf("position: fatal: empty position table queried for moff %d", moff)
	}

	if moff <= t.Entries[0].Moff {
		delta := t.Entries[0].Moff - moff
		return t.Entries[0].XOffset - extrapolate(delta), nil
	}
	if moff >= t.Entries[n-1].Moff {
		delta := moff - t.Entries[n-1].Moff
		return t.Entries[n-1].XOffset + extrapolate(delta), nil
	}

	i := sort.Search(n, func(i int) bool { return t.Entries[i].Moff >= moff })
	if t.Entries[i].Moff == moff {
		return t.Entries[i].XOffset, nil
	}
	lo, hi := t.Entries[i-1], t.Entries[i]
	span := int64(hi.Moff - lo.Moff)
	frac := int64(moff - lo.Moff)
	x := int64(lo.XOffset) + (int64(hi.XOffset-lo.XOffset)*frac)/span
	return int32(x), nil
}

func extrapolate(delta barmodel.Moff) int32 {
	return int32(int64(delta) * ExtrapolationRate / int64(barmodel.MoffPerCrotchet))
}

// StrictlyIncreasing reports whether entries are strictly increasing in
// both Moff and XOffset — the universal invariant of spec.md §8 (auxiliary
// negative-Moff entries are permitted before the first real entry).
func StrictlyIncreasing(entries []Entry) bool {
	for i := 1; i < len(entries); i++ {
		if entries[i].Moff <= entries[i-1].Moff || entries[i].XOffset <= entries[i-1].XOffset {
			return false
		}
	}
	return true
}
