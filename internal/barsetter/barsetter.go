// Package barsetter drives one bar's worth of output across a system's
// staves (component Bar, spec.md §4.7): stave origin/coupling setup, item
// dispatch to internal/note, end-of-line closeouts, barline drawing, and
// bar numbering.
package barsetter

import (
	"github.com/pmw-go/pmwcore/internal/barmodel"
	"github.com/pmw-go/pmwcore/internal/note"
)

// StaveOrigin is the vertical placement of one stave within its system.
type StaveOrigin struct {
	YTop, YBottom, YStave int32
	Suspended             bool
}

// CouplingGap is the up/down gap (millipoints) derived from the nearest
// unsuspended neighbour stave, used to position cross-stave beams and
// stems that couple between staves.
type CouplingGap struct {
	Up, Down int32
}

// NearestUnsuspended walks origins outward from index looking for the
// first non-suspended stave in each direction, returning their YStave
// distance from origins[index] (0 if none found that side).
func NearestUnsuspended(origins []StaveOrigin, index int) CouplingGap {
	var gap CouplingGap
	for i := index - 1; i >= 0; i-- {
		if !origins[i].Suspended {
			gap.Up = origins[index].YStave - origins[i].YStave
			break
		}
	}
	for i := index + 1; i < len(origins); i++ {
		if !origins[i].Suspended {
			gap.Down = origins[i].YStave - origins[index].YStave
			break
		}
	}
	return gap
}

// StaveOrder returns stave indices from bottom to top (reverse of the
// usual top-to-bottom storage order), so that beam-wipes on an upper
// stave cannot erase a lower stave's barline already drawn.
func StaveOrder(n int) []int {
	order := make([]int, n)
	for i := 0; i < n; i++ {
		order[i] = n - 1 - i
	}
	return order
}

// BeamCarryState is the reinstated beam-in-progress state for a stave
// entering this bar, carried over from the previous bar's OverBeam marker.
type BeamCarryState struct {
	Active bool
	Carry  barmodel.Item
}

// StaveResult summarises what happened while dispatching one stave's item
// list, for callers deciding end-of-line handling and bar numbering.
type StaveResult struct {
	Ops               []note.Op
	EndedRightRepeat  bool
	EndedClefChange   bool
	NoteCount         int
}

// OtherHandler dispatches a non-note item (set_other in the original):
// clefs, keys, times, repeats, hairpins, slurs, text, draw primitives,
// and the rest of the ~70 miscellaneous kinds.
type OtherHandler func(item *barmodel.Item, origin StaveOrigin) []note.Op

// DispatchStave walks one stave's item list, calling note.RenderNote for
// KindNote/KindChordNote/KindRest and other for everything else,
// tracking whether the bar ended on a right-repeat or a clef change.
func DispatchStave(bar *barmodel.Bar, ctx note.Context, x0 int32, origin StaveOrigin, other OtherHandler) StaveResult {
	var res StaveResult
	x := x0
	bar.Walk(func(idx int, item *barmodel.Item) {
		switch item.Kind {
		case barmodel.KindNote, barmodel.KindChordNote, barmodel.KindRest:
			res.Ops = append(res.Ops, note.RenderNote(ctx, item.Note, x, origin.YStave, 0, stemLengthFor(item.Note), 0, false, false, false)...)
			res.NoteCount++
			x += noteAdvance(item.Note)
		case barmodel.KindRepeat:
			res.EndedRightRepeat = item.RepeatCount > 0
		case barmodel.KindClef:
			res.EndedClefChange = true
		default:
			if other != nil {
				res.Ops = append(res.Ops, other(item, origin)...)
			}
		}
	})
	return res
}

// stemLengthFor is a placeholder stem-length policy: a fixed base length
// plus the note's StemLengthDelta. It makes no adjustment for beam slope,
// chord span or cross-stave coupling.
func stemLengthFor(n barmodel.Note) int32 {
	if n.IsRest {
		return 0
	}
	return 8000 + n.StemLengthDelta
}

func noteAdvance(n barmodel.Note) int32 {
	return int32(n.Duration) * 200
}
