// Package pmwcore is the root facade wiring the layout and output
// components together: font metrics and string measurement (F, S),
// transposition (T), position tables (P), beam planning (B), note
// rendering (N), bar/system/page assembly (Bar, Sys, Pg), and the output
// backend (O), per spec.md §4.1-§4.10.
package pmwcore

import (
	"github.com/pmw-go/pmwcore/internal/barmodel"
	"github.com/pmw-go/pmwcore/internal/barsetter"
	"github.com/pmw-go/pmwcore/internal/beam"
	"github.com/pmw-go/pmwcore/internal/note"
	"github.com/pmw-go/pmwcore/internal/output"
	"github.com/pmw-go/pmwcore/internal/position"
)

// DrawOps replays a note/chord/rest's rendering ops against a backend,
// resolving each op's logical font id to a concrete output.FontInstance
// via fontFor (spec.md §4.6: the renderer emits ops, a separate stage
// turns them into backend calls — mirrored here instead of inside
// internal/note so that package stays free of an internal/output
// dependency).
func DrawOps(b output.Backend, fontFor func(id int) output.FontInstance, ops []note.Op) {
	for _, op := range ops {
		switch op.Kind {
		case note.OpGlyph:
			x, y := op.X, op.Y
			b.String(singleCharString(op.Char, fontFor(op.Font)), fontFor(op.Font), &x, &y, false)
		case note.OpSmallGlyph:
			f := fontFor(op.Font)
			f.SizeMillipt = f.SizeMillipt * op.Size / 1000
			x, y := op.X, op.Y
			b.String(singleCharString(op.Char, f), f, &x, &y, false)
		case note.OpLine:
			b.Line(op.X, op.Y, op.X2, op.Y2, 0, 0)
		case note.OpText:
			x, y := op.X, op.Y
			f := fontFor(op.Font)
			s := output.MixedString{Runs: []output.StringRun{{Text: op.Text, Font: f}}}
			b.String(s, f, &x, &y, true)
		}
	}
}

func singleCharString(c rune, f output.FontInstance) output.MixedString {
	return output.MixedString{Runs: []output.StringRun{{Text: string(c), Font: f}}}
}

// BarContext is everything RenderBar needs to dispatch one stave's worth
// of one bar: the note-rendering context, the bar's position table, and
// this stave's vertical origin.
type BarContext struct {
	Note   note.Context
	Table  *position.Table
	Origin barsetter.StaveOrigin
}

// RenderBar dispatches one stave's bar through internal/barsetter and
// draws the resulting ops against b, returning the dispatch summary so a
// caller can decide end-of-line handling and bar numbering.
func RenderBar(bc BarContext, bar *barmodel.Bar, b output.Backend, fontFor func(id int) output.FontInstance, other barsetter.OtherHandler) barsetter.StaveResult {
	bc.Table.ResetCursor()
	x0, err := bc.Table.XAt(0)
	if err != nil {
		x0 = 0
	}
	res := barsetter.DispatchStave(bar, bc.Note, x0, bc.Origin, other)
	DrawOps(b, fontFor, res.Ops)
	return res
}

// PlanBeam is a thin convenience wrapper combining internal/beam's
// planner and through-beam count for a run of candidate notes, returning
// the committed plan plus the number of level-1 segments to draw.
func PlanBeam(notes []beam.CandidateNote, types []barmodel.NoteType, continuing bool) (beam.Plan, int, bool) {
	plan, ok := beam.Plan1(notes, continuing, nil, false)
	if !ok {
		return beam.Plan{}, 0, false
	}
	return plan, beam.ThroughBeamCountAtLevel1(types, -1), true
}
