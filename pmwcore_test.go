package pmwcore

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pmw-go/pmwcore/internal/barmodel"
	"github.com/pmw-go/pmwcore/internal/barsetter"
	"github.com/pmw-go/pmwcore/internal/beam"
	"github.com/pmw-go/pmwcore/internal/note"
	"github.com/pmw-go/pmwcore/internal/output"
	"github.com/pmw-go/pmwcore/internal/pitch"
	"github.com/pmw-go/pmwcore/internal/position"
)

// recordingBackend implements output.Backend, recording a trace of every
// call so end-to-end scenarios can assert on what was drawn without a
// real PostScript/PDF target.
type recordingBackend struct {
	calls []string
}

func (r *recordingBackend) record(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recordingBackend) String(s output.MixedString, font output.FontInstance, x, y *int32, update bool) {
	for _, run := range s.Runs {
		r.record("String(%q,%d,%d,font=%d)", run.Text, *x, *y, font.ID)
	}
}
func (r *recordingBackend) MusChar(x, y int32, id int, size int32) { r.record("MusChar(%d,%d,%d,%d)", x, y, id, size) }
func (r *recordingBackend) Beam(x0, x1 int32, level int, slopeChange int32) {
	r.record("Beam(%d,%d,%d,%d)", x0, x1, level, slopeChange)
}
func (r *recordingBackend) Barline(x, yTop, yBot int32, kind output.BarlineKind, magnPerMille int32) {
	r.record("Barline(%d,%d,%d,%d)", x, yTop, yBot, kind)
}
func (r *recordingBackend) Brace(x, yTop, yBot int32, magnPerMille int32) { r.record("Brace") }
func (r *recordingBackend) Bracket(x, yTop, yBot int32, magnPerMille int32) { r.record("Bracket") }
func (r *recordingBackend) Stave(leftX, y, rightX int32, nlines int) { r.record("Stave") }
func (r *recordingBackend) Slur(x0, y0, x1, y1 int32, flags output.SlurFlags, co int32) { r.record("Slur") }
func (r *recordingBackend) Line(x0, y0, x1, y1 int32, thickness int32, flags output.LineFlags) {
	r.record("Line(%d,%d,%d,%d)", x0, y0, x1, y1)
}
func (r *recordingBackend) Lines(xs, ys []int32, thickness int32) { r.record("Lines") }
func (r *recordingBackend) Path(xs, ys []int32, cmds []output.PathCmd, thickness int32) { r.record("Path") }
func (r *recordingBackend) AbsPath(xs, ys []int32, cmds []output.PathCmd, thickness int32) { r.record("AbsPath") }
func (r *recordingBackend) SetDash(dash, gap int32) {}
func (r *recordingBackend) SetCapAndJoin(caps int)  {}
func (r *recordingBackend) SetColour(c output.RGB)  {}
func (r *recordingBackend) SetGray(g int32)         {}
func (r *recordingBackend) GetColour() output.RGB   { return output.RGB{} }
func (r *recordingBackend) GSave()                  {}
func (r *recordingBackend) GRestore()               {}
func (r *recordingBackend) Rotate(milliRadians int32) {}
func (r *recordingBackend) Translate(x, y int32)      {}
func (r *recordingBackend) StartBar(absBar int, stave int) { r.record("StartBar(%d,%d)", absBar, stave) }

var _ output.Backend = (*recordingBackend)(nil)

func fixedFont(id int) func(int) output.FontInstance {
	return func(_ int) output.FontInstance { return output.FontInstance{ID: id, SizeMillipt: 10000} }
}

func cMajorCrotchet() barmodel.Note {
	return barmodel.Note{
		Type:       barmodel.NoteCrotchet,
		Stem:       barmodel.StemUp,
		Head:       barmodel.HeadNormal,
		AbsPitch:   pitch.AbsPitch(0),
		StavePitch: pitch.P1S,
		Duration:   barmodel.MoffPerCrotchet,
	}
}

func defaultOrigin() barsetter.StaveOrigin {
	return barsetter.StaveOrigin{YTop: 0, YBottom: 32000, YStave: 16000}
}

func defaultContext() note.Context {
	return note.Context{OutStaveMagnPerMille: 1000, StaveLines: 5}
}

// Scenario 1: a single C-major crotchet is dispatched and draws exactly
// one notehead glyph via the backend, with no accidental and no dots.
func TestEndToEndSingleCrotchet(t *testing.T) {
	bar := barmodel.NewBar(0)
	bar.Append(barmodel.Item{Kind: barmodel.KindNote, Note: cMajorCrotchet()})

	table := position.New([]position.Entry{{Moff: 0, XOffset: 1000}, {Moff: barmodel.MoffPerCrotchet, XOffset: 9000}})
	bc := BarContext{Note: defaultContext(), Table: table, Origin: defaultOrigin()}

	backend := &recordingBackend{}
	res := RenderBar(bc, bar, backend, fixedFont(int(0)), nil)

	require.Equal(t, 1, res.NoteCount)
	// head glyph + stem-start + two stem-segment glyphs (8000 millipoint
	// stem / 4000 per segment) == 4 ops; the undotted crotchet has no dot.
	require.Len(t, backend.calls, 4)
	require.Contains(t, backend.calls[0], "String(")
	require.Contains(t, backend.calls[len(backend.calls)-1], fmt.Sprintf("%q", string(rune(note.GlyphStemSegment))))
}

// Scenario 2: a beam of four quavers plans three level-1 through-beam
// segments (n-1 for an unbroken run) per the §8 testable property.
func TestEndToEndBeamOfFourQuavers(t *testing.T) {
	types := []barmodel.NoteType{
		barmodel.NoteQuaver, barmodel.NoteQuaver, barmodel.NoteQuaver, barmodel.NoteQuaver,
	}
	notes := make([]beam.CandidateNote, len(types))
	for i, ty := range types {
		notes[i] = beam.CandidateNote{Type: ty, StemUp: true, Pitch: 32}
	}

	plan, throughCount, ok := PlanBeam(notes, types, false)
	require.True(t, ok)
	require.Equal(t, 3, throughCount)
	require.Equal(t, 4, plan.Count)
	require.False(t, plan.Split)
}

// Scenario 3: a chord (a note followed by a KindChordNote continuation)
// with a tie draws one glyph sequence per chord member and a tie item is
// dispatched through the OtherHandler rather than the note renderer.
func TestEndToEndChordWithTie(t *testing.T) {
	bar := barmodel.NewBar(0)
	bar.Append(barmodel.Item{Kind: barmodel.KindNote, Note: cMajorCrotchet()})
	chordNote := cMajorCrotchet()
	chordNote.StavePitch = pitch.P1S + 8
	bar.Append(barmodel.Item{Kind: barmodel.KindChordNote, Note: chordNote})
	bar.Append(barmodel.Item{Kind: barmodel.KindTie})

	table := position.New([]position.Entry{{Moff: 0, XOffset: 1000}, {Moff: barmodel.MoffPerCrotchet, XOffset: 9000}})
	bc := BarContext{Note: defaultContext(), Table: table, Origin: defaultOrigin()}

	var tieDrawn bool
	other := func(item *barmodel.Item, origin barsetter.StaveOrigin) []note.Op {
		if item.Kind == barmodel.KindTie {
			tieDrawn = true
		}
		return nil
	}

	backend := &recordingBackend{}
	res := RenderBar(bc, bar, backend, fixedFont(0), other)

	require.Equal(t, 2, res.NoteCount)
	require.True(t, tieDrawn)
}

// Scenario 4: a triplet is three notes under a KindPletStart/KindPletEnd
// bracket; the note renderer dispatches all three and the bracket items
// pass through OtherHandler untouched by the beam/note pipeline.
func TestEndToEndTriplet(t *testing.T) {
	bar := barmodel.NewBar(0)
	bar.Append(barmodel.Item{Kind: barmodel.KindPletStart, IntArg1: 3})
	for i := 0; i < 3; i++ {
		n := cMajorCrotchet()
		n.Type = barmodel.NoteQuaver
		n.Duration = barmodel.MoffPerCrotchet / 3
		bar.Append(barmodel.Item{Kind: barmodel.KindNote, Note: n})
	}
	bar.Append(barmodel.Item{Kind: barmodel.KindPletEnd})

	table := position.New([]position.Entry{{Moff: 0, XOffset: 1000}, {Moff: barmodel.MoffPerCrotchet, XOffset: 9000}})
	bc := BarContext{Note: defaultContext(), Table: table, Origin: defaultOrigin()}

	var pletSeen int
	other := func(item *barmodel.Item, origin barsetter.StaveOrigin) []note.Op {
		if item.Kind == barmodel.KindPletStart || item.Kind == barmodel.KindPletEnd {
			pletSeen++
		}
		return nil
	}

	backend := &recordingBackend{}
	res := RenderBar(bc, bar, backend, fixedFont(0), other)

	require.Equal(t, 3, res.NoteCount)
	require.Equal(t, 2, pletSeen)
}

// Scenario 5: inline music-font text queued via a KindText item is
// dispatched to OtherHandler, which emits an OpText op that DrawOps
// turns into a String call carrying the literal text.
func TestEndToEndInlineMusicFontText(t *testing.T) {
	bar := barmodel.NewBar(0)
	bar.Append(barmodel.Item{Kind: barmodel.KindNote, Note: cMajorCrotchet()})
	bar.Append(barmodel.Item{Kind: barmodel.KindText, Text: "cresc."})

	table := position.New([]position.Entry{{Moff: 0, XOffset: 1000}, {Moff: barmodel.MoffPerCrotchet, XOffset: 9000}})
	bc := BarContext{Note: defaultContext(), Table: table, Origin: defaultOrigin()}

	other := func(item *barmodel.Item, origin barsetter.StaveOrigin) []note.Op {
		if item.Kind != barmodel.KindText {
			return nil
		}
		var b note.Builder
		b.Text(0, origin.YStave, item.Text, 1)
		return b.Ops()
	}

	backend := &recordingBackend{}
	RenderBar(bc, bar, backend, fixedFont(1), other)

	// the crotchet contributes 4 glyph ops (see TestEndToEndSingleCrotchet),
	// followed by one text op for the queued "cresc." marking.
	require.Len(t, backend.calls, 5)
	require.Contains(t, backend.calls[4], `"cresc."`)
}

// Scenario 6: a hairpin spanning a system break is closed out at the end
// of the first line via internal/barsetter's end-of-line logic, drawing
// from its recorded start x to the line's end x.
func TestEndToEndHairpinSpanningSystemBreak(t *testing.T) {
	h := &barmodel.ActiveHairpin{StartX: 4000, Crescendo: true}
	ops := barsetter.CloseOpenHairpin(h, 20000, 16000)
	require.Len(t, ops, 1)
	require.EqualValues(t, 4000, ops[0].X)
	require.EqualValues(t, 20000, ops[0].X2)
	require.True(t, h.Crescendo)
}
