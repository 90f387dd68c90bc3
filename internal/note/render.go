package note

import (
	"github.com/pmw-go/pmwcore/internal/barmodel"
	"github.com/pmw-go/pmwcore/internal/pitch"
)

// Context carries the per-note layout configuration that the C source
// kept in globals (out_stavemagn, cue-fudge scale, ledger style, and so
// on), threaded explicitly per the Design Notes' LayoutConfig/NoteContext
// split.
type Context struct {
	OutStaveMagnPerMille int32
	CueFudgeScalePerMille int32
	LedgerStyle          LedgerStyle
	BreveLedgerExtraPerMille int32
	StaveLines           int
}

// RenderNote lays out one note/chord/rest's head, stem, accidental and
// dots (spec.md §4.6 steps 1-3). Accents, ornaments, tremolo and queued
// text are laid out separately once their neighbouring context (the
// previous/next note, or a resolved x for queued text) is known.
func RenderNote(ctx Context, n barmodel.Note, x, y int32, accLeft int32, stemLength int32, leftNeighbourGap int32, double, lowDot, highDot bool) []Op {
	var b Builder

	if n.Acc != pitch.AccNone {
		half := n.Acc == pitch.AccHalfFlat || n.Acc == pitch.AccHalfSharp
		if g, ok := AccidentalGlyph(n.Acc, half); ok {
			fudge := AccidentalFudge(leftNeighbourGap, ctx.CueFudgeScalePerMille)
			ax := AccidentalX(x, accLeft)
			if fudge != 1000 {
				b.SmallGlyph(ax, y, g, 0, fudge)
			} else {
				b.Glyph(ax, y, g, 0)
			}
		}
	}

	stemUp := n.Stem&barmodel.StemUp != 0
	circular := n.Head == barmodel.HeadCircular
	centred := n.Stem&barmodel.StemCentred != 0
	hasStem := n.Stem&barmodel.StemNone == 0

	if CanPrecompose(n, ctx.OutStaveMagnPerMille) {
		b.Glyph(x, y, precomposedHeadStemGlyph(effectiveType(n), n.Head, stemUp), 0)
	} else {
		headX := x
		if n.Flags&barmodel.NFInvert != 0 {
			headX = -x
		}
		b.Glyph(headX, y, headGlyph(n.Head), 0)

		if hasStem {
			geo := LayStem(headX, y, stemUp, centred, circular, stemLength)
			b.Glyph(geo.StartX, geo.StartY, GlyphStemStart, 0)
			for i := 0; i < geo.SegmentCount; i++ {
				b.Glyph(geo.StartX, geo.StartY, GlyphStemSegment, 0)
			}
			if !isBeamed(n) && NeedsTail(effectiveType(n)) {
				b.Glyph(geo.StartX, geo.StartY, TailGlyph(effectiveType(n), stemUp), 0)
			}
		}

		if n.Stem&barmodel.StemSmallHead != 0 || circular {
			b.SmallGlyph(x, y, headGlyph(n.Head), 0, 700)
		}
	}

	if n.Flags&barmodel.NFHeadBracket != 0 {
		left, right := HeadBracketOffsets(4000, n.Stem&barmodel.StemSmallHead != 0, false)
		b.SmallGlyph(x+left, y, GlyphHeadBracketLeft, 0, 600)
		b.SmallGlyph(x+right, y, GlyphHeadBracketRight, 0, 600)
	}

	isBreve := effectiveType(n) == barmodel.NoteBreve
	stemUpWithTail := stemUp && !isBeamed(n) && NeedsTail(effectiveType(n))
	dotOff := DotXOffset(n, isBreve, stemUpWithTail, ctx.OutStaveMagnPerMille)
	dotLevel := DotLevel(int32(n.StavePitch), lowDot, highDot)
	if n.IsRest {
		dotLevel = RestDotLevel(effectiveType(n), int32(n.StavePitch))
	}
	if n.Flags&barmodel.NFPlus != 0 {
		b.Glyph(x+dotOff, dotLevel, '+', 0)
		dotOff += PlusGlyphExtra()
	} else if n.Duration > (barmodel.MoffPerCrotchet*8)>>n.Type {
		// Dots only for a note longer than its type's plain value (a breve
		// is eight crotchets, each shorter type half the one before).
		for _, extra := range DotGlyphs(double) {
			b.Glyph(x+dotOff+extra, dotLevel, '.', 0)
		}
	}

	return b.Ops()
}

// isBeamed reports whether a note participates in a beam; StemCoupled is
// reused here to flag a note already joined into a beam group upstream by
// the beam planner.
func isBeamed(n barmodel.Note) bool {
	return n.Stem&barmodel.StemCoupled != 0
}

func headGlyph(h barmodel.HeadStyle) rune {
	return rune(0xE000) + rune(h)
}

func precomposedHeadStemGlyph(t barmodel.NoteType, h barmodel.HeadStyle, stemUp bool) rune {
	base := rune(0xE500) + rune(t)*2 + rune(h)*16
	if stemUp {
		return base
	}
	return base + 1
}
