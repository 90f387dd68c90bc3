package note

import "github.com/pmw-go/pmwcore/internal/barmodel"

// STEMCENTADJUST is the x-shift (millipoints) applied to a centred stem;
// circular heads use a reduced value (spec.md §4.6 step 2).
const STEMCENTADJUST int32 = 950

// stemCentAdjustCircular is STEMCENTADJUST reduced by 900 millipoints for
// circular noteheads.
const stemCentAdjustCircular int32 = STEMCENTADJUST - 900

// Music-font virtual character codes. These live in a private-use range
// local to this package; internal/output's glyph table maps them to the
// real music font's encoding.
const (
	GlyphLedgerNormal  rune = 0xE100
	GlyphLedgerAlt     rune = 0xE101 // "character 184" alternate ledger style
	GlyphStemStart     rune = 0xE110
	GlyphStemSegment   rune = 0xE111
	GlyphTailUp1       rune = 0xE120
	GlyphTailDown1     rune = 0xE121
)

// LedgerStyle selects which ledger-line glyph is drawn.
type LedgerStyle uint8

const (
	LedgerNormal LedgerStyle = iota
	LedgerAlternate
)

func (s LedgerStyle) glyph() rune {
	if s == LedgerAlternate {
		return GlyphLedgerAlt
	}
	return GlyphLedgerNormal
}

// IsShortNote reports whether t is short enough (demisemiquaver or
// shorter) that, absent any other complication, its head and stem can be
// drawn as one precomposed music-font character (spec.md §4.6 step 2).
// NoteType is ordered so that a larger value means a shorter duration
// (barmodel.NoteType doc comment), so "short" is "type value at least
// that of a demisemiquaver".
func IsShortNote(t barmodel.NoteType) bool {
	return t >= barmodel.NoteDemisemiquaver
}

// CanPrecompose reports whether every condition for the single-glyph fast
// path of spec.md §4.6 step 2 holds: short note type, standard
// magnification, no manual stem-length adjust, a normal head, not
// inverted, not centred, and the note actually bears a stem.
func CanPrecompose(n barmodel.Note, magnification int32) bool {
	if !IsShortNote(effectiveType(n)) {
		return false
	}
	if magnification != 1000 {
		return false
	}
	if n.StemLengthDelta != 0 {
		return false
	}
	if n.Head != barmodel.HeadNormal {
		return false
	}
	if n.Flags&barmodel.NFInvert != 0 {
		return false
	}
	if n.Stem&barmodel.StemCentred != 0 {
		return false
	}
	if n.Stem&barmodel.StemNone != 0 {
		return false
	}
	return true
}

func effectiveType(n barmodel.Note) barmodel.NoteType {
	if n.Masquerade != nil {
		return *n.Masquerade
	}
	return n.Type
}

// StemGeometry is the result of laying out a synthesized stem: the start
// point (at the stem-side of the head) and the number of stem-segment
// glyphs needed to reach the computed length.
type StemGeometry struct {
	StartX, StartY int32
	SegmentCount   int
	SegmentLength  int32
}

// stemSegmentLength is the reach, in millipoints, of one GlyphStemSegment
// composite.
const stemSegmentLength int32 = 4000

// LayStem computes a synthesized stem's start point and segment count.
// headX/headY is the notehead's origin; stemUp controls direction;
// centred shifts the x-origin by STEMCENTADJUST (reduced for circular
// heads); length is the total required stem length in millipoints.
func LayStem(headX, headY int32, stemUp, centred, circular bool, length int32) StemGeometry {
	x := headX
	if centred {
		adj := STEMCENTADJUST
		if circular {
			adj = stemCentAdjustCircular
		}
		if stemUp {
			x += adj
		} else {
			x -= adj
		}
	}
	if length < 0 {
		length = 0
	}
	segs := int(length / stemSegmentLength)
	if length%stemSegmentLength != 0 {
		segs++
	}
	return StemGeometry{StartX: x, StartY: headY, SegmentCount: segs, SegmentLength: stemSegmentLength}
}

// NeedsTail reports whether an unbeamed note of type t needs a tail
// composite (quaver or shorter, per spec.md §4.6 step 2).
func NeedsTail(t barmodel.NoteType) bool {
	return t >= barmodel.NoteQuaver
}

// TailGlyph picks the composite tail character for an unbeamed note.
func TailGlyph(t barmodel.NoteType, stemUp bool) rune {
	if stemUp {
		return GlyphTailUp1
	}
	return GlyphTailDown1
}

// LedgerLineCount returns how many ledger lines are needed for a note
// stepsOutside stave-pitch steps beyond the top or bottom line: one per
// two steps, and 0 when stepsOutside <= 0. The breve's extra ledger length
// is computed separately by BreveLedgerExtension.
func LedgerLineCount(stepsOutside int) int {
	if stepsOutside <= 0 {
		return 0
	}
	// Ledger lines occur every 2 stave-pitch steps (one per staff line
	// spacing); stepsOutside counts individual half-steps past the edge.
	return stepsOutside / 2
}

// BreveLedgerExtension is the additional ledger-line length (millipoints)
// a breve head needs beyond a normal notehead's ledger, per
// breveLedgerExtra (a per-mille scale on the base ledger extension).
func BreveLedgerExtension(baseExtension, breveLedgerExtraPerMille int32) int32 {
	return baseExtension * breveLedgerExtraPerMille / 1000
}
