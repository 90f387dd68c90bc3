package note

import "github.com/pmw-go/pmwcore/internal/barmodel"

const (
	dotBaseOffsetMillipt    int32 = 8400 // 8.4pt
	dotRightExtraMillipt    int32 = 1600 // +1.6pt for explicit dot-right
	dotBreveAdjustMillipt   int32 = -2000 // -2.0pt at breve
	dotStemUpTailExtraMillipt int32 = 600 // +0.6pt stem-up-with-tail
	doubleDotGapMillipt     int32 = 3500 // 3.5pt between first and second dot
	plusExtraMillipt        int32 = 4000 // +4pt after an nf_plus note
)

// DotXOffset computes the horizontal dot offset (spec.md §4.6 step 3),
// scaled by outStaveMagnPerMille (1000 == no scaling).
func DotXOffset(n barmodel.Note, isBreve, stemUpWithTail bool, outStaveMagnPerMille int32) int32 {
	off := dotBaseOffsetMillipt
	if n.Flags&barmodel.NFDotRight != 0 {
		off += dotRightExtraMillipt
	}
	if isBreve {
		off += dotBreveAdjustMillipt
	}
	if stemUpWithTail {
		off += dotStemUpTailExtraMillipt
	}
	return off * outStaveMagnPerMille / 1000
}

// DotLevel chooses the stave-pitch step a dot is drawn on. Notes are
// forced into the space above the note's own line (StavePitch+1), unless
// an explicit override picks the space below (low) or two spaces above
// (high). Rests consult a per-notetype table instead of the note's own
// pitch.
func DotLevel(stavePitch int32, lowOverride, highOverride bool) int32 {
	switch {
	case lowOverride:
		return stavePitch - 1
	case highOverride:
		return stavePitch + 3
	default:
		return stavePitch + 1
	}
}

// restDotAdjust is the per-notetype vertical adjust (stave-pitch steps)
// for a rest's dot, since a rest has no pitch of its own to sit a space
// above.
var restDotAdjust = map[barmodel.NoteType]int32{
	barmodel.NoteBreve:               4,
	barmodel.NoteSemibreve:           3,
	barmodel.NoteMinim:               1,
	barmodel.NoteCrotchet:            1,
	barmodel.NoteQuaver:              1,
	barmodel.NoteSemiquaver:          1,
	barmodel.NoteDemisemiquaver:      1,
	barmodel.NoteHemidemisemiquaver:  1,
}

// RestDotLevel returns the stave-pitch step a rest's dot sits on.
func RestDotLevel(t barmodel.NoteType, restLine int32) int32 {
	return restLine + restDotAdjust[t]
}

// DotGlyphs returns the sequence of dot x-offsets (from the base dot
// position) to draw: one for a single dot, two (the second
// doubleDotGapMillipt to the right) for a double dot.
func DotGlyphs(double bool) []int32 {
	if !double {
		return []int32{0}
	}
	return []int32{0, doubleDotGapMillipt}
}

// PlusGlyphExtra is the extra horizontal space (millipoints) reserved
// after an nf_plus note's "+" music character, per spec.md §4.6 step 3.
func PlusGlyphExtra() int32 { return plusExtraMillipt }
