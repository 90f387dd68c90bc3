package note

import "github.com/pmw-go/pmwcore/internal/pitch"

// Music-font accidental characters, indexed by pitch.Accidental. No
// bracketed variants are listed here.
var accidentalGlyphs = map[pitch.Accidental]rune{
	pitch.AccNone:        0,
	pitch.AccNatural:     0xE200,
	pitch.AccSharp:       0xE202,
	pitch.AccFlat:        0xE204,
	pitch.AccDoubleSharp: 0xE206,
	pitch.AccDoubleFlat:  0xE208,
	pitch.AccHalfSharp:   0xE20A,
	pitch.AccHalfFlat:    0xE20C,
}

// bracketGlyphOffset is added to an accidental's base glyph to select its
// half-accidental variant, per spec.md §4.6 step 7 ("half-accidental
// variants add 1 to the base character").
const bracketGlyphOffset rune = 1

// AccidentalGlyph resolves the music character for acc, nudged to the
// half-accidental style variant when half is true.
func AccidentalGlyph(acc pitch.Accidental, half bool) (rune, bool) {
	g, ok := accidentalGlyphs[acc]
	if !ok || g == 0 {
		return 0, false
	}
	if half {
		g += bracketGlyphOffset
	}
	return g, true
}

// cueFudgeThreshold is the left-neighbour gap (millipoints) past which an
// accidental is drawn at the inflated cue-fudge size.
const cueFudgeThreshold int32 = 6000

// AccidentalFudge returns the scale (per-mille) an accidental's rendered
// size is inflated to when its left-neighbour sits further away than
// cueFudgeThreshold; otherwise 1000 (no inflation).
func AccidentalFudge(leftNeighbourGap int32, fudgeScalePerMille int32) int32 {
	if leftNeighbourGap > cueFudgeThreshold {
		return fudgeScalePerMille
	}
	return 1000
}

// AccidentalX returns the x position (spec.md §4.6 step 1: "x − accleft").
// The cue-fudge factor is not applied to x; RenderNote applies it to the
// glyph's size.
func AccidentalX(noteX, accLeft int32) int32 {
	return noteX - accLeft
}
