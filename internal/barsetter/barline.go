package barsetter

import "github.com/pmw-go/pmwcore/internal/note"

// BarlineStyle mirrors the C source's numbered barline kinds.
type BarlineStyle int

const (
	BarlineSingle BarlineStyle = iota
	BarlineDotted
	BarlineDouble
	BarlineThick
	BarlineEndingShort  // style 4: music-font "short" character variant
	BarlineEndingShort2 // style 5: ditto, the other ending
)

// GlyphBarline and GlyphBarlineShort are the music-font repeated-down-the-
// stave and "short" composite characters used when a drawn line is not
// required.
const (
	GlyphBarline      rune = 0xE700
	GlyphBarlineShort rune = 0xE701
)

// needsDrawnLine reports whether the barline must be hand-drawn instead
// of composed from repeated music-font characters: true when the
// barline's own magnification differs from the stave's, or when
// bar_use_draw forces it (spec.md §4.7).
func needsDrawnLine(barlineMagnPerMille, staveMagnPerMille int32, forceDraw bool) bool {
	return forceDraw || barlineMagnPerMille != staveMagnPerMille
}

// DrawBarline lays out one barline at x spanning [yTop, yBot].
func DrawBarline(style BarlineStyle, x, yTop, yBot int32, barlineMagnPerMille, staveMagnPerMille int32, forceDraw bool) []note.Op {
	var b note.Builder

	switch style {
	case BarlineEndingShort, BarlineEndingShort2:
		b.Glyph(x, yTop, GlyphBarlineShort, 0)
		return b.Ops()
	}

	if !needsDrawnLine(barlineMagnPerMille, staveMagnPerMille, forceDraw) {
		b.Glyph(x, yTop, GlyphBarline, 0)
		if style == BarlineDouble {
			b.Glyph(x+barlineDoubleGapMillipt, yTop, GlyphBarline, 0)
		}
		return b.Ops()
	}

	switch style {
	case BarlineThick:
		b.Line(x, yTop, x, yBot)
	case BarlineDotted:
		b.Line(x, yTop, x, yBot) // dash pattern applied by the output backend
	case BarlineDouble:
		b.Line(x, yTop, x, yBot)
		b.Line(x+barlineDoubleGapMillipt, yTop, x+barlineDoubleGapMillipt, yBot)
	default:
		b.Line(x, yTop, x, yBot)
	}
	return b.Ops()
}

const barlineDoubleGapMillipt int32 = 1000

// OmitEmptyBarline draws the short left-edge barline an [omitempty]
// stave needs while skipping an empty bar, using the previous bar's
// style, and reports whether stave lines should also be emitted (only
// under a non-empty bar).
func OmitEmptyBarline(prevStyle BarlineStyle, x, yTop, yBot int32, staveMagnPerMille int32, thisBarEmpty bool) (ops []note.Op, drawStaveLines bool) {
	ops = DrawBarline(prevStyle, x, yTop, yBot, staveMagnPerMille, staveMagnPerMille, false)
	return ops, !thisBarEmpty
}
