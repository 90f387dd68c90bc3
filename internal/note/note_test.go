package note

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pmw-go/pmwcore/internal/barmodel"
)

func TestIsShortNoteThreshold(t *testing.T) {
	require.False(t, IsShortNote(barmodel.NoteCrotchet))
	require.False(t, IsShortNote(barmodel.NoteQuaver))
	require.True(t, IsShortNote(barmodel.NoteDemisemiquaver))
	require.True(t, IsShortNote(barmodel.NoteHemidemisemiquaver))
}

func TestCanPrecomposeRejectsCentredStem(t *testing.T) {
	n := barmodel.Note{Type: barmodel.NoteDemisemiquaver, Stem: barmodel.StemUp | barmodel.StemCentred}
	require.False(t, CanPrecompose(n, 1000))
}

func TestCanPrecomposeAcceptsPlainShortNote(t *testing.T) {
	n := barmodel.Note{Type: barmodel.NoteDemisemiquaver, Stem: barmodel.StemUp, Head: barmodel.HeadNormal}
	require.True(t, CanPrecompose(n, 1000))
}

func TestCanPrecomposeRejectsNonStandardMagnification(t *testing.T) {
	n := barmodel.Note{Type: barmodel.NoteDemisemiquaver, Stem: barmodel.StemUp}
	require.False(t, CanPrecompose(n, 800))
}

func TestLayStemCentredShiftsCircularLess(t *testing.T) {
	plain := LayStem(0, 0, true, true, false, 8000)
	circ := LayStem(0, 0, true, true, true, 8000)
	require.Equal(t, STEMCENTADJUST, plain.StartX)
	require.Equal(t, STEMCENTADJUST-900, circ.StartX)
}

func TestLayStemSegmentCountRoundsUp(t *testing.T) {
	geo := LayStem(0, 0, true, false, false, 9000)
	require.Equal(t, 3, geo.SegmentCount) // 9000/4000 -> ceil(2.25) == 3
}

func TestAccidentalGlyphHalfVariant(t *testing.T) {
	plain, ok := AccidentalGlyph(1, false)
	require.True(t, ok)
	half, ok := AccidentalGlyph(1, true)
	require.True(t, ok)
	require.Equal(t, plain+1, half)
}

func TestAccidentalFudgeAppliesPastThreshold(t *testing.T) {
	require.EqualValues(t, 1000, AccidentalFudge(3000, 1200))
	require.EqualValues(t, 1200, AccidentalFudge(9000, 1200))
}

func TestDotXOffsetAccumulatesAdjustments(t *testing.T) {
	n := barmodel.Note{Flags: barmodel.NFDotRight}
	got := DotXOffset(n, false, false, 1000)
	require.EqualValues(t, dotBaseOffsetMillipt+dotRightExtraMillipt, got)
}

func TestDotLevelDefaultsAboveTheLine(t *testing.T) {
	require.EqualValues(t, 33, DotLevel(32, false, false))
}

func TestDotGlyphsDoubleAddsGap(t *testing.T) {
	require.Equal(t, []int32{0}, DotGlyphs(false))
	require.Equal(t, []int32{0, doubleDotGapMillipt}, DotGlyphs(true))
}

func TestSortOutsideAccentsPutsBowingLast(t *testing.T) {
	in := []OutsideAccent{AccentUpBow, AccentWedge, AccentDownBow, AccentGreaterThan}
	out := SortOutsideAccents(in)
	require.Equal(t, []OutsideAccent{AccentWedge, AccentGreaterThan, AccentDownBow, AccentUpBow}, out)
}

func TestInsideAccentPlacementStacksAndAvoidsLine(t *testing.T) {
	first := InsideAccentPlacement(0, false, 5, 0)
	require.EqualValues(t, insideAccentBaseGapMillipt, first)

	onLine := InsideAccentPlacement(0, true, 5, 0)
	require.EqualValues(t, insideAccentBaseGapMillipt+staveLineAvoidOffsetMillipt, onLine)

	second := InsideAccentPlacement(1, false, 5, 0)
	require.EqualValues(t, insideAccentBaseGapMillipt+insideAccentStackGapMillipt, second)
}

func TestParseUnderlaySyllableHyphenAndSpace(t *testing.T) {
	s := ParseUnderlaySyllable("glo#ri-")
	require.Equal(t, "glo ri", s.Text)
	require.Equal(t, TrailingHyphen, s.Trailing)
	require.Equal(t, UnderlayLeft, s.Style)
}

func TestParseUnderlaySyllableExtender(t *testing.T) {
	s := ParseUnderlaySyllable("Amen=")
	require.Equal(t, "Amen", s.Text)
	require.Equal(t, TrailingExtender, s.Trailing)
	require.Equal(t, UnderlayCentred, s.Style)
}

func TestParseUnderlaySyllableCentredPrefix(t *testing.T) {
	s := ParseUnderlaySyllable("^Al^leluia")
	require.Equal(t, "Alleluia", s.Text)
	require.Equal(t, 1, s.CentrePrefixEnd)
}

func TestHyphenRunSpacesEvenly(t *testing.T) {
	ops := HyphenRun(0, 30000, 0, 2000, 8000)
	require.Len(t, ops, 3)
}

func TestTremoloSlopeZeroOnVerticalPair(t *testing.T) {
	require.EqualValues(t, 0, TremoloSlope(100, 0, 100, 500))
}

func TestTremoloBarsRespectsJoinTrim(t *testing.T) {
	p := PendingTremolo{X: 0, Y: 0, Count: 4, Join: 1}
	ops := TremoloBars(p, 8000, 0, 2000, 1000)
	require.Len(t, ops, 2) // count(4) - 2*join(1) == 2
}

func TestArpeggioSegmentCountRoundsUp(t *testing.T) {
	require.Equal(t, 3, ArpeggioSegmentCount(5000, 2000))
	require.Equal(t, 1, ArpeggioSegmentCount(0, 2000))
}
