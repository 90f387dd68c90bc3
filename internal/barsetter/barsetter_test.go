package barsetter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pmw-go/pmwcore/internal/barmodel"
	"github.com/pmw-go/pmwcore/internal/note"
)

func TestStaveOrderIsBottomToTop(t *testing.T) {
	require.Equal(t, []int{2, 1, 0}, StaveOrder(3))
}

func TestNearestUnsuspendedSkipsSuspendedNeighbours(t *testing.T) {
	origins := []StaveOrigin{
		{YStave: 0},
		{YStave: 1000, Suspended: true},
		{YStave: 2000},
		{YStave: 3000},
	}
	gap := NearestUnsuspended(origins, 2)
	require.EqualValues(t, 2000, gap.Up) // skips origins[1] (suspended), lands on origins[0]
	require.EqualValues(t, 1000, gap.Down)
}

func TestDispatchStaveTracksNoteCountAndRepeat(t *testing.T) {
	bar := barmodel.NewBar(0)
	bar.Append(barmodel.Item{Kind: barmodel.KindNote, Note: barmodel.Note{Type: barmodel.NoteCrotchet, Duration: 96}})
	bar.Append(barmodel.Item{Kind: barmodel.KindNote, Note: barmodel.Note{Type: barmodel.NoteCrotchet, Duration: 96}})
	bar.Append(barmodel.Item{Kind: barmodel.KindRepeat, RepeatCount: 2})

	res := DispatchStave(bar, note.Context{}, 0, StaveOrigin{}, nil)
	require.Equal(t, 2, res.NoteCount)
	require.True(t, res.EndedRightRepeat)
}

func TestDrawBarlineUsesMusicFontWhenMagnificationsMatch(t *testing.T) {
	ops := DrawBarline(BarlineSingle, 1000, 0, 10000, 1000, 1000, false)
	require.Len(t, ops, 1)
	require.Equal(t, note.OpGlyph, ops[0].Kind)
}

func TestDrawBarlineDrawsLineWhenMagnificationDiffers(t *testing.T) {
	ops := DrawBarline(BarlineSingle, 1000, 0, 10000, 800, 1000, false)
	require.Len(t, ops, 1)
	require.Equal(t, note.OpLine, ops[0].Kind)
}

func TestDrawBarlineDoubleEmitsTwoPrimitives(t *testing.T) {
	ops := DrawBarline(BarlineDouble, 1000, 0, 10000, 800, 1000, false)
	require.Len(t, ops, 2)
}

func TestShouldPrintBarNumberEveryN(t *testing.T) {
	require.True(t, ShouldPrintBarNumber(4, 8, 2, false))
	require.False(t, ShouldPrintBarNumber(4, 7, 2, false))
}

func TestShouldPrintBarNumberLineStartsOnly(t *testing.T) {
	require.True(t, ShouldPrintBarNumber(-1, 5, 0, false))
	require.False(t, ShouldPrintBarNumber(-1, 5, 1, false))
}

func TestShouldPrintBarNumberForcedOverridesPolicy(t *testing.T) {
	require.True(t, ShouldPrintBarNumber(0, 5, 3, true))
}

func TestCloseOpenTieNilWhenInactive(t *testing.T) {
	require.Nil(t, CloseOpenTie(&barmodel.PendingTie{Active: false}, 5000, false))
}

func TestCloseUnderlayPendingHyphenRun(t *testing.T) {
	p := &barmodel.UnderlayPending{Active: true, Hyphen: true, StartX: 0}
	ops := CloseUnderlayPending(p, 20000, 0, false)
	require.NotEmpty(t, ops)
}

func TestCloseUnderlayPendingExtenderCrossingBreak(t *testing.T) {
	p := &barmodel.UnderlayPending{Active: true, Hyphen: false, StartX: 0}
	ops := CloseUnderlayPending(p, 20000, 0, true)
	require.Len(t, ops, 1)
	require.EqualValues(t, 20000-nearBarlineGapMillipt, ops[0].X2)
}
