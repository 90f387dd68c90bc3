package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pmw-go/pmwcore/internal/note"
)

func TestResolveCopiesCollapsesToLast(t *testing.T) {
	copies := []CopyOfStaveZero{{TargetStave: 2}, {TargetStave: 3}, {TargetStave: 2}}
	resolved, multiple := ResolveCopies(copies)
	require.Len(t, resolved, 2)
	require.True(t, multiple)
}

func TestResolveCopiesSingleIsNotMultiple(t *testing.T) {
	_, multiple := ResolveCopies([]CopyOfStaveZero{{TargetStave: 1}})
	require.False(t, multiple)
}

func TestDrawThickBracketsReturnsBitmap(t *testing.T) {
	_, enclosed := DrawThickBrackets([]JoinRange{{Top: 1, Bottom: 3, X: 0}}, func(s int) int32 { return int32(s) * 1000 })
	require.True(t, enclosed[1])
	require.True(t, enclosed[2])
	require.True(t, enclosed[3])
	require.False(t, enclosed[0])
}

func TestDrawBracesNudgesWhenFullyBracketed(t *testing.T) {
	bracketed := BracketedStaves{1: true, 2: true}
	ops := DrawBraces([]BraceRange{{Top: 1, Bottom: 2, X: 5000}}, func(s int) int32 { return int32(s) * 1000 }, bracketed)
	require.Len(t, ops, 1)
	require.EqualValues(t, 5000-nestedNudgeMillipt, ops[0].X)
}

func TestDrawBracesNoNudgeWhenNotFullyBracketed(t *testing.T) {
	bracketed := BracketedStaves{1: true}
	ops := DrawBraces([]BraceRange{{Top: 1, Bottom: 2, X: 5000}}, func(s int) int32 { return int32(s) * 1000 }, bracketed)
	require.EqualValues(t, 5000, ops[0].X)
}

func TestDrawSeparatorSuppressedOnFirstSystem(t *testing.T) {
	cfg := &SeparatorConfig{Length: 1000}
	ops := DrawSeparator(cfg, 0, 0, true)
	require.Nil(t, ops)
}

func TestDrawSeparatorDrawsTwoLinesOtherwise(t *testing.T) {
	cfg := &SeparatorConfig{Length: 1000, Offset: 500}
	ops := DrawSeparator(cfg, 0, 0, false)
	require.Len(t, ops, 2)
}

func TestWidestPerColumnPicksWidest(t *testing.T) {
	cols := map[int][]WarnItem{
		0: {{Stave: 0, Width: 2000}, {Stave: 1, Width: 5000}, {Stave: 2, Width: 3000}},
	}
	out := WidestPerColumn(cols)
	require.EqualValues(t, 5000, out[0].Width)
	require.Equal(t, 1, out[0].Stave)
}

func TestDedupeStaveLineYsCollapsesRuns(t *testing.T) {
	require.Equal(t, []int32{0, 1000, 2000}, DedupeStaveLineYs([]int32{0, 0, 0, 1000, 2000, 2000}))
}

func TestOverdrawQueueFlushClears(t *testing.T) {
	var q OverdrawQueue
	q.Record(OverdrawOp{Op: note.Op{Kind: note.OpLine}})
	require.Len(t, q.Flush(), 1)
	require.Empty(t, q.Flush())
}

func TestItoaHandlesZeroAndNegative(t *testing.T) {
	require.Equal(t, "0", itoa(0))
	require.Equal(t, "-7", itoa(-7))
	require.Equal(t, "128", itoa(128))
}

func TestTimeSignatureTextFormatsFraction(t *testing.T) {
	require.Equal(t, "3/4", timeSignatureText(3, 4))
	require.Equal(t, "", timeSignatureText(0, 4))
}
