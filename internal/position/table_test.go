package position

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pmw-go/pmwcore/internal/barmodel"
)

func sampleEntries() []Entry {
	return []Entry{
		{Moff: -10, XOffset: 0},   // clef
		{Moff: 0, XOffset: 2000},  // beat 1
		{Moff: 96, XOffset: 8000}, // beat 2 (1 crotchet later)
		{Moff: 192, XOffset: 14000},
		{Moff: 288, XOffset: 20000}, // bar end
	}
}

func TestXAtExactMatch(t *testing.T) {
	tbl := New(sampleEntries())
	x, err := tbl.XAt(96)
	require.NoError(t, err)
	require.EqualValues(t, 8000, x)
}

func TestXAtMissIsFatal(t *testing.T) {
	tbl := New(sampleEntries())
	_, err := tbl.XAt(50)
	require.Error(t, err)
}

func TestXAtEitherFallsBackToSecond(t *testing.T) {
	tbl := New(sampleEntries())
	x, err := tbl.XAtEither(50, 96)
	require.NoError(t, err)
	require.EqualValues(t, 8000, x)
}

func TestXAtInterpolatedMidpoint(t *testing.T) {
	tbl := New(sampleEntries())
	x, err := tbl.XAtInterpolated(144) // halfway between 96 and 192
	require.NoError(t, err)
	require.EqualValues(t, 11000, x)
}

func TestXAtInterpolatedExtrapolatesPastEnd(t *testing.T) {
	tbl := New(sampleEntries())
	x, err := tbl.XAtInterpolated(288 + barmodel.MoffPerCrotchet)
	require.NoError(t, err)
	require.EqualValues(t, 20000+ExtrapolationRate, x)
}

func TestXAtCrossesBarlineWhenBeamIsCrossing(t *testing.T) {
	tbl := New(sampleEntries())
	next := New([]Entry{{Moff: 0, XOffset: 500}, {Moff: 96, XOffset: 6000}})
	tbl.SetNext(next, 1000, true)

	x, err := tbl.XAt(288)
	require.NoError(t, err)
	require.EqualValues(t, 20000+1000+500, x)
}

func TestStrictlyIncreasingInvariant(t *testing.T) {
	require.True(t, StrictlyIncreasing(sampleEntries()))
	require.False(t, StrictlyIncreasing([]Entry{{Moff: 0, XOffset: 10}, {Moff: 0, XOffset: 20}}))
}
