package page

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveLeftMarginUsesExplicitValue(t *testing.T) {
	require.EqualValues(t, 25000, DeriveLeftMargin(25000, 500000, 400000, 1000))
}

func TestDeriveLeftMarginDerivesAndClamps(t *testing.T) {
	// (500000-400000)/2 + 6500*1000/1000 = 50000+6500 = 56500, above the floor.
	require.EqualValues(t, 56500, DeriveLeftMargin(0, 500000, 400000, 1000))
}

func TestDeriveLeftMarginClampsToFloor(t *testing.T) {
	// (100000-98000)/2 + 6500 = 1000+6500 = 7500, below the 20000 floor.
	require.EqualValues(t, 20000, DeriveLeftMargin(0, 100000, 98000, 1000))
}

func TestLayoutHeadsRegularBlockUsesTopSpaceOnceThenOwnSpace(t *testing.T) {
	lines := []HeadLine{
		{Space: 3000},
		{Space: 2000},
	}
	endY, positions := LayoutHeads(lines, 0, 10000)
	require.EqualValues(t, 12000, endY)
	require.Equal(t, []int32{10000, 12000}, positions)
}

func TestLayoutHeadsPageHeadingAdvancesEveryLine(t *testing.T) {
	lines := []HeadLine{
		{IsPageHeading: true},
		{IsPageHeading: true},
	}
	endY, _ := LayoutHeads(lines, 0, 5000)
	require.EqualValues(t, 10000, endY)
}

func TestPlaceSystemsInsertsStaveGapAfterHeading(t *testing.T) {
	var box BoundingBox
	systems := []System{{Depth: 20000, Gap: 5000, AfterHeading: true}}
	ys, endY := PlaceSystems(systems, 0, 0, 100000, &box)
	require.EqualValues(t, staveGapMillipt, ys[0])
	require.EqualValues(t, staveGapMillipt+20000+5000, endY)
}

func TestPlaceSystemsNoAdvanceSkipsYStep(t *testing.T) {
	var box BoundingBox
	systems := []System{{Depth: 20000, Gap: 5000, NoAdvance: true}}
	_, endY := PlaceSystems(systems, 1000, 0, 100000, &box)
	require.EqualValues(t, 1000, endY)
}

func TestBoundingBoxExtendGrowsMonotonically(t *testing.T) {
	var box BoundingBox
	box.Extend(0, 0, 100, 100)
	box.Extend(-10, -5, 50, 200)
	require.EqualValues(t, -10, box.MinX)
	require.EqualValues(t, -5, box.MinY)
	require.EqualValues(t, 100, box.MaxX)
	require.EqualValues(t, 200, box.MaxY)
}
