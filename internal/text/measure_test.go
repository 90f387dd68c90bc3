package text

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"

	"github.com/pmw-go/pmwcore/internal/font"
)

func buildTestFont() *font.Struct {
	f := font.NewStruct("Sample-Roman")
	f.Flags |= font.FlagStandardEncoding
	f.Widths['A'] = 667
	f.Widths['V'] = 722
	f.Kerns = []font.KernPair{{Key: uint32('A')<<16 | uint32('V'), Value: -70}}
	f.Heights = make([]int32, 256)
	f.Heights['A'] = 500
	return f
}

func TestCharWidthAppliesKern(t *testing.T) {
	f := buildTestFont()
	inst := font.NewInstance(f, 10000) // 10pt in millipoints

	var h fixed.Int26_6
	w := CharWidth('V', 'A', inst, false, 700, true, &h)
	require.Equal(t, millipointsToFixed((722-70)*10000/1000), w)
}

func TestCharWidthNoKernWhenDisabled(t *testing.T) {
	f := buildTestFont()
	inst := font.NewInstance(f, 10000)

	var h fixed.Int26_6
	w := CharWidth('V', 'A', inst, false, 700, false, &h)
	require.Equal(t, millipointsToFixed(722*10000/1000), w)
}

func TestCharWidthHeightFromTable(t *testing.T) {
	f := buildTestFont()
	inst := font.NewInstance(f, 10000)

	var h fixed.Int26_6
	CharWidth('A', 0, inst, false, 700, true, &h)
	require.Equal(t, millipointsToFixed(500*10000/1000), h)
}

func TestStringWidthSumsRunsAndResetsKernAcrossFontChange(t *testing.T) {
	f := buildTestFont()
	inst := font.NewInstance(f, 10000)

	chars := []rune{'A', 'V'}
	refs := []FontRef{{ID: 0}, {ID: 0}}

	w, _ := StringWidth(chars, func(FontRef) font.Instance { return inst }, func(i int) FontRef { return refs[i] }, 700, true)
	require.Equal(t, millipointsToFixed(667*10000/1000)+millipointsToFixed((722-70)*10000/1000), w)

	// The same pair split across two font refs gets no kern.
	refs2 := []FontRef{{ID: 0}, {ID: 1}}
	w2, _ := StringWidth(chars, func(FontRef) font.Instance { return inst }, func(i int) FontRef { return refs2[i] }, 700, true)
	require.Equal(t, millipointsToFixed(667*10000/1000)+millipointsToFixed(722*10000/1000), w2)
}
