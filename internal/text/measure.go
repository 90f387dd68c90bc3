// Package text measures PMW strings (component S of the layout core):
// kerned glyph-advance and vertical-delta computation across runs of mixed
// fonts and sizes.
package text

import (
	"golang.org/x/image/math/fixed"

	"github.com/pmw-go/pmwcore/internal/font"
)

// MusicSmallScale is the size multiplier applied to the music font when a
// FontRef is Small (spec.md §4.2); every other font shrinks by
// smallCapSize/1000 instead.
const MusicSmallScale = 0.9

// FontRef names a logical font id; Small selects the small-size variant of
// that font (cue notes, small caps).
type FontRef struct {
	ID    font.ID
	Small bool
}

// CharWidth returns the kerned advance (as fixed.Int26_6, 1/64 pt) of code point c
// following prevC (0 if there is no previous character) in font inst at
// size, and writes the glyph's height contribution (0 if the font has no
// heights table or c >= 256) to *outHeight.
//
// smallCapSizePerMille is the configured small-caps scale (thousandths);
// kerningEnabled toggles whether the kern table is consulted at all.
func CharWidth(
	c, prevC rune,
	inst font.Instance,
	small bool,
	smallCapSizePerMille int32,
	kerningEnabled bool,
	outHeight *fixed.Int26_6,
) fixed.Int26_6 {
	size := inst.Size
	f := inst.Font
	if small {
		if isMusicFont(f) {
			size = int32(float64(size) * MusicSmallScale)
		} else {
			size = size * smallCapSizePerMille / 1000
		}
	}

	width, ok := f.WidthAt(c)
	if !ok {
		width = 0
	}

	if prevC != 0 && kerningEnabled {
		width += f.KernValue(prevC, c)
	}

	if outHeight != nil {
		if h, ok := f.HeightAt(c); ok && c < 256 {
			*outHeight = millipointsToFixed(h * size / 1000)
		} else {
			*outHeight = 0
		}
	}

	return millipointsToFixed(width * size / 1000)
}

func isMusicFont(f *font.Struct) bool {
	return f.Name == "PMW-Music"
}

func millipointsToFixed(mp int32) fixed.Int26_6 {
	// fixed.Int26_6 stores 1/64ths of a point; PMW works in millipoints
	// (1/1000 pt). This conversion exists purely so callers that want
	// sub-unit precision (e.g. rotated-string bounding boxes) can use
	// golang.org/x/image/math/fixed's arithmetic rather than hand-rolled
	// fixed-point code.
	return fixed.Int26_6(int64(mp) * 64 / 1000)
}

// Run is one maximal subsequence of a PMW string sharing the same font
// instance and small-flag, as measured by StringWidth.
type Run struct {
	Font  FontRef
	Chars []rune
}

// StringWidth sums CharWidth over an entire string (already split into
// same-font runs by the caller per spec.md §4.2: "iterates this, summing
// width, accumulating height"), returning total width and accumulated
// height.
func StringWidth(
	chars []rune,
	resolve func(FontRef) font.Instance,
	refOf func(i int) FontRef,
	smallCapSizePerMille int32,
	kerningEnabled bool,
) (width fixed.Int26_6, height fixed.Int26_6) {
	var prev rune
	var prevRef FontRef
	for i, c := range chars {
		ref := refOf(i)
		inst := resolve(ref)
		p := prev
		if ref != prevRef {
			p = 0
		}
		var h fixed.Int26_6
		width += CharWidth(c, p, inst, ref.Small, smallCapSizePerMille, kerningEnabled, &h)
		height += h
		prev = c
		prevRef = ref
	}
	return width, height
}
