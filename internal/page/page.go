// Package page assembles one page's systems and heading lines
// (component Pg, spec.md §4.9): margin derivation, heading-line
// placement, system placement, and bounding-box tracking.
package page

// staveGapMillipt is the fixed gap (17pt) inserted before the first
// system after any heading.
const staveGapMillipt int32 = 17000

// systemMarginTopMillipt/systemMarginBottomMillipt bound a system's
// contribution to the page bounding box (±48pt/32pt, spec.md §4.9).
const (
	systemMarginTopMillipt    int32 = 48000
	systemMarginBottomMillipt int32 = 32000
)

// minLeftMarginMillipt is the clamp floor (20pt) for a derived left
// margin.
const minLeftMarginMillipt int32 = 20000

// sixPointFiveMillipt is the fixed additive term (6.5pt) in the derived
// left-margin formula.
const sixPointFiveMillipt int32 = 6500

// BoundingBox tracks the page's accumulated drawn extent.
type BoundingBox struct {
	MinX, MinY, MaxX, MaxY int32
	set                    bool
}

// Extend grows the box to include [x0,x1]×[y0,y1].
func (b *BoundingBox) Extend(x0, y0, x1, y1 int32) {
	if !b.set {
		b.MinX, b.MaxX, b.MinY, b.MaxY = x0, x1, y0, y1
		b.set = true
		return
	}
	if x0 < b.MinX {
		b.MinX = x0
	}
	if x1 > b.MaxX {
		b.MaxX = x1
	}
	if y0 < b.MinY {
		b.MinY = y0
	}
	if y1 > b.MaxY {
		b.MaxY = y1
	}
}

// DeriveLeftMargin computes the left x-margin at a movement boundary:
// the explicit leftmargin if non-zero, else
// (sheetWidth-lineLength)/2 + 6.5pt/magnification, clamped to at least
// 20pt.
func DeriveLeftMargin(explicitLeftMargin, sheetWidth, lineLength, magnificationPerMille int32) int32 {
	if explicitLeftMargin != 0 {
		return explicitLeftMargin
	}
	m := (sheetWidth-lineLength)/2 + sixPointFiveMillipt*1000/magnificationPerMille
	if m < minLeftMarginMillipt {
		return minLeftMarginMillipt
	}
	return m
}

// HeadLine is one line of a page or regular heading block.
type HeadLine struct {
	IsPageHeading bool
	Space         int32 // this line's own advance, used after the first in a regular heading block
	Draw          bool  // true => draw-heading, invokes a user routine instead of text
	Left, Middle, Right string
}

// LayoutHeads advances y through a sequence of heading lines: a
// page-heading block advances y by topSpace before each line; a regular
// heading block advances by topSpace once, then by each line's own Space
// (spec.md §4.9 "Heads").
func LayoutHeads(lines []HeadLine, startY, topSpace int32) (endY int32, positions []int32) {
	y := startY
	usedTopSpace := false
	positions = make([]int32, len(lines))
	for i, l := range lines {
		if l.IsPageHeading {
			y += topSpace
		} else if !usedTopSpace {
			y += topSpace
			usedTopSpace = true
		} else {
			y += l.Space
		}
		positions[i] = y
	}
	return y, positions
}

// System is one system's placement input: its rendered depth and whether
// it suppresses the normal y-advance afterward.
type System struct {
	Depth      int32
	Gap        int32
	NoAdvance  bool
	AfterHeading bool
}

// PlaceSystems lays out a sequence of systems starting at startY,
// inserting staveGapMillipt before the first system following a heading,
// updating box, and returning each system's top y and the final y.
func PlaceSystems(systems []System, startY int32, leftX, rightX int32, box *BoundingBox) (ys []int32, endY int32) {
	y := startY
	ys = make([]int32, len(systems))
	for i, s := range systems {
		if i == 0 && s.AfterHeading {
			y += staveGapMillipt
		}
		ys[i] = y
		box.Extend(leftX, y-systemMarginTopMillipt, rightX, y+s.Depth+systemMarginBottomMillipt)
		if !s.NoAdvance {
			y += s.Depth + s.Gap
		}
	}
	return ys, y
}
