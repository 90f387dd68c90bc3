// Package output defines the drawing-primitive backend interface shared
// by the PostScript and PDF emitters (component O, spec.md §4.10), plus
// the geometry/state logic common to both: the virtual music-character
// table, beam/barline/brace/bracket sizing, and graphic-state
// memoisation so repeated dash/colour/cap settings are only emitted once.
package output

// LineFlags modifies how Line draws its segment.
type LineFlags uint8

const (
	LineEditorial LineFlags = 1 << iota // perpendicular tick at midpoint
	LineDashed
	LineDotted
	LineSaveDash // tief_savedash: dash state sticks across calls
)

// SlurFlags modifies Slur's Bezier shape.
type SlurFlags uint8

const (
	SlurBelow SlurFlags = 1 << iota
	SlurWiggle
	SlurEditorial
)

// RGB is a colour triple, each channel 0-1000 (per-mille).
type RGB struct{ R, G, B int32 }

// Backend is the function table of drawing primitives one output format
// implements (spec.md §4.10). Coordinates and sizes are millipoints
// unless noted.
type Backend interface {
	String(s MixedString, font FontInstance, x, y *int32, update bool)
	MusChar(x, y int32, id int, size int32)
	Beam(x0, x1 int32, level int, slopeChange int32)
	Barline(x, yTop, yBot int32, kind BarlineKind, magnPerMille int32)
	Brace(x, yTop, yBot int32, magnPerMille int32)
	Bracket(x, yTop, yBot int32, magnPerMille int32)
	Stave(leftX, y, rightX int32, nlines int)
	Slur(x0, y0, x1, y1 int32, flags SlurFlags, co int32)
	Line(x0, y0, x1, y1 int32, thickness int32, flags LineFlags)
	Lines(xs, ys []int32, thickness int32)
	Path(xs, ys []int32, cmds []PathCmd, thickness int32)
	AbsPath(xs, ys []int32, cmds []PathCmd, thickness int32)

	SetDash(dash, gap int32)
	SetCapAndJoin(caps int)
	SetColour(c RGB)
	SetGray(g int32)
	GetColour() RGB
	GSave()
	GRestore()
	Rotate(milliRadians int32)
	Translate(x, y int32)
	StartBar(absBar int, stave int)
}

// PathCmd is one instruction of a mixed move/line/curve pen path.
type PathCmd uint8

const (
	PathMove PathCmd = iota
	PathLine
	PathCurve
)

// BarlineKind mirrors barsetter.BarlineStyle without importing it, to
// keep internal/output free of a dependency on the bar-assembly layer.
type BarlineKind uint8

const (
	BarlineSingle BarlineKind = iota
	BarlineDotted
	BarlineDouble
	BarlineThick
	BarlineEndingA
	BarlineEndingB
)

// FontInstance is the minimal font handle String needs: an id the
// backend resolves to its own font-resource bookkeeping, plus whether it
// is the music font (which triggers segment-splitting).
type FontInstance struct {
	ID      int
	IsMusic bool
	SizeMillipt int32
}

// MixedString is a pmw_string: literal runs plus in-band markers for
// page-number insertion, even/odd-page conditionals, and skip ranges.
type MixedString struct {
	Runs []StringRun
}

type StringRun struct {
	Text     string
	Font     FontInstance
	Marker   Marker
}

// Marker is an in-band control marker embedded between text runs.
type Marker uint8

const (
	MarkerNone Marker = iota
	MarkerPageNumber
	MarkerEvenPageOnly
	MarkerOddPageOnly
	MarkerSkipRange
)

// PostStroke is an optional box/round-box/ring drawn around a just-drawn
// string's extent.
type PostStroke uint8

const (
	PostStrokeNone PostStroke = iota
	PostStrokeBox
	PostStrokeRoundBox
	PostStrokeRing
)
