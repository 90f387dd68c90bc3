// Package note renders a single note, chord or rest into a sequence of
// drawing operations (component N, spec.md §4.6): accidental, head and
// stem, dots, bracketed noteheads, in- and outside-stave accents,
// ornaments, tremolo bars, and queued positional/underlay text.
//
// The package never touches an output backend directly; it emits Op
// values that internal/barsetter accumulates and hands to
// internal/output, mirroring the way the teacher's display package builds
// a fretboard diagram as a list of cell descriptions before a separate
// renderer draws them (grounded on display/chords.go, display/fretboard.go).
package note

// Op is one primitive drawing instruction.
type Op struct {
	Kind  OpKind
	X, Y  int32 // millipoints
	Char  rune  // music/text glyph for OpGlyph/OpSmallGlyph
	Text  string
	Font  int // font.ID, kept as int to avoid an import cycle with internal/font
	Size  int32 // millipoints, 0 means "current stave magnification"
	X2, Y2 int32 // end point for OpLine
}

type OpKind uint8

const (
	OpGlyph OpKind = iota
	OpSmallGlyph
	OpLine
	OpText
)

// Builder accumulates Ops for one note/chord/rest.
type Builder struct {
	ops []Op
}

func (b *Builder) Glyph(x, y int32, c rune, font int) {
	b.ops = append(b.ops, Op{Kind: OpGlyph, X: x, Y: y, Char: c, Font: font})
}

func (b *Builder) SmallGlyph(x, y int32, c rune, font int, size int32) {
	b.ops = append(b.ops, Op{Kind: OpSmallGlyph, X: x, Y: y, Char: c, Font: font, Size: size})
}

func (b *Builder) Line(x, y, x2, y2 int32) {
	b.ops = append(b.ops, Op{Kind: OpLine, X: x, Y: y, X2: x2, Y2: y2})
}

func (b *Builder) Text(x, y int32, text string, font int) {
	b.ops = append(b.ops, Op{Kind: OpText, X: x, Y: y, Text: text, Font: font})
}

func (b *Builder) Ops() []Op { return b.ops }
