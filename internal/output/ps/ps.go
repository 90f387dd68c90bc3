// Package ps implements the PostScript output backend
// (component O / spec.md §4.10): inline setfont/moveto/show, dash/cap
// operators, and setrgbcolor/setgray for colour state.
package ps

import (
	"bytes"
	"fmt"

	"github.com/pmw-go/pmwcore/internal/output"
)

// Writer emits PostScript drawing operators to an internal buffer,
// memoising graphic state so repeated settings are not re-emitted.
type Writer struct {
	buf   bytes.Buffer
	state output.GraphicState
	curFont int
	curFontSize int32
}

// New returns a ready-to-use PostScript backend.
func New() *Writer {
	return &Writer{}
}

// Bytes returns the accumulated PostScript program so far.
func (w *Writer) Bytes() []byte { return w.buf.Bytes() }

func pt(millipt int32) float64 { return float64(millipt) / 1000 }

func (w *Writer) String(s output.MixedString, font output.FontInstance, x, y *int32, update bool) {
	w.selectFont(font)
	for _, run := range s.Runs {
		switch run.Marker {
		case output.MarkerPageNumber, output.MarkerEvenPageOnly, output.MarkerOddPageOnly, output.MarkerSkipRange:
			continue // resolved by the page-numbering pass before reaching the backend
		}
		if run.Text == "" {
			continue
		}
		fmt.Fprintf(&w.buf, "%.3f %.3f moveto (%s) show\n", pt(*x), pt(*y), escapePS(run.Text))
		*x += int32(len(run.Text)) * font.SizeMillipt / 2
	}
	if update {
		// x, y already advanced above; PDF's equivalent tracks a text
		// base instead, PostScript has no such state to flush.
		_ = update
	}
}

func (w *Writer) selectFont(f output.FontInstance) {
	if w.curFont == f.ID && w.curFontSize == f.SizeMillipt {
		return
	}
	w.curFont, w.curFontSize = f.ID, f.SizeMillipt
	fmt.Fprintf(&w.buf, "/F%d findfont %.3f scalefont setfont\n", f.ID, pt(f.SizeMillipt))
}

func (w *Writer) MusChar(x, y int32, id int, size int32) {
	fmt.Fprintf(&w.buf, "%.3f %.3f moveto %d %.3f muschar\n", pt(x), pt(y), id, pt(size))
}

func (w *Writer) Beam(x0, x1 int32, level int, slopeChange int32) {
	fmt.Fprintf(&w.buf, "%.3f %.3f %d %d beam\n", pt(x0), pt(x1), level, slopeChange)
}

func (w *Writer) Barline(x, yTop, yBot int32, kind output.BarlineKind, magnPerMille int32) {
	fmt.Fprintf(&w.buf, "%.3f %.3f %.3f %d barline\n", pt(x), pt(yTop), pt(yBot), kind)
}

func (w *Writer) Brace(x, yTop, yBot int32, magnPerMille int32) {
	fmt.Fprintf(&w.buf, "%.3f %.3f %.3f brace\n", pt(x), pt(yTop), pt(yBot))
}

func (w *Writer) Bracket(x, yTop, yBot int32, magnPerMille int32) {
	fmt.Fprintf(&w.buf, "%.3f %.3f %.3f bracket\n", pt(x), pt(yTop), pt(yBot))
}

func (w *Writer) Stave(leftX, y, rightX int32, nlines int) {
	fmt.Fprintf(&w.buf, "%.3f %.3f %.3f %d stave\n", pt(leftX), pt(y), pt(rightX), nlines)
}

func (w *Writer) Slur(x0, y0, x1, y1 int32, flags output.SlurFlags, co int32) {
	fmt.Fprintf(&w.buf, "%.3f %.3f %.3f %.3f %d %.3f slur\n", pt(x0), pt(y0), pt(x1), pt(y1), flags, pt(co))
}

func (w *Writer) Line(x0, y0, x1, y1 int32, thickness int32, flags output.LineFlags) {
	if flags&output.LineDashed != 0 {
		fmt.Fprintf(&w.buf, "[3] 0 setdash\n")
	} else if flags&output.LineSaveDash == 0 {
		fmt.Fprintf(&w.buf, "[] 0 setdash\n")
	}
	fmt.Fprintf(&w.buf, "%.3f %.3f moveto %.3f %.3f lineto %.3f setlinewidth stroke\n", pt(x0), pt(y0), pt(x1), pt(y1), pt(thickness))
}

func (w *Writer) Lines(xs, ys []int32, thickness int32) {
	if len(xs) == 0 {
		return
	}
	fmt.Fprintf(&w.buf, "%.3f %.3f moveto\n", pt(xs[0]), pt(ys[0]))
	for i := 1; i < len(xs); i++ {
		fmt.Fprintf(&w.buf, "%.3f %.3f lineto\n", pt(xs[i]), pt(ys[i]))
	}
	fmt.Fprintf(&w.buf, "%.3f setlinewidth stroke\n", pt(thickness))
}

func (w *Writer) Path(xs, ys []int32, cmds []output.PathCmd, thickness int32) {
	w.emitPath(xs, ys, cmds, thickness)
}

func (w *Writer) AbsPath(xs, ys []int32, cmds []output.PathCmd, thickness int32) {
	w.emitPath(xs, ys, cmds, thickness)
}

func (w *Writer) emitPath(xs, ys []int32, cmds []output.PathCmd, thickness int32) {
	for i, c := range cmds {
		switch c {
		case output.PathMove:
			fmt.Fprintf(&w.buf, "%.3f %.3f moveto\n", pt(xs[i]), pt(ys[i]))
		case output.PathLine:
			fmt.Fprintf(&w.buf, "%.3f %.3f lineto\n", pt(xs[i]), pt(ys[i]))
		case output.PathCurve:
			fmt.Fprintf(&w.buf, "%.3f %.3f curveto\n", pt(xs[i]), pt(ys[i]))
		}
	}
	fmt.Fprintf(&w.buf, "%.3f setlinewidth stroke\n", pt(thickness))
}

func (w *Writer) SetDash(dash, gap int32) {
	if !w.state.SetDash(dash, gap) {
		return
	}
	fmt.Fprintf(&w.buf, "[%.3f %.3f] 0 setdash\n", pt(dash), pt(gap))
}

func (w *Writer) SetCapAndJoin(caps int) {
	if !w.state.SetCapAndJoin(caps) {
		return
	}
	fmt.Fprintf(&w.buf, "%d setlinecap %d setlinejoin\n", caps, caps)
}

func (w *Writer) SetColour(c output.RGB) {
	if !w.state.SetColour(c) {
		return
	}
	fmt.Fprintf(&w.buf, "%.3f %.3f %.3f setrgbcolor\n", float64(c.R)/1000, float64(c.G)/1000, float64(c.B)/1000)
}

func (w *Writer) SetGray(g int32) {
	if !w.state.SetGray(g) {
		return
	}
	fmt.Fprintf(&w.buf, "%.3f setgray\n", float64(g)/1000)
}

func (w *Writer) GetColour() output.RGB { return w.state.GetColour() }

func (w *Writer) GSave()    { fmt.Fprint(&w.buf, "gsave\n") }
func (w *Writer) GRestore() { fmt.Fprint(&w.buf, "grestore\n") }

func (w *Writer) Rotate(milliRadians int32) {
	fmt.Fprintf(&w.buf, "%.3f rotate\n", float64(milliRadians)/1000)
}

func (w *Writer) Translate(x, y int32) {
	fmt.Fprintf(&w.buf, "%.3f %.3f translate\n", pt(x), pt(y))
}

func (w *Writer) StartBar(absBar int, stave int) {
	fmt.Fprintf(&w.buf, "%% bar %d stave %d\n", absBar, stave)
}

func escapePS(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', ')', '\\':
			out = append(out, '\\', s[i])
		default:
			out = append(out, s[i])
		}
	}
	return string(out)
}

var _ output.Backend = (*Writer)(nil)
