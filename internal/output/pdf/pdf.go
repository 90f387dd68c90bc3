// Package pdf implements the PDF output backend (component O /
// spec.md §4.10): a hand-built object table (no PDF-writer library — see
// DESIGN.md for why), a lazy BT/ET text-block state machine, doubled
// font objects for standard-encoded fonts, an MD5-derived /ID, and an
// ASCII85-embedded music font stream.
package pdf

import (
	"bytes"
	"crypto/md5"
	"encoding/ascii85"
	"fmt"
	"time"

	"github.com/pmw-go/pmwcore/internal/output"
)

// object is one indirect PDF object: a number and its expandable body.
type object struct {
	num  int
	body bytes.Buffer
}

// Writer accumulates a PDF document's object table and produces the
// final serialised file on Bytes().
type Writer struct {
	objects   []*object
	catalog   *object
	info      *object
	pages     *object
	resources *object

	pageKids        []int // object numbers of each page, in creation order
	pagesClosed     bool
	resourcesClosed bool

	state output.GraphicState

	textOpen     bool // BT...ET block currently open
	etPending    bool // a close is owed before the next non-text operator
	textBaseX, textBaseY int32
	curFont      int
	curFontSize  int32

	content bytes.Buffer // current page's content stream, built incrementally
}

// New returns a PDF backend with its leading four objects already created
// and ordered per spec.md §6: catalog, info dictionary, pages, resources.
func New() *Writer {
	w := &Writer{}
	w.catalog = w.newObject()
	w.info = w.newObject()
	w.pages = w.newObject()
	w.resources = w.newObject()

	fmt.Fprintf(&w.catalog.body, "<< /Type /Catalog /Pages %d 0 R >>", w.pages.num)
	fmt.Fprintf(&w.info.body, "<< /Creator (pmwcore) /CreationDate (%s) >>", pdfDate(time.Now()))
	fmt.Fprint(&w.resources.body, "<< /ProcSet [/PDF /Text] /Font <<\n")

	return w
}

// pdfDate formats t as a PDF date string, D:YYYYMMDDHHMMSS+HH'MM, the
// quote between the time zone's hours and minutes being PDF's own
// departure from strftime's plain %z.
func pdfDate(t time.Time) string {
	s := t.Format("20060102150405-0700")
	return "D:" + s[:len(s)-2] + "'" + s[len(s)-2:]
}

func (w *Writer) newObject() *object {
	obj := &object{num: len(w.objects) + 1}
	w.objects = append(w.objects, obj)
	return obj
}

func pt(millipt int32) float64 { return float64(millipt) / 1000 }

// openText opens a BT block if not already open, and writes a Td
// relative to the remembered text base if one is in progress, or an
// absolute Td to start.
func (w *Writer) openText(x, y int32) {
	if !w.textOpen {
		fmt.Fprintf(&w.content, "BT\n%.3f %.3f Td\n", pt(x), pt(y))
		w.textOpen = true
		w.textBaseX, w.textBaseY = x, y
		return
	}
	fmt.Fprintf(&w.content, "%.3f %.3f Td\n", pt(x-w.textBaseX), pt(y-w.textBaseY))
	w.textBaseX, w.textBaseY = x, y
}

func (w *Writer) closeText() {
	if !w.textOpen {
		return
	}
	fmt.Fprint(&w.content, "ET\n")
	w.textOpen = false
	w.etPending = false
}

func (w *Writer) String(s output.MixedString, font output.FontInstance, x, y *int32, update bool) {
	w.selectFont(font)
	w.openText(*x, *y)
	for _, run := range s.Runs {
		switch run.Marker {
		case output.MarkerPageNumber, output.MarkerEvenPageOnly, output.MarkerOddPageOnly, output.MarkerSkipRange:
			continue
		}
		if run.Text == "" {
			continue
		}
		fmt.Fprintf(&w.content, "(%s) Tj\n", escapePDF(run.Text))
		*x += int32(len(run.Text)) * font.SizeMillipt / 2
	}
	w.etPending = true
	_ = update
}

func (w *Writer) selectFont(f output.FontInstance) {
	if w.curFont == f.ID && w.curFontSize == f.SizeMillipt {
		return
	}
	w.curFont, w.curFontSize = f.ID, f.SizeMillipt
	fmt.Fprintf(&w.content, "/F%d %.3f Tf\n", f.ID, pt(f.SizeMillipt))
}

func (w *Writer) MusChar(x, y int32, id int, size int32) {
	w.closeText() // muschar composes glyphs outside a text block in this emitter
	fmt.Fprintf(&w.content, "%.3f %.3f %d %.3f muschar\n", pt(x), pt(y), id, pt(size))
}

func (w *Writer) Beam(x0, x1 int32, level int, slopeChange int32) {
	w.closeText()
	fmt.Fprintf(&w.content, "%.3f %.3f %d %d re f\n", pt(x0), pt(x1), level, slopeChange)
}

func (w *Writer) Barline(x, yTop, yBot int32, kind output.BarlineKind, magnPerMille int32) {
	w.closeText()
	fmt.Fprintf(&w.content, "%.3f %.3f %.3f %d barline\n", pt(x), pt(yTop), pt(yBot), kind)
}

func (w *Writer) Brace(x, yTop, yBot int32, magnPerMille int32) {
	w.closeText()
	fmt.Fprintf(&w.content, "%.3f %.3f %.3f brace\n", pt(x), pt(yTop), pt(yBot))
}

func (w *Writer) Bracket(x, yTop, yBot int32, magnPerMille int32) {
	w.closeText()
	fmt.Fprintf(&w.content, "%.3f %.3f %.3f bracket\n", pt(x), pt(yTop), pt(yBot))
}

func (w *Writer) Stave(leftX, y, rightX int32, nlines int) {
	w.closeText()
	fmt.Fprintf(&w.content, "%.3f %.3f %.3f %d stave\n", pt(leftX), pt(y), pt(rightX), nlines)
}

func (w *Writer) Slur(x0, y0, x1, y1 int32, flags output.SlurFlags, co int32) {
	w.closeText()
	fmt.Fprintf(&w.content, "%.3f %.3f %.3f %.3f %d %.3f c S\n", pt(x0), pt(y0), pt(x1), pt(y1), flags, pt(co))
}

func (w *Writer) Line(x0, y0, x1, y1 int32, thickness int32, flags output.LineFlags) {
	w.closeText()
	fmt.Fprintf(&w.content, "%.3f w\n%.3f %.3f m %.3f %.3f l S\n", pt(thickness), pt(x0), pt(y0), pt(x1), pt(y1))
}

func (w *Writer) Lines(xs, ys []int32, thickness int32) {
	w.closeText()
	if len(xs) == 0 {
		return
	}
	fmt.Fprintf(&w.content, "%.3f w\n%.3f %.3f m\n", pt(thickness), pt(xs[0]), pt(ys[0]))
	for i := 1; i < len(xs); i++ {
		fmt.Fprintf(&w.content, "%.3f %.3f l\n", pt(xs[i]), pt(ys[i]))
	}
	fmt.Fprint(&w.content, "S\n")
}

func (w *Writer) Path(xs, ys []int32, cmds []output.PathCmd, thickness int32) {
	w.emitPath(xs, ys, cmds, thickness)
}

func (w *Writer) AbsPath(xs, ys []int32, cmds []output.PathCmd, thickness int32) {
	w.emitPath(xs, ys, cmds, thickness)
}

func (w *Writer) emitPath(xs, ys []int32, cmds []output.PathCmd, thickness int32) {
	w.closeText()
	fmt.Fprintf(&w.content, "%.3f w\n", pt(thickness))
	for i, c := range cmds {
		switch c {
		case output.PathMove:
			fmt.Fprintf(&w.content, "%.3f %.3f m\n", pt(xs[i]), pt(ys[i]))
		case output.PathLine:
			fmt.Fprintf(&w.content, "%.3f %.3f l\n", pt(xs[i]), pt(ys[i]))
		case output.PathCurve:
			fmt.Fprintf(&w.content, "%.3f %.3f c\n", pt(xs[i]), pt(ys[i]))
		}
	}
	fmt.Fprint(&w.content, "S\n")
}

func (w *Writer) SetDash(dash, gap int32) {
	if !w.state.SetDash(dash, gap) {
		return
	}
	fmt.Fprintf(&w.content, "[%.3f %.3f] 0 d\n", pt(dash), pt(gap))
}

func (w *Writer) SetCapAndJoin(caps int) {
	if !w.state.SetCapAndJoin(caps) {
		return
	}
	fmt.Fprintf(&w.content, "%d J %d j\n", caps, caps)
}

func (w *Writer) SetColour(c output.RGB) {
	if !w.state.SetColour(c) {
		return
	}
	fmt.Fprintf(&w.content, "%.3f %.3f %.3f RG\n", float64(c.R)/1000, float64(c.G)/1000, float64(c.B)/1000)
}

func (w *Writer) SetGray(g int32) {
	if !w.state.SetGray(g) {
		return
	}
	fmt.Fprintf(&w.content, "%.3f G\n", float64(g)/1000)
}

func (w *Writer) GetColour() output.RGB { return w.state.GetColour() }

func (w *Writer) GSave()    { fmt.Fprint(&w.content, "q\n") }
func (w *Writer) GRestore() { fmt.Fprint(&w.content, "Q\n") }

func (w *Writer) Rotate(milliRadians int32) {
	fmt.Fprintf(&w.content, "%.3f rotate\n", float64(milliRadians)/1000)
}

func (w *Writer) Translate(x, y int32) {
	fmt.Fprintf(&w.content, "%.3f %.3f cm\n", pt(x), pt(y))
}

func (w *Writer) StartBar(absBar int, stave int) {
	fmt.Fprintf(&w.content, "%% bar %d stave %d\n", absBar, stave)
}

func escapePDF(s string) string {
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

// EmbedFont writes a font object for a standard-encoded font and
// registers it in the resources object's /Font dictionary under the
// same /F<id> key the content stream's Tf operator uses (selectFont).
// Per spec.md §4.10, standard-encoded fonts are emitted twice: once for
// the lower 256 codes under /F<id>, once for codes 256-511 remapped to
// 0-255 of a second font binding under /F<id>X.
func (w *Writer) EmbedFont(id int, baseName string) (lowerObj, upperObj int) {
	lower := w.newObject()
	fmt.Fprintf(&lower.body, "<< /Type /Font /Subtype /Type1 /BaseFont /%s /Encoding /StandardEncoding >>", baseName)
	upper := w.newObject()
	fmt.Fprintf(&upper.body, "<< /Type /Font /Subtype /Type1 /BaseFont /%s /FirstChar 0 /LastChar 255 >>", baseName)

	fmt.Fprintf(&w.resources.body, "/F%d %d 0 R\n", id, lower.num)
	fmt.Fprintf(&w.resources.body, "/F%dX %d 0 R\n", id, upper.num)

	return lower.num, upper.num
}

// EmbedMusicFontStream ASCII85-encodes data and writes it as a stream
// object, using the placeholder-object-then-length pattern: the stream's
// /Length is written into a second object created first so its number is
// known, then patched with the real byte count once encoding finishes. A
// font descriptor referencing the stream is created alongside it, per
// spec.md §6's FontDescriptor/FontFile3 pairing.
func (w *Writer) EmbedMusicFontStream(data []byte) (streamObj int) {
	lengthObj := w.newObject()
	stream := w.newObject()

	var encoded bytes.Buffer
	enc := ascii85.NewEncoder(&encoded)
	enc.Write(data)
	enc.Close()

	fmt.Fprintf(&stream.body, "<< /Length %d 0 R /Filter /ASCII85Decode >>\nstream\n", lengthObj.num)
	stream.body.Write(encoded.Bytes())
	stream.body.WriteString("\nendstream")

	fmt.Fprintf(&lengthObj.body, "%d", encoded.Len())

	descriptor := w.newObject()
	fmt.Fprintf(&descriptor.body, "<< /Type /FontDescriptor /FontName /PMW-Music /Flags 12\n"+
		"/FontBBox [-70 -656 1176 2219] /Ascent 2219 /Descent -656 /CapHeight 2219\n"+
		"/ItalicAngle 0 /StemV 176 /FontFile3 %d 0 R >>", stream.num)

	return stream.num
}

// FileID computes the PDF /ID pair: an MD5 digest over every object
// body's current bytes, used twice (the PDF spec permits identical
// values for a freshly created file).
func (w *Writer) FileID() [16]byte {
	h := md5.New()
	for _, obj := range w.objects {
		h.Write(obj.body.Bytes())
	}
	var sum [16]byte
	copy(sum[:], h.Sum(nil))
	return sum
}

// Bytes serialises the full PDF file: header, every object with its
// byte offset recorded for the xref table, the xref table itself, and
// the trailer carrying /ID and /Root.
func (w *Writer) Bytes() []byte {
	w.closeText()
	w.flushContentIntoPage()
	w.finalize()

	var out bytes.Buffer
	out.WriteString("%PDF-2.0\n")

	offsets := make([]int, len(w.objects)+1)
	for _, obj := range w.objects {
		offsets[obj.num] = out.Len()
		fmt.Fprintf(&out, "%d 0 obj\n", obj.num)
		out.Write(obj.body.Bytes())
		out.WriteString("\nendobj\n")
	}

	xrefStart := out.Len()
	fmt.Fprintf(&out, "xref\n0 %d\n0000000000 65535 f \n", len(w.objects)+1)
	for i := 1; i <= len(w.objects); i++ {
		fmt.Fprintf(&out, "%010d 00000 n \n", offsets[i])
	}

	id := w.FileID()
	fmt.Fprintf(&out, "trailer\n<< /Size %d /Root %d 0 R /ID [<%x> <%x>] >>\nstartxref\n%d\n%%%%EOF\n",
		len(w.objects)+1, w.catalog.num, id, id, xrefStart)
	return out.Bytes()
}

func (w *Writer) flushContentIntoPage() {
	if w.content.Len() == 0 {
		return
	}
	page := w.newObject()
	fmt.Fprintf(&page.body, "<< /Type /Page /Parent %d 0 R /Contents %d 0 R /Resources %d 0 R >>",
		w.pages.num, page.num+1, w.resources.num)
	stream := w.newObject()
	fmt.Fprintf(&stream.body, "<< /Length %d >>\nstream\n", w.content.Len())
	stream.body.Write(w.content.Bytes())
	stream.body.WriteString("\nendstream")

	w.pageKids = append(w.pageKids, page.num)
}

// finalize closes the pages and resources dictionaries, which are built
// up incrementally (pages as each page is flushed, resources as each
// font is embedded) and so can only be completed once no more objects
// of either kind will be added.
func (w *Writer) finalize() {
	if !w.pagesClosed {
		fmt.Fprint(&w.pages.body, "<< /Type /Pages /Kids [")
		for _, num := range w.pageKids {
			fmt.Fprintf(&w.pages.body, "%d 0 R ", num)
		}
		fmt.Fprintf(&w.pages.body, "] /Count %d >>", len(w.pageKids))
		w.pagesClosed = true
	}

	if !w.resourcesClosed {
		fmt.Fprint(&w.resources.body, ">> >>")
		w.resourcesClosed = true
	}
}

var _ output.Backend = (*Writer)(nil)
