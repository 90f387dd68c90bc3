package pdf

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pmw-go/pmwcore/internal/output"
)

func TestStringOpensTextBlockWithAbsoluteTd(t *testing.T) {
	w := New()
	x, y := int32(1000), int32(2000)
	s := output.MixedString{Runs: []output.StringRun{{Text: "Hi"}}}
	w.String(s, output.FontInstance{ID: 1, SizeMillipt: 10000}, &x, &y, true)
	out := w.Bytes()
	require.Contains(t, string(out), "BT\n1.000 2.000 Td")
	require.Contains(t, string(out), "(Hi) Tj")
}

func TestSecondStringUsesRelativeTd(t *testing.T) {
	w := New()
	x, y := int32(0), int32(0)
	s := output.MixedString{Runs: []output.StringRun{{Text: "a"}}}
	w.String(s, output.FontInstance{ID: 1, SizeMillipt: 1000}, &x, &y, false)
	x2, y2 := x, y
	w.String(s, output.FontInstance{ID: 1, SizeMillipt: 1000}, &x2, &y2, false)
	require.Greater(t, x2, x)
	out := string(w.Bytes())
	require.Equal(t, 1, strings.Count(out, "BT\n"))
	require.Contains(t, out, "(a) Tj\n0.500 0.000 Td\n(a) Tj")
}

func TestMusCharClosesOpenTextBlock(t *testing.T) {
	w := New()
	x, y := int32(0), int32(0)
	s := output.MixedString{Runs: []output.StringRun{{Text: "a"}}}
	w.String(s, output.FontInstance{ID: 1, SizeMillipt: 1000}, &x, &y, false)
	w.MusChar(0, 0, 5, 1000)
	out := w.Bytes()
	require.Contains(t, string(out), "ET")
}

func TestEmbedFontReturnsTwoDistinctObjects(t *testing.T) {
	w := New()
	lower, upper := w.EmbedFont(3, "Times-Roman")
	require.NotEqual(t, lower, upper)
}

func TestEmbedFontRegistersResourcesUnderMatchingKey(t *testing.T) {
	w := New()
	w.EmbedFont(3, "Times-Roman")
	out := string(w.Bytes())
	require.Contains(t, out, "/F3 ")
	require.Contains(t, out, "/F3X ")
}

func TestEmbedMusicFontStreamASCII85Encodes(t *testing.T) {
	w := New()
	streamObj := w.EmbedMusicFontStream([]byte("hello music"))
	require.Greater(t, streamObj, 0)
	out := w.Bytes()
	require.Contains(t, string(out), "ASCII85Decode")
}

func TestFileIDIsSixteenBytes(t *testing.T) {
	w := New()
	id := w.FileID()
	require.Len(t, id, 16)
}

func TestBytesProducesHeaderXrefAndTrailer(t *testing.T) {
	w := New()
	x, y := int32(0), int32(0)
	s := output.MixedString{Runs: []output.StringRun{{Text: "x"}}}
	w.String(s, output.FontInstance{ID: 1, SizeMillipt: 1000}, &x, &y, false)
	out := w.Bytes()
	require.True(t, bytes.HasPrefix(out, []byte("%PDF-2.0")))
	require.Contains(t, string(out), "xref")
	require.Contains(t, string(out), "trailer")
	require.Contains(t, string(out), "/ID [")
}

func TestObjectOrderIsCatalogInfoPagesResources(t *testing.T) {
	w := New()
	out := string(w.Bytes())

	require.Contains(t, out, "1 0 obj\n<< /Type /Catalog /Pages 3 0 R >>")
	require.Contains(t, out, "2 0 obj\n<< /Creator (pmwcore) /CreationDate (D:")
	require.Contains(t, out, "4 0 obj\n<< /ProcSet [/PDF /Text] /Font <<")
}

func TestCatalogReferencesPagesObject(t *testing.T) {
	w := New()
	require.Equal(t, 1, w.catalog.num)
	require.Equal(t, 2, w.info.num)
	require.Equal(t, 3, w.pages.num)
	require.Equal(t, 4, w.resources.num)
	require.Contains(t, w.catalog.body.String(), "/Pages 3 0 R")
}

func TestPagesDictionaryListsEachFlushedPage(t *testing.T) {
	w := New()
	x, y := int32(0), int32(0)
	s := output.MixedString{Runs: []output.StringRun{{Text: "x"}}}
	w.String(s, output.FontInstance{ID: 1, SizeMillipt: 1000}, &x, &y, false)
	out := string(w.Bytes())

	require.Contains(t, out, "/Type /Pages /Kids [5 0 R ] /Count 1")
}

func TestResourcesDictionaryIsProperlyClosed(t *testing.T) {
	w := New()
	w.EmbedFont(1, "Times-Roman")
	out := string(w.Bytes())
	require.Contains(t, out, ">> >>")
}

func TestSetDashSkipsRedundantEmission(t *testing.T) {
	w := New()
	w.SetDash(100, 50)
	w.SetDash(100, 50)
	w.SetDash(200, 50)
	out := string(w.Bytes())
	require.Equal(t, 2, strings.Count(out, " d\n"))
}

func TestEscapePDFEscapesParensAndBackslash(t *testing.T) {
	require.Equal(t, `\(a\)\\b`, escapePDF(`(a)\b`))
}

var _ output.Backend = (*Writer)(nil)
