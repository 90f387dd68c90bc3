// Command pmwdemo is a thin CLI driver over the pmwcore layout and
// output pipeline: it loads a font, builds a small one-bar demonstration
// movement, and writes it through the requested output backend.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pmw-go/pmwcore"
	"github.com/pmw-go/pmwcore/internal/barmodel"
	"github.com/pmw-go/pmwcore/internal/barsetter"
	"github.com/pmw-go/pmwcore/internal/diag"
	"github.com/pmw-go/pmwcore/internal/font"
	"github.com/pmw-go/pmwcore/internal/note"
	"github.com/pmw-go/pmwcore/internal/output"
	"github.com/pmw-go/pmwcore/internal/output/pdf"
	"github.com/pmw-go/pmwcore/internal/output/ps"
	"github.com/pmw-go/pmwcore/internal/pitch"
	"github.com/pmw-go/pmwcore/internal/position"
)

// afmPath is the AFM/UTR search path, settable via --afmdir (can appear
// more than once; each occurrence appends a directory).
var afmPath []string

func main() {
	args := parseArgs(os.Args[1:])

	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	emitter := diag.New(os.Stderr)

	switch args[0] {
	case "fonts":
		if len(args) < 2 {
			fmt.Println("Error: fonts requires a font name")
			printUsage()
			os.Exit(1)
		}
		showFont(emitter, args[1])
	case "render":
		if len(args) < 3 {
			fmt.Println("Error: render requires a font name and an output path")
			printUsage()
			os.Exit(1)
		}
		renderDemo(emitter, args[1], args[2])
	default:
		printUsage()
		os.Exit(1)
	}

	os.Exit(emitter.ExitCode())
}

// parseArgs extracts --afmdir/-d flags and returns the remaining
// positional arguments, mirroring the teacher's flag-then-positional
// loop.
func parseArgs(args []string) []string {
	var remaining []string

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch {
		case arg == "--afmdir" || arg == "-d":
			if i+1 < len(args) {
				afmPath = append(afmPath, args[i+1])
				i++
			} else {
				fmt.Println("Error: --afmdir requires a path")
				os.Exit(1)
			}
		case strings.HasPrefix(arg, "--afmdir="):
			afmPath = append(afmPath, strings.TrimPrefix(arg, "--afmdir="))
		case arg == "--help" || arg == "-h":
			printUsage()
			os.Exit(0)
		default:
			remaining = append(remaining, arg)
		}
	}

	if len(afmPath) == 0 {
		if env := os.Getenv("PMW_AFM_PATH"); env != "" {
			afmPath = strings.Split(env, ":")
		}
	}

	return remaining
}

func printUsage() {
	fmt.Println("usage: pmwdemo [--afmdir DIR] <command> [args]")
	fmt.Println()
	fmt.Println("commands:")
	fmt.Println("  fonts <name>                show widths loaded from <name>.afm")
	fmt.Println("  render <name> <out.ps|out.pdf>   render a one-bar demo through <name>")
}

func showFont(e *diag.Emitter, name string) {
	f, err := font.Load(name, afmPath)
	if err != nil {
		e.Fatalf("", 0, 2, "%v", err)
		return
	}
	fmt.Printf("font %s: ascent=%d descent=%d capheight=%d\n", f.Name, f.Ascent, f.Descent, f.CapHeight)
	count := 0
	for _, w := range f.Widths {
		if w >= 0 {
			count++
		}
	}
	fmt.Printf("%d glyphs have a recorded width\n", count)
}

func renderDemo(e *diag.Emitter, fontName, outPath string) {
	if _, err := font.Load(fontName, afmPath); err != nil {
		e.Fatalf("", 0, 2, "%v", err)
		return
	}

	bar := barmodel.NewBar(0)
	bar.Append(barmodel.Item{Kind: barmodel.KindNote, Note: barmodel.Note{
		Type:       barmodel.NoteCrotchet,
		Stem:       barmodel.StemUp,
		Head:       barmodel.HeadNormal,
		AbsPitch:   pitch.AbsPitch(0),
		StavePitch: pitch.P1S,
		Duration:   barmodel.MoffPerCrotchet,
	}})

	posTable := position.New([]position.Entry{
		{Moff: 0, XOffset: 20000},
		{Moff: barmodel.MoffPerCrotchet, XOffset: 40000},
	})
	bc := pmwcore.BarContext{
		Note:   note.Context{OutStaveMagnPerMille: 1000, StaveLines: 5},
		Table:  posTable,
		Origin: barsetter.StaveOrigin{YTop: 0, YBottom: 32000, YStave: 16000},
	}

	var backend output.Backend
	switch filepath.Ext(outPath) {
	case ".pdf":
		backend = pdf.New()
	default:
		backend = ps.New()
	}

	fontFor := func(id int) output.FontInstance {
		return output.FontInstance{ID: id, SizeMillipt: 10000}
	}
	pmwcore.RenderBar(bc, bar, backend, fontFor, nil)

	var data []byte
	switch w := backend.(type) {
	case *pdf.Writer:
		data = w.Bytes()
	case *ps.Writer:
		data = w.Bytes()
	}

	if err := os.WriteFile(outPath, data, 0644); err != nil {
		e.Fatalf("", 0, 3, "writing %s: %v", outPath, err)
		return
	}
	fmt.Printf("wrote %s\n", outPath)
}
