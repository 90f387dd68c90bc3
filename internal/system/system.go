// Package system assembles one system's staves (component Sys,
// spec.md §4.8): continuation snapshot copy-in, stave-name/clef/key/time
// headers, copy-of-stave-0 resolution, joining signs, bar iteration via
// internal/barsetter, the warning-bar emitter, and stave-line output
// with overlaid drawing ops.
package system

import (
	"github.com/pmw-go/pmwcore/internal/barmodel"
	"github.com/pmw-go/pmwcore/internal/barsetter"
	"github.com/pmw-go/pmwcore/internal/note"
)

// StaveHeader is one stave's left-hand header content for a system.
type StaveHeader struct {
	Names       []string
	VCentre     bool
	StartClef   string
	StartKey    string
	KeyWidth    int32
	ShowTime    bool
	TimeNum, TimeDen int
}

// Block is one system's layout input: its staves' origins, headers, the
// bars to iterate, and its joining-sign configuration.
type Block struct {
	Origins      []barsetter.StaveOrigin
	Headers      []StaveHeader
	Copies       []CopyOfStaveZero
	Join         JoinConfig
	Warn         bool
	FirstOfMovement bool
}

// DrawHeaders lays out the stave-name strings and starting
// clef/key/time for every non-suspended stave (spec.md §4.8 step 2).
// Multi-line right-justified names are width-scanned twice: once to find
// the widest line (so every line can be right-justified against it), once
// to actually place them.
func DrawHeaders(headers []StaveHeader, origins []barsetter.StaveOrigin, nameWidth func(string) int32) []note.Op {
	var b note.Builder
	for i, h := range headers {
		if origins[i].Suspended {
			continue
		}
		y := origins[i].YStave
		if h.VCentre && i+1 < len(origins) {
			y = (origins[i].YStave + origins[i+1].YStave) / 2
		}
		if len(h.Names) > 1 {
			widest := int32(0)
			for _, n := range h.Names {
				if w := nameWidth(n); w > widest {
					widest = w
				}
			}
			for li, n := range h.Names {
				w := nameWidth(n)
				b.Text(widest-w, y+int32(li)*1200, n, 0)
			}
		} else if len(h.Names) == 1 {
			b.Text(0, y, h.Names[0], 0)
		}

		if h.StartClef != "" {
			b.Text(0, y, h.StartClef, 0)
		}
		if h.KeyWidth != 0 {
			b.Text(h.KeyWidth, y, h.StartKey, 0)
		}
		if h.ShowTime {
			b.Text(h.KeyWidth, y, timeSignatureText(h.TimeNum, h.TimeDen), 0)
		}
	}
	return b.Ops()
}

func timeSignatureText(num, den int) string {
	if num == 0 {
		return ""
	}
	return itoa(num) + "/" + itoa(den)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var digits [8]byte
	i := len(digits)
	for n > 0 {
		i--
		digits[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		digits[i] = '-'
	}
	return string(digits[i:])
}

// IterateBars walks a sequence of per-stave bars through
// barsetter.DispatchStave in bottom-to-top order, returning one
// StaveResult per stave (indexed top-to-bottom to match Origins).
func IterateBars(bars []*barmodel.Bar, ctx note.Context, origins []barsetter.StaveOrigin, other barsetter.OtherHandler) []barsetter.StaveResult {
	results := make([]barsetter.StaveResult, len(bars))
	for _, idx := range barsetter.StaveOrder(len(bars)) {
		results[idx] = barsetter.DispatchStave(bars[idx], ctx, 0, origins[idx], other)
	}
	return results
}
