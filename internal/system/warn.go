package system

import "github.com/pmw-go/pmwcore/internal/note"

// WarnItem is a pre-note [time] or non-empty [key] item carrying the
// warn flag, found while scanning one stave for the warning-bar emitter
// (spec.md §4.8 step 5).
type WarnItem struct {
	Stave       int
	IsKey       bool // false => time signature
	Width       int32
	KeyDoubleBar bool
}

// WidestPerColumn picks the widest WarnItem in each column (an iteration
// count across staves), per spec.md: "output the widest one per column".
// columns maps a column index to the WarnItems found in it, scanned
// stave left-to-right (callers build this by grouping their scan by
// column before calling).
func WidestPerColumn(columns map[int][]WarnItem) map[int]WarnItem {
	out := make(map[int]WarnItem, len(columns))
	for col, items := range columns {
		if len(items) == 0 {
			continue
		}
		widest := items[0]
		for _, it := range items[1:] {
			if it.Width > widest.Width {
				widest = it
			}
		}
		out[col] = widest
	}
	return out
}

// DrawKeyDoubleBar draws the double barline a warning key change with
// mf_keydoublebar needs, running from the key's own stave downward to
// the next unsuspended printing stave before the key, unless broken by
// an intervening suspension gap.
func DrawKeyDoubleBar(fromStave int, yOf func(stave int) int32, nextUnsuspended func(from int) (int, bool), x int32) []note.Op {
	target, ok := nextUnsuspended(fromStave)
	if !ok {
		return nil
	}
	var b note.Builder
	b.Line(x, yOf(fromStave), x, yOf(target))
	b.Line(x+1000, yOf(fromStave), x+1000, yOf(target))
	return b.Ops()
}
