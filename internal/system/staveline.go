package system

import "github.com/pmw-go/pmwcore/internal/note"

// DedupeStaveLineYs returns one y per distinct stave line, so runs of
// equal-y suspensions share a single drawn line (spec.md §4.8 step 6).
func DedupeStaveLineYs(ys []int32) []int32 {
	var out []int32
	var last int32
	have := false
	for _, y := range ys {
		if !have || y != last {
			out = append(out, y)
			last = y
			have = true
		}
	}
	return out
}

// DrawStaveLines lays out nlines parallel lines from leftX to rightX at
// each y in ys.
func DrawStaveLines(ys []int32, leftX, rightX int32, nlines int, lineGap int32) []note.Op {
	var b note.Builder
	for _, y := range ys {
		for i := 0; i < nlines; i++ {
			ly := y + int32(i)*lineGap
			b.Line(leftX, ly, rightX, ly)
		}
	}
	return b.Ops()
}

// OverdrawOp is one recorded drawing op (line or text) queued during bar
// drawing so it can overlay the stave lines once they are emitted
// (out_overdraw).
type OverdrawOp struct {
	Op     note.Op
	Colour int32
	Dashed bool
	YStave int32
}

// OverdrawQueue accumulates OverdrawOps in recording order.
type OverdrawQueue struct {
	ops []OverdrawOp
}

func (q *OverdrawQueue) Record(op OverdrawOp) { q.ops = append(q.ops, op) }

// Flush returns every recorded op in order and clears the queue, to be
// emitted after the stave lines so they render on top.
func (q *OverdrawQueue) Flush() []OverdrawOp {
	out := q.ops
	q.ops = nil
	return out
}
