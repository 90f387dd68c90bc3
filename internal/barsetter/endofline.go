package barsetter

import (
	"github.com/pmw-go/pmwcore/internal/barmodel"
	"github.com/pmw-go/pmwcore/internal/note"
)

// endLineSlurAdjustMillipt is endlinesluradjust: the extra reach an
// open slur's tail gets when drawn at a system break.
const endLineSlurAdjustMillipt int32 = 1500

// CloseOpenSlurs draws a tail to lineEnd+endlinesluradjust for every
// still-open slur (spec.md §4.7 end-of-line handling).
func CloseOpenSlurs(open []barmodel.ActiveSlur, lineEnd int32) []note.Op {
	var b note.Builder
	for _, s := range open {
		b.Line(s.StartX, s.StartY, lineEnd+endLineSlurAdjustMillipt, s.StartY)
	}
	return b.Ops()
}

// CloseOpenTie draws an end-of-line tie for a pending tie, and — when the
// tie encodes a glissando — a second line over the same flat path, from
// FromX to lineEnd at FromY. That line is solid, not dashed, and no
// right-hand pitch is computed for it.
func CloseOpenTie(p *barmodel.PendingTie, lineEnd int32, isGlissando bool) []note.Op {
	if p == nil || !p.Active {
		return nil
	}
	var b note.Builder
	b.Line(p.FromX, p.FromY, lineEnd, p.FromY)
	if isGlissando {
		b.Line(p.FromX, p.FromY, lineEnd, p.FromY)
	}
	return b.Ops()
}

// CloseOpenHairpin draws an open-ended tail for a hairpin still active at
// the line break.
func CloseOpenHairpin(h *barmodel.ActiveHairpin, lineEnd, y int32) []note.Op {
	if h == nil {
		return nil
	}
	var b note.Builder
	b.Line(h.StartX, y, lineEnd, y)
	return b.Ops()
}

// CloseNthTimeBar emits the closing horizontal stroke for an nth-time
// bracket, with a right jog unless the next bar also opens a new
// nth-time bracket (in which case the stroke runs straight into it).
func CloseNthTimeBar(n *barmodel.NthTimeBar, lineEnd, y int32, nextBarOpensNew bool) []note.Op {
	if n == nil {
		return nil
	}
	var b note.Builder
	b.Line(n.StartX, y, lineEnd, y)
	if !nextBarOpensNew {
		b.Line(lineEnd, y, lineEnd, y-jogLengthMillipt)
	}
	return b.Ops()
}

const jogLengthMillipt int32 = 2500

// CloseUnderlayPending emits the trailing hyphen row or dashed extender a
// pending underlay/overlay syllable needs at a system break, extending a
// crossing syllable's extender to near the barline.
func CloseUnderlayPending(p *barmodel.UnderlayPending, lineEnd, y int32, crossesBreak bool) []note.Op {
	if p == nil || !p.Active {
		return nil
	}
	if p.Hyphen {
		return note.HyphenRun(p.StartX, computeRightEdge(p.StartX, lineEnd), y, 1500, 6000)
	}
	end := lineEnd
	if crossesBreak {
		end = lineEnd - nearBarlineGapMillipt
	}
	return []note.Op{note.ExtenderLine(p.StartX, end, y)}
}

const nearBarlineGapMillipt int32 = 1000

func computeRightEdge(startX, lineEnd int32) int32 {
	if lineEnd-startX < nearBarlineGapMillipt {
		return lineEnd
	}
	return lineEnd - nearBarlineGapMillipt
}
