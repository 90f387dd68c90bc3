package note

// Ornament is one of the chained ornament marks of spec.md §4.6 step 7.
type Ornament uint8

const (
	OrnTrill Ornament = iota
	OrnMordentUpper
	OrnMordentLower
	OrnTurn
	OrnInvertedTurn
	OrnFermata
	OrnArpeggioUp
	OrnArpeggioDown
	OrnArpeggioBoth
	OrnSpread
)

// ornamentNudge is the per-ornament (x, y) nudge (millipoints) applied
// when chaining ornaments in sequence.
var ornamentNudge = map[Ornament][2]int32{
	OrnTrill:        {0, 1000},
	OrnMordentUpper: {0, 500},
	OrnMordentLower: {0, 500},
	OrnTurn:         {0, 800},
	OrnInvertedTurn: {0, 800},
	OrnFermata:      {0, 1500},
	OrnArpeggioUp:   {-2000, 0},
	OrnArpeggioDown: {-2000, 0},
	OrnArpeggioBoth: {-2000, 0},
	OrnSpread:       {-1500, 0},
}

// bracketedOrnamentScalePerMille is the size an ornament's bracket glyphs
// are drawn at (60% of normal, spec.md §4.6 step 7).
const bracketedOrnamentScalePerMille int32 = 600

// ChainOrnaments lays out a sequence of ornaments at a starting point,
// applying each ornament's own nudge cumulatively; an ornament marked in
// bracketed is drawn with its bracketed glyph at the reduced bracket scale.
func ChainOrnaments(startX, startY int32, chain []Ornament, bracketed map[Ornament]bool) []Op {
	var b Builder
	x, y := startX, startY
	for _, o := range chain {
		n := ornamentNudge[o]
		x += n[0]
		y += n[1]
		size := int32(1000)
		if bracketed[o] {
			size = bracketedOrnamentScalePerMille
		}
		b.SmallGlyph(x, y, ornamentGlyph(o, bracketed[o]), 0, size)
	}
	return b.Ops()
}

// ornamentGlyph returns an ornament's music character; the variant selected
// by half adds bracketGlyphOffset (1) to the base character, as
// AccidentalGlyph does.
func ornamentGlyph(o Ornament, half bool) rune {
	base := rune(0xE400) + rune(o)
	if half {
		base += bracketGlyphOffset
	}
	return base
}

// ArpeggioSegmentCount returns how many body segments an arpeggio glyph
// needs to span a chord of the given pitch range (stave-pitch units),
// one segment per unitsPerSegment, rounded up, at least 1.
func ArpeggioSegmentCount(spanStavePitchUnits, unitsPerSegment int32) int {
	if spanStavePitchUnits <= 0 || unitsPerSegment <= 0 {
		return 1
	}
	n := int(spanStavePitchUnits / unitsPerSegment)
	if spanStavePitchUnits%unitsPerSegment != 0 {
		n++
	}
	if n < 1 {
		n = 1
	}
	return n
}

// PendingTremolo records a tremolo-bar request queued by the first of a
// pair of notes, awaiting the second note's position (spec.md §4.6
// step 8).
type PendingTremolo struct {
	X, Y  int32
	Count int // number of short bars
	Join  int // lines short of each end for the thin "joined" portion
}

// TremoloSlope returns the slope (thousandths of y per unit of x) of the
// tremolo bars between two notes' positions.
func TremoloSlope(x1, y1, x2, y2 int32) int32 {
	if x2 == x1 {
		return 0
	}
	return (y2 - y1) * 1000 / (x2 - x1)
}

// TremoloBars lays out the n short bars at the midpoint between two
// notes, stopping the joined portion j lines short of each end.
func TremoloBars(pending PendingTremolo, x2, y2 int32, barLength, barGap int32) []Op {
	var b Builder
	slope := TremoloSlope(pending.X, pending.Y, x2, y2)
	midX := (pending.X + x2) / 2
	midY := (pending.Y + y2) / 2
	start := pending.Join
	end := pending.Count - pending.Join
	if end < start {
		end = start
	}
	for i := start; i < end; i++ {
		// (2*i - (n-1)) * barGap / 2 centres the bars around the midpoint
		// without losing precision to integer division.
		offset := (2*int32(i) - int32(pending.Count-1)) * barGap / 2
		y := midY + offset
		dy := barLength / 2 * slope / 1000
		b.Line(midX-barLength/2, y-dy, midX+barLength/2, y+dy)
	}
	return b.Ops()
}
