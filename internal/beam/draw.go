package beam

import "github.com/pmw-go/pmwcore/internal/barmodel"

// beamLevel returns how many beam lines a note type needs: crotchet and
// longer need none, quaver needs one, semiquaver two, and so on.
func beamLevel(t barmodel.NoteType) int {
	switch t {
	case barmodel.NoteQuaver:
		return 1
	case barmodel.NoteSemiquaver:
		return 2
	case barmodel.NoteDemisemiquaver:
		return 3
	case barmodel.NoteHemidemisemiquaver:
		return 4
	default:
		return 0
	}
}

// LevelOp is what must be drawn for one note at one beam level.
type LevelOp uint8

const (
	OpNone LevelOp = iota
	OpThrough
	OpHookForward
	OpHookBackward
)

// LevelPlan decides, for each note and each beam level 1..4, whether a
// through-beam segment, a hook, or nothing is drawn, honouring secondary
// beam breaks (breakPastIndex, -1 meaning none) and flipping hook side at
// notes whose stems cross to the opposite side in a split beam
// (spec.md §4.5 "Drawing").
func LevelPlan(types []barmodel.NoteType, breakPastIndex int, split []bool) [][]LevelOp {
	n := len(types)
	maxLevel := 0
	for _, t := range types {
		if l := beamLevel(t); l > maxLevel {
			maxLevel = l
		}
	}

	plan := make([][]LevelOp, n)
	for i := range plan {
		plan[i] = make([]LevelOp, maxLevel)
	}

	for level := 1; level <= maxLevel; level++ {
		for i := 0; i < n; i++ {
			need := beamLevel(types[i]) >= level
			if !need {
				continue
			}
			prevNeed := i > 0 && beamLevel(types[i-1]) >= level && !secondaryBreakBetween(breakPastIndex, i-1, i)
			nextNeed := i < n-1 && beamLevel(types[i+1]) >= level && !secondaryBreakBetween(breakPastIndex, i, i+1)

			switch {
			case prevNeed && nextNeed:
				plan[i][level-1] = OpThrough
			case nextNeed:
				plan[i][level-1] = OpHookForward
			case prevNeed:
				plan[i][level-1] = OpHookBackward
			default:
				plan[i][level-1] = OpNone
			}

			if split != nil && i < len(split) && split[i] {
				if plan[i][level-1] == OpHookForward {
					plan[i][level-1] = OpHookBackward
				} else if plan[i][level-1] == OpHookBackward {
					plan[i][level-1] = OpHookForward
				}
			}
		}
	}
	return plan
}

func secondaryBreakBetween(breakPastIndex, a, b int) bool {
	if breakPastIndex < 0 {
		return false
	}
	return a == breakPastIndex && b == breakPastIndex+1
}

// ThroughBeamCountAtLevel1 returns the number of level-1 through-beam
// segments for a run of notetypes (one per gap between adjacent notes that
// both need a level-1 stroke and are not separated by a secondary beam
// break). This is the edge count, not a per-note flag count: a run of n
// quavers draws one continuous beam line subdivided into n-1 segments, the
// §8 testable property ("equals the minimum notetype in the beam minus
// crotchet + 1", i.e. n-1 for an unbroken all-quaver run).
func ThroughBeamCountAtLevel1(types []barmodel.NoteType, breakPastIndex int) int {
	c := 0
	for i := 0; i+1 < len(types); i++ {
		if beamLevel(types[i]) >= 1 && beamLevel(types[i+1]) >= 1 && !secondaryBreakBetween(breakPastIndex, i, i+1) {
			c++
		}
	}
	return c
}

// AccRitSegmentSpacing returns the y-offset of the i-th of n parallel lines
// (0-indexed) drawn for an accelerando/ritardando beam (spec.md §4.5 final
// paragraph): spacing changes linearly across the n segments, and the sign
// of levelChange distinguishes acc (spacing shrinks) from rit (grows).
func AccRitSegmentSpacing(i, n int, baseSpacing, levelChange int32) int32 {
	if n <= 1 {
		return 0
	}
	// The gap below line k is baseSpacing + k*step, so line i sits at the
	// sum of the first i gaps.
	step := levelChange / int32(n-1)
	return int32(i)*baseSpacing + step*int32(i*(i-1)/2)
}

// OverBeam carries a beam's geometry across a barmodel.KindOverBeam marker
// into the next bar, per spec.md §4.5 "Beam-over-barline".
type OverBeam struct {
	Plan       Plan
	NotesSoFar int
}

// Truncated returns a copy of the plan cut to its first atIndex notes, the
// portion that must be drawn before a system break truncates the beam at
// the barline (spec.md §4.5). The remainder is not stored anywhere.
func (o OverBeam) Truncated(atIndex int) Plan {
	p := o.Plan
	if atIndex < len(p.StemAdjusts) {
		p.Count = atIndex
	}
	return p
}
