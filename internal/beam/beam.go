// Package beam plans beams across a run of notes (component B): slope
// selection, vertical offset, per-note stem-length deltas, and the
// through-beam/hook/stub drawing decomposition, including beams that cross
// a bar line (spec.md §4.5).
package beam

import "github.com/pmw-go/pmwcore/internal/barmodel"

// MaxBeamSlope holds the two configured slope clamps: index 0 for two-note
// beams, index 1 for beams of three or more notes.
var MaxBeamSlope = [2]int32{350, 250}

// retrySchedule is the sequence of slope reductions tried, in order, when
// the initially chosen slope would make an opposite-side note cross the
// beam (spec.md §4.5).
var retrySchedule = []int32{100, 50, 0, -50, -100, -300}

// CandidateNote is one note under beaming consideration.
type CandidateNote struct {
	Type      barmodel.NoteType
	Pitch     int32 // stave-pitch units
	StemUp    bool
	IsGrace   bool
	IsRest    bool
	ManualStemAdjust int32 // millipoints
	OppositeSide bool // true if this note's stem goes the opposite way from the beam's majority
}

// Plan is a committed beam: the planner either returns one (ok == true) or
// declines.
type Plan struct {
	Slope       int32 // thousandths
	FirstX, FirstY int32
	// StemAdjusts holds a per-note stem-length delta, indexed from the
	// LAST note of the beam backward: StemAdjusts[0] is the last note's
	// adjustment. This ordering is a deliberate preservation of the
	// original beam_stemadjusts[] handshake (spec.md §9 Open Questions) —
	// reversing it silently would desync the renderer that consumes it.
	StemAdjusts []int32
	Split       bool // true if notes sit on both stem sides
	StemUp      bool // majority stem side, meaningful only when Split forced a single side
	ForcedSingleSide bool
	Count       int
}

// Plan1 decides whether a beam can start at notes (already filtered to the
// beamable run) and, if so, produces a committed Plan.
//
// continuing indicates the beam is continuing an already-established
// beam_overbeam carried from the previous bar, relaxing the "at least two
// notes" decline condition.
func Plan1(notes []CandidateNote, continuing bool, manualSlope *int32, openingBeamBreak0 bool) (Plan, bool) {
	if openingBeamBreak0 {
		return Plan{}, false
	}
	if !continuing && countNonRest(notes) < 2 {
		return Plan{}, false
	}
	if allRests(notes) {
		return Plan{}, false
	}

	var slope int32
	switch {
	case manualSlope != nil:
		slope = clamp(*manualSlope, MaxBeamSlope[1])
	case len(notes) > 2:
		slope = findSlope(notes)
	default:
		slope = twoNoteSlope(notes)
	}

	plan := Plan{Slope: slope, Count: len(notes)}
	plan.StemAdjusts = stemAdjusts(notes)

	offsetY, split, ok := computeOffset(notes, slope)
	if !ok {
		for _, retry := range retrySchedule {
			offsetY, split, ok = computeOffset(notes, retry)
			if ok {
				plan.Slope = retry
				break
			}
		}
		if !ok {
			// Force all notes onto the majority stem side and re-commit
			// (non-fatal warning per spec.md §7).
			up := majorityStemUp(notes)
			plan.ForcedSingleSide = true
			plan.StemUp = up
			offsetY, _, _ = computeOffset(forceSide(notes, up), plan.Slope)
			split = false
		}
	}
	plan.FirstY = offsetY
	plan.Split = split
	return plan, true
}

func countNonRest(notes []CandidateNote) int {
	n := 0
	for _, nt := range notes {
		if !nt.IsRest {
			n++
		}
	}
	return n
}

func allRests(notes []CandidateNote) bool {
	for _, nt := range notes {
		if !nt.IsRest {
			return false
		}
	}
	return true
}

func clamp(v, limit int32) int32 {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}

// stemAdjusts builds the per-note manual stem adjustment slice in
// last-to-first order, per the preserved handshake noted above.
func stemAdjusts(notes []CandidateNote) []int32 {
	out := make([]int32, len(notes))
	for i, nt := range notes {
		out[len(notes)-1-i] = nt.ManualStemAdjust
	}
	return out
}

func majorityStemUp(notes []CandidateNote) bool {
	up, down := 0, 0
	for _, nt := range notes {
		if nt.IsRest {
			continue
		}
		if nt.StemUp {
			up++
		} else {
			down++
		}
	}
	return up >= down
}

func forceSide(notes []CandidateNote, up bool) []CandidateNote {
	out := make([]CandidateNote, len(notes))
	for i, nt := range notes {
		nt.StemUp = up
		nt.OppositeSide = false
		out[i] = nt
	}
	return out
}
