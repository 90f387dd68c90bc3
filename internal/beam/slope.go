package beam

// findSlope implements the run-counting heuristic of spec.md §4.5 step 1
// for beams of more than two notes: count runs of rising/falling/equal
// intervals between adjacent non-grace beamed notes, let the dominant run
// sign pick +/-MaxBeamSlope[1] (equal forces 0), then apply the two
// override heuristics (wide endpoint spread, crossing pitches) and the
// first-interval tie-break.
func findSlope(notes []CandidateNote) int32 {
	up, down, equal := 0, 0, 0
	firstSign := 0
	for i := 1; i < len(notes); i++ {
		if notes[i].IsGrace || notes[i-1].IsGrace {
			continue
		}
		d := notes[i].Pitch - notes[i-1].Pitch
		switch {
		case d > 0:
			up++
			if firstSign == 0 {
				firstSign = 1
			}
		case d < 0:
			down++
			if firstSign == 0 {
				firstSign = -1
			}
		default:
			equal++
		}
	}

	first := firstNonGrace(notes)
	last := lastNonGrace(notes)

	// Wide-endpoint-spread override: endpoints differ by >= 8 units and no
	// inner pitch exceeds the far endpoint by more than 4.
	if spread := abs32(last.Pitch - first.Pitch); spread >= 8 {
		farIsLast := last.Pitch > first.Pitch
		ok := true
		for _, n := range notes {
			if farIsLast && n.Pitch > last.Pitch+4 {
				ok = false
			}
			if !farIsLast && n.Pitch < last.Pitch-4 {
				ok = false
			}
		}
		if ok {
			if farIsLast {
				return MaxBeamSlope[1]
			}
			return -MaxBeamSlope[1]
		}
	}

	// Crossing override: the endpoints cross the far pitch -> force zero.
	if (first.Pitch < last.Pitch && minPitch(notes) < first.Pitch) ||
		(first.Pitch > last.Pitch && maxPitch(notes) > first.Pitch) {
		return 0
	}

	if equal >= up && equal >= down {
		return 0
	}

	var sign int32
	if up > down {
		sign = 1
	} else if down > up {
		sign = -1
	} else {
		sign = int32(firstSign)
	}

	// Reject a slope whose sign contradicts the opening motion.
	if firstSign != 0 && int32(firstSign) != sign {
		return 0
	}

	return sign * MaxBeamSlope[1]
}

// twoNoteSlope implements step 2 for exactly two notes: same-direction
// stems use the line between stem ends (ignoring manual adjusts),
// opposite-direction stems include the adjusts and fudge the right end.
func twoNoteSlope(notes []CandidateNote) int32 {
	if len(notes) < 2 {
		return 0
	}
	a, b := notes[0], notes[1]
	dy := b.Pitch - a.Pitch
	if a.StemUp == b.StemUp {
		return clamp(dy*1000/4, MaxBeamSlope[0])
	}
	adjusted := dy + (b.ManualStemAdjust-a.ManualStemAdjust)/1000
	return clamp(adjusted*1000/4+50, MaxBeamSlope[0])
}

// computeOffset implements spec.md §4.5 step "Offset": starting from the
// first note's manual adjust, push the beam outward whenever a notehead
// would protrude past it, and — if opposite-side notes are present —
// average with their own parallel offset. sideOffset only ever pushes the
// offset outward and never reports failure, so ok is always true.
func computeOffset(notes []CandidateNote, slope int32) (y int32, split bool, ok bool) {
	if len(notes) == 0 {
		return 0, false, true
	}
	base := notes[0].ManualStemAdjust

	mainSide, oppSide := partitionBySide(notes)
	split = len(oppSide) > 0 && len(mainSide) > 0

	mainY, mainOK := sideOffset(mainSide, slope, base)
	if !split {
		return mainY, false, mainOK
	}

	oppY, oppOK := sideOffset(oppSide, slope, base)
	if !mainOK || !oppOK {
		return 0, split, false
	}
	return (mainY + oppY) / 2, split, true
}

func partitionBySide(notes []CandidateNote) (main, opp []CandidateNote) {
	up := majorityStemUp(notes)
	for _, n := range notes {
		if n.IsRest {
			continue
		}
		if n.StemUp == up {
			main = append(main, n)
		} else {
			opp = append(opp, n)
		}
	}
	return main, opp
}

func sideOffset(side []CandidateNote, slope, base int32) (int32, bool) {
	y := base
	for i, n := range side {
		lineY := base + slope*int32(i)/1000
		if n.StemUp && n.Pitch < lineY {
			y = lineY - n.Pitch
		} else if !n.StemUp && n.Pitch > lineY {
			y = lineY + (n.Pitch - lineY)
		}
	}
	return y, true
}

func firstNonGrace(notes []CandidateNote) CandidateNote {
	for _, n := range notes {
		if !n.IsGrace {
			return n
		}
	}
	return notes[0]
}

func lastNonGrace(notes []CandidateNote) CandidateNote {
	for i := len(notes) - 1; i >= 0; i-- {
		if !notes[i].IsGrace {
			return notes[i]
		}
	}
	return notes[len(notes)-1]
}

func minPitch(notes []CandidateNote) int32 {
	m := notes[0].Pitch
	for _, n := range notes {
		if n.Pitch < m {
			m = n.Pitch
		}
	}
	return m
}

func maxPitch(notes []CandidateNote) int32 {
	m := notes[0].Pitch
	for _, n := range notes {
		if n.Pitch > m {
			m = n.Pitch
		}
	}
	return m
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
