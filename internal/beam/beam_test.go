package beam

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pmw-go/pmwcore/internal/barmodel"
)

func quavers(pitches ...int32) []CandidateNote {
	notes := make([]CandidateNote, len(pitches))
	for i, p := range pitches {
		notes[i] = CandidateNote{Type: barmodel.NoteQuaver, Pitch: p, StemUp: true}
	}
	return notes
}

func TestPlan1DeclinesFewerThanTwoNotes(t *testing.T) {
	_, ok := Plan1(quavers(10), false, nil, false)
	require.False(t, ok)
}

func TestPlan1DeclinesAllRests(t *testing.T) {
	notes := quavers(10, 12)
	notes[0].IsRest = true
	notes[1].IsRest = true
	_, ok := Plan1(notes, false, nil, false)
	require.False(t, ok)
}

func TestPlan1DeclinesExplicitBeamBreakZero(t *testing.T) {
	_, ok := Plan1(quavers(10, 12), false, nil, true)
	require.False(t, ok)
}

func TestPlan1AcceptsFourAscendingQuavers(t *testing.T) {
	notes := quavers(0, 2, 4, 6) // C D E F, rising stepwise
	p, ok := Plan1(notes, false, nil, false)
	require.True(t, ok)
	require.Equal(t, MaxBeamSlope[1], p.Slope)
	require.Equal(t, 4, p.Count)
}

func TestPlan1ManualSlopeOverride(t *testing.T) {
	manual := int32(120)
	notes := quavers(0, 2, 4, 6)
	p, ok := Plan1(notes, false, &manual, false)
	require.True(t, ok)
	require.Equal(t, int32(120), p.Slope)
}

func TestStemAdjustsIndexedFromLastNoteBackward(t *testing.T) {
	notes := []CandidateNote{
		{Type: barmodel.NoteQuaver, Pitch: 0, StemUp: true, ManualStemAdjust: 10},
		{Type: barmodel.NoteQuaver, Pitch: 2, StemUp: true, ManualStemAdjust: 20},
		{Type: barmodel.NoteQuaver, Pitch: 4, StemUp: true, ManualStemAdjust: 30},
	}
	p, ok := Plan1(notes, false, nil, false)
	require.True(t, ok)
	require.Equal(t, []int32{30, 20, 10}, p.StemAdjusts)
}

func TestLevelPlanThroughBeamCount(t *testing.T) {
	types := []barmodel.NoteType{barmodel.NoteQuaver, barmodel.NoteQuaver, barmodel.NoteQuaver, barmodel.NoteQuaver}
	// Four quavers beamed together: 3 through-beams at level 1 (n-1).
	require.Equal(t, 3, ThroughBeamCountAtLevel1(types, -1))
}

func TestLevelPlanHooksAtEnds(t *testing.T) {
	types := []barmodel.NoteType{barmodel.NoteQuaver, barmodel.NoteSemiquaver}
	plan := LevelPlan(types, -1, nil)
	require.Equal(t, OpHookForward, plan[0][0])
	require.Equal(t, OpHookBackward, plan[1][0])
	// The semiquaver's level-2 stroke has no neighbour needing level 2,
	// so it draws neither a through-beam nor a hook in this two-note run.
	require.Equal(t, OpNone, plan[1][1])
}
