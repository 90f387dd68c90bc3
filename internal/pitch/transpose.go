package pitch

import "errors"

var (
	errOddTranspose    = errors.New("pitch: odd quarter-tone key transposition requires a custom KeyTranspose rule")
	errBadKeyTranspose = errors.New("pitch: key transposition landed on a non-existent key")
	errBadOffset       = errors.New("pitch: letter-change offset out of range (only possible with an ill-chosen custom letter-change rule)")
)

// ableTables select, per requested accidental, which pitch classes (mod 24)
// can actually be notated with that accidental. Index is AbsPitch % 24;
// only a subset of the 24 quarter-tone classes are "able" for any given
// plain accidental, since half-accidentals are never directly requestable.
var ableTables = [...][24]bool{
	AccNatural: {
		true, false, false, false, true, false, false, false, true, false, false, false,
		true, false, false, false, true, false, false, false, true, false, false, false,
	},
	AccSharp: {
		false, false, true, false, false, false, true, false, false, false, true, false,
		false, false, true, false, false, false, true, false, false, false, true, false,
	},
	AccDoubleSharp: {
		false, false, false, false, true, false, false, false, true, false, false, false,
		true, false, false, false, false, false, true, false, false, false, true, false,
	},
	AccFlat: {
		false, false, true, false, false, false, true, false, true, false, false, false,
		false, true, false, false, true, false, false, false, true, false, false, true,
	},
	AccDoubleFlat: {
		true, false, false, false, true, false, false, false, false, true, false, false,
		true, false, false, false, true, false, false, false, false, true, false, false,
	},
}

// readAccPitch gives the quarter-tone offset to subtract from abspitch to
// recover the plain-letter pitch once an accidental has been chosen.
var readAccPitch = [...]int{
	AccNone: 0, AccNatural: 0,
	AccHalfFlat: -1, AccFlat: -2, AccDoubleFlat: -4,
	AccHalfSharp: 1, AccSharp: 2, AccDoubleSharp: 4,
}

// tpForwardOffset/tpForwardPitch and tpReverseOffset/tpReversePitch give the
// letter-step and semitone adjustments applied when a note's letter is
// advanced forward/backward by the key's letter-change count. Indexed by
// letter position 0-11 in the white-note pitch-class space (only even slots
// and a few odd ones are meaningful, mirroring the C tables exactly).
var tpForwardOffset = [12]int{2, 0, 4, 0, 5, 7, 0, 9, 0, 11, 0, 0}
var tpForwardPitch = [12]int{2, 0, 2, 0, 1, 2, 0, 2, 0, 2, 0, 1}
var tpReverseOffset = [12]int{11, 0, 0, 0, 2, 4, 0, 5, 0, 7, 0, 9}
var tpReversePitch = [12]int{1, 0, 2, 0, 2, 1, 0, 2, 0, 2, 0, 2}

// tpNewAcc maps a signed letter offset (biased by +4) to the accidental
// that must be printed to achieve it. Offsets beyond the table are a fatal
// internal error.
var tpNewAcc = [9]Accidental{AccDoubleFlat, AccNone, AccFlat, AccHalfFlat, AccNatural, AccHalfSharp, AccSharp, AccNone, AccDoubleSharp}

// TransposeResult is the outcome of TransposeNote.
type TransposeResult struct {
	AbsPitch AbsPitch
	Pitch    StavePitch
	Acc      Accidental
}

// TiedNoteAcc supplies the remembered accidental for a tied-to note, used
// in place of the per-bar accidental table when transposing a note that
// continues a tie.
type TiedNoteAcc struct {
	Valid bool
	Acc   Accidental
}

// TransposeNote transposes one notated pitch by amount quarter-tones
// (amount is carried in the AbsPitch delta already folded into abspitch by
// the caller having called TransposeKey first is NOT assumed here — amount
// is passed explicitly so this function has no hidden global state).
//
// pitch is the note's original notated stave pitch (always a "white" spot,
// i.e. the plain letter with no accidental folded in); the letter-stepping
// branch walks forward or backward from it by letterChangeCount letters
// using the precomputed tpForwardOffset/tpForwardPitch/tpReverseOffset/
// tpReversePitch tables, per spec.md §4.3 step 3.
//
// barAcc is the per-bar remembered accidental at the transposed pitch class
// (baraccs_tp[] in the original); pass it as AccNone if nothing has been
// remembered yet at that pitch in the current bar. tied, when non-nil,
// overrides barAcc with the tied-from note's own transposed accidental.
func TransposeNote(
	abspitch AbsPitch,
	pitch StavePitch,
	acc Accidental,
	amount int,
	requestedAcc Accidental,
	forceAcc bool,
	oneNote bool,
	barAcc Accidental,
	tied *TiedNoteAcc,
	letterChangeCount int,
) (TransposeResult, error) {
	newAbs := abspitch + AbsPitch(amount)

	var newAcc Accidental
	var newPitch StavePitch

	if requestedAcc != AccNone && ableTables[requestedAcc][((int(newAbs)%24)+24)%24] {
		newAcc = requestedAcc
		newPitch = StavePitch(int(newAbs) - readAccPitch[requestedAcc])
	} else {
		newPitchInt := int(pitch)
		tableIdx := positiveMod24(newPitchInt) / 2

		i := letterChangeCount
		if i >= 0 {
			for ; i > 0; i-- {
				newPitchInt += 2 * tpForwardPitch[tableIdx]
				tableIdx = tpForwardOffset[tableIdx]
			}
		} else {
			for ; i < 0; i++ {
				newPitchInt -= 2 * tpReversePitch[tableIdx]
				tableIdx = tpReverseOffset[tableIdx]
			}
		}

		// Allow for >= octave transposition.
		for newPitchInt <= int(newAbs)-24 {
			newPitchInt += 24
		}
		for newPitchInt >= int(newAbs)+24 {
			newPitchInt -= 24
		}

		// offset is the difference between the true pitch and the pitch of
		// the written note without an accidental, corrected for wraparound
		// near the octave boundary.
		offset := int(newAbs) - newPitchInt
		if offset >= 20 {
			offset -= 24
			newPitchInt += 24
		} else if offset <= -20 {
			offset += 24
			newPitchInt -= 24
		}
		noteOffset := positiveMod24(newPitchInt)

		// Three-quarter-tone rewrite (design note: preserved verbatim,
		// including the "may never arise in practice" oddity).
		switch {
		case offset == -3 || offset == -6:
			if noteOffset == 0 || noteOffset == 10 {
				newPitchInt -= 1
				offset += 2
			} else {
				newPitchInt -= 2
				offset += 4
			}
		case offset == 3 || offset == 6:
			if noteOffset == 8 || noteOffset == 22 {
				newPitchInt += 1
				offset -= 2
			} else {
				newPitchInt += 2
				offset -= 4
			}
		}

		if offset < -4 || offset > 4 {
			return TransposeResult{}, errBadOffset
		}
		newAcc = tpNewAcc[offset+4]
		newPitch = StavePitch(newPitchInt)
	}

	// Accidental suppression.
	remembered := barAcc
	if tied != nil && tied.Valid {
		remembered = tied.Acc
	}
	if newAcc == remembered && (acc == AccNone || !forceAcc) {
		newAcc = AccNone
	}

	return TransposeResult{AbsPitch: newAbs, Pitch: newPitch, Acc: newAcc}, nil
}

// positiveMod24 is n mod 24, normalised into 0-23 regardless of n's sign;
// used to index the 12-entry letter-step tables (by halving) and to test a
// pitch's position within the octave for the three-quarter-tone rewrite.
func positiveMod24(n int) int {
	m := n % 24
	if m < 0 {
		m += 24
	}
	return m
}
