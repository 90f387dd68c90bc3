// Package pitch models PMW's quarter-tone pitch space and the accidental
// enumeration, and implements transposition of notated pitches and key
// signatures (component T of the layout core).
package pitch

// AbsPitch is a quantised absolute pitch: 24 steps per octave (quarter-tone
// resolution).
type AbsPitch int16

// StavePitch positions a note vertically on a stave. Each octave spans a
// fixed number of stave units; P1S names the middle line.
type StavePitch int16

// P1S is the stave-pitch value of the middle line of a 5-line stave.
const P1S StavePitch = 4 * 8

// Accidental is the printed-accidental enumeration.
type Accidental uint8

const (
	AccNone Accidental = iota
	AccNatural
	AccHalfFlat
	AccFlat
	AccDoubleFlat
	AccHalfSharp
	AccSharp
	AccDoubleSharp
)

// QuarterToneOffset is the signed quarter-tone offset each accidental
// applies to the plain letter pitch.
var QuarterToneOffset = [...]int{
	AccNone:        0,
	AccNatural:     0,
	AccHalfFlat:    -1,
	AccFlat:        -2,
	AccDoubleFlat:  -4,
	AccHalfSharp:   1,
	AccSharp:       2,
	AccDoubleSharp: 4,
}

// AccidentalBracket selects how an accidental is drawn next to a note.
type AccidentalBracket uint8

const (
	BracketPlain AccidentalBracket = iota
	BracketRound
	BracketSquare
	BracketInvisible
)

// NoteLetter is one of the seven natural note letters, stored C..B as 0..6
// (key-table indices, by contrast, are rooted on A; see letterOf).
type NoteLetter uint8

const (
	LetterC NoteLetter = iota
	LetterD
	LetterE
	LetterF
	LetterG
	LetterA
	LetterB
)

// semitonesAboveC gives the natural (no-accidental) semitone offset of each
// letter above C, used to derive a letter's "white note" pitch class.
var semitonesAboveC = [...]int{
	LetterC: 0, LetterD: 2, LetterE: 4, LetterF: 5, LetterG: 7, LetterA: 9, LetterB: 11,
}
