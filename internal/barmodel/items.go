// Package barmodel implements the bar item stream data model of spec.md
// §3: a per-bar, per-stave doubly-linked heterogeneous item list, modelled
// as a closed Go sum type over an arena of items (Design Notes §9:
// "ownership is the bar... an arena handle works; a raw pointer does not").
package barmodel

import "github.com/pmw-go/pmwcore/internal/pitch"

// Kind is the bar item tag (the C source's ~80-entry `type` discriminant).
// Kinds are grouped into the functional clusters original_source/structs.h
// uses, and several closely related C kinds collapse onto one Go kind
// distinguished only by a field, matching the C source's own shared
// dispatch tables (SPEC_FULL.md §3).
type Kind uint8

const (
	KindBarStart Kind = iota // sentinel, always first in a bar
	KindNote
	KindChordNote // continuation item of a chord, follows a KindNote
	KindRest
	KindTie
	KindBarline
	KindClef
	KindKey
	KindTime
	KindRepeat
	KindOrnament
	KindAccentMove
	KindBeamBreak
	KindBeamMove
	KindBeamSlope
	KindMove
	KindReset
	KindPletStart
	KindPletEnd
	KindHairpin
	KindNthBar
	KindEndLine
	KindSlur
	KindEndSlur
	KindSlurGap
	KindText
	KindDraw
	KindStaveSize
	KindNoteheads
	KindNotesOnOff
	KindTripletSwitch
	KindMasqSet
	KindPageBreak
	KindLineBreak
	KindBarNumber
	KindFootnote
	KindSpace
	KindEnsure
	KindSpacingChange
	KindSuspend
	KindResume
	KindMIDIChange
	KindOverBeam
	KindCopyZero
)

// StemFlag is the stem-direction/shape bitset carried by a note item.
type StemFlag uint16

const (
	StemUp StemFlag = 1 << iota
	StemDown
	StemNone
	StemCentred
	StemInvert
	StemCoupled
	StemAppoggiaturaSlash
	StemSmallHead
)

// HeadStyle selects the notehead glyph shape.
type HeadStyle uint8

const (
	HeadNormal HeadStyle = iota
	HeadCross
	HeadHarmonic
	HeadNone
	HeadDirect
	HeadCircular
)

// NoteType is a duration class, breve (longest) down to
// hemidemisemiquaver (shortest), numbered so that "shorter than" is "type
// value greater than".
type NoteType uint8

const (
	NoteBreve NoteType = iota
	NoteSemibreve
	NoteMinim
	NoteCrotchet
	NoteQuaver
	NoteSemiquaver
	NoteDemisemiquaver
	NoteHemidemisemiquaver
)

// NoteFlag is the accent/ornament/rendering capability bitset (nf_*
// flags in the C source).
type NoteFlag uint32

const (
	NFInvert NoteFlag = 1 << iota
	NFPlus
	NFHeadBracket
	NFDotRight
)

// Moff is a musical offset: quantised time within a bar, in crotchet-based
// fixed-point units (1 crotchet = MoffPerCrotchet units).
type Moff int32

const MoffPerCrotchet Moff = 96

// Note is the note/chord/rest item payload. A rest uses the same struct
// with AbsPitch == 0 and YExtra as a manual vertical-level delta.
type Note struct {
	Type         NoteType
	Masquerade   *NoteType // printed as a different type if non-nil
	Stem         StemFlag
	Head         HeadStyle
	AbsPitch     pitch.AbsPitch
	StavePitch   pitch.StavePitch
	Duration     Moff
	StemLengthDelta int32 // millipoints
	Acc          pitch.Accidental
	AccBracket   pitch.AccidentalBracket
	Flags        NoteFlag
	YExtra       int32 // rest-only manual vertical-level delta
	IsRest       bool
}

// Item is one bar-item-stream element: a tagged union keyed by Kind, with
// an arena-local doubly-linked position (Prev/Next are indices into the
// owning Bar's item slice, -1 meaning "none").
type Item struct {
	Kind Kind
	Prev, Next int

	Note Note

	// Generic payload slots covering the remaining ~70 kinds; only the
	// slots relevant to Kind are meaningful for a given item; the rest are
	// zero. This mirrors the C source's single generic struct with a
	// union of specialised pointers, flattened into plain fields because
	// Go has no union — a small amount of space is traded for never
	// needing an unsafe cast.
	IntArg1, IntArg2, IntArg3 int32
	Text                      string
	BarlineStyle              int
	RepeatCount               int
}
