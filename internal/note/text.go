package note

import "strings"

// QueuedText is a positional text item encountered before its note's x
// was known; it is laid out immediately after the note renders
// (spec.md §4.6 step 9, out_text()).
type QueuedText struct {
	Text     string
	YOffset  int32
	Rotation int32 // milli-degrees
	Absolute bool  // Y is an absolute page position rather than relative
}

// FlushQueuedText lays out every item queued against a note, now that its
// x position is known.
func FlushQueuedText(noteX, noteY int32, queue []QueuedText) []Op {
	var b Builder
	for _, q := range queue {
		y := noteY + q.YOffset
		if q.Absolute {
			y = q.YOffset
		}
		b.Text(noteX, y, q.Text, 0)
	}
	return b.Ops()
}

// UnderlayStyle selects how underlay/overlay text is aligned against its
// note(s).
type UnderlayStyle uint8

const (
	UnderlayCentred UnderlayStyle = iota // style 0
	UnderlayLeft                         // style 1, used when text extends past one note
)

// UnderlayTrailing records a trailing marker found on a raw underlay
// syllable: '-' starts a hyphen-continuation run to the next syllable,
// '=' starts an extender run held to the end of the note's value.
type UnderlayTrailing uint8

const (
	TrailingNone UnderlayTrailing = iota
	TrailingHyphen
	TrailingExtender
)

// ParsedSyllable is one underlay/overlay syllable after stripping its
// PMW markup.
type ParsedSyllable struct {
	Text       string
	Style      UnderlayStyle
	Trailing   UnderlayTrailing
	CentrePrefixEnd int // byte offset just past the opening '^' where the centred-prefix content starts, -1 if none
	YAbsolute  *int32
	YRelative  *int32
	Halfway    bool
	Rotation   int32
}

// ParseUnderlaySyllable strips the underlay markup described in
// spec.md §4.6 step 9 from a raw syllable: '#' is a literal space, a
// trailing '-' or '=' sets Trailing, and a paired '^'..'^' marks a
// centred prefix span (the offset where its content starts recorded in
// CentrePrefixEnd).
// Absolute/relative y and halfway/rotation modifiers are parsed
// separately by the caller from the item's explicit fields and are left
// zero here.
func ParseUnderlaySyllable(raw string) ParsedSyllable {
	s := ParsedSyllable{CentrePrefixEnd: -1}
	text := raw

	switch {
	case strings.HasSuffix(text, "-"):
		s.Trailing = TrailingHyphen
		text = text[:len(text)-1]
	case strings.HasSuffix(text, "="):
		s.Trailing = TrailingExtender
		text = text[:len(text)-1]
	}

	if i := strings.IndexByte(text, '^'); i >= 0 {
		if j := strings.IndexByte(text[i+1:], '^'); j >= 0 {
			s.CentrePrefixEnd = i + 1 // offset where the prefix content starts
			text = text[:i] + text[i+1:i+1+j] + text[i+1+j+1:]
		}
	}

	text = strings.ReplaceAll(text, "#", " ")
	s.Text = text
	if strings.ContainsRune(text, ' ') {
		s.Style = UnderlayLeft
	} else {
		s.Style = UnderlayCentred
	}
	return s
}

// HyphenRun lays out a row of hyphens between two note positions, spaced
// evenly, for an in-progress underlay hyphen-continuation
// (spec.md §4.6 step 9 and §4.7 end-of-line handling).
func HyphenRun(startX, endX, y int32, hyphenWidth, minGap int32) []Op {
	var b Builder
	if endX <= startX || hyphenWidth <= 0 {
		return b.Ops()
	}
	span := endX - startX
	count := int(span / (hyphenWidth + minGap))
	if count < 1 {
		count = 1
	}
	step := span / int32(count)
	for i := 0; i < count; i++ {
		x := startX + int32(i)*step
		b.Text(x, y, "-", 0)
	}
	return b.Ops()
}

// ExtenderLine lays out an extender from startX to endX at y, for a '='
// underlay continuation (spec.md §4.6 step 9). The line is a plain solid
// OpLine; no dash pattern is set.
func ExtenderLine(startX, endX, y int32) Op {
	return Op{Kind: OpLine, X: startX, Y: y, X2: endX, Y2: y}
}
