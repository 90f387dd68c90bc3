package barsetter

// BarNumberPolicy mirrors barnumber_interval: positive N prints every N
// bars, negative prints only at line starts, zero disables automatic
// numbering (spec.md §4.7 "Bar numbering").
type BarNumberPolicy int

// ShouldPrintBarNumber reports whether a bar numbered absBarNumber,
// sitting at line-relative index lineIndex (0 at a line start), should
// have its number printed, honouring an explicit [barnumber] force
// override.
func ShouldPrintBarNumber(policy BarNumberPolicy, absBarNumber, lineIndex int, forced bool) bool {
	if forced {
		return true
	}
	switch {
	case policy > 0:
		return absBarNumber%int(policy) == 0
	case policy < 0:
		return lineIndex == 0
	default:
		return false
	}
}

// TextFlags mirrors the boxed/ringed text presentation flags a printed
// bar number may carry.
type TextFlags uint8

const (
	TextBoxed TextFlags = 1 << iota
	TextRinged
)
