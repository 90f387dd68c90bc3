package output

// WideStaveChars are the four high-code PMW-Music wide-stave characters
// (10pt stave-segment glyphs) that must be remapped down to just after
// the last positive-width character, to avoid a huge run of zero-width
// entries in a font's widths array (spec.md §4.10,
// "adjust_wide_stave_table").
var WideStaveChars = [4]rune{0xF020, 0xF021, 0xF022, 0xF023}

// AdjustWideStaveTable returns the remapping from each WideStaveChars
// entry to a compact code placed immediately after lastPositiveWidth.
func AdjustWideStaveTable(lastPositiveWidth int32) map[rune]int32 {
	out := make(map[rune]int32, len(WideStaveChars))
	next := lastPositiveWidth + 1
	for _, c := range WideStaveChars {
		out[c] = next
		next++
	}
	return out
}

// StaveUseWideChars decides, given the gap to fill and whether the font
// declares stave_use_widechars, whether a wide (10pt) or narrow (1pt)
// stave-segment character should be used to compose a stave line.
func StaveUseWideChars(useWideChars bool, gapMillipt int32) bool {
	return useWideChars && gapMillipt >= 10000
}

// ComposeStave returns the number of stave-segment characters needed to
// span [leftX, rightX) using a segment of the given width.
func ComposeStave(leftX, rightX, segmentWidth int32) int {
	if segmentWidth <= 0 || rightX <= leftX {
		return 0
	}
	span := rightX - leftX
	n := int(span / segmentWidth)
	if span%segmentWidth != 0 {
		n++
	}
	return n
}
