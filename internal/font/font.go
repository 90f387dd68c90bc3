// Package font loads AFM (and optional UTR) font metric files into the
// in-memory structure the layout core measures and positions text with
// (component F of the layout core).
package font

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"seehuhn.de/go/sfnt/funit"
)

// FontWidthsSize is the size of the per-glyph widths table. Codes below
// LowCharLimit are indexed directly by Unicode code point (for
// standard-encoded fonts) or by the font's own character code; codes from
// LowCharLimit up to FontWidthsSize-1 hold overflow entries assigned by
// the secondary name tree.
const (
	LowCharLimit    = 256
	FontWidthsSize  = 2048
	unsetWidth      = -1
)

// Flag bits recorded per font.
type Flags uint8

const (
	FlagStandardEncoding Flags = 1 << iota
	FlagFixedPitch
	FlagIncludeInOutput
	FlagUsed
	FlagUsedLowerHalf
	FlagUsedUpperHalf
)

// KernPair is one entry of a font's kern table, packed as (left<<16)|right
// for binary search. Each half of the uint32 key holds 16 bits, so code
// points above U+FFFF do not fit; 64-bit keys would change both packKern
// and the Key field's type.
type KernPair struct {
	Key   uint32
	Value int32
}

// UTRTranslation is one entry of a font's optional Unicode-translation
// table, sorted by Unicode code point for binary search.
type UTRTranslation struct {
	Unicode rune
	PSCode  int
}

// BBox is a font bounding box in font design units.
type BBox struct {
	X0, Y0, X1, Y1 funit.Int16
}

// Struct is the in-memory representation of one loaded font (the "Font
// structure" of spec.md §3).
type Struct struct {
	Name string

	Widths      [FontWidthsSize]int32 // -1 if unset
	R2LAdjusts  [FontWidthsSize]int32
	Heights     []int32 // nil if the font has no heights table
	Kerns       []KernPair
	UTR         []UTRTranslation
	Encoding    []string // nil unless a non-standard encoding vector was loaded
	HighTree    map[rune]int32 // Unicode -> offset above LowCharLimit, standard-encoded fonts only

	Flags Flags

	Ascent, Descent, CapHeight funit.Int16
	ItalicAngle                float64
	StemV                      funit.Int16
	BBox                       BBox
}

// NewStruct returns an empty font structure with all widths unset.
func NewStruct(name string) *Struct {
	f := &Struct{Name: name, HighTree: map[rune]int32{}}
	for i := range f.Widths {
		f.Widths[i] = unsetWidth
	}
	for i := range f.R2LAdjusts {
		f.R2LAdjusts[i] = 0
	}
	return f
}

// WidthAt returns the raw (unscaled, per-1000-unit) width at code point c,
// or (0, false) if unset.
func (f *Struct) WidthAt(c rune) (int32, bool) {
	idx := f.indexFor(c)
	if idx < 0 || idx >= FontWidthsSize {
		return 0, false
	}
	w := f.Widths[idx]
	if w == unsetWidth {
		return 0, false
	}
	return w, true
}

// indexFor maps a Unicode code point to a widths-table index, translating
// high code points into the secondary-tree offset for standard-encoded
// fonts, and leaving non-standard-encoded fonts indexed by their own code.
func (f *Struct) indexFor(c rune) int {
	if f.Flags&FlagStandardEncoding == 0 {
		return int(c)
	}
	if int(c) < LowCharLimit {
		return int(c)
	}
	if off, ok := f.HighTree[c]; ok {
		return LowCharLimit + int(off)
	}
	return -1
}

// KernValue returns the kern adjustment for the (prev, cur) pair, or 0 if
// none is recorded. Kerning for code points above U+FFFF is deliberately
// disabled (spec.md §9 Open Questions): packKern only has room for two
// 16-bit halves, so such a pair simply never matches.
func (f *Struct) KernValue(prev, cur rune) int32 {
	if prev == 0 || prev > 0xFFFF || cur > 0xFFFF {
		return 0
	}
	key := packKern(uint16(prev), uint16(cur))
	i := sort.Search(len(f.Kerns), func(i int) bool { return f.Kerns[i].Key >= key })
	if i < len(f.Kerns) && f.Kerns[i].Key == key {
		return f.Kerns[i].Value
	}
	return 0
}

func packKern(left, right uint16) uint32 {
	return uint32(left)<<16 | uint32(right)
}

// HeightAt returns the heights-table entry for c (only codes below 256 are
// ever recorded), or (0, false).
func (f *Struct) HeightAt(c rune) (int32, bool) {
	if f.Heights == nil || c < 0 || int(c) >= len(f.Heights) {
		return 0, false
	}
	return f.Heights[c], true
}

// postProcess applies invariants that must hold once metric loading is
// complete:
//   - a standard-encoded font's soft hyphen (173) inherits the width of
//     hyphen-minus (45) if it was never set explicitly (spec.md §3, §8).
func (f *Struct) postProcess() {
	if f.Flags&FlagStandardEncoding == 0 {
		return
	}
	if f.Widths[173] == unsetWidth && f.Widths[45] != unsetWidth {
		f.Widths[173] = f.Widths[45]
		f.R2LAdjusts[173] = f.R2LAdjusts[45]
	}
}

// Load locates "<name>.afm" on dirs (a colon-separated search path
// supplied as a slice) and loads it, plus an optional "<name>.utr" found
// the same way. Failing to find the AFM file is a fatal error per spec.md
// §7; a missing UTR file is not an error.
func Load(name string, dirs []string) (*Struct, error) {
	path, err := findOnPath(name+".afm", dirs)
	if err != nil {
		return nil, fmt.Errorf("font: fatal: cannot find AFM file for %q on search path: %w", name, err)
	}

	// The UTR side file's /name code encoding-vector tree must exist
	// before the AFM scan runs, so a non-standard-encoded font's metric
	// lines (keyed by glyph name) can be resolved against it instead of
	// only the Adobe standard encoding (spec.md §4.1).
	var utrSt *utrState
	if utrPath, err := findOnPath(name+".utr", dirs); err == nil {
		utrSt, err = parseUTRFile(utrPath)
		if err != nil {
			return nil, fmt.Errorf("font: fatal: malformed UTR file %s: %w", utrPath, err)
		}
	}

	var nameToCode map[string]int
	if utrSt != nil {
		nameToCode = utrSt.nameToCode
	}

	f, err := parseAFM(name, path, nameToCode)
	if err != nil {
		return nil, fmt.Errorf("font: fatal: malformed AFM file %s: %w", path, err)
	}

	if utrSt != nil {
		applyUTRState(f, utrSt)
	}

	f.postProcess()
	return f, nil
}

func findOnPath(filename string, dirs []string) (string, error) {
	for _, d := range dirs {
		for _, part := range strings.Split(d, ":") {
			candidate := filepath.Join(part, filename)
			if fileExists(candidate) {
				return candidate, nil
			}
		}
	}
	return "", fmt.Errorf("%s not found", filename)
}
