package font

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"seehuhn.de/go/postscript/psenc"
	"seehuhn.de/go/sfnt/funit"
)

// adobeStandardNameToUnicode maps the handful of Adobe standard-encoding
// glyph names the AFM loader actually needs to resolve into Unicode code
// points. PMW only needs this mapping for glyphs that can occur in a
// StartCharMetrics section; psenc.StandardEncodingRev gives us the
// canonical name set to validate against, but (being a PostScript-code
// table, not a Unicode table) it cannot supply the Unicode side itself.
var adobeStandardNameToUnicode = map[string]rune{
	"space": 0x0020, "exclam": 0x0021, "quotedbl": 0x0022, "numbersign": 0x0023,
	"dollar": 0x0024, "percent": 0x0025, "ampersand": 0x0026, "quoteright": 0x2019,
	"parenleft": 0x0028, "parenright": 0x0029, "asterisk": 0x002A, "plus": 0x002B,
	"comma": 0x002C, "hyphen": 0x002D, "period": 0x002E, "slash": 0x002F,
	"zero": '0', "one": '1', "two": '2', "three": '3', "four": '4',
	"five": '5', "six": '6', "seven": '7', "eight": '8', "nine": '9',
	"colon": ':', "semicolon": ';', "less": '<', "equal": '=', "greater": '>',
	"question": '?', "at": '@',
	"A": 'A', "B": 'B', "C": 'C', "D": 'D', "E": 'E', "F": 'F', "G": 'G',
	"H": 'H', "I": 'I', "J": 'J', "K": 'K', "L": 'L', "M": 'M', "N": 'N',
	"O": 'O', "P": 'P', "Q": 'Q', "R": 'R', "S": 'S', "T": 'T', "U": 'U',
	"V": 'V', "W": 'W', "X": 'X', "Y": 'Y', "Z": 'Z',
	"bracketleft": '[', "backslash": '\\', "bracketright": ']', "asciicircum": '^',
	"underscore": '_', "quoteleft": 0x2018,
	"a": 'a', "b": 'b', "c": 'c', "d": 'd', "e": 'e', "f": 'f', "g": 'g',
	"h": 'h', "i": 'i', "j": 'j', "k": 'k', "l": 'l', "m": 'm', "n": 'n',
	"o": 'o', "p": 'p', "q": 'q', "r": 'r', "s": 's', "t": 't', "u": 'u',
	"v": 'v', "w": 'w', "x": 'x', "y": 'y', "z": 'z',
	"braceleft": '{', "bar": '|', "braceright": '}', "asciitilde": '~',
	"hyphensoft": 0x00AD, "adieresis": 0x00E4, "aring": 0x00E5, "ccedilla": 0x00E7,
	"eacute": 0x00E9, "ntilde": 0x00F1, "odieresis": 0x00F6, "udieresis": 0x00FC,
	"dagger": 0x2020, "degree": 0x00B0, "cent": 0x00A2, "sterling": 0x00A3,
	"section": 0x00A7, "bullet": 0x2022, "paragraph": 0x00B6, "germandbls": 0x00DF,
	"registered": 0x00AE, "copyright": 0x00A9, "trademark": 0x2122, "acute": 0x00B4,
	"dieresis": 0x00A8, "AE": 0x00C6, "oslash": 0x00F8, "infinity": 0x221E,
	"plusminus": 0x00B1, "lessequal": 0x2264, "greaterequal": 0x2265, "yen": 0x00A5,
	"mu": 0x00B5, "partialdiff": 0x2202, "summation": 0x2211, "product": 0x220F,
	"pi": 0x03C0, "integral": 0x222B, "ordfeminine": 0x00AA, "ordmasculine": 0x00BA,
	"Omega": 0x03A9, "ae": 0x00E6, "oe": 0x0153, "questiondown": 0x00BF,
	"exclamdown": 0x00A1, "logicalnot": 0x00AC, "radical": 0x221A, "florin": 0x0192,
	"approxequal": 0x2248, "Delta": 0x2206, "guillemotleft": 0x00AB,
	"guillemotright": 0x00BB, "ellipsis": 0x2026, "Agrave": 0x00C0, "Atilde": 0x00C3,
	"Otilde": 0x00D5, "OE": 0x0152, "endash": 0x2013, "emdash": 0x2014,
	"quotedblleft": 0x201C, "quotedblright": 0x201D, "quoteleft2": 0x2018,
	"divide": 0x00F7, "lozenge": 0x25CA, "ydieresis": 0x00FF, "Ydieresis": 0x0178,
	"fraction": 0x2044, "currency": 0x00A4, "guilsinglleft": 0x2039,
	"guilsinglright": 0x203A, "fi": 0xFB01, "fl": 0xFB02, "daggerdbl": 0x2021,
	"periodcentered": 0x00B7, "quotesinglbase": 0x201A, "quotedblbase": 0x201E,
	"perthousand": 0x2030, "Acircumflex": 0x00C2, "Ecircumflex": 0x00CA,
	"Aacute": 0x00C1, "Edieresis": 0x00CB, "Egrave": 0x00C8, "Iacute": 0x00CD,
	"Icircumflex": 0x00CE, "Idieresis": 0x00CF, "Igrave": 0x00CC, "Oacute": 0x00D3,
	"Ocircumflex": 0x00D4, "apple": 0xF8FF, "Ograve": 0x00D2, "Uacute": 0x00DA,
	"Ucircumflex": 0x00DB, "Ugrave": 0x00D9, "dotlessi": 0x0131, "circumflex": 0x02C6,
	"tilde": 0x02DC, "macron": 0x00AF, "breve": 0x02D8, "dotaccent": 0x02D9,
	"ring": 0x02DA, "cedilla": 0x00B8, "hungarumlaut": 0x02DD, "ogonek": 0x02DB,
	"caron": 0x02C7, "lslash": 0x0142, "Lslash": 0x0141, "Scaron": 0x0160,
	"zcaron": 0x017E, "Zcaron": 0x017D, "brokenbar": 0x00A6, "Eth": 0x00D0,
	"eth": 0x00F0, "Yacute": 0x00DD, "yacute": 0x00FD, "Thorn": 0x00DE,
	"thorn": 0x00FE, "minus": 0x2212, "multiply": 0x00D7, "onesuperior": 0x00B9,
	"twosuperior": 0x00B2, "threesuperior": 0x00B3, "onehalf": 0x00BD,
	"onequarter": 0x00BC, "threequarters": 0x00BE, "franc": 0x20A3,
	"Gbreve": 0x011E, "gbreve": 0x011F, "Idotaccent": 0x0130, "scaron": 0x0161,
	"Scedilla": 0x015E, "scedilla": 0x015F, "Cacute": 0x0106, "cacute": 0x0107,
	"Ccaron": 0x010C, "ccaron": 0x010D, "dcroat": 0x0111,
}

func resolveStandardName(name string) (rune, bool) {
	if r, ok := adobeStandardNameToUnicode[name]; ok {
		return r, true
	}
	// Fall back to whatever PostScript code the reference standard
	// encoding gives this glyph, so an AFM listing an unusual name still
	// gets a sensible (if approximate) position instead of being dropped.
	for code, n := range psenc.StandardEncoding {
		if n == name {
			return rune(code), true
		}
	}
	return 0, false
}

// parseAFM reads one AFM file, populating a new *Struct per spec.md §4.1.
// nameToCode is the name->code encoding-vector tree parsed from the font's
// .utr side file, if any; non-standard-encoded fonts resolve glyph names
// against it before falling back to psenc.StandardEncodingRev.
func parseAFM(name, path string, nameToCode map[string]int) (*Struct, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	f := NewStruct(name)
	sc := bufio.NewScanner(fh)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	sawStartCharMetrics := false
	nextFreeOffset := int32(0)

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		key := fields[0]

		switch key {
		case "EncodingScheme":
			if len(fields) >= 2 && fields[1] == "AdobeStandardEncoding" {
				f.Flags |= FlagStandardEncoding
			}
		case "IsFixedPitch":
			if len(fields) >= 2 && fields[1] == "true" {
				f.Flags |= FlagFixedPitch
			}
		case "Ascender":
			f.Ascent = funit.Int16(atoi(fields, 1))
		case "Descender":
			f.Descent = funit.Int16(atoi(fields, 1))
		case "CapHeight":
			f.CapHeight = funit.Int16(atoi(fields, 1))
		case "ItalicAngle":
			if len(fields) >= 2 {
				v, _ := strconv.ParseFloat(fields[1], 64)
				f.ItalicAngle = v
			}
		case "StdVW":
			f.StemV = funit.Int16(atoi(fields, 1))
		case "FontBBox":
			if len(fields) >= 5 {
				f.BBox = BBox{
					X0: funit.Int16(parseIntField(fields[1])),
					Y0: funit.Int16(parseIntField(fields[2])),
					X1: funit.Int16(parseIntField(fields[3])),
					Y1: funit.Int16(parseIntField(fields[4])),
				}
			}
		case "StartCharMetrics":
			sawStartCharMetrics = true
		case "EndCharMetrics":
			// nothing to do
		case "StartKernPairs", "StartKernPairs0":
			if err := parseKernPairs(sc, f, nameToCode); err != nil {
				return nil, err
			}
		default:
			if sawStartCharMetrics && strings.HasPrefix(line, "C ") {
				nextFreeOffset = parseMetricLine(f, line, nextFreeOffset, nameToCode)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !sawStartCharMetrics {
		return nil, fmt.Errorf("missing StartCharMetrics section")
	}

	sort.SliceStable(f.Kerns, func(i, j int) bool { return f.Kerns[i].Key < f.Kerns[j].Key })
	return f, nil
}

func atoi(fields []string, i int) int {
	if i >= len(fields) {
		return 0
	}
	return parseIntField(fields[i])
}

func parseIntField(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

// parseMetricLine handles one "C n ; WX w ; [B x0 y0 x1 y1] ; N name ; ..."
// line. It returns the (possibly advanced) next-free secondary-tree
// offset. nameToCode is the font's UTR-derived encoding vector, consulted
// for non-standard-encoded fonts before psenc.StandardEncodingRev.
func parseMetricLine(f *Struct, line string, nextFreeOffset int32, nameToCode map[string]int) int32 {
	var wx int32
	var name string
	var bx0, by0, bx1, by1 int
	haveBBox := false

	for _, clause := range strings.Split(line, ";") {
		clause = strings.TrimSpace(clause)
		if clause == "" {
			continue
		}
		fields := strings.Fields(clause)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "WX":
			if len(fields) >= 2 {
				v, _ := strconv.Atoi(fields[1])
				wx = int32(v)
			}
		case "N":
			if len(fields) >= 2 {
				name = fields[1]
			}
		case "B":
			// "B x0 y0 x1 y1" — careful: glyph names may themselves
			// contain the literal letter B, which is why this match is
			// anchored on the clause's first field rather than a
			// substring search.
			if len(fields) >= 5 {
				bx0, _ = strconv.Atoi(fields[1])
				by0, _ = strconv.Atoi(fields[2])
				bx1, _ = strconv.Atoi(fields[3])
				by1, _ = strconv.Atoi(fields[4])
				haveBBox = true
			}
		}
	}

	if name == "" {
		return nextFreeOffset
	}

	idx := -1
	if f.Flags&FlagStandardEncoding != 0 {
		if r, ok := resolveStandardName(name); ok {
			if int(r) < LowCharLimit {
				idx = int(r)
			} else if off, ok := f.HighTree[r]; ok {
				idx = LowCharLimit + int(off)
			} else if int(nextFreeOffset)+LowCharLimit < FontWidthsSize {
				f.HighTree[r] = nextFreeOffset
				idx = LowCharLimit + int(nextFreeOffset)
				nextFreeOffset++
			}
		}
	} else if code, ok := resolveNonStandardCode(name, nameToCode); ok {
		idx = code
	}

	if idx >= 0 && idx < FontWidthsSize {
		f.Widths[idx] = wx
		if haveBBox {
			f.R2LAdjusts[idx] = int32(bx0 + bx1)
		}
	}
	return nextFreeOffset
}

func parseKernPairs(sc *bufio.Scanner, f *Struct, nameToCode map[string]int) error {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "EndKernPairs") {
			return nil
		}
		fields := strings.Fields(line)
		if len(fields) < 4 || fields[0] != "KPX" {
			continue
		}
		leftName, rightName := fields[1], fields[2]
		value, _ := strconv.Atoi(fields[3])
		if value == 0 {
			continue
		}
		leftCode, ok1 := resolveCode(f, leftName, nameToCode)
		rightCode, ok2 := resolveCode(f, rightName, nameToCode)
		if !ok1 || !ok2 || leftCode > 0xFFFF || rightCode > 0xFFFF {
			continue
		}
		f.Kerns = append(f.Kerns, KernPair{Key: packKern(uint16(leftCode), uint16(rightCode)), Value: int32(value)})
	}
	return fmt.Errorf("unexpected EOF in kern pairs")
}

// resolveCode resolves a glyph name to its character code: standard-encoded
// fonts go through resolveStandardName, non-standard-encoded fonts consult
// the UTR-derived nameToCode vector before falling back to
// psenc.StandardEncodingRev.
func resolveCode(f *Struct, name string, nameToCode map[string]int) (rune, bool) {
	if f.Flags&FlagStandardEncoding != 0 {
		return resolveStandardName(name)
	}
	if code, ok := resolveNonStandardCode(name, nameToCode); ok {
		return rune(code), true
	}
	return 0, false
}

// resolveNonStandardCode resolves a glyph name for a non-standard-encoded
// font: the UTR side file's own encoding vector takes priority (spec.md
// §4.1), falling back to the Adobe standard encoding's reverse map.
func resolveNonStandardCode(name string, nameToCode map[string]int) (int, bool) {
	if nameToCode != nil {
		if code, ok := nameToCode[name]; ok {
			return code, true
		}
	}
	if code, ok := psenc.StandardEncodingRev[name]; ok {
		return int(code), true
	}
	return 0, false
}
