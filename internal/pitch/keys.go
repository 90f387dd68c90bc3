package pitch

// Key identifies one of PMW's standard key signatures by table index, the
// same indexing scheme as the C source's tp_keytable: natural majors 0-6,
// sharp majors 7-13, flat majors 14-20, natural minors 21-27, sharp minors
// 28-34, flat minors 35-41. Index 255 is reserved as "no such key".
type Key uint8

const NoKey Key = 255

// letterOf returns the note letter a major/minor key table entry is rooted
// on; used only for documentation/debugging, not by the transposition
// algorithm itself (which works purely off table entries).
var letterOf = [...]NoteLetter{
	0: LetterA, 1: LetterB, 2: LetterC, 3: LetterD, 4: LetterE, 5: LetterF, 6: LetterG,
}

// keyTranspose gives, for each key, the key reached by transposing that key
// up by one semitone. A zero entry marks a key slot that should never be
// reached (non-existent key in that table region).
var keyTranspose = [...]Key{
	// natural
	15, 2, 17, 18, 5, 20, 14,
	// sharp
	0, 0, 3, 0, 0, 6, 0,
	// flat
	0, 1, 2, 3, 4, 5, 6,
	// minor
	36, 23, 30, 39, 26, 33, 34,
	// sharp minor
	22, 0, 24, 25, 0, 27, 21,
	// flat minor
	21, 22, 23, 24, 25, 26, 27,
}

// enharmonicPair is one entry of the enharmonic-override table: a key that
// is never automatically selected by keyTranspose, and the key it should be
// rewritten to.
type enharmonicPair struct {
	from, to Key
}

var enharmonicKeys = []enharmonicPair{
	{16, 1},  // Cb = B
	{9, 17},  // C# = Db
	{12, 20}, // F# = Gb
	{35, 34}, // Abm = G#m
	{31, 39}, // D#m = Ebm
	{28, 36}, // A#m = Bbm
}

// KeyTransposeRule lets a caller override the default one-semitone-at-a-time
// key transposition for a specific (key, semitones) pair, the equivalent of
// a custom "KeyTranspose" header directive.
type KeyTransposeRule struct {
	From     Key
	Semitones int
	To       Key
}

// letterChanges tracks how many letter-steps a key transposition advanced
// by, consumed by TransposeNote's letter-stepping branch.
var letterChanges int

// LastLetterChange returns the letter-change count recorded by the most
// recent call to TransposeKey.
func LastLetterChange() int { return letterChanges }

// TransposeKey transposes a key signature by the given number of
// quarter-tones, applying any matching custom rule in rules first, then
// falling back to the standard one-semitone-at-a-time table walk. It
// records the number of letter-name changes made, for use by
// TransposeNote.
func TransposeKey(key Key, quarterTones int, rules []KeyTransposeRule) (Key, error) {
	for _, r := range rules {
		if r.From == key && r.Semitones*2 == quarterTones {
			letterChanges = signedLetterDistance(key, r.To, quarterTones)
			return enharmonicOverride(r.To), nil
		}
	}

	if quarterTones%2 != 0 {
		return key, errOddTranspose
	}
	semitones := quarterTones / 2

	cur := key
	step := 1
	if semitones < 0 {
		step = -1
	}
	for i := 0; i < abs(semitones); i++ {
		next := keyTranspose[cur]
		if step < 0 {
			next = reverseKeyLookup(cur)
		}
		if next == 0 && cur != 0 {
			return key, errBadKeyTranspose
		}
		cur = next
	}
	// The letter-change count depends only on the two endpoint keys, not
	// the path walked between them: every key table entry's index mod 7
	// gives its root letter (A-G), so the net change is the difference of
	// the final and starting keys' letters, corrected into the requested
	// transposition's direction.
	letterChanges = signedLetterDistance(key, cur, quarterTones)
	return enharmonicOverride(cur), nil
}

// reverseKeyLookup finds the key that transposes up by a semitone into cur,
// used when transposing downward.
func reverseKeyLookup(cur Key) Key {
	for k, v := range keyTranspose {
		if Key(v) == cur {
			return Key(k)
		}
	}
	return cur
}

// letterStepOf returns the raw signed letter-name distance between two keys:
// every key table entry's index mod 7 gives its root letter (A-G), in the
// same order across the natural/sharp/flat/minor groups, so the difference
// of the two indices mod 7 is the number of letter-name steps between them
// before the ±7 direction correction applied by signedLetterDistance.
func letterStepOf(from, to Key) int {
	return int(to%7) - int(from%7)
}

// signedLetterDistance derives TransposeNote's letter-change count from a
// key transposition's endpoints, correcting the raw letter distance into
// the requested transposition's direction: an upward transposition can
// never report a negative letter change and vice versa.
func signedLetterDistance(from, to Key, quarterTones int) int {
	d := letterStepOf(from, to)
	if quarterTones > 0 && d < 0 {
		d += 7
	}
	if quarterTones < 0 && d > 0 {
		d -= 7
	}
	return d
}

func enharmonicOverride(key Key) Key {
	for _, p := range enharmonicKeys {
		if p.from == key {
			return p.to
		}
	}
	return key
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
