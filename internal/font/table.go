package font

// ID identifies one of a movement's logical font slots.
type ID int

const (
	Roman ID = iota
	Italic
	Bold
	BoldItalic
	Music
	Symbol
	firstExtra
)

// Table maps logical font ids to loaded font structures, plus an
// open-ended range of "extra-N" slots.
type Table struct {
	byID  map[ID]*Struct
	extra map[int]*Struct
}

// NewTable returns an empty font table.
func NewTable() *Table {
	return &Table{byID: map[ID]*Struct{}, extra: map[int]*Struct{}}
}

// Bind records the font for a logical slot.
func (t *Table) Bind(id ID, f *Struct) { t.byID[id] = f }

// BindExtra records the font for extra slot n (n >= 1).
func (t *Table) BindExtra(n int, f *Struct) { t.extra[n] = f }

// Resolve returns the font bound to id, falling back to Roman if the slot
// (typically an unbound extra-N slot) was never bound — a supplemented
// behaviour recovered from original_source/src/out.c rather than indexing
// out of range (spec.md §4, "Supplemented features").
func (t *Table) Resolve(id ID) *Struct {
	if f, ok := t.byID[id]; ok {
		return f
	}
	return t.byID[Roman]
}

// ResolveExtra returns the extra-N font, falling back to Roman.
func (t *Table) ResolveExtra(n int) *Struct {
	if f, ok := t.extra[n]; ok {
		return f
	}
	return t.byID[Roman]
}
