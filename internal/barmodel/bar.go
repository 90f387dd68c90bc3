package barmodel

// Bar is one bar's item-stream arena for a single stave: items are stored
// by index, linked via Item.Prev/Next, so continuation records elsewhere
// can hold stable back-references across insertions/truncations (Design
// Notes §9).
type Bar struct {
	items []Item
	head  int
	tail  int
}

const noIndex = -1

// NewBar returns a new bar whose only item is the leading b_start sentinel
// carrying repeatCount (spec.md §3: "The leading item of every bar is a
// sentinel of type b_start").
func NewBar(repeatCount int) *Bar {
	b := &Bar{head: noIndex, tail: noIndex}
	b.Append(Item{Kind: KindBarStart, RepeatCount: repeatCount})
	return b
}

// Append adds it to the end of the bar's list and returns its index.
func (b *Bar) Append(it Item) int {
	it.Prev = b.tail
	it.Next = noIndex
	idx := len(b.items)
	b.items = append(b.items, it)
	if b.tail != noIndex {
		b.items[b.tail].Next = idx
	} else {
		b.head = idx
	}
	b.tail = idx
	return idx
}

// InsertAfter inserts it immediately after the item at index after,
// returning the new item's index. Used for pagination-time insertions
// (e.g. synthesised warning bars, inserted ties).
func (b *Bar) InsertAfter(after int, it Item) int {
	oldNext := b.items[after].Next
	idx := len(b.items)
	it.Prev = after
	it.Next = oldNext
	b.items = append(b.items, it)
	b.items[after].Next = idx
	if oldNext != noIndex {
		b.items[oldNext].Prev = idx
	} else {
		b.tail = idx
	}
	return idx
}

// Remove unlinks the item at idx without compacting the underlying slice
// (its slot becomes unreachable garbage within the arena, reclaimed only
// when the whole bar is dropped — acceptable since the working set is
// bounded by one bar at a time per the Design Notes' slab-arena guidance).
func (b *Bar) Remove(idx int) {
	it := b.items[idx]
	if it.Prev != noIndex {
		b.items[it.Prev].Next = it.Next
	} else {
		b.head = it.Next
	}
	if it.Next != noIndex {
		b.items[it.Next].Prev = it.Prev
	} else {
		b.tail = it.Prev
	}
}

// At returns the item stored at idx (valid until the next Remove of idx).
func (b *Bar) At(idx int) *Item { return &b.items[idx] }

// Head returns the index of the first item (always the b_start sentinel),
// or noIndex if the bar is empty (never true after NewBar).
func (b *Bar) Head() int { return b.head }

// Next returns the index following idx, or noIndex at the end of the list.
func (b *Bar) Next(idx int) int { return b.items[idx].Next }

// Walk calls fn for every live item in list order.
func (b *Bar) Walk(fn func(idx int, it *Item)) {
	for i := b.head; i != noIndex; i = b.items[i].Next {
		fn(i, &b.items[i])
	}
}

// RepeatCount returns the bar's repeat-count number, carried by the
// leading b_start sentinel.
func (b *Bar) RepeatCount() int {
	return b.items[b.head].RepeatCount
}
