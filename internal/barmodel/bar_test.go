package barmodel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBarLeadsWithBarStartSentinel(t *testing.T) {
	b := NewBar(3)
	require.Equal(t, KindBarStart, b.At(b.Head()).Kind)
	require.Equal(t, 3, b.RepeatCount())
}

func TestAppendPreservesOrder(t *testing.T) {
	b := NewBar(1)
	i1 := b.Append(Item{Kind: KindNote})
	i2 := b.Append(Item{Kind: KindBarline})

	var kinds []Kind
	b.Walk(func(idx int, it *Item) { kinds = append(kinds, it.Kind) })
	require.Equal(t, []Kind{KindBarStart, KindNote, KindBarline}, kinds)
	require.Equal(t, i2, b.Next(i1))
}

func TestInsertAfterSplicesCorrectly(t *testing.T) {
	b := NewBar(1)
	note := b.Append(Item{Kind: KindNote})
	b.Append(Item{Kind: KindBarline})

	b.InsertAfter(note, Item{Kind: KindTie})

	var kinds []Kind
	b.Walk(func(idx int, it *Item) { kinds = append(kinds, it.Kind) })
	require.Equal(t, []Kind{KindBarStart, KindNote, KindTie, KindBarline}, kinds)
}

func TestRemoveUnlinksItem(t *testing.T) {
	b := NewBar(1)
	note := b.Append(Item{Kind: KindNote})
	bar := b.Append(Item{Kind: KindBarline})

	b.Remove(note)

	var kinds []Kind
	b.Walk(func(idx int, it *Item) { kinds = append(kinds, it.Kind) })
	require.Equal(t, []Kind{KindBarStart, KindBarline}, kinds)
	require.Equal(t, bar, b.Next(b.Head()))
}
