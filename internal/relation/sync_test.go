package relation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type item struct {
	ID uint
}

func lookup(known ...uint) func(uint) (*item, error) {
	set := make(map[uint]struct{}, len(known))
	for _, id := range known {
		set[id] = struct{}{}
	}
	return func(id uint) (*item, error) {
		if _, ok := set[id]; ok {
			return &item{ID: id}, nil
		}
		return nil, errors.New("record not found")
	}
}

func ids(items []item) []uint {
	out := make([]uint, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestResolveKeepsOnlyKnownIDs(t *testing.T) {
	got := Resolve([]uint{5, 999, 7}, lookup(5, 7))
	assert.ElementsMatch(t, []uint{5, 7}, ids(got))
}

func TestResolveUnknownIDsAreSilent(t *testing.T) {
	got := Resolve([]uint{999, 1000}, lookup(1, 2))
	assert.Empty(t, got)
}

func TestResolveIdempotent(t *testing.T) {
	find := lookup(1, 2, 3)
	first := Resolve([]uint{3, 1, 999}, find)
	second := Resolve([]uint{3, 1, 999}, find)
	assert.Equal(t, ids(first), ids(second))
	assert.ElementsMatch(t, []uint{1, 3}, ids(first))
}

func TestResolveDeduplicates(t *testing.T) {
	got := Resolve([]uint{4, 4, 4, 2}, lookup(2, 4))
	assert.Len(t, got, 2)
	assert.ElementsMatch(t, []uint{2, 4}, ids(got))
}

func TestResolveNilAndEmpty(t *testing.T) {
	find := lookup(1)
	assert.Empty(t, Resolve(nil, find))
	assert.Empty(t, Resolve([]uint{}, find))
}
