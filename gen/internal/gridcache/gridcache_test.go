package gridcache

import (
	"testing"

	"github.com/df-mc/biomegen/gen/biome"
)

func cells(w, h int, base biome.ID) []biome.ID {
	out := make([]biome.ID, w*h)
	for i := range out {
		out[i] = base + biome.ID(i)
	}
	return out
}

func TestExactHit(t *testing.T) {
	c := New(4)
	c.Put(1, 0, 0, 2, 2, 0, cells(2, 2, 10))
	got, ok := c.Get(1, 0, 0, 2, 2, 0)
	if !ok || got[3] != 13 {
		t.Fatalf("expected an exact hit, got %v, %v", got, ok)
	}
	if _, ok := c.Get(2, 0, 0, 2, 2, 0); ok {
		t.Fatalf("a different layer must miss")
	}
	if _, ok := c.Get(1, 0, 0, 2, 2, 5); ok {
		t.Fatalf("a different y must miss")
	}
	if s := c.Stats(); s.Hits != 1 || s.Misses != 2 {
		t.Fatalf("unexpected stats %+v", s)
	}
}

func TestContainedHit(t *testing.T) {
	c := New(4)
	c.Put(0, -2, -2, 4, 4, 0, cells(4, 4, 0))
	got, ok := c.Get(0, -1, -1, 2, 2, 0)
	if !ok {
		t.Fatalf("expected a window inside a cached grid to hit")
	}
	want := []biome.ID{5, 6, 9, 10}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sub window = %v, want %v", got, want)
		}
	}
	if _, ok := c.Get(0, 1, 1, 2, 2, 0); ok {
		t.Fatalf("a window leaving the cached grid must miss")
	}
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := New(2)
	c.Put(0, 0, 0, 1, 1, 0, cells(1, 1, 1))
	c.Put(0, 1, 0, 1, 1, 0, cells(1, 1, 2))
	c.Get(0, 0, 0, 1, 1, 0)
	c.Put(0, 2, 0, 1, 1, 0, cells(1, 1, 3))

	if _, ok := c.Get(0, 1, 0, 1, 1, 0); ok {
		t.Fatalf("the least recently used grid must have been evicted")
	}
	if _, ok := c.Get(0, 0, 0, 1, 1, 0); !ok {
		t.Fatalf("the recently used grid must survive")
	}
	if c.Len() != 2 || c.Stats().Evictions != 1 {
		t.Fatalf("unexpected length %d or stats %+v", c.Len(), c.Stats())
	}
}

func TestDisabled(t *testing.T) {
	c := New(0)
	c.Put(0, 0, 0, 1, 1, 0, cells(1, 1, 1))
	if _, ok := c.Get(0, 0, 0, 1, 1, 0); ok || c.Len() != 0 {
		t.Fatalf("a cache without capacity must never hit")
	}
}
