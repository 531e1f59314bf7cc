// Package gridcache implements a bounded least recently used store of layer
// grids. Grids are looked up by the window they cover: an exact window is
// found through a hashed index, and a request for a window inside a cached
// grid of the same layer is served from that grid.
package gridcache

import (
	"encoding/binary"

	"github.com/brentp/intintmap"
	"github.com/cespare/xxhash/v2"
	"github.com/df-mc/biomegen/gen/biome"
)

// Key identifies a grid by the layer that produced it and its window.
type Key struct {
	Layer, X, Z, W, H, Y int
}

func (k Key) hash() int64 {
	var b [48]byte
	for i, v := range [...]int{k.Layer, k.X, k.Z, k.W, k.H, k.Y} {
		binary.LittleEndian.PutUint64(b[i*8:], uint64(int64(v)))
	}
	return int64(xxhash.Sum64(b[:]))
}

func (k Key) contains(o Key) bool {
	return k.Layer == o.Layer && k.Y == o.Y &&
		o.X >= k.X && o.Z >= k.Z && o.X+o.W <= k.X+k.W && o.Z+o.H <= k.Z+k.H
}

type slot struct {
	key        Key
	hash       int64
	cells      []biome.ID
	prev, next int
}

// Stats holds the counters of a Cache.
type Stats struct {
	Hits, Misses, Evictions uint64
}

// Cache is owned by a single generator and is not safe for concurrent use.
// The zero value is not usable; use New.
type Cache struct {
	capacity int
	index    *intintmap.Map
	slots    []slot
	// head is the most recently used slot, tail the least. -1 when empty.
	head, tail int
	stats      Stats
}

// New returns a cache holding at most capacity grids. A capacity of zero or
// less disables caching.
func New(capacity int) *Cache {
	c := &Cache{capacity: max(capacity, 0)}
	c.Reset()
	return c
}

// Reset drops every cached grid. Counters are kept.
func (c *Cache) Reset() {
	c.index = intintmap.New(max(c.capacity, 1)*2, 0.6)
	c.slots = make([]slot, 0, c.capacity)
	c.head, c.tail = -1, -1
}

// Len returns the number of cached grids.
func (c *Cache) Len() int {
	return len(c.slots)
}

// Capacity ...
func (c *Cache) Capacity() int {
	return c.capacity
}

// Stats returns a snapshot of the counters.
func (c *Cache) Stats() Stats {
	return c.stats
}

// Get returns the cells of the window passed if a cached grid covers it. The
// slice returned must not be modified.
func (c *Cache) Get(layer, x, z, w, h, y int) ([]biome.ID, bool) {
	if c.capacity == 0 {
		return nil, false
	}
	k := Key{Layer: layer, X: x, Z: z, W: w, H: h, Y: y}

	if i, ok := c.index.Get(k.hash()); ok && c.slots[i].key == k {
		c.touch(int(i))
		c.stats.Hits++
		return c.slots[i].cells, true
	}
	for i := c.head; i >= 0; i = c.slots[i].next {
		s := &c.slots[i]
		if !s.key.contains(k) {
			continue
		}
		out := make([]biome.ID, w*h)
		for j := 0; j < h; j++ {
			row := (z-s.key.Z+j)*s.key.W + (x - s.key.X)
			copy(out[j*w:(j+1)*w], s.cells[row:row+w])
		}
		c.touch(i)
		c.stats.Hits++
		return out, true
	}
	c.stats.Misses++
	return nil, false
}

// Put stores the cells of a window, evicting the least recently used grid if
// the cache is full. cells must not be modified afterwards.
func (c *Cache) Put(layer, x, z, w, h, y int, cells []biome.ID) {
	if c.capacity == 0 {
		return
	}
	k := Key{Layer: layer, X: x, Z: z, W: w, H: h, Y: y}
	hash := k.hash()

	if i, ok := c.index.Get(hash); ok {
		c.slots[i].key, c.slots[i].cells = k, cells
		c.touch(int(i))
		return
	}
	var i int
	if len(c.slots) < c.capacity {
		c.slots = append(c.slots, slot{prev: -1, next: -1})
		i = len(c.slots) - 1
	} else {
		i = c.tail
		c.unlink(i)
		c.index.Del(c.slots[i].hash)
		c.stats.Evictions++
	}
	c.slots[i].key, c.slots[i].hash, c.slots[i].cells = k, hash, cells
	c.index.Put(hash, int64(i))
	c.pushFront(i)
}

func (c *Cache) touch(i int) {
	if c.head == i {
		return
	}
	c.unlink(i)
	c.pushFront(i)
}

func (c *Cache) unlink(i int) {
	s := &c.slots[i]
	if s.prev >= 0 {
		c.slots[s.prev].next = s.next
	} else if c.head == i {
		c.head = s.next
	}
	if s.next >= 0 {
		c.slots[s.next].prev = s.prev
	} else if c.tail == i {
		c.tail = s.prev
	}
	s.prev, s.next = -1, -1
}

func (c *Cache) pushFront(i int) {
	s := &c.slots[i]
	s.prev, s.next = -1, c.head
	if c.head >= 0 {
		c.slots[c.head].prev = i
	}
	c.head = i
	if c.tail < 0 {
		c.tail = i
	}
}
