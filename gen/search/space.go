package search

import (
	"iter"
	"slices"
)

// Space is a set of seeds to search. It is split into partitions, one per
// worker, each yielding its seeds in strictly increasing order. Every seed of
// the space belongs to exactly one partition.
type Space interface {
	// Partition returns the seeds of partition i out of n.
	Partition(i, n int) iter.Seq[int64]
}

// Range returns the seeds from lo up to, but not including, hi.
func Range(lo, hi int64) Space {
	if hi <= lo {
		return seedRange{lo: 1, hi: 0}
	}
	return seedRange{lo: lo, hi: hi - 1}
}

// Between returns the seeds from lo to hi, both inclusive. Unlike Range it can
// reach math.MaxInt64.
func Between(lo, hi int64) Space {
	return seedRange{lo: lo, hi: hi}
}

// seedRange holds the seeds lo..hi inclusive. It is empty if hi < lo.
type seedRange struct {
	lo, hi int64
}

// Partition stripes the range so that workers progress through it together.
func (r seedRange) Partition(i, n int) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		if r.hi < r.lo {
			return
		}
		last, step := uint64(r.hi)-uint64(r.lo), uint64(n)
		for off := uint64(i); off <= last; off += step {
			if !yield(r.lo + int64(off)) {
				return
			}
			// off+step would wrap when the range spans all of int64.
			if last-off < step {
				return
			}
		}
	}
}

// List returns a space holding the seeds passed. Duplicates are searched once.
func List(seeds ...int64) Space {
	s := slices.Clone(seeds)
	slices.Sort(s)
	return seedList(slices.Compact(s))
}

type seedList []int64

// Partition ...
func (l seedList) Partition(i, n int) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for j := i; j < len(l); j += n {
			if !yield(l[j]) {
				return
			}
		}
	}
}

const mask48 = 1<<48 - 1

// Expand48 returns the seeds sharing the lower 48 bits of lower, with the
// upper 16 bits ranging from hiFrom to hiTo inclusive. Structure placement
// only depends on the lower 48 bits, so a structure seed found once can be
// expanded to search the biomes of its whole family.
func Expand48(lower int64, hiFrom, hiTo int16) Space {
	return expanded{lower: lower & mask48, from: hiFrom, to: hiTo}
}

type expanded struct {
	lower    int64
	from, to int16
}

// Partition ...
func (e expanded) Partition(i, n int) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for h := int(e.from) + i; h <= int(e.to); h += n {
			if !yield(int64(h)<<48 | e.lower) {
				return
			}
		}
	}
}
