// Package runes implements a bitmap set of runes.
package runes

import (
	"math/bits"
	"strings"
)

const (
	chunkShift = 6
	chunkSize  = 1 << chunkShift
)

// Set is a set of runes stored as bit chunks covering [low, high) range.
// A Set is not safe for concurrent modification, parsers build sets at construction time only.
type Set struct {
	low, high rune
	chunks    []uint64
	size      int
}

// NewSet creates a set containing items.
func NewSet(items ...rune) *Set {
	result := &Set{}
	if len(items) > 0 {
		result.Add(items...)
	}
	return result
}

// FromString creates a set containing all runes of s.
func FromString(s string) *Set {
	return NewSet([]rune(s)...)
}

func baseItem(item rune) rune {
	return item & ^rune(chunkSize-1)
}

func (s *Set) allocate(low, high rune) {
	lowItem := baseItem(low)
	highItem := baseItem(high) + chunkSize
	if len(s.chunks) > 0 {
		if lowItem >= s.low && highItem <= s.high {
			return
		}

		if lowItem > s.low {
			lowItem = s.low
		}
		if highItem < s.high {
			highItem = s.high
		}
	}

	chunks := make([]uint64, (highItem-lowItem)>>chunkShift)
	if len(s.chunks) > 0 {
		copy(chunks[(s.low-lowItem)>>chunkShift:], s.chunks)
	}
	s.chunks = chunks
	s.low = lowItem
	s.high = highItem
}

func (s *Set) chunkIndex(item rune) int {
	return int((item - s.low) >> chunkShift)
}

func bitMask(item rune) uint64 {
	return 1 << (uint(item) & (chunkSize - 1))
}

func (s *Set) set(item rune) {
	i := s.chunkIndex(item)
	m := bitMask(item)
	if s.chunks[i]&m == 0 {
		s.chunks[i] |= m
		s.size++
	}
}

// Add adds items to the set.
func (s *Set) Add(items ...rune) *Set {
	if len(items) == 0 {
		return s
	}

	min, max := items[0], items[0]
	for _, item := range items[1:] {
		if item < min {
			min = item
		}
		if item > max {
			max = item
		}
	}
	s.allocate(min, max)
	for _, item := range items {
		s.set(item)
	}
	return s
}

// AddRange adds all runes from first to last inclusive. Does nothing if last < first.
func (s *Set) AddRange(first, last rune) *Set {
	if last < first {
		return s
	}

	s.allocate(first, last)
	for item := first; item <= last; item++ {
		s.set(item)
	}
	return s
}

// Union adds all items of t to the set.
func (s *Set) Union(t *Set) *Set {
	if t.IsEmpty() {
		return s
	}

	s.allocate(t.low, t.high-1)
	offset := int((t.low - s.low) >> chunkShift)
	s.size = 0
	for i, chunk := range t.chunks {
		s.chunks[offset+i] |= chunk
	}
	for _, chunk := range s.chunks {
		s.size += bits.OnesCount64(chunk)
	}
	return s
}

// Contains tells whether item belongs to the set.
func (s *Set) Contains(item rune) bool {
	if item < s.low || item >= s.high {
		return false
	}
	return s.chunks[s.chunkIndex(item)]&bitMask(item) != 0
}

// Len returns the number of items.
func (s *Set) Len() int {
	return s.size
}

func (s *Set) IsEmpty() bool {
	return s.size == 0
}

// ToSlice returns items in ascending order.
func (s *Set) ToSlice() []rune {
	result := make([]rune, 0, s.size)
	item := s.low
	for _, chunk := range s.chunks {
		for i := chunkSize; i > 0; i-- {
			if chunk&1 != 0 {
				result = append(result, item)
			}
			item++
			chunk >>= 1
		}
	}
	return result
}

// String returns items in ascending order as a string.
func (s *Set) String() string {
	sb := strings.Builder{}
	for _, r := range s.ToSlice() {
		sb.WriteRune(r)
	}
	return sb.String()
}
