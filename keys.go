// This is free and unencumbered software released into the public domain.
//
// Anyone is free to copy, modify, publish, use, compile, sell, or
// distribute this software, either in source code form or as a compiled
// binary, for any purpose, commercial or non-commercial, and by any
// means.
//
// In jurisdictions that recognize copyright laws, the author or authors
// of this software dedicate any and all copyright interest in the
// software to the public domain. We make this dedication for the benefit
// of the public at large and to the detriment of our heirs and
// successors. We intend this dedication to be an overt act of
// relinquishment in perpetuity of all present and future rights to this
// software under copyright law.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
// OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
// ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.
//
// For more information, please refer to <https://unlicense.org>

package junctiontree

import "github.com/bits-and-blooms/bitset"

// Key identifies a single variable in a factor graph. Variable-ordering
// stages number variables densely from 0, so a bitset is a cheap and
// natural backing store for a set of them.
type Key uint64

// KeySet is an unordered set of Keys. It never carries order; callers
// that need the order keys were first seen in (conditional parents,
// frontal lists) keep a parallel []Key alongside it.
type KeySet struct {
	bits *bitset.BitSet
}

// NewKeySet returns an empty KeySet.
func NewKeySet() KeySet {
	return KeySet{bits: bitset.New(0)}
}

// Add inserts k into the set. Returns true if k was not already present.
func (s *KeySet) Add(k Key) bool {
	if s.bits == nil {
		s.bits = bitset.New(0)
	}
	if s.bits.Test(uint(k)) {
		return false
	}
	s.bits.Set(uint(k))
	return true
}
