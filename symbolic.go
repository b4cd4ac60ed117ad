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

// SymbolicFactor is an unordered set of keys. It carries no other
// state: symbolic elimination only ever needs to know which variables
// a factor touches, never its numeric content.
type SymbolicFactor struct {
	Keys []Key
}

// NewSymbolicFactor builds a SymbolicFactor from a KeyedFactor,
// copying out its key set.
func NewSymbolicFactor(f KeyedFactor) SymbolicFactor {
	return SymbolicFactor{Keys: append([]Key(nil), f.FactorKeys()...)}
}

// FactorKeys implements KeyedFactor, so a SymbolicFactor can itself be
// fed back into eliminateSymbolic. This lets every child node
// contribute its residual as an ordinary factor.
func (f SymbolicFactor) FactorKeys() []Key {
	return f.Keys
}

// SymbolicConditional is an ordered sequence of frontal keys followed
// by an ordered sequence of parent keys, produced by eliminating the
// frontal keys from some set of factors. Immutable once produced.
type SymbolicConditional struct {
	Frontals []Key
	Parents  []Key
}

// size is the total number of keys touched by the conditional
// (frontals + parents).
func (c SymbolicConditional) size() int {
	return len(c.Frontals) + len(c.Parents)
}

// nrParents is the separator size: the number of parent keys.
func (c SymbolicConditional) nrParents() int {
	return len(c.Parents)
}

// eliminateSymbolic eliminates the single key in keyToEliminate from
// factors, returning the resulting conditional and the residual
// symbolic factor over the remaining (parent) keys.
//
// Parent order is the order keys are first seen while scanning factors
// left-to-right. Duplicate keys across and within factors are
// deduplicated.
func eliminateSymbolic(factors []KeyedFactor, keyToEliminate Key) (SymbolicConditional, SymbolicFactor) {
	seen := NewKeySet()
	seen.Add(keyToEliminate)

	var parents []Key
	for _, f := range factors {
		for _, k := range f.FactorKeys() {
			if seen.Add(k) {
				parents = append(parents, k)
			}
		}
	}

	cond := SymbolicConditional{
		Frontals: []Key{keyToEliminate},
		Parents:  parents,
	}
	residual := SymbolicFactor{Keys: parents}
	return cond, residual
}
