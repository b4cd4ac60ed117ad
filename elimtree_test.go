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

import (
	"reflect"
	"testing"
)

func TestNewEliminationTreeNodeLeaf(t *testing.T) {
	n := NewEliminationTreeNode(5, sf(5, 6))
	if n.Key != 5 {
		t.Fatalf("Key = %d, want 5", n.Key)
	}
	if len(n.Factors) != 1 || !reflect.DeepEqual(n.Factors[0], sf(5, 6)) {
		t.Fatalf("Factors = %v, want [{5,6}]", n.Factors)
	}
	if len(n.Children) != 0 {
		t.Fatalf("Children = %v, want none", n.Children)
	}
}

func TestEliminationTreeNodeAddChildOrderPreserved(t *testing.T) {
	parent := NewEliminationTreeNode(1)
	a := NewEliminationTreeNode(2)
	b := NewEliminationTreeNode(3)
	parent.AddChild(a)
	parent.AddChild(b)

	if !reflect.DeepEqual(parent.Children, []*EliminationTreeNode{a, b}) {
		t.Fatalf("Children = %v, want [a b] in insertion order", parent.Children)
	}
}

func TestNewEliminationTreeCarriesRemainingFactors(t *testing.T) {
	root := NewEliminationTreeNode(1, sf(1))
	et := NewEliminationTree([]*EliminationTreeNode{root}, sf(7, 8), sf(9))

	if len(et.Roots) != 1 || et.Roots[0] != root {
		t.Fatalf("Roots = %v, want [root]", et.Roots)
	}
	want := []KeyedFactor{sf(7, 8), sf(9)}
	if !reflect.DeepEqual(et.RemainingFactors, want) {
		t.Fatalf("RemainingFactors = %v, want %v", et.RemainingFactors, want)
	}
}

func TestNewEliminationTreeNoRemainingFactorsIsEmpty(t *testing.T) {
	et := NewEliminationTree(nil)
	if len(et.RemainingFactors) != 0 {
		t.Fatalf("RemainingFactors = %v, want empty", et.RemainingFactors)
	}
}
