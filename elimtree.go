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

// EliminationTreeNode is a single node of an elimination tree: the
// variable eliminated at this node, the numeric factors attached to
// it, and its children. The core treats this read-only; it never
// mutates a node's Factors or Children.
//
// A well-formed elimination tree satisfies: each factor is attached to
// exactly one node, the deepest node whose Key is among the factor's
// keys. Building a well-formed tree from a factor graph and a variable
// ordering is the job of an external collaborator (COLAMD/METIS/etc.)
// and out of scope here; EliminationTree only stores the result.
type EliminationTreeNode struct {
	Key      Key
	Factors  []KeyedFactor
	Children []*EliminationTreeNode
}

// NewEliminationTreeNode creates a leaf node for key with the given
// factors. Use AddChild to attach descendants.
func NewEliminationTreeNode(key Key, factors ...KeyedFactor) *EliminationTreeNode {
	return &EliminationTreeNode{Key: key, Factors: factors}
}

// AddChild appends child to n's children, in left-to-right order.
func (n *EliminationTreeNode) AddChild(child *EliminationTreeNode) {
	n.Children = append(n.Children, child)
}

// EliminationTree is a forest: an ordered sequence of root nodes, plus
// any factors that were not assigned to a node during tree
// construction (e.g. unary factors over already-eliminated keys that
// the ordering stage chose to carry through verbatim).
type EliminationTree struct {
	Roots            []*EliminationTreeNode
	RemainingFactors []KeyedFactor
}

// NewEliminationTree builds an EliminationTree forest from explicit
// roots and any remaining factors.
func NewEliminationTree(roots []*EliminationTreeNode, remainingFactors ...KeyedFactor) *EliminationTree {
	return &EliminationTree{Roots: roots, RemainingFactors: remainingFactors}
}
