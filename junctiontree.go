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
	"github.com/elimtree/junctiontree/internal/traverse"
)

// JunctionTreeNode is a single clique of the output junction tree: a
// group of variables jointly eliminated together, the numeric factors
// assigned to them, and the cliques descending from them.
//
// OrderedFrontalKeys lists the keys in the order they were added
// during the bottom-up merge, then globally reversed: the key of the
// elimination-tree node that created this clique comes first, followed
// by the keys of each absorbed subtree in the order that subtree was
// absorbed.
type JunctionTreeNode struct {
	OrderedFrontalKeys []Key
	Factors            []KeyedFactor
	Children           []*JunctionTreeNode
	ProblemSize        int
}

// JunctionTree is the output forest: an ordered sequence of top-level
// cliques plus the factors the elimination tree carried over verbatim
// without ever assigning to a node.
type JunctionTree struct {
	Roots            []*JunctionTreeNode
	RemainingFactors []KeyedFactor
}

// traversalData is the per-node state carried through one node's
// visit: a back-reference to the parent's traversalData (a pure
// stack-scoped borrow, valid only while this node's subtree is being
// visited, never stored anywhere after the visitor call returns), the
// clique allocated for this node, and the symbolic conditionals/
// residuals contributed by this node's own children as they complete.
type traversalData struct {
	parent            *traversalData
	clique            *JunctionTreeNode
	childConditionals []SymbolicConditional
	childResiduals    []SymbolicFactor
}

// elimForest adapts *EliminationTree to traverse.Forest.
type elimForest struct {
	tree *EliminationTree
}

func (f elimForest) Roots() []*EliminationTreeNode {
	return f.tree.Roots
}

func (f elimForest) Children(n *EliminationTreeNode) []*EliminationTreeNode {
	return n.Children
}

// BuildJunctionTree converts an elimination tree into a junction tree
// by a single bottom-up traversal: symbolic elimination at every node,
// a merge decision based on symbolic conditional arity, and a forest
// of cliques whose frontal orderings are consistent with the
// traversal.
//
// BuildJunctionTree returns a *PreconditionViolation if the
// elimination tree is malformed (a nil node). It is otherwise
// deterministic: the same elimination tree always yields the same
// junction tree.
func BuildJunctionTree(et *EliminationTree) (jt *JunctionTree, err error) {
	dummyRoot := &JunctionTreeNode{}
	rootData := &traversalData{clique: dummyRoot}

	defer func() {
		if r := recover(); r != nil {
			if pv, ok := r.(*PreconditionViolation); ok {
				jt, err = nil, pv
				return
			}
			panic(r)
		}
	}()

	traverse.DepthFirstForest[*EliminationTreeNode, *traversalData](
		elimForest{tree: et},
		rootData,
		preVisitJunctionTree,
		postVisitJunctionTree,
	)

	return &JunctionTree{
		Roots:            dummyRoot.Children,
		RemainingFactors: append([]KeyedFactor(nil), et.RemainingFactors...),
	}, nil
}

// preVisitJunctionTree allocates a fresh clique for node, seeded with
// its key and its own factors, and links it as a child of the
// parent's clique. No symbolic work happens here, that is all done
// on ascent, once a node's children's residuals are known.
func preVisitJunctionTree(node *EliminationTreeNode, parentData *traversalData) *traversalData {
	if node == nil {
		panic(&PreconditionViolation{Err: errNilNode})
	}

	clique := &JunctionTreeNode{
		OrderedFrontalKeys: []Key{node.Key},
		Factors:            append([]KeyedFactor(nil), node.Factors...),
	}
	parentData.clique.Children = append(parentData.clique.Children, clique)

	return &traversalData{parent: parentData, clique: clique}
}

// postVisitJunctionTree performs the symbolic elimination and merge
// decision for node's clique, then reports the resulting conditional
// and residual to the parent so it can repeat the process one level
// up.
func postVisitJunctionTree(node *EliminationTreeNode, data *traversalData) {
	clique := data.clique

	if len(clique.Children) != len(data.childConditionals) {
		panic(&MergeInvariantError{
			Key:             node.Key,
			NumChildren:     len(clique.Children),
			NumConditionals: len(data.childConditionals),
		})
	}

	// Step 1: symbolic elimination over this node's own factors plus
	// the residuals propagated up from each child, in child order.
	allFactors := make([]KeyedFactor, 0, len(node.Factors)+len(data.childResiduals))
	allFactors = append(allFactors, node.Factors...)
	for _, residual := range data.childResiduals {
		allFactors = append(allFactors, residual)
	}
	cond, residual := eliminateSymbolic(allFactors, node.Key)

	data.parent.childConditionals = append(data.parent.childConditionals, cond)
	data.parent.childResiduals = append(data.parent.childResiduals, residual)

	// Step 2: merge decision setup. myNrParents is fixed for the
	// remainder of this visit. It is never updated inside the merge
	// loop below, because every merge decision is taken against the
	// parent count this node introduced at elimination time, not
	// against any running total.
	myNrFrontals := 1
	myNrParents := cond.nrParents()
	combinedProblemSize := cond.size() * (len(node.Factors) + len(data.childResiduals))

	// Step 3: merge loop. i indexes childConditionals independently
	// of clique.Children, whose indices shift left by one every time
	// a merged child is erased. The predicate compares against the
	// frontal count this node itself introduces (frozen before the
	// loop starts), not a running total: a sibling's conditional was
	// computed independently, in a disjoint subtree, and never
	// depends on how many of its siblings this loop has already
	// absorbed.
	requiredNrParents := myNrParents + myNrFrontals
	nrMerged := 0
	for i, childCond := range data.childConditionals {
		if childCond.nrParents() != requiredNrParents {
			continue
		}

		childIdx := i - nrMerged
		child := clique.Children[childIdx]

		// Prepend the child's frontal-key block, reversed, to the
		// front of the accumulator: the one global reverse in step 4
		// below then restores the block to its own internal order and
		// places it right after the keys absorbed before it, so the
		// final order is node.Key followed by each merged child's
		// block, in the order the children were absorbed.
		block := make([]Key, len(child.OrderedFrontalKeys))
		copy(block, child.OrderedFrontalKeys)
		reverseKeys(block)
		clique.OrderedFrontalKeys = append(block, clique.OrderedFrontalKeys...)

		clique.Factors = append(clique.Factors, child.Factors...)
		clique.Children = append(clique.Children, child.Children...)
		if child.ProblemSize > combinedProblemSize {
			combinedProblemSize = child.ProblemSize
		}
		myNrFrontals += len(child.OrderedFrontalKeys)

		clique.Children = append(clique.Children[:childIdx], clique.Children[childIdx+1:]...)
		nrMerged++
	}

	// Step 4: reverse. Combined with the reversed-block prepends above,
	// node.Key ends up first, followed by each absorbed subtree's
	// keys in the order that subtree was absorbed.
	reverseKeys(clique.OrderedFrontalKeys)

	// Step 5: record size.
	clique.ProblemSize = combinedProblemSize
}

func reverseKeys(keys []Key) {
	for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
		keys[i], keys[j] = keys[j], keys[i]
	}
}
