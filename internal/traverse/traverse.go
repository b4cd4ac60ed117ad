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

// Package traverse implements a generic depth-first forest walk with
// paired pre/post visitors, parameterized over the node type and the
// per-node data threaded down through the recursion.
package traverse

// Forest is any rooted forest that exposes its roots and, per node,
// an ordered list of children. It is generic over the node type N so
// the driver has no dependency on what a node actually is.
type Forest[N any] interface {
	Roots() []N
	Children(n N) []N
}

// PreVisit is invoked on descent into a node. parentData is the value
// produced by the parent's PreVisit call (or rootData, for a root
// node). The returned value is passed as parentData to this node's
// own children.
type PreVisit[N, D any] func(node N, parentData D) D

// PostVisit is invoked on ascent from a node, once every descendant
// has been fully visited. childData is the value this node's own
// PreVisit produced.
type PostVisit[N, D any] func(node N, childData D)

// DepthFirstForest walks forest in depth-first, left-to-right order.
// For every root r, and recursively for every child:
//
//   - childData := preVisit(node, parentData) runs on descent; its
//     result is threaded to the node's own children as their
//     parentData.
//   - postVisit(node, childData) runs on ascent, after every call
//     involving the node's descendants has completed.
//
// rootData is passed as the synthetic parentData for every root.
// Children are always processed left-to-right, and a node's PreVisit
// happens-before any call involving its descendants; its PostVisit
// happens-after every call involving its descendants.
func DepthFirstForest[N, D any](forest Forest[N], rootData D, preVisit PreVisit[N, D], postVisit PostVisit[N, D]) {
	for _, root := range forest.Roots() {
		walk(forest, root, rootData, preVisit, postVisit)
	}
}

func walk[N, D any](forest Forest[N], node N, parentData D, preVisit PreVisit[N, D], postVisit PostVisit[N, D]) {
	childData := preVisit(node, parentData)
	for _, child := range forest.Children(node) {
		walk(forest, child, childData, preVisit, postVisit)
	}
	postVisit(node, childData)
}
