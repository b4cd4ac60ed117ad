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
	"errors"
	"fmt"
)

// errNilNode is a sentinel PreconditionViolation: the elimination tree
// handed to BuildJunctionTree contains a nil node, either as a root or
// as a child. This is the caller's fault, a malformed tree from the
// upstream ordering stage, not a bug in this package.
var errNilNode = errors.New("junctiontree: elimination tree contains a nil node")

// PreconditionViolation reports malformed input to BuildJunctionTree:
// a nil node, or (in principle) any other structural defect in the
// elimination tree that this package can detect without doing the
// ordering stage's job for it.
type PreconditionViolation struct {
	Err error
}

func (e *PreconditionViolation) Error() string {
	return fmt.Sprintf("junctiontree: precondition violation: %s", e.Err)
}

func (e *PreconditionViolation) Unwrap() error {
	return e.Err
}

// MergeInvariantError reports a failed internal assertion: entering
// the merge loop for the clique rooted at Key, the number of clique
// children did not match the number of recorded child conditionals.
// This can only happen from a bug in the traversal driver or in the
// pre/post-visitor pairing, never from well-formed input, so
// BuildJunctionTree panics with it rather than returning it as an
// ordinary error.
type MergeInvariantError struct {
	Key             Key
	NumChildren     int
	NumConditionals int
}

func (e *MergeInvariantError) Error() string {
	return fmt.Sprintf("junctiontree: internal: node %d entered merge loop with %d clique children but %d recorded child conditionals", e.Key, e.NumChildren, e.NumConditionals)
}
