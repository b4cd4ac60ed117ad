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
	"context"

	"golang.org/x/sync/errgroup"
)

// BuildJunctionForests builds a junction tree for each of trees,
// concurrently. Construction of a single junction tree is always
// single-threaded and synchronous; this exists only because
// independent elimination trees share no state, so the traversal
// driver is reentrant-safe across them (no shared traversal data, no
// shared clique allocation). If any tree fails to build, the first
// error encountered is returned and any still-running builds are left
// to finish discarding their results; ctx cancellation is observed
// between builds but never interrupts a single BuildJunctionTree call
// mid-traversal, since that call has no suspension points.
func BuildJunctionForests(ctx context.Context, trees []*EliminationTree) ([]*JunctionTree, error) {
	results := make([]*JunctionTree, len(trees))

	g, gctx := errgroup.WithContext(ctx)
	for i, et := range trees {
		i, et := i, et
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			jt, err := BuildJunctionTree(et)
			if err != nil {
				return err
			}
			results[i] = jt
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
