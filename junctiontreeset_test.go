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
	"errors"
	"reflect"
	"testing"
)

func TestBuildJunctionForestsIndependentResults(t *testing.T) {
	trees := make([]*EliminationTree, 0, 4)
	for i := Key(0); i < 4; i++ {
		n := NewEliminationTreeNode(i, sf(i, i+100))
		trees = append(trees, NewEliminationTree([]*EliminationTreeNode{n}))
	}

	jts, err := BuildJunctionForests(context.Background(), trees)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(jts) != len(trees) {
		t.Fatalf("len(jts) = %d, want %d", len(jts), len(trees))
	}
	for i, jt := range jts {
		want := []Key{Key(i)}
		if !reflect.DeepEqual(jt.Roots[0].OrderedFrontalKeys, want) {
			t.Fatalf("jts[%d].Roots[0].OrderedFrontalKeys = %v, want %v", i, jt.Roots[0].OrderedFrontalKeys, want)
		}
	}
}

func TestBuildJunctionForestsPropagatesFirstError(t *testing.T) {
	good := NewEliminationTree([]*EliminationTreeNode{NewEliminationTreeNode(1, sf(1))})
	bad := NewEliminationTree([]*EliminationTreeNode{nil})

	_, err := BuildJunctionForests(context.Background(), []*EliminationTree{good, bad})
	if err == nil {
		t.Fatalf("expected an error from the malformed tree")
	}
	var pv *PreconditionViolation
	if !errors.As(err, &pv) {
		t.Fatalf("err = %v, want a *PreconditionViolation", err)
	}
}

func TestBuildJunctionForestsEmptyInput(t *testing.T) {
	jts, err := BuildJunctionForests(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(jts) != 0 {
		t.Fatalf("jts = %v, want empty", jts)
	}
}

func TestBuildJunctionForestsRespectsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	good := NewEliminationTree([]*EliminationTreeNode{NewEliminationTreeNode(1, sf(1))})
	_, err := BuildJunctionForests(ctx, []*EliminationTree{good})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
