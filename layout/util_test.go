// SPDX-License-Identifier: Unlicense OR MIT

package layout_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"rectlayout.org/layout"
	"rectlayout.org/tree"
)

// probe records the constraints it receives and reports either a
// fixed size or the maximum offered size.
type probe struct {
	seen *[]layout.Constraints
	size *layout.Size
}

func (p probe) Layout(gtx layout.Context, _ []layout.Node) layout.Size {
	if p.seen != nil {
		*p.seen = append(*p.seen, gtx.Constraints)
	}
	if p.size != nil {
		return *p.size
	}
	return gtx.Constraints.Max()
}

var approx = cmpopts.EquateApprox(0, 1e-4)

func rect(t *testing.T, s *tree.Store, n layout.Node) layout.Rect {
	t.Helper()
	r, ok := s.Rect(n)
	if !ok {
		t.Fatalf("node %d not in store", n)
	}
	return r
}

func mustChild(t *testing.T, s *tree.Store, parent layout.Node, st layout.Strategy, opts ...tree.Option) layout.Node {
	t.Helper()
	n, err := s.AddChild(parent, st, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func checkRect(t *testing.T, s *tree.Store, n layout.Node, want layout.Rect) {
	t.Helper()
	if diff := cmp.Diff(want, rect(t, s, n), approx); diff != "" {
		t.Errorf("node %d rect mismatch (-want +got):\n%s", n, diff)
	}
}

func checkConstraints(t *testing.T, got []layout.Constraints, want ...layout.Constraints) {
	t.Helper()
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("constraints mismatch (-want +got):\n%s", diff)
	}
}
