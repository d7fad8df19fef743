// SPDX-License-Identifier: Unlicense OR MIT

package tree

import (
	"errors"
	"testing"

	"rectlayout.org/f32"
	"rectlayout.org/layout"
)

func TestStoreTopology(t *testing.T) {
	s := New()
	root := s.Add(layout.Row{Width: 100}, Tag("white"))
	a, err := s.AddChild(root, layout.Expanded{Flex: 1}, Depth(1))
	if err != nil {
		t.Fatal(err)
	}
	b, err := s.AddChild(root, layout.Expanded{Flex: 2}, Depth(1))
	if err != nil {
		t.Fatal(err)
	}

	if got := s.Roots(); len(got) != 1 || got[0] != root {
		t.Errorf("Roots() = %v, want [%v]", got, root)
	}
	st, children, ok := s.Node(root)
	if !ok {
		t.Fatal("root not found")
	}
	if st != (layout.Row{Width: 100}) {
		t.Errorf("strategy = %#v", st)
	}
	if len(children) != 2 || children[0] != a || children[1] != b {
		t.Errorf("children = %v, want [%v %v]", children, a, b)
	}
	if p, ok := s.Parent(b); !ok || p != root {
		t.Errorf("Parent(b) = %v, %v", p, ok)
	}
	if _, ok := s.Parent(root); ok {
		t.Error("root should have no parent")
	}
	if tag, _ := s.Tag(root); tag != "white" {
		t.Errorf("Tag(root) = %q", tag)
	}
	if r, _ := s.Rect(a); r.Depth != 1 {
		t.Errorf("Depth(a) = %d, want 1", r.Depth)
	}
	if _, err := s.AddChild(layout.Node(42), layout.Expanded{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("AddChild to missing parent: err = %v", err)
	}
}

func TestPlaceKeepsDepth(t *testing.T) {
	s := New()
	n := s.Add(layout.Expanded{}, Depth(3))
	if !s.Place(n, f32.Pt(1, 2), layout.Size{Width: 3, Height: 4}) {
		t.Fatal("Place failed")
	}
	want := layout.Rect{Position: f32.Pt(1, 2), Size: layout.Size{Width: 3, Height: 4}, Depth: 3}
	if r, _ := s.Rect(n); r != want {
		t.Errorf("Rect = %v, want %v", r, want)
	}
}

func TestRemoveLeavesDanglingHandle(t *testing.T) {
	s := New()
	root := s.Add(layout.Row{})
	a, _ := s.AddChild(root, layout.Expanded{Flex: 1})
	grandchild, _ := s.AddChild(a, layout.Expanded{Flex: 1})

	if !s.Remove(a) {
		t.Fatal("Remove(a) = false")
	}
	if s.Remove(a) {
		t.Error("second Remove(a) = true")
	}
	if _, _, ok := s.Node(a); ok {
		t.Error("removed node still found")
	}
	if s.Place(a, f32.Point{}, layout.Size{}) {
		t.Error("Place on removed node succeeded")
	}
	if got := s.Children(root); len(got) != 1 || got[0] != a {
		t.Errorf("parent lost its dangling edge: %v", got)
	}
	// The orphaned grandchild is neither a root nor reachable.
	if got := s.Roots(); len(got) != 1 {
		t.Errorf("Roots() = %v", got)
	}
	var visited []layout.Node
	s.Walk(func(n, _ layout.Node, _ bool) bool {
		visited = append(visited, n)
		return true
	})
	if len(visited) != 1 || visited[0] != root {
		t.Errorf("Walk visited %v, want only the root", visited)
	}
	if _, _, ok := s.Node(grandchild); !ok {
		t.Error("grandchild should still exist")
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestRemoveRoot(t *testing.T) {
	s := New()
	r1 := s.Add(layout.Expanded{})
	r2 := s.Add(layout.Expanded{})
	before := s.Roots()
	s.Remove(r1)
	if got := s.Roots(); len(got) != 1 || got[0] != r2 {
		t.Errorf("Roots() = %v, want [%v]", got, r2)
	}
	if len(before) != 2 || before[0] != r1 {
		t.Errorf("Remove modified a previously returned roots slice: %v", before)
	}
}

func TestClone(t *testing.T) {
	s := New()
	root := s.Add(layout.Row{Width: 10})
	child, _ := s.AddChild(root, layout.Expanded{Flex: 1})

	c := s.Clone()
	c.Place(child, f32.Pt(5, 5), layout.Size{Width: 1, Height: 1})
	if _, err := c.AddChild(root, layout.Expanded{}); err != nil {
		t.Fatal(err)
	}

	if r, _ := s.Rect(child); r != (layout.Rect{}) {
		t.Errorf("Place on clone leaked into original: %v", r)
	}
	if got := len(s.Children(root)); got != 1 {
		t.Errorf("AddChild on clone leaked into original: %d children", got)
	}
}
