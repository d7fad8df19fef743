// SPDX-License-Identifier: Unlicense OR MIT

// Package tree provides an arena backed node store that satisfies
// layout.Tree.
//
// Handles are indices into the arena and are never reused, so a handle
// to a removed node stays invalid for the lifetime of the Store.
package tree

import (
	"errors"

	"rectlayout.org/f32"
	"rectlayout.org/layout"
)

// ErrNotFound is returned for handles that are not in the store.
var ErrNotFound = errors.New("tree: node not found")

// Store is a tree of layout nodes. It is not safe for concurrent use.
type Store struct {
	nodes []entry
	roots []layout.Node
}

type entry struct {
	alive     bool
	hasParent bool
	parent    layout.Node
	strategy  layout.Strategy
	children  []layout.Node
	rect      layout.Rect
	tag       string
}

// Option configures a node as it is added.
type Option func(e *entry)

// Depth sets the paint order of the node.
func Depth(d int) Option {
	return func(e *entry) {
		e.rect.Depth = d
	}
}

// Tag attaches an opaque label to the node. Layout ignores it.
func Tag(t string) Option {
	return func(e *entry) {
		e.tag = t
	}
}

// New returns an empty Store.
func New() *Store {
	return new(Store)
}

// Add adds a root node with strategy st.
func (s *Store) Add(st layout.Strategy, opts ...Option) layout.Node {
	n := s.add(st, opts)
	s.roots = append(s.roots, n)
	return n
}

// AddChild adds a node with strategy st as the last child of parent.
func (s *Store) AddChild(parent layout.Node, st layout.Strategy, opts ...Option) (layout.Node, error) {
	p := s.get(parent)
	if p == nil {
		return 0, ErrNotFound
	}
	n := s.add(st, opts)
	e := &s.nodes[n]
	e.hasParent = true
	e.parent = parent
	// s.add may have moved the arena.
	p = &s.nodes[parent]
	p.children = append(p.children, n)
	return n, nil
}

func (s *Store) add(st layout.Strategy, opts []Option) layout.Node {
	e := entry{alive: true, strategy: st}
	for _, o := range opts {
		o(&e)
	}
	s.nodes = append(s.nodes, e)
	return layout.Node(len(s.nodes) - 1)
}

// Remove deletes n from the store. The handle is left in the child
// list of n's parent, where layout skips it, and the children of n
// become unreachable. Remove reports whether n was present.
func (s *Store) Remove(n layout.Node) bool {
	e := s.get(n)
	if e == nil {
		return false
	}
	if !e.hasParent {
		for i, r := range s.roots {
			if r == n {
				s.roots = append(s.roots[:i:i], s.roots[i+1:]...)
				break
			}
		}
	}
	*e = entry{}
	return true
}

// Node implements layout.Tree.
func (s *Store) Node(n layout.Node) (layout.Strategy, []layout.Node, bool) {
	e := s.get(n)
	if e == nil {
		return nil, nil, false
	}
	return e.strategy, e.children, true
}

// Roots implements layout.Tree. Roots are returned in the order they
// were added. The returned slice must not be modified.
func (s *Store) Roots() []layout.Node {
	return s.roots
}

// Place implements layout.Tree.
func (s *Store) Place(n layout.Node, pos f32.Point, sz layout.Size) bool {
	e := s.get(n)
	if e == nil {
		return false
	}
	e.rect.Position = pos
	e.rect.Size = sz
	return true
}

// Rect returns the last placement of n.
func (s *Store) Rect(n layout.Node) (layout.Rect, bool) {
	e := s.get(n)
	if e == nil {
		return layout.Rect{}, false
	}
	return e.rect, true
}

// Tag returns the label of n.
func (s *Store) Tag(n layout.Node) (string, bool) {
	e := s.get(n)
	if e == nil {
		return "", false
	}
	return e.tag, true
}

// Parent returns the parent of n. It reports false for roots and for
// nodes not in the store.
func (s *Store) Parent(n layout.Node) (layout.Node, bool) {
	e := s.get(n)
	if e == nil || !e.hasParent {
		return 0, false
	}
	return e.parent, true
}

// Children returns the child handles of n, including handles to
// removed nodes.
func (s *Store) Children(n layout.Node) []layout.Node {
	if e := s.get(n); e != nil {
		return e.children
	}
	return nil
}

// SetStrategy replaces the strategy of n.
func (s *Store) SetStrategy(n layout.Node, st layout.Strategy) error {
	e := s.get(n)
	if e == nil {
		return ErrNotFound
	}
	e.strategy = st
	return nil
}

// SetDepth replaces the paint order of n.
func (s *Store) SetDepth(n layout.Node, d int) error {
	e := s.get(n)
	if e == nil {
		return ErrNotFound
	}
	e.rect.Depth = d
	return nil
}

// Len returns the number of nodes in the store.
func (s *Store) Len() int {
	l := 0
	for i := range s.nodes {
		if s.nodes[i].alive {
			l++
		}
	}
	return l
}

// Clone returns a deep copy of s. Handles of s are valid in the copy.
func (s *Store) Clone() *Store {
	c := &Store{
		nodes: make([]entry, len(s.nodes)),
		roots: append([]layout.Node(nil), s.roots...),
	}
	for i, e := range s.nodes {
		e.children = append([]layout.Node(nil), e.children...)
		c.nodes[i] = e
	}
	return c
}

// Walk calls visit for every node reachable from a root, parents
// before children, in child order. Handles to removed nodes are
// skipped. If visit returns false the children of that node are not
// visited.
func (s *Store) Walk(visit func(n layout.Node, parent layout.Node, root bool) bool) {
	var walk func(n, parent layout.Node, root bool)
	walk = func(n, parent layout.Node, root bool) {
		e := s.get(n)
		if e == nil || !visit(n, parent, root) {
			return
		}
		for _, c := range e.children {
			walk(c, n, false)
		}
	}
	for _, r := range s.roots {
		walk(r, 0, true)
	}
}

func (s *Store) get(n layout.Node) *entry {
	if int(n) >= len(s.nodes) {
		return nil
	}
	e := &s.nodes[n]
	if !e.alive {
		return nil
	}
	return e
}

var _ layout.Tree = (*Store)(nil)
