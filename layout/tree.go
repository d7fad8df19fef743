// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "rectlayout.org/f32"

// Node is an opaque handle to a node owned by a Tree.
type Node uint32

// Tree is the view of a node tree the Engine lays out. The tree owns
// the topology and node lifetimes; layout only reads strategies and
// children and writes placements.
//
// Lookups of handles that no longer exist must report false rather
// than fail. Child order must be stable.
type Tree interface {
	// Node returns the strategy and the ordered children of n.
	Node(n Node) (s Strategy, children []Node, ok bool)
	// Roots returns the nodes without a parent.
	Roots() []Node
	// Place stores the position and size of n, leaving its depth
	// untouched.
	Place(n Node, pos f32.Point, sz Size) bool
}
