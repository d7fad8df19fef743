// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"go.uber.org/zap"

	"rectlayout.org/f32"
)

// Context carries the constraints of the node being laid out and
// gives its strategy access to the children.
type Context struct {
	// Constraints are the limits offered by the parent.
	Constraints Constraints

	pass *pass
}

// pass is the state of a single Engine.Run.
type pass struct {
	tree  Tree
	log   *zap.Logger
	stats Stats
}

// Weight returns the flex weight of child n. It reports false if n
// is not in the tree.
func (gtx Context) Weight(n Node) (float32, bool) {
	s, _, ok := gtx.pass.tree.Node(n)
	if !ok {
		return 0, false
	}
	return Weight(s), true
}

// Layout lays out n with constraints cs and returns the size its
// strategy resolved. The size is not clamped to cs. Layout reports
// false, and does nothing, if n is not in the tree.
func (gtx Context) Layout(n Node, cs Constraints) (Size, bool) {
	s, children, ok := gtx.pass.tree.Node(n)
	if !ok {
		gtx.skip(n)
		return Size{}, false
	}
	gtx.pass.stats.Nodes++
	return s.Layout(Context{Constraints: cs, pass: gtx.pass}, children), true
}

// Place records the position and size of n.
func (gtx Context) Place(n Node, pos f32.Point, sz Size) {
	if !gtx.pass.tree.Place(n, pos, sz) {
		gtx.skip(n)
	}
}

func (gtx Context) skip(n Node) {
	gtx.pass.stats.Dangling++
	gtx.pass.log.Debug("skipping dangling node", zap.Uint32("node", uint32(n)))
}
