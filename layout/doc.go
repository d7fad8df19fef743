// SPDX-License-Identifier: Unlicense OR MIT

/*
Package layout implements the layout of trees of rectangular nodes.

Constraints flow down the tree and sizes flow up: every node receives
Constraints from its parent, its Strategy resolves a Size within them
and hands adjusted Constraints to each of its children, placing them
as it goes.

Positions are center anchored. A node's Rect.Position is the offset
of its center from the center of the space its parent allotted it, with
the y axis extending up, in the same unit as the viewport.

The tree itself is owned elsewhere and accessed through the Tree
interface. An Engine walks it from every root:

	e := layout.NewEngine(tree)
	e.Run(layout.Viewport(900, 600))

*/
package layout
