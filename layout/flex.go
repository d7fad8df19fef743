// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "rectlayout.org/f32"

// Row lays out children left to right, splitting its width between
// them according to their weights and giving each the full height.
type Row struct {
	// Width is the preferred width, constrained to the
	// offered range.
	Width float32
}

// Expanded fills all the space offered to it and passes the same
// constraints on to its children.
type Expanded struct {
	// Flex is the weight an enclosing Row gives the node.
	// Expanded itself ignores it.
	Flex float32
}

// Layout a list of children. Every child present in the tree gets a
// share of the row width proportional to its Weight, so children
// that are not Expanded take a share of DefaultWeight rather than a
// size of their own. Zero total weight gives every child zero width.
func (r Row) Layout(gtx Context, children []Node) Size {
	cs := gtx.Constraints
	width := cs.Width.Constrain(r.Width)
	// The row always takes the maximum height, even when it is below
	// the minimum.
	height := cs.Height.Max

	var total float32
	for _, c := range children {
		if w, ok := gtx.Weight(c); ok {
			total += w
		}
	}
	var offset float32
	for _, c := range children {
		w, ok := gtx.Weight(c)
		if !ok {
			gtx.skip(c)
			continue
		}
		var cw float32
		if total != 0 {
			cw = width / total * w
		}
		sz, _ := gtx.Layout(c, Exact(Size{Width: cw, Height: height}))
		gtx.Place(c, f32.Pt(offset-width/2+cw/2, 0), sz)
		offset += cw
	}
	return Size{Width: width, Height: height}
}

// Layout children with the constraints of the Expanded itself,
// centered on it. The minimum constraints are ignored for the
// Expanded's own size.
func (e Expanded) Layout(gtx Context, children []Node) Size {
	cs := gtx.Constraints
	for _, c := range children {
		if sz, ok := gtx.Layout(c, cs); ok {
			gtx.Place(c, f32.Point{}, sz)
		}
	}
	return cs.Max()
}
