// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "rectlayout.org/f32"

// Padding insets its children by fixed amounts on each side.
type Padding struct {
	Top, Bottom, Left, Right float32
}

// UniformPadding returns a Padding with a single inset applied to all
// edges.
func UniformPadding(v float32) Padding {
	return Padding{Top: v, Bottom: v, Left: v, Right: v}
}

// Layout children in the constraints left after removing the insets.
// Insets larger than the offered space produce negative constraints,
// which are passed on as is.
//
// Every child is offset by the same amount regardless of its size,
// and the Padding reports the maximum offered size rather than the
// size of its content.
func (p Padding) Layout(gtx Context, children []Node) Size {
	cs := gtx.Constraints
	h, v := p.Left+p.Right, p.Top+p.Bottom
	mcs := Constraints{
		Width:  cs.Width.Shrink(h),
		Height: cs.Height.Shrink(v),
	}
	off := f32.Pt(-h/2+p.Left, -v/2+p.Bottom)
	for _, c := range children {
		if sz, ok := gtx.Layout(c, mcs); ok {
			gtx.Place(c, off, sz)
		}
	}
	return cs.Max()
}
