// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"

	"rectlayout.org/f32"
)

// Constraints represent a set of acceptable ranges for
// a node's width and height.
type Constraints struct {
	Width  Constraint
	Height Constraint
}

// Constraint is a range of acceptable sizes in a single
// dimension. Min <= Max is expected but not enforced; see
// Constrain for how an inverted range resolves.
type Constraint struct {
	Min, Max float32
}

// Size is the resolved width and height of a node.
type Size struct {
	Width, Height float32
}

// Rect is the resolved placement of a node, sometimes called its
// transform.
type Rect struct {
	// Position is the offset of the node's center from the center
	// of the space its parent allotted it. The y axis extends up.
	Position f32.Point
	Size     Size
	// Depth is the paint order assigned by the owner of the node.
	// Layout never changes it.
	Depth int
}

// Constrain a value to the range [Min; Max]. The maximum is applied
// before the minimum, so Min wins when the range is inverted.
func (c Constraint) Constrain(v float32) float32 {
	if v > c.Max {
		v = c.Max
	}
	if v < c.Min {
		v = c.Min
	}
	return v
}

// Shrink returns the constraint with both bounds reduced by d. The
// result is not clamped and may be negative.
func (c Constraint) Shrink(d float32) Constraint {
	return Constraint{Min: c.Min - d, Max: c.Max - d}
}

// Constrain a size to the Width and Height ranges.
func (c Constraints) Constrain(sz Size) Size {
	return Size{Width: c.Width.Constrain(sz.Width), Height: c.Height.Constrain(sz.Height)}
}

// Max returns the largest size allowed by c.
func (c Constraints) Max() Size {
	return Size{Width: c.Width.Max, Height: c.Height.Max}
}

// Exact returns the constraints that can only be
// satisfied by the given size.
func Exact(sz Size) Constraints {
	return Constraints{
		Width:  Constraint{Min: sz.Width, Max: sz.Width},
		Height: Constraint{Min: sz.Height, Max: sz.Height},
	}
}

// Viewport returns the constraints offered to root nodes by a
// viewport of the given dimensions: anything from zero up to the
// viewport size.
func Viewport(width, height float32) Constraints {
	return Constraints{
		Width:  Constraint{Max: width},
		Height: Constraint{Max: height},
	}
}

func (c Constraints) String() string {
	return fmt.Sprintf("{w:[%g,%g] h:[%g,%g]}", c.Width.Min, c.Width.Max, c.Height.Min, c.Height.Max)
}

func (s Size) String() string {
	return fmt.Sprintf("(%g,%g)", s.Width, s.Height)
}

func (r Rect) String() string {
	return fmt.Sprintf("%v%v@%d", r.Position, r.Size, r.Depth)
}
