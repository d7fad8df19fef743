// SPDX-License-Identifier: Unlicense OR MIT

package layout

// Strategy is the layout behavior of a node. Layout resolves the
// node's own size from gtx.Constraints and places every child
// through gtx before returning.
//
// The built-in strategies are Row, Expanded and Padding.
type Strategy interface {
	Layout(gtx Context, children []Node) Size
}

// DefaultWeight is the flex weight of a node whose strategy does not
// declare one.
const DefaultWeight float32 = 1

// Weight returns the flex weight a Row assigns to a child with
// strategy s. Only Expanded declares a weight; every other strategy,
// including Row and Padding, counts as DefaultWeight.
func Weight(s Strategy) float32 {
	switch s := s.(type) {
	case Expanded:
		return s.Flex
	case *Expanded:
		return s.Flex
	default:
		return DefaultWeight
	}
}
