// SPDX-License-Identifier: Unlicense OR MIT

// Package scene builds layout trees from textual descriptions.
package scene

import "rectlayout.org/tree"

// Demo describes a window wide row split 1:2:3, whose last cell
// holds a padded row of two equal cells. Tags are color names.
const Demo = `row:white@0(*,
	expanded:red@1(1),
	expanded:blue@1(2),
	expanded:green@1(3,
		padding:white@1(10,
			row:pink@1(1000,
				expanded:purple@1(1),
				expanded:yellow@1(1)))))`

// NewDemo returns a new Store holding the Demo scene.
func NewDemo(opts Options) *tree.Store {
	return MustParse(Demo, opts)
}
