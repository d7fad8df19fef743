// SPDX-License-Identifier: Unlicense OR MIT

// Command rectlayout lays out trees of rectangles and renders them.
package main

import "rectlayout.org/internal/cli"

func main() {
	cli.Execute()
}
