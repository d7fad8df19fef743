// SPDX-License-Identifier: Unlicense OR MIT

/*
Package paint turns laid out trees into pixels.

Layout positions are offsets from the center of the parent's space with
the y axis pointing up. Resolve accumulates them into boxes in image
space, where the origin is the top left corner of the viewport and the
y axis points down, and Fill paints the boxes in depth order.
*/
package paint

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"sort"
	"strconv"

	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"

	"rectlayout.org/f32"
	"rectlayout.org/layout"
	"rectlayout.org/tree"
)

// Box is a node resolved into image space.
type Box struct {
	Node layout.Node
	// Bounds is in viewport pixels, origin top left.
	Bounds f32.Rectangle
	// Center is the node's center relative to the viewport
	// center, y up.
	Center f32.Point
	Depth  int
	Tag    string
}

// Palette maps node tags to colors. It reports false for tags that
// should not be painted.
type Palette func(tag string) (color.Color, bool)

// Colornames is the Palette of SVG 1.1 color names, as in "pink", and
// hexadecimal #rrggbb colors.
func Colornames(tag string) (color.Color, bool) {
	if c, ok := colornames.Map[tag]; ok {
		return c, true
	}
	if len(tag) == 7 && tag[0] == '#' {
		v, err := strconv.ParseUint(tag[1:], 16, 32)
		if err != nil {
			return nil, false
		}
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, true
	}
	return nil, false
}

// Resolve returns the boxes of every node reachable from a root of s,
// sorted by depth. Nodes of equal depth keep parent before child and
// sibling order. Roots are centered in a viewport of size vp.
func Resolve(s *tree.Store, vp layout.Size) []Box {
	var boxes []Box
	centers := make(map[layout.Node]f32.Point)
	origin := f32.Pt(vp.Width/2, vp.Height/2)
	s.Walk(func(n, parent layout.Node, root bool) bool {
		r, _ := s.Rect(n)
		c := r.Position
		if !root {
			c = centers[parent].Add(c)
		}
		centers[n] = c
		tag, _ := s.Tag(n)
		boxes = append(boxes, Box{
			Node:   n,
			Bounds: f32.Centered(origin.Add(c.FlipY()), f32.Pt(r.Size.Width, r.Size.Height)),
			Center: c,
			Depth:  r.Depth,
			Tag:    tag,
		})
		return true
	})
	sort.SliceStable(boxes, func(i, j int) bool {
		return boxes[i].Depth < boxes[j].Depth
	})
	return boxes
}

// Fill paints boxes onto dst in order, using pal for their colors.
// Boxes whose tag has no color are skipped.
func Fill(dst draw.Image, boxes []Box, pal Palette) {
	for _, b := range boxes {
		c, ok := pal(b.Tag)
		if !ok {
			continue
		}
		r := b.Bounds.Round().Intersect(dst.Bounds())
		if r.Empty() {
			continue
		}
		draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Over)
	}
}

// Render paints boxes into a new image of the viewport size vp,
// scaled by scale.
func Render(boxes []Box, vp layout.Size, scale float32, pal Palette) (*image.RGBA, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("paint: invalid scale %g", scale)
	}
	full := image.NewRGBA(f32.Rect(0, 0, vp.Width, vp.Height).Round())
	Fill(full, boxes, pal)
	if scale == 1 {
		return full, nil
	}
	dst := image.NewRGBA(f32.Rect(0, 0, vp.Width*scale, vp.Height*scale).Round())
	draw.CatmullRom.Scale(dst, dst.Bounds(), full, full.Bounds(), draw.Src, nil)
	return dst, nil
}

// EncodePNG writes img to w in PNG format.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("paint: encode png: %w", err)
	}
	return nil
}
