// SPDX-License-Identifier: Unlicense OR MIT

package scene

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"rectlayout.org/layout"
	"rectlayout.org/tree"
	"rectlayout.org/unit"
)

type parsed struct {
	Strategy layout.Strategy
	Tag      string
	Depth    int
	Children []parsed
}

func dump(s *tree.Store, n layout.Node) parsed {
	st, children, _ := s.Node(n)
	tag, _ := s.Tag(n)
	r, _ := s.Rect(n)
	p := parsed{Strategy: st, Tag: tag, Depth: r.Depth}
	for _, c := range children {
		p.Children = append(p.Children, dump(s, c))
	}
	return p
}

func TestParse(t *testing.T) {
	tests := map[string]struct {
		src  string
		want parsed
	}{
		"row with children": {
			src: "row(900, expanded(1), expanded(2.5))",
			want: parsed{Strategy: layout.Row{Width: 900}, Children: []parsed{
				{Strategy: layout.Expanded{Flex: 1}, Depth: 1},
				{Strategy: layout.Expanded{Flex: 2.5}, Depth: 1},
			}},
		},
		"expanded defaults": {
			src: "expanded(expanded())",
			want: parsed{Strategy: layout.Expanded{Flex: 1}, Children: []parsed{
				{Strategy: layout.Expanded{Flex: 1}, Depth: 1},
			}},
		},
		"tags and depths": {
			src: "padding:white@3(1, row:#ff00ff(2))",
			want: parsed{Strategy: layout.UniformPadding(1), Tag: "white", Depth: 3, Children: []parsed{
				{Strategy: layout.Row{Width: 2}, Tag: "#ff00ff", Depth: 1},
			}},
		},
		"padding two values": {
			src:  "padding(1 2)",
			want: parsed{Strategy: layout.Padding{Top: 1, Right: 2, Bottom: 1, Left: 2}},
		},
		"padding three values": {
			src:  "padding(1 2 3)",
			want: parsed{Strategy: layout.Padding{Top: 1, Right: 2, Bottom: 3, Left: 2}},
		},
		"padding four values": {
			src:  "padding(1 2 3 4)",
			want: parsed{Strategy: layout.Padding{Top: 1, Right: 2, Bottom: 3, Left: 4}},
		},
		"dp values": {
			src:  "padding(10dp 1px)",
			want: parsed{Strategy: layout.Padding{Top: 20, Right: 1, Bottom: 20, Left: 1}},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s, err := Parse(tt.src, Options{Metric: unit.Metric{PxPerDp: 2}})
			if err != nil {
				t.Fatal(err)
			}
			roots := s.Roots()
			if len(roots) != 1 {
				t.Fatalf("got %d roots", len(roots))
			}
			if diff := cmp.Diff(tt.want, dump(s, roots[0])); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.src, diff)
			}
		})
	}
}

func TestParseMultipleRoots(t *testing.T) {
	s, err := Parse("row(1); expanded(2);", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if n := len(s.Roots()); n != 2 {
		t.Errorf("got %d roots, want 2", n)
	}
}

func TestParseStarWidth(t *testing.T) {
	s := MustParse("row(*)", Options{})
	st, _, _ := s.Node(s.Roots()[0])
	if w := st.(layout.Row).Width; !math.IsInf(float64(w), 1) {
		t.Errorf("width = %v, want +Inf", w)
	}
	layout.Run(s, layout.Viewport(640, 480))
	if r, _ := s.Rect(s.Roots()[0]); r.Size != (layout.Size{Width: 640, Height: 480}) {
		t.Errorf("row(*) resolved to %v", r.Size)
	}
}

func TestParseErrors(t *testing.T) {
	tests := map[string]struct {
		src string
		msg string
		pos int
	}{
		"empty":           {src: "  ", msg: "empty scene", pos: 2},
		"unknown node":    {src: "column(1)", msg: `invalid node "column"`, pos: 7},
		"missing paren":   {src: "row", msg: "missing ( after node name", pos: 3},
		"bad value":       {src: "row(abc)", msg: `invalid value "abc"`, pos: 4},
		"missing comma":   {src: "row(1 expanded())", msg: `expected ","`, pos: 6},
		"trailing comma":  {src: "row(1,)", msg: `missing child after ","`, pos: 6},
		"unterminated":    {src: "row(1, expanded(", msg: "unexpected end", pos: 16},
		"bad tag":         {src: "row:Red(1)", msg: "invalid character 'R' in tag", pos: 4},
		"missing separator": {src: "row(1) row(2)", msg: `expected ";"`, pos: 7},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(tt.src, Options{})
			var serr *SyntaxError
			if !errors.As(err, &serr) {
				t.Fatalf("Parse(%q) error = %v, want *SyntaxError", tt.src, err)
			}
			if serr.Msg != tt.msg || serr.Pos != tt.pos {
				t.Errorf("Parse(%q) = %q at %d, want %q at %d", tt.src, serr.Msg, serr.Pos, tt.msg, tt.pos)
			}
			if !strings.Contains(err.Error(), "✗") {
				t.Errorf("error %q does not mark the position", err)
			}
		})
	}
}

func TestDemo(t *testing.T) {
	s := NewDemo(Options{})
	layout.Run(s, layout.Viewport(900, 600))

	var tags []string
	var rects []layout.Rect
	s.Walk(func(n, _ layout.Node, _ bool) bool {
		tag, _ := s.Tag(n)
		r, _ := s.Rect(n)
		tags = append(tags, tag)
		rects = append(rects, r)
		return true
	})
	wantTags := []string{"white", "red", "blue", "green", "white", "pink", "purple", "yellow"}
	if diff := cmp.Diff(wantTags, tags); diff != "" {
		t.Errorf("tags mismatch (-want +got):\n%s", diff)
	}
	if rects[0].Depth != 0 || rects[7].Depth != 1 {
		t.Errorf("depths = %d, %d; want 0, 1", rects[0].Depth, rects[7].Depth)
	}
	if got := rects[7].Size; got != (layout.Size{Width: 215, Height: 580}) {
		t.Errorf("yellow size = %v", got)
	}
}
