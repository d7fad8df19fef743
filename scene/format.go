// SPDX-License-Identifier: Unlicense OR MIT

package scene

import (
	"fmt"
	"math"
	"strconv"

	"rectlayout.org/layout"
	"rectlayout.org/tree"
	"rectlayout.org/unit"
)

// Options control how a scene description is turned into nodes.
type Options struct {
	// Metric converts dp values to pixels.
	Metric unit.Metric
}

// SyntaxError describes an invalid scene description. Pos is the byte
// offset of the error in Source.
type SyntaxError struct {
	Source string
	Pos    int
	Msg    string
}

func (e *SyntaxError) Error() string {
	marked := e.Source[:e.Pos] + "✗" + e.Source[e.Pos:]
	return fmt.Sprintf("scene: %s:%d: %s", marked, e.Pos, e.Msg)
}

type formatState struct {
	orig  string
	expr  string
	store *tree.Store
	opts  Options
}

type formatError string

// Parse builds a Store from a scene description.
//
// A description is a list of root nodes separated by semicolons.
// Nodes are written like function calls, with their children
// following their parameters:
//
//	row(900, expanded(1), expanded(2), padding(10dp, expanded()))
//
// Available nodes:
//
//	row(<width>, children...) is a layout.Row. A width of * takes
//	all the width offered.
//
//	expanded(<flex>, children...) is a layout.Expanded. The flex
//	weight may be omitted and defaults to 1.
//
//	padding(<insets>, children...) is a layout.Padding. Insets are
//	either: one value for uniform insets; two values for top/bottom
//	and right/left insets; three values for top, right/left and
//	bottom insets; or four values for top, right, bottom, left
//	insets. Values are separated by spaces.
//
// Values are pixels unless suffixed with dp. A node name may be
// followed by :tag to label the node and @depth to set its paint
// order, as in expanded:red@2(1). Without @, a node's depth is its
// nesting level.
func Parse(src string, opts Options) (*tree.Store, error) {
	s := tree.New()
	if _, err := ParseInto(s, src, opts); err != nil {
		return nil, err
	}
	return s, nil
}

// ParseInto adds the roots described by src to s and returns them.
// On error, nodes parsed before the error remain in s.
func ParseInto(s *tree.Store, src string, opts Options) (roots []layout.Node, err error) {
	state := &formatState{
		orig:  src,
		expr:  src,
		store: s,
		opts:  opts,
	}
	defer func() {
		if e := recover(); e != nil {
			ferr, ok := e.(formatError)
			if !ok {
				panic(e)
			}
			err = &SyntaxError{
				Source: state.orig,
				Pos:    len(state.orig) - len(state.expr),
				Msg:    string(ferr),
			}
		}
	}()
	for {
		skipWhitespace(state)
		if len(state.expr) == 0 {
			break
		}
		roots = append(roots, formatNode(state, nil, 0))
		skipWhitespace(state)
		if len(state.expr) == 0 {
			break
		}
		expect(state, ";")
	}
	if len(roots) == 0 {
		errorf("empty scene")
	}
	return roots, nil
}

// MustParse is like Parse but panics if src is invalid.
func MustParse(src string, opts Options) *tree.Store {
	s, err := Parse(src, opts)
	if err != nil {
		panic(err)
	}
	return s
}

func formatNode(state *formatState, parent *layout.Node, level int) layout.Node {
	name := parseName(state)
	if name == "" {
		errorf("missing node name")
	}
	var opts []tree.Option
	depth := level
	if peek(state) == ':' {
		expect(state, ":")
		opts = append(opts, tree.Tag(parseTag(state)))
	}
	if peek(state) == '@' {
		expect(state, "@")
		depth = parseInt(state)
	}
	opts = append(opts, tree.Depth(depth))
	expect(state, "(")
	var st layout.Strategy
	switch name {
	case "row":
		st = layout.Row{Width: parseWidth(state)}
	case "expanded":
		flex := layout.DefaultWeight
		if isNumber(peek(state)) {
			flex = parseFloat(state)
		}
		st = layout.Expanded{Flex: flex}
	case "padding":
		st = parsePadding(state)
	default:
		errorf("invalid node %q", name)
	}
	var n layout.Node
	if parent == nil {
		n = state.store.Add(st, opts...)
	} else {
		var err error
		n, err = state.store.AddChild(*parent, st, opts...)
		if err != nil {
			errorf("%v", err)
		}
	}
	first := name == "expanded" && peek(state) != ','
	for {
		switch peek(state) {
		case ')':
			expect(state, ")")
			return n
		case ',':
			expect(state, ",")
		default:
			if !first {
				errorf("expected \",\"")
			}
		}
		first = false
		if peek(state) == ')' {
			errorf("missing child after \",\"")
		}
		formatNode(state, &n, level+1)
	}
}

func parseWidth(state *formatState) float32 {
	if peek(state) == '*' {
		expect(state, "*")
		return float32(math.Inf(1))
	}
	return parseValue(state)
}

func parsePadding(state *formatState) layout.Padding {
	v1 := parseValue(state)
	if !isNumber(peek(state)) {
		return layout.UniformPadding(v1)
	}
	v2 := parseValue(state)
	if !isNumber(peek(state)) {
		return layout.Padding{Top: v1, Right: v2, Bottom: v1, Left: v2}
	}
	v3 := parseValue(state)
	if !isNumber(peek(state)) {
		return layout.Padding{Top: v1, Right: v2, Bottom: v3, Left: v2}
	}
	v4 := parseValue(state)
	return layout.Padding{Top: v1, Right: v2, Bottom: v3, Left: v4}
}

func parseValue(state *formatState) float32 {
	skipWhitespace(state)
	i := 0
	for ; i < len(state.expr); i++ {
		c := state.expr[i]
		if !isNumber(rune(c)) && (c < 'a' || 'z' < c) {
			break
		}
	}
	v, err := unit.Parse(state.expr[:i])
	if err != nil {
		errorf("invalid value %q", state.expr[:i])
	}
	state.expr = state.expr[i:]
	return state.opts.Metric.Px(v)
}

func parseName(state *formatState) string {
	skipWhitespace(state)
	i := 0
	for ; i < len(state.expr); i++ {
		c := state.expr[i]
		switch {
		case c == '(' || c == ':' || c == '@':
			fname := state.expr[:i]
			state.expr = state.expr[i:]
			return fname
		case c < 'a' || 'z' < c:
			errorf("invalid character '%c' in node name", c)
		}
	}
	state.expr = state.expr[i:]
	errorf("missing ( after node name")
	return ""
}

func parseTag(state *formatState) string {
	i := 0
	for ; i < len(state.expr); i++ {
		c := state.expr[i]
		if c == '(' || c == '@' {
			break
		}
		if !isTagChar(c) {
			errorf("invalid character '%c' in tag", c)
		}
	}
	if i == 0 {
		errorf("empty tag")
	}
	tag := state.expr[:i]
	state.expr = state.expr[i:]
	return tag
}

func parseFloat(state *formatState) float32 {
	i := 0
	for ; i < len(state.expr); i++ {
		if !isNumber(rune(state.expr[i])) {
			break
		}
	}
	expr := state.expr[:i]
	v, err := strconv.ParseFloat(expr, 32)
	if err != nil {
		errorf("invalid number %q", expr)
	}
	state.expr = state.expr[i:]
	return float32(v)
}

func parseInt(state *formatState) int {
	i := 0
	for ; i < len(state.expr); i++ {
		c := state.expr[i]
		if (c < '0' || c > '9') && (i > 0 || c != '-') {
			break
		}
	}
	expr := state.expr[:i]
	v, err := strconv.Atoi(expr)
	if err != nil {
		errorf("invalid number %q", expr)
	}
	state.expr = state.expr[i:]
	return v
}

func isNumber(c rune) bool {
	return ('0' <= c && c <= '9') || c == '.' || c == '-'
}

func isTagChar(c byte) bool {
	return ('a' <= c && c <= 'z') || ('0' <= c && c <= '9') || c == '#' || c == '-' || c == '_'
}

func peek(state *formatState) rune {
	skipWhitespace(state)
	if len(state.expr) == 0 {
		errorf("unexpected end")
	}
	return rune(state.expr[0])
}

func expect(state *formatState, str string) {
	skipWhitespace(state)
	n := len(str)
	if len(state.expr) < n || state.expr[:n] != str {
		errorf("expected %q", str)
	}
	state.expr = state.expr[n:]
}

func skipWhitespace(state *formatState) {
	for len(state.expr) > 0 {
		switch state.expr[0] {
		case '\t', '\n', '\v', '\f', '\r', ' ':
			state.expr = state.expr[1:]
		default:
			return
		}
	}
}

func errorf(f string, args ...interface{}) {
	panic(formatError(fmt.Sprintf(f, args...)))
}

func (e formatError) Error() string {
	return string(e)
}
