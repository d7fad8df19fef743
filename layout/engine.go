// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"sync/atomic"

	"go.uber.org/zap"

	"rectlayout.org/f32"
)

// Engine lays out every root of a Tree.
//
// An Engine must not run more than one pass at a time; Run panics if
// it is called while another Run on the same Engine is in progress.
type Engine struct {
	tree    Tree
	log     *zap.Logger
	running atomic.Bool
}

// Stats summarizes a layout pass.
type Stats struct {
	// Roots is the number of roots laid out.
	Roots int
	// Nodes is the number of nodes whose strategy ran, roots
	// included.
	Nodes int
	// Dangling is the number of child handles skipped because
	// they were not in the tree.
	Dangling int
}

// Option configures an Engine.
type Option func(e *Engine)

// WithLogger makes the engine report skipped nodes to l at debug
// level.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// NewEngine returns an engine for laying out t.
func NewEngine(t Tree, opts ...Option) *Engine {
	e := &Engine{tree: t, log: zap.NewNop()}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Run lays out every root with constraints cs, placing each root at
// the origin with the size its strategy resolved. Descendants are
// placed by their parents' strategies. Nodes not reachable from a
// root are left untouched.
func (e *Engine) Run(cs Constraints) Stats {
	if !e.running.CompareAndSwap(false, true) {
		panic("layout: Run called while another pass is in progress")
	}
	defer e.running.Store(false)
	p := &pass{tree: e.tree, log: e.log}
	gtx := Context{Constraints: cs, pass: p}
	for _, root := range e.tree.Roots() {
		sz, ok := gtx.Layout(root, cs)
		if !ok {
			continue
		}
		p.stats.Roots++
		e.tree.Place(root, f32.Point{}, sz)
	}
	return p.stats
}

// Run lays out t with constraints cs. It is shorthand for
// NewEngine(t).Run(cs).
func Run(t Tree, cs Constraints) Stats {
	return NewEngine(t).Run(cs)
}
