// SPDX-License-Identifier: Unlicense OR MIT

package cli

import (
	"time"

	"go.uber.org/zap"

	"rectlayout.org/layout"
	"rectlayout.org/scene"
	"rectlayout.org/tree"
)

// frame is a scene laid out in one viewport.
type frame struct {
	size    layout.Size
	store   *tree.Store
	stats   layout.Stats
	elapsed time.Duration
}

// parseScene builds a fresh tree from the configured scene.
func (a *app) parseScene() (*tree.Store, error) {
	src, err := a.cfg.Scene.Load()
	if err != nil {
		return nil, err
	}
	return scene.Parse(src, scene.Options{Metric: a.cfg.Layout.Metric()})
}

// layoutFrame parses the scene and lays it out in a viewport of size
// vp. Every call gets its own tree, so calls may run concurrently.
func (a *app) layoutFrame(vp layout.Size) (*frame, error) {
	s, err := a.parseScene()
	if err != nil {
		return nil, err
	}
	f := &frame{size: vp, store: s}
	e := layout.NewEngine(s, layout.WithLogger(a.log))
	start := time.Now()
	f.stats = e.Run(layout.Viewport(vp.Width, vp.Height))
	f.elapsed = time.Since(start)
	if f.stats.Dangling > 0 {
		a.log.Warn("Scene holds dangling nodes", zap.Stringer("viewport", vp), zap.Int("dangling", f.stats.Dangling))
	}
	a.log.Debug("Laid out frame",
		zap.Stringer("viewport", vp),
		zap.Int("nodes", f.stats.Nodes),
		zap.Duration("elapsed", f.elapsed))
	return f, nil
}
