// SPDX-License-Identifier: Unlicense OR MIT

package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rectlayout.org/layout"
)

// frameTimes summarizes the duration of repeated layout passes.
type frameTimes struct {
	Frames        int
	Min, Avg, Max time.Duration
}

func (t *frameTimes) add(d time.Duration) {
	if t.Frames == 0 || d < t.Min {
		t.Min = d
	}
	if d > t.Max {
		t.Max = d
	}
	t.Avg = (t.Avg*time.Duration(t.Frames) + d) / time.Duration(t.Frames+1)
	t.Frames++
}

func newBenchCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time repeated layout passes over the scene.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.bench(cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntP("frames", "n", 100, "number of layout passes per viewport")
	a.bind(cmd.Flags().Lookup("frames"), "output.frames")
	return cmd
}

func (a *app) bench(w io.Writer) error {
	vps, err := a.cfg.Layout.Viewports()
	if err != nil {
		return err
	}
	for _, vp := range vps {
		s, err := a.parseScene()
		if err != nil {
			return err
		}
		// Passes repeat on one tree, as frames of a window would.
		e := layout.NewEngine(s, layout.WithLogger(a.log))
		cs := layout.Viewport(vp.Width, vp.Height)
		var t frameTimes
		var st layout.Stats
		for range a.cfg.Output.Frames {
			start := time.Now()
			st = e.Run(cs)
			t.add(time.Since(start))
		}
		a.log.Info("Frame times",
			zap.Stringer("viewport", vp),
			zap.Int("frames", t.Frames),
			zap.Int("nodes", st.Nodes),
			zap.Duration("min", t.Min),
			zap.Duration("avg", t.Avg),
			zap.Duration("max", t.Max))
		fmt.Fprintf(w, "%gx%g: %d frames of %d nodes, min %v avg %v max %v\n",
			vp.Width, vp.Height, t.Frames, st.Nodes, t.Min, t.Avg, t.Max)
	}
	return nil
}
