// SPDX-License-Identifier: Unlicense OR MIT

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"rectlayout.org/layout"
	"rectlayout.org/paint"
)

func newRenderCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Lay out the scene and write one PNG per viewport size.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.render(cmd)
		},
	}
	cmd.Flags().StringP("out", "o", ".", "output directory")
	cmd.Flags().Float32("scale", 1, "scale factor applied to the rendered images")
	a.bind(cmd.Flags().Lookup("out"), "output.dir")
	a.bind(cmd.Flags().Lookup("scale"), "output.scale")
	return cmd
}

func (a *app) render(cmd *cobra.Command) error {
	vps, err := a.cfg.Layout.Viewports()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(a.cfg.Output.Dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	paths := make([]string, len(vps))
	g, ctx := errgroup.WithContext(cmd.Context())
	for i, vp := range vps {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := a.renderFrame(vp)
			paths[i] = p
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Fprintln(cmd.OutOrStdout(), p)
	}
	return nil
}

func (a *app) renderFrame(vp layout.Size) (string, error) {
	f, err := a.layoutFrame(vp)
	if err != nil {
		return "", err
	}
	img, err := paint.Render(paint.Resolve(f.store, vp), vp, a.cfg.Output.Scale, paint.Colornames)
	if err != nil {
		return "", err
	}
	name := filepath.Join(a.cfg.Output.Dir, fmt.Sprintf("frame-%gx%g.png", vp.Width, vp.Height))
	out, err := os.Create(name)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", name, err)
	}
	if err := paint.EncodePNG(out, img); err != nil {
		out.Close()
		return "", err
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	a.log.Info("Rendered frame", zap.String("file", name), zap.Stringer("bounds", img.Bounds()))
	return name, nil
}
