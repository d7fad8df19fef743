// SPDX-License-Identifier: Unlicense OR MIT

package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"rectlayout.org/layout"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// dumpNode is one laid out node. Positions are relative to the
// center of the parent's space, y up.
type dumpNode struct {
	Node   uint32  `json:"node"`
	Parent *uint32 `json:"parent,omitempty"`
	Tag    string  `json:"tag,omitempty"`
	Depth  int     `json:"depth"`
	X      float32 `json:"x"`
	Y      float32 `json:"y"`
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
}

type dumpFrame struct {
	Width    float32    `json:"width"`
	Height   float32    `json:"height"`
	Dangling int        `json:"dangling,omitempty"`
	Nodes    []dumpNode `json:"nodes"`
}

func newDumpCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Lay out the scene and print the rectangle of every node.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.dump(cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringP("format", "f", "table", "output format, table or json")
	a.bind(cmd.Flags().Lookup("format"), "output.format")
	return cmd
}

func (a *app) dump(w io.Writer) error {
	vps, err := a.cfg.Layout.Viewports()
	if err != nil {
		return err
	}
	frames := make([]dumpFrame, 0, len(vps))
	for _, vp := range vps {
		f, err := a.layoutFrame(vp)
		if err != nil {
			return err
		}
		frames = append(frames, collect(f))
	}
	if a.cfg.Output.Format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(frames)
	}
	return writeTable(w, frames)
}

func collect(f *frame) dumpFrame {
	df := dumpFrame{Width: f.size.Width, Height: f.size.Height, Dangling: f.stats.Dangling}
	f.store.Walk(func(n, parent layout.Node, root bool) bool {
		r, _ := f.store.Rect(n)
		tag, _ := f.store.Tag(n)
		dn := dumpNode{
			Node:   uint32(n),
			Tag:    tag,
			Depth:  r.Depth,
			X:      r.Position.X,
			Y:      r.Position.Y,
			Width:  r.Size.Width,
			Height: r.Size.Height,
		}
		if !root {
			p := uint32(parent)
			dn.Parent = &p
		}
		df.Nodes = append(df.Nodes, dn)
		return true
	})
	return df
}

func writeTable(w io.Writer, frames []dumpFrame) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, f := range frames {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "# %gx%g\n", f.Width, f.Height)
		fmt.Fprintln(tw, "NODE\tPARENT\tTAG\tDEPTH\tX\tY\tWIDTH\tHEIGHT")
		for _, n := range f.Nodes {
			parent := "-"
			if n.Parent != nil {
				parent = strconv.FormatUint(uint64(*n.Parent), 10)
			}
			tag := n.Tag
			if tag == "" {
				tag = "-"
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%g\t%g\t%g\t%g\n",
				n.Node, parent, tag, n.Depth, n.X, n.Y, n.Width, n.Height)
		}
	}
	return tw.Flush()
}
