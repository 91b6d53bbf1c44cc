package main

import (
	"fmt"

	"fortio.org/log"
	"github.com/spf13/cobra"

	"github.com/taigrr/mechdraw/pkg/render"
	"github.com/taigrr/mechdraw/pkg/shapes"
	"github.com/taigrr/mechdraw/pkg/structures"
	"github.com/taigrr/mechdraw/pkg/style"
)

type frameOptions struct {
	nodes   int
	spacing float64
	fixity  string
	scale   float64
	grid    int
}

func newFrameCmd() *cobra.Command {
	var (
		opts   frameOptions
		output string
	)
	cmd := &cobra.Command{
		Use:   "frame",
		Short: "Draw a row of supported nodes joined by elements",
		Long: `Draw nodes spaced along x, each with the given support fixity,
joined by elements, over an optional background grid.

Styles used: node, support, element, grid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDrawing(output)
			if err != nil {
				return err
			}
			if err := drawFrame(d, opts); err != nil {
				return err
			}
			return d.Save(output)
		},
	}
	cmd.Flags().IntVarP(&opts.nodes, "nodes", "n", 3, "Number of nodes")
	cmd.Flags().Float64Var(&opts.spacing, "spacing", 1, "Distance between nodes")
	cmd.Flags().StringVar(&opts.fixity, "fixity", "pin", "Support fixity: free, pin, fixed, roller")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0.2, "Support symbol size")
	cmd.Flags().IntVar(&opts.grid, "grid", 0, "Interior grid lines (0 draws no grid)")
	cmd.Flags().StringVarP(&output, "output", "o", "frame.svg", "Output file")
	return cmd
}

// buildFrame returns n nodes on the x axis and the elements joining neighbors.
func buildFrame(n int, spacing float64, fixity structures.Fixity) ([]*structures.Node, []*structures.Element, error) {
	if n < 2 {
		return nil, nil, fmt.Errorf("frame needs at least 2 nodes, got %d: %w", n, shapes.ErrInvalidInput)
	}
	nodes := make([]*structures.Node, n)
	for i := range nodes {
		node, err := structures.NewNode(float64(i)*spacing, 0, fixity)
		if err != nil {
			return nil, nil, err
		}
		nodes[i] = node
	}
	elems := make([]*structures.Element, 0, n-1)
	for i := 1; i < n; i++ {
		e, err := structures.NewElement(nodes[i-1], nodes[i])
		if err != nil {
			return nil, nil, err
		}
		elems = append(elems, e)
	}
	return nodes, elems, nil
}

func drawFrame(s render.Surface, opts frameOptions) error {
	fixity, err := structures.ParseFixity(opts.fixity)
	if err != nil {
		return err
	}
	nodes, elems, err := buildFrame(opts.nodes, opts.spacing, fixity)
	if err != nil {
		return err
	}
	if opts.grid > 0 {
		span := float64(opts.nodes-1) * opts.spacing
		g, err := shapes.NewGrid(shapes.Pt(-opts.spacing/2, -span/2), shapes.Pt(span+opts.spacing/2, span/2), opts.grid)
		if err != nil {
			return err
		}
		grid := lookup("grid", style.Guide().WithZOrder(-10))
		if err := render.DrawGrid(s, g, grid); err != nil {
			return err
		}
	}
	elemStyle := lookup("element", style.Element())
	for _, e := range elems {
		if err := render.DrawElement(s, e, elemStyle); err != nil {
			return err
		}
	}
	nodeStyle := lookup("node", style.Node())
	supportStyle := lookup("support", style.Support())
	for _, n := range nodes {
		if err := render.DrawNode(s, n, opts.scale, nodeStyle, supportStyle); err != nil {
			return err
		}
	}
	log.Debugf("Frame: %d nodes, %d elements", len(nodes), len(elems))
	return nil
}
