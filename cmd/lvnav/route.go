package main

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvnav/astar"
	"github.com/katalvlaran/lvnav/navgraph"
)

type routeOptions struct {
	from, to  []float64
	heuristic string
	raw       bool
}

var heuristics = map[string]astar.Heuristic{
	"chebyshev": astar.Chebyshev,
	"euclidean": astar.Euclidean,
	"manhattan": astar.Manhattan,
	"octile":    astar.Octile,
	"zero":      astar.Zero,
}

func newRouteCmd(root *rootOptions) *cobra.Command {
	opts := &routeOptions{}
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Find a path between two points of the scene",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRoute(cmd, root, opts)
		},
	}
	cmd.Flags().Float64SliceVar(&opts.from, "from", nil, "start position x,y")
	cmd.Flags().Float64SliceVar(&opts.to, "to", nil, "goal position x,y")
	cmd.Flags().StringVar(&opts.heuristic, "heuristic", "chebyshev", "A* heuristic: chebyshev, euclidean, manhattan, octile or zero")
	cmd.Flags().BoolVar(&opts.raw, "raw", false, "print the unsmoothed node path as well")

	return cmd
}

func runRoute(cmd *cobra.Command, root *rootOptions, opts *routeOptions) error {
	start, err := toPoint("from", opts.from)
	if err != nil {
		return err
	}
	goal, err := toPoint("to", opts.to)
	if err != nil {
		return err
	}
	h, ok := heuristics[opts.heuristic]
	if !ok {
		return fmt.Errorf("unknown heuristic %q", opts.heuristic)
	}

	ctx := cmd.Context()
	ng, err := root.loadGraph(ctx)
	if err != nil {
		return err
	}
	res, err := navgraph.NewPathfinder(navgraph.WithHeuristic(h)).FindPathDebug(ctx, start, goal, ng)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(res.Path) == 0 {
		fmt.Fprintln(out, "no path")
		return nil
	}
	if opts.raw {
		fmt.Fprintf(out, "nodes: %d (length %.3f)\n", len(res.NodePositions), planar.Length(orb.LineString(res.NodePositions)))
	}
	fmt.Fprintf(out, "path: %d points (length %.3f)\n", len(res.Path), planar.Length(orb.LineString(res.Path)))
	for _, p := range res.Path {
		fmt.Fprintf(out, "  %.3f %.3f\n", p[0], p[1])
	}

	return nil
}

func toPoint(flag string, v []float64) (orb.Point, error) {
	if len(v) != 2 {
		return orb.Point{}, fmt.Errorf("--%s needs exactly two coordinates, got %d", flag, len(v))
	}

	return orb.Point{v[0], v[1]}, nil
}
