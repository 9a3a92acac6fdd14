package main

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvnav/navgraph"
	"github.com/katalvlaran/lvnav/navmesh"
)

type rootOptions struct {
	scenePath string
	verbose   bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:          "lvnav",
		Short:        "Navigation mesh pathfinding over YAML scenes",
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if opts.verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	root.PersistentFlags().StringVarP(&opts.scenePath, "file", "f", "scene.yaml", "path to scene file")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(newStatsCmd(opts), newRouteCmd(opts))

	return root
}

// loadGraph reads the scene and builds its NavGraph.
func (o *rootOptions) loadGraph(ctx context.Context) (*navgraph.NavGraph, error) {
	log.Debugf("reading scene from %s", o.scenePath)
	sc, err := navmesh.LoadSceneFile(o.scenePath)
	if err != nil {
		return nil, err
	}

	return navgraph.FromScene(sc, navgraph.WithContext(ctx), navgraph.WithLogger(log.StandardLogger()))
}

func newStatsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print mesh and graph sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ng, err := opts.loadGraph(cmd.Context())
			if err != nil {
				return err
			}
			m := ng.Mesh()
			b := m.Bounds()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "triangles:   %d\n", m.TriangleCount())
			fmt.Fprintf(out, "lines:       %d\n", len(m.Lines()))
			fmt.Fprintf(out, "nodes:       %d\n", ng.NodeCount())
			fmt.Fprintf(out, "connections: %d\n", ng.ConnectionCount()/2)
			fmt.Fprintf(out, "bounds:      [%g %g] - [%g %g]\n", b.Min[0], b.Min[1], b.Max[0], b.Max[1])

			return nil
		},
	}
}
