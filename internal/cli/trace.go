package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphwalk/pkg/graph"
	"github.com/matzehuels/graphwalk/pkg/replay"
	"github.com/matzehuels/graphwalk/pkg/scatter"
	"github.com/matzehuels/graphwalk/pkg/walk"
)

// traceCommand creates the trace command for printing a full run as text.
func (c *CLI) traceCommand() *cobra.Command {
	var (
		algoStr string
		nodes   int
		degree  int
		seed    int64
		start   int
		plain   bool
	)

	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Run an algorithm over a generated graph and print every event",
		Long: `Run an algorithm over a generated graph and print every event.

The graph is scattered deterministically from the seed, so the same flags
always produce the same trace. Use --plain for undecorated output suitable
for piping.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			algo, err := walk.ParseAlgorithm(algoStr)
			if err != nil {
				return err
			}
			ctx := withLogger(cmd.Context(), c.Logger)
			return c.runTrace(ctx, algo, nodes, degree, seed, graph.NodeID(start), plain)
		},
	}

	cmd.Flags().StringVarP(&algoStr, "algo", "a", "dfs", "algorithm: dfs, bfs, dijkstra, kruskal")
	cmd.Flags().IntVarP(&nodes, "nodes", "n", 12, "number of nodes to scatter")
	cmd.Flags().IntVar(&degree, "degree", 2, "minimum edges per node")
	cmd.Flags().Int64Var(&seed, "seed", 1, "scatter seed")
	cmd.Flags().IntVarP(&start, "start", "s", 0, "start node (ignored for kruskal)")
	cmd.Flags().BoolVar(&plain, "plain", c.Config.Plain, "undecorated output")

	return cmd
}

// runTrace scatters the graph, drains the run, and prints one line per event.
func (c *CLI) runTrace(ctx context.Context, algo walk.Algorithm, nodes, degree int, seed int64, start graph.NodeID, plain bool) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	g := scatter.Generate(nodes, scatter.WithSeed(seed), scatter.WithDegree(degree))
	logger.Debug("scattered graph", "nodes", g.NodeCount(), "edges", g.EdgeCount(), "seed", seed)

	stream, err := walk.Run(g, algo, start)
	if err != nil {
		return fmt.Errorf("trace %s: %w", algo, err)
	}

	var opts []replay.Option
	if plain {
		opts = append(opts, replay.WithPlain())
	} else {
		printInfo("Tracing %s", StyleHighlight.Render(algo.String()))
		if algo.NeedsStart() {
			printDetail("start node %d, seed %d", start, seed)
		} else {
			printDetail("seed %d", seed)
		}
		printStats(g.NodeCount(), g.EdgeCount())
		printNewline()
	}

	st := replay.NewState()
	for e := range stream.All() {
		st.Apply(e)
		fmt.Println(replay.Line(e, opts...))
	}

	if plain {
		fmt.Println(replay.Summary(st, opts...))
		return nil
	}
	printNewline()
	printSuccess("%s", replay.Summary(st, opts...))
	prog.done(fmt.Sprintf("Traced %d events", st.Applied()))
	return nil
}
