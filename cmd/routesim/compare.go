package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/routesim/compare"
)

var (
	compareTopology string
	compareFrom     string
	compareTo       string
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run Dijkstra and Bellman-Ford on the same pair and contrast them",
	Long: `compare runs both engines against the same snapshot of a demo topology
for one source/destination pair, then prints each engine's path, cost,
and core-loop time side by side. On topologies with negative link
weights, Dijkstra is marked inapplicable instead of being run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := demoTopology(compareTopology)
		if err != nil {
			return err
		}

		report, err := compare.Compare(g, compareFrom, compareTo)
		if err != nil {
			return err
		}

		renderTopology(g)
		renderReport(report)

		return nil
	},
}

func init() {
	compareCmd.Flags().StringVar(&compareTopology, "topology", topoLab,
		"demo topology: lab|triangle|negative|cycle")
	compareCmd.Flags().StringVar(&compareFrom, "from", "A", "source router ID")
	compareCmd.Flags().StringVar(&compareTo, "to", "F", "destination router ID")

	rootCmd.AddCommand(compareCmd)
}
