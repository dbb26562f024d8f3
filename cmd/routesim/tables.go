package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/routesim/routing"
)

var (
	tablesTopology string
	tablesAlgo     string
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Recompute and print every router's routing table",
	Long: `tables runs the selected engine from every router of a demo topology
and prints the resulting routing tables (destination, next hop, cost),
plus the total engine time of the sweep.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := demoTopology(tablesTopology)
		if err != nil {
			return err
		}

		set, err := routing.BuildAll(g, routing.Algorithm(tablesAlgo))
		if err != nil {
			return err
		}

		renderTables(set)

		return nil
	},
}

func init() {
	tablesCmd.Flags().StringVar(&tablesTopology, "topology", topoLab,
		"demo topology: lab|triangle|negative|cycle")
	tablesCmd.Flags().StringVar(&tablesAlgo, "algo", string(routing.AlgoDijkstra),
		"engine: dijkstra|bellman-ford")

	rootCmd.AddCommand(tablesCmd)
}
