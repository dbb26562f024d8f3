// Command routesim is the terminal front-end of the shortest-path lab:
// it builds demo topologies (or lets the user edit one interactively),
// compares Dijkstra against Bellman-Ford, and prints routing tables.
//
// All semantics live in the library packages; this binary only parses
// flags, drives the comparator, and renders results.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "routesim",
	Short: "Interactive shortest-path lab: Dijkstra vs Bellman-Ford",
	Long: `routesim builds small router topologies and compares the two classic
single-source shortest-path algorithms on them: Dijkstra (non-negative
weights, priority frontier) and Bellman-Ford (negative weights tolerated,
negative cycles detected). Links are one-way; add both directions for a
two-way connection.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
