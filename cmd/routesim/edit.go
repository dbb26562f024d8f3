package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/routesim/compare"
	"github.com/katalvlaran/routesim/core"
	"github.com/katalvlaran/routesim/routing"
)

var editTopology string

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit a topology interactively and query it between edits",
	Long: `edit starts from a demo topology (or an empty one with --topology none)
and reads commands from stdin: add or remove routers and one-way links,
show the topology, compare the engines on a pair, or print routing
tables. Type "help" for the command list, "exit" to leave.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var g *core.Graph
		if editTopology == "none" {
			g = core.NewGraph()
		} else {
			var err error
			if g, err = demoTopology(editTopology); err != nil {
				return err
			}
		}

		renderTopology(g)
		editLoop(cmd, g)

		return nil
	},
}

// editLoop reads commands until exit or EOF. Per-command failures are
// printed, never fatal: the session keeps its graph.
func editLoop(cmd *cobra.Command, g *core.Graph) {
	scanner := bufio.NewScanner(cmd.InOrStdin())
	prompt := func() { fmt.Fprint(cmd.OutOrStdout(), "routesim> ") }

	for prompt(); scanner.Scan(); prompt() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "exit" || fields[0] == "quit" {
			return
		}
		if err := dispatch(g, fields[0], fields[1:]); err != nil {
			pterm.Error.Println(err)
		}
	}
}

// dispatch applies one editor command to the live graph.
func dispatch(g *core.Graph, verb string, args []string) error {
	switch verb {
	case "add-router":
		if len(args) != 1 {
			return fmt.Errorf("usage: add-router <id>")
		}

		return g.AddNode(args[0])

	case "remove-router":
		if len(args) != 1 {
			return fmt.Errorf("usage: remove-router <id>")
		}

		return g.RemoveNode(args[0])

	case "add-link":
		if len(args) != 3 {
			return fmt.Errorf("usage: add-link <from> <to> <weight>")
		}
		w, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			return fmt.Errorf("weight %q is not an integer", args[2])
		}

		return g.AddEdge(args[0], args[1], w)

	case "remove-link":
		if len(args) != 2 {
			return fmt.Errorf("usage: remove-link <from> <to>")
		}

		return g.RemoveEdge(args[0], args[1])

	case "show":
		renderTopology(g)

		return nil

	case "compare":
		if len(args) != 2 {
			return fmt.Errorf("usage: compare <from> <to>")
		}
		report, err := compare.Compare(g, args[0], args[1])
		if err != nil {
			return err
		}
		renderReport(report)

		return nil

	case "tables":
		if len(args) != 1 {
			return fmt.Errorf("usage: tables <dijkstra|bellman-ford>")
		}
		set, err := routing.BuildAll(g, routing.Algorithm(args[0]))
		if err != nil {
			return err
		}
		renderTables(set)

		return nil

	case "help":
		printHelp()

		return nil

	default:
		return fmt.Errorf("unknown command %q (try \"help\")", verb)
	}
}

func printHelp() {
	pterm.Info.Println("Commands:")
	for _, line := range []string{
		"  add-router <id>                add a router",
		"  remove-router <id>             remove a router and its links",
		"  add-link <from> <to> <weight>  add a one-way link (add both directions for two-way)",
		"  remove-link <from> <to>        remove a one-way link",
		"  show                           print the current topology",
		"  compare <from> <to>            run both engines on the pair",
		"  tables <algo>                  print all routing tables (dijkstra|bellman-ford)",
		"  exit                           leave the editor",
	} {
		fmt.Println(line)
	}
}

func init() {
	editCmd.Flags().StringVar(&editTopology, "topology", topoLab,
		"starting topology: lab|triangle|negative|cycle|none")

	rootCmd.AddCommand(editCmd)
}
