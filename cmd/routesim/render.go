package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/katalvlaran/routesim/compare"
	"github.com/katalvlaran/routesim/core"
	"github.com/katalvlaran/routesim/routing"
)

// renderTopology prints the current graph: router count and every one-way
// link as a table row.
func renderTopology(g *core.Graph) {
	nodes := g.Nodes()
	pterm.Info.Printfln("%d routers, %d one-way links", len(nodes), g.EdgeCount())

	if g.EdgeCount() == 0 {
		return
	}
	data := pterm.TableData{{"From", "To", "Weight"}}
	for _, e := range g.Edges() {
		data = append(data, []string{e.From, e.To, strconv.FormatInt(e.Weight, 10)})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// renderReport prints the side-by-side comparison of both engines.
func renderReport(r *compare.Report) {
	pterm.DefaultSection.Printfln("Shortest path %s → %s", r.Source, r.Dest)

	data := pterm.TableData{{"Algorithm", "Status", "Path", "Cost", "Elapsed"}}
	for _, o := range []compare.Outcome{r.Dijkstra, r.BellmanFord} {
		data = append(data, outcomeRow(o))
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()

	switch {
	case r.Agree():
		pterm.Success.Printfln("Engines agree on cost %d; %s finished first",
			r.Dijkstra.Cost, r.Faster())
	case r.BellmanFord.Status == compare.StatusNegativeCycle:
		pterm.Error.Println("Negative cycle reachable from the source: no finite shortest path exists")
	case r.Dijkstra.Status == compare.StatusNegativeWeight:
		pterm.Warning.Println("Topology has negative link weights: only Bellman-Ford's answer applies")
	}
}

// outcomeRow flattens one engine outcome into a table row.
func outcomeRow(o compare.Outcome) []string {
	path, cost, elapsed := "-", "-", "-"
	if o.Status == compare.StatusOK {
		path = pathString(o.Path)
		cost = strconv.FormatInt(o.Cost, 10)
	}
	if o.Elapsed > 0 {
		elapsed = o.Elapsed.String()
	}

	return []string{o.Algorithm, o.Status.String(), path, cost, elapsed}
}

// pathString joins a node sequence with arrows: A → C → F.
func pathString(nodes []string) string {
	return strings.Join(nodes, " → ")
}

// renderTables prints every router's table plus the sweep time.
func renderTables(set *routing.TableSet) {
	fmt.Print(set.String())
	pterm.Info.Printfln("%s sweep over %d routers took %s",
		set.Algorithm, len(set.Tables), set.Elapsed.Round(time.Microsecond))
}
