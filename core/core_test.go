// Package core_test contains unit tests for the Graph model:
// node/edge lifecycle, the endpoint-existence invariant, cascade removal,
// deterministic enumeration, and snapshot isolation via Clone.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routesim/core"
)

// buildTriangle constructs the directed triangle used throughout the tests:
// A→B(1), B→C(2), A→C(4).
func buildTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddNode(id))
	}
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("A", "C", 4))

	return g
}

func TestAddNode_Validation(t *testing.T) {
	g := core.NewGraph()

	// Empty ID is rejected outright.
	assert.ErrorIs(t, g.AddNode(""), core.ErrEmptyNodeID)

	// First insertion succeeds, second is a duplicate.
	require.NoError(t, g.AddNode("A"))
	assert.ErrorIs(t, g.AddNode("A"), core.ErrDuplicateNode)

	// The failed duplicate left the graph unchanged.
	assert.Equal(t, 1, g.NodeCount())
}

func TestAddEdge_EndpointInvariant(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("A"))

	// Neither endpoint may be missing; edges never auto-create nodes.
	assert.ErrorIs(t, g.AddEdge("A", "B", 1), core.ErrNodeNotFound)
	assert.ErrorIs(t, g.AddEdge("X", "A", 1), core.ErrNodeNotFound)
	assert.Equal(t, 0, g.EdgeCount())

	require.NoError(t, g.AddNode("B"))
	require.NoError(t, g.AddEdge("A", "B", 7))

	// The identical (from,to) pair is rejected, even with another weight.
	assert.ErrorIs(t, g.AddEdge("A", "B", 9), core.ErrDuplicateEdge)
	w, err := g.Weight("A", "B")
	require.NoError(t, err)
	assert.Equal(t, int64(7), w, "rejected insert must not update the weight")
}

func TestAddEdge_DirectedNoMirror(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("A"))
	require.NoError(t, g.AddNode("B"))
	require.NoError(t, g.AddEdge("A", "B", 3))

	// A one-way link must not be visible in the reverse direction.
	assert.True(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))

	nbrsB, err := g.Neighbors("B")
	require.NoError(t, err)
	assert.Empty(t, nbrsB, "incoming edge must not appear as B's neighbor")
}

func TestRemoveEdge(t *testing.T) {
	g := buildTriangle(t)

	require.NoError(t, g.RemoveEdge("A", "C"))
	assert.False(t, g.HasEdge("A", "C"))
	assert.Equal(t, 2, g.EdgeCount())

	// Removing it again (or a never-existing edge) fails cleanly.
	assert.ErrorIs(t, g.RemoveEdge("A", "C"), core.ErrEdgeNotFound)
	assert.ErrorIs(t, g.RemoveEdge("C", "A"), core.ErrEdgeNotFound)
	assert.Equal(t, 2, g.EdgeCount())
}

func TestRemoveNode_CascadesIncidentEdges(t *testing.T) {
	g := buildTriangle(t)
	// Extra incoming edge so B has both directions covered: C→B.
	require.NoError(t, g.AddEdge("C", "B", 5))

	require.NoError(t, g.RemoveNode("B"))

	// No dangling edges: neighbors() of any remaining node never returns B.
	for _, id := range g.Nodes() {
		nbrs, err := g.Neighbors(id)
		require.NoError(t, err)
		for _, e := range nbrs {
			assert.NotEqual(t, "B", e.To)
		}
	}
	// Only A→C survives out of the original four edges.
	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.HasEdge("A", "C"))

	// B itself is gone.
	assert.False(t, g.HasNode("B"))
	assert.ErrorIs(t, g.RemoveNode("B"), core.ErrNodeNotFound)
	_, err := g.Neighbors("B")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestEnumeration_Deterministic(t *testing.T) {
	g := buildTriangle(t)

	assert.Equal(t, []string{"A", "B", "C"}, g.Nodes())

	edges := g.Edges()
	require.Len(t, edges, 3)
	assert.Equal(t, core.Edge{From: "A", To: "B", Weight: 1}, edges[0])
	assert.Equal(t, core.Edge{From: "A", To: "C", Weight: 4}, edges[1])
	assert.Equal(t, core.Edge{From: "B", To: "C", Weight: 2}, edges[2])

	nbrs, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Len(t, nbrs, 2)
	assert.Equal(t, "B", nbrs[0].To)
	assert.Equal(t, "C", nbrs[1].To)
}

func TestHasNegativeEdge(t *testing.T) {
	g := buildTriangle(t)
	assert.False(t, g.HasNegativeEdge())

	require.NoError(t, g.RemoveEdge("B", "C"))
	require.NoError(t, g.AddEdge("B", "C", -3))
	assert.True(t, g.HasNegativeEdge())
}

func TestClone_SnapshotIsolation(t *testing.T) {
	g := buildTriangle(t)
	snap := g.Clone()

	// Mutations of the original must not leak into the snapshot...
	require.NoError(t, g.RemoveNode("C"))
	assert.True(t, snap.HasNode("C"))
	assert.True(t, snap.HasEdge("B", "C"))
	assert.Equal(t, 3, snap.EdgeCount())

	// ...and vice versa.
	require.NoError(t, snap.AddNode("D"))
	assert.False(t, g.HasNode("D"))
}

func TestClear(t *testing.T) {
	g := buildTriangle(t)
	g.Clear()

	assert.Equal(t, 0, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Empty(t, g.Nodes())

	// The cleared graph is fully usable again.
	require.NoError(t, g.AddNode("A"))
}
