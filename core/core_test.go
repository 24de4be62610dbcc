package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yarovoy/cfpq/core"
)

func TestAddVertex_Idempotent(t *testing.T) {
	t.Parallel()

	g := core.NewLabeledGraph()
	require.NoError(t, g.AddVertex("a", core.WithStart(), core.WithFinal()))
	require.NoError(t, g.AddVertex("a"))
	require.Equal(t, 1, g.VertexCount())

	v, err := g.Vertex("a")
	require.NoError(t, err)
	require.True(t, v.Start)
	require.True(t, v.Final)
}

func TestAddVertex_EmptyID(t *testing.T) {
	t.Parallel()

	g := core.NewLabeledGraph()
	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
}

func TestAddEdge_CreatesEndpointsAndLabel(t *testing.T) {
	t.Parallel()

	g := core.NewLabeledGraph()
	eid, err := g.AddEdge("u", "v", "a")
	require.NoError(t, err)
	require.True(t, g.HasVertex("u"))
	require.True(t, g.HasVertex("v"))
	require.True(t, g.HasEdge("u", "v"))

	e, err := g.Edge(eid)
	require.NoError(t, err)
	require.Equal(t, "a", e.Label)
}

func TestAddEdge_SelfLoopAndParallelEdgesAllowed(t *testing.T) {
	t.Parallel()

	g := core.NewLabeledGraph()
	_, err := g.AddEdge("u", "u", "a")
	require.NoError(t, err)

	id1, err := g.AddEdge("u", "v", "a")
	require.NoError(t, err)
	id2, err := g.AddEdge("u", "v", "a")
	require.NoError(t, err)
	require.NotEqual(t, id1, id2)
	require.Equal(t, 3, g.EdgeCount())
}

func TestNeighborIDsAndAdjacencyList(t *testing.T) {
	t.Parallel()

	g := core.NewLabeledGraph()
	_, _ = g.AddEdge("u", "v", "a")
	_, _ = g.AddEdge("u", "w", "b")
	_, _ = g.AddEdge("u", "v", "c")

	neigh, err := g.NeighborIDs("u")
	require.NoError(t, err)
	require.Equal(t, []string{"v", "w"}, neigh)

	adj := g.AdjacencyList()
	require.Len(t, adj["u"], 3)
}

func TestAlphabetExcludesEpsilon(t *testing.T) {
	t.Parallel()

	g := core.NewLabeledGraph()
	_, _ = g.AddEdge("u", "v", "a")
	_, _ = g.AddEdge("v", "w", "")
	_, _ = g.AddEdge("w", "u", "b")

	require.Equal(t, []string{"a", "b"}, g.Alphabet())
}

func TestClone_IsIndependent(t *testing.T) {
	t.Parallel()

	g := core.NewLabeledGraph()
	_, _ = g.AddEdge("u", "v", "a")

	clone := g.Clone()
	_, _ = clone.AddEdge("v", "w", "b")

	require.Equal(t, 1, g.EdgeCount())
	require.Equal(t, 2, clone.EdgeCount())
}

func TestVertices_SortedOrder(t *testing.T) {
	t.Parallel()

	g := core.NewLabeledGraph()
	require.NoError(t, g.AddVertex("c"))
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))

	require.Equal(t, []string{"a", "b", "c"}, g.Vertices())
}

func TestVertexAndEdge_NotFound(t *testing.T) {
	t.Parallel()

	g := core.NewLabeledGraph()
	_, err := g.Vertex("missing")
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = g.Edge("missing")
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
}
