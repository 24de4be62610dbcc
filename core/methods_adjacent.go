package core

import "sort"

// OutEdges lists all edges with From == id, sorted by Edge.ID.
// Complexity: O(d log d).
func (g *LabeledGraph) OutEdges(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	_, ok := g.vertices[id]
	g.muVert.RUnlock()
	if !ok {
		return nil, ErrVertexNotFound
	}

	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	var out []*Edge
	for _, edgeSet := range g.adjacency[id] {
		for eid := range edgeSet {
			out = append(out, g.edges[eid])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the unique, sorted set of vertices reachable from id by
// a single edge.
// Complexity: O(d log d).
func (g *LabeledGraph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.OutEdges(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		seen[e.To] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)

	return out, nil
}

// AdjacencyList returns a snapshot mapping each vertex ID to the sorted IDs
// of its incident (outgoing) edges.
// Complexity: O(V + E log d).
func (g *LabeledGraph) AdjacencyList() map[string][]string {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	result := make(map[string][]string, len(g.adjacency))
	for from, toMap := range g.adjacency {
		var buf []string
		for _, edgeSet := range toMap {
			for eid := range edgeSet {
				buf = append(buf, eid)
			}
		}
		sort.Strings(buf)
		result[from] = buf
	}

	return result
}
