package bfs

import (
	"fmt"

	"github.com/katalvlaran/influence/core"
)

// Stats summarises the structure of a social graph.
type Stats struct {
	Nodes      int
	Edges      int
	Components int
	Largest    int  // size of the largest connected component
	Diameter   int  // largest eccentricity inside any component
	Connected  bool // exactly one component and at least one node
}

// Eccentricity returns the largest hop distance from v to any node reachable
// from v.
func Eccentricity(g *core.Graph, v core.NodeID, opts ...Option) (int, error) {
	res, err := BFS(g, v, opts...)
	if err != nil {
		return 0, err
	}

	return res.MaxDepth(), nil
}

// Components returns the connected components of g. Each component is sorted
// ascending and components are ordered by their smallest member.
// Complexity: O(V+E).
func Components(g *core.Graph, opts ...Option) ([][]core.NodeID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[core.NodeID]bool, g.NodeCount())
	var comps [][]core.NodeID
	for _, v := range g.Nodes() {
		if seen[v] {
			continue
		}
		res, err := BFS(g, v, opts...)
		if err != nil {
			return nil, fmt.Errorf("bfs: Components from %d: %w", v, err)
		}
		comp := make([]core.NodeID, 0, len(res.Order))
		for _, id := range g.Nodes() {
			if _, ok := res.Depth[id]; ok {
				seen[id] = true
				comp = append(comp, id)
			}
		}
		comps = append(comps, comp)
	}

	return comps, nil
}

// Diameter returns the largest eccentricity over all nodes. ok is false when
// g is empty or disconnected; the returned value is then the largest
// per-component diameter.
// Complexity: O(V·(V+E)).
func Diameter(g *core.Graph, opts ...Option) (diameter int, ok bool, err error) {
	if g == nil {
		return 0, false, ErrGraphNil
	}
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return 0, false, nil
	}
	connected := true
	for _, v := range nodes {
		res, err := BFS(g, v, opts...)
		if err != nil {
			return 0, false, err
		}
		if len(res.Order) != len(nodes) {
			connected = false
		}
		if d := res.MaxDepth(); d > diameter {
			diameter = d
		}
	}

	return diameter, connected, nil
}

// Summarize collects Stats for g. opts are forwarded to every traversal;
// WithContext makes the O(V·(V+E)) diameter pass cancellable.
func Summarize(g *core.Graph, opts ...Option) (Stats, error) {
	comps, err := Components(g, opts...)
	if err != nil {
		return Stats{}, err
	}
	diameter, connected, err := Diameter(g, opts...)
	if err != nil {
		return Stats{}, err
	}
	st := Stats{
		Nodes:      g.NodeCount(),
		Edges:      g.EdgeCount(),
		Components: len(comps),
		Diameter:   diameter,
		Connected:  connected,
	}
	for _, c := range comps {
		if len(c) > st.Largest {
			st.Largest = len(c)
		}
	}

	return st, nil
}
