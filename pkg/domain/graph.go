package domain

// Graph is an immutable, flat view over a set of nodes and edges.
// Nodes are indexed by ID and edges are grouped by source, so lookups
// never walk pointers between nodes.
type Graph struct {
	nodes    []Node
	edges    []Edge
	byID     map[string]Node
	outgoing map[string][]Edge
}

// NewGraph indexes nodes and edges.
// It fails with a *ReferenceError when an edge references an unknown node
// or when two nodes share an ID.
func NewGraph(nodes []Node, edges []Edge) (*Graph, error) {
	g := &Graph{
		nodes:    make([]Node, len(nodes)),
		edges:    make([]Edge, len(edges)),
		byID:     make(map[string]Node, len(nodes)),
		outgoing: make(map[string][]Edge),
	}
	copy(g.nodes, nodes)
	copy(g.edges, edges)

	for _, n := range nodes {
		if _, dup := g.byID[n.ID]; dup {
			return nil, &ReferenceError{Err: ErrDuplicateNode, NodeID: n.ID}
		}
		g.byID[n.ID] = n
	}

	for _, e := range edges {
		for _, id := range []string{e.Source, e.Target} {
			if _, ok := g.byID[id]; !ok {
				edge := e
				return nil, &ReferenceError{Err: ErrUnknownReference, NodeID: id, Edge: &edge}
			}
		}
		g.outgoing[e.Source] = append(g.outgoing[e.Source], e)
	}

	return g, nil
}

// Node returns the node with the given ID.
func (g *Graph) Node(id string) (Node, bool) {
	n, ok := g.byID[id]
	return n, ok
}

// Nodes returns the nodes in insertion order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Edges returns the edges in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Outgoing returns the edges leaving id, in graph edge order.
func (g *Graph) Outgoing(id string) []Edge {
	out := make([]Edge, len(g.outgoing[id]))
	copy(out, g.outgoing[id])
	return out
}

// Labels returns every node label in insertion order.
func (g *Graph) Labels() []string {
	labels := make([]string, 0, len(g.nodes))
	for _, n := range g.nodes {
		labels = append(labels, n.Label)
	}
	return labels
}

// KindsPresent returns the set of kinds carried by at least one node.
func (g *Graph) KindsPresent() map[Kind]bool {
	present := make(map[Kind]bool, len(PathwayKinds))
	for _, n := range g.nodes {
		present[n.Kind] = true
	}
	return present
}
