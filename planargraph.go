package overlay

// nodeFactory builds the Node value for a newly seen coordinate. It exists
// as a one-method seam, mirroring the original implementation's separate
// node-factory hook, purely so a caller could in principle swap in a
// differently-labelled node type without touching PlanarGraph; the default
// factory below is the only one this repository ships.
type nodeFactory interface {
	NewNode(c Coordinate) *Node
}

type defaultNodeFactory struct{}

func (defaultNodeFactory) NewNode(c Coordinate) *Node {
	return &Node{Coord: c}
}

// PlanarGraph is the noded, labelled edges of both operands assembled into
// a graph of nodes and directed edges, referenced by index rather than by
// pointer. Every Edge becomes exactly two DirectedEdges (forward and its
// sym), threaded into their endpoint nodes' stars.
type PlanarGraph struct {
	Nodes         []*Node
	DirectedEdges []*DirectedEdge
	Edges         []*Edge

	factory   nodeFactory
	nodeIndex map[Coordinate]int
}

// NewPlanarGraph returns an empty graph using the default node factory.
func NewPlanarGraph() *PlanarGraph {
	return &PlanarGraph{factory: defaultNodeFactory{}, nodeIndex: make(map[Coordinate]int)}
}

// NodeID returns the index of the node at c, creating it via the graph's
// node factory if this is the first edge to touch that coordinate.
func (g *PlanarGraph) NodeID(c Coordinate) int {
	if id, ok := g.nodeIndex[c]; ok {
		return id
	}
	n := g.factory.NewNode(c)
	id := len(g.Nodes)
	g.Nodes = append(g.Nodes, n)
	g.nodeIndex[c] = id
	return id
}

// AddEdge inserts e as two symmetric DirectedEdges and threads them into
// their endpoint nodes' stars. Build must be called once after every edge
// has been added.
func (g *PlanarGraph) AddEdge(e *Edge) {
	edgeID := len(g.Edges)
	g.Edges = append(g.Edges, e)

	from := g.NodeID(e.P0())
	to := g.NodeID(e.P1())

	fwdID := len(g.DirectedEdges)
	fwd := &DirectedEdge{EdgeID: edgeID, FromNode: from, ToNode: to, IsForward: true, Coords: e.Coords, Label: e.Label}
	g.DirectedEdges = append(g.DirectedEdges, fwd)

	revCoords := make([]Coordinate, len(e.Coords))
	for i, c := range e.Coords {
		revCoords[len(e.Coords)-1-i] = c
	}
	revLabel := e.Label
	revLabel.Flip()
	revID := len(g.DirectedEdges)
	rev := &DirectedEdge{EdgeID: edgeID, FromNode: to, ToNode: from, IsForward: false, Coords: revCoords, Label: revLabel}
	g.DirectedEdges = append(g.DirectedEdges, rev)

	fwd.SymID = revID
	rev.SymID = fwdID

	g.Nodes[from].Star = append(g.Nodes[from].Star, fwdID)
	g.Nodes[to].Star = append(g.Nodes[to].Star, revID)
}

// Build sorts every node's star counterclockwise. Call once after all edges
// are added and before any node labelling or ring tracing.
func (g *PlanarGraph) Build() {
	for _, n := range g.Nodes {
		sortStar(g, n.Star)
	}
}

// AddNodeForPoint ensures a node exists at c even if no edge ever touches
// it — used for isolated point-operand components, which the labeller then
// classifies directly via a PointLocator rather than from incident edges.
func (g *PlanarGraph) AddNodeForPoint(c Coordinate) *Node {
	id := g.NodeID(c)
	return g.Nodes[id]
}
