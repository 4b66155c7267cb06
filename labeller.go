package overlay

// LabelEdgesFromLocator fills in the operand each edge's own linework never
// touched. Noding only ever tells an edge about the operand it was built
// from (plus whichever other operand's coincident linework got merged into
// it in the edge table); it says nothing about whether the edge's other
// operand contains it, excludes it, or runs exactly along its boundary
// without crossing it. For every edge still null for an operand, this asks
// the PointLocator about the midpoint of the edge's first segment and
// applies the answer to the whole edge: an edge that doesn't cross an
// operand's boundary is either entirely inside it or entirely outside it.
// The edge's endpoints are not used, since a noding node can lie exactly on
// the other operand's boundary.
//
// Must run before the edges are handed to PlanarGraph.AddEdge: a
// DirectedEdge's Label is a value copy taken at AddEdge time, so labelling
// an Edge after its graph already exists would leave the graph's directed
// edges holding the stale, incomplete copy.
func LabelEdgesFromLocator(edges []*Edge, geoms [2]Geometry, locator PointLocator) {
	for _, e := range edges {
		for i := 0; i < 2; i++ {
			if !e.Label.IsNull(i) {
				continue
			}
			loc := locator.Locate(lineRepresentativePoint(e.Coords), geoms[i])
			e.Label.SetAllLocations(i, loc)
		}
	}
}

// ComputeNodeLabelling merges the ON location every directed edge in a
// node's star reports for each operand into that node's own label, applying
// the OGC-SFS Mod-2 boundary rule: a node lies on an operand's boundary iff
// an odd number of that operand's boundary edge-ends meet there. A node
// where a boundary passes through an even number of times — two rings
// touching at a single shared vertex, say — is interior to that operand,
// not boundary, however many non-boundary edges also pass through it.
func ComputeNodeLabelling(g *PlanarGraph) {
	for _, n := range g.Nodes {
		computeNodeLabel(n, g)
	}
}

func computeNodeLabel(n *Node, g *PlanarGraph) {
	for i := 0; i < 2; i++ {
		boundaryCount := 0
		nonBoundary := LocationNone
		for _, edgeID := range n.Star {
			switch loc := g.DirectedEdges[edgeID].Label.GetLocation(i, PositionOn); loc {
			case LocationBoundary:
				boundaryCount++
			case LocationNone:
			default:
				nonBoundary = loc
			}
		}
		if boundaryCount == 0 {
			if nonBoundary != LocationNone {
				n.Label.SetLocation(i, PositionOn, nonBoundary)
			}
			continue
		}
		if boundaryCount%2 == 1 {
			n.Label.SetLocation(i, PositionOn, LocationBoundary)
		} else {
			n.Label.SetLocation(i, PositionOn, LocationInterior)
		}
	}
}

// UpdateNodeLabelling pushes each node's resolved ON label back out onto
// every directed edge touching it that is still null for that operand —
// an edge built from one operand's linework alone has no opinion on the
// other operand's ON location at its endpoints until its node has merged
// every edge's view of that point.
func UpdateNodeLabelling(g *PlanarGraph) {
	for _, n := range g.Nodes {
		for i := 0; i < 2; i++ {
			loc := n.Label.GetLocation(i, PositionOn)
			if loc == LocationNone {
				continue
			}
			for _, edgeID := range n.Star {
				de := g.DirectedEdges[edgeID]
				if de.Label.GetLocation(i, PositionOn) == LocationNone {
					de.Label.SetLocation(i, PositionOn, loc)
				}
			}
		}
	}
}

// LabelIncompleteNodes resolves every node the edge-merging passes above
// left with no opinion about some operand — chiefly isolated nodes (a
// standalone point operand, or an operand vertex the other operand's
// linework never comes near) whose star is empty or whose star only ever
// carried the other operand's edges. These get a direct PointLocator
// query against the coordinate itself, exactly as LabelEdgesFromLocator
// does for edges.
func LabelIncompleteNodes(g *PlanarGraph, geoms [2]Geometry, locator PointLocator) {
	for _, n := range g.Nodes {
		for i := 0; i < 2; i++ {
			if n.Label.GetLocation(i, PositionOn) != LocationNone {
				continue
			}
			loc := locator.Locate(n.Coord, geoms[i])
			n.Label.SetLocation(i, PositionOn, loc)
		}
	}
}

// BuildLabelledGraph runs the full edge- and node-labelling pass in order
// and returns the resulting graph: first fill in each edge's unowned
// operand from the PointLocator (before any edge reaches AddEdge, per
// LabelEdgesFromLocator's ordering requirement), then assemble the graph,
// merge every node's incident edges into a node label, push that back out
// to fill in any edge endpoints noding itself left incomplete, and finally
// resolve whatever no edge ever touched directly. The graph's directed
// edges and nodes are complete afterwards — every one carries an opinion,
// possibly LocationExterior, about both operands.
func BuildLabelledGraph(edges []*Edge, geoms [2]Geometry, locator PointLocator) *PlanarGraph {
	LabelEdgesFromLocator(edges, geoms, locator)

	g := NewPlanarGraph()
	for _, e := range edges {
		g.AddEdge(e)
	}
	g.Build()

	ComputeNodeLabelling(g)
	UpdateNodeLabelling(g)
	LabelIncompleteNodes(g, geoms, locator)
	return g
}
