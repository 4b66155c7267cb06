package overlay

// EdgeRing is a closed sequence of directed edges, referenced by index into
// the owning PlanarGraph, that bounds a polygon shell or hole. It is built
// in two stages: BuildMaximalEdgeRings traces the largest possible ring at
// every node by always taking the sharpest available turn, then
// BuildMinimalEdgeRings decomposes a maximal ring (which can revisit a node
// through more than one pair of edges, e.g. a figure-eight) into the simple
// rings BuildPolygons actually wants.
type EdgeRing struct {
	// DirectedEdgeIDs is the ring's directed edges in traversal order,
	// first-to-last, not repeating the first edge at the end.
	DirectedEdgeIDs []int
	IsHole          bool
}

// Coordinates returns the ring's closed coordinate sequence (first
// coordinate repeated at the end).
func (r *EdgeRing) Coordinates(g *PlanarGraph) []Coordinate {
	if len(r.DirectedEdgeIDs) == 0 {
		return nil
	}
	coords := make([]Coordinate, 0, len(r.DirectedEdgeIDs)+1)
	for _, id := range r.DirectedEdgeIDs {
		de := g.DirectedEdges[id]
		if len(coords) == 0 {
			coords = append(coords, de.Coords[0])
		}
		coords = append(coords, de.Coords[1:]...)
	}
	return coords
}

// SignedArea is the shoelace-formula signed area of the ring's coordinate
// sequence; positive means the ring runs counterclockwise.
func (r *EdgeRing) SignedArea(g *PlanarGraph) float64 {
	return signedArea(r.Coordinates(g))
}

// IsShellOriented reports whether the ring is wound counterclockwise, the OGC-SFS
// convention this engine uses throughout for exterior shells (holes run
// clockwise).
func (r *EdgeRing) IsShellOriented(g *PlanarGraph) bool {
	return r.SignedArea(g) > 0
}

// Envelope returns the ring's axis-aligned bounding box.
func (r *EdgeRing) Envelope(g *PlanarGraph) (min, max Coordinate) {
	coords := r.Coordinates(g)
	min, max = coords[0], coords[0]
	for _, c := range coords[1:] {
		if c.X < min.X {
			min.X = c.X
		}
		if c.Y < min.Y {
			min.Y = c.Y
		}
		if c.X > max.X {
			max.X = c.X
		}
		if c.Y > max.Y {
			max.Y = c.Y
		}
	}
	return min, max
}

// traceRing walks directed edges starting at startID, always taking the
// sharpest eligible turn (per NextCWEligible) at each node, until it closes
// back on startID. mark is called on every directed edge as it is consumed,
// letting callers track Visited (maximal rings) or a local used set
// (minimal ring decomposition) without duplicating the walk itself.
func traceRing(g *PlanarGraph, startID int, eligible func(id int) bool, mark func(id int)) (*EdgeRing, error) {
	ring := &EdgeRing{}
	curID := startID
	for i := 0; ; i++ {
		if i > len(g.DirectedEdges) {
			return nil, NewTopologyErrorAt("edge ring failed to close", g.DirectedEdges[startID].Coords[0])
		}
		cur := g.DirectedEdges[curID]
		mark(curID)
		ring.DirectedEdgeIDs = append(ring.DirectedEdgeIDs, curID)

		toNode := g.Nodes[cur.ToNode]
		nextID := g.NextCWEligible(toNode, cur.SymID, eligible)
		if nextID < 0 {
			return nil, NewTopologyErrorAt("no eligible edge to continue edge ring", toNode.Coord)
		}
		if nextID == startID {
			break
		}
		curID = nextID
	}
	return ring, nil
}

// ContainsPoint reports whether c lies inside the ring via even-odd ray
// casting, used by findSingleShell for hole/shell assignment.
func (r *EdgeRing) ContainsPoint(g *PlanarGraph, c Coordinate) bool {
	return containsPointInRing(r.Coordinates(g), c)
}

// containsPointInRing is the even-odd ray-casting test shared by
// EdgeRing.ContainsPoint and the line/point builders' result-coverage
// check, the latter operating on plain PolygonShape coordinate rings that
// have no PlanarGraph to resolve indices through.
func containsPointInRing(coords []Coordinate, c Coordinate) bool {
	inside := false
	n := len(coords)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := coords[i], coords[j]
		if (pi.Y > c.Y) != (pj.Y > c.Y) {
			slope := (c.X-pi.X)*(pj.Y-pi.Y) - (pj.X-pi.X)*(c.Y-pi.Y)
			if slope == 0 {
				return true
			}
			if (slope < 0) != (pj.Y < pi.Y) {
				inside = !inside
			}
		}
	}
	return inside
}

// coveredByPolygons reports whether c lies within the result's own
// polygonal output — inside some polygon's shell and not inside any of its
// holes. The line and point builders use this to drop output that the
// already-assembled area result makes redundant.
func coveredByPolygons(c Coordinate, polys []PolygonShape) bool {
	for _, p := range polys {
		if !containsPointInRing(p.Shell, c) {
			continue
		}
		inHole := false
		for _, h := range p.Holes {
			if containsPointInRing(h, c) {
				inHole = true
				break
			}
		}
		if !inHole {
			return true
		}
	}
	return false
}
