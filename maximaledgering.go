package overlay

// BuildMaximalEdgeRings traces one maximal ring per connected, unvisited
// run of InResult directed edges. A maximal ring takes the sharpest
// available turn at every node among InResult edges only; at a node where
// more than two InResult edges meet, it can cross itself (touching the same
// node twice), which is exactly why BuildMinimalEdgeRings exists as a second
// pass — BuildPolygons always consumes minimal rings, never maximal ones,
// directly.
func BuildMaximalEdgeRings(g *PlanarGraph) ([]*EdgeRing, error) {
	eligible := func(id int) bool { return g.DirectedEdges[id].InResult }
	mark := func(id int) { g.DirectedEdges[id].Visited = true }

	var rings []*EdgeRing
	for startID, de := range g.DirectedEdges {
		if !de.InResult || de.Visited {
			continue
		}
		ring, err := traceRing(g, startID, eligible, mark)
		if err != nil {
			return nil, err
		}
		rings = append(rings, ring)
	}
	return rings, nil
}
