package overlay

// BuildMinimalEdgeRings splits one maximal ring into the simple rings
// BuildPolygons actually wants. A maximal ring only self-intersects at a
// node when more than two of its own directed edges meet there (a
// figure-eight); decomposing restricts the same sharpest-turn walk used to
// build the maximal ring to just that ring's own edges, consuming each one
// exactly once, so a node visited twice simply starts a second loop instead
// of being mistaken for a genuine self-crossing.
func BuildMinimalEdgeRings(g *PlanarGraph, maximal *EdgeRing) ([]*EdgeRing, error) {
	inMaximal := make(map[int]bool, len(maximal.DirectedEdgeIDs))
	for _, id := range maximal.DirectedEdgeIDs {
		inMaximal[id] = true
	}
	used := make(map[int]bool, len(maximal.DirectedEdgeIDs))
	eligible := func(id int) bool { return inMaximal[id] && !used[id] }
	mark := func(id int) { used[id] = true }

	var rings []*EdgeRing
	for _, startID := range maximal.DirectedEdgeIDs {
		if used[startID] {
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
