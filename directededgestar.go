package overlay

import "sort"

// sortStar orders a node's outgoing directed edges counterclockwise by the
// angle of their first segment, via math.Atan2. Ring assembly depends on
// this ordering to find, at each node, the sharpest left turn from an
// incoming edge.
func sortStar(graph *PlanarGraph, star []int) {
	sort.Slice(star, func(i, j int) bool {
		return outgoingAngle(graph, star[i]) < outgoingAngle(graph, star[j])
	})
}

// starIndexOf returns the position of edgeID within node.Star.
func starIndexOf(node *Node, edgeID int) int {
	for i, id := range node.Star {
		if id == edgeID {
			return i
		}
	}
	return -1
}

// NextCW returns the directed edge ID clockwise-adjacent to fromEdgeID in
// its node's star — the edge the ring builder follows next after arriving
// via fromEdgeID's sym, i.e. the sharpest available left turn. fromEdgeID
// must itself be in node.Star (it departs the node; callers pass the sym of
// the edge they arrived on).
func (g *PlanarGraph) NextCW(node *Node, fromEdgeID int) int {
	n := len(node.Star)
	if n == 0 {
		return -1
	}
	i := starIndexOf(node, fromEdgeID)
	if i < 0 {
		return -1
	}
	return node.Star[(i-1+n)%n]
}

// NextCCW is NextCW's mirror: it walks a node's star in the opposite
// rotational sense.
func (g *PlanarGraph) NextCCW(node *Node, fromEdgeID int) int {
	n := len(node.Star)
	if n == 0 {
		return -1
	}
	i := starIndexOf(node, fromEdgeID)
	if i < 0 {
		return -1
	}
	return node.Star[(i+1)%n]
}

// NextCWEligible is NextCW restricted to directed edges for which eligible
// returns true: it steps clockwise from fromEdgeID around node.Star,
// skipping ineligible edges, and returns the first eligible one it finds.
// Ring assembly uses this (rather than building a second, filtered graph)
// to trace only the directed edges that bound the result area, while the
// planar graph itself still carries every noded edge so node labelling sees
// the complete picture at each node.
//
// fromEdgeID itself is checked last, after every other edge in the star, so
// it is returned only when no other edge is eligible. It returns -1 if no
// edge in the star, fromEdgeID included, is eligible.
func (g *PlanarGraph) NextCWEligible(node *Node, fromEdgeID int, eligible func(id int) bool) int {
	n := len(node.Star)
	if n == 0 {
		return -1
	}
	i := starIndexOf(node, fromEdgeID)
	if i < 0 {
		return -1
	}
	for step := 1; step <= n; step++ {
		id := node.Star[(i-step+n*2)%n]
		if eligible(id) {
			return id
		}
	}
	return -1
}
