package overlay

import "math"

// BuildPolygons assembles every InResult-labelled area edge into the
// result's polygon shapes: trace maximal rings, decompose each into minimal
// rings, classify each minimal ring as a shell or a hole by its winding
// direction, attach each maximal ring's own holes to its own single shell
// where that's unambiguous, and fall back to a global smallest-containing-
// shell search for anything left over.
func BuildPolygons(g *PlanarGraph) ([]PolygonShape, error) {
	maximalRings, err := BuildMaximalEdgeRings(g)
	if err != nil {
		return nil, err
	}

	var allShells []*EdgeRing
	holeToShell := make(map[*EdgeRing]*EdgeRing)
	var freeHoles []*EdgeRing

	for _, maxRing := range maximalRings {
		minimalRings, err := BuildMinimalEdgeRings(g, maxRing)
		if err != nil {
			return nil, err
		}

		var localShells, localHoles []*EdgeRing
		for _, r := range minimalRings {
			if r.IsShellOriented(g) {
				localShells = append(localShells, r)
			} else {
				r.IsHole = true
				localHoles = append(localHoles, r)
			}
		}
		allShells = append(allShells, localShells...)

		if len(localShells) == 1 {
			assignHoles(localShells[0], localHoles, holeToShell)
		} else {
			// Either no shell bounds this maximal ring at all (it is a pure
			// hole-shaped piece whose shell lies in a different maximal
			// ring entirely — this happens when two operands' boundaries
			// coincide along part of a ring) or more than one, and the
			// nearest-containing-shell search below has to decide which.
			freeHoles = append(freeHoles, localHoles...)
		}
	}

	if err := placeFreeHoles(g, allShells, freeHoles, holeToShell); err != nil {
		return nil, err
	}

	shellHoles := make(map[*EdgeRing][]*EdgeRing)
	for hole, shell := range holeToShell {
		shellHoles[shell] = append(shellHoles[shell], hole)
	}

	polys := make([]PolygonShape, 0, len(allShells))
	for _, shell := range allShells {
		ps := PolygonShape{Shell: shell.Coordinates(g)}
		for _, h := range shellHoles[shell] {
			ps.Holes = append(ps.Holes, h.Coordinates(g))
		}
		polys = append(polys, ps)
	}
	return polys, nil
}

// assignHoles attaches every hole in holes to shell directly, the fast path
// for the common case of a maximal ring bounding exactly one shell.
func assignHoles(shell *EdgeRing, holes []*EdgeRing, holeToShell map[*EdgeRing]*EdgeRing) {
	for _, h := range holes {
		holeToShell[h] = shell
	}
}

// placeFreeHoles resolves every hole assignHoles' fast path couldn't — by
// calling findSingleShell to find, among every shell in the result (not just its own maximal
// ring), the smallest one that contains it. Smallest, not first, because
// nested shells (an island inside a lake inside an outer landmass) can all
// geometrically contain the same hole; only the innermost one is correct.
func placeFreeHoles(g *PlanarGraph, shells, freeHoles []*EdgeRing, holeToShell map[*EdgeRing]*EdgeRing) error {
	for _, hole := range freeHoles {
		shell, err := findSingleShell(g, shells, hole)
		if err != nil {
			return err
		}
		holeToShell[hole] = shell
	}
	return nil
}

// findSingleShell returns the smallest shell among shells that contains
// hole, tested by one representative coordinate of the hole against each
// candidate shell's ring.
func findSingleShell(g *PlanarGraph, shells []*EdgeRing, hole *EdgeRing) (*EdgeRing, error) {
	holeCoords := hole.Coordinates(g)
	if len(holeCoords) == 0 {
		return nil, NewTopologyError("unable to assign an empty hole ring to a shell")
	}
	rep := holeCoords[0]

	var best *EdgeRing
	bestArea := math.Inf(1)
	for _, shell := range shells {
		if !shell.ContainsPoint(g, rep) {
			continue
		}
		area := math.Abs(shell.SignedArea(g))
		if area < bestArea {
			bestArea = area
			best = shell
		}
	}
	if best == nil {
		return nil, NewTopologyErrorAt("unable to assign free hole to a shell", rep)
	}
	return best, nil
}
