package overlay

// nearnessFactor sets how much tighter the near-vertex tolerance is than
// the grid spacing itself: tau = 1/(scale*nearnessFactor).
const nearnessFactor = 10.0

// HotPixel is the small tolerance region around one rounded vertex that a
// segment passing near — without passing through — must be noded against,
// so snap-rounding never silently produces a crossing it failed to record.
type HotPixel struct {
	Center Coordinate
	Tau    float64
}

// NearVertexRule reports whether this hot pixel's center should be inserted
// as a node on the segment p0-p1: it must be within Tau of the segment but
// not within Tau of either endpoint. The endpoint exclusion matters because
// a hot pixel that is merely near a segment's own endpoint (rather than its
// interior) is not introducing a new crossing — treating it as one would
// produce spurious zig-zag linework at every rounded vertex.
func (hp HotPixel) NearVertexRule(p0, p1 Coordinate) bool {
	if hp.Center.Equals(p0) || hp.Center.Equals(p1) {
		return false
	}
	if hp.Center.Distance(p0) < hp.Tau || hp.Center.Distance(p1) < hp.Tau {
		return false
	}
	return Segment{P0: p0, P1: p1}.DistanceTo(hp.Center) < hp.Tau
}

// collectHotPixels returns one HotPixel per distinct coordinate appearing
// in strings, assumed already snapped to the grid.
func collectHotPixels(strings []*NodedSegmentString, tau float64) []HotPixel {
	seen := make(map[Coordinate]bool)
	var out []HotPixel
	for _, s := range strings {
		for _, c := range s.Coords {
			if seen[c] {
				continue
			}
			seen[c] = true
			out = append(out, HotPixel{Center: c, Tau: tau})
		}
	}
	return out
}
