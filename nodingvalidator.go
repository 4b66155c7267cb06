package overlay

import "github.com/ctessum/geom/index/rtree"

// validateNoding re-checks the noder's own guarantee: after splitting every
// string at its recorded intersections, no two resulting pieces may cross
// or overlap except at a shared endpoint. A failure here means the noder
// itself has a bug, not that the input was unusual — it is always reported
// as a TopologyError rather than panicking, since it is reachable from
// ordinary (if adversarial) double-precision input.
func validateNoding(strings []*NodedSegmentString) error {
	type flatSegment struct {
		idx int
		seg Segment
	}
	var flat []flatSegment
	for _, s := range strings {
		for _, piece := range s.Split() {
			for i := 0; i+1 < len(piece); i++ {
				if piece[i].Equals(piece[i+1]) {
					continue
				}
				flat = append(flat, flatSegment{idx: len(flat), seg: Segment{P0: piece[i], P1: piece[i+1]}})
			}
		}
	}

	tree := rtree.NewTree(25, 50)
	handles := make([]segmentHandle, len(flat))
	for i, fs := range flat {
		h := segmentHandle{idx: fs.idx, seg: fs.seg}
		handles[i] = h
		tree.Insert(h)
	}

	for _, h := range handles {
		for _, cand := range tree.SearchIntersect(h.Bounds()) {
			o := cand.(segmentHandle)
			if o.idx <= h.idx {
				continue
			}
			var ri RobustLineIntersector
			ri.ComputeIntersection(h.seg, o.seg)
			if !ri.HasIntersection() {
				continue
			}
			if ri.Type() == CollinearIntersection {
				return NewTopologyErrorAt("overlapping segments survived noding", ri.Intersection(0))
			}
			if ri.IsInteriorIntersection() {
				return NewTopologyErrorAt("segments cross after noding", ri.Intersection(0))
			}
		}
	}
	return nil
}
