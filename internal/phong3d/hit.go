package phong3d

import "math"

// nearestHit returns the closest hit over all shapes with tMin < t < tMax.
// Shapes whose bounds are missed, or entered no closer than the current best,
// are skipped.
func nearestHit(scene *Scene, O, D Vector4, tMin, tMax Real) (Hit, bool) {
	best := Hit{}
	okAny := false
	bestT := tMax
	if !isFinite(bestT) {
		bestT = math.MaxFloat64
	}
	rr := newRayRecips(D)
	for _, s := range scene.Shapes {
		if UseCull {
			if ok, tNear := rayAABB(O, s.Bounds, rr); !ok || tNear >= bestT {
				continue
			}
		}
		if hit, ok := s.Intersect(O, D, tMin, bestT); ok {
			bestT, best, okAny = hit.T, hit, true
		}
	}
	return best, okAny
}

// occluded reports whether any shape is hit in (tMin, tMax); first hit wins.
func occluded(scene *Scene, O, D Vector4, tMin, tMax Real) bool {
	rr := newRayRecips(D)
	for _, s := range scene.Shapes {
		if UseCull {
			if ok, tNear := rayAABB(O, s.Bounds, rr); !ok || tNear >= tMax {
				continue
			}
		}
		if _, ok := s.Intersect(O, D, tMin, tMax); ok {
			return true
		}
	}
	return false
}
