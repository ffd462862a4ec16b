package phong3d

import "math"

// Ray/ellipsoid intersection via the unit sphere in object space.
// Solve |O' + tD'|^2 = 1.
func intersectRaySphere(O, D Vector4, s *Shape, tMin, tMax Real) (Hit, bool) {
	Op, Dp := s.Spatial.toObject(O, D)

	a := Dp.Dot(Dp)
	b := Op.Dot(Dp)
	c := Op.Dot(Op) - 1
	disc := b*b - a*c
	if disc < 0 {
		return Hit{}, false
	}
	sqrtD := math.Sqrt(disc)
	t := (-b - sqrtD) / a
	if t < tMin {
		// near root is behind us (or we are inside): try the far one
		t = (-b + sqrtD) / a
	}
	if !(t > tMin && t < tMax) {
		return Hit{}, false
	}

	S := Op.Add(Dp.Mul(t)).ForceVec()
	if a > Op.Dot(Op) {
		S = S.Neg()
	}
	return Hit{
		T:      t,
		Point:  O.Add(D.Mul(t)).ForcePoint(),
		Normal: s.Spatial.normalToWorld(S),
	}, true
}
