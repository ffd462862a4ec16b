package phong3d

// Face normals of the canonical cube, paired so that i^1 is the opposite face.
var cubeNormals = [6]Vector4{
	Vec(-1, 0, 0), Vec(1, 0, 0),
	Vec(0, -1, 0), Vec(0, 1, 0),
	Vec(0, 0, -1), Vec(0, 0, 1),
}

// Ray/cube intersection against the six planes n·P = 1 of [-1,1]^3.
// tMax shrinks to every accepted face so the nearest one wins.
func intersectRayCube(O, D Vector4, s *Shape, tMin, tMax Real) (Hit, bool) {
	Op, Dp := s.Spatial.toObject(O, D)

	best := Hit{}
	ok := false
	for i, n := range cubeNormals {
		rayProj := Dp.Dot(n)
		t := (1 - Op.Dot(n)) / rayProj
		if !(t > tMin && t < tMax) {
			continue
		}
		P := Op.Add(Dp.Mul(t))
		var u, v Real
		switch i {
		case 0, 1:
			u, v = P.Y, P.Z
		case 2, 3:
			u, v = P.X, P.Z
		default:
			u, v = P.X, P.Y
		}
		if u < -1 || u > 1 || v < -1 || v > 1 {
			continue
		}
		tMax = t
		// the normal always opposes the incoming ray
		face := n
		if rayProj >= 0 {
			face = cubeNormals[i^1]
		}
		best = Hit{T: t, Normal: s.Spatial.normalToWorld(face)}
		ok = true
	}
	if !ok {
		return Hit{}, false
	}
	best.Point = O.Add(D.Mul(best.T)).ForcePoint()
	return best, true
}
