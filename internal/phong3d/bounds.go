package phong3d

import "math"

// AABB is an axis-aligned world-space box.
type AABB struct {
	Min, Max Vector4
}

type rayRecips struct {
	invX, invY, invZ Real
	parX, parY, parZ bool // parallel flags (|D| < eps)
}

func newRayRecips(D Vector4) rayRecips {
	const eps = 1e-12
	rr := rayRecips{
		parX: math.Abs(D.X) < eps,
		parY: math.Abs(D.Y) < eps,
		parZ: math.Abs(D.Z) < eps,
	}
	if !rr.parX {
		rr.invX = 1 / D.X
	}
	if !rr.parY {
		rr.invY = 1 / D.Y
	}
	if !rr.parZ {
		rr.invZ = 1 / D.Z
	}
	return rr
}

func slab(o, lo, hi, inv Real, par bool, tmin, tmax *Real) bool {
	if par {
		return o >= lo && o <= hi
	}
	t1 := (lo - o) * inv
	t2 := (hi - o) * inv
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	if t1 > *tmin {
		*tmin = t1
	}
	if t2 < *tmax {
		*tmax = t2
	}
	return true
}

// rayAABB reports whether the ray line meets the box ahead of the origin,
// and the entry distance (negative when the origin is inside).
func rayAABB(O Vector4, b AABB, rr rayRecips) (bool, Real) {
	tmin, tmax := -1e300, 1e300
	if !slab(O.X, b.Min.X, b.Max.X, rr.invX, rr.parX, &tmin, &tmax) ||
		!slab(O.Y, b.Min.Y, b.Max.Y, rr.invY, rr.parY, &tmin, &tmax) ||
		!slab(O.Z, b.Min.Z, b.Max.Z, rr.invZ, rr.parZ, &tmin, &tmax) {
		return false, 0
	}
	if tmax < 0 || tmin > tmax {
		return false, 0
	}
	return true, tmin
}

func padBounds(minV, maxV [3]Real) AABB {
	var b AABB
	for i := 0; i < 3; i++ {
		pad := BoundsPad * (1 + math.Max(math.Abs(minV[i]), math.Abs(maxV[i])))
		minV[i] -= pad
		maxV[i] += pad
	}
	b.Min = Point(minV[0], minV[1], minV[2])
	b.Max = Point(maxV[0], maxV[1], maxV[2])
	return b
}

// unitCubeBounds encloses Model·[-1,1]^3, which also contains the unit sphere.
func unitCubeBounds(M Mat4) AABB {
	var minV, maxV [3]Real
	for r := 0; r < 3; r++ {
		off := math.Abs(M.M[r][0]) + math.Abs(M.M[r][1]) + math.Abs(M.M[r][2])
		minV[r], maxV[r] = M.M[r][3]-off, M.M[r][3]+off
	}
	return padBounds(minV, maxV)
}

func meshBounds(M Mat4, polys []Polygon) AABB {
	minV := [3]Real{math.Inf(1), math.Inf(1), math.Inf(1)}
	maxV := [3]Real{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for i := range polys {
		for _, p := range polys[i].Points {
			w := M.MulVec(p)
			for k, x := range [3]Real{w.X, w.Y, w.Z} {
				minV[k] = math.Min(minV[k], x)
				maxV[k] = math.Max(maxV[k], x)
			}
		}
	}
	return padBounds(minV, maxV)
}
