package phong3d

import (
	"fmt"
	"math"
)

// Polygon is a convex, coplanar, consistently wound vertex loop in object space.
// Per edge it caches an axis in the polygon plane and the polygon's own
// [min,max] projection on it (separating axis test).
type Polygon struct {
	Points      []Vector4
	Normal      Vector4   // outward, object space
	NormalPrime Vector4   // inverse-transpose mapped, world space
	Axes        []Vector4 // unit edge axes
	Proj        [][2]Real // [min,max] of Points on Axes[k]
}

// NewPolygon builds the polygon cache. With orientToOrigin the normal is
// flipped to point away from the object origin (solids centred on it);
// otherwise the winding decides.
func NewPolygon(points []Vector4, sp *SpatialProps, orientToOrigin bool) (Polygon, error) {
	if len(points) < 3 {
		return Polygon{}, fmt.Errorf("polygon needs at least 3 vertices, got %d", len(points))
	}
	pts := make([]Vector4, len(points))
	for i, p := range points {
		pts[i] = p.ForcePoint()
	}

	ab := pts[1].Sub(pts[0])
	bc := pts[2].Sub(pts[1])
	normal := ab.Cross(bc)
	if normal.Len() == 0 {
		return Polygon{}, fmt.Errorf("polygon normal: %w", ErrDegenerateNormal)
	}
	if orientToOrigin && normal.Dot(pts[0].ForceVec()) < 0 {
		normal = normal.Neg()
	}

	poly := Polygon{
		Points:      pts,
		Normal:      normal,
		NormalPrime: sp.normalToWorld(normal),
		Axes:        make([]Vector4, 0, len(pts)),
		Proj:        make([][2]Real, 0, len(pts)),
	}
	for i := range pts {
		prev := pts[len(pts)-1]
		if i > 0 {
			prev = pts[i-1]
		}
		axis, err := pts[i].Sub(prev).Cross(normal).Normalize()
		if err != nil {
			return Polygon{}, fmt.Errorf("edge %d: %w", i, err)
		}
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, p := range pts {
			d := p.Dot(axis)
			if d > hi {
				hi = d
			}
			if d < lo {
				lo = d
			}
		}
		poly.Axes = append(poly.Axes, axis)
		poly.Proj = append(poly.Proj, [2]Real{lo, hi})
	}
	return poly, nil
}

// intersect works in object space: plane test, then containment on every edge axis.
func (p *Polygon) intersect(Op, Dp Vector4, tMin, tMax Real) (Real, bool) {
	t := (p.Points[0].Dot(p.Normal) - Op.Dot(p.Normal)) / Dp.Dot(p.Normal)
	if !(t > tMin && t < tMax) {
		return 0, false
	}
	P := Op.Add(Dp.Mul(t))
	for k, axis := range p.Axes {
		d := P.Dot(axis)
		if d < p.Proj[k][0] || d > p.Proj[k][1] {
			return 0, false
		}
	}
	return t, true
}

// Centroid is the vertex average (object space).
func (p *Polygon) Centroid() Vector4 {
	var c Vector4
	for _, v := range p.Points {
		c = c.Add(v)
	}
	return c.Mul(1 / Real(len(p.Points)))
}
