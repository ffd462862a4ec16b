package phong3d

import (
	"errors"
	"math"
	"testing"
)

func identitySpatial(t *testing.T) *SpatialProps {
	t.Helper()
	sp, err := NewSpatialProps(Point(0, 0, 0), Vec(1, 1, 1), Rot3{})
	if err != nil {
		t.Fatal(err)
	}
	return &sp
}

func unitSquare() []Vector4 {
	return []Vector4{Point(-1, -1, 0), Point(1, -1, 0), Point(1, 1, 0), Point(-1, 1, 0)}
}

func TestNewPolygonCache(t *testing.T) {
	p, err := NewPolygon(unitSquare(), identitySpatial(t), false)
	if err != nil {
		t.Fatal(err)
	}
	if p.Normal != Vec(0, 0, 4) {
		t.Fatalf("normal: %+v", p.Normal)
	}
	if len(p.Axes) != 4 || len(p.Proj) != 4 {
		t.Fatalf("expected 4 axes, got %d/%d", len(p.Axes), len(p.Proj))
	}
	for k, a := range p.Axes {
		if math.Abs(a.Len()-1) > 1e-12 || math.Abs(a.Dot(p.Normal)) > 1e-12 {
			t.Fatalf("axis %d not a unit in-plane vector: %+v", k, a)
		}
		if math.Abs(p.Proj[k][0]+1) > 1e-12 || math.Abs(p.Proj[k][1]-1) > 1e-12 {
			t.Fatalf("axis %d interval: %+v", k, p.Proj[k])
		}
	}
	if c := p.Centroid(); !approxVec(c, Point(0, 0, 0), 1e-12) {
		t.Fatalf("centroid: %+v", c)
	}
}

func TestPolygonOrientToOrigin(t *testing.T) {
	// clockwise seen from +z, lifted to z=1: the normal still points away from the origin
	pts := []Vector4{Point(-1, 1, 1), Point(1, 1, 1), Point(1, -1, 1), Point(-1, -1, 1)}
	p, err := NewPolygon(pts, identitySpatial(t), true)
	if err != nil {
		t.Fatal(err)
	}
	if p.Normal.Z <= 0 {
		t.Fatalf("normal not flipped outward: %+v", p.Normal)
	}
	q, err := NewPolygon(pts, identitySpatial(t), false)
	if err != nil {
		t.Fatal(err)
	}
	if q.Normal.Z >= 0 {
		t.Fatalf("winding normal expected -z: %+v", q.Normal)
	}
}

func TestPolygonIntersect(t *testing.T) {
	p, err := NewPolygon(unitSquare(), identitySpatial(t), false)
	if err != nil {
		t.Fatal(err)
	}
	D := Vec(0, 0, -1)
	if tt, ok := p.intersect(Point(0, 0, 5), D, 0, math.Inf(1)); !ok || math.Abs(tt-5) > 1e-12 {
		t.Fatalf("centre hit: ok=%v t=%.12g", ok, tt)
	}
	if _, ok := p.intersect(Point(0.999, -0.999, 5), D, 0, math.Inf(1)); !ok {
		t.Fatal("hit just inside a corner missed")
	}
	if _, ok := p.intersect(Point(1.001, 0, 5), D, 0, math.Inf(1)); ok {
		t.Fatal("hit just past an edge accepted")
	}
	if _, ok := p.intersect(Point(0, 0, 5), D, 0, 5); ok {
		t.Fatal("t == tMax accepted")
	}
	// parallel ray: t is infinite or NaN and must be rejected
	if _, ok := p.intersect(Point(0, 0, 0), Vec(1, 0, 0), 0, math.Inf(1)); ok {
		t.Fatal("in-plane ray accepted")
	}
}

func TestPolygonTriangleCentroid(t *testing.T) {
	tri := []Vector4{Point(0, 0, -2), Point(2, 0, -2), Point(0, 3, -2)}
	p, err := NewPolygon(tri, identitySpatial(t), false)
	if err != nil {
		t.Fatal(err)
	}
	c := p.Centroid()
	O := Point(c.X, c.Y, 4)
	if tt, ok := p.intersect(O, Vec(0, 0, -1), 0, math.Inf(1)); !ok || math.Abs(tt-6) > 1e-12 {
		t.Fatalf("centroid ray: ok=%v t=%.12g", ok, tt)
	}
	// outside the hypotenuse but inside the bounding box
	if _, ok := p.intersect(Point(1.5, 1.5, 4), Vec(0, 0, -1), 0, math.Inf(1)); ok {
		t.Fatal("point outside the triangle accepted")
	}
}

func TestNewPolygonDegenerate(t *testing.T) {
	if _, err := NewPolygon(unitSquare()[:2], identitySpatial(t), false); err == nil {
		t.Fatal("two points accepted")
	}
	line := []Vector4{Point(0, 0, 0), Point(1, 0, 0), Point(2, 0, 0)}
	_, err := NewPolygon(line, identitySpatial(t), false)
	if !errors.Is(err, ErrDegenerateNormal) {
		t.Fatalf("collinear points: expected ErrDegenerateNormal, got %v", err)
	}
}
