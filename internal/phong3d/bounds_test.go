package phong3d

import (
	"math"
	"testing"
)

func TestRayAABB(t *testing.T) {
	b := AABB{Min: Point(-1, -1, -1), Max: Point(1, 1, 1)}
	rr := newRayRecips(Vec(0, 0, -1))
	ok, tNear := rayAABB(Point(0, 0, 5), b, rr)
	if !ok || math.Abs(tNear-4) > 1e-12 {
		t.Fatalf("front hit: ok=%v tNear=%.12g", ok, tNear)
	}
	if ok, _ := rayAABB(Point(0, 0, -5), b, rr); ok {
		t.Fatal("box behind the ray accepted")
	}
	if ok, tNear := rayAABB(Point(0, 0, 0), b, rr); !ok || tNear >= 0 {
		t.Fatalf("origin inside: ok=%v tNear=%.12g", ok, tNear)
	}
	// parallel to x slab and outside it
	if ok, _ := rayAABB(Point(2, 0, 5), b, rr); ok {
		t.Fatal("parallel ray outside the slab accepted")
	}
}

func TestShapeBoundsEnclose(t *testing.T) {
	rot := Rot3{X: 0.4, Y: 1.2, Z: -0.5}
	s, err := NewSphere("s", Point(1, 2, -7), Vec(2, 0.5, 1), rot, testLighting)
	if err != nil {
		t.Fatal(err)
	}
	d, err := NewDodecahedron("d", Point(-3, 0, -9), Vec(1, 1, 2), rot, testLighting)
	if err != nil {
		t.Fatal(err)
	}
	inside := func(b AABB, p Vector4) bool {
		return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y && p.Z >= b.Min.Z && p.Z <= b.Max.Z
	}
	// sample the unit sphere surface
	for i := 0; i < 64; i++ {
		th := math.Pi * Real(i) / 63
		for j := 0; j < 64; j++ {
			ph := 2 * math.Pi * Real(j) / 64
			p := s.Spatial.Model.MulVec(Point(math.Sin(th)*math.Cos(ph), math.Sin(th)*math.Sin(ph), math.Cos(th)))
			if !inside(s.Bounds, p) {
				t.Fatalf("sphere point %+v outside bounds %+v", p, s.Bounds)
			}
		}
	}
	for _, poly := range d.Polygons {
		for _, v := range poly.Points {
			if p := d.Spatial.Model.MulVec(v); !inside(d.Bounds, p) {
				t.Fatalf("dodecahedron vertex %+v outside bounds %+v", p, d.Bounds)
			}
		}
	}
}

// Culling must never change the image.
func TestCullDoesNotChangeRender(t *testing.T) {
	scene := testScene(t, 24, 18)
	saved := UseCull
	defer func() { UseCull = saved }()

	UseCull = true
	with := Render(scene, ExtraSamples, 2)
	UseCull = false
	without := Render(scene, ExtraSamples, 2)
	if len(with) != len(without) {
		t.Fatal("length mismatch")
	}
	for i := range with {
		if with[i] != without[i] {
			t.Fatalf("byte %d differs: %d vs %d", i, with[i], without[i])
		}
	}
}
