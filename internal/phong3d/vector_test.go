package phong3d

import (
	"errors"
	"math"
	"testing"
)

func approxVec(a, b Vector4, eps Real) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps &&
		math.Abs(a.Z-b.Z) <= eps && math.Abs(a.W-b.W) <= eps
}

func TestVectorOps(t *testing.T) {
	v := Point(1, 2, 3)
	w := Vec(-1, 0.5, 2)

	if add := v.Add(w); add != (Vector4{0, 2.5, 5, 1}) {
		t.Fatalf("Add mismatch: %+v", add)
	}
	// point - point is a vector
	if sub := v.Sub(Point(1, 1, 1)); sub != (Vector4{0, 1, 2, 0}) {
		t.Fatalf("Sub mismatch: %+v", sub)
	}
	if mul := w.Mul(2); mul != (Vector4{-2, 1, 4, 0}) {
		t.Fatalf("Mul mismatch: %+v", mul)
	}
	// W is ignored by Dot
	if dot := v.Dot(w); dot != -1+1+6 {
		t.Fatalf("Dot mismatch: %.12g", dot)
	}
	if l := v.Len(); math.Abs(l-math.Sqrt(14)) > 1e-12 {
		t.Fatalf("Len mismatch: %.12g", l)
	}
}

func TestCross(t *testing.T) {
	c := Vec(1, 0, 0).Cross(Vec(0, 1, 0))
	if c != Vec(0, 0, 1) {
		t.Fatalf("x cross y = %+v", c)
	}
	// cross of points is still a vector
	if c := Point(1, 2, 3).Cross(Point(4, 5, 6)); c.W != 0 || c != Vec(-3, 6, -3) {
		t.Fatalf("cross mismatch: %+v", c)
	}
}

func TestNormalize(t *testing.T) {
	n, err := Vec(3, 0, 4).Normalize()
	if err != nil {
		t.Fatal(err)
	}
	if !approxVec(n, Vec(0.6, 0, 0.8), 1e-15) {
		t.Fatalf("normalize: %+v", n)
	}
	p, err := Point(0, 2, 0).Normalize()
	if err != nil || p.W != 1 {
		t.Fatalf("normalize must keep W: %+v %v", p, err)
	}
}

func TestNormalizeDegenerate(t *testing.T) {
	for _, v := range []Vector4{Vec(0, 0, 0), Vec(math.NaN(), 0, 1), Vec(math.Inf(1), 0, 0)} {
		_, err := v.Normalize()
		if !errors.Is(err, ErrDegenerateNormal) {
			t.Fatalf("%+v: expected ErrDegenerateNormal, got %v", v, err)
		}
		var ne *NumericError
		if !errors.As(err, &ne) || ne.Op != "normalize" {
			t.Fatalf("%+v: expected NumericError, got %T", v, err)
		}
	}
	// Norm leaves degenerate input alone
	if z := Vec(0, 0, 0).Norm(); z != Vec(0, 0, 0) {
		t.Fatalf("Norm of zero: %+v", z)
	}
}

func TestReflect(t *testing.T) {
	// 45 degrees onto the floor
	r := reflect(Vec(1, -1, 0), Vec(0, 1, 0))
	if r != Vec(1, 1, 0) {
		t.Fatalf("reflect: %+v", r)
	}
	// normal length does not matter
	r2 := reflect(Vec(1, -1, 0), Vec(0, 7, 0))
	if !approxVec(r, r2, 1e-12) {
		t.Fatalf("reflect with long normal: %+v", r2)
	}
}
