package phong3d

import (
	"math"
	"testing"
)

func TestSolidFaceCounts(t *testing.T) {
	cases := []struct {
		name  string
		faces [][]Vector4
		n, k  int
	}{
		{"tetrahedron", tetrahedronFaces(), 4, 3},
		{"cube", cubeFaces(), 6, 4},
		{"dodecahedron", dodecahedronFaces(), 12, 5},
	}
	for _, c := range cases {
		if len(c.faces) != c.n {
			t.Fatalf("%s: %d faces, want %d", c.name, len(c.faces), c.n)
		}
		for i, f := range c.faces {
			if len(f) != c.k {
				t.Fatalf("%s face %d: %d vertices, want %d", c.name, i, len(f), c.k)
			}
		}
	}
}

func TestSolidFacesArePlanarConvexLoops(t *testing.T) {
	sp := identitySpatial(t)
	for name, faces := range map[string][][]Vector4{
		"tetrahedron":  tetrahedronFaces(),
		"cube":         cubeFaces(),
		"dodecahedron": dodecahedronFaces(),
	} {
		for i, f := range faces {
			p, err := NewPolygon(f, sp, true)
			if err != nil {
				t.Fatalf("%s face %d: %v", name, i, err)
			}
			n := p.Normal.Norm()
			d0 := f[0].Dot(n)
			for _, v := range f {
				if math.Abs(v.Dot(n)-d0) > 1e-9 {
					t.Fatalf("%s face %d not planar", name, i)
				}
			}
			if d0 <= 0 {
				t.Fatalf("%s face %d normal points inward", name, i)
			}
			// consecutive edges all turn the same way around n
			for k := range f {
				a := f[(k+1)%len(f)].Sub(f[k])
				b := f[(k+2)%len(f)].Sub(f[(k+1)%len(f)])
				if a.Cross(b).Dot(n) <= 0 {
					t.Fatalf("%s face %d not a convex loop at %d", name, i, k)
				}
			}
		}
	}
}

func TestDodecahedronEdgesEqual(t *testing.T) {
	want := 2 / phi
	for i, f := range dodecahedronFaces() {
		for k := range f {
			if l := f[(k+1)%len(f)].Sub(f[k]).Len(); math.Abs(l-want) > 1e-9 {
				t.Fatalf("face %d edge %d length %.12g want %.12g", i, k, l, want)
			}
		}
	}
}
