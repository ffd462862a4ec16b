package phong3d

import (
	"math"
	"sort"
)

// Polyhedron	Vertices	Faces
// tetrahedron	4	4 triangles
// cube		8	6 squares
// dodecahedron	20	12 pentagons
//
// All canonical solids are centred on the object origin, so polygon normals
// can be oriented away from it.

var phi = (1 + math.Sqrt(5)) / 2

func tetrahedronVerts() []Vector4 {
	return []Vector4{
		Point(1, 1, 1),
		Point(1, -1, -1),
		Point(-1, 1, -1),
		Point(-1, -1, 1),
	}
}

func cubeVerts() []Vector4 {
	out := make([]Vector4, 0, 8)
	for _, x := range []Real{-1, 1} {
		for _, y := range []Real{-1, 1} {
			for _, z := range []Real{-1, 1} {
				out = append(out, Point(x, y, z))
			}
		}
	}
	return out
}

// 8 of (±1,±1,±1), then (0,±1/φ,±φ), (±1/φ,±φ,0), (±φ,0,±1/φ).
func dodecahedronVerts() []Vector4 {
	out := cubeVerts()
	ip := 1 / phi
	for _, a := range []Real{-1, 1} {
		for _, b := range []Real{-1, 1} {
			out = append(out,
				Point(0, a*ip, b*phi),
				Point(a*ip, b*phi, 0),
				Point(a*phi, 0, b*ip),
			)
		}
	}
	return out
}

func tetrahedronFaces() [][]Vector4 {
	verts := tetrahedronVerts()
	// each face is opposite one vertex
	normals := make([]Vector4, len(verts))
	for i, v := range verts {
		normals[i] = v.ForceVec().Neg()
	}
	return faceLoops(verts, normals)
}

func cubeFaces() [][]Vector4 {
	return faceLoops(cubeVerts(), cubeNormals[:])
}

// Face normals are the 12 cyclic permutations of (0,±φ,±1) (the dual icosahedron).
func dodecahedronFaces() [][]Vector4 {
	normals := make([]Vector4, 0, 12)
	for _, a := range []Real{-1, 1} {
		for _, b := range []Real{-1, 1} {
			normals = append(normals,
				Vec(0, a*phi, b),
				Vec(b, 0, a*phi),
				Vec(a*phi, b, 0),
			)
		}
	}
	return faceLoops(dodecahedronVerts(), normals)
}

// faceLoops selects, for every outward face normal, the vertices with maximal
// projection on it and orders them counter-clockwise around the face centroid.
func faceLoops(verts, normals []Vector4) [][]Vector4 {
	faces := make([][]Vector4, 0, len(normals))
	for _, n := range normals {
		top := math.Inf(-1)
		for _, v := range verts {
			if d := v.Dot(n); d > top {
				top = d
			}
		}
		tol := 1e-9 * (1 + math.Abs(top))
		var face []Vector4
		var c Vector4
		for _, v := range verts {
			if v.Dot(n) >= top-tol {
				face = append(face, v)
				c = c.Add(v.ForceVec())
			}
		}
		c = c.Mul(1 / Real(len(face)))
		u := face[0].ForceVec().Sub(c).Norm()
		w := n.Cross(u)
		angle := func(v Vector4) Real {
			d := v.ForceVec().Sub(c)
			return math.Atan2(d.Dot(w), d.Dot(u))
		}
		sort.Slice(face, func(i, j int) bool { return angle(face[i]) < angle(face[j]) })
		faces = append(faces, face)
	}
	return faces
}
