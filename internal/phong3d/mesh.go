package phong3d

import "fmt"

// NewMesh assembles polygons that share one spatial transform.
func NewMesh(name string, pos, scale Vector4, rot Rot3, lp LightingProps, faces [][]Vector4, orientToOrigin bool) (*Shape, error) {
	if len(faces) == 0 {
		return nil, &GeometryError{Shape: name, Err: fmt.Errorf("mesh has no polygons")}
	}
	s, err := newShape(KindMesh, name, pos, scale, rot, lp)
	if err != nil {
		return nil, err
	}
	s.Polygons = make([]Polygon, 0, len(faces))
	for i, f := range faces {
		p, err := NewPolygon(f, &s.Spatial, orientToOrigin)
		if err != nil {
			return nil, &GeometryError{Shape: name, Err: fmt.Errorf("polygon %d: %w", i, err)}
		}
		s.Polygons = append(s.Polygons, p)
	}
	s.Bounds = meshBounds(s.Spatial.Model, s.Polygons)
	DebugLog("Created mesh %q: %d polygons, bounds=%+v", name, len(s.Polygons), s.Bounds)
	return s, nil
}

func NewTetrahedron(name string, pos, scale Vector4, rot Rot3, lp LightingProps) (*Shape, error) {
	return NewMesh(name, pos, scale, rot, lp, tetrahedronFaces(), true)
}

// NewPolyCube is the polygon-mesh twin of NewCube.
func NewPolyCube(name string, pos, scale Vector4, rot Rot3, lp LightingProps) (*Shape, error) {
	return NewMesh(name, pos, scale, rot, lp, cubeFaces(), true)
}

func NewDodecahedron(name string, pos, scale Vector4, rot Rot3, lp LightingProps) (*Shape, error) {
	return NewMesh(name, pos, scale, rot, lp, dodecahedronFaces(), true)
}

// Mesh intersection: keep the closest polygon hit by shrinking tMax.
func intersectRayMesh(O, D Vector4, s *Shape, tMin, tMax Real) (Hit, bool) {
	Op, Dp := s.Spatial.toObject(O, D)

	best := -1
	bestT := tMax
	for i := range s.Polygons {
		if t, ok := s.Polygons[i].intersect(Op, Dp, tMin, bestT); ok {
			bestT, best = t, i
		}
	}
	if best < 0 {
		return Hit{}, false
	}
	return Hit{
		T:      bestT,
		Point:  O.Add(D.Mul(bestT)).ForcePoint(),
		Normal: s.Polygons[best].NormalPrime,
	}, true
}
