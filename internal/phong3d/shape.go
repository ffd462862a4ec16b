package phong3d

// ShapeKind is the closed set of primitive variants.
type ShapeKind uint8

const (
	KindSphere ShapeKind = iota // unit sphere at the object origin
	KindCube                    // cube [-1,1]^3
	KindMesh                    // convex polygons sharing one transform
)

func (k ShapeKind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindCube:
		return "cube"
	case KindMesh:
		return "mesh"
	}
	return "unknown"
}

// Shape is built once at scene load and read-only while rendering.
type Shape struct {
	Name     string
	Kind     ShapeKind
	Spatial  SpatialProps
	Lighting LightingProps
	Polygons []Polygon // KindMesh only

	// cached
	Bounds AABB // padded world-space bounds
}

// Hit is the closest accepted intersection along a ray.
// Normal has W=0 and is not guaranteed to be unit length.
type Hit struct {
	T      Real
	Point  Vector4
	Normal Vector4
	Shape  *Shape
}

// Intersect returns the closest hit with tMin < t < tMax.
func (s *Shape) Intersect(O, D Vector4, tMin, tMax Real) (hit Hit, ok bool) {
	switch s.Kind {
	case KindSphere:
		hit, ok = intersectRaySphere(O, D, s, tMin, tMax)
	case KindCube:
		hit, ok = intersectRayCube(O, D, s, tMin, tMax)
	case KindMesh:
		hit, ok = intersectRayMesh(O, D, s, tMin, tMax)
	default:
		return Hit{}, false
	}
	if ok {
		hit.Shape = s
	}
	return hit, ok
}

func newShape(kind ShapeKind, name string, pos, scale Vector4, rot Rot3, lp LightingProps) (*Shape, error) {
	sp, err := NewSpatialProps(pos, scale, rot)
	if err != nil {
		return nil, &GeometryError{Shape: name, Err: err}
	}
	return &Shape{Name: name, Kind: kind, Spatial: sp, Lighting: lp}, nil
}

// NewSphere builds a unit sphere placed by pos/scale/rot.
func NewSphere(name string, pos, scale Vector4, rot Rot3, lp LightingProps) (*Shape, error) {
	s, err := newShape(KindSphere, name, pos, scale, rot, lp)
	if err != nil {
		return nil, err
	}
	s.Bounds = unitCubeBounds(s.Spatial.Model)
	DebugLog("Created sphere %q: pos=%+v scale=%+v rot=%+v", name, pos, scale, rot)
	return s, nil
}

// NewCube builds the analytic cube of half-extent 1 placed by pos/scale/rot.
func NewCube(name string, pos, scale Vector4, rot Rot3, lp LightingProps) (*Shape, error) {
	s, err := newShape(KindCube, name, pos, scale, rot, lp)
	if err != nil {
		return nil, err
	}
	s.Bounds = unitCubeBounds(s.Spatial.Model)
	DebugLog("Created cube %q: pos=%+v scale=%+v rot=%+v", name, pos, scale, rot)
	return s, nil
}
