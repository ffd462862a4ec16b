package phong3d

import "math"

// Vector4 is a homogeneous 3D value: W=1 marks a point, W=0 a direction.
type Vector4 struct {
	X, Y, Z, W Real
}

// Point returns (x,y,z,1).
func Point(x, y, z Real) Vector4 { return Vector4{x, y, z, 1} }

// Vec returns (x,y,z,0).
func Vec(x, y, z Real) Vector4 { return Vector4{x, y, z, 0} }

// Vector functions, W propagates naturally.
func (a Vector4) Add(b Vector4) Vector4 { return Vector4{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W} }
func (a Vector4) Sub(b Vector4) Vector4 { return Vector4{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W} }
func (v Vector4) Mul(s Real) Vector4    { return Vector4{v.X * s, v.Y * s, v.Z * s, v.W * s} }
func (v Vector4) Neg() Vector4          { return Vector4{-v.X, -v.Y, -v.Z, -v.W} }

func (v Vector4) ForceVec() Vector4   { v.W = 0; return v }
func (v Vector4) ForcePoint() Vector4 { v.W = 1; return v }

// Dot returns the dot product of the first three components.
func (a Vector4) Dot(b Vector4) Real {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the 3D cross product as a vector (W=0).
func (a Vector4) Cross(b Vector4) Vector4 {
	return Vector4{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
		0,
	}
}

// Len returns the Euclidean length of the first three components.
func (v Vector4) Len() Real { return math.Sqrt(v.Dot(v)) }

// Norm returns a unit-length version of the vector.
// If the vector is zero, it returns the input unchanged.
func (v Vector4) Norm() Vector4 {
	n, err := v.Normalize()
	if err != nil {
		return v
	}
	return n
}

// Normalize divides X,Y,Z by the length and keeps W.
// Zero or non-finite lengths yield ErrDegenerateNormal.
func (v Vector4) Normalize() (Vector4, error) {
	l := v.Len()
	if l == 0 || !isFinite(l) {
		return v, &NumericError{Op: "normalize", Err: ErrDegenerateNormal}
	}
	return Vector4{v.X / l, v.Y / l, v.Z / l, v.W}, nil
}

// reflect mirrors I about N; N does not have to be unit.
func reflect(I, N Vector4) Vector4 {
	return I.Sub(N.Mul(2 * I.Dot(N) / N.Dot(N)))
}

func (A Mat4) MulVec(v Vector4) Vector4 {
	return Vector4{
		A.M[0][0]*v.X + A.M[0][1]*v.Y + A.M[0][2]*v.Z + A.M[0][3]*v.W,
		A.M[1][0]*v.X + A.M[1][1]*v.Y + A.M[1][2]*v.Z + A.M[1][3]*v.W,
		A.M[2][0]*v.X + A.M[2][1]*v.Y + A.M[2][2]*v.Z + A.M[2][3]*v.W,
		A.M[3][0]*v.X + A.M[3][1]*v.Y + A.M[3][2]*v.Z + A.M[3][3]*v.W,
	}
}
