package phong3d

import "math"

// Angles in radians about the X, Y and Z axes.
type Rot3 struct {
	X, Y, Z Real
}

func RotX(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[1][1], M.M[1][2] = c, -s
	M.M[2][1], M.M[2][2] = s, c
	return M
}

func RotY(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[0][0], M.M[0][2] = c, s
	M.M[2][0], M.M[2][2] = -s, c
	return M
}

func RotZ(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[0][0], M.M[0][1] = c, -s
	M.M[1][0], M.M[1][1] = s, c
	return M
}

// Compose rotation from angles: X first, then Y, then Z.
func rotFromAngles(r Rot3) Mat4 {
	return RotZ(r.Z).Mul(RotY(r.Y).Mul(RotX(r.X)))
}
