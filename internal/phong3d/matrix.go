package phong3d

import (
	"fmt"
	"math"
	"strings"
)

// 4×4 matrix (row-major)
type Mat4 struct {
	M [4][4]Real
}

func I4() Mat4 {
	return Mat4{M: [4][4]Real{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

// ScaleM scales along the X, Y and Z axes.
func ScaleM(x, y, z Real) Mat4 {
	M := I4()
	M.M[0][0], M.M[1][1], M.M[2][2] = x, y, z
	return M
}

// TranslateM moves points by (x,y,z); vectors are unaffected.
func TranslateM(x, y, z Real) Mat4 {
	M := I4()
	M.M[0][3], M.M[1][3], M.M[2][3] = x, y, z
	return M
}

func (A Mat4) Mul(B Mat4) Mat4 {
	var R Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += A.M[r][k] * B.M[k][c]
			}
			R.M[r][c] = sum
		}
	}
	return R
}

func (A Mat4) Transpose() Mat4 {
	var R Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			R.M[r][c] = A.M[c][r]
		}
	}
	return R
}

// Inverse runs Gauss-Jordan elimination on [A|I] with partial pivoting.
// A pivot smaller than PivotEps means A is singular (e.g. a zero scale axis).
func (A Mat4) Inverse() (Mat4, error) {
	a := A.M
	inv := I4().M
	for col := 0; col < 4; col++ {
		// pick the largest pivot in this column
		p := col
		for r := col + 1; r < 4; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[p][col]) {
				p = r
			}
		}
		if !(math.Abs(a[p][col]) > PivotEps) {
			return Mat4{}, fmt.Errorf("pivot %.3g in column %d: %w", a[p][col], col, ErrSingularTransform)
		}
		a[col], a[p] = a[p], a[col]
		inv[col], inv[p] = inv[p], inv[col]

		k := 1 / a[col][col]
		for c := 0; c < 4; c++ {
			a[col][c] *= k
			inv[col][c] *= k
		}
		for r := 0; r < 4; r++ {
			if r == col {
				continue
			}
			f := a[r][col]
			if f == 0 {
				continue
			}
			for c := 0; c < 4; c++ {
				a[r][c] -= f * a[col][c]
				inv[r][c] -= f * inv[col][c]
			}
		}
	}
	return Mat4{M: inv}, nil
}

// ApproxEqual compares element-wise within eps.
func (A Mat4) ApproxEqual(B Mat4, eps Real) bool {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if math.Abs(A.M[r][c]-B.M[r][c]) > eps {
				return false
			}
		}
	}
	return true
}

func (A Mat4) String() string {
	var sb strings.Builder
	for r := 0; r < 4; r++ {
		fmt.Fprintf(&sb, "|%6.3f,%6.3f,%6.3f,%6.3f|\n", A.M[r][0], A.M[r][1], A.M[r][2], A.M[r][3])
	}
	return sb.String()
}
