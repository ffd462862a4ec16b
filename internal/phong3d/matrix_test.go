package phong3d

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// sameAsMGL compares a row-major Mat4 with a column-major mgl64.Mat4.
func sameAsMGL(t *testing.T, name string, A Mat4, B mgl64.Mat4) {
	t.Helper()
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if math.Abs(A.M[r][c]-B.At(r, c)) > 1e-10 {
				t.Fatalf("%s mismatch at (%d,%d): %.12g vs %.12g\n%s", name, r, c, A.M[r][c], B.At(r, c), A)
			}
		}
	}
}

func TestI4MulVec(t *testing.T) {
	v := Vector4{1, 2, 3, 4}
	if out := I4().MulVec(v); out != v {
		t.Fatalf("I*v != v: %+v", out)
	}
}

func TestTranslateOnlyMovesPoints(t *testing.T) {
	T := TranslateM(1, 2, 3)
	if p := T.MulVec(Point(1, 1, 1)); p != Point(2, 3, 4) {
		t.Fatalf("point: %+v", p)
	}
	if v := T.MulVec(Vec(1, 1, 1)); v != Vec(1, 1, 1) {
		t.Fatalf("vector moved: %+v", v)
	}
}

func TestBuildersMatchMathGL(t *testing.T) {
	a := 0.7
	sameAsMGL(t, "RotX", RotX(a), mgl64.HomogRotate3DX(a))
	sameAsMGL(t, "RotY", RotY(a), mgl64.HomogRotate3DY(a))
	sameAsMGL(t, "RotZ", RotZ(a), mgl64.HomogRotate3DZ(a))
	sameAsMGL(t, "TranslateM", TranslateM(1, -2, 3), mgl64.Translate3D(1, -2, 3))
	sameAsMGL(t, "ScaleM", ScaleM(2, 3, 4), mgl64.Scale3D(2, 3, 4))

	M := TranslateM(1, 2, 3).Mul(RotY(0.3)).Mul(ScaleM(2, 1, 0.5))
	G := mgl64.Translate3D(1, 2, 3).Mul4(mgl64.HomogRotate3DY(0.3)).Mul4(mgl64.Scale3D(2, 1, 0.5))
	sameAsMGL(t, "T*R*S", M, G)
}

func TestTranspose(t *testing.T) {
	M := Mat4{M: [4][4]Real{
		{1, 2, 3, 4},
		{0, 1, 0, 0.5},
		{2, 0, 1, -1},
		{0, 0, 0.25, 1},
	}}
	T := M.Transpose()
	if T.M[0][1] != M.M[1][0] || T.M[3][2] != M.M[2][3] {
		t.Fatal("Transpose mismatch")
	}
	if T.Transpose() != M {
		t.Fatal("double transpose is not identity")
	}
}

func TestInverse(t *testing.T) {
	M := TranslateM(3, -1, 2).Mul(rotFromAngles(Rot3{0.3, -1.1, 2.4})).Mul(ScaleM(2, 0.5, 3))
	inv, err := M.Inverse()
	if err != nil {
		t.Fatal(err)
	}
	if P := M.Mul(inv); !P.ApproxEqual(I4(), 1e-12) {
		t.Fatalf("M*inv != I:\n%s", P)
	}
	back, err := inv.Inverse()
	if err != nil {
		t.Fatal(err)
	}
	if !back.ApproxEqual(M, 1e-9) {
		t.Fatalf("inverse(inverse(M)) != M:\n%s\n%s", back, M)
	}
	G := mgl64.Translate3D(3, -1, 2).Mul4(mgl64.HomogRotate3DZ(2.4)).Mul4(mgl64.HomogRotate3DY(-1.1)).
		Mul4(mgl64.HomogRotate3DX(0.3)).Mul4(mgl64.Scale3D(2, 0.5, 3)).Inv()
	sameAsMGL(t, "inverse", inv, G)
}

func TestInverseNeedsPivoting(t *testing.T) {
	// 90 degrees about X puts zeros on the diagonal
	M := RotX(math.Pi / 2)
	M.M[1][1], M.M[2][2] = 0, 0
	inv, err := M.Inverse()
	if err != nil {
		t.Fatal(err)
	}
	if !M.Mul(inv).ApproxEqual(I4(), 1e-15) {
		t.Fatalf("pivoted inverse wrong:\n%s", inv)
	}
}

func TestInverseSingular(t *testing.T) {
	_, err := ScaleM(1, 0, 1).Inverse()
	if !errors.Is(err, ErrSingularTransform) {
		t.Fatalf("expected ErrSingularTransform, got %v", err)
	}
	_, err = ScaleM(1, 1e-14, 1).Inverse()
	if !errors.Is(err, ErrSingularTransform) {
		t.Fatalf("tiny pivot accepted: %v", err)
	}
}
