package raymarch

import (
	"math"
	"testing"
)

func TestI3MulVec(t *testing.T) {
	I := I3()
	v := Vec3{1, 2, 3}
	if out := I.MulVec(v); out != v {
		t.Fatalf("I*v != v: %+v", out)
	}
	if out := I.MulVecT(v); out != v {
		t.Fatalf("I^T*v != v: %+v", out)
	}
}

func TestTransposeAndMul(t *testing.T) {
	M := Mat3{M: [3][3]Real{
		{1, 2, 3},
		{0, 1, 0.5},
		{2, 0, -1},
	}}
	T := M.Transpose()
	if T.M[0][1] != M.M[1][0] || T.M[2][1] != M.M[1][2] {
		t.Fatal("Transpose mismatch")
	}
	S := T.Mul(M)
	if math.Abs(float64(S.M[0][2]-S.M[2][0])) > 1e-6 {
		t.Fatal("M^T M not symmetric")
	}

	v := Vec3{0.5, -1, 2}
	a, b := M.MulVecT(v), T.MulVec(v)
	if a != b {
		t.Fatalf("MulVecT != Transpose().MulVec: %+v vs %+v", a, b)
	}
}
