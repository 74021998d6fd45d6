package fishtrace

import (
	"math"
	"testing"
)

func TestI3MulVec(t *testing.T) {
	I := I3()
	v := Vector3{1, 2, 3}
	out := I.MulVec(v)
	if out != v {
		t.Fatalf("I*v != v: %+v", out)
	}
}

func TestTransposeAndMul(t *testing.T) {
	// simple nontrivial matrix
	M := Mat3{M: [3][3]Real{
		{1, 2, 3},
		{0, 1, 0.5},
		{2, 0, -1},
	}}
	T := M.Transpose()
	// check transpose symmetry for a couple elements
	if T.M[0][1] != M.M[1][0] || T.M[2][1] != M.M[1][2] {
		t.Fatal("Transpose mismatch")
	}

	// (M^T M) should be symmetric (just basic check)
	S := T.Mul(M)
	if math.Abs(float64(S.M[0][1]-S.M[1][0])) > 1e-12 {
		t.Fatal("M^T M not symmetric")
	}
}

func TestDet(t *testing.T) {
	if d := I3().Det(); d != 1 {
		t.Fatalf("det(I) != 1: %.12g", d)
	}
	M := Mat3{M: [3][3]Real{
		{2, 0, 0},
		{0, 3, 0},
		{0, 0, 4},
	}}
	if d := M.Det(); d != 24 {
		t.Fatalf("det(diag(2,3,4)) != 24: %.12g", d)
	}
	// rank-deficient
	R := Mat3{M: [3][3]Real{
		{1, 2, 3},
		{2, 4, 6},
		{0, 1, 1},
	}}
	if d := R.Det(); math.Abs(float64(d)) > 1e-12 {
		t.Fatalf("det of singular matrix != 0: %.12g", d)
	}
}

func TestSolve(t *testing.T) {
	// symmetric positive-definite system with a known solution
	M := Mat3{M: [3][3]Real{
		{4, 1, 0},
		{1, 3, 1},
		{0, 1, 2},
	}}
	want := Vector3{1, -2, 0.5}
	b := M.MulVec(want)
	x, det := M.Solve(b)
	if math.Abs(float64(det)) < 1e-12 {
		t.Fatalf("unexpected zero determinant")
	}
	if x.Sub(want).Len() > 1e-12 {
		t.Fatalf("Solve mismatch: got %+v want %+v", x, want)
	}
}

func TestSubOuter(t *testing.T) {
	A := I3()
	d := Vector3{0, 0, 1}
	A.subOuter(d)
	// projector onto the plane orthogonal to d
	if got := A.MulVec(Vector3{1, 2, 3}); got != (Vector3{1, 2, 0}) {
		t.Fatalf("projector mismatch: %+v", got)
	}
	// projecting d itself gives zero
	if got := A.MulVec(d); got != (Vector3{}) {
		t.Fatalf("projector did not kill its axis: %+v", got)
	}
}
