package fishtrace

// 3×3 matrix (row-major)
type Mat3 struct {
	M [3][3]Real
}

func I3() Mat3 {
	return Mat3{M: [3][3]Real{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}}
}

func (A Mat3) Add(B Mat3) Mat3 {
	var R Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			R.M[r][c] = A.M[r][c] + B.M[r][c]
		}
	}
	return R
}

func (A Mat3) Mul(B Mat3) Mat3 {
	var R Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			sum := 0.0
			for k := 0; k < 3; k++ {
				sum += A.M[r][k] * B.M[k][c]
			}
			R.M[r][c] = sum
		}
	}
	return R
}

func (A Mat3) MulVec(v Vector3) Vector3 {
	return Vector3{
		A.M[0][0]*v.X + A.M[0][1]*v.Y + A.M[0][2]*v.Z,
		A.M[1][0]*v.X + A.M[1][1]*v.Y + A.M[1][2]*v.Z,
		A.M[2][0]*v.X + A.M[2][1]*v.Y + A.M[2][2]*v.Z,
	}
}

func (A Mat3) Transpose() Mat3 {
	var R Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			R.M[r][c] = A.M[c][r]
		}
	}
	return R
}

// Det returns the determinant.
func (A Mat3) Det() Real {
	m := &A.M
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// subOuter subtracts the outer product d dᵀ in place.
func (A *Mat3) subOuter(d Vector3) {
	A.M[0][0] -= d.X * d.X
	A.M[0][1] -= d.X * d.Y
	A.M[0][2] -= d.X * d.Z
	A.M[1][0] -= d.Y * d.X
	A.M[1][1] -= d.Y * d.Y
	A.M[1][2] -= d.Y * d.Z
	A.M[2][0] -= d.Z * d.X
	A.M[2][1] -= d.Z * d.Y
	A.M[2][2] -= d.Z * d.Z
}

// Solve solves A x = b by Cramer's rule and also returns det(A).
// The solution is meaningless when the determinant is (near) zero;
// callers decide what "near" means.
func (A Mat3) Solve(b Vector3) (Vector3, Real) {
	det := A.Det()
	if det == 0 {
		return Vector3{}, 0
	}
	col := func(i int) Mat3 {
		R := A
		R.M[0][i] = b.X
		R.M[1][i] = b.Y
		R.M[2][i] = b.Z
		return R
	}
	inv := 1 / det
	return Vector3{
		col(0).Det() * inv,
		col(1).Det() * inv,
		col(2).Det() * inv,
	}, det
}
