package fishtrace

import "math"

// Vector3 represents a direction (not a position) in 3D space.
type Vector3 struct {
	X, Y, Z Real
}

// Vector functions
func (a Vector3) Add(b Vector3) Vector3 { return Vector3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vector3) Sub(b Vector3) Vector3 { return Vector3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (v Vector3) Mul(s Real) Vector3    { return Vector3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product between two 3D vectors.
func (a Vector3) Dot(b Vector3) Real {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product between two 3D vectors.
func (a Vector3) Cross(b Vector3) Vector3 {
	return Vector3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Len returns the Euclidean length of the vector.
func (v Vector3) Len() Real { return math.Sqrt(v.Dot(v)) }

// Norm returns a unit-length version of the vector.
func (v Vector3) Norm() Vector3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vector3{v.X / l, v.Y / l, v.Z / l}
}
