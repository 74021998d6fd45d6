package fishtrace

type Real = float64

// Point3 represents a position in 3-dimensional space.
type Point3 struct {
	X, Y, Z Real
}

// Add lets you translate a Point3 by a Vector3.
func (p Point3) Add(v Vector3) Point3 {
	return Point3{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Sub returns the displacement vector from q to p.
func (p Point3) Sub(q Point3) Vector3 {
	return Vector3{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}
