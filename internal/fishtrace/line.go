package fishtrace

import "fmt"

// Line is an infinite line in 3D space given by a point it passes through
// and a direction. Dir is kept unit-length by NewLine; code that fills the
// struct directly must normalize or go through the solvers, which
// re-normalize defensively.
type Line struct {
	Point Point3
	Dir   Vector3
}

// NewLine validates and constructs a line. The direction does not have to be
// unit-length; it is normalized here. A (near) zero direction or a non-finite
// coordinate is an input error.
func NewLine(p Point3, d Vector3) (Line, error) {
	if !isFinite(p.X) || !isFinite(p.Y) || !isFinite(p.Z) ||
		!isFinite(d.X) || !isFinite(d.Y) || !isFinite(d.Z) {
		return Line{}, fmt.Errorf("%w: non-finite coordinate in point=%+v dir=%+v", ErrInvalidInput, p, d)
	}
	if d.Len() < dirEps {
		return Line{}, fmt.Errorf("%w: direction magnitude %g below %g", ErrInvalidInput, d.Len(), dirEps)
	}
	return Line{Point: p, Dir: d.Norm()}, nil
}

// At returns the point at parameter t (signed distance for a unit Dir).
func (l Line) At(t Real) Point3 {
	return l.Point.Add(l.Dir.Mul(t))
}

// ClosestPointTo returns the foot of the perpendicular from p onto the line.
func (l Line) ClosestPointTo(p Point3) Point3 {
	t := p.Sub(l.Point).Dot(l.Dir)
	return l.At(t)
}

// DistToPoint returns the perpendicular distance from p to the line.
func (l Line) DistToPoint(p Point3) Real {
	return p.Sub(l.ClosestPointTo(p)).Len()
}
