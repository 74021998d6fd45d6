package fishtrace

import (
	"fmt"
	"math"
)

// ClosestPoint computes the least-squares intersection of a set of lines:
// the point x minimizing the sum of squared perpendicular distances to every
// line. It also returns that residual sum. For lines that truly meet in one
// point the residual is ~0 and x is the meeting point.
//
// For each line with point p and unit direction d the perpendicular
// projector is A = I - d dᵀ; summing A and A·p over all lines gives the
// normal system (ΣA) x = Σ(A·p), solved directly as a 3×3 system.
//
// Directions are re-normalized here regardless of what the caller supplied.
// Errors: ErrInvalidInput for fewer than two lines, a (near) zero direction
// or non-finite coordinates; ErrDegenerateConfiguration when the system is
// singular (e.g. all lines parallel) and no unique minimizer exists.
func ClosestPoint(lines []Line) (Point3, Real, error) {
	if len(lines) < 2 {
		return Point3{}, 0, fmt.Errorf("%w: need at least 2 lines, got %d", ErrInvalidInput, len(lines))
	}

	norm := make([]Line, len(lines))
	for i, l := range lines {
		nl, err := NewLine(l.Point, l.Dir)
		if err != nil {
			return Point3{}, 0, fmt.Errorf("line #%d: %w", i, err)
		}
		norm[i] = nl
	}

	var M Mat3
	var b Vector3
	for _, l := range norm {
		A := I3()
		A.subOuter(l.Dir)
		M = M.Add(A)
		b = b.Add(A.MulVec(l.Point.Sub(Point3{})))
	}

	x, det := M.Solve(b)
	if math.Abs(det) < detEps {
		return Point3{}, 0, fmt.Errorf("%w: system determinant %g below %g", ErrDegenerateConfiguration, det, detEps)
	}
	p := Point3{x.X, x.Y, x.Z}

	residual := Real(0)
	for _, l := range norm {
		d := l.DistToPoint(p)
		residual += d * d
	}
	DebugLog("ClosestPoint: %d lines => point=%+v residual=%g det=%g", len(norm), p, residual, det)
	return p, residual, nil
}
