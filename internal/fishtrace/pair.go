package fishtrace

import "fmt"

// ClosestApproach solves the two-line special case explicitly: it returns
// the point on each line where the lines pass closest to each other, the
// midpoint between those two feet and the gap distance. For two lines the
// midpoint coincides with the least-squares intersection from ClosestPoint.
//
// Parallel (or near-parallel) lines have no unique closest pair, which is
// reported as ErrDegenerateConfiguration.
func ClosestApproach(a, b Line) (pa, pb, mid Point3, gap Real, err error) {
	na, err := NewLine(a.Point, a.Dir)
	if err != nil {
		return Point3{}, Point3{}, Point3{}, 0, fmt.Errorf("line a: %w", err)
	}
	nb, err := NewLine(b.Point, b.Dir)
	if err != nil {
		return Point3{}, Point3{}, Point3{}, 0, fmt.Errorf("line b: %w", err)
	}

	// With unit directions the normal equations for the two line parameters
	// reduce to a 2×2 system with determinant 1 - (da·db)².
	w := na.Point.Sub(nb.Point)
	c := na.Dir.Dot(nb.Dir)
	denom := 1 - c*c
	if denom < detEps {
		return Point3{}, Point3{}, Point3{}, 0,
			fmt.Errorf("%w: directions nearly parallel (|cos|=%g)", ErrDegenerateConfiguration, c)
	}
	d := na.Dir.Dot(w)
	e := nb.Dir.Dot(w)
	ta := (c*e - d) / denom
	tb := (e - c*d) / denom

	pa = na.At(ta)
	pb = nb.At(tb)
	mid = pa.Add(pb.Sub(pa).Mul(0.5))
	gap = pb.Sub(pa).Len()
	DebugLog("ClosestApproach: ta=%g tb=%g gap=%g mid=%+v", ta, tb, gap, mid)
	return pa, pb, mid, gap, nil
}
