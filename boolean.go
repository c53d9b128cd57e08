package planar

import polyclip "github.com/akavel/polyclip-go"

// Boolean set operations are delegated to polyclip-go, which operates on
// polygon-set semantics and may return multiple disjoint or nested
// boundaries from one operation.
//
// By contract, boolean results carry no ports: neither operand's ports stay
// meaningful after clipping, so callers reassign the ports they need.
// Operands are never mutated.

// Union returns the set union of the two patterns' boundaries.
func Union(a, b *Pattern) *Pattern {
	return construct(a, b, polyclip.UNION)
}

// Difference returns a's boundaries minus b's.
func Difference(a, b *Pattern) *Pattern {
	return construct(a, b, polyclip.DIFFERENCE)
}

// Intersect returns the set intersection of the two patterns' boundaries.
func Intersect(a, b *Pattern) *Pattern {
	return construct(a, b, polyclip.INTERSECTION)
}

// Xor returns the symmetric difference of the two patterns' boundaries.
func Xor(a, b *Pattern) *Pattern {
	return construct(a, b, polyclip.XOR)
}

func construct(a, b *Pattern, op polyclip.Op) *Pattern {
	out := toPolyclip(a).Construct(op, toPolyclip(b))
	return fromPolyclip(out)
}

func toPolyclip(p *Pattern) polyclip.Polygon {
	poly := make(polyclip.Polygon, 0, len(p.boundaries))
	for _, b := range p.boundaries {
		contour := make(polyclip.Contour, len(b))
		for i, pt := range b {
			contour[i] = polyclip.Point{X: pt.X, Y: pt.Y}
		}
		poly = append(poly, contour)
	}
	return poly
}

func fromPolyclip(poly polyclip.Polygon) *Pattern {
	boundaries := make([][]Point, 0, len(poly))
	for _, contour := range poly {
		if len(contour) < 3 {
			continue
		}
		b := make([]Point, len(contour))
		for i, pt := range contour {
			b[i] = Pt(pt.X, pt.Y)
		}
		boundaries = append(boundaries, b)
	}
	return &Pattern{boundaries: boundaries, ports: Ports{}}
}
