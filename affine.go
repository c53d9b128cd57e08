package planar

import "math"

// Affine describes an affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// The convention is (A * B) * v == A * (B * v).
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// ScaleAffine creates an affine transform representing non-uniform scaling
// with different scale values for x and y.
func ScaleAffine(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// TranslateAffine creates an affine transform representing translation.
func TranslateAffine(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// RotateAffine creates an affine transform representing rotation by th
// radians about the origin. A positive angle rotates the positive X
// direction into positive Y.
func RotateAffine(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// RotateAboutAffine creates an affine transform representing a rotation of
// th radians about center.
func RotateAboutAffine(th float64, center Point) Affine {
	c := Vec2(center)
	return TranslateAffine(c).Mul(RotateAffine(th)).Mul(TranslateAffine(c.Negate()))
}

// SkewAffine creates an affine transformation representing a skew. The x and
// y parameters are skew factors for the horizontal and vertical directions.
func SkewAffine(x, y float64) Affine {
	return Affine{1, y, x, 1, 0, 0}
}

// Reflect creates an affine transform that represents reflection about the
// line point + direction * t, t ∈ [-∞, ∞].
func Reflect(pt Point, direction Vec2) Affine {
	n := Vec2{
		X: direction.Y,
		Y: -direction.X,
	}.Normalize()

	// Householder reflection matrix, with the post translation folded in.
	x2 := n.X * n.X
	xy := n.X * n.Y
	y2 := n.Y * n.Y
	aff := Affine{
		1.0 - 2.0*x2,
		-2.0 * xy,
		-2.0 * xy,
		1.0 - 2.0*y2,
		pt.X,
		pt.Y,
	}
	return aff.PreTranslate(Vec2(pt).Negate())
}

func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// PreTranslate creates a translation of v followed by aff.
func (aff Affine) PreTranslate(v Vec2) Affine {
	return aff.Mul(TranslateAffine(v))
}

// ThenTranslate creates aff followed by a translation of v.
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

// TransformVec applies only the linear part of the transform, as appropriate
// for directions and displacements.
func (aff Affine) TransformVec(v Vec2) Vec2 {
	return Vec2{
		X: aff.N0*v.X + aff.N2*v.Y,
		Y: aff.N1*v.X + aff.N3*v.Y,
	}
}

// Determinant computes the determinant.
func (aff Affine) Determinant() float64 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// Invert computes the inverse transform.
//
// Produces NaN values when the determinant is zero.
func (aff Affine) Invert() Affine {
	invDet := 1 / aff.Determinant()
	return Affine{
		+invDet * aff.N3,
		-invDet * aff.N1,
		-invDet * aff.N2,
		+invDet * aff.N0,
		+invDet * (aff.N2*aff.N5 - aff.N3*aff.N4),
		+invDet * (aff.N1*aff.N4 - aff.N0*aff.N5),
	}
}
