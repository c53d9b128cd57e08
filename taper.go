package planar

// WidthFn is a width profile sampled along a curve at a normalized
// parameter t ∈ [0, 1].
type WidthFn func(t float64) float64

// Width returns the constant width profile w.
func Width(w float64) WidthFn {
	return func(float64) float64 { return w }
}

// TaperPoly returns the polynomial width profile
//
//	w(t) = c0 + c1·t + c2·t² + …
//
// The first coefficient is the start width; the coefficient sum is the end
// width.
func TaperPoly(coeffs ...float64) WidthFn {
	c := make([]float64, len(coeffs))
	copy(c, coeffs)
	return func(t float64) float64 {
		var w float64
		for i := len(c) - 1; i >= 0; i-- {
			w = w*t + c[i]
		}
		return w
	}
}

// LinearTaper tapers linearly from w0 to w1.
func LinearTaper(w0, w1 float64) WidthFn {
	return TaperPoly(w0, w1-w0)
}

// QuadraticTaper tapers from w0 to w1 with zero slope at the end only.
func QuadraticTaper(w0, w1 float64) WidthFn {
	d := w1 - w0
	return TaperPoly(w0, 2*d, -d)
}

// CubicTaper tapers from w0 to w1 with zero slope at both endpoints.
func CubicTaper(w0, w1 float64) WidthFn {
	d := w1 - w0
	return TaperPoly(w0, 0, 3*d, -2*d)
}
