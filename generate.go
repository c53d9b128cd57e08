package planar

import "math"

// DefaultResolution is the sample count used by generators when none is
// given (n < 2).
const DefaultResolution = 100

// Straight returns a 2-point straight curve from the origin along +x. The
// representation is exact; no resolution parameter applies.
func Straight(length float64) (*Curve, error) {
	if length <= 0 {
		return nil, &InvalidGeometryError{Op: "Straight", Reason: "length must be positive"}
	}
	c := &Curve{
		segments: [][]Point{{Pt(0, 0), Pt(length, 0)}},
		ports:    Ports{},
	}
	c.ports[PortEntry] = Pose{Angle: math.Pi}
	c.ports[PortExit] = Pose{X: length}
	return c, nil
}

// Taper returns the straight curve over which a width profile is later
// sampled. Tapering affects the derived pattern, not the curve's path, so
// geometrically this is [Straight].
func Taper(length float64) (*Curve, error) {
	if length <= 0 {
		return nil, &InvalidGeometryError{Op: "Taper", Reason: "length must be positive"}
	}
	return Straight(length)
}

// Turn returns a turn of the given signed angle starting at the origin
// facing +x, sampled at n points.
//
// With eulerFraction > 0, the first and last eulerFraction of the arc
// length trade constant curvature for a clothoid ramp (curvature rising
// linearly from 0 to 1/radius), reducing the curvature discontinuity at the
// turn's ends. The path is rescaled so its chord matches the pure circular
// turn's chord, keeping the displacement unchanged while the arc length
// grows with the fraction; at full-turn angles, where the chord vanishes,
// the rescale targets the circular arc length instead. Both ramps together
// may cover at most the whole turn, so eulerFraction is capped at 0.5.
//
// The angle's sign picks the turn direction; its magnitude is unrestricted,
// though practical turns stay at or below π.
func Turn(radius, angle, eulerFraction float64, n int) (*Curve, error) {
	if radius <= 0 {
		return nil, &InvalidGeometryError{Op: "Turn", Reason: "radius must be positive"}
	}
	if angle == 0 {
		return nil, &InvalidGeometryError{Op: "Turn", Reason: "angle must be non-zero"}
	}
	if eulerFraction < 0 || eulerFraction > 0.5 {
		return nil, &InvalidGeometryError{Op: "Turn", Reason: "euler fraction must be in [0, 0.5]"}
	}
	if n < 2 {
		n = DefaultResolution
	}

	sign := 1.0
	a := angle
	if a < 0 {
		sign = -1.0
		a = -a
	}

	pts := make([]Point, 0, n)
	if eulerFraction == 0 {
		// Pure circular arc, sampled exactly.
		for k := 0; k < n; k++ {
			phi := a * float64(k) / float64(n-1)
			pts = appendSample(pts, Pt(radius*math.Sin(phi), sign*radius*(1-math.Cos(phi))))
		}
	} else {
		pts = eulerTurnPoints(radius, a, sign, eulerFraction, n)
	}

	c := &Curve{segments: [][]Point{pts}, ports: Ports{}}
	c.ports[PortEntry] = Pose{Angle: math.Pi}
	c.ports[PortExit] = PoseAt(pts[len(pts)-1], normalizeAngle(sign*a), 0)
	return c, nil
}

// eulerTurnPoints integrates the clothoid-arc-clothoid heading profile and
// rescales the result so the chord equals the circular turn's chord. The
// curvature profile is symmetric, so the chord direction already matches
// and a uniform scale suffices.
func eulerTurnPoints(radius, a, sign, e float64, n int) []Point {
	// Total arc length for a linear ramp over fraction e at each end:
	// the ramps sweep e·S/(2r) each and the middle (1−2e)·S/r, which must
	// sum to the full angle.
	s := radius * a / (1 - e)
	ramp := e * s

	theta := func(at float64) float64 {
		switch {
		case at < ramp:
			return at * at / (2 * radius * ramp)
		case at <= s-ramp:
			return ramp/(2*radius) + (at-ramp)/radius
		default:
			back := s - at
			return a - back*back/(2*radius*ramp)
		}
	}

	// Midpoint-rule integration of the heading profile.
	pts := make([]Point, 0, n)
	pts = append(pts, Pt(0, 0))
	ds := s / float64(n-1)
	var cur Point
	for k := 1; k < n; k++ {
		mid := (float64(k) - 0.5) * ds
		th := theta(mid)
		cur = cur.Translate(FromAngle(th).Mul(ds))
		pts = appendSample(pts, cur)
	}

	chordCircular := Pt(radius*math.Sin(a), radius*(1-math.Cos(a))).Distance(Pt(0, 0))
	chordEuler := pts[len(pts)-1].Distance(pts[0])
	scale := chordCircular / chordEuler
	if chordCircular <= epsilon || chordEuler <= epsilon {
		// Full-turn angles have a vanishing chord; rescale to the circular
		// arc length instead.
		scale = radius * a / polylineLength(pts)
	}
	for i, pt := range pts {
		pts[i] = Pt(pt.X*scale, sign*pt.Y*scale)
	}
	return pts
}

// appendSample appends pt unless it numerically duplicates the previous
// sample.
func appendSample(pts []Point, pt Point) []Point {
	if len(pts) > 0 && pt.Distance(pts[len(pts)-1]) <= epsilon {
		return pts
	}
	return append(pts, pt)
}

// ArcCentered returns a circular arc of the given signed sweep whose origin
// is the arc's center rather than its tangent point, sampled at n points
// starting from (radius, 0). Used for ring-style shapes.
func ArcCentered(angle, radius float64, n int) (*Curve, error) {
	if radius <= 0 {
		return nil, &InvalidGeometryError{Op: "ArcCentered", Reason: "radius must be positive"}
	}
	if angle == 0 {
		return nil, &InvalidGeometryError{Op: "ArcCentered", Reason: "angle must be non-zero"}
	}
	if n < 2 {
		n = DefaultResolution
	}
	pts := make([]Point, 0, n)
	for k := 0; k < n; k++ {
		phi := angle * float64(k) / float64(n-1)
		sin, cos := math.Sincos(phi)
		pts = appendSample(pts, Pt(radius*cos, radius*sin))
	}
	dir := math.Copysign(1, angle)
	c := &Curve{segments: [][]Point{pts}, ports: Ports{}}
	c.ports[PortEntry] = PoseAt(pts[0], normalizeAngle(dir*math.Pi/2+math.Pi), 0)
	c.ports[PortExit] = PoseAt(pts[len(pts)-1], normalizeAngle(angle+dir*math.Pi/2), 0)
	return c, nil
}

// BezierSBend returns a cubic Bézier s-bend with control points (0, 0),
// (bendX/2, 0), (bendX/2, bendY), (bendX, bendY), sampled at n parameter
// steps. The tangent is horizontal at both ends. A zero bendY degenerates
// to an exact 2-point line.
func BezierSBend(bendX, bendY float64, n int) (*Curve, error) {
	if bendX <= 0 {
		return nil, &InvalidGeometryError{Op: "BezierSBend", Reason: "bend x must be positive"}
	}
	if bendY == 0 {
		return Straight(bendX)
	}
	if n < 2 {
		n = DefaultResolution
	}
	p0 := Pt(0, 0)
	p1 := Pt(bendX/2, 0)
	p2 := Pt(bendX/2, bendY)
	p3 := Pt(bendX, bendY)
	pts := make([]Point, 0, n)
	for k := 0; k < n; k++ {
		t := float64(k) / float64(n-1)
		pts = appendSample(pts, evalCubicBez(p0, p1, p2, p3, t))
	}
	c := &Curve{segments: [][]Point{pts}, ports: Ports{}}
	c.ports[PortEntry] = Pose{Angle: math.Pi}
	c.ports[PortExit] = PoseAt(p3, 0, 0)
	return c, nil
}

func evalCubicBez(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1.0 - t
	a := Vec2(p0).Mul(mt * mt * mt)
	b := Vec2(p1).Mul(mt * mt * 3.0)
	c := Vec2(p2).Mul(mt * 3.0)
	d := Vec2(p3)
	return Point(a.Add(b.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t)))
}

// TurnSBend returns an s-bend made of two mirrored turns of the same
// magnitude, with net vertical displacement exactly height.
//
// When |height| ≤ 2·radius, the turn angle is solved analytically so the two
// turns alone reach the target height with no straight run. Otherwise two
// 90° turns cannot reach it, so a straight run between them absorbs the
// remaining |height| − 2·radius.
func TurnSBend(radius, height, eulerFraction float64, n int) (*Curve, error) {
	if radius <= 0 {
		return nil, &InvalidGeometryError{Op: "TurnSBend", Reason: "radius must be positive"}
	}
	if height == 0 {
		return nil, &InvalidGeometryError{Op: "TurnSBend", Reason: "height must be non-zero"}
	}
	sign := math.Copysign(1, height)
	h := math.Abs(height)

	var th, run float64
	if h <= 2*radius {
		th = math.Acos(1 - h/(2*radius))
	} else {
		th = math.Pi / 2
		run = h - 2*radius
	}

	up, err := Turn(radius, sign*th, eulerFraction, n)
	if err != nil {
		return nil, err
	}
	down, err := Turn(radius, -sign*th, eulerFraction, n)
	if err != nil {
		return nil, err
	}
	if run == 0 {
		return Link(up, down)
	}
	return Link(up, run, down)
}
