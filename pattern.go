package planar

import "slices"

// Pattern is an ordered sequence of closed polygon boundaries plus named
// ports. Boundaries are stored without a repeated closing point; each
// boundary has at least 3 points and is implicitly closed.
//
// Self-intersecting boundaries are allowed transiently; resolve them with
// [Union] before relying on non-intersection.
//
// A pattern exclusively owns its boundary data and its ports; reassigning a
// port never aliases another shape's port.
type Pattern struct {
	boundaries [][]Point
	ports      Ports
}

// NewPattern builds a pattern from closed boundaries. A repeated closing
// point is dropped; each boundary needs at least 3 distinct points.
func NewPattern(boundaries ...[]Point) (*Pattern, error) {
	bs := make([][]Point, 0, len(boundaries))
	for _, b := range boundaries {
		b = slices.Clone(b)
		if len(b) > 1 && b[0].Distance(b[len(b)-1]) <= epsilon {
			b = b[:len(b)-1]
		}
		if len(b) < 3 {
			return nil, &InvalidGeometryError{Op: "NewPattern", Reason: "boundary with fewer than 3 points"}
		}
		bs = append(bs, b)
	}
	return &Pattern{boundaries: bs, ports: Ports{}}, nil
}

// Rectangle returns a w×h box centered on the origin.
func Rectangle(w, h float64) (*Pattern, error) {
	if w <= 0 || h <= 0 {
		return nil, &InvalidGeometryError{Op: "Rectangle", Reason: "width and height must be positive"}
	}
	return NewPattern([]Point{
		{-w / 2, -h / 2},
		{w / 2, -h / 2},
		{w / 2, h / 2},
		{-w / 2, h / 2},
	})
}

// Path applies a constant width to the curve, producing a pattern.
func (c *Curve) Path(width float64) (*Pattern, error) {
	return c.PathWidth(Width(width))
}

// PathWidth sweeps a width profile along the curve, producing a pattern
// with a single boundary: at each sample the curve is offset by w(t)/2
// along the local normal on both sides, and the two offset chains close
// into one loop (right chain, end cap, reversed left chain, start cap).
//
// The profile parameter t advances per sample index, not per arc length;
// resample with [Curve.Interpolated] first when segment densities differ.
// Tangents at the chain ends are extrapolated from adjacent samples.
//
// The pattern inherits the curve's ports, with the entry and exit port
// widths stamped from w(0) and w(1).
func (c *Curve) PathWidth(fn WidthFn) (*Pattern, error) {
	chain := c.contiguous()
	m := len(chain)
	if m < 2 {
		return nil, &InvalidGeometryError{Op: "PathWidth", Reason: "curve has fewer than 2 points"}
	}

	right := make([]Point, m)
	left := make([]Point, m)
	for i, pt := range chain {
		var tangent Vec2
		switch i {
		case 0:
			tangent = chain[1].Sub(chain[0])
		case m - 1:
			tangent = chain[m-1].Sub(chain[m-2])
		default:
			tangent = chain[i+1].Sub(chain[i-1])
		}
		t := float64(i) / float64(m-1)
		w := fn(t)
		if w <= 0 {
			return nil, &InvalidGeometryError{Op: "PathWidth", Reason: "width profile must stay positive"}
		}
		normal := tangent.Turn90().Normalize().Mul(w / 2)
		left[i] = pt.Translate(normal)
		right[i] = pt.Translate(normal.Negate())
	}

	boundary := make([]Point, 0, 2*m)
	boundary = append(boundary, right...)
	for i := m - 1; i >= 0; i-- {
		boundary = append(boundary, left[i])
	}

	ports := c.ports.clone()
	if ports == nil {
		ports = Ports{}
	}
	if entry, ok := ports[PortEntry]; ok {
		entry.Width = fn(0)
		ports[PortEntry] = entry
	}
	if exit, ok := ports[PortExit]; ok {
		exit.Width = fn(1)
		ports[PortExit] = exit
	}
	return &Pattern{boundaries: [][]Point{boundary}, ports: ports}, nil
}

// Copy deep-copies boundaries and ports. Transform methods mutate in place
// and return the receiver; callers needing independence copy first.
func (p *Pattern) Copy() *Pattern {
	bs := make([][]Point, len(p.boundaries))
	for i, b := range p.boundaries {
		bs[i] = slices.Clone(b)
	}
	return &Pattern{boundaries: bs, ports: p.ports.clone()}
}

// NumBoundaries returns the number of closed boundaries.
func (p *Pattern) NumBoundaries() int {
	return len(p.boundaries)
}

// Boundaries returns a deep copy of the pattern's boundary loops.
func (p *Pattern) Boundaries() [][]Point {
	out := make([][]Point, len(p.boundaries))
	for i, b := range p.boundaries {
		out[i] = slices.Clone(b)
	}
	return out
}

// Port looks up a named port.
func (p *Pattern) Port(name string) (Pose, error) {
	return p.ports.Get(name)
}

// SetPort attaches or reassigns a named port.
func (p *Pattern) SetPort(name string, pose Pose) *Pattern {
	if p.ports == nil {
		p.ports = Ports{}
	}
	p.ports[name] = pose
	return p
}

// ClearPorts removes all ports.
func (p *Pattern) ClearPorts() *Pattern {
	p.ports = Ports{}
	return p
}

// Ports returns a copy of the pattern's port mapping.
func (p *Pattern) Ports() Ports {
	return p.ports.clone()
}

// Bounds returns the pattern's bounding box.
func (p *Pattern) Bounds() Rect {
	r, _ := boundsOf(p.boundaries)
	return r
}

// Center returns the center of the pattern's bounding box.
func (p *Pattern) Center() Point {
	return p.Bounds().Center()
}

// Transform maps every boundary point and every port through aff, in
// place, and returns p.
func (p *Pattern) Transform(aff Affine) *Pattern {
	for _, b := range p.boundaries {
		for i, pt := range b {
			b[i] = pt.Transform(aff)
		}
	}
	p.ports.transform(aff)
	return p
}

// Translate moves the pattern by (dx, dy).
func (p *Pattern) Translate(dx, dy float64) *Pattern {
	return p.Transform(TranslateAffine(Vec(dx, dy)))
}

// Rotate rotates the pattern by th radians about the origin.
func (p *Pattern) Rotate(th float64) *Pattern {
	return p.Transform(RotateAffine(th))
}

// RotateAbout rotates the pattern by th radians about center.
func (p *Pattern) RotateAbout(th float64, center Point) *Pattern {
	return p.Transform(RotateAboutAffine(th, center))
}

// Scale scales the pattern about the origin, non-uniformly if x != y.
func (p *Pattern) Scale(x, y float64) *Pattern {
	return p.Transform(ScaleAffine(x, y))
}

// Skew skews the pattern with horizontal and vertical skew factors.
func (p *Pattern) Skew(x, y float64) *Pattern {
	return p.Transform(SkewAffine(x, y))
}

// To rigid-transforms the pattern (and its ports) so the named port mates
// with the target pose: positions coincide and headings become
// antiparallel, matching physical connector semantics. An empty name uses
// [MatingOrigin] as the source pose.
func (p *Pattern) To(target Pose, from string) (*Pattern, error) {
	src := MatingOrigin
	if from != "" {
		var err error
		src, err = p.ports.Get(from)
		if err != nil {
			return nil, err
		}
	}
	return p.Transform(mate(target, src)), nil
}

// Align translates the pattern so its bounding-box center coincides with
// other's. Ports move with the geometry; none are consumed.
func (p *Pattern) Align(other *Pattern) *Pattern {
	return p.AlignTo(other.Center())
}

// AlignTo translates the pattern so its bounding-box center lands on pt.
func (p *Pattern) AlignTo(pt Point) *Pattern {
	d := pt.Sub(p.Center())
	return p.Translate(d.X, d.Y)
}

// HAlign translates the pattern horizontally so its min-x edge coincides
// with other's min-x edge. With opposite set, the max-x edges are aligned
// instead; the two placements are mirror-symmetric about other's x-center.
func (p *Pattern) HAlign(other *Pattern, opposite bool) *Pattern {
	pb, ob := p.Bounds(), other.Bounds()
	if opposite {
		return p.Translate(ob.MaxX()-pb.MaxX(), 0)
	}
	return p.Translate(ob.MinX()-pb.MinX(), 0)
}

// VAlign translates the pattern vertically so its min-y edge coincides with
// other's min-y edge. With opposite set, the max-y edges are aligned
// instead.
func (p *Pattern) VAlign(other *Pattern, opposite bool) *Pattern {
	pb, ob := p.Bounds(), other.Bounds()
	if opposite {
		return p.Translate(0, ob.MaxY()-pb.MaxY())
	}
	return p.Translate(0, ob.MinY()-pb.MinY())
}

// Area returns the total signed area over all boundaries, by the shoelace
// formula. Counterclockwise loops count positive.
func (p *Pattern) Area() float64 {
	var area float64
	for _, b := range p.boundaries {
		for i, pt := range b {
			next := b[(i+1)%len(b)]
			area += pt.X*next.Y - next.X*pt.Y
		}
	}
	return area / 2
}
