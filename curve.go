package planar

import "slices"

// Curve is an ordered sequence of open sampled point chains ("segments"),
// plus named reference poses (ports). Within a segment, consecutive points
// are distinct; the first and last point of a segment need not coincide.
//
// Ports are owned data: after a Copy, the copy's ports are independent of
// the original's. Ports aren't required to lie on the curve; keeping them
// near it is the generator's business.
type Curve struct {
	segments [][]Point
	ports    Ports
}

// NewCurve builds a curve from open point chains. Coincident consecutive
// points are dropped; each chain needs at least two distinct points.
func NewCurve(segments ...[]Point) (*Curve, error) {
	segs := make([][]Point, 0, len(segments))
	for _, seg := range segments {
		chain := make([]Point, 0, len(seg))
		for _, pt := range seg {
			chain = appendSample(chain, pt)
		}
		if len(chain) < 2 {
			return nil, &InvalidGeometryError{Op: "NewCurve", Reason: "segment with fewer than 2 distinct points"}
		}
		segs = append(segs, chain)
	}
	return &Curve{segments: segs, ports: Ports{}}, nil
}

// Copy deep-copies the curve's segments and ports. Later mutation of the
// copy never affects the original.
func (c *Curve) Copy() *Curve {
	segs := make([][]Point, len(c.segments))
	for i, seg := range c.segments {
		segs[i] = slices.Clone(seg)
	}
	return &Curve{segments: segs, ports: c.ports.clone()}
}

// NumSegments returns the number of point chains.
func (c *Curve) NumSegments() int {
	return len(c.segments)
}

// Segments exposes the constituent chains as independent single-segment
// sub-curves. The sub-curves share no data with c and carry no ports.
func (c *Curve) Segments() []*Curve {
	out := make([]*Curve, len(c.segments))
	for i, seg := range c.segments {
		out[i] = &Curve{segments: [][]Point{slices.Clone(seg)}, ports: Ports{}}
	}
	return out
}

// Points returns a deep copy of the curve's point chains, suitable for
// handing to renderers.
func (c *Curve) Points() [][]Point {
	out := make([][]Point, len(c.segments))
	for i, seg := range c.segments {
		out[i] = slices.Clone(seg)
	}
	return out
}

// Port looks up a named port.
func (c *Curve) Port(name string) (Pose, error) {
	return c.ports.Get(name)
}

// SetPort attaches or reassigns a named port.
func (c *Curve) SetPort(name string, p Pose) *Curve {
	if c.ports == nil {
		c.ports = Ports{}
	}
	c.ports[name] = p
	return c
}

// Ports returns a copy of the curve's port mapping.
func (c *Curve) Ports() Ports {
	return c.ports.clone()
}

// Bounds returns the curve's bounding box.
func (c *Curve) Bounds() Rect {
	r, _ := boundsOf(c.segments)
	return r
}

// ArcLength returns the total polyline length over all segments.
func (c *Curve) ArcLength() float64 {
	var l float64
	for _, seg := range c.segments {
		l += polylineLength(seg)
	}
	return l
}

// Transform maps every point and every port through aff, in place, and
// returns c.
func (c *Curve) Transform(aff Affine) *Curve {
	for _, seg := range c.segments {
		for i, pt := range seg {
			seg[i] = pt.Transform(aff)
		}
	}
	c.ports.transform(aff)
	return c
}

// Translate moves the curve by (dx, dy).
func (c *Curve) Translate(dx, dy float64) *Curve {
	return c.Transform(TranslateAffine(Vec(dx, dy)))
}

// Rotate rotates the curve by th radians about the origin.
func (c *Curve) Rotate(th float64) *Curve {
	return c.Transform(RotateAffine(th))
}

// RotateAbout rotates the curve by th radians about center.
func (c *Curve) RotateAbout(th float64, center Point) *Curve {
	return c.Transform(RotateAboutAffine(th, center))
}

// Scale scales the curve about the origin, non-uniformly if x != y.
func (c *Curve) Scale(x, y float64) *Curve {
	return c.Transform(ScaleAffine(x, y))
}

// Skew skews the curve with horizontal and vertical skew factors.
func (c *Curve) Skew(x, y float64) *Curve {
	return c.Transform(SkewAffine(x, y))
}

// To rigid-transforms the curve so that the named port mates with the
// target pose: positions coincide and headings become antiparallel. An
// empty name uses [MatingOrigin] as the source pose.
func (c *Curve) To(target Pose, from string) (*Curve, error) {
	src := MatingOrigin
	if from != "" {
		var err error
		src, err = c.ports.Get(from)
		if err != nil {
			return nil, err
		}
	}
	return c.Transform(mate(target, src)), nil
}

// Reverse reverses the point order within every segment and the segment
// order, in place. The entry and exit ports swap roles and their headings
// rotate by π, so the reversed curve still links head-to-head.
func (c *Curve) Reverse() *Curve {
	for _, seg := range c.segments {
		slices.Reverse(seg)
	}
	slices.Reverse(c.segments)
	entry, hasEntry := c.ports[PortEntry]
	exit, hasExit := c.ports[PortExit]
	delete(c.ports, PortEntry)
	delete(c.ports, PortExit)
	if hasExit {
		c.ports[PortEntry] = exit.Reversed()
	}
	if hasEntry {
		c.ports[PortExit] = entry.Reversed()
	}
	return c
}

// Interpolated returns a resampling of the curve with n points at
// near-uniform arc-length spacing, treating the segments as one contiguous
// chain. If n < 2, the current total sample count is kept.
//
// Uneven segment densities (say, a short straight run between two arcs)
// make per-sample-index width profiles physically uneven; interpolating
// first makes the profile track arc length instead.
func (c *Curve) Interpolated(n int) *Curve {
	chain := c.contiguous()
	if n < 2 {
		n = 0
		for _, seg := range c.segments {
			n += len(seg)
		}
	}
	if len(chain) < 2 || n < 2 {
		return c.Copy()
	}

	cum := make([]float64, len(chain))
	for i := 1; i < len(chain); i++ {
		cum[i] = cum[i-1] + chain[i].Distance(chain[i-1])
	}
	total := cum[len(cum)-1]

	out := make([]Point, n)
	out[0] = chain[0]
	j := 1
	for i := 1; i < n-1; i++ {
		s := total * float64(i) / float64(n-1)
		for j < len(cum)-1 && cum[j] < s {
			j++
		}
		t := (s - cum[j-1]) / (cum[j] - cum[j-1])
		out[i] = chain[j-1].Lerp(chain[j], t)
	}
	out[n-1] = chain[len(chain)-1]
	return &Curve{segments: [][]Point{out}, ports: c.ports.clone()}
}

// contiguous concatenates the segments into one chain, dropping duplicated
// junction points.
func (c *Curve) contiguous() []Point {
	var chain []Point
	for _, seg := range c.segments {
		for _, pt := range seg {
			if len(chain) > 0 && pt.Distance(chain[len(chain)-1]) <= epsilon {
				continue
			}
			chain = append(chain, pt)
		}
	}
	return chain
}

// Symmetrized returns the curve extended by its own mirror image about the
// line perpendicular to its terminal tangent at its last point. The result
// proceeds outward and returns, doubling the sample count; the mirrored
// half starts with the original's terminal tangent, so curvature is
// continuous at the mirror point. Used to build closed ring-like structures
// from half-designs.
func (c *Curve) Symmetrized() *Curve {
	chain := c.contiguous()
	if len(chain) < 2 {
		return c.Copy()
	}
	last := chain[len(chain)-1]
	tangent := last.Sub(chain[len(chain)-2])
	aff := Reflect(last, tangent.Turn90())

	out := c.Copy()
	mirror := make([]Point, 0, len(chain)-1)
	for i := len(chain) - 2; i >= 0; i-- {
		mirror = append(mirror, chain[i].Transform(aff))
	}
	out.segments = append(out.segments, append([]Point{last}, mirror...))

	if entry, ok := c.ports[PortEntry]; ok {
		out.ports[PortExit] = entry.Transform(aff)
	}
	return out
}

