package planar

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Snapshot is a read-only view of a shape for rendering consumers:
// boundary or segment point chains plus port poses. It shares no data with
// the shape it was taken from.
type Snapshot struct {
	// Chains holds polygon boundaries (for patterns) or open polylines
	// (for curves).
	Chains [][]Point
	Closed bool
	Ports  Ports
}

// Snapshot takes a rendering snapshot of the pattern.
func (p *Pattern) Snapshot() Snapshot {
	return Snapshot{Chains: p.Boundaries(), Closed: true, Ports: p.Ports()}
}

// Snapshot takes a rendering snapshot of the curve.
func (c *Curve) Snapshot() Snapshot {
	return Snapshot{Chains: c.Points(), Closed: false, Ports: c.Ports()}
}

// SVGOptions specifies optional settings for [Snapshot.SVG] and
// [Snapshot.WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent
	// any given coordinate.
	MaxPrecision int
}

// SVG renders the snapshot's chains as SVG path commands and its ports as
// short direction markers, returning the markup as a string.
//
// See [Snapshot.WriteSVG] for a version that writes to an [io.Writer].
func (s Snapshot) SVG(opts SVGOptions) string {
	sb := &strings.Builder{}
	s.WriteSVG(sb, opts)
	return sb.String()
}

// WriteSVG renders the snapshot's chains as SVG path commands and its
// ports as short direction markers, writing the markup to w.
func (s Snapshot) WriteSVG(w io.Writer, opts SVGOptions) error {
	var err error
	writef := func(format string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, format, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		fs := strconv.FormatFloat(n, 'f', maxPrec, 64)
		fs = strings.TrimRight(fs, "0")
		return strings.TrimRight(fs, ".")
	}

	writef(`<path d="`)
	for i, chain := range s.Chains {
		if len(chain) == 0 {
			continue
		}
		if i > 0 {
			writef(" ")
		}
		writef("M%s,%s", format(chain[0].X), format(chain[0].Y))
		for _, pt := range chain[1:] {
			writef(" L%s,%s", format(pt.X), format(pt.Y))
		}
		if s.Closed {
			writef(" Z")
		}
	}
	writef("\"/>\n")

	for _, name := range s.Ports.Names() {
		p := s.Ports[name]
		tip := p.Point().Translate(p.Heading().Mul(max(p.Width, 1) / 2))
		writef(`<line class="port" data-name=%q x1="%s" y1="%s" x2="%s" y2="%s"/>`,
			name,
			format(p.X), format(p.Y),
			format(tip.X), format(tip.Y))
		writef("\n")
	}
	return err
}
