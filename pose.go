package planar

import (
	"fmt"
	"math"
	"slices"
)

// Pose is a rigid reference frame in the plane: a position, a heading angle
// in radians, and a scalar width.
//
// The width records the local curve or waveguide width at the reference
// point. Downstream consumers use it for mode matching; the kernel carries
// it but doesn't enforce it.
//
// Pose is an immutable value type. Equality is exact numeric comparison;
// tests compare with a tolerance.
type Pose struct {
	X     float64
	Y     float64
	Angle float64
	Width float64
}

// PoseAt returns the pose at pt with the given heading and width.
func PoseAt(pt Point, angle, width float64) Pose {
	return Pose{X: pt.X, Y: pt.Y, Angle: angle, Width: width}
}

// MatingOrigin is the implicit source pose used when a mating operation is
// given no source port: the origin, heading π. Mating it onto a target pose
// places the shape's local origin on the target, facing along the target's
// heading.
var MatingOrigin = Pose{Angle: math.Pi}

// Names of the ports that generators attach and that Link requires.
const (
	PortEntry = "entry"
	PortExit  = "exit"
)

func (p Pose) String() string {
	return fmt.Sprintf("(%g, %g; %g rad; w=%g)", p.X, p.Y, p.Angle, p.Width)
}

// Point returns the pose's position.
func (p Pose) Point() Point {
	return Point{p.X, p.Y}
}

// Heading returns the unit vector along the pose's angle.
func (p Pose) Heading() Vec2 {
	return FromAngle(p.Angle)
}

// Normal returns the unit vector perpendicular to the pose's heading,
// pointing to its left.
func (p Pose) Normal() Vec2 {
	return p.Heading().Turn90()
}

// Reversed returns the pose turned around in place: same position and
// width, heading rotated by π.
func (p Pose) Reversed() Pose {
	p.Angle = normalizeAngle(p.Angle + math.Pi)
	return p
}

func (p Pose) Translate(v Vec2) Pose {
	p.X += v.X
	p.Y += v.Y
	return p
}

// Transform maps the pose through an affine transform. The position maps as
// a point, the angle follows the image of the heading vector, and the width
// scales by the length of the image of the unit normal, which is how a
// cross-section perpendicular to the heading stretches.
func (p Pose) Transform(aff Affine) Pose {
	pt := p.Point().Transform(aff)
	heading := aff.TransformVec(p.Heading())
	normal := aff.TransformVec(p.Normal())
	return Pose{
		X:     pt.X,
		Y:     pt.Y,
		Angle: heading.Angle(),
		Width: p.Width * normal.Hypot(),
	}
}

// mate returns the rigid transform that maps the moving pose onto the fixed
// pose with antiparallel headings: positions coincide and moving's heading
// becomes fixed's heading rotated by π. This is the shared convention for
// To and Link.
func mate(fixed, moving Pose) Affine {
	th := fixed.Angle + math.Pi - moving.Angle
	return TranslateAffine(Vec2(fixed.Point())).
		Mul(RotateAffine(th)).
		Mul(TranslateAffine(Vec2(moving.Point()).Negate()))
}

func normalizeAngle(th float64) float64 {
	th = math.Mod(th, 2*math.Pi)
	if th <= -math.Pi {
		th += 2 * math.Pi
	} else if th > math.Pi {
		th -= 2 * math.Pi
	}
	return th
}

// Ports maps names to poses. Names are unique within one shape; insertion
// order is irrelevant.
type Ports map[string]Pose

// Get looks up a port by name, returning a PortNotFoundError if the shape
// doesn't carry it.
func (ps Ports) Get(name string) (Pose, error) {
	p, ok := ps[name]
	if !ok {
		return Pose{}, &PortNotFoundError{Name: name}
	}
	return p, nil
}

// Names returns the port names in sorted order.
func (ps Ports) Names() []string {
	names := make([]string, 0, len(ps))
	for name := range ps {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (ps Ports) clone() Ports {
	if ps == nil {
		return nil
	}
	out := make(Ports, len(ps))
	for name, p := range ps {
		out[name] = p
	}
	return out
}

func (ps Ports) transform(aff Affine) {
	for name, p := range ps {
		ps[name] = p.Transform(aff)
	}
}
