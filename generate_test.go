package planar

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestStraight(t *testing.T) {
	c := mustCurve(t)(Straight(3))
	diff(t, [][]Point{{Pt(0, 0), Pt(3, 0)}}, c.Points())
	diff(t, Pose{Angle: math.Pi}, mustPort(t)(c.Port(PortEntry)))
	diff(t, Pose{X: 3}, mustPort(t)(c.Port(PortExit)))
}

func TestStraightInvalid(t *testing.T) {
	for _, length := range []float64{0, -2} {
		_, err := Straight(length)
		var geomErr *InvalidGeometryError
		if !errors.As(err, &geomErr) {
			t.Errorf("Straight(%g): got %v, want an InvalidGeometryError", length, err)
		}
	}
}

func TestTurnCircular(t *testing.T) {
	c := mustCurve(t)(Turn(2, math.Pi/2, 0, 5))
	want := [][]Point{{
		Pt(0, 0),
		Pt(2*math.Sin(math.Pi/8), 2*(1-math.Cos(math.Pi/8))),
		Pt(2*math.Sin(math.Pi/4), 2*(1-math.Cos(math.Pi/4))),
		Pt(2*math.Sin(3*math.Pi/8), 2*(1-math.Cos(3*math.Pi/8))),
		Pt(2, 2),
	}}
	diff(t, want, c.Points(), cmpopts.EquateApprox(0, 1e-12))

	exit := mustPort(t)(c.Port(PortExit))
	diff(t, PoseAt(Pt(2, 2), math.Pi/2, 0), exit, cmpopts.EquateApprox(0, 1e-12))
}

func TestTurnNegativeAngle(t *testing.T) {
	c := mustCurve(t)(Turn(2, -math.Pi/2, 0, 33))
	exit := mustPort(t)(c.Port(PortExit))
	diff(t, PoseAt(Pt(2, -2), -math.Pi/2, 0), exit, cmpopts.EquateApprox(0, 1e-12))
}

func TestTurnInvalid(t *testing.T) {
	f := func(radius, angle, euler float64) {
		t.Helper()
		_, err := Turn(radius, angle, euler, 10)
		var geomErr *InvalidGeometryError
		if !errors.As(err, &geomErr) {
			t.Errorf("Turn(%g, %g, %g): got %v, want an InvalidGeometryError", radius, angle, euler, err)
		}
	}
	f(0, math.Pi/2, 0)
	f(-1, math.Pi/2, 0)
	f(2, 0, 0)
	f(2, math.Pi/2, -0.1)
	f(2, math.Pi/2, 0.6)
}

func TestTurnEulerDisplacement(t *testing.T) {
	// Raising the euler fraction lengthens the path but must not move the
	// endpoints: the chord stays that of the circular turn.
	chord := Pt(math.Sin(math.Pi/2), 1-math.Cos(math.Pi/2)).Distance(Pt(0, 0))
	prevLen := 0.0
	for _, e := range []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5} {
		c := mustCurve(t)(Turn(1, math.Pi/2, e, 500))
		pts := c.Points()[0]
		gotChord := pts[len(pts)-1].Distance(pts[0])
		if math.Abs(gotChord-chord) > 1e-9 {
			t.Errorf("e=%g: got chord %g, want %g", e, gotChord, chord)
		}

		b := c.Bounds()
		if math.Abs(b.Width()-1) > 0.01 || math.Abs(b.Height()-1) > 0.01 {
			t.Errorf("e=%g: got bounding box %gx%g, want within 1%% of 1x1", e, b.Width(), b.Height())
		}

		l := c.ArcLength()
		if l <= prevLen {
			t.Errorf("e=%g: got arc length %g, want more than %g", e, l, prevLen)
		}
		prevLen = l
	}
}

func TestTurnEulerFullCircle(t *testing.T) {
	// A full turn has a vanishing chord, so the path is rescaled to the
	// circular arc length rather than collapsed onto the origin.
	c := mustCurve(t)(Turn(5, 2*math.Pi, 0.2, 200))
	if got, want := c.ArcLength(), 2*math.Pi*5; math.Abs(got-want) > want*1e-3 {
		t.Errorf("got arc length %g, want %g", got, want)
	}
	b := c.Bounds()
	if b.Width() < 5 || b.Height() < 5 {
		t.Errorf("got bounding box %gx%g, want a full loop", b.Width(), b.Height())
	}
}

func TestTurnEulerExitHeading(t *testing.T) {
	c := mustCurve(t)(Turn(5, math.Pi/2, 0.3, 500))
	pts := c.Points()[0]
	tangent := pts[len(pts)-1].Sub(pts[len(pts)-2]).Angle()
	if math.Abs(normalizeAngle(tangent-math.Pi/2)) > 0.01 {
		t.Errorf("got terminal tangent %g, want %g", tangent, math.Pi/2)
	}
}

func TestArcCentered(t *testing.T) {
	c := mustCurve(t)(ArcCentered(math.Pi, 3, 7))
	pts := c.Points()[0]
	diff(t, Pt(3, 0), pts[0], cmpopts.EquateApprox(0, 1e-12))
	diff(t, Pt(-3, 0), pts[len(pts)-1], cmpopts.EquateApprox(0, 1e-12))
	for _, pt := range pts {
		if d := pt.Distance(Pt(0, 0)); math.Abs(d-3) > 1e-12 {
			t.Errorf("sample %v is %g from the center, want 3", pt, d)
		}
	}
	exit := mustPort(t)(c.Port(PortExit))
	diff(t, PoseAt(Pt(-3, 0), normalizeAngle(3*math.Pi/2), 0), exit, cmpopts.EquateApprox(0, 1e-12))
}

func TestBezierSBend(t *testing.T) {
	c := mustCurve(t)(BezierSBend(10, 4, 100))
	pts := c.Points()[0]
	diff(t, Pt(0, 0), pts[0])
	diff(t, Pt(10, 4), pts[len(pts)-1], cmpopts.EquateApprox(0, 1e-12))

	// Horizontal tangents at both ends.
	if th := pts[1].Sub(pts[0]).Angle(); math.Abs(th) > 0.05 {
		t.Errorf("got initial tangent %g, want 0", th)
	}
	if th := pts[len(pts)-1].Sub(pts[len(pts)-2]).Angle(); math.Abs(th) > 0.05 {
		t.Errorf("got terminal tangent %g, want 0", th)
	}
}

func TestBezierSBendDegenerate(t *testing.T) {
	// A zero bend is an exact 2-point line.
	c := mustCurve(t)(BezierSBend(10, 0, 100))
	diff(t, [][]Point{{Pt(0, 0), Pt(10, 0)}}, c.Points())
}

func TestTurnSBendAnalytic(t *testing.T) {
	// radius == height: reachable with two turns of acos(1/2) = 60° and no
	// straight run.
	c := mustCurve(t)(TurnSBend(5, 5, 0, 50))
	if got := c.NumSegments(); got != 2 {
		t.Fatalf("got %d segments, want 2 turns and no straight run", got)
	}
	exit := mustPort(t)(c.Port(PortExit))
	if math.Abs(exit.Y-5) > 1e-9 {
		t.Errorf("got net vertical displacement %g, want 5", exit.Y)
	}
	if exit.X <= 0 {
		t.Errorf("got net horizontal displacement %g, want positive", exit.X)
	}
	if math.Abs(normalizeAngle(exit.Angle)) > 1e-9 {
		t.Errorf("got exit heading %g, want 0", exit.Angle)
	}
}

func TestTurnSBendFallback(t *testing.T) {
	// The turns alone top out at 2·radius of height; the rest comes from a
	// straight run between two 90° turns.
	c := mustCurve(t)(TurnSBend(2, 10, 0, 50))
	if got := c.NumSegments(); got != 3 {
		t.Fatalf("got %d segments, want 2 turns and a straight run", got)
	}
	exit := mustPort(t)(c.Port(PortExit))
	if math.Abs(exit.Y-10) > 1e-9 {
		t.Errorf("got net vertical displacement %g, want 10", exit.Y)
	}
}

func TestTurnSBendDown(t *testing.T) {
	c := mustCurve(t)(TurnSBend(5, -5, 0, 50))
	exit := mustPort(t)(c.Port(PortExit))
	if math.Abs(exit.Y+5) > 1e-9 {
		t.Errorf("got net vertical displacement %g, want -5", exit.Y)
	}
}
