package planar

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLinkContinuity(t *testing.T) {
	a := mustCurve(t)(Turn(3, math.Pi/3, 0, 30))
	b := mustCurve(t)(Turn(5, -math.Pi/4, 0.2, 30))

	linked := mustCurve(t)(Link(a, b))
	if linked.NumSegments() != 2 {
		t.Fatalf("got %d segments, want 2", linked.NumSegments())
	}

	// The second element's exit, carried through the mating transform,
	// is the linked exit.
	aExit := mustPort(t)(a.Port(PortExit))
	bEntry := mustPort(t)(b.Port(PortEntry))
	want := mustPort(t)(b.Port(PortExit)).Transform(mate(aExit, bEntry))
	got := mustPort(t)(linked.Port(PortExit))
	diff(t, want.Point(), got.Point(), cmpopts.EquateApprox(0, 1e-12))
	diff(t, 0.0, normalizeAngle(want.Angle-got.Angle), cmpopts.EquateApprox(0, 1e-12))

	// Entry of the whole chain is the first element's entry.
	diff(t, mustPort(t)(a.Port(PortEntry)), mustPort(t)(linked.Port(PortEntry)))

	// Segment junctions coincide.
	pts := linked.Points()
	diff(t, pts[0][len(pts[0])-1], pts[1][0], cmpopts.EquateApprox(0, 1e-12))
}

func TestLinkScalarSpacing(t *testing.T) {
	up := mustCurve(t)(Turn(2, math.Pi/2, 0, 20))
	down := mustCurve(t)(Turn(2, -math.Pi/2, 0, 20))

	linked := mustCurve(t)(Link(up, 3.0, down))
	if linked.NumSegments() != 3 {
		t.Fatalf("got %d segments, want 3", linked.NumSegments())
	}
	exit := mustPort(t)(linked.Port(PortExit))
	// Quarter turn up, 3 units straight up, quarter turn back to level.
	diff(t, Pt(4, 7), exit.Point(), cmpopts.EquateApprox(0, 1e-9))
	diff(t, 0.0, exit.Angle, cmpopts.EquateApprox(0, 1e-12))
}

func TestLinkIntSpacing(t *testing.T) {
	linked := mustCurve(t)(Link(mustCurve(t)(Straight(1)), 2, mustCurve(t)(Straight(1))))
	diff(t, 4.0, mustPort(t)(linked.Port(PortExit)).X, cmpopts.EquateApprox(0, 1e-12))
}

func TestLinkOperandsUntouched(t *testing.T) {
	a := mustCurve(t)(Straight(1))
	b := mustCurve(t)(Turn(1, math.Pi/2, 0, 10))
	if _, err := Link(a, b); err != nil {
		t.Fatal(err)
	}
	diff(t, Pose{Angle: math.Pi}, mustPort(t)(a.Port(PortEntry)))
	diff(t, Pt(0, 0), b.Points()[0][0], cmpopts.EquateApprox(0, 1e-12))
}

func TestLinkErrors(t *testing.T) {
	straight := func() *Curve { return mustCurve(t)(Straight(1)) }

	var linkErr *LinkError
	if _, err := Link(); !errors.As(err, &linkErr) {
		t.Errorf("got %v for an empty chain, want a LinkError", err)
	}
	if _, err := Link(straight(), -2.0, straight()); !errors.As(err, &linkErr) {
		t.Errorf("got %v for a negative spacing, want a LinkError", err)
	}
	if _, err := Link(straight(), "bend", straight()); !errors.As(err, &linkErr) {
		t.Errorf("got %v for an unsupported element, want a LinkError", err)
	}

	noPorts := mustCurve(t)(NewCurve([]Point{Pt(0, 0), Pt(1, 0)}))
	if _, err := Link(straight(), noPorts); !errors.As(err, &linkErr) {
		t.Errorf("got %v for a portless element, want a LinkError", err)
	}
}

func TestLinkPatterns(t *testing.T) {
	up := mustPattern(t)(mustCurve(t)(Turn(2, math.Pi/2, 0, 20)).Path(0.6))
	down := mustPattern(t)(mustCurve(t)(Turn(2, -math.Pi/2, 0, 20)).Path(0.6))

	linked, err := LinkPatterns(up, 3.0, down)
	if err != nil {
		t.Fatal(err)
	}
	if linked.NumBoundaries() != 3 {
		t.Fatalf("got %d boundaries, want 3", linked.NumBoundaries())
	}

	exit := mustPort(t)(linked.Port(PortExit))
	diff(t, Pt(4, 7), exit.Point(), cmpopts.EquateApprox(0, 1e-9))
	// The spacer inherits the upstream port width.
	diff(t, 0.6, exit.Width, cmpopts.EquateApprox(0, 1e-12))
}

func TestLinkPatternsCurveElement(t *testing.T) {
	up := mustPattern(t)(mustCurve(t)(Turn(2, math.Pi/2, 0, 20)).Path(0.6))
	bend := mustCurve(t)(Turn(2, -math.Pi/2, 0, 20))

	linked, err := LinkPatterns(up, bend)
	if err != nil {
		t.Fatal(err)
	}
	if linked.NumBoundaries() != 2 {
		t.Fatalf("got %d boundaries, want 2", linked.NumBoundaries())
	}
	// The curve is swept at the accumulated exit width.
	exit := mustPort(t)(linked.Port(PortExit))
	diff(t, 0.6, exit.Width, cmpopts.EquateApprox(0, 1e-12))
	diff(t, Pt(4, 4), exit.Point(), cmpopts.EquateApprox(0, 1e-9))

	// A leading curve has no width context to inherit.
	var linkErr *LinkError
	if _, err := LinkPatterns(bend, up); !errors.As(err, &linkErr) {
		t.Errorf("got %v for a leading curve element, want a LinkError", err)
	}
}

func TestLinkPatternsZeroWidth(t *testing.T) {
	a := mustPattern(t)(Rectangle(2, 2)).SetPort(PortExit, PoseAt(Pt(1, 0), 0, 0))
	b := mustPattern(t)(Rectangle(2, 2)).SetPort(PortEntry, PoseAt(Pt(-1, 0), math.Pi, 0))

	var linkErr *LinkError
	if _, err := LinkPatterns(a, 1.0, b); !errors.As(err, &linkErr) {
		t.Errorf("got %v for a zero-width spacer, want a LinkError", err)
	}
}
