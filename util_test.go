package planar

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Errorf("unexpected result (-want +got):\n%s", d)
	}
}

// The must helpers return checkers so they can wrap a multi-valued call
// directly: mustCurve(t)(Straight(3)).

func mustCurve(t *testing.T) func(*Curve, error) *Curve {
	return func(c *Curve, err error) *Curve {
		t.Helper()
		if err != nil {
			t.Fatalf("got error %v, want none", err)
		}
		return c
	}
}

func mustPattern(t *testing.T) func(*Pattern, error) *Pattern {
	return func(p *Pattern, err error) *Pattern {
		t.Helper()
		if err != nil {
			t.Fatalf("got error %v, want none", err)
		}
		return p
	}
}

func mustPort(t *testing.T) func(Pose, error) Pose {
	return func(p Pose, err error) Pose {
		t.Helper()
		if err != nil {
			t.Fatalf("got error %v, want none", err)
		}
		return p
	}
}
