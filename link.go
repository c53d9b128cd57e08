package planar

import "fmt"

// Link composes curves end to end. Each element is a *Curve or a plain
// spacing (float64 or int, meaning a straight run of that length). Every
// element is copied, rigid-transformed so its entry port mates with the
// accumulated exit port, and appended; the accumulated exit becomes its
// exit port.
//
// The result carries exactly the first element's entry port and the last
// element's exit port; internal ports are discarded. Elements lacking the
// required ports, negative spacings, and unsupported types fail with a
// LinkError. Caller operands are never mutated.
func Link(elems ...any) (*Curve, error) {
	if len(elems) == 0 {
		return nil, &LinkError{Index: 0, Reason: "empty link sequence"}
	}

	var acc *Curve
	var exit Pose
	for i, elem := range elems {
		c, err := linkCurve(i, elem)
		if err != nil {
			return nil, err
		}
		entry, err := c.Port(PortEntry)
		if err != nil {
			return nil, &LinkError{Index: i, Reason: "missing entry port"}
		}
		next, err := c.Port(PortExit)
		if err != nil {
			return nil, &LinkError{Index: i, Reason: "missing exit port"}
		}

		if acc == nil {
			acc = c
			exit = next
			continue
		}
		aff := mate(exit, entry)
		c.Transform(aff)
		acc.segments = append(acc.segments, c.segments...)
		exit = next.Transform(aff)
	}

	entry := acc.ports[PortEntry]
	acc.ports = Ports{PortEntry: entry, PortExit: exit}
	return acc, nil
}

func linkCurve(i int, elem any) (*Curve, error) {
	switch v := elem.(type) {
	case *Curve:
		return v.Copy(), nil
	case float64:
		if v < 0 {
			return nil, &LinkError{Index: i, Reason: "negative spacing"}
		}
		c, err := Straight(v)
		if err != nil {
			return nil, &LinkError{Index: i, Reason: "zero-length spacing"}
		}
		return c, nil
	case int:
		return linkCurve(i, float64(v))
	default:
		return nil, &LinkError{Index: i, Reason: fmt.Sprintf("unsupported element type %T", elem)}
	}
}

// LinkPatterns composes patterns end to end with the same walk as [Link].
// A plain spacing becomes a straight path at the width recorded on the
// accumulated exit port, so the chain's cross-section stays continuous
// through the gap. A *Curve element is likewise swept at that width, so
// mixed curve and pattern chains need no manual conversion.
func LinkPatterns(elems ...any) (*Pattern, error) {
	if len(elems) == 0 {
		return nil, &LinkError{Index: 0, Reason: "empty link sequence"}
	}

	var acc *Pattern
	var exit Pose
	for i, elem := range elems {
		p, err := linkPattern(i, elem, exit)
		if err != nil {
			return nil, err
		}
		entry, err := p.Port(PortEntry)
		if err != nil {
			return nil, &LinkError{Index: i, Reason: "missing entry port"}
		}
		next, err := p.Port(PortExit)
		if err != nil {
			return nil, &LinkError{Index: i, Reason: "missing exit port"}
		}

		if acc == nil {
			acc = p
			exit = next
			continue
		}
		aff := mate(exit, entry)
		p.Transform(aff)
		acc.boundaries = append(acc.boundaries, p.boundaries...)
		exit = next.Transform(aff)
	}

	entry := acc.ports[PortEntry]
	acc.ports = Ports{PortEntry: entry, PortExit: exit}
	return acc, nil
}

func linkPattern(i int, elem any, exit Pose) (*Pattern, error) {
	switch v := elem.(type) {
	case *Pattern:
		return v.Copy(), nil
	case *Curve:
		if exit.Width <= 0 {
			return nil, &LinkError{Index: i, Reason: "curve element requires a positive exit port width"}
		}
		return v.Path(exit.Width)
	case float64:
		if v < 0 {
			return nil, &LinkError{Index: i, Reason: "negative spacing"}
		}
		if exit.Width <= 0 {
			return nil, &LinkError{Index: i, Reason: "spacing requires a positive exit port width"}
		}
		c, err := Straight(v)
		if err != nil {
			return nil, &LinkError{Index: i, Reason: "zero-length spacing"}
		}
		return c.Path(exit.Width)
	case int:
		return linkPattern(i, float64(v), exit)
	default:
		return nil, &LinkError{Index: i, Reason: fmt.Sprintf("unsupported element type %T", elem)}
	}
}
