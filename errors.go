package planar

import "fmt"

// InvalidGeometryError reports generator parameters that would produce a
// degenerate result, such as a non-positive length or radius, or a width
// profile that dips to zero.
type InvalidGeometryError struct {
	// Op is the operation that rejected its parameters, e.g. "Turn".
	Op     string
	Reason string
}

func (e *InvalidGeometryError) Error() string {
	return fmt.Sprintf("planar: %s: invalid geometry: %s", e.Op, e.Reason)
}

// PortNotFoundError reports a lookup of a port name that a shape doesn't
// carry.
type PortNotFoundError struct {
	Name string
}

func (e *PortNotFoundError) Error() string {
	return fmt.Sprintf("planar: no port named %q", e.Name)
}

// LinkError reports an element that cannot take part in a link chain: it
// lacks the required entry or exit port, is of an unsupported type, or is a
// negative spacing.
type LinkError struct {
	// Index is the position of the offending element in the link sequence.
	Index  int
	Reason string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("planar: link element %d: %s", e.Index, e.Reason)
}

// DimensionMismatchError reports an operation over shapes whose coordinate
// dimensionality disagrees. All kernel geometry is 2D today; the type is
// reserved for future boundary representations.
type DimensionMismatchError struct {
	Want, Got int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("planar: dimension mismatch: want %dD, got %dD", e.Want, e.Got)
}
