// Package planar is a parametric-curve and polygon-composition kernel for
// planar device layouts, such as photonic circuits and metal routing.
//
// Shapes are built from piecewise parametric curves, carry named reference
// poses ("ports"), and compose while their ports move consistently with the
// geometry.
//
// # Curves and patterns
//
// A [Curve] is an ordered sequence of open sampled point chains produced by
// the generators ([Straight], [Turn], [Taper], [ArcCentered], [BezierSBend],
// [TurnSBend]). Applying a width profile ([WidthFn]) to a curve with
// [Curve.Path] or [Curve.PathWidth] yields a [Pattern]: an ordered sequence
// of closed polygon boundaries. Patterns combine with boolean set operations
// ([Union], [Difference], [Intersect], [Xor]), align relative to each other
// ([Pattern.Align], [Pattern.HAlign], [Pattern.VAlign]), and mate
// port-to-port ([Pattern.To], [Link], [LinkPatterns]).
//
// # Poses and ports
//
// A [Pose] is an (x, y, angle) rigid frame plus a scalar width. Ports are
// named poses attached to curves and patterns; every transform acts
// identically on geometry and ports. Two ports mate when their positions
// coincide and their headings are antiparallel, matching physical connector
// semantics.
//
// All angles are expressed in radians.
//
// # Mutation contract
//
// Transform methods mutate the receiver in place and return it, so calls
// chain. Callers that need an independent shape must call Copy first; after
// a copy, mutating one shape never affects the other. Composition functions
// (Link, To, Align) copy their inputs internally and never mutate caller
// operands.
//
// Curve and Pattern values are not safe for concurrent mutation from
// multiple goroutines; concurrent use requires each goroutine to work on
// its own copy.
//
// # Collaborator boundaries
//
// Boolean set operations are delegated to polyclip-go. Mesh extrusion,
// plotting, and layout exchange are external consumers: the kernel exposes
// [Device.Extrusions] (per-layer boundary and height-range triples),
// [Snapshot] (a read-only view for renderers), and [Cell] (a hierarchical,
// reference-based layout export with a YAML codec).
package planar
