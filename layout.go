package planar

import (
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"
)

// Device maps patterns onto named process layers. It is the unit handed to
// mesh and layout-exchange consumers: one waveguide layer, its metal
// routing, vias, and so on, moved and rotated as a whole with all ports
// staying consistent.
type Device struct {
	elements []layerPattern
	ports    Ports
}

type layerPattern struct {
	pattern *Pattern
	layer   string
}

// NewDevice returns an empty device.
func NewDevice() *Device {
	return &Device{ports: Ports{}}
}

// Add copies the pattern into the device on the given layer and merges its
// ports into the device's port mapping. Later mutation of the argument
// never affects the device.
func (d *Device) Add(p *Pattern, layer string) *Device {
	cp := p.Copy()
	d.elements = append(d.elements, layerPattern{pattern: cp, layer: layer})
	for name, pose := range cp.ports {
		d.ports[name] = pose
	}
	return d
}

// Layers returns the distinct layer names in sorted order.
func (d *Device) Layers() []string {
	var layers []string
	for _, el := range d.elements {
		if !slices.Contains(layers, el.layer) {
			layers = append(layers, el.layer)
		}
	}
	slices.Sort(layers)
	return layers
}

// LayerBoundaries returns deep copies of all boundaries on the named
// layer.
func (d *Device) LayerBoundaries(layer string) [][]Point {
	var out [][]Point
	for _, el := range d.elements {
		if el.layer == layer {
			out = append(out, el.pattern.Boundaries()...)
		}
	}
	return out
}

// Port looks up a named port.
func (d *Device) Port(name string) (Pose, error) {
	return d.ports.Get(name)
}

// SetPort attaches or reassigns a named port.
func (d *Device) SetPort(name string, pose Pose) *Device {
	d.ports[name] = pose
	return d
}

// Ports returns a copy of the device's port mapping.
func (d *Device) Ports() Ports {
	return d.ports.clone()
}

// Bounds returns the bounding box over all layers.
func (d *Device) Bounds() Rect {
	var r Rect
	first := true
	for _, el := range d.elements {
		if first {
			r = el.pattern.Bounds()
			first = false
		} else {
			r = r.Union(el.pattern.Bounds())
		}
	}
	return r
}

// Center returns the center of the device's bounding box.
func (d *Device) Center() Point {
	return d.Bounds().Center()
}

// Transform maps every member pattern and every port through aff.
func (d *Device) Transform(aff Affine) *Device {
	for _, el := range d.elements {
		el.pattern.Transform(aff)
	}
	d.ports.transform(aff)
	return d
}

// Translate moves the device by (dx, dy).
func (d *Device) Translate(dx, dy float64) *Device {
	return d.Transform(TranslateAffine(Vec(dx, dy)))
}

// Rotate rotates the device by th radians about the origin.
func (d *Device) Rotate(th float64) *Device {
	return d.Transform(RotateAffine(th))
}

// AlignTo translates the device so its bounding-box center lands on pt.
func (d *Device) AlignTo(pt Point) *Device {
	v := pt.Sub(d.Center())
	return d.Translate(v.X, v.Y)
}

// Copy deep-copies the device.
func (d *Device) Copy() *Device {
	out := NewDevice()
	for _, el := range d.elements {
		out.elements = append(out.elements, layerPattern{pattern: el.pattern.Copy(), layer: el.layer})
	}
	out.ports = d.ports.clone()
	return out
}

// Extrusion is one solid for the mesh collaborator: a closed boundary and
// the height range it occupies.
type Extrusion struct {
	Boundary []Point
	Layer    string
	ZMin     float64
	ZMax     float64
}

// Extrusions emits one extrusion per boundary, in process-step order, using
// the foundry's height ranges. Layers the foundry doesn't know fail rather
// than silently vanish.
func (d *Device) Extrusions(f *Foundry) ([]Extrusion, error) {
	var out []Extrusion
	for _, step := range f.Steps {
		for _, el := range d.elements {
			if el.layer != step.Layer {
				continue
			}
			zmin, zmax, _ := f.ZRange(step.Layer)
			for _, b := range el.pattern.Boundaries() {
				out = append(out, Extrusion{Boundary: b, Layer: el.layer, ZMin: zmin, ZMax: zmax})
			}
		}
	}
	for _, layer := range d.Layers() {
		if _, _, ok := f.ZRange(layer); !ok {
			return nil, fmt.Errorf("planar: no z-range for layer %q", layer)
		}
	}
	return out, nil
}

// LayerShape is a closed boundary on a named layer inside a cell.
type LayerShape struct {
	Boundary []Point
	Layer    string
}

// Placement positions a child cell inside its parent.
type Placement struct {
	Cell *Cell
	At   Pose
}

// Cell is a node in a hierarchical, reference-based layout: its own shapes
// plus placements of child cells. Cells let repeated sub-components be
// exported once and referenced many times rather than flattened.
type Cell struct {
	Name     string
	Shapes   []LayerShape
	Children []Placement
}

// NewCell returns an empty cell with the given name.
func NewCell(name string) *Cell {
	return &Cell{Name: name}
}

// AddPattern copies the pattern's boundaries into the cell on the given
// layer.
func (c *Cell) AddPattern(p *Pattern, layer string) *Cell {
	for _, b := range p.Boundaries() {
		c.Shapes = append(c.Shapes, LayerShape{Boundary: b, Layer: layer})
	}
	return c
}

// AddDevice copies every layer of the device into the cell.
func (c *Cell) AddDevice(d *Device) *Cell {
	for _, layer := range d.Layers() {
		for _, b := range d.LayerBoundaries(layer) {
			c.Shapes = append(c.Shapes, LayerShape{Boundary: b, Layer: layer})
		}
	}
	return c
}

// Place adds a child cell at the given pose.
func (c *Cell) Place(child *Cell, at Pose) *Cell {
	c.Children = append(c.Children, Placement{Cell: child, At: at})
	return c
}

// poseAffine is the rigid transform a placement applies to its child.
func poseAffine(p Pose) Affine {
	return TranslateAffine(Vec(p.X, p.Y)).Mul(RotateAffine(p.Angle))
}

// Flatten resolves all placements recursively into a flat shape list in the
// parent's frame.
func (c *Cell) Flatten() []LayerShape {
	return c.flatten(Identity)
}

func (c *Cell) flatten(aff Affine) []LayerShape {
	var out []LayerShape
	for _, s := range c.Shapes {
		b := make([]Point, len(s.Boundary))
		for i, pt := range s.Boundary {
			b[i] = pt.Transform(aff)
		}
		out = append(out, LayerShape{Boundary: b, Layer: s.Layer})
	}
	for _, child := range c.Children {
		out = append(out, child.Cell.flatten(aff.Mul(poseAffine(child.At)))...)
	}
	return out
}

// Layout-exchange document structure. Cells are referenced by name, so a
// sub-component placed many times is written once.

type exchangeDoc struct {
	Top   string            `yaml:"top"`
	Cells []exchangeCellDoc `yaml:"cells"`
}

type exchangeCellDoc struct {
	Name     string             `yaml:"name"`
	Shapes   []exchangeShapeDoc `yaml:"shapes,omitempty"`
	Children []exchangePlaceDoc `yaml:"children,omitempty"`
}

type exchangeShapeDoc struct {
	Layer  string      `yaml:"layer"`
	Points [][]float64 `yaml:"points"`
}

type exchangePlaceDoc struct {
	Cell string    `yaml:"cell"`
	At   []float64 `yaml:"at"` // [x, y, angle]
}

// EncodeCell writes the cell hierarchy rooted at top as a YAML
// layout-exchange document, children before parents, each distinct cell
// once. Distinct cells sharing a name fail.
func EncodeCell(w io.Writer, top *Cell) error {
	var doc exchangeDoc
	seen := map[string]*Cell{}
	var walk func(c *Cell) error
	walk = func(c *Cell) error {
		if prev, ok := seen[c.Name]; ok {
			if prev != c {
				return fmt.Errorf("planar: two distinct cells named %q", c.Name)
			}
			return nil
		}
		seen[c.Name] = c
		for _, child := range c.Children {
			if err := walk(child.Cell); err != nil {
				return err
			}
		}
		cd := exchangeCellDoc{Name: c.Name}
		for _, s := range c.Shapes {
			pts := make([][]float64, len(s.Boundary))
			for i, pt := range s.Boundary {
				pts[i] = []float64{pt.X, pt.Y}
			}
			cd.Shapes = append(cd.Shapes, exchangeShapeDoc{Layer: s.Layer, Points: pts})
		}
		for _, child := range c.Children {
			cd.Children = append(cd.Children, exchangePlaceDoc{
				Cell: child.Cell.Name,
				At:   []float64{child.At.X, child.At.Y, child.At.Angle},
			})
		}
		doc.Cells = append(doc.Cells, cd)
		return nil
	}
	if err := walk(top); err != nil {
		return err
	}
	doc.Top = top.Name
	return yaml.NewEncoder(w).Encode(&doc)
}

// DecodeCell reads a YAML layout-exchange document and rebuilds the cell
// hierarchy, returning the top cell. It is the structural inverse of
// [EncodeCell].
func DecodeCell(r io.Reader) (*Cell, error) {
	var doc exchangeDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	cells := map[string]*Cell{}
	for _, cd := range doc.Cells {
		if _, ok := cells[cd.Name]; ok {
			return nil, fmt.Errorf("planar: duplicate cell %q", cd.Name)
		}
		cells[cd.Name] = NewCell(cd.Name)
	}
	for _, cd := range doc.Cells {
		c := cells[cd.Name]
		for _, sd := range cd.Shapes {
			b := make([]Point, len(sd.Points))
			for i, pt := range sd.Points {
				if len(pt) != 2 {
					return nil, &DimensionMismatchError{Want: 2, Got: len(pt)}
				}
				b[i] = Pt(pt[0], pt[1])
			}
			if len(b) < 3 {
				return nil, &InvalidGeometryError{Op: "DecodeCell", Reason: "boundary with fewer than 3 points"}
			}
			c.Shapes = append(c.Shapes, LayerShape{Boundary: b, Layer: sd.Layer})
		}
		for _, pd := range cd.Children {
			child, ok := cells[pd.Cell]
			if !ok {
				return nil, fmt.Errorf("planar: placement references unknown cell %q", pd.Cell)
			}
			if len(pd.At) != 3 {
				return nil, &DimensionMismatchError{Want: 3, Got: len(pd.At)}
			}
			c.Place(child, Pose{X: pd.At[0], Y: pd.At[1], Angle: pd.At[2]})
		}
	}
	top, ok := cells[doc.Top]
	if !ok {
		return nil, fmt.Errorf("planar: document names no top cell")
	}
	return top, nil
}
