package planar

// Material describes a process material for downstream visualization and
// simulation consumers.
type Material struct {
	Name string
	// Eps is the constant relative permittivity assigned to the material.
	Eps float64
	// Color is the RGB face color used by drawing consumers.
	Color [3]float64
}

// Common materials.
var (
	Silicon  = Material{Name: "si", Eps: 3.4784 * 3.4784, Color: [3]float64{0.3, 0.3, 0.3}}
	Oxide    = Material{Name: "sio2", Eps: 1.4442 * 1.4442, Color: [3]float64{0.6, 0, 0}}
	Nitride  = Material{Name: "si3n4", Eps: 1.996 * 1.996, Color: [3]float64{0, 0, 0.7}}
	Alumina  = Material{Name: "al2o3", Eps: 1.75, Color: [3]float64{0.2, 0, 0.2}}
	Aluminum = Material{Name: "al", Color: [3]float64{0, 0.5, 0}}
	Heater   = Material{Name: "tin", Color: [3]float64{0.7, 0.7, 0}}
	Etchant  = Material{Name: "etch"}
)

// ProcessOp describes what happens at a step in a foundry process.
type ProcessOp string

const (
	// Grow deposits over the previously deposited layer.
	Grow ProcessOp = "grow"
	// Dope implants dopants into the previously deposited layer.
	Dope ProcessOp = "dope"
	// DirectionalEtch etches downward under a pattern stencil.
	DirectionalEtch ProcessOp = "dri_etch"
	// SacrificialEtch removes cladding material only, for release
	// processes.
	SacrificialEtch ProcessOp = "sac_etch"
)

// GDSLabel is a (layer, datatype) pair in a layout-exchange file.
type GDSLabel struct {
	Layer    int
	Datatype int
}

// ProcessStep is one layer of a foundry process.
type ProcessStep struct {
	Op        ProcessOp
	Thickness float64
	Material  Material
	// Layer names the device layer for this step; it varies by foundry.
	Layer string
	GDS   GDSLabel
	// StartHeight is the z position the step begins at. Leave NaN-free
	// zero values to have [NewFoundry] stack steps directly above the
	// previously grown layer.
	StartHeight float64

	// startHeightSet records whether StartHeight was given explicitly.
	startHeightSet bool
}

// StepAt returns step with an explicit start height.
func StepAt(step ProcessStep, startHeight float64) ProcessStep {
	step.StartHeight = startHeight
	step.startHeightSet = true
	return step
}

// Foundry is a full stack of process steps. Steps without an explicit start
// height are assumed to begin directly above the previously grown layer;
// this models planarized processes, not conformal deposition.
type Foundry struct {
	Steps []ProcessStep
	// Height is the total stack height, also used as the cladding
	// thickness.
	Height   float64
	Cladding Material
}

// NewFoundry fills in the start height of every step cumulatively: a step
// without an explicit start height begins where the previous grow step
// ended.
func NewFoundry(steps []ProcessStep, height float64, cladding Material) *Foundry {
	start := 0.0
	filled := make([]ProcessStep, len(steps))
	for i, step := range steps {
		if !step.startHeightSet {
			step.StartHeight = start
		}
		if step.Op == Grow {
			start = step.StartHeight + step.Thickness
		}
		filled[i] = step
	}
	return &Foundry{Steps: filled, Height: height, Cladding: cladding}
}

// ZRange returns the height range occupied by the named layer.
func (f *Foundry) ZRange(layer string) (zmin, zmax float64, ok bool) {
	for _, step := range f.Steps {
		if step.Layer == layer {
			return step.StartHeight, step.StartHeight + step.Thickness, true
		}
	}
	return 0, 0, false
}

// GDSLabel returns the exchange-file label for the named layer.
func (f *Foundry) GDSLabel(layer string) (GDSLabel, bool) {
	for _, step := range f.Steps {
		if step.Layer == layer {
			return step.GDS, true
		}
	}
	return GDSLabel{}, false
}

// LayerForGDS returns the layer name for an exchange-file label.
func (f *Foundry) LayerForGDS(label GDSLabel) (string, bool) {
	for _, step := range f.Steps {
		if step.GDS == label {
			return step.Layer, true
		}
	}
	return "", false
}

// Color returns the face color of the named layer's material.
func (f *Foundry) Color(layer string) ([3]float64, bool) {
	for _, step := range f.Steps {
		if step.Layer == layer {
			return step.Material.Color, true
		}
	}
	return [3]float64{}, false
}

// Fabless is a demo process stack. Foundries keep their real stacks and
// labels confidential, so this one exists for examples and tests.
var Fabless = NewFoundry([]ProcessStep{
	StepAt(ProcessStep{Op: Grow, Thickness: 0.2, Material: Silicon, Layer: "ridge_si", GDS: GDSLabel{100, 0}}, 2),
	{Op: Grow, Thickness: 0.1, Material: Silicon, Layer: "rib_si", GDS: GDSLabel{101, 0}},
	StepAt(ProcessStep{Op: Grow, Thickness: 0.2, Material: Nitride, Layer: "ridge_sin", GDS: GDSLabel{300, 0}}, 2.5),
	StepAt(ProcessStep{Op: Grow, Thickness: 0.1, Material: Alumina, Layer: "alumina", GDS: GDSLabel{200, 0}}, 2.5),
	StepAt(ProcessStep{Op: Grow, Thickness: 1, Material: Aluminum, Layer: "via_si_1", GDS: GDSLabel{500, 0}}, 2.2),
	{Op: Grow, Thickness: 0.2, Material: Aluminum, Layer: "metal_1", GDS: GDSLabel{501, 0}},
	{Op: Grow, Thickness: 0.5, Material: Aluminum, Layer: "via_1_2", GDS: GDSLabel{502, 0}},
	{Op: Grow, Thickness: 0.2, Material: Aluminum, Layer: "metal_2", GDS: GDSLabel{503, 0}},
	StepAt(ProcessStep{Op: Grow, Thickness: 0.2, Material: Heater, Layer: "heater", GDS: GDSLabel{700, 0}}, 3.2),
	{Op: Grow, Thickness: 0.5, Material: Aluminum, Layer: "via_heater_2", GDS: GDSLabel{505, 0}},
	{Op: SacrificialEtch, Thickness: 4, Material: Etchant, Layer: "clearout", GDS: GDSLabel{800, 0}},
}, 5, Oxide)
