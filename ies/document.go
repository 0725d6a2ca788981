package ies

// Sample is one angular measurement. Angles are in degrees, intensity in
// candela after the candela multiplier has been applied.
type Sample struct {
	HorizontalAngle float64
	VerticalAngle   float64
	Intensity       float64
}

// Grid is a dense matrix of samples indexed [horizontal, vertical].
// Cells are updated in place by index while parsing and are read-only
// once the owning Document has been returned.
type Grid struct {
	horizontal int
	vertical   int
	cells      []Sample
}

func newGrid(horizontal, vertical int) *Grid {
	return &Grid{
		horizontal: horizontal,
		vertical:   vertical,
		cells:      make([]Sample, horizontal*vertical),
	}
}

// Dims returns the horizontal and vertical angle counts.
func (g *Grid) Dims() (horizontal, vertical int) {
	return g.horizontal, g.vertical
}

func (g *Grid) index(h, v int) int {
	if h < 0 || h >= g.horizontal || v < 0 || v >= g.vertical {
		panic("ies: grid index out of range")
	}
	return h*g.vertical + v
}

func (g *Grid) At(h, v int) Sample {
	return g.cells[g.index(h, v)]
}

func (g *Grid) setAngles(h, v int, horizontal, vertical float64) {
	cell := &g.cells[g.index(h, v)]
	cell.HorizontalAngle = horizontal
	cell.VerticalAngle = vertical
}

func (g *Grid) setIntensity(h, v int, intensity float64) {
	g.cells[g.index(h, v)].Intensity = intensity
}

// Document is a fully parsed photometric file.
type Document struct {
	Version  Version
	Keywords map[string]string
	Tilt     string

	LampCount            int
	RatedLumens          float64
	CandelaMultiplier    float64
	VerticalAngleCount   int
	HorizontalAngleCount int
	PhotometricType      int
	UsingMetres          bool

	LuminousOpeningWidth  float64
	LuminousOpeningLength float64
	LuminousOpeningHeight float64

	BallastFactor float64
	FutureUse     float64
	// LightWatts is read to keep the data block aligned. LM-63-1991 defines
	// it as zero but real files carry the lamp wattage; nothing uses it.
	LightWatts float64

	MaxIntensity float64
	Samples      *Grid
}

// VerticalAngles returns the vertical angle list of the first horizontal
// plane.
func (d *Document) VerticalAngles() []float64 {
	angles := make([]float64, d.VerticalAngleCount)
	for v := range angles {
		angles[v] = d.Samples.At(0, v).VerticalAngle
	}
	return angles
}

func (d *Document) HorizontalAngles() []float64 {
	angles := make([]float64, d.HorizontalAngleCount)
	for h := range angles {
		angles[h] = d.Samples.At(h, 0).HorizontalAngle
	}
	return angles
}

// Plane returns the intensities of one horizontal plane in vertical order.
func (d *Document) Plane(h int) []float64 {
	out := make([]float64, d.VerticalAngleCount)
	for v := range out {
		out[v] = d.Samples.At(h, v).Intensity
	}
	return out
}
