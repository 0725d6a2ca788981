package cookie

import (
	"errors"

	"github.com/gekko3d/iescookie/ies"
)

// Channels is the number of float32 values per packed texel:
// vertical angle, horizontal angle, normalized intensity, reserved.
const Channels = 4

var (
	ErrDegenerateIntensity = errors.New("cookie: every intensity is zero, cannot normalize")
	ErrEmptyDocument       = errors.New("cookie: document has no samples")
)

// AngleRange is the angular domain covered by a sample buffer, in degrees.
type AngleRange struct {
	VerticalMin   float64
	VerticalMax   float64
	HorizontalMin float64
	HorizontalMax float64
}

// SampleBuffer is the normalized, packed form of a photometric grid. It is
// read-only after construction and safe to share between goroutines.
//
// Texels are row-major with one row per vertical angle and one column per
// horizontal angle, each holding (vertical, horizontal, intensity/max, 0).
type SampleBuffer struct {
	width      int
	height     int
	packed     []float32
	vertical   []float64
	horizontal []float64
	rng        AngleRange
}

func NewSampleBuffer(doc *ies.Document) (*SampleBuffer, error) {
	if doc == nil || doc.Samples == nil {
		return nil, ErrEmptyDocument
	}
	if doc.MaxIntensity <= 0 {
		return nil, ErrDegenerateIntensity
	}

	width, height := doc.Samples.Dims()
	b := &SampleBuffer{
		width:      width,
		height:     height,
		packed:     make([]float32, width*height*Channels),
		vertical:   doc.VerticalAngles(),
		horizontal: doc.HorizontalAngles(),
	}

	i := 0
	for v := 0; v < height; v++ {
		for h := 0; h < width; h++ {
			sample := doc.Samples.At(h, v)
			b.packed[i] = float32(sample.VerticalAngle)
			b.packed[i+1] = float32(sample.HorizontalAngle)
			b.packed[i+2] = float32(sample.Intensity / doc.MaxIntensity)
			b.packed[i+3] = 0
			i += Channels
		}
	}

	b.rng = AngleRange{
		VerticalMin:   b.vertical[0],
		VerticalMax:   b.vertical[height-1],
		HorizontalMin: b.horizontal[0],
		HorizontalMax: b.horizontal[width-1],
	}
	return b, nil
}

// Width is the number of horizontal angles.
func (b *SampleBuffer) Width() int { return b.width }

// Height is the number of vertical angles.
func (b *SampleBuffer) Height() int { return b.height }

func (b *SampleBuffer) Range() AngleRange { return b.rng }

// Packed returns a copy of the packed texel data.
func (b *SampleBuffer) Packed() []float32 {
	out := make([]float32, len(b.packed))
	copy(out, b.packed)
	return out
}

func (b *SampleBuffer) Texel(h, v int) [Channels]float32 {
	i := (v*b.width + h) * Channels
	return [Channels]float32{b.packed[i], b.packed[i+1], b.packed[i+2], b.packed[i+3]}
}

// Intensity returns the normalized intensity at a grid index.
func (b *SampleBuffer) Intensity(h, v int) float32 {
	return b.packed[(v*b.width+h)*Channels+2]
}

func (b *SampleBuffer) VerticalAngles() []float64 {
	return append([]float64(nil), b.vertical...)
}

func (b *SampleBuffer) HorizontalAngles() []float64 {
	return append([]float64(nil), b.horizontal...)
}
