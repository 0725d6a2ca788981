package report

import (
	"gonum.org/v1/gonum/floats"

	"github.com/gekko3d/iescookie/cookie"
	"github.com/gekko3d/iescookie/ies"
)

const (
	beamFraction  = 0.5
	fieldFraction = 0.1
)

// Summary describes the photometric web in terms lighting designers use.
// Beam and field angles are full cone angles measured on the first
// horizontal plane, assuming the distribution is centred on nadir.
type Summary struct {
	PeakIntensity  float64
	PeakVertical   float64
	PeakHorizontal float64
	BeamAngle      float64
	FieldAngle     float64
	Planes         int
	UsingMetres    bool
}

func Summarize(doc *ies.Document) (Summary, error) {
	if doc == nil || doc.Samples == nil {
		return Summary{}, cookie.ErrEmptyDocument
	}
	if doc.MaxIntensity <= 0 {
		return Summary{}, cookie.ErrDegenerateIntensity
	}

	h, v := doc.Samples.Dims()
	all := make([]float64, 0, h*v)
	for i := 0; i < h; i++ {
		all = append(all, doc.Plane(i)...)
	}
	peak := floats.MaxIdx(all)
	peakSample := doc.Samples.At(peak/v, peak%v)

	angles := doc.VerticalAngles()
	plane := doc.Plane(0)

	return Summary{
		PeakIntensity:  all[peak],
		PeakVertical:   peakSample.VerticalAngle,
		PeakHorizontal: peakSample.HorizontalAngle,
		BeamAngle:      2 * crossing(angles, plane, beamFraction),
		FieldAngle:     2 * crossing(angles, plane, fieldFraction),
		Planes:         h,
		UsingMetres:    doc.UsingMetres,
	}, nil
}

// crossing walks outwards from the plane's peak and returns the vertical
// angle at which intensity first falls to fraction of that peak,
// interpolating between the bracketing samples. If it never falls that far
// the last angle is returned.
func crossing(angles, plane []float64, fraction float64) float64 {
	peak := floats.MaxIdx(plane)
	threshold := plane[peak] * fraction

	for i := peak + 1; i < len(plane); i++ {
		if plane[i] > threshold {
			continue
		}
		drop := plane[i-1] - plane[i]
		if drop <= 0 {
			return angles[i]
		}
		t := (plane[i-1] - threshold) / drop
		return angles[i-1] + t*(angles[i]-angles[i-1])
	}
	return angles[len(angles)-1]
}
