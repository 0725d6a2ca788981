package cookie

import (
	"fmt"
	"math"
	"sort"
)

type Filter uint8

const (
	FilterBilinear Filter = iota
	FilterNearest
)

func (f Filter) String() string {
	switch f {
	case FilterBilinear:
		return "bilinear"
	case FilterNearest:
		return "nearest"
	}
	return fmt.Sprintf("Filter(%d)", uint8(f))
}

func ParseFilter(s string) (Filter, error) {
	switch s {
	case "", "bilinear":
		return FilterBilinear, nil
	case "nearest":
		return FilterNearest, nil
	}
	return 0, fmt.Errorf("cookie: unknown filter %q", s)
}

// bracket finds the two entries of a sorted angle list that enclose value
// and the blend weight between them. Values outside the list clamp to the
// nearest end.
func bracket(angles []float64, value float64) (lo, hi int, t float64) {
	n := len(angles)
	if n == 1 || value <= angles[0] {
		return 0, 0, 0
	}
	if value >= angles[n-1] {
		return n - 1, n - 1, 0
	}

	i := sort.SearchFloat64s(angles, value)
	i = min(max(i, 1), n-1)
	if angles[i] == value {
		return i, i, 0
	}

	span := angles[i] - angles[i-1]
	if span <= 0 {
		return i, i, 0
	}
	return i - 1, i, (value - angles[i-1]) / span
}

// bracketPeriodic is bracket for a horizontal list that wraps at 360
// degrees. When the list does not close the circle, values past the last
// plane blend towards the first plane at first+360.
func bracketPeriodic(angles []float64, value float64) (lo, hi int, t float64) {
	n := len(angles)
	first, last := angles[0], angles[n-1]
	if n == 1 || last-first >= 360 {
		return bracket(angles, value)
	}

	v := first + math.Mod(value-first, 360)
	if v < first {
		v += 360
	}
	if v <= last {
		return bracket(angles, v)
	}

	span := first + 360 - last
	if span <= 0 {
		return n - 1, n - 1, 0
	}
	return n - 1, 0, (v - last) / span
}

func nearest(lo, hi int, t float64) int {
	if t < 0.5 {
		return lo
	}
	return hi
}

func lerp(a, b float32, t float64) float32 {
	return a + (b-a)*float32(t)
}

// Lookup resamples the normalized intensity at an arbitrary angle pair.
// Angles beyond the measured lists clamp to the edge samples.
func (b *SampleBuffer) Lookup(vertical, horizontal float64, filter Filter) float32 {
	v0, v1, tv := bracket(b.vertical, vertical)
	h0, h1, th := bracket(b.horizontal, horizontal)
	return b.blend(h0, h1, th, v0, v1, tv, filter)
}

// LookupPeriodic is Lookup with the horizontal angle treated as periodic
// over 360 degrees. Vertical angles still clamp.
func (b *SampleBuffer) LookupPeriodic(vertical, horizontal float64, filter Filter) float32 {
	v0, v1, tv := bracket(b.vertical, vertical)
	h0, h1, th := bracketPeriodic(b.horizontal, horizontal)
	return b.blend(h0, h1, th, v0, v1, tv, filter)
}

func (b *SampleBuffer) blend(h0, h1 int, th float64, v0, v1 int, tv float64, filter Filter) float32 {
	if filter == FilterNearest {
		return b.Intensity(nearest(h0, h1, th), nearest(v0, v1, tv))
	}

	near := lerp(b.Intensity(h0, v0), b.Intensity(h0, v1), tv)
	far := lerp(b.Intensity(h1, v0), b.Intensity(h1, v1), tv)
	return lerp(near, far, th)
}
