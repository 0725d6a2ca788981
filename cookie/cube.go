package cookie

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const angleEpsilon = 1e-4

// FaceDirection returns the unit direction through the centre of texel
// (x, y) on a cube face, using the OpenGL cube map orientation with +Y up.
func FaceDirection(face CubeFace, x, y, size int) mgl32.Vec3 {
	s := 2*(float32(x)+0.5)/float32(size) - 1
	t := 2*(float32(y)+0.5)/float32(size) - 1

	var d mgl32.Vec3
	switch face {
	case CubeFacePosX:
		d = mgl32.Vec3{1, -t, -s}
	case CubeFaceNegX:
		d = mgl32.Vec3{-1, -t, s}
	case CubeFacePosY:
		d = mgl32.Vec3{s, 1, t}
	case CubeFaceNegY:
		d = mgl32.Vec3{s, -1, -t}
	case CubeFacePosZ:
		d = mgl32.Vec3{s, -t, 1}
	case CubeFaceNegZ:
		d = mgl32.Vec3{-s, -t, -1}
	}
	return d.Normalize()
}

// DirectionAngles converts a direction to photometric angles. The vertical
// angle is measured from nadir (-Y) so straight down is 0 and straight up
// is 180. The horizontal angle turns from +X towards +Z in [0, 360).
func DirectionAngles(d mgl32.Vec3) (vertical, horizontal float64) {
	if d.Len() == 0 {
		return 0, 0
	}
	d = d.Normalize()

	down := math.Max(-1, math.Min(1, float64(-d.Y())))
	vertical = math.Acos(down) * 180 / math.Pi

	horizontal = math.Atan2(float64(d.Z()), float64(d.X())) * 180 / math.Pi
	if horizontal < 0 {
		horizontal += 360
	}
	if horizontal >= 360 {
		horizontal -= 360
	}
	return vertical, horizontal
}

// Symmetric reports whether the horizontal range is one of the symmetric
// layouts FoldHorizontal mirrors into: a single plane, 0-90, 0-180 or
// 90-270. Any other range is sampled as periodic over 360 degrees.
func (r AngleRange) Symmetric() bool {
	switch {
	case r.HorizontalMax <= r.HorizontalMin:
		return true
	case r.HorizontalMin == 0 && (r.HorizontalMax == 90 || r.HorizontalMax == 180):
		return true
	case r.HorizontalMin == 90 && r.HorizontalMax == 270:
		return true
	}
	return false
}

// FoldHorizontal maps a full-circle horizontal angle onto the measured
// planes using the symmetry implied by the range: a single plane is
// rotationally symmetric, 0-90 is quadrant symmetric, 0-180 and 90-270
// are bilaterally symmetric. Any other range only wraps into [0, 360).
func FoldHorizontal(horizontal float64, r AngleRange) float64 {
	h := math.Mod(horizontal, 360)
	if h < 0 {
		h += 360
	}

	switch {
	case r.HorizontalMax <= r.HorizontalMin:
		return r.HorizontalMin
	case r.HorizontalMin == 0 && r.HorizontalMax == 90:
		if h > 180 {
			h = 360 - h
		}
		if h > 90 {
			h = 180 - h
		}
	case r.HorizontalMin == 0 && r.HorizontalMax == 180:
		if h > 180 {
			h = 360 - h
		}
	case r.HorizontalMin == 90 && r.HorizontalMax == 270:
		if h < 90 {
			h = 180 - h
		} else if h > 270 {
			h = 540 - h
		}
	}
	return h
}

// CubeProjector resamples a sample buffer into a point light cube cookie.
// Directions whose vertical angle falls outside the measured range receive
// no light.
type CubeProjector struct {
	Size   int
	Filter Filter
}

func (p CubeProjector) Project(buf *SampleBuffer) (*CubeTexture, error) {
	if err := ValidateTextureSize(p.Size); err != nil {
		return nil, err
	}

	cube := NewCubeTexture(p.Size)
	for f := CubeFacePosX; f <= CubeFaceNegZ; f++ {
		face := cube.Face(f)
		for y := 0; y < p.Size; y++ {
			for x := 0; x < p.Size; x++ {
				face.Set(x, y, p.sample(buf, FaceDirection(f, x, y, p.Size)))
			}
		}
	}
	return cube, nil
}

func (p CubeProjector) sample(buf *SampleBuffer, d mgl32.Vec3) float32 {
	rng := buf.Range()
	vertical, horizontal := DirectionAngles(d)
	if vertical < rng.VerticalMin-angleEpsilon || vertical > rng.VerticalMax+angleEpsilon {
		return 0
	}
	if !rng.Symmetric() {
		return buf.LookupPeriodic(vertical, FoldHorizontal(horizontal, rng), p.Filter)
	}
	return buf.Lookup(vertical, FoldHorizontal(horizontal, rng), p.Filter)
}
