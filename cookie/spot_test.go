package cookie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpotAngles(t *testing.T) {
	rng := AngleRange{VerticalMin: 0, VerticalMax: 90, HorizontalMin: 0, HorizontalMax: 180}

	v, h := rng.SpotAngles(0, 0, 16)
	assert.InDelta(t, 90.0/32, v, 1e-12)
	assert.InDelta(t, 180.0/32, h, 1e-12)

	v, h = rng.SpotAngles(15, 15, 16)
	assert.InDelta(t, 90-90.0/32, v, 1e-12)
	assert.InDelta(t, 180-180.0/32, h, 1e-12)

	// Pixel centres stay strictly inside the range for every size.
	for _, size := range TextureSizes()[:4] {
		for i := 0; i < size; i++ {
			v, h := rng.SpotAngles(i, i, size)
			assert.True(t, v > rng.VerticalMin && v < rng.VerticalMax)
			assert.True(t, h > rng.HorizontalMin && h < rng.HorizontalMax)
		}
	}
}

func TestSpotProjector_Project(t *testing.T) {
	buf := spotBuffer(t)

	tex, err := SpotProjector{Size: 16, Filter: FilterBilinear}.Project(buf)
	require.NoError(t, err)
	require.Equal(t, 16, tex.Size)
	require.Len(t, tex.Pix, 16*16)

	for _, p := range tex.Pix {
		assert.GreaterOrEqual(t, p, float32(0))
		assert.LessOrEqual(t, p, float32(1))
	}

	// First pixel samples (2.8125, 2.8125): vertical weight 0.125, horizontal 0.0625.
	// near = 1 - 0.2*0.125, far = 0.9 - 0.2*0.125.
	near := 1 - 0.2*0.125
	far := 0.9 - 0.2*0.125
	assert.InDelta(t, near+(far-near)*0.0625, tex.At(0, 0), 1e-5)
	assert.Equal(t, [3]float32{tex.At(0, 0), tex.At(0, 0), tex.At(0, 0)}, tex.RGB(0, 0))

	// Intensity falls off along x (vertical angle) on every row.
	for y := 0; y < tex.Size; y++ {
		assert.Greater(t, tex.At(0, y), tex.At(tex.Size-1, y))
	}
}

func TestSpotProjector_Nearest(t *testing.T) {
	buf := spotBuffer(t)

	tex, err := SpotProjector{Size: 32, Filter: FilterNearest}.Project(buf)
	require.NoError(t, err)

	packed := buf.Packed()
	allowed := map[float32]bool{}
	for i := 2; i < len(packed); i += Channels {
		allowed[packed[i]] = true
	}
	for _, p := range tex.Pix {
		assert.True(t, allowed[p], "nearest filtering produced %v", p)
	}
}

func TestSpotProjector_InvalidSize(t *testing.T) {
	buf := spotBuffer(t)

	for _, size := range []int{0, 8, 100, 16384} {
		_, err := SpotProjector{Size: size}.Project(buf)
		assert.ErrorIs(t, err, ErrInvalidTextureSize, "size %d", size)
	}
}

func TestTextureSizes(t *testing.T) {
	sizes := TextureSizes()
	assert.Equal(t, []int{16, 32, 64, 128, 256, 512, 1024, 2048, 4096, 8192}, sizes)
	for _, s := range sizes {
		assert.NoError(t, ValidateTextureSize(s))
	}
	assert.NoError(t, ValidateTextureSize(DefaultTextureSize))
}
