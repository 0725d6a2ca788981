package iescookie

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"os"

	"golang.org/x/image/tiff"

	"github.com/gekko3d/iescookie/cookie"
)

var tiffOptions = &tiff.Options{Compression: tiff.Deflate, Predictor: true}

// Angle scales used to fit the packed data into [0, 1] for inspection.
const (
	debugVerticalScale   = 180
	debugHorizontalScale = 360
)

func toUint16(v float64) uint16 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 1 {
		return math.MaxUint16
	}
	return uint16(math.Round(v * math.MaxUint16))
}

func textureImage(tex *cookie.Texture) *image.Gray16 {
	img := image.NewGray16(image.Rect(0, 0, tex.Size, tex.Size))
	for y := 0; y < tex.Size; y++ {
		for x := 0; x < tex.Size; x++ {
			img.SetGray16(x, y, color.Gray16{Y: toUint16(float64(tex.At(x, y)))})
		}
	}
	return img
}

// cubeImage lays the faces out as a vertical strip in +X, -X, +Y, -Y, +Z,
// -Z order.
func cubeImage(cube *cookie.CubeTexture) *image.Gray16 {
	n := cube.Size
	img := image.NewGray16(image.Rect(0, 0, n, n*cookie.CubeFaceCount))
	for f, face := range cube.Faces {
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				img.SetGray16(x, f*n+y, color.Gray16{Y: toUint16(float64(face.At(x, y)))})
			}
		}
	}
	return img
}

// dataImage renders the packed sample buffer with one pixel per sample:
// red is the vertical angle over 180, green the horizontal angle over 360
// and blue the normalized intensity.
func dataImage(buf *cookie.SampleBuffer) *image.RGBA64 {
	img := image.NewRGBA64(image.Rect(0, 0, buf.Width(), buf.Height()))
	for v := 0; v < buf.Height(); v++ {
		for h := 0; h < buf.Width(); h++ {
			texel := buf.Texel(h, v)
			img.SetRGBA64(h, v, color.RGBA64{
				R: toUint16(float64(texel[0]) / debugVerticalScale),
				G: toUint16(float64(texel[1]) / debugHorizontalScale),
				B: toUint16(float64(texel[2])),
				A: math.MaxUint16,
			})
		}
	}
	return img
}

func EncodeSpotTIFF(w io.Writer, tex *cookie.Texture) error {
	return tiff.Encode(w, textureImage(tex), tiffOptions)
}

func EncodeCubeTIFF(w io.Writer, cube *cookie.CubeTexture) error {
	return tiff.Encode(w, cubeImage(cube), tiffOptions)
}

func EncodeDataTIFF(w io.Writer, buf *cookie.SampleBuffer) error {
	return tiff.Encode(w, dataImage(buf), tiffOptions)
}

// EncodeCookieTIFF writes whichever texture the asset carries.
func EncodeCookieTIFF(w io.Writer, asset CookieAsset) error {
	switch {
	case asset.Spot != nil:
		return EncodeSpotTIFF(w, asset.Spot)
	case asset.Cube != nil:
		return EncodeCubeTIFF(w, asset.Cube)
	}
	return fmt.Errorf("cookie %s has no texture", asset.Name)
}

func writeFile(path string, encode func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(file); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return file.Close()
}
