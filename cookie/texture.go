package cookie

import (
	"errors"
	"fmt"
)

const (
	MinTextureSize     = 16
	MaxTextureSize     = 8192
	DefaultTextureSize = 512
)

var ErrInvalidTextureSize = errors.New("cookie: texture size must be a power of two between 16 and 8192")

// TextureSizes lists every accepted square texture size in ascending order.
func TextureSizes() []int {
	var sizes []int
	for s := MinTextureSize; s <= MaxTextureSize; s <<= 1 {
		sizes = append(sizes, s)
	}
	return sizes
}

func ValidateTextureSize(size int) error {
	if size < MinTextureSize || size > MaxTextureSize || size&(size-1) != 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidTextureSize, size)
	}
	return nil
}

// Texture is a square single-channel HDR image, row-major.
type Texture struct {
	Size int
	Pix  []float32
}

func NewTexture(size int) *Texture {
	return &Texture{
		Size: size,
		Pix:  make([]float32, size*size),
	}
}

func (t *Texture) At(x, y int) float32 {
	return t.Pix[y*t.Size+x]
}

func (t *Texture) Set(x, y int, value float32) {
	t.Pix[y*t.Size+x] = value
}

// RGB returns the texel with the value duplicated into three channels.
func (t *Texture) RGB(x, y int) [3]float32 {
	v := t.At(x, y)
	return [3]float32{v, v, v}
}

type CubeFace int

const (
	CubeFacePosX CubeFace = iota
	CubeFaceNegX
	CubeFacePosY
	CubeFaceNegY
	CubeFacePosZ
	CubeFaceNegZ
)

const CubeFaceCount = 6

func (f CubeFace) String() string {
	switch f {
	case CubeFacePosX:
		return "+X"
	case CubeFaceNegX:
		return "-X"
	case CubeFacePosY:
		return "+Y"
	case CubeFaceNegY:
		return "-Y"
	case CubeFacePosZ:
		return "+Z"
	case CubeFaceNegZ:
		return "-Z"
	}
	return fmt.Sprintf("CubeFace(%d)", int(f))
}

// CubeTexture holds six square faces in +X, -X, +Y, -Y, +Z, -Z order.
type CubeTexture struct {
	Size  int
	Faces [CubeFaceCount]*Texture
}

func NewCubeTexture(size int) *CubeTexture {
	c := &CubeTexture{Size: size}
	for i := range c.Faces {
		c.Faces[i] = NewTexture(size)
	}
	return c
}

func (c *CubeTexture) Face(f CubeFace) *Texture {
	return c.Faces[f]
}
