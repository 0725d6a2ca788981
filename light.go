package iescookie

import "fmt"

type LightType uint32

const (
	LightTypePoint LightType = 0
	LightTypeSpot  LightType = 2
)

// CookieType selects the texture an IES file is imported as: a cube map
// for point lights or a 2D texture for spot lights.
type CookieType string

const (
	CookieTypePoint CookieType = "point"
	CookieTypeSpot  CookieType = "spot"
)

func ParseCookieType(s string) (CookieType, error) {
	switch CookieType(s) {
	case CookieTypePoint:
		return CookieTypePoint, nil
	case CookieTypeSpot:
		return CookieTypeSpot, nil
	}
	return "", fmt.Errorf("unknown cookie type %q (want point or spot)", s)
}

func (t CookieType) LightType() LightType {
	if t == CookieTypeSpot {
		return LightTypeSpot
	}
	return LightTypePoint
}

const maxSpotConeAngle = 179

// CookieLight is the light setup an imported cookie is meant for.
type CookieLight struct {
	Type      LightType
	Intensity float32 // Peak candela
	ConeAngle float32 // Full cone angle in degrees (spot)
	Cookie    AssetId
}

// NewCookieLight derives a light from an imported cookie. A spot light's
// cone covers the measured vertical range on both sides of its axis.
func NewCookieLight(asset CookieAsset) CookieLight {
	light := CookieLight{
		Type:      asset.Type.LightType(),
		Intensity: float32(asset.MaxIntensity),
		Cookie:    asset.Id,
	}
	if light.Type == LightTypeSpot {
		light.ConeAngle = float32(min(2*asset.Range.VerticalMax, maxSpotConeAngle))
	}
	return light
}
