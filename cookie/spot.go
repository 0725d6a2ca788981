package cookie

// SpotAngles maps an output pixel to the angle pair it samples. x runs
// across the vertical range and y across the horizontal range; pixel
// centres are used so the texture covers the range symmetrically.
func (r AngleRange) SpotAngles(x, y, size int) (vertical, horizontal float64) {
	n := float64(size)
	tx := (float64(x) + 0.5) / n
	ty := (float64(y) + 0.5) / n
	vertical = r.VerticalMin + tx*(r.VerticalMax-r.VerticalMin)
	horizontal = r.HorizontalMin + ty*(r.HorizontalMax-r.HorizontalMin)
	return vertical, horizontal
}

// SpotProjector resamples a sample buffer into a 2D spot light cookie.
type SpotProjector struct {
	Size   int
	Filter Filter
}

func (p SpotProjector) Project(buf *SampleBuffer) (*Texture, error) {
	if err := ValidateTextureSize(p.Size); err != nil {
		return nil, err
	}

	tex := NewTexture(p.Size)
	rng := buf.Range()
	for y := 0; y < p.Size; y++ {
		for x := 0; x < p.Size; x++ {
			vertical, horizontal := rng.SpotAngles(x, y, p.Size)
			tex.Set(x, y, buf.Lookup(vertical, horizontal, p.Filter))
		}
	}
	return tex, nil
}
