package report

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/gekko3d/iescookie/ies"
)

// maxPlottedPlanes keeps the legend readable on files with many planes.
const maxPlottedPlanes = 8

var planeColors = []color.Color{
	color.RGBA{R: 31, G: 119, B: 180, A: 255},
	color.RGBA{R: 255, G: 127, B: 14, A: 255},
	color.RGBA{R: 44, G: 160, B: 44, A: 255},
	color.RGBA{R: 214, G: 39, B: 40, A: 255},
	color.RGBA{R: 148, G: 103, B: 189, A: 255},
	color.RGBA{R: 140, G: 86, B: 75, A: 255},
	color.RGBA{R: 227, G: 119, B: 194, A: 255},
	color.RGBA{R: 127, G: 127, B: 127, A: 255},
}

// plottedPlanes picks up to maxPlottedPlanes evenly spaced plane indices,
// always including the first and the last.
func plottedPlanes(count int) []int {
	if count <= maxPlottedPlanes {
		out := make([]int, count)
		for i := range out {
			out[i] = i
		}
		return out
	}

	out := make([]int, maxPlottedPlanes)
	for i := range out {
		out[i] = i * (count - 1) / (maxPlottedPlanes - 1)
	}
	return out
}

// CandelaPlot builds an intensity over vertical angle chart with one line
// per horizontal plane.
func CandelaPlot(doc *ies.Document, title string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Vertical angle (deg)"
	p.Y.Label.Text = "Intensity (cd)"
	p.X.Min = 0
	p.Y.Min = 0
	p.Legend.Top = true

	angles := doc.VerticalAngles()
	horizontal := doc.HorizontalAngles()
	for n, h := range plottedPlanes(doc.HorizontalAngleCount) {
		plane := doc.Plane(h)
		pts := make(plotter.XYs, len(plane))
		for v, intensity := range plane {
			pts[v] = plotter.XY{X: angles[v], Y: intensity}
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("failed to build line for plane %d: %w", h, err)
		}
		line.Width = vg.Points(1)
		line.Color = planeColors[n%len(planeColors)]
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("H %g°", horizontal[h]), line)
	}
	return p, nil
}

// SaveCandelaPlot renders CandelaPlot to path; the format follows the file
// extension (png, svg, pdf, ...).
func SaveCandelaPlot(doc *ies.Document, title, path string) error {
	p, err := CandelaPlot(doc, title)
	if err != nil {
		return err
	}
	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save candela plot: %w", err)
	}
	return nil
}
