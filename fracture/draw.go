package fracture

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// DrawPNG renders fragments to a PNG, each fragment filled with a hue picked
// from its index so adjacent cells are distinguishable. scale is pixels per
// boundary unit.
func DrawPNG(fragments []Fragment, path string, scale float64) error {
	const padding = 10

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, frag := range fragments {
		for _, p := range frag.Polygon.Points {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + padding*2
	height := int(scale*(maxY-minY)) + padding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	c.Translate(padding, padding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(1)
	for i, frag := range fragments {
		poly := frag.Polygon
		c.MoveTo(poly.Points[0].X, poly.Points[0].Y)
		for _, p := range poly.Points[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		hue := float64(i*137%360) / 360
		r, g, b := hsv(hue, 0.5, 0.8)
		c.SetRGB(r, g, b)
		c.FillPreserve()
		c.SetRGB(1, 1, 1)
		c.Stroke()

		// Mark the generator site
		c.DrawCircle(frag.Site.X, frag.Site.Y, 2/scale)
		c.SetRGB(0, 0, 0)
		c.Fill()
	}

	return c.SavePNG(path)
}

// This is for debugging purposes only
func dbgDrawFragments(fragments []Fragment, scale float64) {
	if err := DrawPNG(fragments, "/tmp/fragments.png", scale); err != nil {
		return
	}
	imgcat.CatFile("/tmp/fragments.png", os.Stdout)
}

func hsv(h, s, v float64) (r, g, b float64) {
	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)
	switch int(i) % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}
