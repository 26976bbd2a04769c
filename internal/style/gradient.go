package style

import (
	"image"
	"math"

	"github.com/cristianadrielbraun/qrstudio/internal/render"
)

// Gradient recolors dark pixels with a gradient laid over the whole canvas.
type Gradient struct {
	Spec GradientSpec
}

func (g Gradient) Name() string { return "gradient:" + string(g.Spec.Kind) }

// Apply computes the gradient field for the full canvas first and then
// copies it into the pixels that are dark, so neighbouring modules share
// one continuous color ramp.
func (g Gradient) Apply(c *render.Canvas) {
	b := c.Bounds()
	if b.Empty() || g.Spec.Kind == GradientNone {
		return
	}
	field := g.Field(b)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if render.IsDark(c.RGBAAt(x, y)) {
				c.SetRGBA(x, y, field.RGBAAt(x, y))
			}
		}
	}
}

// Field renders the unmasked gradient over bounds.
func (g Gradient) Field(b image.Rectangle) *image.RGBA {
	field := image.NewRGBA(b)
	w, h := float64(b.Dx()), float64(b.Dy())

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			// Sample at the pixel center.
			px := float64(x-b.Min.X) + 0.5
			py := float64(y-b.Min.Y) + 0.5
			field.SetRGBA(x, y, render.Lerp(g.Spec.Start, g.Spec.End, g.offset(px, py, w, h)))
		}
	}
	return field
}

// offset maps a point to the gradient parameter in [0, 1].
func (g Gradient) offset(px, py, w, h float64) float64 {
	switch g.Spec.Kind {
	case GradientRadial:
		r := math.Min(w, h) / 2
		if r <= 0 {
			return 0
		}
		return render.Clamp01(math.Hypot(px-w/2, py-h/2) / r)
	default:
		// Projection onto the top-left to bottom-right diagonal.
		den := w*w + h*h
		if den == 0 {
			return 0
		}
		return render.Clamp01((px*w + py*h) / den)
	}
}
