package style

import (
	"image"
	"image/draw"

	"github.com/nfnt/resize"

	"github.com/cristianadrielbraun/qrstudio/internal/render"
)

const (
	// LogoClearMargin is the background border, in pixels, painted around the logo.
	LogoClearMargin = 5

	// MaxLogoCoverage keeps the obscured area inside what level H can recover.
	// It bounds the clear zone against the symbol side, not the canvas.
	MaxLogoCoverage = 0.3
)

// Logo paints a centered clear zone in the background color and draws the
// logo scaled to fit inside it.
type Logo struct {
	Image    image.Image
	Coverage float64
}

func (l Logo) Name() string { return "logo" }

func (l Logo) Apply(c *render.Canvas) {
	if l.Image == nil || l.Image.Bounds().Empty() {
		return
	}
	region := FitLogoRegion(c.Layout, c.Size(), l.Coverage)
	if region.Empty() {
		return
	}

	zone := region.Inset(-LogoClearMargin).Intersect(c.Bounds())
	draw.Draw(c.RGBA, zone, &image.Uniform{C: c.Background}, image.Point{}, draw.Src)

	w, h := fitInside(l.Image.Bounds(), region.Dx(), region.Dy())
	fitted := resize.Resize(uint(w), uint(h), l.Image, resize.Lanczos3)
	fb := fitted.Bounds()
	x := region.Min.X + (region.Dx()-fb.Dx())/2
	y := region.Min.Y + (region.Dy()-fb.Dy())/2
	draw.Draw(c.RGBA, image.Rect(x, y, x+fb.Dx(), y+fb.Dy()), fitted, fb.Min, draw.Over)
}

// LogoRegion returns the centered square a logo occupies on a size x size
// canvas. Coverage outside (0, MaxLogoCoverage] falls back to the default or
// the maximum.
func LogoRegion(size int, coverage float64) image.Rectangle {
	switch {
	case coverage <= 0:
		coverage = DefaultLogoCoverage
	case coverage > MaxLogoCoverage:
		coverage = MaxLogoCoverage
	}
	side := int(coverage * float64(size))
	if side <= 0 {
		return image.Rectangle{}
	}
	origin := (size - side) / 2
	return image.Rect(origin, origin, origin+side, origin+side)
}

// FitLogoRegion is LogoRegion bounded by the symbol: the clear zone around the
// logo never exceeds MaxLogoCoverage of the module area's side, however large
// the quiet zone. The square is centered on the symbol and is empty when the
// symbol is too small to hold a logo.
func FitLogoRegion(layout render.Layout, size int, coverage float64) image.Rectangle {
	region := LogoRegion(size, coverage)
	symbol := layout.Modules * layout.Extent
	if region.Empty() || symbol <= 0 {
		return region
	}

	side := min(region.Dx(), int(MaxLogoCoverage*float64(symbol))-2*LogoClearMargin)
	if side <= 0 {
		return image.Rectangle{}
	}
	origin := layout.Origin + (symbol-side)/2
	return image.Rect(origin, origin, origin+side, origin+side)
}

// fitInside scales b to the largest size that fits maxW x maxH while keeping
// its aspect ratio.
func fitInside(b image.Rectangle, maxW, maxH int) (int, int) {
	w, h := b.Dx(), b.Dy()
	if w*maxH > h*maxW {
		return maxW, max(1, h*maxW/w)
	}
	return max(1, w*maxH/h), maxH
}
