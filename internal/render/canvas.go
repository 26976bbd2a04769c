// Package render rasterizes a module grid into a pixel canvas and carries
// the geometry later styling stages need to find modules again.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/cristianadrielbraun/qrstudio/internal/encoder"
)

// ErrInvalidSize is returned when the requested pixel size leaves less than
// one pixel per module.
var ErrInvalidSize = errors.New("invalid size")

// FinderModules is the side, in modules, of a finder pattern.
const FinderModules = 7

// Layout maps module coordinates to pixels.
type Layout struct {
	Modules   int // N, modules per side excluding the quiet zone
	QuietZone int // quiet zone in modules
	Extent    int // pixels per module side
	Origin    int // pixel offset of module (0, 0) on both axes
}

// Cell returns the pixel rectangle covered by module (mx, my).
func (l Layout) Cell(mx, my int) image.Rectangle {
	x := l.Origin + mx*l.Extent
	y := l.Origin + my*l.Extent
	return image.Rect(x, y, x+l.Extent, y+l.Extent)
}

// InFinder reports whether module (mx, my) belongs to one of the three
// finder patterns in the top-left, top-right and bottom-left corners.
func (l Layout) InFinder(mx, my int) bool {
	near := func(v int) bool { return v >= 0 && v < FinderModules }
	far := func(v int) bool { return v >= l.Modules-FinderModules && v < l.Modules }
	return (near(mx) && near(my)) || (far(mx) && near(my)) || (near(mx) && far(my))
}

// Canvas is the pixel buffer handed from stage to stage. Its dimensions never
// change after Render; only pixel values do.
type Canvas struct {
	*image.RGBA
	Layout     Layout
	Foreground color.RGBA
	Background color.RGBA
}

// Size returns the canvas side in pixels.
func (c *Canvas) Size() int { return c.Bounds().Dx() }

// ModuleDark reports whether module (mx, my) is currently painted with
// anything other than the background, sampling the cell center.
func (c *Canvas) ModuleDark(mx, my int) bool {
	if mx < 0 || my < 0 || mx >= c.Layout.Modules || my >= c.Layout.Modules {
		return false
	}
	r := c.Layout.Cell(mx, my)
	return c.RGBAAt(r.Min.X+c.Layout.Extent/2, r.Min.Y+c.Layout.Extent/2) != c.Background
}

// Clone returns a deep copy of the canvas.
func (c *Canvas) Clone() *Canvas {
	img := image.NewRGBA(c.Bounds())
	copy(img.Pix, c.Pix)
	return &Canvas{RGBA: img, Layout: c.Layout, Foreground: c.Foreground, Background: c.Background}
}

// Render paints grid onto a size x size canvas: dark modules in fg, light
// modules and the quiet zone in bg. Pixels left over after integer division
// are split evenly around the symbol.
func Render(grid *encoder.Grid, size int, fg, bg color.RGBA) (*Canvas, error) {
	span := grid.Span()
	if size <= 0 || span <= 0 {
		return nil, fmt.Errorf("%w: %d px for %d modules", ErrInvalidSize, size, span)
	}
	extent := size / span
	if extent < 1 {
		return nil, fmt.Errorf("%w: %d px cannot fit %d modules", ErrInvalidSize, size, span)
	}

	layout := Layout{
		Modules:   grid.Size(),
		QuietZone: grid.QuietZone,
		Extent:    extent,
		Origin:    (size-extent*span)/2 + grid.QuietZone*extent,
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)

	ink := &image.Uniform{C: fg}
	for my := 0; my < layout.Modules; my++ {
		for mx := 0; mx < layout.Modules; mx++ {
			if grid.Dark(mx, my) {
				draw.Draw(img, layout.Cell(mx, my), ink, image.Point{}, draw.Src)
			}
		}
	}

	return &Canvas{RGBA: img, Layout: layout, Foreground: fg, Background: bg}, nil
}
