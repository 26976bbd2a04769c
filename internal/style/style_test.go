package style

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianadrielbraun/qrstudio/internal/encoder"
	"github.com/cristianadrielbraun/qrstudio/internal/render"
)

var (
	black = color.RGBA{A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	blue  = color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 255}
	navy  = color.RGBA{R: 0x1e, G: 0x40, B: 0xaf, A: 255}
)

func grid(t *testing.T, quietZone int) *encoder.Grid {
	t.Helper()
	g, err := encoder.Yeqown{}.Encode("https://example.com", encoder.LevelM, quietZone)
	require.NoError(t, err)
	return g
}

func canvasWithExtent(t *testing.T, extent int) *render.Canvas {
	t.Helper()
	g := grid(t, 4)
	c, err := render.Render(g, extent*g.Span(), black, white)
	require.NoError(t, err)
	require.Equal(t, extent, c.Layout.Extent)
	return c
}

func countInk(c *render.Canvas, r image.Rectangle) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if c.RGBAAt(x, y) != c.Background {
				n++
			}
		}
	}
	return n
}

func TestParseDotStyleAndGradientKind(t *testing.T) {
	d, err := ParseDotStyle(" Rounded ")
	require.NoError(t, err)
	assert.Equal(t, DotRounded, d)
	d, err = ParseDotStyle("")
	require.NoError(t, err)
	assert.Equal(t, DotSquare, d)
	_, err = ParseDotStyle("hexagon")
	assert.Error(t, err)

	k, err := ParseGradientKind("RADIAL")
	require.NoError(t, err)
	assert.Equal(t, GradientRadial, k)
	_, err = ParseGradientKind("conic")
	assert.Error(t, err)
}

func TestMergeIsPure(t *testing.T) {
	base := DefaultOptions()
	base.Gradient = &GradientSpec{Kind: GradientLinear, Start: blue, End: navy}

	out := Merge(base, Overlay{
		Foreground: Ptr(navy),
		DotStyle:   Ptr(DotCircle),
		Size:       Ptr(600),
	})
	assert.Equal(t, navy, out.Foreground)
	assert.Equal(t, DotCircle, out.DotStyle)
	assert.Equal(t, 600, out.Size)
	assert.Equal(t, base.Background, out.Background)

	// The base keeps its values and does not share the gradient.
	assert.Equal(t, black, base.Foreground)
	assert.Equal(t, DotSquare, base.DotStyle)
	out.Gradient.Start = white
	assert.Equal(t, blue, base.Gradient.Start)

	cleared := Merge(base, Overlay{Gradient: &GradientSpec{Kind: GradientNone}})
	assert.Nil(t, cleared.Gradient)
	assert.NotNil(t, base.Gradient)
}

func TestBuildOrder(t *testing.T) {
	opts := DefaultOptions()
	assert.Empty(t, Build(opts, nil))

	opts.Gradient = &GradientSpec{Kind: GradientRadial, Start: blue, End: navy}
	opts.DotStyle = DotDots
	logo := image.NewRGBA(image.Rect(0, 0, 10, 10))

	p := Build(opts, logo)
	assert.Equal(t, []string{"gradient:radial", "dots:dots", "logo"}, p.Names())
}

func TestGradientOnlyTouchesDarkPixels(t *testing.T) {
	c := canvasWithExtent(t, 8)
	before := c.Clone()

	g := Gradient{Spec: GradientSpec{Kind: GradientLinear, Start: blue, End: navy}}
	g.Apply(c)

	b := c.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			orig := before.RGBAAt(x, y)
			if orig == white {
				assert.Equal(t, white, c.RGBAAt(x, y))
			} else {
				assert.NotEqual(t, black, c.RGBAAt(x, y))
			}
		}
	}
	assert.Equal(t, before.Bounds(), c.Bounds())
}

func TestGradientFieldEndpoints(t *testing.T) {
	b := image.Rect(0, 0, 200, 200)

	linear := Gradient{Spec: GradientSpec{Kind: GradientLinear, Start: black, End: white}}.Field(b)
	assert.Less(t, linear.RGBAAt(0, 0).R, uint8(3))
	assert.Greater(t, linear.RGBAAt(199, 199).R, uint8(252))
	// Points on the anti-diagonal share the midpoint color.
	assert.Equal(t, linear.RGBAAt(0, 199), linear.RGBAAt(199, 0))

	radial := Gradient{Spec: GradientSpec{Kind: GradientRadial, Start: black, End: white}}.Field(b)
	assert.Less(t, radial.RGBAAt(100, 100).R, uint8(3))
	assert.Equal(t, white, radial.RGBAAt(0, 0), "corners lie beyond the radius and clamp to the end color")
}

func TestGradientIdempotent(t *testing.T) {
	for _, kind := range []GradientKind{GradientLinear, GradientRadial} {
		c := canvasWithExtent(t, 8)
		g := Gradient{Spec: GradientSpec{Kind: kind, Start: blue, End: navy}}

		g.Apply(c)
		once := append([]uint8(nil), c.Pix...)
		g.Apply(c)
		assert.Equal(t, once, c.Pix, string(kind))
	}
}

func TestGradientDegenerateCanvas(t *testing.T) {
	c := &render.Canvas{RGBA: image.NewRGBA(image.Rectangle{})}
	assert.NotPanics(t, func() {
		Gradient{Spec: GradientSpec{Kind: GradientRadial, Start: blue, End: navy}}.Apply(c)
	})
}

func TestDotsKeepMinimumForeground(t *testing.T) {
	for _, extent := range []int{1, 2, 3, 5, 10} {
		for _, dot := range []DotStyle{DotCircle, DotRounded, DotDots} {
			c := canvasWithExtent(t, extent)
			before := c.Clone()
			Dots{Style: dot}.Apply(c)

			l := c.Layout
			for my := 0; my < l.Modules; my++ {
				for mx := 0; mx < l.Modules; mx++ {
					if !before.ModuleDark(mx, my) {
						continue
					}
					cell := l.Cell(mx, my)
					got := countInk(c, cell)
					assert.GreaterOrEqual(t, got, MinForegroundPixels(extent),
						"style %s extent %d module (%d,%d)", dot, extent, mx, my)
					assert.GreaterOrEqual(t, float64(got), MinForegroundRatio*float64(countInk(before, cell)))
				}
			}
			assert.Equal(t, before.Bounds(), c.Bounds())
		}
	}
}

func TestDotsSmallExtentIsIdentity(t *testing.T) {
	for _, extent := range []int{1, 2} {
		c := canvasWithExtent(t, extent)
		before := append([]uint8(nil), c.Pix...)
		Dots{Style: DotCircle}.Apply(c)
		assert.Equal(t, before, c.Pix)
	}
}

func TestDotsReshapeButSpareFinders(t *testing.T) {
	c := canvasWithExtent(t, 10)
	before := c.Clone()
	Dots{Style: DotCircle}.Apply(c)

	l := c.Layout
	changed := false
	for my := 0; my < l.Modules; my++ {
		for mx := 0; mx < l.Modules; mx++ {
			cell := l.Cell(mx, my)
			if l.InFinder(mx, my) {
				assert.Equal(t, countInk(before, cell), countInk(c, cell), "finder module (%d,%d)", mx, my)
				continue
			}
			if before.ModuleDark(mx, my) {
				// Circle corners are cleared to background.
				assert.Equal(t, white, c.RGBAAt(cell.Min.X, cell.Min.Y))
				assert.Equal(t, before.RGBAAt(cell.Min.X+5, cell.Min.Y+5), c.RGBAAt(cell.Min.X+5, cell.Min.Y+5))
				changed = true
			} else {
				assert.Zero(t, countInk(c, cell))
			}
		}
	}
	assert.True(t, changed)
}

func TestDotsSquareAndDeterminism(t *testing.T) {
	c := canvasWithExtent(t, 6)
	before := append([]uint8(nil), c.Pix...)
	Dots{Style: DotSquare}.Apply(c)
	assert.Equal(t, before, c.Pix)

	a := canvasWithExtent(t, 6)
	b := canvasWithExtent(t, 6)
	Dots{Style: DotRounded}.Apply(a)
	Dots{Style: DotRounded}.Apply(b)
	assert.Equal(t, a.Pix, b.Pix)
}

func TestDotsAfterGradient(t *testing.T) {
	c := canvasWithExtent(t, 10)
	Gradient{Spec: GradientSpec{Kind: GradientLinear, Start: blue, End: navy}}.Apply(c)
	before := c.Clone()
	Dots{Style: DotDots}.Apply(c)
	assert.NotEqual(t, before.Pix, c.Pix)
}

func TestRoundedJoinsNeighbours(t *testing.T) {
	// A horizontal pair of dark modules: the shared edge keeps square corners.
	m := make([][]bool, 21)
	for y := range m {
		m[y] = make([]bool, 21)
	}
	m[10][10], m[10][11] = true, true
	c, err := render.Render(encoder.NewGrid(m, 0), 210, black, white)
	require.NoError(t, err)

	Dots{Style: DotRounded}.Apply(c)
	left, right := c.Layout.Cell(10, 10), c.Layout.Cell(11, 10)

	assert.Equal(t, white, c.RGBAAt(left.Min.X, left.Min.Y), "outer corner rounded")
	assert.Equal(t, black, c.RGBAAt(left.Max.X-1, left.Min.Y), "inner corner kept")
	assert.Equal(t, black, c.RGBAAt(right.Min.X, right.Min.Y), "inner corner kept")
	assert.Equal(t, white, c.RGBAAt(right.Max.X-1, right.Max.Y-1), "outer corner rounded")
}

func TestLogoClearZone(t *testing.T) {
	g := grid(t, 4)
	c, err := render.Render(g, 400, black, white)
	require.NoError(t, err)

	logo := image.NewRGBA(image.Rect(0, 0, 64, 64))
	draw.Draw(logo, logo.Bounds(), &image.Uniform{C: color.RGBA{R: 255, A: 255}}, image.Point{}, draw.Src)

	Logo{Image: logo, Coverage: 0.2}.Apply(c)
	assert.Equal(t, image.Rect(0, 0, 400, 400), c.Bounds())

	region := LogoRegion(400, 0.2)
	assert.Equal(t, image.Rect(160, 160, 240, 240), region)

	zone := region.Inset(-LogoClearMargin)
	assert.Equal(t, 90, zone.Dx())
	assert.Equal(t, 90, zone.Dy())
	assert.Equal(t, 400-zone.Max.X, zone.Min.X, "clear zone is centered")

	// The margin ring is background, the logo fills the region.
	for i := zone.Min.X; i < zone.Max.X; i++ {
		assert.Equal(t, white, c.RGBAAt(i, zone.Min.Y))
		assert.Equal(t, white, c.RGBAAt(i, zone.Max.Y-1))
	}
	assert.True(t, near(color.RGBA{R: 255, A: 255}, c.RGBAAt(200, 200)), "logo drawn at the center")
}

func TestLogoKeepsAspectRatio(t *testing.T) {
	c, err := render.Render(grid(t, 4), 400, black, white)
	require.NoError(t, err)

	wide := image.NewRGBA(image.Rect(0, 0, 200, 100))
	draw.Draw(wide, wide.Bounds(), &image.Uniform{C: navy}, image.Point{}, draw.Src)
	Logo{Image: wide}.Apply(c)

	// 80x40 logo centered in the 80x80 region: rows above it stay background.
	assert.Equal(t, white, c.RGBAAt(200, 165))
	assert.True(t, near(navy, c.RGBAAt(200, 200)))
}

func TestLogoBoundedBySymbol(t *testing.T) {
	// 200 px with a 4 module quiet zone leaves a 150 px symbol.
	c, err := render.Render(grid(t, 4), 200, black, white)
	require.NoError(t, err)
	symbol := c.Layout.Modules * c.Layout.Extent
	require.Equal(t, 150, symbol)

	region := FitLogoRegion(c.Layout, 200, 0.2)
	assert.Equal(t, 35, region.Dx())
	assert.Equal(t, 35, region.Dy())
	assert.LessOrEqual(t, region.Inset(-LogoClearMargin).Dx(), int(MaxLogoCoverage*float64(symbol)))
	center := c.Layout.Origin + symbol/2
	assert.InDelta(t, center, (region.Min.X+region.Max.X)/2, 1)

	// A wide quiet zone leaves no room at all.
	c, err = render.Render(grid(t, 4), 33, black, white)
	require.NoError(t, err)
	assert.True(t, FitLogoRegion(c.Layout, 33, 0.2).Empty())

	before := append([]uint8(nil), c.Pix...)
	Logo{Image: image.NewRGBA(image.Rect(0, 0, 8, 8)), Coverage: 0.2}.Apply(c)
	assert.Equal(t, before, c.Pix)
}

func TestLogoRegionUnchangedOnRoomySymbol(t *testing.T) {
	c, err := render.Render(grid(t, 4), 400, black, white)
	require.NoError(t, err)
	assert.Equal(t, LogoRegion(400, 0.2), FitLogoRegion(c.Layout, 400, 0.2))
}

func near(a, b color.RGBA) bool {
	d := func(x, y uint8) bool { return x-y <= 2 || y-x <= 2 }
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}

func TestLogoNilIsNoop(t *testing.T) {
	c := canvasWithExtent(t, 8)
	before := append([]uint8(nil), c.Pix...)
	Logo{}.Apply(c)
	assert.Equal(t, before, c.Pix)
}

func TestLogoRegionClamp(t *testing.T) {
	assert.Equal(t, LogoRegion(400, DefaultLogoCoverage), LogoRegion(400, 0))
	assert.Equal(t, 120, LogoRegion(400, 0.9).Dx())
	assert.True(t, LogoRegion(3, 0.2).Empty())
}
