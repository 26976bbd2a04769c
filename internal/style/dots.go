package style

import (
	"math"

	"github.com/cristianadrielbraun/qrstudio/internal/render"
)

const (
	// MinForegroundRatio is the smallest share of a module's square that a
	// reshaped module must keep painted.
	MinForegroundRatio = 0.6

	// MinShapedExtent is the smallest module extent, in pixels, that gets reshaped.
	MinShapedExtent = 3

	roundedRadius = 0.35 // corner radius as a share of the extent
	dotsRadius    = 0.45 // dot radius as a share of the extent
)

// corner bits for rounded modules
const (
	cornerTL = 1 << iota
	cornerTR
	cornerBL
	cornerBR
)

// Dots reshapes each dark module's square block. Finder patterns are left
// square, as is every module whose extent is too small or whose shape would
// drop below MinForegroundRatio.
type Dots struct {
	Style DotStyle
}

func (d Dots) Name() string { return "dots:" + string(d.Style) }

func (d Dots) Apply(c *render.Canvas) {
	l := c.Layout
	if d.Style == DotSquare || d.Style == "" || l.Extent < MinShapedExtent {
		return
	}

	masks := make(map[int][]bool)
	for my := 0; my < l.Modules; my++ {
		for mx := 0; mx < l.Modules; mx++ {
			if !c.ModuleDark(mx, my) || l.InFinder(mx, my) {
				continue
			}

			key := d.corners(c, mx, my)
			mask, ok := masks[key]
			if !ok {
				mask = d.mask(l.Extent, key)
				masks[key] = mask
			}
			if mask == nil {
				continue
			}

			cell := l.Cell(mx, my)
			for j := 0; j < l.Extent; j++ {
				for i := 0; i < l.Extent; i++ {
					if !mask[j*l.Extent+i] {
						c.SetRGBA(cell.Min.X+i, cell.Min.Y+j, c.Background)
					}
				}
			}
		}
	}
}

// corners returns which corners of module (mx, my) may be rounded. Only the
// rounded style looks at neighbours: a corner stays square when either
// module sharing its edges is dark, so adjacent modules join up.
func (d Dots) corners(c *render.Canvas, mx, my int) int {
	all := cornerTL | cornerTR | cornerBL | cornerBR
	if d.Style != DotRounded {
		return all
	}
	left, right := c.ModuleDark(mx-1, my), c.ModuleDark(mx+1, my)
	up, down := c.ModuleDark(mx, my-1), c.ModuleDark(mx, my+1)

	key := 0
	if !left && !up {
		key |= cornerTL
	}
	if !right && !up {
		key |= cornerTR
	}
	if !left && !down {
		key |= cornerBL
	}
	if !right && !down {
		key |= cornerBR
	}
	return key
}

// mask returns an extent*extent coverage mask, or nil when the module should
// stay square.
func (d Dots) mask(extent, corners int) []bool {
	s := float64(extent)
	var inside func(px, py float64) bool

	switch d.Style {
	case DotCircle, DotDots:
		r := s / 2
		if d.Style == DotDots {
			r = s * dotsRadius
		}
		inside = func(px, py float64) bool {
			dx, dy := px-s/2, py-s/2
			return dx*dx+dy*dy <= r*r
		}
	case DotRounded:
		if corners == 0 {
			return nil
		}
		r := s * roundedRadius
		inside = func(px, py float64) bool {
			cx, cy := -1.0, -1.0
			switch {
			case px < r && py < r && corners&cornerTL != 0:
				cx, cy = r, r
			case px > s-r && py < r && corners&cornerTR != 0:
				cx, cy = s-r, r
			case px < r && py > s-r && corners&cornerBL != 0:
				cx, cy = r, s-r
			case px > s-r && py > s-r && corners&cornerBR != 0:
				cx, cy = s-r, s-r
			default:
				return true
			}
			dx, dy := px-cx, py-cy
			return dx*dx+dy*dy <= r*r
		}
	default:
		return nil
	}

	mask := make([]bool, extent*extent)
	kept := 0
	for j := 0; j < extent; j++ {
		for i := 0; i < extent; i++ {
			if inside(float64(i)+0.5, float64(j)+0.5) {
				mask[j*extent+i] = true
				kept++
			}
		}
	}
	if kept < MinForegroundPixels(extent) {
		return nil
	}
	return mask
}

// MinForegroundPixels is the pixel count a module of the given extent must keep.
func MinForegroundPixels(extent int) int {
	return int(math.Ceil(MinForegroundRatio * float64(extent*extent)))
}
