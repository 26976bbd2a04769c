// Package style holds the styling options for a QR code and the pipeline of
// stages that apply them to a rendered canvas.
package style

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/cristianadrielbraun/qrstudio/internal/encoder"
)

// DotStyle is the shape dark modules are drawn with.
type DotStyle string

const (
	DotSquare  DotStyle = "square"
	DotCircle  DotStyle = "circle"
	DotRounded DotStyle = "rounded"
	DotDots    DotStyle = "dots"
)

// ParseDotStyle accepts the four dot style names; empty means square.
func ParseDotStyle(s string) (DotStyle, error) {
	switch d := DotStyle(strings.ToLower(strings.TrimSpace(s))); d {
	case "":
		return DotSquare, nil
	case DotSquare, DotCircle, DotRounded, DotDots:
		return d, nil
	}
	return DotSquare, fmt.Errorf("unknown dot style %q", s)
}

// GradientKind selects the gradient geometry.
type GradientKind string

const (
	GradientNone   GradientKind = "none"
	GradientLinear GradientKind = "linear"
	GradientRadial GradientKind = "radial"
)

// ParseGradientKind accepts none, linear or radial; empty means none.
func ParseGradientKind(s string) (GradientKind, error) {
	switch k := GradientKind(strings.ToLower(strings.TrimSpace(s))); k {
	case "":
		return GradientNone, nil
	case GradientNone, GradientLinear, GradientRadial:
		return k, nil
	}
	return GradientNone, fmt.Errorf("unknown gradient type %q", s)
}

// GradientSpec describes a two-stop gradient.
type GradientSpec struct {
	Kind  GradientKind
	Start color.RGBA
	End   color.RGBA
}

// DefaultLogoCoverage is the share of the canvas side a logo may occupy.
const DefaultLogoCoverage = 0.2

// Options is the full set of parameters for one generation. Build it once
// and treat it as immutable afterwards.
type Options struct {
	Foreground   color.RGBA
	Background   color.RGBA
	DotStyle     DotStyle
	Gradient     *GradientSpec
	LogoSource   string
	LogoCoverage float64
	Size         int
	Margin       int
	Level        encoder.Level
}

// DefaultOptions mirrors the plain black-on-white custom generator.
func DefaultOptions() Options {
	return Options{
		Foreground:   color.RGBA{A: 255},
		Background:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
		DotStyle:     DotSquare,
		LogoCoverage: DefaultLogoCoverage,
		Size:         400,
		Margin:       4,
		Level:        encoder.LevelM,
	}
}

// Overlay is a partial Options; nil fields leave the base untouched. A
// Gradient with Kind GradientNone removes any gradient from the base.
type Overlay struct {
	Foreground *color.RGBA
	Background *color.RGBA
	DotStyle   *DotStyle
	Gradient   *GradientSpec
	LogoSource *string
	Size       *int
	Margin     *int
	Level      *encoder.Level
}

// Merge returns base with every field set in o applied. Neither argument is modified.
func Merge(base Options, o Overlay) Options {
	out := base
	if base.Gradient != nil {
		g := *base.Gradient
		out.Gradient = &g
	}

	if o.Foreground != nil {
		out.Foreground = *o.Foreground
	}
	if o.Background != nil {
		out.Background = *o.Background
	}
	if o.DotStyle != nil {
		out.DotStyle = *o.DotStyle
	}
	if o.Gradient != nil {
		if o.Gradient.Kind == GradientNone {
			out.Gradient = nil
		} else {
			g := *o.Gradient
			out.Gradient = &g
		}
	}
	if o.LogoSource != nil {
		out.LogoSource = *o.LogoSource
	}
	if o.Size != nil {
		out.Size = *o.Size
	}
	if o.Margin != nil {
		out.Margin = *o.Margin
	}
	if o.Level != nil {
		out.Level = *o.Level
	}
	return out
}

// Clone returns a copy of o that shares no pointers with it.
func (o Overlay) Clone() Overlay {
	out := Overlay{}
	if o.Foreground != nil {
		out.Foreground = Ptr(*o.Foreground)
	}
	if o.Background != nil {
		out.Background = Ptr(*o.Background)
	}
	if o.DotStyle != nil {
		out.DotStyle = Ptr(*o.DotStyle)
	}
	if o.Gradient != nil {
		out.Gradient = Ptr(*o.Gradient)
	}
	if o.LogoSource != nil {
		out.LogoSource = Ptr(*o.LogoSource)
	}
	if o.Size != nil {
		out.Size = Ptr(*o.Size)
	}
	if o.Margin != nil {
		out.Margin = Ptr(*o.Margin)
	}
	if o.Level != nil {
		out.Level = Ptr(*o.Level)
	}
	return out
}

// Ptr returns a pointer to v, for building overlays inline.
func Ptr[T any](v T) *T { return &v }
