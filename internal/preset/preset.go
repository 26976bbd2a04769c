// Package preset is the static catalog of style presets and dot styles.
package preset

import (
	"image/color"

	"github.com/cristianadrielbraun/qrstudio/internal/style"
)

// Preset is a named partial style.
type Preset struct {
	ID          string
	Name        string
	Description string
	Overlay     style.Overlay
}

// DotStyleInfo describes a selectable dot style.
type DotStyleInfo struct {
	ID          style.DotStyle `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
}

func rgb(hex uint32) color.RGBA {
	return color.RGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 255}
}

func bundle(fg, bg uint32, dot style.DotStyle, kind style.GradientKind, from, to uint32) style.Overlay {
	return style.Overlay{
		Foreground: style.Ptr(rgb(fg)),
		Background: style.Ptr(rgb(bg)),
		DotStyle:   style.Ptr(dot),
		Gradient:   &style.GradientSpec{Kind: kind, Start: rgb(from), End: rgb(to)},
	}
}

var presets = []Preset{
	{
		ID: "default", Name: "Classic", Description: "Traditional black and white",
		Overlay: style.Overlay{
			Foreground: style.Ptr(rgb(0x000000)),
			Background: style.Ptr(rgb(0xffffff)),
			DotStyle:   style.Ptr(style.DotSquare),
			Gradient:   &style.GradientSpec{Kind: style.GradientNone},
		},
	},
	{
		ID: "modern", Name: "Modern Blue", Description: "Clean blue gradient",
		Overlay: bundle(0x1e40af, 0xf8fafc, style.DotRounded, style.GradientLinear, 0x3b82f6, 0x1e40af),
	},
	{
		ID: "sunset", Name: "Sunset", Description: "Warm gradient colors",
		Overlay: bundle(0xdc2626, 0xfef2f2, style.DotCircle, style.GradientRadial, 0xf59e0b, 0xdc2626),
	},
	{
		ID: "nature", Name: "Nature", Description: "Earth tone colors",
		Overlay: bundle(0x166534, 0xf0fdf4, style.DotRounded, style.GradientLinear, 0x22c55e, 0x166534),
	},
	{
		ID: "purple", Name: "Purple Magic", Description: "Mystical purple gradient",
		Overlay: bundle(0x7c3aed, 0xfaf5ff, style.DotCircle, style.GradientRadial, 0xa855f7, 0x7c3aed),
	},
	{
		ID: "monochrome", Name: "Monochrome", Description: "Subtle gray tones",
		Overlay: bundle(0x374151, 0xf9fafb, style.DotSquare, style.GradientLinear, 0x6b7280, 0x374151),
	},
}

var dotStyles = []DotStyleInfo{
	{ID: style.DotSquare, Name: "Square", Description: "Classic square dots"},
	{ID: style.DotCircle, Name: "Circle", Description: "Rounded circular dots"},
	{ID: style.DotRounded, Name: "Rounded", Description: "Square dots with rounded corners"},
	{ID: style.DotDots, Name: "Dots", Description: "Small circular dots"},
}

// List returns the presets in display order. The result is the caller's to
// modify; the catalog itself never changes.
func List() []Preset {
	out := make([]Preset, len(presets))
	for i, p := range presets {
		out[i] = p.clone()
	}
	return out
}

// Get looks a preset up by id.
func Get(id string) (Preset, bool) {
	for _, p := range presets {
		if p.ID == id {
			return p.clone(), true
		}
	}
	return Preset{}, false
}

func (p Preset) clone() Preset {
	p.Overlay = p.Overlay.Clone()
	return p
}

// DotStyles returns the dot style catalog.
func DotStyles() []DotStyleInfo {
	return append([]DotStyleInfo(nil), dotStyles...)
}
