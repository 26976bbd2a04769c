package style

import (
	"image"

	"github.com/cristianadrielbraun/qrstudio/internal/render"
)

// Stage is one styling step. Apply owns the canvas for its duration and
// must not change its dimensions.
type Stage interface {
	Name() string
	Apply(c *render.Canvas)
}

// Pipeline is an ordered list of stages.
type Pipeline []Stage

// Build returns the stages opts asks for in their fixed order: gradient,
// dot shape, logo. Absent stages are left out; a nil logo skips the overlay.
func Build(opts Options, logo image.Image) Pipeline {
	var p Pipeline
	if opts.Gradient != nil && opts.Gradient.Kind != GradientNone {
		p = append(p, Gradient{Spec: *opts.Gradient})
	}
	if opts.DotStyle != "" && opts.DotStyle != DotSquare {
		p = append(p, Dots{Style: opts.DotStyle})
	}
	if logo != nil {
		p = append(p, Logo{Image: logo, Coverage: opts.LogoCoverage})
	}
	return p
}

// Run applies every stage to c in order.
func (p Pipeline) Run(c *render.Canvas) {
	for _, s := range p {
		s.Apply(c)
	}
}

// Names lists the stage names, for logging.
func (p Pipeline) Names() []string {
	names := make([]string, len(p))
	for i, s := range p {
		names[i] = s.Name()
	}
	return names
}
