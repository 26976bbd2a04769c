// Package generator validates generation requests, runs the encoder,
// renderer and style pipeline, and encodes the final image.
package generator

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/cristianadrielbraun/qrstudio/internal/encoder"
	"github.com/cristianadrielbraun/qrstudio/internal/logger"
	"github.com/cristianadrielbraun/qrstudio/internal/logo"
	"github.com/cristianadrielbraun/qrstudio/internal/render"
	"github.com/cristianadrielbraun/qrstudio/internal/style"
	"github.com/cristianadrielbraun/qrstudio/internal/verify"
)

// LogoLoader resolves a logo source. *logo.Loader satisfies it.
type LogoLoader interface {
	Load(ctx context.Context, source string) logo.Result
}

// Config wires a Service.
type Config struct {
	Encoder      encoder.Encoder
	Logos        LogoLoader
	LogoCoverage float64
	// Verify decodes every result; requests may also ask for it individually.
	Verify      bool
	MaxSessions int
}

type Service struct {
	enc      encoder.Encoder
	logos    LogoLoader
	coverage float64
	verify   bool
	previews *Previewer
	log      *logger.Logger
}

func NewService(cfg Config) *Service {
	if cfg.Encoder == nil {
		cfg.Encoder = encoder.Yeqown{}
	}
	if cfg.LogoCoverage <= 0 {
		cfg.LogoCoverage = style.DefaultLogoCoverage
	}
	return &Service{
		enc:      cfg.Encoder,
		logos:    cfg.Logos,
		coverage: cfg.LogoCoverage,
		verify:   cfg.Verify,
		previews: NewPreviewer(cfg.MaxSessions),
		log:      logger.Named("generator"),
	}
}

// Previews exposes the preview sequencer.
func (s *Service) Previews() *Previewer { return s.previews }

// Quick renders plain black-on-white PNG: size 300, margin 4, level M.
func (s *Service) Quick(ctx context.Context, text string) (*Result, error) {
	text, err := validateText(text)
	if err != nil {
		return nil, err
	}
	opts := style.DefaultOptions()
	opts.Size = QuickSize
	opts.Margin = QuickMargin
	opts.Level = encoder.LevelM

	return s.generate(ctx, plan{text: text, opts: opts, format: FormatPNG}, false)
}

// Custom runs the full style pipeline for req.
func (s *Service) Custom(ctx context.Context, req Request) (*Result, error) {
	p, err := resolve(req, s.baseOptions())
	if err != nil {
		return nil, err
	}
	if p.levelUpgraded {
		s.log.Infow("error correction raised to H for logo", "requested", req.ErrorCorrectionLevel)
	}
	return s.generate(ctx, p, req.Verify)
}

func (s *Service) baseOptions() style.Options {
	opts := style.DefaultOptions()
	opts.LogoCoverage = s.coverage
	return opts
}

func (s *Service) generate(ctx context.Context, p plan, verifyResult bool) (*Result, error) {
	opts := p.opts

	grid, err := s.enc.Encode(p.text, opts.Level, opts.Margin)
	if err != nil {
		return nil, err
	}
	canvas, err := render.Render(grid, opts.Size, opts.Foreground, opts.Background)
	if err != nil {
		if errors.Is(err, render.ErrInvalidSize) {
			return nil, fmt.Errorf("%w: raise the size or reduce the margin", err)
		}
		return nil, err
	}

	res := &Result{Text: p.text, Size: opts.Size, Options: echo(p)}

	var logoImg image.Image
	if opts.LogoSource != "" {
		loaded := s.loadLogo(ctx, opts.LogoSource)
		switch {
		case !loaded.OK():
			res.LogoSkipped = true
			res.LogoError = loaded.Err.Error()
			s.log.Warnw("logo skipped", "error", loaded.Err)
		case style.FitLogoRegion(canvas.Layout, opts.Size, opts.LogoCoverage).Empty():
			res.LogoSkipped = true
			res.LogoError = "symbol too small for a logo"
			s.log.Warnw("logo skipped", "size", opts.Size, "modules", grid.Size())
		default:
			logoImg = loaded.Image
		}
	}

	pipeline := style.Build(opts, logoImg)
	s.log.Debugw("running style pipeline", "stages", pipeline.Names(), "modules", grid.Size(), "extent", canvas.Layout.Extent)
	pipeline.Run(canvas)

	res.Image, res.ContentType, err = encodeImage(canvas.RGBA, p.format, opts.Background)
	if err != nil {
		return nil, err
	}

	if verifyResult || s.verify {
		ok := verify.Matches(canvas.RGBA, p.text)
		res.Scannable = &ok
		if !ok {
			s.log.Warnw("generated code did not decode", "dotStyle", opts.DotStyle, "size", opts.Size)
		}
	}
	return res, nil
}

func (s *Service) loadLogo(ctx context.Context, source string) logo.Result {
	if s.logos == nil {
		return logo.Failed(errors.New("logo loading is not configured"))
	}
	return s.logos.Load(ctx, source)
}
