package generator

import (
	"encoding/base64"
	"unicode/utf8"

	"github.com/cristianadrielbraun/qrstudio/internal/render"
	"github.com/cristianadrielbraun/qrstudio/internal/style"
)

// Result is a generated code together with the options that produced it.
type Result struct {
	Image       []byte `json:"-"`
	ContentType string `json:"contentType"`
	Text        string `json:"text"`
	Size        int    `json:"size"`
	Options     Echo   `json:"options"`
	LogoSkipped bool   `json:"logoSkipped,omitempty"`
	LogoError   string `json:"logoError,omitempty"`
	Scannable   *bool  `json:"scannable,omitempty"`
	Sequence    uint64 `json:"sequence,omitempty"`
	RequestID   string `json:"requestId,omitempty"`
}

// DataURL embeds the image in a data: URL, ready for an <img> tag.
func (r *Result) DataURL() string {
	return "data:" + r.ContentType + ";base64," + base64.StdEncoding.EncodeToString(r.Image)
}

// Echo reports the effective options in request vocabulary.
type Echo struct {
	ForegroundColor      string   `json:"foregroundColor"`
	BackgroundColor      string   `json:"backgroundColor"`
	DotStyle             string   `json:"dotStyle"`
	GradientType         string   `json:"gradientType"`
	GradientColors       []string `json:"gradientColors,omitempty"`
	LogoURL              string   `json:"logoUrl,omitempty"`
	Margin               int      `json:"margin"`
	ErrorCorrectionLevel string   `json:"errorCorrectionLevel"`
	Preset               string   `json:"preset,omitempty"`
	Format               string   `json:"format"`
}

func echo(p plan) Echo {
	e := Echo{
		ForegroundColor:      render.Hex(p.opts.Foreground),
		BackgroundColor:      render.Hex(p.opts.Background),
		DotStyle:             string(p.opts.DotStyle),
		GradientType:         string(style.GradientNone),
		Margin:               p.opts.Margin,
		ErrorCorrectionLevel: p.opts.Level.String(),
		Preset:               p.preset,
		Format:               p.format,
	}
	if g := p.opts.Gradient; g != nil {
		e.GradientType = string(g.Kind)
		e.GradientColors = []string{render.Hex(g.Start), render.Hex(g.End)}
	}
	e.LogoURL = truncate(p.opts.LogoSource, maxEchoedLogoURL)
	return e
}

// maxEchoedLogoURL keeps data URIs from bloating the echo.
const maxEchoedLogoURL = 256

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
