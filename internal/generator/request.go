package generator

import (
	"strings"
	"unicode/utf8"

	"github.com/cristianadrielbraun/qrstudio/internal/encoder"
	"github.com/cristianadrielbraun/qrstudio/internal/preset"
	"github.com/cristianadrielbraun/qrstudio/internal/render"
	"github.com/cristianadrielbraun/qrstudio/internal/style"
)

const (
	MaxTextLength = 2000
	MinSize       = 200
	MaxSize       = 800
	MaxMargin     = 10

	QuickSize   = 300
	QuickMargin = 4

	FormatPNG = "png"
	FormatJPG = "jpg"
)

// DefaultGradientColors are used when a gradient type is given without colors.
var DefaultGradientColors = []string{"#667eea", "#764ba2"}

// Request is a custom generation request. Empty fields keep the preset or
// default value.
type Request struct {
	Text                 string   `json:"text" form:"text"`
	Size                 int      `json:"size,omitempty" form:"size"`
	Margin               *int     `json:"margin,omitempty" form:"margin"`
	ForegroundColor      string   `json:"foregroundColor,omitempty" form:"fg"`
	BackgroundColor      string   `json:"backgroundColor,omitempty" form:"bg"`
	DotStyle             string   `json:"dotStyle,omitempty" form:"dotStyle"`
	GradientType         string   `json:"gradientType,omitempty" form:"gradientType"`
	GradientColors       []string `json:"gradientColors,omitempty" form:"gradientColors"`
	LogoURL              string   `json:"logoUrl,omitempty" form:"logoUrl"`
	ErrorCorrectionLevel string   `json:"errorCorrectionLevel,omitempty" form:"ec"`
	Preset               string   `json:"preset,omitempty" form:"preset"`
	Format               string   `json:"format,omitempty" form:"format"`
	Verify               bool     `json:"verify,omitempty" form:"verify"`
}

// plan is a validated request: the text, the resolved options and the
// output format.
type plan struct {
	text          string
	opts          style.Options
	format        string
	preset        string
	levelUpgraded bool
}

func validateText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", invalid("text is required")
	}
	if n := utf8.RuneCountInString(text); n > MaxTextLength {
		return "", invalid("text is %d characters, the limit is %d", n, MaxTextLength)
	}
	return text, nil
}

func parseFormat(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPG, nil
	}
	return "", invalid("unsupported format %q", s)
}

// resolve applies defaults, then the preset, then the explicit request
// fields, then the error-correction rule for logos. The options are final
// once it returns.
func resolve(req Request, base style.Options) (plan, error) {
	text, err := validateText(req.Text)
	if err != nil {
		return plan{}, err
	}
	format, err := parseFormat(req.Format)
	if err != nil {
		return plan{}, err
	}

	opts := base
	presetID := strings.TrimSpace(req.Preset)
	if presetID != "" {
		p, ok := preset.Get(presetID)
		if !ok {
			return plan{}, invalid("unknown preset %q", presetID)
		}
		opts = style.Merge(opts, p.Overlay)
	}

	overlay, err := requestOverlay(req)
	if err != nil {
		return plan{}, err
	}
	opts = style.Merge(opts, overlay)

	if opts.Size < MinSize || opts.Size > MaxSize {
		return plan{}, invalid("size must be between %d and %d, got %d", MinSize, MaxSize, opts.Size)
	}
	if opts.Margin < 0 || opts.Margin > MaxMargin {
		return plan{}, invalid("margin must be between 0 and %d, got %d", MaxMargin, opts.Margin)
	}

	upgraded := false
	if opts.LogoSource != "" && opts.Level != encoder.LevelH {
		upgraded = overlay.Level != nil
		opts.Level = encoder.LevelH
	}

	return plan{text: text, opts: opts, format: format, preset: presetID, levelUpgraded: upgraded}, nil
}

func requestOverlay(req Request) (style.Overlay, error) {
	var o style.Overlay

	if req.Size != 0 {
		o.Size = style.Ptr(req.Size)
	}
	if req.Margin != nil {
		o.Margin = style.Ptr(*req.Margin)
	}
	if s := strings.TrimSpace(req.ForegroundColor); s != "" {
		c, err := render.ParseHex(s)
		if err != nil || c.A == 0 {
			return o, invalid("invalid foreground color %q", s)
		}
		o.Foreground = &c
	}
	if s := strings.TrimSpace(req.BackgroundColor); s != "" {
		c, err := render.ParseHex(s)
		if err != nil {
			return o, invalid("invalid background color %q", s)
		}
		o.Background = &c
	}
	if s := strings.TrimSpace(req.DotStyle); s != "" {
		d, err := style.ParseDotStyle(s)
		if err != nil {
			return o, invalid("%v", err)
		}
		o.DotStyle = &d
	}
	if s := strings.TrimSpace(req.GradientType); s != "" {
		g, err := requestGradient(s, req.GradientColors)
		if err != nil {
			return o, err
		}
		o.Gradient = g
	}
	if s := strings.TrimSpace(req.LogoURL); s != "" {
		o.LogoSource = &s
	}
	if s := strings.TrimSpace(req.ErrorCorrectionLevel); s != "" {
		l, err := encoder.ParseLevel(s)
		if err != nil {
			return o, invalid("%v", err)
		}
		o.Level = &l
	}
	return o, nil
}

func requestGradient(kind string, colors []string) (*style.GradientSpec, error) {
	k, err := style.ParseGradientKind(kind)
	if err != nil {
		return nil, invalid("%v", err)
	}
	if k == style.GradientNone {
		return &style.GradientSpec{Kind: style.GradientNone}, nil
	}

	// Query strings may carry both colors in one comma-separated value.
	if len(colors) == 1 && strings.Contains(colors[0], ",") {
		colors = strings.Split(colors[0], ",")
	}
	if len(colors) == 0 {
		colors = DefaultGradientColors
	}
	if len(colors) != 2 {
		return nil, invalid("a gradient needs exactly two colors, got %d", len(colors))
	}

	start, err := render.ParseHex(colors[0])
	if err != nil {
		return nil, invalid("invalid gradient color %q", colors[0])
	}
	end, err := render.ParseHex(colors[1])
	if err != nil {
		return nil, invalid("invalid gradient color %q", colors[1])
	}
	return &style.GradientSpec{Kind: k, Start: start, End: end}, nil
}
