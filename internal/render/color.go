package render

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// DarkThreshold is the 0-255 average RGB value below which a pixel counts as dark.
const DarkThreshold = 128

// ParseHex parses "#rrggbb", "#rgb" (leading # optional) or "transparent".
func ParseHex(s string) (color.RGBA, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "transparent" {
		return color.RGBA{}, nil
	}
	v = strings.TrimPrefix(v, "#")
	if len(v) == 3 {
		v = string([]byte{v[0], v[0], v[1], v[1], v[2], v[2]})
	}
	if len(v) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}

	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	return color.RGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 255}, nil
}

// Hex formats c as "#rrggbb", or "transparent" for a fully transparent color.
func Hex(c color.RGBA) string {
	if c.A == 0 {
		return "transparent"
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// IsDark reports whether c is a visible pixel whose average RGB is below DarkThreshold.
func IsDark(c color.RGBA) bool {
	if c.A == 0 {
		return false
	}
	return (int(c.R)+int(c.G)+int(c.B))/3 < DarkThreshold
}

// Lerp interpolates each component between a (t=0) and b (t=1). t is clamped.
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	t = Clamp01(t)
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + t*(float64(y)-float64(x))))
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// Clamp01 limits t to [0, 1]; NaN becomes 0.
func Clamp01(t float64) float64 {
	if t > 1 {
		return 1
	}
	if t >= 0 {
		return t
	}
	return 0
}
