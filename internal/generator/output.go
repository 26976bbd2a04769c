package generator

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
)

const jpegQuality = 92

// encodeImage writes img as PNG or JPEG. JPEG has no alpha, so the image is
// composited onto the background color, or white when that is transparent.
func encodeImage(img image.Image, format string, bg color.RGBA) ([]byte, string, error) {
	var buf bytes.Buffer
	if format == FormatJPG {
		opaque := color.RGBA{R: bg.R, G: bg.G, B: bg.B, A: 255}
		if bg.A == 0 {
			opaque = color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		b := img.Bounds()
		out := image.NewRGBA(b)
		draw.Draw(out, b, &image.Uniform{C: opaque}, image.Point{}, draw.Src)
		draw.Draw(out, b, img, b.Min, draw.Over)

		if err := jpeg.Encode(&buf, out, &jpeg.Options{Quality: jpegQuality}); err != nil {
			return nil, "", fmt.Errorf("encode jpeg: %w", err)
		}
		return buf.Bytes(), "image/jpeg", nil
	}

	if err := png.Encode(&buf, img); err != nil {
		return nil, "", fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), "image/png", nil
}
