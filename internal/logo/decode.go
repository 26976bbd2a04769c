package logo

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

const (
	// maxSVGSide bounds the raster size an SVG logo is drawn at.
	maxSVGSide = 512
	// MaxLogoSide bounds the decoded width and height of raster logos. The
	// byte limit alone does not stop a small file from declaring a huge image.
	MaxLogoSide = 4096
)

// Decode turns raw logo bytes into an image. Raster formats go through the
// registered image decoders; SVG documents are rasterized.
func Decode(data []byte) (image.Image, error) {
	if isSVG(data) {
		return decodeSVG(data)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	if cfg.Width > MaxLogoSide || cfg.Height > MaxLogoSide {
		return nil, fmt.Errorf("%w: %dx%d pixels, the limit is %dx%d", ErrTooLarge, cfg.Width, cfg.Height, MaxLogoSide, MaxLogoSide)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

func isSVG(data []byte) bool {
	head := data
	if len(head) > 1024 {
		head = head[:1024]
	}
	head = bytes.ToLower(bytes.TrimSpace(head))
	return bytes.Contains(head, []byte("<svg"))
}

func decodeSVG(data []byte) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}

	w, h := icon.ViewBox.W, icon.ViewBox.H
	if w <= 0 || h <= 0 {
		w, h = maxSVGSide, maxSVGSide
	}
	scale := maxSVGSide / max(w, h)
	iw, ih := int(w*scale), int(h*scale)
	if iw < 1 || ih < 1 {
		return nil, fmt.Errorf("svg has an empty view box")
	}

	icon.SetTarget(0, 0, float64(iw), float64(ih))
	img := image.NewRGBA(image.Rect(0, 0, iw, ih))
	scanner := rasterx.NewScannerGV(iw, ih, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(iw, ih, scanner), 1)
	return img, nil
}
