// Package verify decodes rendered QR codes to check they still scan.
package verify

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

var ErrUnreadable = errors.New("no QR code found")

// Decode returns the text encoded in img. Transparent areas are read as
// white, the way a printed code would be.
func Decode(img image.Image) (string, error) {
	flat := flatten(img)
	src := gozxing.NewLuminanceSourceFromImage(flat)
	hints := map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_TRY_HARDER: true,
	}

	binarizers := []gozxing.Binarizer{
		gozxing.NewHybridBinarizer(src),
		gozxing.NewGlobalHistgramBinarizer(src),
	}
	var lastErr error
	for _, b := range binarizers {
		bmp, err := gozxing.NewBinaryBitmap(b)
		if err != nil {
			lastErr = err
			continue
		}
		result, err := qrcode.NewQRCodeReader().Decode(bmp, hints)
		if err == nil {
			return result.GetText(), nil
		}
		lastErr = err
	}
	return "", fmt.Errorf("%w: %v", ErrUnreadable, lastErr)
}

// Matches reports whether img decodes to exactly text.
func Matches(img image.Image, text string) bool {
	got, err := Decode(img)
	return err == nil && got == text
}

func flatten(img image.Image) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(b)
	draw.Draw(out, b, &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	draw.Draw(out, b, img, b.Min, draw.Over)
	return out
}
