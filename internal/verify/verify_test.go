package verify

import (
	"image"
	"image/color"
	"testing"

	"github.com/makiuchi-d/gozxing"
	zxqr "github.com/makiuchi-d/gozxing/qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// zxingImage renders text with gozxing's own writer so the decoder is
// tested independently of the rest of the module.
func zxingImage(t *testing.T, text string, size int) image.Image {
	t.Helper()
	bm, err := zxqr.NewQRCodeWriter().Encode(text, gozxing.BarcodeFormat_QR_CODE, size, size, nil)
	require.NoError(t, err)

	img := image.NewRGBA(image.Rect(0, 0, bm.GetWidth(), bm.GetHeight()))
	for y := 0; y < bm.GetHeight(); y++ {
		for x := 0; x < bm.GetWidth(); x++ {
			if bm.Get(x, y) {
				img.Set(x, y, color.Black)
			} else {
				img.Set(x, y, color.White)
			}
		}
	}
	return img
}

func TestDecode(t *testing.T) {
	for _, text := range []string{"https://example.com", "hello world", "mailto:user@example.com"} {
		got, err := Decode(zxingImage(t, text, 300))
		require.NoError(t, err, text)
		assert.Equal(t, text, got)
		assert.True(t, Matches(zxingImage(t, text, 300), text))
	}
}

func TestDecodeBlank(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 200, 200))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	_, err := Decode(img)
	assert.ErrorIs(t, err, ErrUnreadable)
	assert.False(t, Matches(img, "anything"))
}

func TestFlattenTransparent(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(1, 0, color.RGBA{A: 255})

	flat := flatten(img)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, flat.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{A: 255}, flat.RGBAAt(1, 0))
}
