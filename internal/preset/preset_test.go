package preset

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianadrielbraun/qrstudio/internal/style"
)

func TestGetModern(t *testing.T) {
	p, ok := Get("modern")
	require.True(t, ok)
	assert.Equal(t, "Modern Blue", p.Name)
	require.NotNil(t, p.Overlay.DotStyle)
	assert.Equal(t, style.DotRounded, *p.Overlay.DotStyle)
	require.NotNil(t, p.Overlay.Gradient)
	assert.Equal(t, style.GradientLinear, p.Overlay.Gradient.Kind)
}

func TestGetMissing(t *testing.T) {
	p, ok := Get("nonexistent")
	assert.False(t, ok)
	assert.Empty(t, p.ID)
}

func TestListOrder(t *testing.T) {
	var ids []string
	for _, p := range List() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"default", "modern", "sunset", "nature", "purple", "monochrome"}, ids)

	l := List()
	l[0].ID = "changed"
	p, ok := Get("default")
	require.True(t, ok)
	assert.Equal(t, "default", p.ID)
}

func TestDefaultPresetClearsGradient(t *testing.T) {
	base := style.DefaultOptions()
	base.Gradient = &style.GradientSpec{Kind: style.GradientRadial}

	p, _ := Get("default")
	out := style.Merge(base, p.Overlay)
	assert.Nil(t, out.Gradient)
	assert.Equal(t, style.DotSquare, out.DotStyle)
}

func TestDotStyles(t *testing.T) {
	ds := DotStyles()
	require.Len(t, ds, 4)
	for _, d := range ds {
		_, err := style.ParseDotStyle(string(d.ID))
		assert.NoError(t, err)
	}
}

func TestCatalogIsImmutable(t *testing.T) {
	p, ok := Get("modern")
	require.True(t, ok)
	*p.Overlay.Foreground = color.RGBA{R: 255, A: 255}
	p.Overlay.Gradient.Kind = style.GradientRadial
	*p.Overlay.DotStyle = style.DotDots

	list := List()
	*list[1].Overlay.Background = color.RGBA{}

	again, _ := Get("modern")
	assert.Equal(t, color.RGBA{R: 0x1e, G: 0x40, B: 0xaf, A: 255}, *again.Overlay.Foreground)
	assert.Equal(t, color.RGBA{R: 0xf8, G: 0xfa, B: 0xfc, A: 255}, *again.Overlay.Background)
	assert.Equal(t, style.GradientLinear, again.Overlay.Gradient.Kind)
	assert.Equal(t, style.DotRounded, *again.Overlay.DotStyle)
}
