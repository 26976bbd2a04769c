package pages

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianadrielbraun/qrstudio/web/components"
)

func TestHomePage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HomePage(components.NewHomeData()).Render(context.Background(), &buf))

	html := buf.String()
	assert.Contains(t, html, `<option value="modern">Modern Blue</option>`)
	assert.Contains(t, html, `value="rounded"`)
	assert.Contains(t, html, `data-example="https://www.example.com"`)
	assert.Contains(t, html, `data-debounce="300"`)
	assert.Contains(t, html, `min="200" max="800"`)
}
