package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/qrstudio/internal/generator"
	"github.com/cristianadrielbraun/qrstudio/internal/preset"
	"github.com/cristianadrielbraun/qrstudio/internal/render"
	"github.com/cristianadrielbraun/qrstudio/internal/style"
)

// presetView is the JSON form of a preset, with colors as hex strings.
type presetView struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	ForegroundColor string   `json:"foregroundColor,omitempty"`
	BackgroundColor string   `json:"backgroundColor,omitempty"`
	DotStyle        string   `json:"dotStyle,omitempty"`
	GradientType    string   `json:"gradientType,omitempty"`
	GradientColors  []string `json:"gradientColors,omitempty"`
}

func viewPreset(p preset.Preset) presetView {
	v := presetView{ID: p.ID, Name: p.Name, Description: p.Description}
	o := p.Overlay
	if o.Foreground != nil {
		v.ForegroundColor = render.Hex(*o.Foreground)
	}
	if o.Background != nil {
		v.BackgroundColor = render.Hex(*o.Background)
	}
	if o.DotStyle != nil {
		v.DotStyle = string(*o.DotStyle)
	}
	if g := o.Gradient; g != nil {
		v.GradientType = string(g.Kind)
		if g.Kind != style.GradientNone {
			v.GradientColors = []string{render.Hex(g.Start), render.Hex(g.End)}
		}
	}
	return v
}

func (h *Handler) Presets(c *gin.Context) {
	list := preset.List()
	views := make([]presetView, len(list))
	for i, p := range list {
		views[i] = viewPreset(p)
	}
	c.JSON(http.StatusOK, views)
}

func (h *Handler) Preset(c *gin.Context) {
	p, ok := preset.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "preset not found"})
		return
	}
	c.JSON(http.StatusOK, viewPreset(p))
}

func (h *Handler) DotStyles(c *gin.Context) {
	c.JSON(http.StatusOK, preset.DotStyles())
}

func (h *Handler) Examples(c *gin.Context) {
	c.JSON(http.StatusOK, generator.QuickExamples())
}

// Info classifies ?text= as URL, Email, Phone or Text.
func (h *Handler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, generator.Classify(c.Query("text")))
}
