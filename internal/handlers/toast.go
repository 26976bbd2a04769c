package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/qrstudio/web/components/ui/toast"
)

type toastForm struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	Variant     string `form:"variant"`
	Dismissible string `form:"dismissible"`
}

// GenericToast renders a toast fragment for HTMX to append to the page.
func (h *Handler) GenericToast(c *gin.Context) {
	var f toastForm
	if err := c.ShouldBind(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)

	err := toast.Toast(toast.Props{
		Title:       f.Title,
		Description: f.Description,
		Variant:     toast.ParseVariant(f.Variant),
		Position:    toast.PositionBottomRight,
		Duration:    2000,
		Dismissible: f.Dismissible == "on",
		Icon:        true,
	}).Render(c.Request.Context(), c.Writer)
	if err != nil {
		h.log.Warnw("render toast", "error", err)
	}
}
