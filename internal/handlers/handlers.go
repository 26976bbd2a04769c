package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/qrstudio/internal/generator"
	"github.com/cristianadrielbraun/qrstudio/internal/logger"
	"github.com/cristianadrielbraun/qrstudio/web/components"
	"github.com/cristianadrielbraun/qrstudio/web/pages"
)

// Handler holds the dependencies of the HTTP handlers.
type Handler struct {
	gen  *generator.Service
	home components.HomeData
	log  *logger.Logger
}

// New returns a Handler serving codes from gen.
func New(gen *generator.Service) *Handler {
	return &Handler{gen: gen, home: components.NewHomeData(), log: logger.Named("http")}
}

// Router builds the gin engine with every route registered.
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(h.log))
	r.Use(gin.Recovery())

	r.GET("/", h.Home)
	r.GET("/healthz", h.Health)
	r.GET("/sitemap.xml", h.SitemapXML)

	api := r.Group("/api")
	{
		api.GET("/qr", h.QRCodeHandler)
		api.GET("/qr/quick", h.Quick)
		api.POST("/qr/custom", h.Custom)
		api.POST("/qr/preview", h.Preview)

		api.GET("/presets", h.Presets)
		api.GET("/presets/:id", h.Preset)
		api.GET("/dot-styles", h.DotStyles)
		api.GET("/examples", h.Examples)
		api.GET("/info", h.Info)

		api.POST("/htmx/toast", h.GenericToast)
	}
	return r
}

func (h *Handler) Home(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := pages.HomePage(h.home).Render(c.Request.Context(), c.Writer); err != nil {
		h.log.Errorw("render home page", "error", err)
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// SitemapXML serves a minimal sitemap for the site.
func (h *Handler) SitemapXML(c *gin.Context) {
	c.Header("Content-Type", "application/xml; charset=utf-8")
	scheme := "https"
	if xf := c.Request.Header.Get("X-Forwarded-Proto"); xf != "" {
		scheme = xf
	} else if c.Request.TLS == nil {
		scheme = "http"
	}
	base := scheme + "://" + c.Request.Host
	xml := "" +
		"<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n" +
		"<urlset xmlns=\"http://www.sitemaps.org/schemas/sitemap/0.9\">\n" +
		"  <url>\n" +
		"    <loc>" + base + "/" + "</loc>\n" +
		"    <changefreq>weekly</changefreq>\n" +
		"    <priority>1.0</priority>\n" +
		"  </url>\n" +
		"</urlset>\n"
	c.String(http.StatusOK, xml)
}

// statusFor maps generation errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, generator.ErrInvalidInput), errors.Is(err, generator.ErrInvalidSize):
		return http.StatusBadRequest
	case errors.Is(err, generator.ErrEncodingFailure):
		return http.StatusUnprocessableEntity
	case errors.Is(err, generator.ErrStalePreview):
		return http.StatusConflict
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func (h *Handler) fail(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.log.Errorw("generation failed", "error", err, "requestId", requestID(c))
		c.JSON(status, gin.H{"error": "Failed to create QR code"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
