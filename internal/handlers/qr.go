package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/qrstudio/internal/generator"
)

// normalizeHTTPURL validates and normalizes a URL string for QR generation.
// A missing scheme defaults to https.
func normalizeHTTPURL(s string) (string, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return "", fmt.Errorf("URL parameter is required")
	}
	if !strings.Contains(v, "://") {
		v = "https://" + v
	}
	u, err := url.ParseRequestURI(v)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("only http and https URLs are supported")
	}
	if u.Host == "" {
		return "", fmt.Errorf("URL must include a valid host")
	}
	if len(v) > generator.MaxTextLength {
		return "", fmt.Errorf("URL is too long")
	}
	return u.String(), nil
}

// resultResponse is the JSON shape of a generated code: the result plus the
// image as a data URL.
type resultResponse struct {
	*generator.Result
	Image string `json:"image"`
}

func (h *Handler) respondJSON(c *gin.Context, res *generator.Result) {
	res.RequestID = requestID(c)
	c.JSON(http.StatusOK, resultResponse{Result: res, Image: res.DataURL()})
}

// writeImage streams the encoded image and echoes the effective options in
// X-QR-* headers.
func (h *Handler) writeImage(c *gin.Context, res *generator.Result) {
	c.Header("Cache-Control", "public, max-age=3600")
	c.Header("X-QR-Level", res.Options.ErrorCorrectionLevel)
	c.Header("X-QR-Dot-Style", res.Options.DotStyle)
	c.Header("X-QR-Size", strconv.Itoa(res.Size))
	if res.LogoSkipped {
		c.Header("X-QR-Logo-Skipped", "true")
	}
	if res.Scannable != nil {
		c.Header("X-QR-Scannable", strconv.FormatBool(*res.Scannable))
	}
	c.Data(http.StatusOK, res.ContentType, res.Image)
}

// QRCodeHandler generates a styled code from query parameters and returns
// the image itself. `url` is accepted as an alias of `text` and normalized.
func (h *Handler) QRCodeHandler(c *gin.Context) {
	var req generator.Request
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if raw := c.Query("url"); raw != "" && strings.TrimSpace(req.Text) == "" {
		normalized, err := normalizeHTTPURL(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		req.Text = normalized
	}

	res, err := h.gen.Custom(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.writeImage(c, res)
}

// Quick returns a plain black-and-white PNG for ?text=.
func (h *Handler) Quick(c *gin.Context) {
	res, err := h.gen.Quick(c.Request.Context(), c.Query("text"))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.writeImage(c, res)
}

// Custom generates from a JSON request and answers with JSON.
func (h *Handler) Custom(c *gin.Context) {
	var req generator.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	res, err := h.gen.Custom(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.respondJSON(c, res)
}

type previewRequest struct {
	Session string            `json:"session"`
	Seq     uint64            `json:"seq"`
	Request generator.Request `json:"request"`
}

// Preview renders a live preview. Requests that lost to a newer one for the
// same session get 409 with the newest committed sequence.
func (h *Handler) Preview(c *gin.Context) {
	var req previewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	session := strings.TrimSpace(req.Session)
	if session == "" {
		session = c.ClientIP()
	}

	res, err := h.gen.Preview(c.Request.Context(), session, req.Seq, req.Request)
	if errors.Is(err, generator.ErrStalePreview) {
		body := gin.H{"error": err.Error()}
		if latest, ok := h.gen.Previews().Latest(session); ok {
			body["sequence"] = latest.Sequence
		}
		c.JSON(http.StatusConflict, body)
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	h.respondJSON(c, res)
}
