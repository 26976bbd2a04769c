package generator

import (
	"errors"
	"fmt"

	"github.com/cristianadrielbraun/qrstudio/internal/encoder"
	"github.com/cristianadrielbraun/qrstudio/internal/render"
)

var (
	// ErrInvalidInput covers empty or oversized text, out-of-range size or
	// margin, malformed colors and unknown enum values or presets.
	ErrInvalidInput = errors.New("invalid input")
	// ErrEncodingFailure means the text does not fit a QR symbol at the
	// requested error-correction level.
	ErrEncodingFailure = encoder.ErrEncoding
	// ErrInvalidSize means the requested size leaves less than one pixel per module.
	ErrInvalidSize = render.ErrInvalidSize
	// ErrStalePreview is returned when a newer preview for the same session
	// has already been committed.
	ErrStalePreview = errors.New("stale preview")
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
