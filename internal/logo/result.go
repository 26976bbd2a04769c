// Package logo loads logo images from a URL, a data URI or the upload
// directory. Loading never fails hard: callers branch on Result.
package logo

import (
	"errors"
	"fmt"
	"image"
)

// ErrLoad wraps every reason a logo could not be produced.
var ErrLoad = errors.New("logo load failure")

// Result is either a loaded image or the reason loading failed.
type Result struct {
	Image image.Image
	Err   error
}

// Loaded wraps a successfully decoded image.
func Loaded(img image.Image) Result { return Result{Image: img} }

// Failed wraps a load failure. The error always matches ErrLoad.
func Failed(err error) Result {
	if !errors.Is(err, ErrLoad) {
		err = fmt.Errorf("%w: %w", ErrLoad, err)
	}
	return Result{Err: err}
}

// OK reports whether an image is available.
func (r Result) OK() bool { return r.Err == nil && r.Image != nil }
