package encoder

import (
	"fmt"

	"github.com/yeqown/go-qrcode/v2"
)

// Yeqown encodes with github.com/yeqown/go-qrcode/v2.
type Yeqown struct{}

func (Yeqown) Encode(text string, level Level, quietZone int) (*Grid, error) {
	qrc, err := qrcode.NewWith(text, yeqownLevel(level))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}

	w := &matrixWriter{}
	if err := qrc.Save(w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	if len(w.modules) == 0 {
		return nil, fmt.Errorf("%w: empty module matrix", ErrEncoding)
	}
	return NewGrid(w.modules, quietZone), nil
}

func yeqownLevel(l Level) qrcode.EncodeOption {
	switch l {
	case LevelL:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionLow)
	case LevelQ:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionQuart)
	case LevelH:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionHighest)
	default:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionMedium)
	}
}

// matrixWriter implements qrcode.Writer and keeps the raw module matrix
// instead of drawing it.
type matrixWriter struct {
	modules [][]bool
}

var _ qrcode.Writer = (*matrixWriter)(nil)

func (w *matrixWriter) Write(mat qrcode.Matrix) error {
	width, height := mat.Width(), mat.Height()
	w.modules = make([][]bool, height)
	for y := range w.modules {
		w.modules[y] = make([]bool, width)
	}
	mat.Iterate(qrcode.IterDirection_ROW, func(x int, y int, v qrcode.QRValue) {
		if y < height && x < width {
			w.modules[y][x] = v.IsSet()
		}
	})
	return nil
}

func (w *matrixWriter) Close() error { return nil }
