package encoder

import (
	"fmt"

	skip2 "github.com/skip2/go-qrcode"
)

// Skip2 encodes with github.com/skip2/go-qrcode.
type Skip2 struct{}

func (Skip2) Encode(text string, level Level, quietZone int) (*Grid, error) {
	q, err := skip2.New(text, skip2Level(level))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	modules := trimQuietZone(q.Bitmap())
	if len(modules) == 0 {
		return nil, fmt.Errorf("%w: empty module matrix", ErrEncoding)
	}
	return NewGrid(modules, quietZone), nil
}

func skip2Level(l Level) skip2.RecoveryLevel {
	switch l {
	case LevelL:
		return skip2.Low
	case LevelQ:
		return skip2.High
	case LevelH:
		return skip2.Highest
	default:
		return skip2.Medium
	}
}

// trimQuietZone strips the all-light border skip2 adds around the symbol.
// The first and last rows and columns of a symbol always cross a finder
// pattern, so the bounding box of dark modules is the symbol itself.
func trimQuietZone(bm [][]bool) [][]bool {
	minX, minY, maxX, maxY := len(bm), len(bm), -1, -1
	for y, row := range bm {
		for x, dark := range row {
			if !dark {
				continue
			}
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}
	if maxX < 0 {
		return nil
	}
	out := make([][]bool, 0, maxY-minY+1)
	for y := minY; y <= maxY; y++ {
		out = append(out, bm[y][minX:maxX+1])
	}
	return out
}
