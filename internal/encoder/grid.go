// Package encoder turns text into a QR module grid. Symbol encoding itself
// (error correction, masking, module placement) is delegated to third-party
// QR libraries; this package only normalizes their output.
package encoder

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEncoding is returned when the text cannot be represented as a QR symbol
// at the requested error-correction level.
var ErrEncoding = errors.New("encoding failure")

// Level is a QR error-correction level.
type Level int

const (
	LevelL Level = iota
	LevelM
	LevelQ
	LevelH
)

// ParseLevel accepts L, M, Q or H (case-insensitive).
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "L":
		return LevelL, nil
	case "M":
		return LevelM, nil
	case "Q":
		return LevelQ, nil
	case "H":
		return LevelH, nil
	}
	return LevelM, fmt.Errorf("unknown error correction level %q", s)
}

func (l Level) String() string {
	switch l {
	case LevelL:
		return "L"
	case LevelQ:
		return "Q"
	case LevelH:
		return "H"
	default:
		return "M"
	}
}

// Grid is an immutable square matrix of dark/light modules plus the quiet
// zone, in modules, that must surround it when rendered.
type Grid struct {
	modules   [][]bool
	QuietZone int
}

// NewGrid copies modules so later changes by the caller cannot leak in.
func NewGrid(modules [][]bool, quietZone int) *Grid {
	cp := make([][]bool, len(modules))
	for y, row := range modules {
		cp[y] = append([]bool(nil), row...)
	}
	if quietZone < 0 {
		quietZone = 0
	}
	return &Grid{modules: cp, QuietZone: quietZone}
}

// Size returns N, the number of modules per side.
func (g *Grid) Size() int { return len(g.modules) }

// Span returns the module count per side including the quiet zone.
func (g *Grid) Span() int { return g.Size() + 2*g.QuietZone }

// Dark reports whether module (x, y) is dark. Out-of-range modules are light.
func (g *Grid) Dark(x, y int) bool {
	if y < 0 || y >= len(g.modules) || x < 0 || x >= len(g.modules[y]) {
		return false
	}
	return g.modules[y][x]
}

// Encoder produces a module grid for text at an error-correction level.
type Encoder interface {
	Encode(text string, level Level, quietZone int) (*Grid, error)
}

// New returns the encoder backend registered under name. An empty name
// selects the default backend.
func New(name string) (Encoder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "yeqown":
		return Yeqown{}, nil
	case "skip2":
		return Skip2{}, nil
	}
	return nil, fmt.Errorf("unknown encoder backend %q", name)
}
