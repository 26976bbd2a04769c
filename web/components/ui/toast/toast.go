// Package toast renders dismissible notification toasts for HTMX swaps.
package toast

import (
	"fmt"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
)

type Variant string

const (
	VariantDefault Variant = "default"
	VariantSuccess Variant = "success"
	VariantError   Variant = "error"
	VariantWarning Variant = "warning"
	VariantInfo    Variant = "info"
)

// ParseVariant maps a variant name to a Variant; "destructive" is an alias
// of error and anything unknown is a success toast.
func ParseVariant(s string) Variant {
	switch s {
	case "error", "destructive":
		return VariantError
	case "warning":
		return VariantWarning
	case "info":
		return VariantInfo
	case "default":
		return VariantDefault
	}
	return VariantSuccess
}

type Position string

const (
	PositionTopRight    Position = "top-right"
	PositionTopLeft     Position = "top-left"
	PositionBottomRight Position = "bottom-right"
	PositionBottomLeft  Position = "bottom-left"
)

type Props struct {
	ID            string
	Class         string
	Title         string
	Description   string
	Variant       Variant
	Position      Position
	Duration      int // milliseconds; 0 keeps the toast until dismissed
	Dismissible   bool
	ShowIndicator bool
	Icon          bool
}

var variantClasses = map[Variant]string{
	VariantDefault: "border-gray-200 bg-white text-gray-900",
	VariantSuccess: "border-green-200 bg-green-50 text-green-900",
	VariantError:   "border-red-200 bg-red-50 text-red-900",
	VariantWarning: "border-yellow-200 bg-yellow-50 text-yellow-900",
	VariantInfo:    "border-blue-200 bg-blue-50 text-blue-900",
}

var positionClasses = map[Position]string{
	PositionTopRight:    "top-4 right-4",
	PositionTopLeft:     "top-4 left-4",
	PositionBottomRight: "bottom-4 right-4",
	PositionBottomLeft:  "bottom-4 left-4",
}

var icons = map[Variant]string{
	VariantSuccess: "&#10003;",
	VariantError:   "&#10005;",
	VariantWarning: "!",
	VariantInfo:    "i",
}

// Classes returns the merged class list for p; p.Class overrides defaults.
func Classes(p Props) string {
	variant, ok := variantClasses[p.Variant]
	if !ok {
		variant = variantClasses[VariantDefault]
	}
	position, ok := positionClasses[p.Position]
	if !ok {
		position = positionClasses[PositionBottomRight]
	}
	return twmerge.Merge(
		"fixed z-50 flex w-80 items-start gap-3 rounded-lg border p-4 shadow-lg",
		position,
		variant,
		p.Class,
	)
}

// progressStyle runs the indicator bar for the toast's lifetime.
func progressStyle(ms int) templ.SafeCSS {
	return templ.SafeCSS(fmt.Sprintf("animation: toast-progress %dms linear forwards;", ms))
}
