package components

import (
	"github.com/cristianadrielbraun/qrstudio/internal/generator"
	"github.com/cristianadrielbraun/qrstudio/internal/preset"
)

// HomeData is what the generator page renders its pickers from.
type HomeData struct {
	Presets   []preset.Preset
	DotStyles []preset.DotStyleInfo
	Examples  []generator.Example
	// PreviewDebounceMS delays live previews while the user is typing.
	PreviewDebounceMS int
}

func NewHomeData() HomeData {
	return HomeData{
		Presets:           preset.List(),
		DotStyles:         preset.DotStyles(),
		Examples:          generator.QuickExamples(),
		PreviewDebounceMS: 300,
	}
}
