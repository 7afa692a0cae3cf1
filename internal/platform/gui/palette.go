// Package gui provides the Ebitengine window frontend.
package gui

import (
	"image/color"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

var (
	background = color.RGBA{0, 0, 0, 255}
	gridLine   = color.RGBA{128, 128, 128, 255}
	frameColor = color.RGBA{255, 0, 0, 255}
	textColor  = color.RGBA{255, 255, 255, 255}
	dimText    = color.RGBA{160, 160, 160, 255}
	shade      = color.RGBA{0, 0, 0, 180}
)

// palette maps cell colors to RGB.
var palette = map[core.Color]color.RGBA{
	core.ColorRed:     {255, 0, 0, 255},
	core.ColorGreen:   {0, 255, 0, 255},
	core.ColorYellow:  {255, 255, 0, 255},
	core.ColorBlue:    {0, 0, 255, 255},
	core.ColorMagenta: {128, 0, 128, 255},
	core.ColorCyan:    {0, 255, 255, 255},
	core.ColorWhite:   {255, 255, 255, 255},
	core.ColorOrange:  {255, 165, 0, 255},
	core.ColorGray:    {128, 128, 128, 255},
}

func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return background
}
