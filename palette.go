package glitch

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Ground colors
var (
	Beige      = hexColor("#f5f5dc")
	DarkPurple = hexColor("#4a2c4a")
	Orange     = hexColor("#ff8c42")
	Green      = hexColor("#7cb342")
	DarkGreen  = hexColor("#558b2f")
)

// VirusColors are the saturated colors dropped by the virus pass.
var VirusColors = []color.RGBA{
	hexColor("#00ff00"), // bright green
	hexColor("#00ffff"), // cyan
	hexColor("#ff00ff"), // magenta
	hexColor("#ffff00"), // yellow
	hexColor("#ff0000"), // red
}

func hexColor(hex string) color.RGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic(err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
