package glitch

import (
	"image"
	"image/color"
	"image/draw"
	"math/rand"

	"github.com/fogleman/gg"
)

// Rows of the stripe band at the top of the ground
const (
	purpleEnd = 4
	orangeEnd = 6
	greenEnd  = 26
)

// PaintGround draws the un-glitched ground: beige, then a purple, orange and
// dithered green stripe along the top.
func PaintGround(r *Raster) {
	ctx := gg.NewContextForRGBA(r.Image())
	ctx.SetColor(Beige)
	ctx.Clear()

	fillRows(r.Image(), 0, purpleEnd, DarkPurple)
	fillRows(r.Image(), purpleEnd, orangeEnd, Orange)
	fillRows(r.Image(), orangeEnd, greenEnd, Green)

	// diagonal dither, two pixels on, two off
	ctx.SetColor(DarkGreen)
	for y := orangeEnd; y < greenEnd && y < ctx.Height(); y++ {
		for x := 0; x < ctx.Width(); x++ {
			if (x+y)%4 < 2 {
				ctx.SetPixel(x, y)
			}
		}
	}
}

// fillRows paints rows [y0, y1) edge to edge. Bands must be pixel exact, which
// gg's antialiased Fill does not promise.
func fillRows(dst *image.RGBA, y0, y1 int, col color.RGBA) {
	rect := image.Rect(dst.Bounds().Min.X, y0, dst.Bounds().Max.X, y1).Intersect(dst.Bounds())
	draw.Draw(dst, rect, image.NewUniform(col), image.Point{}, draw.Src)
}

// Generate paints a new ground and glitches it.
func Generate(rng *rand.Rand, opts Options) *Raster {
	r := NewRaster(Width, Height)
	PaintGround(r)
	Glitch(r, rng, opts)
	return r
}
