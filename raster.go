package glitch

import (
	"image"
	"image/color"
)

// Size of the ground sprite, in pixels.
const (
	Width  = 336
	Height = 112
)

// Raster is an opaque RGB pixel grid that every pass mutates in place.
type Raster struct {
	img *image.RGBA
}

// NewRaster allocates a black, fully opaque raster.
func NewRaster(width, height int) *Raster {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
	return &Raster{img: img}
}

// Width in pixels
func (r *Raster) Width() int {
	return r.img.Bounds().Dx()
}

// Height in pixels
func (r *Raster) Height() int {
	return r.img.Bounds().Dy()
}

// Image returns the backing image. It aliases the raster.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// RGB returns the channels at x, y.
func (r *Raster) RGB(x, y int) (red, green, blue int) {
	i := r.img.PixOffset(x, y)
	p := r.img.Pix[i : i+3 : i+3]
	return int(p[0]), int(p[1]), int(p[2])
}

// SetRGB clamps each channel into [0,255] and stores it at x, y.
func (r *Raster) SetRGB(x, y, red, green, blue int) {
	i := r.img.PixOffset(x, y)
	p := r.img.Pix[i : i+3 : i+3]
	p[0], p[1], p[2] = channel(red), channel(green), channel(blue)
}

// At returns the color at x, y.
func (r *Raster) At(x, y int) color.RGBA {
	return r.img.RGBAAt(x, y)
}

// Set stores c at x, y, forcing it opaque.
func (r *Raster) Set(x, y int, c color.RGBA) {
	c.A = 0xff
	r.img.SetRGBA(x, y, c)
}

// Clone returns an independent copy.
func (r *Raster) Clone() *Raster {
	img := image.NewRGBA(r.img.Bounds())
	copy(img.Pix, r.img.Pix)
	return &Raster{img: img}
}

// Equal reports whether both rasters hold the same pixels.
func (r *Raster) Equal(other *Raster) bool {
	if r.img.Bounds() != other.img.Bounds() {
		return false
	}
	for i := range r.img.Pix {
		if r.img.Pix[i] != other.img.Pix[i] {
			return false
		}
	}
	return true
}

// FromImage copies any image into a new raster, dropping alpha.
func FromImage(src image.Image) *Raster {
	b := src.Bounds()
	r := NewRaster(b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := color.RGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
			r.Set(x, y, c)
		}
	}
	return r
}
