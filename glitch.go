package glitch

import (
	"math"
	"math/rand"
)

// Options holds the knobs of every glitch pass. Ranges are inclusive.
type Options struct {
	// Pass 1: per pixel chance of a random offset on each channel,
	// uniform over the integers [-CorruptSpread, CorruptSpread).
	CorruptChance float64
	CorruptSpread int

	// Pass 2: per row chance of a horizontal smear.
	ScanChance   float64
	ScanShift    int
	ScanMinWidth int
	ScanMaxWidth int

	// Pass 3: number of virus colored pixels dropped at random.
	VirusPixels int

	// Pass 4: brightened vertical runs on every VerticalEvery'th column.
	VerticalChance float64
	VerticalEvery  int
	VerticalMinLen int
	VerticalMaxLen int
	VerticalBoost  int

	// Pass 5: per row chance of shifting the red channel sideways.
	AberrationChance float64
	AberrationShift  int
}

// DefaultOptions are the settings used for the shipped ground.png
var DefaultOptions = Options{
	CorruptChance: 0.15,
	CorruptSpread: 50,

	ScanChance:   0.10,
	ScanShift:    10,
	ScanMinWidth: 5,
	ScanMaxWidth: 35,

	VirusPixels: 500,

	VerticalChance: 0.05,
	VerticalEvery:  5,
	VerticalMinLen: 2,
	VerticalMaxLen: 12,
	VerticalBoost:  50,

	AberrationChance: 0.08,
	AberrationShift:  3,
}

// Quiet returns o with every pass disabled. The range settings are kept.
func (o Options) Quiet() Options {
	o.CorruptChance = 0
	o.ScanChance = 0
	o.VirusPixels = 0
	o.VerticalChance = 0
	o.AberrationChance = 0
	return o
}

// Glitch runs all five passes, in order, over r.
func Glitch(r *Raster, rng *rand.Rand, opts Options) {
	opts.corruptColors(r, rng)
	opts.scanLines(r, rng)
	opts.virusPixels(r, rng)
	opts.verticalLines(r, rng)
	opts.chromaticAberration(r, rng)
}

func (o Options) corruptColors(r *Raster, rng *rand.Rand) {
	spread := float64(2 * o.CorruptSpread)
	offset := func() int {
		return int(math.Floor((rng.Float64() - 0.5) * spread))
	}
	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			if rng.Float64() >= o.CorruptChance {
				continue
			}
			red, green, blue := r.RGB(x, y)
			dr := offset()
			dg := offset()
			db := offset()
			r.SetRGB(x, y, red+dr, green+dg, blue+db)
		}
	}
}

// scanLines copies pixels from offset columns of the same row. Sources are
// read after earlier writes of the same segment, so shifts can chain.
func (o Options) scanLines(r *Raster, rng *rand.Rand) {
	w := r.Width()
	for y := 0; y < r.Height(); y++ {
		if rng.Float64() >= o.ScanChance {
			continue
		}
		offset := randRange(rng, -o.ScanShift, o.ScanShift)
		width := randRange(rng, o.ScanMinWidth, o.ScanMaxWidth)
		if width > w {
			width = w
		}
		start := randRange(rng, 0, w-width)
		for x := start; x < start+width; x++ {
			src := ClampInt(x+offset, 0, w-1)
			r.Set(x, y, r.At(src, y))
		}
	}
}

func (o Options) virusPixels(r *Raster, rng *rand.Rand) {
	for i := 0; i < o.VirusPixels; i++ {
		x := rng.Intn(r.Width())
		y := rng.Intn(r.Height())
		r.Set(x, y, VirusColors[rng.Intn(len(VirusColors))])
	}
}

func (o Options) verticalLines(r *Raster, rng *rand.Rand) {
	if o.VerticalEvery <= 0 {
		return
	}
	h := r.Height()
	for x := 0; x < r.Width(); x += o.VerticalEvery {
		if rng.Float64() >= o.VerticalChance {
			continue
		}
		length := randRange(rng, o.VerticalMinLen, o.VerticalMaxLen)
		if length > h {
			length = h
		}
		start := randRange(rng, 0, h-length)
		for y := start; y < start+length; y++ {
			red, green, blue := r.RGB(x, y)
			b := o.VerticalBoost
			r.SetRGB(x, y, red+b, green+b, blue+b)
		}
	}
}

// chromaticAberration smears only the red channel, reading live values left
// to right like scanLines.
func (o Options) chromaticAberration(r *Raster, rng *rand.Rand) {
	w := r.Width()
	for y := 0; y < r.Height(); y++ {
		if rng.Float64() >= o.AberrationChance {
			continue
		}
		shift := randRange(rng, -o.AberrationShift, o.AberrationShift)
		for x := 0; x < w; x++ {
			red, _, _ := r.RGB(ClampInt(x+shift, 0, w-1), y)
			_, green, blue := r.RGB(x, y)
			r.SetRGB(x, y, red, green, blue)
		}
	}
}
