// Ground paints the glitched ground sprite used by the game, img/ground.png.
//
// Run it from the game folder; the img folder has to exist already.
// Pass -seed with the hex value from a previous run to get the same image.
package main

import (
	"flag"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/scottkirkwood/glitch"
)

const outFile = "img/ground.png"

var seedFlag = flag.String("seed", "", "Hex value for the seed to use")

func main() {
	flag.Parse()
	logger := newLogger(os.Stderr)
	if err := run(logger, *seedFlag, outFile); err != nil {
		logger.Fatal("Unable to write image", "path", outFile, "err", err)
	}
}

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
	})
}

// run generates one ground into fname.
func run(logger *log.Logger, hexSeed, fname string) error {
	seed, err := glitch.Init(hexSeed)
	if err != nil {
		logger.Warn("Unable to set the seed", "err", err, "seed", seed)
	}

	r := glitch.Generate(seed.Rand(), glitch.DefaultOptions)
	if err := glitch.SafeWrite(r.Image(), fname); err != nil {
		return err
	}
	logger.Info("Glitched ground generated", "path", fname, "seed", seed)
	return nil
}
