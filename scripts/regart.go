// Regart watches a folder while working on the ground. Saving a go file
// regenerates the image and any new or rewritten png pops up in a window.
//
//	go run scripts/regart.go [folder]
package main

import (
	"flag"
	"hash/crc64"
	"image"
	"image/color"
	"image/draw"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/scottkirkwood/glitch"
	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
)

// generator is what gets rerun when a go file changes
const generator = "./ground"

const (
	maxWinWidth  = 1000
	maxWinHeight = 768
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      "15:04:05.00",
})

func main() {
	flag.Parse()
	folder := flag.Arg(0)
	if folder == "" {
		folder = "."
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Fatal("Failed to create watcher", "err", err)
	}
	defer watcher.Close()

	if err := filepath.Walk(folder, func(path string, info os.FileInfo, err error) error {
		if err != nil || !info.IsDir() {
			return err
		}
		if path != folder && strings.IndexAny(info.Name()[:1], "_.") == 0 {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	}); err != nil {
		logger.Fatal("Problem adding folder watcher", "folder", folder, "err", err)
	}
	logger.Info("Monitoring", "folder", folder)

	w := &watch{sums: make(map[string]uint64)}
	w.run(watcher)
}

// watch remembers a checksum per file so that editor saves that do not
// change anything are ignored.
type watch struct {
	mu   sync.Mutex
	sums map[string]uint64
}

func (w *watch) run(watcher *fsnotify.Watcher) {
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			switch filepath.Ext(event.Name) {
			case ".go":
				go w.regenerate(event.Name)
			case ".png":
				go w.preview(event.Name)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Error("Watcher", "err", err)
		}
	}
}

func (w *watch) regenerate(fname string) {
	if !w.changed(fname) {
		logger.Debug("File unchanged", "file", fname)
		return
	}
	logger.Info("Running", "generator", generator)
	out, err := exec.Command("go", "run", generator).CombinedOutput()
	if err != nil {
		logger.Error("Generator failed", "err", err, "output", string(out))
		return
	}
	logger.Info("Generated", "output", strings.TrimSpace(string(out)))
}

func (w *watch) preview(fname string) {
	if !w.changed(fname) {
		return
	}
	// The generator writes a temp file and renames it, skip the temp one.
	if strings.HasPrefix(glitch.Basename(fname), "glitch.") {
		return
	}
	_, imgs := glitch.DecodeImages([]string{fname})
	if len(imgs) == 0 {
		logger.Warn("Nothing to show", "file", fname)
		return
	}
	show(imgs[0])
}

// Ignore temp files by vim which have only digits
var onlyDigitsRx = regexp.MustCompile(`^\d+$`)

func (w *watch) changed(fname string) bool {
	if onlyDigitsRx.MatchString(glitch.Basename(fname)) {
		return false
	}
	sum, err := fileChecksum(fname)
	if err != nil {
		logger.Warn("Readfile error", "file", fname, "err", err)
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.sums[fname] == sum {
		return false
	}
	w.sums[fname] = sum
	return true
}

func fileChecksum(fname string) (uint64, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return 0, err
	}
	return crc64.Checksum(data, crc64.MakeTable(crc64.ECMA)), nil
}

// quitKey reports whether e closes the preview window.
func quitKey(e key.Event) bool {
	if e.Direction != key.DirPress {
		return false
	}
	return e.Code == key.CodeEscape || e.Code == key.CodeQ
}

// show opens a window with img until Escape or Q.
func show(img image.Image) {
	driver.Main(func(s screen.Screen) {
		winSize := img.Bounds().Size()
		winSize.X = glitch.ClampInt(winSize.X, 1, maxWinWidth)
		winSize.Y = glitch.ClampInt(winSize.Y, 1, maxWinHeight)

		win, err := s.NewWindow(&screen.NewWindowOptions{
			Width:  winSize.X,
			Height: winSize.Y,
			Title:  "regart",
		})
		if err != nil {
			logger.Error("New window", "err", err)
			return
		}
		defer win.Release()

		b, err := s.NewBuffer(img.Bounds().Size())
		if err != nil {
			logger.Error("New buffer", "err", err)
			return
		}
		defer b.Release()
		draw.Draw(b.RGBA(), b.Bounds(), img, img.Bounds().Min, draw.Src)

		var sz size.Event
		for {
			switch e := win.NextEvent().(type) {
			case key.Event:
				if quitKey(e) {
					return
				}

			case paint.Event:
				dp := glitch.VpCenter(img, sz.WidthPx, sz.HeightPx)
				if dp != (image.Point{}) {
					win.Fill(sz.Bounds(), color.Black, draw.Src)
				}
				win.Upload(dp, b, b.Bounds())
				win.Publish()

			case size.Event:
				sz = e

			case lifecycle.Event:
				if e.To == lifecycle.StageDead {
					return
				}

			case error:
				logger.Error("Screen", "err", e)
				return
			}
		}
	})
}
