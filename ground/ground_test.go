package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/scottkirkwood/glitch"
)

func TestRun(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "img")
	if err := os.Mkdir(dir, 0755); err != nil {
		t.Fatal(err)
	}
	fname := filepath.Join(dir, "ground.png")

	var buf bytes.Buffer
	if err := run(newLogger(&buf), "2a", fname); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(buf.String(), "Glitched ground generated") {
		t.Errorf("missing confirmation in log %q", buf.String())
	}

	r, err := glitch.DecodeRaster(fname)
	if err != nil {
		t.Fatal(err)
	}
	if r.Width() != glitch.Width || r.Height() != glitch.Height {
		t.Fatalf("size = %dx%d", r.Width(), r.Height())
	}

	// Most of the purple band survives the glitching.
	purple := 0
	for y := 0; y < 4; y++ {
		for x := 0; x < glitch.Width; x++ {
			if r.At(x, y) == glitch.DarkPurple {
				purple++
			}
		}
	}
	if purple < 4*glitch.Width/2 {
		t.Errorf("only %d of %d band pixels are purple", purple, 4*glitch.Width)
	}

	first, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if err := run(newLogger(&buf), "2a", fname); err != nil {
		t.Fatal(err)
	}
	second, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("same seed wrote a different file")
	}
}

func TestRunBadSeed(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "ground.png")
	var buf bytes.Buffer
	if err := run(newLogger(&buf), "not-hex", fname); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(buf.String(), "Unable to set the seed") {
		t.Errorf("want a seed warning, log %q", buf.String())
	}
	if _, err := os.Stat(fname); err != nil {
		t.Error(err)
	}
}

func TestRunMissingFolder(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "img", "ground.png")
	var buf bytes.Buffer
	if err := run(newLogger(&buf), "1", fname); err == nil {
		t.Error("want error when img folder is missing")
	}
}
