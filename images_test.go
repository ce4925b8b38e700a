package glitch

import (
	"image"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDecodeImages(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.png")
	b := filepath.Join(dir, "b.png")
	junk := filepath.Join(dir, "junk.png")
	if err := SafeWrite(NewRaster(3, 2).Image(), a); err != nil {
		t.Fatal(err)
	}
	if err := SafeWrite(paintedGround().Image(), b); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(junk, []byte("not a png"), 0644); err != nil {
		t.Fatal(err)
	}

	names, imgs := DecodeImages([]string{a, junk, filepath.Join(dir, "missing.png"), b})
	if want := []string{"a.png", "b.png"}; !reflect.DeepEqual(names, want) {
		t.Errorf("names = %v, want %v", names, want)
	}
	if len(imgs) != 2 {
		t.Fatalf("got %d images, want 2", len(imgs))
	}
	if got := imgs[1].Bounds().Size(); got != (image.Point{Width, Height}) {
		t.Errorf("b.png size = %v", got)
	}
}

func TestDecodeRasterMissing(t *testing.T) {
	if _, err := DecodeRaster(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("want error for a missing file")
	}
}

func TestVpCenter(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	tests := []struct {
		w, h int
		want image.Point
	}{
		{Width, Height, image.Point{0, 0}},
		{100, 50, image.Point{0, 0}},
		{Width + 100, Height + 10, image.Point{50, 5}},
	}
	for _, tt := range tests {
		if got := VpCenter(img, tt.w, tt.h); got != tt.want {
			t.Errorf("VpCenter(%dx%d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}
