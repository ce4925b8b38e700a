package main

import (
	"os"
	"testing"

	"golang.org/x/mobile/event/key"
)

func TestQuitKey(t *testing.T) {
	tests := []struct {
		e    key.Event
		want bool
	}{
		{key.Event{Code: key.CodeEscape, Direction: key.DirPress}, true},
		{key.Event{Code: key.CodeQ, Direction: key.DirPress}, true},
		{key.Event{Code: key.CodeEscape, Direction: key.DirRelease}, false},
		{key.Event{Code: key.CodeR, Direction: key.DirPress}, false},
		{key.Event{Code: key.CodeRightArrow, Direction: key.DirPress}, false},
	}
	for _, tt := range tests {
		if got := quitKey(tt.e); got != tt.want {
			t.Errorf("quitKey(%v %v) = %v, want %v", tt.e.Code, tt.e.Direction, got, tt.want)
		}
	}
}

func writeFile(fname, content string) error {
	return os.WriteFile(fname, []byte(content), 0644)
}

func TestChanged(t *testing.T) {
	dir := t.TempDir()
	fname := dir + "/ground.go"
	if err := writeFile(fname, "package main"); err != nil {
		t.Fatal(err)
	}
	w := &watch{sums: make(map[string]uint64)}
	if !w.changed(fname) {
		t.Error("first look at a file should count as a change")
	}
	if w.changed(fname) {
		t.Error("same content should not count as a change")
	}
	if err := writeFile(fname, "package main\n"); err != nil {
		t.Fatal(err)
	}
	if !w.changed(fname) {
		t.Error("new content should count as a change")
	}
	if w.changed(dir + "/4913") {
		t.Error("vim temp files should be ignored")
	}
}
