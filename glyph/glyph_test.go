// Copyright 2026 The lcdPi Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package glyph

import (
	"image"
	"image/color"
	"testing"
)

func TestTablesFitCell(t *testing.T) {
	for i, g := range PacMan {
		for y, row := range g {
			if row >= 1<<Width {
				t.Errorf("PacMan[%d] row %d = 0x%02x uses more than %d bits", i, y, row, Width)
			}
		}
	}
}

func TestSet(t *testing.T) {
	g := Glyph{0x10, 0x01}
	if !g.Set(0, 0) {
		t.Error("bit 4 of row 0 should be the leftmost pixel")
	}
	if !g.Set(4, 1) {
		t.Error("bit 0 of row 1 should be the rightmost pixel")
	}
	if g.Set(1, 0) || g.Set(-1, 0) || g.Set(0, 8) {
		t.Error("unexpected lit pixel")
	}
}

func TestFromImageThreshold(t *testing.T) {
	// One gray pixel per glyph cell, alternating above and below the
	// threshold.
	img := image.NewGray(image.Rect(0, 0, Width, Height))
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if (x+y)%2 == 0 {
				img.SetGray(x, y, color.Gray{Y: 0xff})
			} else {
				img.SetGray(x, y, color.Gray{Y: 0x10})
			}
		}
	}
	g := FromImage(img)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			want := (x+y)%2 == 0
			if g.Set(x, y) != want {
				t.Errorf("pixel (%d,%d): got %v, want %v", x, y, g.Set(x, y), want)
			}
		}
	}
}

// Rendering a glyph to an image and reducing it back must reproduce the
// original bitmap.
func TestImageRoundTrip(t *testing.T) {
	for i, g := range PacMan {
		img := Image(g, 4)
		b := img.Bounds()
		if b.Dx() != Width*4 || b.Dy() != Height*4 {
			t.Fatalf("PacMan[%d]: bounds %v", i, b)
		}
		if got := FromImage(img); got != g {
			t.Errorf("PacMan[%d]: round trip %v != %v", i, got, g)
		}
	}
}
