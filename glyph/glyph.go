// Copyright 2026 The lcdPi Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package glyph holds 5x8 custom character bitmaps for HD44780 class
// controllers, plus helpers to produce them from images and TrueType fonts.
package glyph

// A Glyph is one custom character: eight pixel rows, top first, with the
// five low bits of each row holding the pixels. Bit 4 is the leftmost
// column, bit 0 the rightmost.
type Glyph [8]byte

// Pixel dimensions of a glyph cell.
const (
	Width  = 5
	Height = 8
)

// PacMan is a small arcade animation set:
//
//	0, 1  Pac Man, mouth open and closed
//	2, 3  ghost, two leg positions
//	4, 5  heart, full and small
//	6     Pac Man facing left
var PacMan = []Glyph{
	{0x00, 0x00, 0x0e, 0x1b, 0x1f, 0x1f, 0x0e, 0x00},
	{0x00, 0x00, 0x0f, 0x16, 0x1c, 0x1e, 0x0f, 0x00},
	{0x00, 0x0e, 0x19, 0x1d, 0x1f, 0x1f, 0x15, 0x00},
	{0x00, 0x0e, 0x13, 0x17, 0x1f, 0x1f, 0x1b, 0x00},
	{0x00, 0x0a, 0x1f, 0x1f, 0x1f, 0x0e, 0x04, 0x00},
	{0x00, 0x00, 0x0a, 0x0e, 0x0e, 0x04, 0x00, 0x00},
	{0x00, 0x00, 0x1e, 0x0d, 0x07, 0x0f, 0x1e, 0x00},
}

// Set reports whether the pixel at column x, row y is lit.
func (g Glyph) Set(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return g[y]&(1<<(Width-1-x)) != 0
}
