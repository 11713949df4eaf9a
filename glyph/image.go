// Copyright 2026 The lcdPi Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package glyph

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// FromImage reduces img to a glyph. The image is scaled down to the 5x8
// cell and each pixel is lit when its luminance is at or above half scale.
func FromImage(img image.Image) Glyph {
	small := image.NewGray(image.Rect(0, 0, Width, Height))
	draw.ApproxBiLinear.Scale(small, small.Bounds(), img, img.Bounds(), draw.Src, nil)
	var g Glyph
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if small.GrayAt(x, y).Y >= 0x80 {
				g[y] |= 1 << (Width - 1 - x)
			}
		}
	}
	return g
}

// Face parses TrueType font bytes and returns a face sized so a single
// character roughly fills a glyph cell when rasterized with FromFace.
func Face(ttf []byte, size float64) (font.Face, error) {
	f, err := freetype.ParseFont(ttf)
	if err != nil {
		return nil, fmt.Errorf("glyph: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{Size: size}), nil
}

// FromFace rasterizes r with face onto a small canvas and reduces it to a
// glyph. Handy for putting characters outside the controller's ROM font on
// screen, one CGRAM slot at a time.
func FromFace(face font.Face, r rune) Glyph {
	const cw, ch = 10, 16
	dst := image.NewGray(image.Rect(0, 0, cw, ch))
	d := font.Drawer{
		Dst:  dst,
		Src:  image.White,
		Face: face,
		Dot:  fixed.P(1, 13),
	}
	d.DrawString(string(r))
	return FromImage(dst)
}

// Image renders a preview of g with each pixel drawn as a scale-sized square.
// Lit pixels are drawn in the classic green-on-black character LCD look.
func Image(g Glyph, scale int) image.Image {
	if scale < 1 {
		scale = 1
	}
	dc := gg.NewContext(Width*scale, Height*scale)
	dc.SetColor(color.Black)
	dc.Clear()
	dc.SetColor(color.RGBA{G: 0xff, B: 0x40, A: 0xff})
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if g.Set(x, y) {
				dc.DrawRectangle(float64(x*scale), float64(y*scale), float64(scale), float64(scale))
			}
		}
	}
	dc.Fill()
	return dc.Image()
}
