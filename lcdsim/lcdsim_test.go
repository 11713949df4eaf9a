// Copyright 2026 The lcdPi Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lcdsim_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alidaf/lcdpi/glyph"
	"github.com/alidaf/lcdpi/hd44780"
	"github.com/alidaf/lcdpi/lcdsim"
)

func newPanel(t *testing.T, geom hd44780.Geometry) (*lcdsim.Sim, *hd44780.Dev) {
	t.Helper()
	sim := lcdsim.New(&lcdsim.Opts{Geometry: geom, W: new(bytes.Buffer)})
	dev, err := hd44780.New(sim, 0, hd44780.DefaultPinMap, geom, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := dev.Init(nil); err != nil {
		t.Fatal(err)
	}
	return sim, dev
}

// End to end: the driver's nibble traffic decodes back into readable text.
func TestWriteString(t *testing.T) {
	sim, dev := newPanel(t, hd44780.Geometry16x2)

	if _, err := dev.WriteString("Hello"); err != nil {
		t.Fatal(err)
	}
	if got := sim.Line(0); !strings.HasPrefix(got, "Hello") {
		t.Errorf("row 0 = %q", got)
	}
	if err := dev.Goto(1, 2); err != nil {
		t.Fatal(err)
	}
	if _, err := dev.WriteString("world"); err != nil {
		t.Fatal(err)
	}
	if got := sim.Line(1); got[2:7] != "world" {
		t.Errorf("row 1 = %q", got)
	}
}

func TestClearWipes(t *testing.T) {
	sim, dev := newPanel(t, hd44780.Geometry16x2)

	_, _ = dev.WriteString("residue")
	if err := dev.Clear(); err != nil {
		t.Fatal(err)
	}
	if got := sim.Line(0); strings.TrimSpace(got) != "" {
		t.Errorf("row 0 after clear = %q", got)
	}
}

// Rows are separate DDRAM regions; writing past them must not leak onto the
// next row the way contiguous memory would suggest.
func TestRowIsolation(t *testing.T) {
	sim, dev := newPanel(t, hd44780.Geometry20x4)

	if err := dev.Goto(0, 15); err != nil {
		t.Fatal(err)
	}
	_, _ = dev.WriteString("ABCDEFGH")
	if got := sim.Line(1); strings.TrimSpace(got) != "" {
		t.Errorf("row 1 received spillover: %q", got)
	}
}

func TestGlyphLoad(t *testing.T) {
	sim, dev := newPanel(t, hd44780.Geometry16x2)

	if err := dev.LoadGlyphs(glyph.PacMan); err != nil {
		t.Fatal(err)
	}
	for i, want := range glyph.PacMan {
		if got := sim.Glyph(i); got != [8]byte(want) {
			t.Errorf("slot %d: got %v, want %v", i, got, want)
		}
	}
	// Addressing must be back in DDRAM afterwards.
	_, _ = dev.WriteString("x")
	if got := sim.Line(0); got[0] != 'x' {
		t.Errorf("post-load write went astray: row 0 = %q", got)
	}
}

func TestRender(t *testing.T) {
	var out bytes.Buffer
	sim := lcdsim.New(&lcdsim.Opts{Geometry: hd44780.Geometry16x2, W: &out})
	dev, err := hd44780.New(sim, 0, hd44780.DefaultPinMap, hd44780.Geometry16x2, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := dev.Init(nil); err != nil {
		t.Fatal(err)
	}
	_, _ = dev.WriteString("Hi")

	if err := sim.Render(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Hi") {
		t.Errorf("render output missing text: %q", out.String())
	}
	// Two rows plus the bezel.
	if lines := strings.Count(out.String(), "\n"); lines != 4 {
		t.Errorf("render produced %d lines, expected 4", lines)
	}
}

func TestString(t *testing.T) {
	sim := lcdsim.New(nil)
	if sim.String() != "lcdsim{16x2}" {
		t.Errorf("String() = %q", sim.String())
	}
}
