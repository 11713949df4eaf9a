// Copyright 2026 The lcdPi Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package lcdsim emulates an HD44780 character module wired behind an I/O
// expander port. It implements the same port surface the real expander
// driver does, watches for enable edges, reassembles the nibble traffic into
// controller instructions, and keeps the resulting character grid.
//
// Useful while you are waiting for your display to come by mail, and as the
// observer end in tests: the grid shows exactly what a real panel would,
// including the consequences of mis-sequenced writes.
package lcdsim

import (
	"fmt"
	"image/color"
	"io"
	"strings"
	"sync"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"

	"github.com/alidaf/lcdpi/hd44780"
)

// Opts configures the simulated panel.
type Opts struct {
	// Pins is the wiring to decode. Defaults to hd44780.DefaultPinMap.
	Pins hd44780.PinMap
	// Geometry of the simulated panel. Defaults to hd44780.Geometry16x2.
	Geometry hd44780.Geometry
	// W receives Render output. Defaults to a colorable stdout.
	W io.Writer
	// Palette used for the backlight strip. Defaults to ansi256.Default.
	Palette *ansi256.Palette
	// Backlight color. Defaults to the classic yellow-green.
	Backlight color.Color

	_ struct{}
}

// Sim is a simulated display. It satisfies hd44780.Port; point a Dev at it
// and drive it like hardware.
type Sim struct {
	mu        sync.Mutex
	pins      hd44780.PinMap
	geom      hd44780.Geometry
	w         io.Writer
	palette   ansi256.Palette
	backlight color.Color

	word     uint8 // last expander register value seen
	fourBit  bool
	haveHigh bool
	high     uint8

	ddram   [128]byte
	cgram   [64]byte
	ac      int
	inCGRAM bool
	incr    bool
}

// New returns a simulated panel. A nil opts selects all defaults.
func New(opts *Opts) *Sim {
	if opts == nil {
		opts = &Opts{}
	}
	pins := opts.Pins
	if pins == (hd44780.PinMap{}) {
		pins = hd44780.DefaultPinMap
	}
	geom := opts.Geometry
	if geom.Rows == 0 {
		geom = hd44780.Geometry16x2
	}
	w := opts.W
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	bl := opts.Backlight
	if bl == nil {
		bl = color.NRGBA{R: 0xc0, G: 0xe0, B: 0x20, A: 0xff}
	}
	s := &Sim{pins: pins, geom: geom, w: w, palette: *p, backlight: bl, incr: true}
	for i := range s.ddram {
		s.ddram[i] = ' '
	}
	return s
}

func (s *Sim) String() string {
	return fmt.Sprintf("lcdsim{%dx%d}", s.geom.Cols, s.geom.Rows)
}

// WriteByte implements hd44780.Port. The register id is ignored; the sim
// stands in for a single output register.
func (s *Sim) WriteByte(reg, value uint8) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apply(value)
	return nil
}

// SetBits implements hd44780.Port.
func (s *Sim) SetBits(reg, mask uint8) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apply(s.word | mask)
	return nil
}

// ClearBits implements hd44780.Port.
func (s *Sim) ClearBits(reg, mask uint8) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apply(s.word &^ mask)
	return nil
}

// apply tracks the register value and latches on each EN falling edge.
func (s *Sim) apply(value uint8) {
	enWas := s.word&(1<<s.pins.EN) != 0
	s.word = value
	enNow := value&(1<<s.pins.EN) != 0
	if enWas && !enNow {
		s.latch()
	}
}

func (s *Sim) latch() {
	var nibble uint8
	for i, bit := range s.pins.DB {
		if s.word&(1<<bit) != 0 {
			nibble |= 1 << i
		}
	}
	data := s.word&(1<<s.pins.RS) != 0

	if !s.fourBit {
		// Power-on state: the controller reads DB7..DB4 only and every
		// latch is a whole instruction. A function set with the width
		// bit clear commits 4-bit mode.
		if nibble == 0x02 {
			s.fourBit = true
		}
		return
	}
	if !s.haveHigh {
		s.high, s.haveHigh = nibble, true
		return
	}
	s.haveHigh = false
	s.execute(s.high<<4|nibble, data)
}

func (s *Sim) execute(b byte, data bool) {
	if data {
		if s.inCGRAM {
			s.cgram[s.ac%len(s.cgram)] = b
			s.ac++
			return
		}
		if s.ac < len(s.ddram) {
			s.ddram[s.ac] = b
		}
		if s.incr {
			s.ac++
		} else if s.ac > 0 {
			s.ac--
		}
		return
	}
	switch {
	case b&0x80 != 0:
		s.ac, s.inCGRAM = int(b&0x7f), false
	case b&0x40 != 0:
		s.ac, s.inCGRAM = int(b&0x3f), true
	case b&0x20 != 0:
		// Function set. Width is already committed; lines and font do
		// not change what the grid shows.
	case b&0x10 != 0:
		// Cursor/display shift. The sim has no cursor to render.
	case b&0x08 != 0:
		// Display on/off control. Contents persist either way.
	case b&0x04 != 0:
		s.incr = b&0x02 != 0
	case b == 0x02:
		s.ac, s.inCGRAM = 0, false
	case b == 0x01:
		for i := range s.ddram {
			s.ddram[i] = ' '
		}
		s.ac, s.inCGRAM = 0, false
		s.incr = true
	}
}

// Line returns the text currently on display row. Rows outside the geometry
// return the empty string.
func (s *Sim) Line(row int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if row < 0 || row >= s.geom.Rows {
		return ""
	}
	return s.line(row)
}

func (s *Sim) line(row int) string {
	base := int(s.geom.RowStart[row])
	b := make([]byte, s.geom.Cols)
	for c := 0; c < s.geom.Cols; c++ {
		ch := s.ddram[(base+c)%len(s.ddram)]
		if ch < 0x08 {
			// Custom character slots; render as their index digit.
			ch = '0' + ch
		}
		b[c] = ch
	}
	return string(b)
}

// Glyph returns the CGRAM contents of the given custom character slot.
func (s *Sim) Glyph(slot int) [8]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	var g [8]byte
	if slot < 0 || slot >= 8 {
		return g
	}
	copy(g[:], s.cgram[slot*8:slot*8+8])
	return g
}

// Render draws the panel to the configured writer: the character grid inside
// a backlight-colored bezel.
func (s *Sim) Render() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	block := s.palette.Block(color.NRGBAModel.Convert(s.backlight).(color.NRGBA))
	var b strings.Builder
	b.WriteString(strings.Repeat(block, s.geom.Cols+2))
	b.WriteString("\033[0m\n")
	for r := 0; r < s.geom.Rows; r++ {
		b.WriteString(block)
		b.WriteString("\033[0m")
		b.WriteString(s.line(r))
		b.WriteString(block)
		b.WriteString("\033[0m\n")
	}
	b.WriteString(strings.Repeat(block, s.geom.Cols+2))
	b.WriteString("\033[0m\n")
	_, err := io.WriteString(s.w, b.String())
	return err
}

// Halt blanks the grid.
func (s *Sim) Halt() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.ddram {
		s.ddram[i] = ' '
	}
	return nil
}

var _ hd44780.Port = &Sim{}
