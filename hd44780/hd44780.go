// Copyright 2026 The lcdPi Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package hd44780 controls Hitachi HD44780 class character LCD modules wired
// behind an 8-bit I/O expander port, such as an MCP23017 or a PCF8574
// backpack. The display's 4-bit bus plus the RS and EN control lines map onto
// six expander output bits; the driver composes full port bytes and toggles
// the enable line with the settle delays the controller needs.
//
// The driver is write-only. The R/W line is assumed tied low, so readiness is
// guaranteed by fixed delays rather than busy-flag polling; the delay for
// each operation is a named constant below.
//
// # Datasheet
//
// https://www.sparkfun.com/datasheets/LCD/HD44780.pdf
package hd44780

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
)

// Port is the expander capability the driver consumes. All three operations
// are synchronous and either complete or fail with a bus fault; there is no
// partial success. mcp23017.Dev satisfies it.
type Port interface {
	// SetBits sets the bits of mask in the register at reg.
	SetBits(reg, mask uint8) error
	// ClearBits clears the bits of mask in the register at reg.
	ClearBits(reg, mask uint8) error
	// WriteByte replaces the whole register at reg with value.
	WriteByte(reg, value uint8) error
}

type writeMode bool

const (
	modeCommand writeMode = false
	modeData    writeMode = true
)

// HD44780 instruction set.
const (
	cmdClear       byte = 0x01
	cmdHome        byte = 0x02
	cmdEntryMode   byte = 0x04
	cmdDisplayMode byte = 0x08
	cmdMoveMode    byte = 0x10
	cmdFunctionSet byte = 0x20
	cmdSetCGRAM    byte = 0x40
	cmdSetDDRAM    byte = 0x80

	entryIncrement byte = 0x02
	entryShift     byte = 0x01

	displayOn     byte = 0x04
	displayCursor byte = 0x02
	displayBlink  byte = 0x01

	moveDisplay byte = 0x08
	moveRight   byte = 0x04

	functionTwoLine byte = 0x08
	functionFont    byte = 0x04

	glyphSlots = 8
)

// Timing contract. These are protocol-mandated waits, not backoffs: the
// controller gives no completion signal, so the delay after each step is the
// only guarantee the next write doesn't race it.
const (
	// enablePulse is held on both sides of each EN edge. 5ms is generous
	// for every HD44780 variant at the cost of throughput.
	enablePulse = 5 * time.Millisecond
	// clearSettle follows Clear and Home, which take the controller about
	// 1.52ms to execute.
	clearSettle = 1600 * time.Microsecond
	// powerOnSettle precedes the bring-up sequence. >40ms at 3V supply.
	powerOnSettle = 42 * time.Millisecond
	// The three attention pulses and the 4-bit commit have their own
	// minimums: >4.1ms, >100us, >100us, >37us.
	resetSettle1 = 4200 * time.Microsecond
	resetSettle2 = 150 * time.Microsecond
	resetSettle3 = 150 * time.Microsecond
	commitSettle = 50 * time.Microsecond
)

var (
	// ErrNotInitialized is returned by every display operation attempted
	// before Init has completed successfully.
	ErrNotInitialized = errors.New("hd44780: display not initialized")
	// ErrOutOfRange is returned for positions outside the configured
	// geometry. Nothing is written to the hardware.
	ErrOutOfRange = errors.New("hd44780: position out of range")
)

// PinMap assigns the six logical LCD signals to bit positions on the
// expander's output register. DB[0] drives the display's DB4 line, DB[3]
// drives DB7. The map is validated at construction and immutable afterwards.
type PinMap struct {
	RS uint8
	EN uint8
	DB [4]uint8
}

// DefaultPinMap matches the common LCD backpack wiring: RS on bit 0, EN on
// bit 2, data on bits 4..7.
var DefaultPinMap = PinMap{RS: 0, EN: 2, DB: [4]uint8{4, 5, 6, 7}}

func (p PinMap) validate() error {
	var seen [8]bool
	for _, bit := range append([]uint8{p.RS, p.EN}, p.DB[:]...) {
		if bit > 7 {
			return fmt.Errorf("hd44780: pin bit %d outside 0..7", bit)
		}
		if seen[bit] {
			return fmt.Errorf("hd44780: pin bit %d assigned twice", bit)
		}
		seen[bit] = true
	}
	return nil
}

// Geometry describes the panel: its size and the DDRAM base address of each
// row. Row bases are not contiguous; moving past the end of one row does not
// land on the next, so cursor addressing always goes through the base table.
type Geometry struct {
	Rows     int
	Cols     int
	RowStart []uint8
}

// Stock geometries for the common panel sizes.
var (
	Geometry16x2 = Geometry{Rows: 2, Cols: 16, RowStart: []uint8{0x00, 0x40}}
	Geometry20x4 = Geometry{Rows: 4, Cols: 20, RowStart: []uint8{0x00, 0x40, 0x14, 0x54}}
)

func (g Geometry) validate() error {
	if g.Rows < 1 || g.Rows > 4 {
		return fmt.Errorf("hd44780: %d rows unsupported", g.Rows)
	}
	if g.Cols < 1 || g.Cols > 40 {
		return fmt.Errorf("hd44780: %d columns unsupported", g.Cols)
	}
	if len(g.RowStart) < g.Rows {
		return fmt.Errorf("hd44780: %d row start addresses for %d rows", len(g.RowStart), g.Rows)
	}
	return nil
}

// Dev is a handle to one display. It owns its pin map and geometry; the
// expander port is a non-owning reference that may be shared with other
// register users on other ports of the same chip.
type Dev struct {
	port        Port
	reg         uint8
	pins        PinMap
	geom        Geometry
	opts        Opts
	initialized bool
}

// New validates the wiring and returns an uninitialized display handle. The
// reg argument names the expander output register the display is wired to
// (e.g. mcp23017.OLATB). Init must run before any other operation.
func New(port Port, reg uint8, pins PinMap, geom Geometry, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if err := pins.validate(); err != nil {
		return nil, err
	}
	if err := geom.validate(); err != nil {
		return nil, err
	}
	return &Dev{port: port, reg: reg, pins: pins, geom: geom, opts: *opts}, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("hd44780{%dx%d@0x%02x}", d.geom.Cols, d.geom.Rows, d.reg)
}

// Init forces the controller into 4-bit mode and applies opts, replacing the
// options given to New when opts is non-nil.
//
// The controller powers up in an unknown interface state, so the sequence
// starts with three raw 0x3 attention pulses and a 0x2 commit, each a single
// nibble with EN toggled directly; high/low nibble pairing is undefined until
// the commit lands. The function set that follows (line count, font) is
// latched by the hardware and cannot be changed afterwards except by running
// the whole sequence again: treat any "change font or lines" request as a
// full re-init.
//
// Init is idempotent; calling it again replays the sequence. On any failure
// the display stays uninitialized and every operation keeps returning
// ErrNotInitialized until a later Init succeeds.
func (d *Dev) Init(opts *Opts) error {
	if opts != nil {
		d.opts = *opts
	}
	d.initialized = false

	time.Sleep(powerOnSettle)
	pulses := []struct {
		nibble byte
		settle time.Duration
	}{
		{0x03, resetSettle1},
		{0x03, resetSettle2},
		{0x03, resetSettle3},
		{0x02, commitSettle},
	}
	for _, p := range pulses {
		// RS is composed low explicitly rather than trusting the
		// expander's power-on latch state.
		if err := d.writeNibble(d.nibbleWord(p.nibble, modeCommand)); err != nil {
			return err
		}
		time.Sleep(p.settle)
	}

	// The wiring has four data lines, so the interface width bit stays
	// clear.
	fn := cmdFunctionSet
	if d.opts.TwoLine {
		fn |= functionTwoLine
	}
	if d.opts.Font5x10 {
		fn |= functionFont
	}
	steps := []byte{
		fn,
		cmdDisplayMode, // display off while the remaining modes settle
		d.entryByte(),
		d.displayByte(),
		d.moveByte(),
		cmdSetDDRAM,
		cmdClear,
	}
	for _, b := range steps {
		if err := d.command(b); err != nil {
			return err
		}
	}
	time.Sleep(clearSettle)
	d.initialized = true
	return nil
}

// nibbleWord composes the expander output word carrying one 4-bit transfer.
// Bit i of nibble drives data line DB4+i whatever the expander bit order;
// EN is left low.
func (d *Dev) nibbleWord(nibble byte, mode writeMode) byte {
	var word byte
	if mode == modeData {
		word |= 1 << d.pins.RS
	}
	for i, bit := range d.pins.DB {
		if nibble&(1<<i) != 0 {
			word |= 1 << bit
		}
	}
	return word
}

// writeNibble presents word on the port as one full-byte write, then pulses
// EN. The full-byte write keeps the data lines from racing the enable bit.
func (d *Dev) writeNibble(word byte) error {
	if err := d.port.WriteByte(d.reg, word); err != nil {
		return fmt.Errorf("hd44780: %w", err)
	}
	return d.pulseEnable()
}

// pulseEnable latches the presented nibble. The controller samples on the
// falling edge; the hold on both sides of each edge is mandatory.
func (d *Dev) pulseEnable() error {
	if err := d.port.SetBits(d.reg, 1<<d.pins.EN); err != nil {
		return fmt.Errorf("hd44780: %w", err)
	}
	time.Sleep(enablePulse)
	if err := d.port.ClearBits(d.reg, 1<<d.pins.EN); err != nil {
		return fmt.Errorf("hd44780: %w", err)
	}
	time.Sleep(enablePulse)
	return nil
}

// writeByte sends one instruction or character, high nibble first. A bus
// fault aborts mid-byte and leaves the controller state undefined until the
// next Init.
func (d *Dev) writeByte(data byte, mode writeMode) error {
	if err := d.writeNibble(d.nibbleWord(data>>4, mode)); err != nil {
		return err
	}
	return d.writeNibble(d.nibbleWord(data&0x0f, mode))
}

func (d *Dev) command(data byte) error {
	return d.writeByte(data, modeCommand)
}

func (d *Dev) ready() error {
	if !d.initialized {
		return ErrNotInitialized
	}
	return nil
}

func (d *Dev) entryByte() byte {
	b := cmdEntryMode
	if d.opts.Increment {
		b |= entryIncrement
	}
	if d.opts.Shift {
		b |= entryShift
	}
	return b
}

func (d *Dev) displayByte() byte {
	b := cmdDisplayMode
	if d.opts.On {
		b |= displayOn
	}
	if d.opts.Cursor {
		b |= displayCursor
	}
	if d.opts.Blink {
		b |= displayBlink
	}
	return b
}

func (d *Dev) moveByte() byte {
	b := cmdMoveMode
	if d.opts.ShiftDisplay {
		b |= moveDisplay
	}
	if d.opts.ShiftRight {
		b |= moveRight
	}
	return b
}

var _ conn.Resource = &Dev{}
var _ display.TextDisplay = &Dev{}
