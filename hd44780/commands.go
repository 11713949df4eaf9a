// Copyright 2026 The lcdPi Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hd44780

import (
	"fmt"
	"time"

	"github.com/alidaf/lcdpi/glyph"
)

// Clear wipes the display and returns the cursor to the origin.
func (d *Dev) Clear() error {
	if err := d.ready(); err != nil {
		return err
	}
	return d.clear()
}

func (d *Dev) clear() error {
	if err := d.command(cmdClear); err != nil {
		return err
	}
	time.Sleep(clearSettle)
	return nil
}

// Home returns the cursor and any display shift to the origin without
// touching the contents.
func (d *Dev) Home() error {
	if err := d.ready(); err != nil {
		return err
	}
	if err := d.command(cmdHome); err != nil {
		return err
	}
	time.Sleep(clearSettle)
	return nil
}

// Goto moves the cursor to row, col, both zero based. Positions outside the
// geometry fail with ErrOutOfRange before anything reaches the hardware.
func (d *Dev) Goto(row, col int) error {
	if err := d.ready(); err != nil {
		return err
	}
	if row < 0 || row >= d.geom.Rows || col < 0 || col >= d.geom.Cols {
		return fmt.Errorf("%w: (%d,%d) on a %dx%d panel", ErrOutOfRange, row, col, d.geom.Cols, d.geom.Rows)
	}
	return d.command(cmdSetDDRAM | (d.geom.RowStart[row] + byte(col)))
}

// Write sends raw character bytes at the current address. There is no line
// wrap and no clipping against the panel width; callers clip beforehand.
// The returned count is the number of characters fully transferred.
func (d *Dev) Write(p []byte) (int, error) {
	if err := d.ready(); err != nil {
		return 0, err
	}
	for i, c := range p {
		if err := d.writeByte(c, modeData); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// WriteString sends text at the current address. See Write.
func (d *Dev) WriteString(text string) (int, error) {
	return d.Write([]byte(text))
}

// SetEntryMode selects whether the address counter increments after each
// character and whether the display shifts instead of the cursor.
//
// Changing any mode clears the display; that has always been part of this
// driver's contract and callers depend on starting from a blank panel after
// a mode switch.
func (d *Dev) SetEntryMode(increment, shift bool) error {
	if err := d.ready(); err != nil {
		return err
	}
	d.opts.Increment, d.opts.Shift = increment, shift
	if err := d.command(d.entryByte()); err != nil {
		return err
	}
	return d.clear()
}

// SetDisplayMode switches the display, the underline cursor, and the blink
// block on or off. Clears the display; see SetEntryMode.
func (d *Dev) SetDisplayMode(on, cursor, blink bool) error {
	if err := d.ready(); err != nil {
		return err
	}
	d.opts.On, d.opts.Cursor, d.opts.Blink = on, cursor, blink
	if err := d.command(d.displayByte()); err != nil {
		return err
	}
	return d.clear()
}

// SetMoveMode selects whether subsequent shifts move the display or the
// cursor, and in which direction. Clears the display; see SetEntryMode.
func (d *Dev) SetMoveMode(shiftDisplay, right bool) error {
	if err := d.ready(); err != nil {
		return err
	}
	d.opts.ShiftDisplay, d.opts.ShiftRight = shiftDisplay, right
	if err := d.command(d.moveByte()); err != nil {
		return err
	}
	return d.clear()
}

// LoadGlyphs writes up to eight custom characters into CGRAM in table order
// and restores DDRAM addressing. Glyph i becomes character code i.
//
// A failure part way leaves CGRAM in an undefined state; the caller should
// treat any error as "reload required".
func (d *Dev) LoadGlyphs(glyphs []glyph.Glyph) error {
	if err := d.ready(); err != nil {
		return err
	}
	if len(glyphs) > glyphSlots {
		return fmt.Errorf("%w: %d glyphs, CGRAM holds %d", ErrOutOfRange, len(glyphs), glyphSlots)
	}
	if err := d.command(cmdSetCGRAM); err != nil {
		return err
	}
	for _, g := range glyphs {
		for _, row := range g {
			if err := d.writeByte(row, modeData); err != nil {
				return err
			}
		}
	}
	return d.command(cmdSetDDRAM)
}
