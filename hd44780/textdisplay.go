// Copyright 2026 The lcdPi Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hd44780

import (
	"fmt"

	"periph.io/x/conn/v3/display"
)

// The display.TextDisplay surface uses 1-based coordinates; the methods here
// adapt to the driver's 0-based addressing.

// Rows returns the number of rows the panel supports.
func (d *Dev) Rows() int {
	return d.geom.Rows
}

// Cols returns the number of columns the panel supports.
func (d *Dev) Cols() int {
	return d.geom.Cols
}

// MinRow returns the minimum row position.
func (d *Dev) MinRow() int {
	return 1
}

// MinCol returns the minimum column position.
func (d *Dev) MinCol() int {
	return 1
}

// MoveTo moves the cursor to the 1-based row and column.
func (d *Dev) MoveTo(row, col int) error {
	return d.Goto(row-1, col-1)
}

// Cursor sets the cursor mode. Multiple modes can be combined.
func (d *Dev) Cursor(modes ...display.CursorMode) error {
	cursor, blink := false, false
	for _, mode := range modes {
		switch mode {
		case display.CursorOff:
			cursor, blink = false, false
		case display.CursorUnderline:
			cursor = true
		case display.CursorBlink, display.CursorBlock:
			cursor, blink = true, true
		default:
			return fmt.Errorf("hd44780: unexpected cursor mode %d", mode)
		}
	}
	return d.SetDisplayMode(d.opts.On, cursor, blink)
}

// Move shifts the cursor one position forward or backward. Up and down are
// not supported by the controller.
func (d *Dev) Move(dir display.CursorDirection) error {
	if err := d.ready(); err != nil {
		return err
	}
	b := cmdMoveMode
	switch dir {
	case display.Backward:
	case display.Forward:
		b |= moveRight
	default:
		return fmt.Errorf("hd44780: %w", display.ErrNotImplemented)
	}
	return d.command(b)
}

// Display turns the panel on or off, keeping the configured cursor modes.
func (d *Dev) Display(on bool) error {
	return d.SetDisplayMode(on, d.opts.Cursor, d.opts.Blink)
}

// AutoScroll is not supported by this device. Returns
// display.ErrNotImplemented.
func (d *Dev) AutoScroll(enabled bool) error {
	return display.ErrNotImplemented
}

// Halt blanks and switches off an initialized display. The next user must
// run Init again.
func (d *Dev) Halt() error {
	if !d.initialized {
		return nil
	}
	if err := d.clear(); err != nil {
		return err
	}
	if err := d.command(cmdDisplayMode); err != nil {
		return err
	}
	d.initialized = false
	return nil
}
