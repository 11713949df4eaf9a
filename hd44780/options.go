// Copyright 2026 The lcdPi Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hd44780

// Opts holds the controller settings applied during Init. The interface
// width is not an option: the expander wiring only has four data lines, so
// the driver always programs 4-bit mode.
//
// TwoLine and Font5x10 are latched by the hardware at Init and cannot be
// changed later without a full re-init. The remaining fields are start
// values for the entry, display, and move modes, adjustable afterwards with
// SetEntryMode, SetDisplayMode, and SetMoveMode.
type Opts struct {
	// TwoLine selects two-line addressing. Required for every panel with
	// more than one row.
	TwoLine bool
	// Font5x10 selects the 5x10 dot font instead of 5x8. Only meaningful
	// on one-line displays.
	Font5x10 bool

	// On, Cursor, and Blink set the initial display mode.
	On     bool
	Cursor bool
	Blink  bool

	// Increment advances the address counter after each character write;
	// Shift scrolls the display instead of moving the cursor.
	Increment bool
	Shift     bool

	// ShiftDisplay and ShiftRight set the initial cursor/display move
	// mode.
	ShiftDisplay bool
	ShiftRight   bool
}

// DefaultOpts suits the common case: two-line panel, display on, cursor
// hidden, left-to-right writing.
var DefaultOpts = Opts{
	TwoLine:   true,
	On:        true,
	Increment: true,
}
