// Copyright 2026 The lcdPi Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hd44780

import (
	"periph.io/x/conn/v3/i2c"

	"github.com/alidaf/lcdpi/mcp23017"
)

// NewMCP23017Backpack returns an initialized display wired through port B of
// an MCP23017 expander with the default pin map. The port is configured for
// output with all lines low, then the full bring-up sequence runs.
//
// Port A of the expander remains free for other uses.
func NewMCP23017Backpack(bus i2c.Bus, address uint16, geom Geometry, opts *Opts) (*Dev, error) {
	exp, err := mcp23017.New(bus, address)
	if err != nil {
		return nil, err
	}
	if err := exp.WriteByte(mcp23017.IODIRB, 0x00); err != nil {
		return nil, err
	}
	if err := exp.WriteByte(mcp23017.OLATB, 0x00); err != nil {
		return nil, err
	}
	d, err := New(exp, mcp23017.OLATB, DefaultPinMap, geom, opts)
	if err != nil {
		return nil, err
	}
	if err := d.Init(nil); err != nil {
		return nil, err
	}
	return d, nil
}
