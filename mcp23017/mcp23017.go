// Copyright 2026 The lcdPi Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package mcp23017 provides a driver for the Microchip MCP23017 16-bit I2C
// I/O expander. The device exposes two 8-bit ports (A and B); each port has
// a direction register, a pull-up register, and an output latch.
//
// The driver keeps a shadow copy of the writable registers so that SetBits
// and ClearBits are a single bus write each instead of a read-modify-write
// transaction. This assumes the process is the only writer to the device.
//
// # Datasheet
//
// http://ww1.microchip.com/downloads/en/DeviceDoc/21952b.pdf
package mcp23017

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/mmr"
)

// Register addresses with IOCON.BANK = 0, the power-on default.
const (
	IODIRA uint8 = 0x00
	IODIRB uint8 = 0x01
	IPOLA  uint8 = 0x02
	IPOLB  uint8 = 0x03
	GPPUA  uint8 = 0x0c
	GPPUB  uint8 = 0x0d
	GPIOA  uint8 = 0x12
	GPIOB  uint8 = 0x13
	OLATA  uint8 = 0x14
	OLATB  uint8 = 0x15

	registerCount = 0x16
)

// DefaultAddress is the bus address with A0..A2 tied to ground.
const DefaultAddress uint16 = 0x20

// ErrBadAddress is returned by New for addresses outside the range the
// three hardware address pins can select.
var ErrBadAddress = errors.New("mcp23017: address must be in 0x20..0x27")

// Dev is a handle to an MCP23017 on an I2C bus.
type Dev struct {
	mu     sync.Mutex
	c      mmr.Dev8
	addr   uint16
	shadow [registerCount]uint8
}

// New returns a handle to the expander at addr. No bus traffic happens until
// the first register operation; the shadow registers start at the chip's
// power-on defaults (all pins input, output latches low).
func New(bus i2c.Bus, addr uint16) (*Dev, error) {
	if addr < 0x20 || addr > 0x27 {
		return nil, ErrBadAddress
	}
	d := &Dev{
		c:    mmr.Dev8{Conn: &i2c.Dev{Bus: bus, Addr: addr}, Order: binary.LittleEndian},
		addr: addr,
	}
	d.shadow[IODIRA] = 0xff
	d.shadow[IODIRB] = 0xff
	return d, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("mcp23017_%x", d.addr)
}

// WriteByte writes value to the register at reg and updates the shadow.
func (d *Dev) WriteByte(reg, value uint8) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.write(reg, value)
}

// SetBits sets the bits of mask in the register at reg, leaving the other
// bits at their shadowed value.
func (d *Dev) SetBits(reg, mask uint8) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if int(reg) >= registerCount {
		return fmt.Errorf("mcp23017: no register 0x%02x", reg)
	}
	return d.write(reg, d.shadow[reg]|mask)
}

// ClearBits clears the bits of mask in the register at reg.
func (d *Dev) ClearBits(reg, mask uint8) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if int(reg) >= registerCount {
		return fmt.Errorf("mcp23017: no register 0x%02x", reg)
	}
	return d.write(reg, d.shadow[reg]&^mask)
}

// ReadByte reads the register at reg from the device.
func (d *Dev) ReadByte(reg uint8) (uint8, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if int(reg) >= registerCount {
		return 0, fmt.Errorf("mcp23017: no register 0x%02x", reg)
	}
	v, err := d.c.ReadUint8(reg)
	if err != nil {
		return 0, fmt.Errorf("mcp23017: %w", err)
	}
	return v, nil
}

// Halt drives both output latches low.
func (d *Dev) Halt() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.write(OLATA, 0x00); err != nil {
		return err
	}
	return d.write(OLATB, 0x00)
}

func (d *Dev) write(reg, value uint8) error {
	if int(reg) >= registerCount {
		return fmt.Errorf("mcp23017: no register 0x%02x", reg)
	}
	if err := d.c.WriteUint8(reg, value); err != nil {
		return fmt.Errorf("mcp23017: %w", err)
	}
	d.shadow[reg] = value
	return nil
}

var _ conn.Resource = &Dev{}
