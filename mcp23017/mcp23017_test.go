// Copyright 2026 The lcdPi Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mcp23017

import (
	"errors"
	"testing"

	"periph.io/x/conn/v3/i2c/i2ctest"
)

func TestNewAddressRange(t *testing.T) {
	bus := &i2ctest.Playback{DontPanic: true}
	for _, addr := range []uint16{0x1f, 0x28, 0x00} {
		if _, err := New(bus, addr); !errors.Is(err, ErrBadAddress) {
			t.Errorf("New(0x%02x) expected ErrBadAddress, got %v", addr, err)
		}
	}
	d, err := New(bus, DefaultAddress)
	if err != nil {
		t.Fatal(err)
	}
	if s := d.String(); s != "mcp23017_20" {
		t.Errorf("String() = %q", s)
	}
}

func TestWriteByte(t *testing.T) {
	bus := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: 0x20, W: []byte{IODIRB, 0x00}},
			{Addr: 0x20, W: []byte{OLATB, 0xa5}},
		},
		DontPanic: true,
	}
	d, err := New(bus, 0x20)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.WriteByte(IODIRB, 0x00); err != nil {
		t.Error(err)
	}
	if err := d.WriteByte(OLATB, 0xa5); err != nil {
		t.Error(err)
	}
	if err := d.WriteByte(0x20, 0x00); err == nil {
		t.Error("expected error for unknown register")
	}
}

// SetBits/ClearBits work against the shadow, so each call is exactly one
// full-byte bus write.
func TestSetClearBits(t *testing.T) {
	bus := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: 0x21, W: []byte{OLATA, 0x81}},
			{Addr: 0x21, W: []byte{OLATA, 0x91}},
			{Addr: 0x21, W: []byte{OLATA, 0x90}},
		},
		DontPanic: true,
	}
	d, err := New(bus, 0x21)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.SetBits(OLATA, 0x81); err != nil {
		t.Error(err)
	}
	if err := d.SetBits(OLATA, 0x10); err != nil {
		t.Error(err)
	}
	if err := d.ClearBits(OLATA, 0x01); err != nil {
		t.Error(err)
	}
}

// The direction registers shadow the chip's power-on default of all ones, so
// clearing bits in IODIR before any write produces the right value.
func TestDirectionDefaults(t *testing.T) {
	bus := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: 0x20, W: []byte{IODIRB, 0x0f}},
		},
		DontPanic: true,
	}
	d, err := New(bus, 0x20)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.ClearBits(IODIRB, 0xf0); err != nil {
		t.Error(err)
	}
}

func TestReadByte(t *testing.T) {
	bus := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: 0x20, W: []byte{GPIOA}, R: []byte{0x5a}},
		},
		DontPanic: true,
	}
	d, err := New(bus, 0x20)
	if err != nil {
		t.Fatal(err)
	}
	v, err := d.ReadByte(GPIOA)
	if err != nil {
		t.Fatal(err)
	}
	if v != 0x5a {
		t.Errorf("ReadByte(GPIOA) = 0x%02x, expected 0x5a", v)
	}
}

func TestHalt(t *testing.T) {
	bus := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: 0x20, W: []byte{OLATA, 0x00}},
			{Addr: 0x20, W: []byte{OLATB, 0x00}},
		},
		DontPanic: true,
	}
	d, err := New(bus, 0x20)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Halt(); err != nil {
		t.Error(err)
	}
}

// A short playback makes the bus fail mid-sequence; the fault must surface
// wrapped with the package prefix.
func TestBusFault(t *testing.T) {
	bus := &i2ctest.Playback{
		Ops:       []i2ctest.IO{{Addr: 0x20, W: []byte{OLATB, 0x01}}},
		DontPanic: true,
	}
	d, err := New(bus, 0x20)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.SetBits(OLATB, 0x01); err != nil {
		t.Fatal(err)
	}
	if err := d.SetBits(OLATB, 0x02); err == nil {
		t.Error("expected bus fault once playback is exhausted")
	}
}
