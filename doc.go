// Copyright 2026 The lcdPi Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package lcdpi is a container for drivers and apps around HD44780 character
// LCD modules reached through an I2C port expander.
//
// The driver itself lives in hd44780, the expander in mcp23017. The presenter
// package runs concurrent display apps (ticker, calendar) against one shared
// panel, and lcdsim emulates the whole wire protocol for development without
// hardware.
package lcdpi
