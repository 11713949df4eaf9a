// Copyright 2026 The lcdPi Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package presenter runs periodic display apps that share one character LCD:
// a scrolling ticker and a date/time calendar. All writers go through a
// Screen, which serializes their position-and-write bursts so output from
// concurrent apps never interleaves character by character on the panel.
package presenter

import (
	"sync"
)

// Display is the command surface the presenters need. *hd44780.Dev
// satisfies it.
type Display interface {
	Goto(row, col int) error
	WriteString(text string) (int, error)
	Cols() int
}

// Screen is the exclusion handle for one physical display. It is passed to
// every presenter and ad hoc caller rather than living as a process global,
// so a second panel is just a second Screen.
type Screen struct {
	mu  sync.Mutex
	dev Display
}

// NewScreen wraps dev for shared use.
func NewScreen(dev Display) *Screen {
	return &Screen{dev: dev}
}

// WriteAt positions the cursor and writes text as one exclusive burst. The
// lock is held across both operations; releasing between them would let
// another writer move the cursor mid burst.
func (s *Screen) WriteAt(row, col int, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.dev.Goto(row, col); err != nil {
		return err
	}
	_, err := s.dev.WriteString(text)
	return err
}

// Do runs f with exclusive use of the display, for ad hoc multi-write
// bursts. The lock is released on every exit path.
func (s *Screen) Do(f func(Display) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return f(s.dev)
}

// Cols returns the width of the underlying panel.
func (s *Screen) Cols() int {
	return s.dev.Cols()
}
