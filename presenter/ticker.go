// Copyright 2026 The lcdPi Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package presenter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	log "github.com/sirupsen/logrus"
)

// MaxText bounds the ticker's text plus padding.
const MaxText = 256

// ErrTextTooLong is returned by Ticker.Run when text plus padding exceeds
// MaxText. The ticker fails fast without touching the display.
var ErrTextTooLong = errors.New("presenter: ticker text exceeds MaxText")

// Ticker scrolls a line of text across one display row.
type Ticker struct {
	// Text to scroll.
	Text string
	// Padding is the number of trailing spaces appended so the wrap-around
	// doesn't run the tail straight into the head.
	Padding int
	// Increment is how many characters the text advances per tick.
	// Defaults to 1.
	Increment int
	// Row to scroll on.
	Row int
	// Delay between ticks. Defaults to 300ms.
	Delay time.Duration
	// Clock defaults to the wall clock. Tests inject a fake.
	Clock clockwork.Clock
}

// Run scrolls until ctx is canceled and returns the cancellation cause, or
// the first display error. The display is left showing whatever the last
// tick wrote; cleaning up is the next writer's business.
func (t *Ticker) Run(ctx context.Context, scr *Screen) error {
	pad := t.Padding
	if pad < 0 {
		pad = 0
	}
	if len(t.Text)+pad > MaxText {
		return fmt.Errorf("%w: %d+%d", ErrTextTooLong, len(t.Text), pad)
	}
	clock := t.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	inc := t.Increment
	if inc <= 0 {
		inc = 1
	}
	delay := t.Delay
	if delay <= 0 {
		delay = 300 * time.Millisecond
	}

	buf := append([]byte(t.Text), bytes.Repeat([]byte{' '}, pad)...)
	window := scr.Cols()
	if window > len(buf) {
		window = len(buf)
	}
	log.WithFields(log.Fields{"row": t.Row, "length": len(buf)}).Info("ticker started")

	for {
		if err := scr.WriteAt(t.Row, 0, string(buf[:window])); err != nil {
			log.WithError(err).Error("ticker write failed")
			return err
		}
		select {
		case <-ctx.Done():
			log.WithField("row", t.Row).Info("ticker stopped")
			return ctx.Err()
		case <-clock.After(delay):
		}
		rotate(buf, inc)
	}
}
