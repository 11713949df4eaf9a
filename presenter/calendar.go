// Copyright 2026 The lcdPi Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package presenter

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	log "github.com/sirupsen/logrus"
)

// Calendar shows the local date and time at a fixed position, alternating
// between two layouts each frame. Giving the second layout a space where the
// first has a colon makes the separator blink.
type Calendar struct {
	// Formats are Go reference-time layouts, one per frame. An empty
	// second layout reuses the first; an empty first defaults to
	// "15:04:05".
	Formats [2]string
	// Row and Col of the first character.
	Row, Col int
	// Delay between frames. Sub-second values work and drive the blink
	// rate. Defaults to 1s.
	Delay time.Duration
	// Clock defaults to the wall clock. Tests inject a fake.
	Clock clockwork.Clock
}

// Run displays frames until ctx is canceled and returns the cancellation
// cause, or the first display error.
func (c *Calendar) Run(ctx context.Context, scr *Screen) error {
	clock := c.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	delay := c.Delay
	if delay <= 0 {
		delay = time.Second
	}
	formats := c.Formats
	if formats[0] == "" {
		formats[0] = "15:04:05"
	}
	if formats[1] == "" {
		formats[1] = formats[0]
	}
	log.WithFields(log.Fields{"row": c.Row, "col": c.Col}).Info("calendar started")

	frame := 0
	for {
		text := clock.Now().Local().Format(formats[frame])
		frame ^= 1
		if err := scr.WriteAt(c.Row, c.Col, text); err != nil {
			log.WithError(err).Error("calendar write failed")
			return err
		}
		select {
		case <-ctx.Done():
			log.WithField("row", c.Row).Info("calendar stopped")
			return ctx.Err()
		case <-clock.After(delay):
		}
	}
}
