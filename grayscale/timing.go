// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package grayscale

import (
	"runtime"
	"time"
)

// Timing constants derived from the SSD1306's internal row clock: a row
// period of 50 display-clocks at roughly 530kHz is ~96.2us/row. The
// pre-frame window parks 8 rows; the full frame window scans 48 rows of a
// 57-row window (giving +/-8.5 rows of slack against RC-oscillator and
// scheduler jitter).
const (
	PreFrameUS  = 785 * time.Microsecond
	FrameTimeUS = 4709 * time.Microsecond
)

// idleYield gives up the processor briefly. Used by the foreground side
// while spinning on a coordination flag; it must not be used on the GPU
// loop's own deadline waits, which need tighter control over how long they
// block.
func idleYield() {
	runtime.Gosched()
}

// sleepUntil blocks until deadline, in two stages mirroring the loop's own
// sleep_ms-then-sleep_us approach: a coarse time.Sleep lets the scheduler
// put the goroutine aside for the bulk of the wait, followed by a tight spin
// for the final sub-millisecond remainder so the deadline is hit precisely.
func sleepUntil(deadline time.Time) {
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return
		}
		if remaining > 2*time.Millisecond {
			time.Sleep(remaining - time.Millisecond)
			continue
		}
		if remaining > 50*time.Microsecond {
			time.Sleep(10 * time.Microsecond)
			continue
		}
		runtime.Gosched()
	}
}
