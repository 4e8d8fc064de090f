// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package grayscale

import "sync/atomic"

// threadState is the GPU loop's lifecycle: STOPPED, STARTING, RUNNING,
// STOPPING, stored in a single atomic word so either side can read/write it
// without a lock.
type threadState uint32

const (
	stateStopped threadState = iota
	stateStarting
	stateRunning
	stateStopping
)

// noPendingContrast is the sentinel value meaning "no staged brightness
// change". -1 is outside the valid [0,127] range.
const noPendingContrast int32 = -1

// coordination is the small set of atomically-accessed cells the foreground
// thread and the GPU loop use to hand off work without locks. Every field is
// a single machine word (or, for pendingCmdBuf, an 8-byte scratch area
// guarded by the cmdRequest handshake below) so a single load/store is
// sufficient for correctness; there are no multi-word invariants to protect.
type coordination struct {
	thread          atomic.Uint32
	copyRequest     atomic.Uint32
	cmdRequest      atomic.Uint32
	pendingContrast atomic.Int32

	// pendingCmdBuf is written by the foreground before cmdRequest is set,
	// and read by the GPU loop only after observing cmdRequest==1; the
	// foreground does not touch it again until cmdRequest is cleared. This
	// handshake is what makes the plain (non-atomic) byte array safe.
	pendingCmdBuf [maxPendingCmd]byte
}

func newCoordination() *coordination {
	c := &coordination{}
	c.pendingContrast.Store(noPendingContrast)
	return c
}

func (c *coordination) state() threadState {
	return threadState(c.thread.Load())
}

func (c *coordination) setState(s threadState) {
	c.thread.Store(uint32(s))
}

// spinUntil busy-parks the calling goroutine until cond returns true,
// yielding the processor between checks rather than hot-spinning, so a
// foreground goroutine waiting on the GPU loop doesn't starve other work on
// the same OS thread.
func spinUntil(cond func() bool) {
	for !cond() {
		idleYield()
	}
}
