// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package grayscale

import (
	"image"
	"image/color"
	"runtime"
	"time"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/spi"
)

// Logger is the minimal seam the GPU loop uses to report recoverable SPI
// faults. *log.Logger satisfies it; nil means "stay silent" (the default).
type Logger interface {
	Printf(format string, v ...any)
}

// panelIO is the subset of *panel the GPU loop and facade depend on. It
// exists so the engine's coordination/timing logic can be exercised in
// tests against a fake, without needing a real SPI bus and GPIO lines.
type panelIO interface {
	writeCmd(b []byte) error
	writeData(b []byte) error
	initGrayscale() error
	initConventional() error
}

var _ panelIO = (*panel)(nil)

// Engine is the grayscale frame engine: it owns the panel driver, the
// foreground-visible framebuffer, the GPU loop's private sub-frame buffers,
// and the coordination cells connecting them. Construction is fallible and
// there is no package-level singleton; callers create and pass around an
// explicit *Engine, starting and stopping it as their own lifecycle
// requires.
type Engine struct {
	drv    panelIO
	planes *Planes
	sub    subframes
	coord  *coordination
	log    Logger

	postFrameAdj [3][2]byte

	frameInterval time.Duration
	lastTick      time.Time

	stopped chan struct{}
}

// Opts configures Engine construction.
type Opts struct {
	// DC, CS and RES are the three GPIO lines the SSD1306 grayscale
	// technique needs direct, non-automatic control of.
	DC, CS, RES gpio.PinOut
	// Logger optionally receives diagnostic messages from the GPU loop.
	// May be nil.
	Logger Logger
}

// New creates an Engine bound to an SPI port and the three control GPIOs.
// It does not start the GPU loop; call Start for that.
func New(port spi.Port, opts Opts) (*Engine, error) {
	p, err := newPanel(port, opts.DC, opts.CS, opts.RES)
	if err != nil {
		return nil, err
	}
	e := &Engine{
		drv:    p,
		planes: NewPlanes(),
		coord:  newCoordination(),
		log:    opts.Logger,
	}
	e.setContrastBytes(127)
	return e, nil
}

// Planes returns the engine's live framebuffer. The rasterizer (any code
// implementing the drawing operations in this package, or a caller's own)
// writes into it and calls Show when a frame is ready: writes reach
// plane0/plane1, and Show is how a completed frame is handed to the GPU
// loop.
func (e *Engine) Planes() *Planes { return e.planes }

func (e *Engine) setContrastBytes(c byte) {
	e.postFrameAdj[0] = [2]byte{cmdSetContrast, c >> 5}
	e.postFrameAdj[1] = [2]byte{cmdSetContrast, c >> 1}
	e.postFrameAdj[2] = [2]byte{cmdSetContrast, (c << 1) | 1}
}

// Start launches the GPU loop if not already running. Idempotent.
func (e *Engine) Start() error {
	if e.coord.state() != stateStopped {
		return nil
	}
	if err := e.drv.initGrayscale(); err != nil {
		return err
	}
	e.coord.setState(stateStarting)
	e.stopped = make(chan struct{})
	go e.gpuLoop()
	spinUntil(func() bool { return e.coord.state() == stateRunning })
	return nil
}

// Stop halts the GPU loop, waits for it to finish its current cycle, and
// reinitializes the panel in conventional (non-grayscale) mode, pushing
// plane0 as a plain 1-bit frame. Idempotent.
func (e *Engine) Stop() error {
	if e.coord.state() == stateStopped {
		return nil
	}
	e.coord.setState(stateStopping)
	spinUntil(func() bool { return e.coord.state() == stateStopped })
	<-e.stopped
	if err := e.drv.initConventional(); err != nil {
		return err
	}
	return e.writeDirect(e.planes.plane0[:])
}

// running reports whether the GPU loop currently owns the SPI bus.
func (e *Engine) running() bool {
	return e.coord.state() == stateRunning
}

func (e *Engine) writeDirect(plane0 []byte) error {
	return e.drv.writeData(plane0)
}

// Show hands the current framebuffer contents to the GPU loop and blocks
// until the compositor has copied it into the sub-frame buffers — at most
// one GPU cycle (3 x (PreFrameUS+FrameTimeUS), about 16.5ms). If the engine isn't running, there's no GPU loop
// to composite sub-frames, so the write goes straight to SPI as plane0
// only: no grayscale, just a plain 1-bit frame.
func (e *Engine) Show() error {
	if !e.running() {
		return e.writeDirect(e.planes.plane0[:])
	}
	e.coord.copyRequest.Store(1)
	spinUntil(func() bool { return e.coord.copyRequest.Load() == 0 || !e.running() })
	if e.coord.copyRequest.Load() != 0 {
		return ErrCommandCanceled
	}
	return nil
}

// ShowAsync is like Show but returns immediately; the swap happens at the
// end of the GPU loop's next cycle.
func (e *Engine) ShowAsync() error {
	if !e.running() {
		return e.writeDirect(e.planes.plane0[:])
	}
	e.coord.copyRequest.Store(1)
	return nil
}

// Brightness stages a new contrast value, clamped to [0,127]. If the engine
// is running, the GPU loop picks it up at the end of its current cycle; if
// stopped, it's applied immediately and written directly over SPI.
func (e *Engine) Brightness(c int) error {
	c = clampContrast(c)
	if e.running() {
		e.coord.pendingContrast.Store(int32(c))
		return nil
	}
	e.setContrastBytes(byte(c))
	return e.drv.writeCmd([]byte{cmdSetContrast, byte(c)})
}

// BrightnessSync is like Brightness but, if running, blocks until the GPU
// loop has consumed the staged value.
func (e *Engine) BrightnessSync(c int) error {
	c = clampContrast(c)
	if !e.running() {
		return e.Brightness(c)
	}
	e.coord.pendingContrast.Store(int32(c))
	spinUntil(func() bool { return e.coord.pendingContrast.Load() == noPendingContrast || !e.running() })
	if e.coord.pendingContrast.Load() != noPendingContrast {
		return ErrCommandCanceled
	}
	return nil
}

func clampContrast(c int) int {
	if c < 0 {
		return 0
	}
	if c > 127 {
		return 127
	}
	return c
}

// WriteCmd sends a raw command. While running, it is staged into the
// 8-byte pending-command scratch (padded with NOP) and the call blocks
// until the GPU loop has sent it; while stopped, it goes straight to SPI.
// ErrCommandTooLong is returned for commands over 8 bytes while running.
func (e *Engine) WriteCmd(cmd []byte) error {
	if !e.running() {
		return e.drv.writeCmd(cmd)
	}
	if len(cmd) > maxPendingCmd {
		return ErrCommandTooLong
	}
	var buf [maxPendingCmd]byte
	copy(buf[:], cmd)
	for i := len(cmd); i < maxPendingCmd; i++ {
		buf[i] = cmdNop
	}
	e.coord.pendingCmdBuf = buf
	e.coord.cmdRequest.Store(1)
	spinUntil(func() bool { return e.coord.cmdRequest.Load() == 0 || !e.running() })
	if e.coord.cmdRequest.Load() != 0 {
		return ErrCommandCanceled
	}
	return nil
}

// PowerOff turns the display off without stopping the GPU loop.
func (e *Engine) PowerOff() error { return e.WriteCmd([]byte{cmdDisplayOff}) }

// PowerOn turns the display back on.
func (e *Engine) PowerOn() error { return e.WriteCmd([]byte{cmdDisplayOn}) }

// SetFrameRate caps Tick's pacing to fps frames per second. fps<=0 disables
// the cap (Tick then just calls Show).
func (e *Engine) SetFrameRate(fps int) {
	if fps <= 0 {
		e.frameInterval = 0
		return
	}
	e.frameInterval = time.Second / time.Duration(fps)
}

// Tick shows the current frame and, if a frame rate has been set via
// SetFrameRate, sleeps out the remainder of the frame interval. This is
// deliberately just a rate cap, not an animation scheduler: callers decide
// what to draw each frame and Tick only paces how often it's shown.
func (e *Engine) Tick() error {
	if err := e.Show(); err != nil {
		return err
	}
	if e.frameInterval > 0 {
		deadline := e.lastTick.Add(e.frameInterval)
		if now := time.Now(); now.Before(deadline) {
			time.Sleep(deadline.Sub(now))
		}
	}
	e.lastTick = time.Now()
	return nil
}

// Run starts the engine, invokes fn, and guarantees Stop is called on every
// exit path, so callers don't have to remember to tear the GPU loop down
// themselves.
func Run(port spi.Port, opts Opts, fn func(*Engine) error) error {
	e, err := New(port, opts)
	if err != nil {
		return err
	}
	if err := e.Start(); err != nil {
		return err
	}
	defer e.Stop()
	return fn(e)
}

// gpuLoop runs on its own goroutine for the engine's lifetime. LockOSThread
// pins it to a single OS thread, the closest stdlib equivalent to "a
// dedicated second CPU core" available outside a scheduler that supports
// explicit core affinity: once locked, the Go runtime will not migrate this
// goroutine's work onto another OS thread out from under it, and no other
// goroutine shares that thread.
func (e *Engine) gpuLoop() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	e.coord.setState(stateRunning)
	for e.coord.state() == stateRunning {
		e.runCycle()
	}
	e.drainStop()
	close(e.stopped)
}

// runCycle streams sub-frames 0, 1 and 2 in order. Each sub-frame parks the
// row scanner, streams its GDRAM payload and a first contrast byte, waits
// out the parked window, then restores the display offset and multiplex
// count to release the scanner, resends the contrast byte, and (on the
// last sub-frame only) services one piece of pending work before waiting
// out the rest of the frame period.
func (e *Engine) runCycle() {
	preFrameCmd := []byte{cmdSetMultiplex, 0, cmdSetDisplayOffset, 52}
	postFrameCmd := []byte{cmdSetDisplayOffset, 40 + (64 - 57), cmdSetMultiplex, 56}

	for n := 0; n < 3; n++ {
		t0 := time.Now()

		e.sendOrLog(e.drv.writeCmd(preFrameCmd))
		e.sendOrLog(e.drv.writeData(e.sub[n][:]))
		e.sendOrLog(e.drv.writeCmd(e.postFrameAdj[n][:]))

		sleepUntil(t0.Add(PreFrameUS))
		t0 = time.Now()

		e.sendOrLog(e.drv.writeCmd(postFrameCmd))
		// Sent a second time: a single send visibly glitches, believed to
		// be an internal latch of the contrast only at certain row
		// boundaries.
		e.sendOrLog(e.drv.writeCmd(e.postFrameAdj[n][:]))

		if n == 2 {
			e.drainPendingWork()
		}

		sleepUntil(t0.Add(FrameTimeUS))
	}
}

// drainPendingWork services exactly one of {copy, contrast, cmd} at the
// trailing edge of sub-frame 2, in that priority order. This is
// intentionally else-if, not all-three: servicing more than one would make
// the tail of sub-frame 2 unpredictable and risk overshooting the next
// PreFrameUS window. Unserviced flags simply persist to the next cycle, so
// nothing is starved as long as the foreground doesn't keep re-arming a
// higher-priority flag every single cycle.
func (e *Engine) drainPendingWork() {
	if e.coord.copyRequest.Load() != 0 {
		e.sub.compose(e.planes)
		e.coord.copyRequest.Store(0)
		return
	}
	if c := e.coord.pendingContrast.Load(); c != noPendingContrast {
		e.coord.pendingContrast.Store(noPendingContrast)
		e.setContrastBytes(byte(c))
		return
	}
	if e.coord.cmdRequest.Load() != 0 {
		e.sendOrLog(e.drv.writeCmd(e.coord.pendingCmdBuf[:]))
		e.coord.cmdRequest.Store(0)
	}
}

// drainStop finalizes the GPU loop's exit. Pushing the conventional-mode
// frame to the panel is the facade's job (Stop re-inits and writes plane0
// itself once this has returned); drainStop only needs to flip the state
// cell so Stop's spin-wait unblocks.
func (e *Engine) drainStop() {
	e.coord.setState(stateStopped)
}

func (e *Engine) sendOrLog(err error) {
	if err != nil && e.log != nil {
		e.log.Printf("grayscale: spi write failed: %v", err)
	}
}

// display.Drawer implementation, so an Engine composes with any
// periph-ecosystem image source the same way ssd1306.Dev does.

// ColorModel implements display.Drawer.
func (e *Engine) ColorModel() color.Model { return e.planes.ColorModel() }

// Bounds implements display.Drawer.
func (e *Engine) Bounds() image.Rectangle { return e.planes.Bounds() }

// Draw implements display.Drawer: it composites src into the framebuffer
// and calls Show.
func (e *Engine) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	drawInto(e.planes, r, src, sp)
	return e.Show()
}

var _ display.Drawer = (*Engine)(nil)
