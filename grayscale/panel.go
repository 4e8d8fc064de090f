// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package grayscale

import (
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// SSD1306 command bytes used by this package. Only the subset needed for
// the grayscale init sequence and the GPU loop's runtime commands.
const (
	cmdDisplayOff       = 0xae
	cmdDisplayOn        = 0xaf
	cmdMemoryMode       = 0x20
	cmdSetStartLine     = 0x40
	cmdSegRemap1        = 0xa1
	cmdSetMultiplex     = 0xa8
	cmdComScanDec       = 0xc8
	cmdSetDisplayOffset = 0xd3
	cmdSetComPins       = 0xda
	cmdSetClockDiv      = 0xd5
	cmdSetPrecharge     = 0xd9
	cmdSetVcomDetect    = 0xdb
	cmdSetContrast      = 0x81
	cmdDisplayAllOn     = 0xa4
	cmdNormalDisplay    = 0xa6
	cmdChargePump       = 0x8d
	cmdIref             = 0xad
	cmdColumnAddr       = 0x21
	cmdPageAddr         = 0x22
	cmdNop              = 0x3e
)

// GDRAM window the 72x40 panel occupies within the controller's 128-column,
// 64-row address space.
const (
	gdramColStart = 28
	gdramColEnd   = 99
	gdramPageEnd  = 4
)

// panel is a thin wrapper over the SPI bus and the three GPIO lines the
// SSD1306 grayscale technique requires direct control of (DC, CS, RES). It
// carries no policy of its own: reset timing and the init command list live
// here because they're one-shot hardware facts, not because panel decides
// when to use them.
type panel struct {
	c   conn.Conn
	dc  gpio.PinOut
	cs  gpio.PinOut
	res gpio.PinOut
}

// newPanel opens a 100MHz, mode-0 SPI connection and stores the three
// GPIO lines as given. CS is not managed automatically by the spi.Port: per the
// grayscale timing trick this driver holds it low for the engine's entire
// lifetime instead of toggling it per transaction.
func newPanel(port spi.Port, dc, cs, res gpio.PinOut) (*panel, error) {
	c, err := port.Connect(100*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}
	return &panel{c: c, dc: dc, cs: cs, res: res}, nil
}

// reset pulses RES low for 10ms between two 1ms idle settles.
func (p *panel) reset() error {
	if err := p.res.Out(gpio.High); err != nil {
		return err
	}
	time.Sleep(time.Millisecond)
	if err := p.res.Out(gpio.Low); err != nil {
		return err
	}
	time.Sleep(10 * time.Millisecond)
	if err := p.res.Out(gpio.High); err != nil {
		return err
	}
	time.Sleep(time.Millisecond)
	return nil
}

func (p *panel) writeCmd(b []byte) error {
	if err := p.dc.Out(gpio.Low); err != nil {
		return err
	}
	return p.c.Tx(b, nil)
}

func (p *panel) writeData(b []byte) error {
	if err := p.dc.Out(gpio.High); err != nil {
		return err
	}
	return p.c.Tx(b, nil)
}

// grayscaleInitCmd is the one-shot initialization sequence sent at Start:
// shortest pre-charge periods and the highest oscillator setting shrink
// each row to ~96us, which is what gives the GPU loop its timing budget.
func grayscaleInitCmd() []byte {
	return []byte{
		cmdDisplayOff,
		cmdMemoryMode, 0x00, // horizontal addressing mode
		cmdSetStartLine, // start line 0
		cmdSegRemap1,    // segment remap 1
		cmdSetMultiplex, 63, // multiplex 64 (transient, parked/restored by the GPU loop)
		cmdComScanDec,          // COM scan direction 1
		cmdSetDisplayOffset, 0, // display offset 0
		cmdSetComPins, 0x12, // COM pins alternative, no L/R remap
		cmdSetClockDiv, 0xf0, // clock-divide=1, oscillator ~370kHz (highest)
		cmdSetPrecharge, 0x11, // phase1=phase2=1 (shortest)
		cmdSetVcomDetect, 0x20, // Vcomh deselect 0.77 x Vcc
		cmdSetContrast, 127, // contrast 127 (transient)
		cmdDisplayAllOn,  // use GDRAM
		cmdNormalDisplay, // non-inverse
		cmdChargePump, 0x14,
		cmdIref, 0x30, // 30uA Iref
		cmdDisplayOn,
	}
}

// conventionalInitCmd is the non-grayscale re-init pushed by Stop so the
// panel behaves like a regular 1-bit display once the GPU loop has exited.
func conventionalInitCmd() []byte {
	return []byte{
		cmdDisplayOff,
		cmdMemoryMode, 0x00,
		cmdSetStartLine,
		cmdSegRemap1,
		cmdSetMultiplex, Height - 1,
		cmdComScanDec,
		cmdSetDisplayOffset, 0,
		cmdSetComPins, 0x12,
		cmdSetClockDiv, 0x80,
		cmdSetPrecharge, 0xf1,
		cmdSetVcomDetect, 0x20,
		cmdSetContrast, 127,
		cmdDisplayAllOn,
		cmdNormalDisplay,
		cmdChargePump, 0x14,
		cmdIref, 0x30,
		cmdDisplayOn,
		cmdColumnAddr, gdramColStart, gdramColEnd,
		cmdPageAddr, 0, gdramPageEnd,
	}
}

func windowCmd() []byte {
	return []byte{cmdColumnAddr, gdramColStart, gdramColEnd, cmdPageAddr, 0, gdramPageEnd}
}

// initGrayscale resets the panel, sends the grayscale init sequence, clears
// 1024 bytes of GDRAM and sets the 72x40 column/page window. CS is pulled
// and held low afterward for the rest of the engine's lifetime.
func (p *panel) initGrayscale() error {
	if err := p.reset(); err != nil {
		return err
	}
	if err := p.cs.Out(gpio.Low); err != nil {
		return err
	}
	if err := p.writeCmd(grayscaleInitCmd()); err != nil {
		return err
	}
	zero := make([]byte, 32)
	if err := p.dc.Out(gpio.High); err != nil {
		return err
	}
	for i := 0; i < 32; i++ {
		if err := p.c.Tx(zero, nil); err != nil {
			return err
		}
	}
	return p.writeCmd(windowCmd())
}

// initConventional reinitializes the panel in plain 1-bit mode, used by
// Stop.
func (p *panel) initConventional() error {
	if err := p.cs.Out(gpio.High); err != nil {
		return err
	}
	if err := p.reset(); err != nil {
		return err
	}
	if err := p.cs.Out(gpio.Low); err != nil {
		return err
	}
	return p.writeCmd(conventionalInitCmd())
}
