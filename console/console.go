// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package console

import (
	"bytes"
	"fmt"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	colorable "github.com/mattn/go-colorable"

	"github.com/thumbygray/grayscale/grayscale"
)

// shades maps the panel's four Color levels to the grays screen1d's palette
// picks ANSI blocks from.
var shades = [4]color.NRGBA{
	grayscale.Black:     {R: 0, G: 0, B: 0, A: 255},
	grayscale.DarkGray:  {R: 85, G: 85, B: 85, A: 255},
	grayscale.LightGray: {R: 170, G: 170, B: 170, A: 255},
	grayscale.White:     {R: 255, G: 255, B: 255, A: 255},
}

// Render writes p as a grid of ANSI-colored blocks, one per pixel, to w. It
// is a pure function of p's pixel values and palette: identical planes
// produce a byte-identical string, so it is testable against a bytes.Buffer
// without a real terminal.
func Render(w io.Writer, p *grayscale.Planes, palette *ansi256.Palette) error {
	if palette == nil {
		palette = ansi256.Default
	}
	var buf bytes.Buffer
	for y := 0; y < grayscale.Height; y++ {
		buf.WriteString("\033[0m")
		for x := 0; x < grayscale.Width; x++ {
			c := p.GetPixel(x, y)
			buf.WriteString(palette.Block(shades[c]))
		}
		buf.WriteString("\033[0m\n")
	}
	_, err := buf.WriteTo(w)
	return err
}

// Dev is a console preview device: a display.Drawer-adjacent sink that
// renders whatever Planes it's given straight to a terminal, grounded on
// screen1d.Dev's stdout wiring.
type Dev struct {
	w       io.Writer
	palette ansi256.Palette
}

// Opts configures Dev construction.
type Opts struct {
	// Palette overrides the default 256-color ANSI palette used for the four
	// gray shades.
	Palette *ansi256.Palette
}

// New returns a Dev that writes to the real terminal via go-colorable, the
// same wrapper screen1d.New uses so ANSI escapes render correctly on
// Windows consoles too.
func New(opts Opts) *Dev {
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	return &Dev{w: colorable.NewColorableStdout(), palette: *p}
}

// String implements fmt.Stringer.
func (d *Dev) String() string { return "console.Dev" }

// Halt resets the terminal's color state.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\033[0m\n"))
	return err
}

// Show renders p to the terminal.
func (d *Dev) Show(p *grayscale.Planes) error {
	return Render(d.w, p, &d.palette)
}

var _ fmt.Stringer = (*Dev)(nil)
