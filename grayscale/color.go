// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package grayscale

import "image/color"

// Color is a 2-bit grayscale pixel value in [0,3]. Bit 0 selects plane0, bit
// 1 selects plane1.
type Color uint8

// The four apparent brightnesses the sub-frame technique can produce. This
// mapping is a design invariant: the compositor in subframes.go, the console
// and calibration renderers, and every test all assume DARKGRAY is
// plane0-only and LIGHTGRAY is plane1-only.
const (
	Black     Color = 0
	DarkGray  Color = 1
	LightGray Color = 2
	White     Color = 3
)

func (c Color) String() string {
	switch c & 3 {
	case Black:
		return "Black"
	case DarkGray:
		return "DarkGray"
	case LightGray:
		return "LightGray"
	default:
		return "White"
	}
}

// RGBA implements color.Color so a Color can be used anywhere a standard
// image color is expected (console/calibration rendering, image/draw
// compositing).
func (c Color) RGBA() (r, g, b, a uint32) {
	var v uint16
	switch c & 3 {
	case Black:
		v = 0x0000
	case DarkGray:
		v = 0x5555
	case LightGray:
		v = 0xaaaa
	case White:
		v = 0xffff
	}
	return uint32(v), uint32(v), uint32(v), 0xffff
}

// gray2Model is the color.Model all framebuffer images use: it quantizes any
// source color into one of the four Color levels by luminance.
var gray2Model = color.ModelFunc(gray2Convert)

func gray2Convert(c color.Color) color.Color {
	if g2, ok := c.(Color); ok {
		return g2
	}
	r, g, b, _ := c.RGBA()
	// Rec. 601 luma, reduced to 2 bits.
	y := (19595*uint64(r) + 38470*uint64(g) + 7471*uint64(b) + 1<<15) >> 24
	switch {
	case y < 64:
		return Black
	case y < 128:
		return DarkGray
	case y < 192:
		return LightGray
	default:
		return White
	}
}
