// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package grayscale

import (
	"image"
	"image/color"
	"image/draw"
)

// Width and Height are fixed: the sub-frame timing in this package is tuned
// to a single 72x40 SSD1306-class panel's row-scan behavior and does not
// generalize to other sizes or controllers.
const (
	Width  = 72
	Height = 40
	pages  = Height / 8
	// planeSize is the byte length of a single 1-bit plane in column-major
	// page layout: (Width*Height)/8.
	planeSize = pages * Width
)

// Planes is the dual-bitplane framebuffer the rasterizer draws into. Each
// plane is Width*Height/8 bytes, column-major "page" layout: byte index
// (y>>3)*Width + x, bit 1<<(y&7), LSB is the top pixel of the 8-pixel
// column.
//
// A pixel's Color is (plane1_bit<<1) | plane0_bit.
type Planes struct {
	plane0 [planeSize]byte
	plane1 [planeSize]byte

	fontBitmap   []byte
	fontWidth    int
	fontHeight   int
	fontSpace    int
	fontGlyphCnt int
}

// NewPlanes returns an empty (all-black) framebuffer.
func NewPlanes() *Planes {
	return &Planes{}
}

func offset(x, y int) int {
	return (y>>3)*Width + x
}

// Fill sets every pixel to c.
func (p *Planes) Fill(c Color) {
	var f0, f1 byte
	if c&1 != 0 {
		f0 = 0xff
	}
	if c&2 != 0 {
		f1 = 0xff
	}
	for i := range p.plane0 {
		p.plane0[i] = f0
		p.plane1[i] = f1
	}
}

// SetPixel sets the pixel at (x,y) to c. Out-of-range coordinates are a
// silent no-op.
func (p *Planes) SetPixel(x, y int, c Color) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return
	}
	o := offset(x, y)
	m := byte(1) << uint(y&7)
	p.setBit(o, m, c)
}

func (p *Planes) setBit(o int, m byte, c Color) {
	if c&1 != 0 {
		p.plane0[o] |= m
	} else {
		p.plane0[o] &^= m
	}
	if c&2 != 0 {
		p.plane1[o] |= m
	} else {
		p.plane1[o] &^= m
	}
}

// GetPixel returns the Color at (x,y), or Black for out-of-range coordinates.
func (p *Planes) GetPixel(x, y int) Color {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return Black
	}
	o := offset(x, y)
	m := byte(1) << uint(y&7)
	var c Color
	if p.plane0[o]&m != 0 {
		c |= 1
	}
	if p.plane1[o]&m != 0 {
		c |= 2
	}
	return c
}

// DrawHLine draws a horizontal line of length width starting at (x,y).
// width<=0 is a no-op; the line is clipped to the framebuffer bounds.
func (p *Planes) DrawHLine(x, y, width int, c Color) {
	if width <= 0 || y < 0 || y >= Height || x >= Width {
		return
	}
	if x < 0 {
		width += x
		x = 0
	}
	x2 := x + width
	if x2 > Width {
		x2 = Width
	}
	m := byte(1) << uint(y&7)
	row := (y >> 3) * Width
	for ; x < x2; x++ {
		p.setBit(row+x, m, c)
	}
}

// DrawVLine draws a vertical line of length height starting at (x,y).
func (p *Planes) DrawVLine(x, y, height int, c Color) {
	if height <= 0 || x < 0 || x >= Width || y >= Height {
		return
	}
	if y < 0 {
		height += y
		y = 0
	}
	y2 := y + height
	if y2 > Height {
		y2 = Height
	}
	for ; y < y2; y++ {
		p.SetPixel(x, y, c)
	}
}

// DrawRect draws the outline of a width x height rectangle at (x,y).
func (p *Planes) DrawRect(x, y, width, height int, c Color) {
	if width <= 0 || height <= 0 {
		return
	}
	p.DrawHLine(x, y, width, c)
	p.DrawHLine(x, y+height-1, width, c)
	p.DrawVLine(x, y, height, c)
	p.DrawVLine(x+width-1, y, height, c)
}

// DrawFilledRect fills a width x height rectangle at (x,y).
func (p *Planes) DrawFilledRect(x, y, width, height int, c Color) {
	if width <= 0 || height <= 0 {
		return
	}
	x2, y2 := x+width, y+height
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if x2 > Width {
		x2 = Width
	}
	if y2 > Height {
		y2 = Height
	}
	for yy := y; yy < y2; yy++ {
		row := (yy >> 3) * Width
		m := byte(1) << uint(yy&7)
		for xx := x; xx < x2; xx++ {
			p.setBit(row+xx, m, c)
		}
	}
}

// DrawLine draws a line from (x0,y0) to (x1,y1) using Bresenham's algorithm.
func (p *Planes) DrawLine(x0, y0, x1, y1 int, c Color) {
	if x0 == x1 {
		if y0 == y1 {
			p.SetPixel(x0, y0, c)
		} else if y1 > y0 {
			p.DrawVLine(x0, y0, y1-y0+1, c)
		} else {
			p.DrawVLine(x0, y1, y0-y1+1, c)
		}
		return
	}
	if y0 == y1 {
		if x1 > x0 {
			p.DrawHLine(x0, y0, x1-x0+1, c)
		} else {
			p.DrawHLine(x1, y0, x0-x1+1, c)
		}
		return
	}

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	x, y := x0, y0
	for {
		p.SetPixel(x, y, c)
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Clone returns an independent copy of p.
func (p *Planes) Clone() *Planes {
	n := &Planes{fontBitmap: p.fontBitmap, fontWidth: p.fontWidth, fontHeight: p.fontHeight, fontSpace: p.fontSpace, fontGlyphCnt: p.fontGlyphCnt}
	n.plane0 = p.plane0
	n.plane1 = p.plane1
	return n
}

// image.Image / draw.Image implementation, so Planes composes with the
// standard library (image/draw, golang.org/x/image/font) exactly as
// ssd1306.Dev composes with image1bit.VerticalLSB.

// ColorModel implements image.Image.
func (p *Planes) ColorModel() color.Model { return gray2Model }

// Bounds implements image.Image.
func (p *Planes) Bounds() image.Rectangle { return image.Rect(0, 0, Width, Height) }

// At implements image.Image.
func (p *Planes) At(x, y int) color.Color { return p.GetPixel(x, y) }

// Set implements draw.Image.
func (p *Planes) Set(x, y int, c color.Color) {
	p.SetPixel(x, y, gray2Convert(c).(Color))
}

var _ image.Image = (*Planes)(nil)
var _ draw.Image = (*Planes)(nil)

// drawInto composites src into p, the same composition ssd1306.Dev's
// Draw performs against its image1bit plane before handing it to the
// controller.
func drawInto(p *Planes, r image.Rectangle, src image.Image, sp image.Point) {
	draw.Draw(p, r, src, sp, draw.Src)
}
