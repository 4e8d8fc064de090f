// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package grayscale

import "fmt"

// SetFont loads a monospaced glyph bitmap table: width*height bits per
// glyph, column-major, one byte per column (matching the framebuffer's own
// page layout), packed glyph-by-glyph. The glyph count is
// len(bitmap)/width. Character codes are ord(c)-0x20, so the table must
// start at the ASCII space character.
func (p *Planes) SetFont(bitmap []byte, width, height, space int) error {
	if width <= 0 || len(bitmap)%width != 0 {
		return fmt.Errorf("grayscale: invalid font bitmap: %d bytes does not divide by width %d", len(bitmap), width)
	}
	p.fontBitmap = bitmap
	p.fontWidth = width
	p.fontHeight = height
	p.fontSpace = space
	p.fontGlyphCnt = len(bitmap) / width
	return nil
}

// DrawText renders txt starting at (x,y) using the font loaded by SetFont.
// Each glyph column is shifted by y&7 across the upper and lower destination
// bytes so text can start at any row, not just page boundaries.
func (p *Planes) DrawText(txt string, x, y int, c Color) {
	if p.fontBitmap == nil {
		return
	}
	sm0on, sm1on := byte(0), byte(0)
	if c&1 != 0 {
		sm0on = 0xff
	}
	if c&2 != 0 {
		sm1on = 0xff
	}
	sm0off, sm1off := ^sm0on, ^sm1on

	shu := uint(y & 7)
	shl := 8 - shu

	for _, ch := range txt {
		code := int(ch) - 0x20
		if code < 0 || code >= p.fontGlyphCnt {
			x += p.fontWidth + p.fontSpace
			continue
		}
		gi := code * p.fontWidth
		for gx := 0; gx < p.fontWidth; gx++ {
			if x >= 0 && x < Width {
				gb := p.fontBitmap[gi+gx]
				upperRow := y >> 3
				if upperRow >= 0 && upperRow < pages {
					ou := upperRow*Width + x
					gbu := gb << shu
					p.plane0[ou] = (p.plane0[ou] | (gbu & sm0on)) &^ (gbu & sm0off)
					p.plane1[ou] = (p.plane1[ou] | (gbu & sm1on)) &^ (gbu & sm1off)
				}
				if shl != 8 {
					lowerRow := upperRow + 1
					if lowerRow >= 0 && lowerRow < pages {
						ol := lowerRow*Width + x
						gbl := gb >> shl
						p.plane0[ol] = (p.plane0[ol] | (gbl & sm0on)) &^ (gbl & sm0off)
						p.plane1[ol] = (p.plane1[ol] | (gbl & sm1on)) &^ (gbl & sm1off)
					}
				}
			}
			x++
		}
		x += p.fontSpace
	}
}
