// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package grayscale

import "testing"

func TestSetGetPixelRoundTrip(t *testing.T) {
	p := NewPlanes()
	for y := 0; y < Height; y += 7 {
		for x := 0; x < Width; x += 5 {
			for c := Color(0); c < 4; c++ {
				p.SetPixel(x, y, c)
				if got := p.GetPixel(x, y); got != c {
					t.Fatalf("SetPixel(%d,%d,%s) then GetPixel = %s", x, y, c, got)
				}
			}
		}
	}
}

func TestSetPixelClipping(t *testing.T) {
	p := NewPlanes()
	before := p.Clone()
	for _, pt := range [][2]int{{-1, 0}, {0, -1}, {Width, 0}, {0, Height}, {-100, -100}, {1000, 1000}} {
		p.SetPixel(pt[0], pt[1], White)
	}
	if p.plane0 != before.plane0 || p.plane1 != before.plane1 {
		t.Fatalf("out-of-range SetPixel mutated the framebuffer")
	}
}

func TestDrawClipping(t *testing.T) {
	p := NewPlanes()
	before := p.Clone()
	p.DrawHLine(0, -5, 10, White)
	p.DrawHLine(0, 0, 0, White)
	p.DrawHLine(0, 0, -1, White)
	p.DrawVLine(-5, 0, 10, White)
	p.DrawVLine(0, 0, 0, White)
	p.DrawFilledRect(0, 0, 0, 10, White)
	p.DrawFilledRect(0, 0, 10, 0, White)
	p.DrawFilledRect(0, 0, -1, -1, White)
	if p.plane0 != before.plane0 || p.plane1 != before.plane1 {
		t.Fatalf("no-op draw calls mutated the framebuffer")
	}
}

func TestFillIdempotent(t *testing.T) {
	for c := Color(0); c < 4; c++ {
		a := NewPlanes()
		a.Fill(c)
		b := a.Clone()
		b.Fill(c)
		if a.plane0 != b.plane0 || a.plane1 != b.plane1 {
			t.Fatalf("Fill(%s) is not idempotent", c)
		}
	}
}

func TestFillPlanes(t *testing.T) {
	p := NewPlanes()
	p.Fill(LightGray) // plane1-only
	for _, b := range p.plane0 {
		if b != 0 {
			t.Fatalf("fill(LightGray): plane0 should be all-zero")
		}
	}
	for _, b := range p.plane1 {
		if b != 0xff {
			t.Fatalf("fill(LightGray): plane1 should be all-0xff")
		}
	}
}

func TestDrawFilledRectOverwritesInnerPixels(t *testing.T) {
	p := NewPlanes()
	p.DrawFilledRect(0, 0, Width, Height, White)
	p.DrawFilledRect(10, 10, 20, 20, Black)
	if got := p.GetPixel(15, 15); got != Black {
		t.Fatalf("GetPixel(15,15) = %s, want Black", got)
	}
	if got := p.GetPixel(5, 5); got != White {
		t.Fatalf("GetPixel(5,5) = %s, want White", got)
	}
}

func TestDrawLineAxisAligned(t *testing.T) {
	p := NewPlanes()
	p.DrawLine(5, 5, 5, 5, White)
	if p.GetPixel(5, 5) != White {
		t.Fatalf("single-point line not drawn")
	}
	p2 := NewPlanes()
	p2.DrawLine(0, 10, 9, 10, White)
	for x := 0; x <= 9; x++ {
		if p2.GetPixel(x, 10) != White {
			t.Fatalf("horizontal line missing pixel at x=%d", x)
		}
	}
}

func TestBlitColorKey(t *testing.T) {
	src0 := []byte{0xff, 0xff} // 2x8 sprite, all plane0 set => every pixel decodes to DarkGray

	// key=-1: no color-keying, every source pixel is painted.
	noKey := NewPlanes()
	noKey.Fill(LightGray)
	noKey.Blit(src0, nil, 0, 0, 2, 8, -1, false, false)
	for y := 0; y < 8; y++ {
		for x := 0; x < 2; x++ {
			if got := noKey.GetPixel(x, y); got != DarkGray {
				t.Fatalf("blit(key=-1): pixel (%d,%d) = %s, want DarkGray", x, y, got)
			}
		}
	}

	// key=DarkGray: every source pixel decodes to the keyed color, so none
	// of them are painted; the destination's prior fill survives untouched.
	keyed := NewPlanes()
	keyed.Fill(LightGray)
	keyed.Blit(src0, nil, 0, 0, 2, 8, int(DarkGray), false, false)
	for y := 0; y < 8; y++ {
		for x := 0; x < 2; x++ {
			if got := keyed.GetPixel(x, y); got != LightGray {
				t.Fatalf("blit(key=DarkGray): pixel (%d,%d) = %s, want LightGray (keyed out)", x, y, got)
			}
		}
	}
}

func TestSetFontDrawText(t *testing.T) {
	p := NewPlanes()
	// A tiny 1-wide font covering space (0x20) through 'A' (0x41); only 'A'
	// has a lit pixel.
	bitmap := make([]byte, 1*34) // width=1, 34 glyphs (space..A)
	bitmap[('A'-0x20)*1] = 0x01  // single lit pixel at row 0
	if err := p.SetFont(bitmap, 1, 8, 1); err != nil {
		t.Fatalf("SetFont: %v", err)
	}
	p.DrawText("A", 3, 0, White)
	if p.GetPixel(3, 0) != White {
		t.Fatalf("DrawText did not set expected pixel")
	}
}

func TestSpriteFrameCycling(t *testing.T) {
	// Two 8x8 frames, one byte per column.
	plane0 := make([]byte, 16)
	for i := range plane0[8:] {
		plane0[8+i] = 0xff
	}
	s := NewSprite(8, 8, plane0, nil, -1, false, false)
	if s.FrameCount != 2 {
		t.Fatalf("FrameCount = %d, want 2", s.FrameCount)
	}
	dst := NewPlanes()
	s.X, s.Y = 0, 0
	dst.DrawSprite(s)
	if dst.GetPixel(0, 0) != Black {
		t.Fatalf("frame 0 should be blank")
	}
	s.SetFrame(1)
	dst2 := NewPlanes()
	dst2.DrawSprite(s)
	if dst2.GetPixel(0, 0) != DarkGray {
		t.Fatalf("frame 1 should be lit (plane0 only)")
	}
}
