// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package grayscale

import "testing"

func TestCompositorIdentity(t *testing.T) {
	p := NewPlanes()
	for i := range p.plane0 {
		// Arbitrary but deterministic bit patterns exercising all four
		// combinations of (plane0,plane1) across the byte.
		p.plane0[i] = byte(i*7 + 3)
		p.plane1[i] = byte(i*13 + 5)
	}
	var s subframes
	s.compose(p)
	for i := 0; i < planeSize; i++ {
		v0, v1 := p.plane0[i], p.plane1[i]
		if got, want := s[0][i], v0|v1; got != want {
			t.Fatalf("subframe[0][%d] = %#x, want %#x", i, got, want)
		}
		if got, want := s[1][i], v1; got != want {
			t.Fatalf("subframe[1][%d] = %#x, want %#x", i, got, want)
		}
		if got, want := s[2][i], v0&^v1; got != want {
			t.Fatalf("subframe[2][%d] = %#x, want %#x", i, got, want)
		}
	}
}

func TestFillLightGraySubframes(t *testing.T) {
	p := NewPlanes()
	p.Fill(LightGray)
	var s subframes
	s.compose(p)
	for i := 0; i < planeSize; i++ {
		if s[0][i] != 0xff || s[1][i] != 0xff || s[2][i] != 0x00 {
			t.Fatalf("fill(LightGray) subframes[%d] = (%#x,%#x,%#x), want (0xff,0xff,0x00)", i, s[0][i], s[1][i], s[2][i])
		}
	}
}

func TestFillDarkGraySubframes(t *testing.T) {
	p := NewPlanes()
	p.Fill(DarkGray)
	var s subframes
	s.compose(p)
	for i := 0; i < planeSize; i++ {
		if s[0][i] != 0xff || s[1][i] != 0x00 || s[2][i] != 0xff {
			t.Fatalf("fill(DarkGray) subframes[%d] = (%#x,%#x,%#x), want (0xff,0x00,0xff)", i, s[0][i], s[1][i], s[2][i])
		}
	}
}

func TestContrastExpansion(t *testing.T) {
	e := &Engine{}
	for c := 0; c <= 127; c++ {
		e.setContrastBytes(byte(c))
		wantA := byte(c >> 5)
		wantB := byte(c >> 1)
		wantC := byte((c << 1) + 1)
		if e.postFrameAdj[0][1] != wantA || e.postFrameAdj[1][1] != wantB || e.postFrameAdj[2][1] != wantC {
			t.Fatalf("contrast(%d) = (%d,%d,%d), want (%d,%d,%d)",
				c, e.postFrameAdj[0][1], e.postFrameAdj[1][1], e.postFrameAdj[2][1], wantA, wantB, wantC)
		}
	}
}
