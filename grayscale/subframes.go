// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package grayscale

// subframes holds the three GDRAM payloads the GPU loop streams to the
// panel each cycle. They are owned exclusively by the GPU loop: written only
// by compose, read only by the panel writer.
type subframes [3][planeSize]byte

// compose derives the three sub-frame buffers from a completed framebuffer.
// This bit-remap is the entire grayscale trick and must not be altered:
//
//	subframe[0] = plane0 | plane1   (lit whenever the pixel isn't black)
//	subframe[1] = plane1            (lit only for LightGray/White)
//	subframe[2] = plane0 &^ plane1  (lit only for DarkGray)
func (s *subframes) compose(p *Planes) {
	for i := 0; i < planeSize; i++ {
		v0 := p.plane0[i]
		v1 := p.plane1[i]
		s[0][i] = v0 | v1
		s[1][i] = v1
		s[2][i] = v0 &^ v1
	}
}
