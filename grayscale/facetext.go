// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package grayscale

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// DrawFace renders s with face at the baseline (x,y) in the given color,
// using golang.org/x/image/font the same way
// waveshare2in13v2/example_test.go composes a font.Drawer against an
// image1bit plane. This supplements SetFont/DrawText's fixed glyph-table
// path with any standard font.Face (e.g. golang.org/x/image/font/basicfont),
// for callers that already have one.
func (p *Planes) DrawFace(face font.Face, s string, x, y int, c Color) {
	d := font.Drawer{
		Dst:  p,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
