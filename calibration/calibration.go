// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package calibration

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/thumbygray/grayscale/grayscale"
)

// DefaultScale is the per-pixel magnification applied so a 72x40 panel frame
// is legible as a PNG rather than a postage stamp.
const DefaultScale = 8

const labelHeight = 24

// shadeGray maps each Color to the gray level console.shades uses for its
// ANSI blocks, kept in [0,1] for gg's SetGray.
var shadeGray = [4]float64{0, 85.0 / 255, 170.0 / 255, 1}

var labelFace *truetype.Font

func init() {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		// goregular.TTF is a compiled-in constant; a parse failure here would
		// mean the vendored font data itself is corrupt.
		panic(fmt.Sprintf("calibration: parsing embedded font: %v", err))
	}
	labelFace = f
}

// Render draws p, magnified by scale (DefaultScale if scale<=0), onto a
// canvas with an optional text label below it, and returns the result as an
// image.Image. It is a pure function of p's pixel values, scale and label:
// rendering the same planes twice produces identical pixels, so it's
// testable by encoding to PNG and comparing bytes, without ever touching a
// file.
func Render(p *grayscale.Planes, scale int, label string) image.Image {
	if scale <= 0 {
		scale = DefaultScale
	}
	w := grayscale.Width * scale
	h := grayscale.Height * scale
	extra := 0
	if label != "" {
		extra = labelHeight
	}
	dc := gg.NewContext(w, h+extra)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	for y := 0; y < grayscale.Height; y++ {
		for x := 0; x < grayscale.Width; x++ {
			c := p.GetPixel(x, y)
			g := shadeGray[c]
			dc.SetRGB(g, g, g)
			dc.DrawRectangle(float64(x*scale), float64(y*scale), float64(scale), float64(scale))
			dc.Fill()
		}
	}

	if label != "" {
		face := truetype.NewFace(labelFace, &truetype.Options{Size: 14})
		dc.SetFontFace(face)
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(label, float64(w)/2, float64(h)+labelHeight/2, 0.5, 0.5)
	}
	return dc.Image()
}

// Export renders p and writes it to w as a PNG.
func Export(w io.Writer, p *grayscale.Planes, scale int, label string) error {
	return png.Encode(w, Render(p, scale, label))
}

// SaveFile is a convenience wrapper around Export for the common case of
// writing a calibration snapshot straight to disk.
func SaveFile(path string, p *grayscale.Planes, scale int, label string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Export(f, p, scale, label)
}
