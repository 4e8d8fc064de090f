// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package calibration

import (
	"bytes"
	"testing"

	"github.com/thumbygray/grayscale/grayscale"
)

func TestExportIsPureFunctionOfPlanes(t *testing.T) {
	p := grayscale.NewPlanes()
	p.DrawFilledRect(10, 10, 20, 20, grayscale.White)

	var a, b bytes.Buffer
	if err := Export(&a, p, 4, "calibration"); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if err := Export(&b, p, 4, "calibration"); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Fatalf("Export is not a pure function of the planes: two PNGs of identical input differ")
	}
	if a.Len() == 0 {
		t.Fatalf("Export produced no PNG bytes")
	}
}

func TestRenderDimensions(t *testing.T) {
	p := grayscale.NewPlanes()
	img := Render(p, 5, "")
	b := img.Bounds()
	if b.Dx() != grayscale.Width*5 || b.Dy() != grayscale.Height*5 {
		t.Fatalf("Render(scale=5, no label) bounds = %v, want %dx%d", b, grayscale.Width*5, grayscale.Height*5)
	}

	img2 := Render(p, 5, "x")
	b2 := img2.Bounds()
	if b2.Dy() != grayscale.Height*5+labelHeight {
		t.Fatalf("Render with label bounds.Dy() = %d, want %d", b2.Dy(), grayscale.Height*5+labelHeight)
	}
}
