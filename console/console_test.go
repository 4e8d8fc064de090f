// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package console

import (
	"bytes"
	"testing"

	"github.com/thumbygray/grayscale/grayscale"
)

func TestRenderIsPureFunctionOfPlanes(t *testing.T) {
	p := grayscale.NewPlanes()
	p.Fill(grayscale.LightGray)
	p.SetPixel(3, 3, grayscale.White)

	var a, b bytes.Buffer
	if err := Render(&a, p, nil); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if err := Render(&b, p, nil); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if a.String() != b.String() {
		t.Fatalf("Render is not a pure function of the planes: two renders of identical input differ")
	}
	if a.Len() == 0 {
		t.Fatalf("Render produced no output")
	}
}

func TestRenderDiffersOnDifferentPlanes(t *testing.T) {
	black := grayscale.NewPlanes()
	white := grayscale.NewPlanes()
	white.Fill(grayscale.White)

	var a, b bytes.Buffer
	_ = Render(&a, black, nil)
	_ = Render(&b, white, nil)
	if a.String() == b.String() {
		t.Fatalf("Render produced identical output for different planes")
	}
}
