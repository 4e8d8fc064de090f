// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package console renders a grayscale.Planes framebuffer as a grid of
// ANSI-colored blocks on a terminal, one block per pixel, so a panel frame
// can be eyeballed without any hardware attached.
package console
