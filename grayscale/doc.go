// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package grayscale drives a 72x40 SSD1306-class monochrome OLED panel as a
// four-level grayscale display.
//
// The panel has no native intensity control. Apparent gray levels are
// synthesized by cycling three sub-frames per displayed frame, each with its
// own contrast setting, fast enough that the eye integrates them into one of
// four brightnesses: black, dark gray, light gray and white. A dedicated
// goroutine (the "GPU loop") streams the three sub-frames to the panel in
// lockstep with its internal row scanner; application code draws into a
// two-plane framebuffer and calls Show to hand a completed frame to that
// loop.
//
// # Wiring
//
// Connect SDA to SPI_MOSI, SCK to SPI_CLK. DC, CS and RES are separate GPIO
// lines; unlike most periph SPI devices, CS is held low for the engine's
// entire lifetime rather than toggled per transaction, matching the
// datasheet-violating timing trick the grayscale technique depends on.
//
// # Datasheet
//
// https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf
package grayscale
