// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package calibration renders a grayscale.Planes framebuffer to an annotated
// PNG snapshot, upscaled and optionally labeled, for comparing a panel's
// actual brightness output against an expected render while tuning
// Config.DisplayRefreshTimeUs or Engine.Brightness. A 72x40 frame at native
// resolution is too small to judge by eye, so each pixel is drawn as an
// NxN block and an optional caption is stamped below it.
package calibration
