// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package config loads and saves the grayscale engine's one persisted
// calibration value: the measured display refresh time, in microseconds,
// of a given panel. The grayscale package's timing constants (PreFrameUS,
// FrameTimeUS) are fixed and are not derived from it. The encoding is a tiny key=value text
// format that tolerates unknown keys and missing files, so a config written
// by a newer build still loads cleanly on an older one.
package config
