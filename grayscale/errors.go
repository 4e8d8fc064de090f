// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package grayscale

import "errors"

// ErrCommandTooLong is returned by Engine.WriteCmd when the engine is
// running and the command is longer than the 8-byte pending-command
// scratch buffer.
var ErrCommandTooLong = errors.New("grayscale: command longer than 8 bytes")

// ErrCommandCanceled is returned by a blocking call (Show, WriteCmd,
// BrightnessSync) if Stop is called concurrently while it is waiting on the
// GPU loop to drain the corresponding flag.
var ErrCommandCanceled = errors.New("grayscale: engine stopped while waiting")

const maxPendingCmd = 8
