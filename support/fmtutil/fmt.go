// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package fmtutil contains formatting helpers.
package fmtutil

import (
	"encoding/hex"
)

// Hex is a byte slice that renders as a hex dump.
//
// The dump is only generated when Hex is formatted, so it is cheap to pass to
// a logger that discards the message.
type Hex []byte

func (h Hex) String() string { return hex.Dump([]byte(h)) }
