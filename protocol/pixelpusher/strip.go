// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package pixelpusher

import (
	"fmt"

	"github.com/danjacques/gopixelmatrix/pixel"
)

// StripNumber is the number assigned to an individual strip on a controller.
type StripNumber uint8

// StripState is the pixel state of a single strip.
type StripState struct {
	StripNumber StripNumber
	Pixels      pixel.Buffer
}

func (ss *StripState) String() string {
	return fmt.Sprintf("Strip{#%d, %d pixel(s)}", ss.StripNumber, ss.Pixels.Len())
}

// encodedSize is the number of bytes ss occupies in a pixel datagram.
func (ss *StripState) encodedSize() int { return 1 + len(ss.Pixels.Bytes()) }
