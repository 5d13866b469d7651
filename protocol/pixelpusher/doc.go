// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package pixelpusher encodes the PixelPusher datagrams used to push one
// strip's pixels, and device commands, to a PixelPusher controller.
//
// Every datagram begins with a 4-byte big-endian sequence number. A pixel
// datagram follows it with a strip number byte and the strip's RGB bytes. A
// command datagram follows it with CommandMagic, a command byte and the
// command's little-endian content.
package pixelpusher
