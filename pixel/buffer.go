// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package pixel

// pixelSize is the number of bytes occupied by one pixel: [R, G, B].
const pixelSize = 3

// Buffer is a series of consecutive pixels in wire order.
//
// All accessors are bounds-silent: reads outside of the buffer return a zero
// pixel and writes outside of the buffer are discarded.
type Buffer struct {
	buf []byte
}

// Len returns the number of pixels allocated in pb.
func (pb *Buffer) Len() int { return len(pb.buf) / pixelSize }

// Reset sizes the buffer to hold size pixels and zeroes it.
//
// If the underlying storage is already large enough it is reused.
func (pb *Buffer) Reset(size int) {
	if size < 0 {
		size = 0
	}
	bytesNeeded := size * pixelSize
	if cap(pb.buf) < bytesNeeded {
		pb.buf = make([]byte, bytesNeeded)
		return
	}
	pb.buf = pb.buf[:bytesNeeded]
	pb.Zero()
}

// Zero sets every pixel in pb to black without changing its length.
func (pb *Buffer) Zero() {
	for i := range pb.buf {
		pb.buf[i] = 0
	}
}

// Fill sets every pixel in pb to p.
func (pb *Buffer) Fill(p P) {
	for i := 0; i < len(pb.buf); i += pixelSize {
		pb.buf[i], pb.buf[i+1], pb.buf[i+2] = p.Red, p.Green, p.Blue
	}
}

// Bytes returns the raw bytes for this buffer.
func (pb *Buffer) Bytes() []byte { return pb.buf }

// Pixel returns the pixel at index i.
func (pb *Buffer) Pixel(i int) (p P) {
	offset := i * pixelSize
	if i < 0 || offset >= len(pb.buf) {
		return
	}
	p.Red, p.Green, p.Blue = pb.buf[offset], pb.buf[offset+1], pb.buf[offset+2]
	return
}

// SetPixel sets the pixel value at index i.
func (pb *Buffer) SetPixel(i int, p P) {
	offset := i * pixelSize
	if i < 0 || offset >= len(pb.buf) {
		return
	}
	pb.buf[offset], pb.buf[offset+1], pb.buf[offset+2] = p.Red, p.Green, p.Blue
}

// SetPixels sets the Buffer's content to exactly the supplied pixels.
func (pb *Buffer) SetPixels(pixels ...P) {
	pb.Reset(len(pixels))
	for i, p := range pixels {
		pb.SetPixel(i, p)
	}
}

// CloneFrom makes pb an independent copy of other.
func (pb *Buffer) CloneFrom(other *Buffer) {
	if cap(pb.buf) < len(other.buf) {
		pb.buf = make([]byte, len(other.buf))
	} else {
		pb.buf = pb.buf[:len(other.buf)]
	}
	copy(pb.buf, other.buf)
}

// Pixels returns a copy of every pixel in pb.
func (pb *Buffer) Pixels() []P {
	out := make([]P, pb.Len())
	for i := range out {
		out[i] = pb.Pixel(i)
	}
	return out
}
