// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package strip

import (
	"github.com/danjacques/gopixelmatrix/pixel"
	"github.com/danjacques/gopixelmatrix/protocol/pixelpusher"
	"github.com/danjacques/gopixelmatrix/support/fmtutil"
	"github.com/danjacques/gopixelmatrix/support/logging"
	"github.com/danjacques/gopixelmatrix/support/network"

	"github.com/pkg/errors"
)

// MaxPusherStrips is the number of strips a PixelPusher controller exposes.
const MaxPusherStrips = 256

// Pusher is a Driver that drives one strip of a PixelPusher controller.
//
// The pin selects the controller's strip number. Pusher's exported fields
// must not be changed after Begin is called.
type Pusher struct {
	// Sender is the transport to the controller. It must not be nil.
	//
	// Pusher does not close Sender.
	Sender network.DatagramSender

	// FixedSize, if >0, pads every datagram to this size. Some controllers
	// require it.
	FixedSize int

	// Logger, if not nil, receives debug dumps of every datagram.
	Logger logging.L

	ds     network.DatagramSender
	pin    int
	stream pixelpusher.PacketStream
	state  pixelpusher.StripState
}

var _ Driver = (*Pusher)(nil)

// SetPin implements Driver.
func (p *Pusher) SetPin(pin int) { p.pin = pin }

// Begin implements Driver.
//
// Begin resets the controller's hardware brightness to full, since brightness
// is applied to pixel values before they are sent.
func (p *Pusher) Begin() error {
	switch {
	case p.Sender == nil:
		return errors.New("no Sender configured")
	case p.pin < 0 || p.pin >= MaxPusherStrips:
		return errors.Errorf("strip number %d is out of range", p.pin)
	}

	p.ds = &loggingSender{DatagramSender: p.Sender, logger: logging.Must(p.Logger)}
	p.stream.FixedSize = p.FixedSize
	p.state.StripNumber = pixelpusher.StripNumber(p.pin)

	cmd := pixelpusher.StripBrightnessSetCommand{
		Strip:     uint8(p.pin),
		Parameter: pixelpusher.FullBrightness,
	}
	if err := p.stream.SendCommand(p.ds, &cmd); err != nil {
		return errors.Wrapf(err, "could not reset brightness of strip %d", p.pin)
	}
	return nil
}

// SetLength implements Driver.
func (p *Pusher) SetLength(n int) { p.state.Pixels.Reset(n) }

// Len implements Driver.
func (p *Pusher) Len() int { return p.state.Pixels.Len() }

// SetPixelColor implements Driver.
func (p *Pusher) SetPixelColor(i int, c Color) { p.state.Pixels.SetPixel(i, c.Pixel()) }

// Color implements Driver.
func (p *Pusher) Color(r, g, b uint8) Color { return PackColor(r, g, b) }

// Show implements Driver.
func (p *Pusher) Show() error {
	if p.ds == nil {
		return errors.New("strip has not begun")
	}
	return p.stream.SendStripState(p.ds, &p.state)
}

// Clear implements Driver.
func (p *Pusher) Clear() { p.state.Pixels.Zero() }

// Pixels returns the pending pixel state.
func (p *Pusher) Pixels() *pixel.Buffer { return &p.state.Pixels }

// loggingSender dumps each datagram at debug level before sending it.
type loggingSender struct {
	network.DatagramSender
	logger logging.L
}

func (ls *loggingSender) SendDatagram(d []byte) error {
	ls.logger.Debugf("Sending datagram (%d byte(s)):\n%s", len(d), fmtutil.Hex(d))
	return ls.DatagramSender.SendDatagram(d)
}
