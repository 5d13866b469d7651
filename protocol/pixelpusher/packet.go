// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package pixelpusher

import (
	"bytes"
	"encoding/binary"

	"github.com/danjacques/gopixelmatrix/support/network"

	"github.com/pkg/errors"
)

// sequenceSize is the size of the sequence number prefix.
const sequenceSize = 4

// PacketStream sends sequenced datagrams to a single controller.
//
// PacketStream is not safe for concurrent use.
type PacketStream struct {
	// FixedSize, if >0, pads every datagram up to this size. Datagrams that
	// are already larger are sent as-is.
	FixedSize int

	// NextID is the sequence number of the next datagram.
	NextID uint32

	buf bytes.Buffer
}

// SendStripState sends one pixel datagram carrying ss.
//
// Empty strip states are not sent.
func (ps *PacketStream) SendStripState(ds network.DatagramSender, ss *StripState) error {
	data := ss.Pixels.Bytes()
	if len(data) == 0 {
		return nil
	}

	if mds := ds.MaxDatagramSize(); mds > 0 && sequenceSize+ss.encodedSize() > mds {
		return errors.Errorf("strip %d data (%d byte(s)) exceeds maximum datagram size %d",
			ss.StripNumber, ss.encodedSize(), mds)
	}

	ps.resetBuffer()
	ps.buf.WriteByte(byte(ss.StripNumber))
	ps.buf.Write(data)
	return ps.finalizeAndSend(ds)
}

// SendCommand sends one command datagram carrying cmd.
func (ps *PacketStream) SendCommand(ds network.DatagramSender, cmd Command) error {
	ps.resetBuffer()
	if err := WriteCommand(cmd, &ps.buf); err != nil {
		return err
	}
	return ps.finalizeAndSend(ds)
}

// resetBuffer clears the buffer and reserves the sequence number prefix.
func (ps *PacketStream) resetBuffer() {
	ps.buf.Reset()
	ps.buf.Write(make([]byte, sequenceSize))
}

func (ps *PacketStream) finalizeAndSend(ds network.DatagramSender) error {
	binary.BigEndian.PutUint32(ps.buf.Bytes()[:sequenceSize], ps.NextID)

	if fs := ps.FixedSize; fs > 0 && ps.buf.Len() < fs {
		ps.buf.Write(make([]byte, fs-ps.buf.Len()))
	}

	if err := ds.SendDatagram(ps.buf.Bytes()); err != nil {
		return errors.Wrapf(err, "failed to send datagram #%d", ps.NextID)
	}
	ps.NextID++
	return nil
}
