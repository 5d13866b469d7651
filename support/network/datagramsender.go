// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package network contains the datagram transport used to reach strip
// controllers.
package network

import (
	"io"
	"net"
	"time"

	"github.com/pkg/errors"
)

// MaxUDPSize is the largest UDP payload size.
const MaxUDPSize = 65507

// DatagramSender sends individual datagrams.
type DatagramSender interface {
	io.Closer
	SendDatagram(b []byte) error

	// MaxDatagramSize returns the maximum datagram size. It is advisory; the
	// DatagramSender does not enforce it.
	MaxDatagramSize() int
}

// DialUDP4 connects a UDP socket to addr ("host:port").
//
// If writeBufferSize is >0, it is applied to the socket. The caller owns the
// returned connection.
func DialUDP4(addr string, writeBufferSize int) (*net.UDPConn, error) {
	raddr, err := net.ResolveUDPAddr("udp4", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "could not resolve %q", addr)
	}

	conn, err := net.DialUDP("udp4", nil, raddr)
	if err != nil {
		return nil, errors.Wrapf(err, "could not dial %s", raddr)
	}

	if writeBufferSize > 0 {
		if err := conn.SetWriteBuffer(writeBufferSize); err != nil {
			_ = conn.Close()
			return nil, errors.Wrapf(err, "failed to set write buffer size to %d", writeBufferSize)
		}
	}
	return conn, nil
}

// UDPDatagramSender returns a DatagramSender that writes to conn.
//
// If writeTimeout is >0, every send is bounded by it. The DatagramSender owns
// conn and closes it on Close.
func UDPDatagramSender(conn *net.UDPConn, writeTimeout time.Duration) DatagramSender {
	return &udpDatagramSender{conn: conn, writeTimeout: writeTimeout}
}

type udpDatagramSender struct {
	conn         *net.UDPConn
	writeTimeout time.Duration
}

func (uds *udpDatagramSender) SendDatagram(b []byte) error {
	if uds.writeTimeout > 0 {
		if err := uds.conn.SetWriteDeadline(time.Now().Add(uds.writeTimeout)); err != nil {
			return err
		}
	}
	_, err := uds.conn.Write(b)
	return err
}

func (uds *udpDatagramSender) MaxDatagramSize() int { return MaxUDPSize }
func (uds *udpDatagramSender) Close() error         { return uds.conn.Close() }

// ResilientDatagramSender is a DatagramSender that connects lazily and
// reconnects after a failed send.
type ResilientDatagramSender struct {
	// Factory connects a new DatagramSender. The ResilientDatagramSender owns
	// whatever it returns.
	Factory func() (DatagramSender, error)

	base DatagramSender
}

var _ DatagramSender = (*ResilientDatagramSender)(nil)

// MaxDatagramSize implements DatagramSender.
//
// While disconnected, MaxUDPSize is reported.
func (rds *ResilientDatagramSender) MaxDatagramSize() int {
	if rds.base == nil {
		return MaxUDPSize
	}
	return rds.base.MaxDatagramSize()
}

// Connect opens a new connection, replacing the current one on success.
//
// On failure the current connection, if any, is kept.
func (rds *ResilientDatagramSender) Connect() error {
	base, err := rds.Factory()
	if err != nil {
		return err
	}

	if rds.base != nil {
		_ = rds.Close()
	}
	rds.base = base
	return nil
}

// Close closes the current connection, if one is open.
func (rds *ResilientDatagramSender) Close() error {
	if rds.base == nil {
		return nil
	}

	err := rds.base.Close()
	rds.base = nil
	return err
}

// SendDatagram implements DatagramSender.
//
// A failed send drops the connection; the next send reconnects.
func (rds *ResilientDatagramSender) SendDatagram(b []byte) error {
	if rds.base == nil {
		if err := rds.Connect(); err != nil {
			return err
		}
	}

	if err := rds.base.SendDatagram(b); err != nil {
		_ = rds.Close()
		return err
	}
	return nil
}
