// go-lin
// Copyright (c) 2025 The OpenLIN Project Contributors.
// SPDX-License-Identifier: LGPL-3.0-or-later
//
// This file is part of go-lin.
//
// go-lin is free software; you can redistribute it and/or
// modify it under the terms of the GNU Lesser General Public
// License as published by the Free Software Foundation; either
// version 3 of the License, or (at your option) any later version.
//
// go-lin is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with go-lin; if not, write to the Free Software Foundation,
// Inc., 51 Franklin Street, Fifth Floor, Boston, MA  02110-1301, USA.

// Package uart implements the LIN hardware driver over a serial port and a
// LIN transceiver. The break field is generated with the UART break signal;
// sync and identifier go out as ordinary bytes.
package uart

import (
	"fmt"
	"time"

	lin "github.com/openlin/go-lin"
	"go.bug.st/serial"
)

// DefaultBaudRate is the most common LIN bus speed.
const DefaultBaudRate = 19200

// breakBits is the minimum break field length in bit times.
const breakBits = 13

// defaultReadTimeout bounds waiting for a slave response.
const defaultReadTimeout = 100 * time.Millisecond

// Driver drives a LIN bus through a serial port.
//
// LIN transceivers mirror the transmit line back onto receive, so every
// byte written comes back as an echo. The driver consumes and verifies the
// echo after each write unless disabled with WithoutEcho.
type Driver struct {
	port     serial.Port
	portName string
	baudRate int
	readEcho bool
}

// Option is a functional option for configuring a Driver
type Option func(*Driver) error

// WithBaudRate sets the bus speed in bit/s. LIN allows up to 20000.
func WithBaudRate(baudRate int) Option {
	return func(d *Driver) error {
		if baudRate <= 0 {
			return fmt.Errorf("invalid baud rate %d", baudRate)
		}
		d.baudRate = baudRate
		return nil
	}
}

// WithoutEcho disables echo readback, for adapters that do not loop the
// transmit line back to receive.
func WithoutEcho() Option {
	return func(d *Driver) error {
		d.readEcho = false
		return nil
	}
}

// New opens a serial port as a LIN driver, 8N1 at DefaultBaudRate unless
// overridden.
func New(portName string, opts ...Option) (*Driver, error) {
	d := &Driver{
		portName: portName,
		baudRate: DefaultBaudRate,
		readEcho: true,
	}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}

	mode := &serial.Mode{
		BaudRate: d.baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(portName, mode)
	if err != nil {
		return nil, lin.NewBusError("open", portName, err, lin.ErrorTypePermanent)
	}
	d.port = port

	if err := d.SetTimeout(defaultReadTimeout); err != nil {
		_ = port.Close()
		return nil, err
	}
	return d, nil
}

// bitTime returns the duration of n bits at the configured baud rate.
func (d *Driver) bitTime(n int) time.Duration {
	return time.Duration(n) * time.Second / time.Duration(d.baudRate)
}

// SendWakeup pulls the bus dominant long enough for sleeping nodes to
// detect a wakeup request (250us to 5ms).
func (d *Driver) SendWakeup() error {
	pulse := d.bitTime(5)
	if pulse < 250*time.Microsecond {
		pulse = 250 * time.Microsecond
	}
	if err := d.port.Break(pulse); err != nil {
		return lin.NewBusError("wakeup", d.portName, err, lin.ErrorTypeTransient)
	}
	return nil
}

// SendHeader transmits the frame header: break field, sync byte and the
// protected identifier.
func (d *Driver) SendHeader(pid lin.PID) error {
	if err := d.port.ResetInputBuffer(); err != nil {
		return lin.NewBusError("header", d.portName, err, lin.ErrorTypeTransient)
	}
	if err := d.port.Break(d.bitTime(breakBits)); err != nil {
		return lin.NewBusError("header", d.portName, err, lin.ErrorTypeTransient)
	}
	return d.Write([]byte{lin.SyncByte, pid.Byte()})
}

// Read fills buf with response bytes from the bus.
func (d *Driver) Read(buf []byte) error {
	return d.readFull(buf)
}

// Write puts data on the bus and, when echo readback is enabled, verifies
// the transceiver echo against what was written.
func (d *Driver) Write(data []byte) error {
	written := 0
	for written < len(data) {
		n, err := d.port.Write(data[written:])
		if err != nil {
			return lin.NewBusError("write", d.portName, fmt.Errorf("%w: %w", lin.ErrBusWrite, err),
				lin.ErrorTypeTransient)
		}
		written += n
	}

	if !d.readEcho {
		return nil
	}
	echo := make([]byte, len(data))
	if err := d.readFull(echo); err != nil {
		return err
	}
	for i := range data {
		if echo[i] != data[i] {
			return lin.NewBusError("write", d.portName, lin.ErrEchoMismatch, lin.ErrorTypeTransient)
		}
	}
	return nil
}

// readFull reads until buf is full. The serial library returns zero bytes
// on read timeout, which surfaces as a timeout error here.
func (d *Driver) readFull(buf []byte) error {
	read := 0
	for read < len(buf) {
		n, err := d.port.Read(buf[read:])
		if err != nil {
			return lin.NewBusError("read", d.portName, fmt.Errorf("%w: %w", lin.ErrBusRead, err),
				lin.ErrorTypeTransient)
		}
		if n == 0 {
			return lin.NewTimeoutError("read", d.portName)
		}
		read += n
	}
	return nil
}

// SetTimeout sets the response read timeout.
func (d *Driver) SetTimeout(timeout time.Duration) error {
	if err := d.port.SetReadTimeout(timeout); err != nil {
		return lin.NewBusError("timeout", d.portName, err, lin.ErrorTypePermanent)
	}
	return nil
}

// Close closes the serial port.
func (d *Driver) Close() error {
	if err := d.port.Close(); err != nil {
		return lin.NewBusError("close", d.portName, err, lin.ErrorTypePermanent)
	}
	return nil
}

// Type returns lin.DriverUART.
func (*Driver) Type() lin.DriverType {
	return lin.DriverUART
}
