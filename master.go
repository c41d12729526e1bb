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

package lin

import (
	"errors"
	"time"
)

// ErrNilDriver indicates a Master constructed without a hardware driver.
var ErrNilDriver = errors.New("nil driver")

// Master is a LIN master task: it transmits frame headers and either
// publishes the response itself (WriteFrame) or collects it from a slave
// (ReadFrame). Scheduling which frame goes on the bus when is the caller's
// job; a Master is a dumb pipe with checksum discipline.
//
// A Master is not safe for concurrent use.
type Master struct {
	driver     Driver
	frameDelay time.Duration
}

// NewMaster creates a master task on top of a hardware driver.
func NewMaster(driver Driver, opts ...Option) (*Master, error) {
	if driver == nil {
		return nil, ErrNilDriver
	}
	m := &Master{driver: driver}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Driver returns the underlying hardware driver.
func (m *Master) Driver() Driver {
	return m.driver
}

// SendWakeup issues a wakeup pulse on the bus.
func (m *Master) SendWakeup() error {
	return m.driver.SendWakeup()
}

// WriteFrame transmits a complete frame: header followed by the frame's
// data and checksum.
func (m *Master) WriteFrame(frame *Frame) error {
	if err := m.driver.SendHeader(frame.PID()); err != nil {
		return err
	}
	if err := m.driver.Write(frame.Response()); err != nil {
		return err
	}
	m.pause()
	return nil
}

// ReadFrame transmits the header for pid and reads dataLength response
// bytes plus the checksum from a slave. The response checksum is validated
// with the variant selected by the identifier; a mismatch returns
// ErrChecksumMismatch and no frame.
func (m *Master) ReadFrame(pid PID, dataLength int) (*Frame, error) {
	if dataLength < 0 || dataLength > MaxFrameData {
		return nil, ErrDataTooLong
	}
	if err := m.driver.SendHeader(pid); err != nil {
		return nil, err
	}
	buf := make([]byte, dataLength+1)
	if err := m.driver.Read(buf); err != nil {
		return nil, err
	}
	m.pause()

	data, checksum := buf[:dataLength], buf[dataLength]
	if err := ValidateChecksum(pid, data, checksum); err != nil {
		return nil, err
	}
	return NewFrame(pid, data)
}

// Close closes the underlying driver.
func (m *Master) Close() error {
	return m.driver.Close()
}

func (m *Master) pause() {
	if m.frameDelay > 0 {
		time.Sleep(m.frameDelay)
	}
}
