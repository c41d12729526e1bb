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

import "time"

// MockDriver is a scriptable Driver for tests. Headers and writes are
// recorded; reads are served from a queue of canned responses.
type MockDriver struct {
	// Headers records every PID a header was sent for, in order
	Headers []PID
	// Writes records every Write payload, in order
	Writes [][]byte
	// Responses is a queue of response byte sequences consumed by Read
	Responses [][]byte
	// Wakeups counts SendWakeup calls
	Wakeups int

	// HeaderErr, ReadErr and WriteErr, when set, are returned by the
	// corresponding operation instead of performing it
	HeaderErr error
	ReadErr   error
	WriteErr  error

	timeout time.Duration
	closed  bool
}

// NewMockDriver creates an empty mock driver.
func NewMockDriver() *MockDriver {
	return &MockDriver{}
}

// QueueResponse appends a canned slave response for a later Read.
func (m *MockDriver) QueueResponse(data []byte) {
	m.Responses = append(m.Responses, data)
}

// SendWakeup records the wakeup request.
func (m *MockDriver) SendWakeup() error {
	m.Wakeups++
	return nil
}

// SendHeader records the header PID.
func (m *MockDriver) SendHeader(pid PID) error {
	if m.HeaderErr != nil {
		return m.HeaderErr
	}
	if m.closed {
		return ErrBusWrite
	}
	m.Headers = append(m.Headers, pid)
	return nil
}

// Read fills buf from the next queued response. A missing or short
// response yields a timeout error, as a silent slave would.
func (m *MockDriver) Read(buf []byte) error {
	if m.ReadErr != nil {
		return m.ReadErr
	}
	if m.closed {
		return ErrBusRead
	}
	if len(m.Responses) == 0 || len(m.Responses[0]) < len(buf) {
		return NewTimeoutError("read", "mock")
	}
	copy(buf, m.Responses[0])
	m.Responses = m.Responses[1:]
	return nil
}

// Write records the payload.
func (m *MockDriver) Write(data []byte) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	w := make([]byte, len(data))
	copy(w, data)
	m.Writes = append(m.Writes, w)
	return nil
}

// SetTimeout records the timeout.
func (m *MockDriver) SetTimeout(timeout time.Duration) error {
	m.timeout = timeout
	return nil
}

// Close marks the driver closed.
func (m *MockDriver) Close() error {
	m.closed = true
	return nil
}

// Type returns DriverMock.
func (*MockDriver) Type() DriverType {
	return DriverMock
}
