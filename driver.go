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

// SyncByte is the sync field transmitted after the break in every header.
const SyncByte = 0x55

// Driver is the interface a hardware backend implements to put LIN frames
// on the wire. The library ships a UART implementation in driver/uart;
// anything that can generate a break field and shift bytes works.
type Driver interface {
	// SendWakeup issues a wakeup pulse on the bus
	SendWakeup() error

	// SendHeader transmits break, sync and the protected identifier
	SendHeader(pid PID) error

	// Read fills buf completely with response bytes from the bus
	Read(buf []byte) error

	// Write puts data bytes on the bus
	Write(data []byte) error

	// SetTimeout sets the read timeout for the driver
	SetTimeout(timeout time.Duration) error

	// Close closes the driver connection
	Close() error

	// Type returns the driver type
	Type() DriverType
}

// DriverType represents the kind of hardware backend
type DriverType string

const (
	// DriverUART represents a serial-port backend.
	DriverUART DriverType = "uart"
	// DriverMock represents a mock backend for testing
	DriverMock DriverType = "mock"
)
