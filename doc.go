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

/*
Package lin provides a pure Go codec for the LIN (Local Interconnect Network)
automotive bus protocol.

LIN is a low-cost single-wire serial bus used for body electronics. This
library implements the protocol-control layer: protected identifiers with
their parity bits, the classic and enhanced frame checksums, frame
encoding/decoding, and a master node driving a hardware driver. The
transport-layer segmentation and reassembly of messages longer than one
frame lives in the transport subpackage, and diagnostic node-identity
payloads in the diagnostic subpackage.

Features:
  - Protected identifier (PID) encoding with parity validation
  - Classic (LIN 1.3) and enhanced (LIN 2.x) checksums, selected by identifier
  - Frame encoding/decoding with strict parity-before-checksum validation
  - Transport-layer segmentation and reassembly (single/first/consecutive)
  - Diagnostic node identity records (product ID, serial number, attributes)
  - Master node over a pluggable hardware driver (UART included)

Basic Usage:

	import (
	    lin "github.com/openlin/go-lin"
	    "github.com/openlin/go-lin/driver/uart"
	)

	// Open a serial LIN driver
	drv, err := uart.New("/dev/ttyUSB0")
	if err != nil {
	    log.Fatal(err)
	}
	defer drv.Close()

	master, err := lin.NewMaster(drv)
	if err != nil {
	    log.Fatal(err)
	}

	// Publish a frame on identifier 0x10
	pid, _ := lin.PIDFromID(0x10)
	frame, _ := lin.NewFrame(pid, []byte{0x01, 0x02})
	if err := master.WriteFrame(frame); err != nil {
	    log.Fatal(err)
	}

	// Request a 4-byte response on identifier 0x11
	pid, _ = lin.PIDFromID(0x11)
	frame, err = master.ReadFrame(pid, 4)
	if err != nil {
	    log.Fatal(err)
	}
	speed, _ := frame.Signal(0, 10)

Error Handling:

All corruption conditions are reported as typed errors that can be inspected:

	if errors.Is(err, lin.ErrChecksumMismatch) {
	    // data corrupted in flight
	}

IsRetryable and GetErrorType classify errors so a bus scheduler can decide
whether to re-request a frame; this library never retries on its own.

Thread Safety:

Codec functions are pure. A Master and each transport.Reassembler own
in-progress state and are not safe for concurrent use; give every logical
channel its own instance.
*/
package lin
