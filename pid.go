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

import "math/bits"

// Identifier limits and reserved values
const (
	// MaxID is the highest valid frame identifier (6 bits)
	MaxID = 0x3F

	// IDMasterRequest is the diagnostic master request identifier
	IDMasterRequest = 0x3C
	// IDSlaveResponse is the diagnostic slave response identifier
	IDSlaveResponse = 0x3D
)

// PID is a protected identifier: a 6-bit frame identifier with two
// parity bits in the high bits of the on-wire byte.
//
// Bit layout: bits 0-5 identifier, bit 6 parity P0, bit 7 parity P1.
type PID byte

// parity masks over the identifier bits
// P0 = ID0 ^ ID1 ^ ID2 ^ ID4
// P1 = ^(ID1 ^ ID3 ^ ID4 ^ ID5)
const (
	p0Mask = 0b01_0111
	p1Mask = 0b11_1010
)

// PIDFromID computes the protected identifier for a raw frame identifier.
// Returns ErrInvalidID if id is greater than MaxID.
func PIDFromID(id byte) (PID, error) {
	if id > MaxID {
		return 0, ErrInvalidID
	}
	p0 := byte(bits.OnesCount8(id&p0Mask)) & 1
	p1 := (byte(bits.OnesCount8(id&p1Mask)) + 1) & 1
	return PID(id | p0<<6 | p1<<7), nil
}

// ParsePID validates the parity bits of an on-wire protected identifier
// byte. It fails closed with ErrParity when either parity bit does not
// match the value recomputed from the low 6 bits; a byte that fails
// parity carries no trustworthy identifier at all.
func ParsePID(b byte) (PID, error) {
	want, _ := PIDFromID(b & MaxID)
	if byte(want) != b {
		return 0, ErrParity
	}
	return PID(b), nil
}

// ID returns the raw 6-bit frame identifier.
func (p PID) ID() byte {
	return byte(p) & MaxID
}

// Byte returns the on-wire protected identifier byte.
func (p PID) Byte() byte {
	return byte(p)
}

// UsesClassicChecksum reports whether frames carrying this identifier use
// the classic (data-only) checksum. That is the case for the diagnostic
// identifiers 60 and 61 and the reserved identifiers 62 and 63; all other
// identifiers use the enhanced checksum that also covers the PID byte.
func (p PID) UsesClassicChecksum() bool {
	return p.ID() >= IDMasterRequest
}
