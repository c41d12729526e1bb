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

// foldSum is the LIN "inverted eight bit sum with carry": every time the
// running sum exceeds 255, the carry is added back in. Equivalent to
// subtracting 255 whenever the sum reaches 256.
func foldSum(seed uint16, data []byte) byte {
	sum := seed
	for _, b := range data {
		sum += uint16(b)
		if sum >= 0x100 {
			sum -= 0xFF
		}
	}
	return ^byte(sum)
}

// ClassicChecksum computes the LIN 1.3 checksum over the data bytes only.
// Diagnostic and reserved identifiers (60-63) always use this variant.
func ClassicChecksum(data []byte) byte {
	return foldSum(0, data)
}

// EnhancedChecksum computes the LIN 2.x checksum, which additionally covers
// the protected identifier byte.
func EnhancedChecksum(pid PID, data []byte) byte {
	return foldSum(uint16(pid.Byte()), data)
}

// ChecksumOf computes the checksum for a frame, selecting the classic or
// enhanced variant from the identifier. The selection is part of the
// protocol and is derived solely from the PID, never from caller choice.
func ChecksumOf(pid PID, data []byte) byte {
	if pid.UsesClassicChecksum() {
		return ClassicChecksum(data)
	}
	return EnhancedChecksum(pid, data)
}

// ValidateChecksum recomputes the checksum for the given identifier and
// data and compares it against the received checksum byte. Returns
// ErrChecksumMismatch on difference.
//
// Callers must have validated the PID parity first: a corrupted identifier
// cannot be trusted to select the correct checksum variant.
func ValidateChecksum(pid PID, data []byte, checksum byte) error {
	if ChecksumOf(pid, data) != checksum {
		return ErrChecksumMismatch
	}
	return nil
}
