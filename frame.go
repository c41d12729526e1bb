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
	"encoding/binary"
	"errors"
)

// MaxFrameData is the maximum number of data bytes in one physical frame.
const MaxFrameData = 8

// ErrSignalOutOfRange indicates a signal bit range outside the frame data.
var ErrSignalOutOfRange = errors.New("signal outside frame data")

// Frame is one physical LIN frame: a protected identifier, 0 to 8 data
// bytes and a checksum byte. The checksum is always computed by the
// constructor, so a Frame can never carry a stale checksum for its data.
type Frame struct {
	pid     PID
	dataLen int
	// data bytes followed by the checksum byte
	buffer [MaxFrameData + 1]byte
}

// NewFrame builds a frame from a protected identifier and data, computing
// the checksum with the variant selected by the identifier. Returns
// ErrDataTooLong for more than MaxFrameData bytes.
func NewFrame(pid PID, data []byte) (*Frame, error) {
	if len(data) > MaxFrameData {
		return nil, ErrDataTooLong
	}
	f := &Frame{pid: pid, dataLen: len(data)}
	copy(f.buffer[:], data)
	f.buffer[len(data)] = ChecksumOf(pid, data)
	return f, nil
}

// PID returns the frame's protected identifier.
func (f *Frame) PID() PID {
	return f.pid
}

// Data returns the frame's data bytes, without the checksum.
func (f *Frame) Data() []byte {
	return f.buffer[:f.dataLen]
}

// Checksum returns the frame's checksum byte.
func (f *Frame) Checksum() byte {
	return f.buffer[f.dataLen]
}

// Response returns the data bytes followed by the checksum byte, the part
// of the frame a slave task publishes after the header.
func (f *Frame) Response() []byte {
	return f.buffer[:f.dataLen+1]
}

// Encode returns the full wire form of the frame:
// [pid byte][data...][checksum].
func (f *Frame) Encode() []byte {
	wire := make([]byte, 0, f.dataLen+2)
	wire = append(wire, f.pid.Byte())
	return append(wire, f.Response()...)
}

// EncodeFrame builds a frame and returns its wire bytes in one step.
func EncodeFrame(pid PID, data []byte) ([]byte, error) {
	f, err := NewFrame(pid, data)
	if err != nil {
		return nil, err
	}
	return f.Encode(), nil
}

// DecodeFrame parses wire bytes of the form [pid byte][data...][checksum].
//
// Validation order is fixed: parity first, checksum second. A frame whose
// identifier fails parity is rejected before the checksum is examined,
// because the identifier selects the checksum variant and cannot be
// trusted once corrupted.
func DecodeFrame(wire []byte) (*Frame, error) {
	if len(wire) < 2 {
		return nil, ErrFrameTooShort
	}
	pid, err := ParsePID(wire[0])
	if err != nil {
		return nil, err
	}
	data := wire[1 : len(wire)-1]
	if len(data) > MaxFrameData {
		return nil, ErrDataTooLong
	}
	if err := ValidateChecksum(pid, data, wire[len(wire)-1]); err != nil {
		return nil, err
	}
	return NewFrame(pid, data)
}

// Signal extracts an unsigned value of the given bit length starting at the
// given bit offset from the frame data, interpreted little-endian as LIN
// signals are. Returns ErrSignalOutOfRange when the range does not fit the
// frame's data bytes or exceeds 64 bits.
func (f *Frame) Signal(offset, length int) (uint64, error) {
	if offset < 0 || length <= 0 || length > 64 || offset+length > f.dataLen*8 {
		return 0, ErrSignalOutOfRange
	}
	raw := binary.LittleEndian.Uint64(f.buffer[:MaxFrameData])
	raw >>= uint(offset)
	if length < 64 {
		raw &= 1<<uint(length) - 1
	}
	return raw, nil
}
