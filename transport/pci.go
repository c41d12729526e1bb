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

// Package transport implements the LIN transport layer: the PCI (Protocol
// Control Information) codec that classifies a frame's data as a single,
// first or consecutive segment, and the segmentation/reassembly of logical
// messages up to 4095 bytes across physical frames.
package transport

import (
	"errors"
	"fmt"

	lin "github.com/openlin/go-lin"
)

// Wire layout constants for the fixed 8-byte frame data area.
const (
	// FillByte pads unused data bytes; unused LIN data bytes are recessive
	FillByte = 0xFF

	// MaxMessageLength is the largest logical message (12-bit length field)
	MaxMessageLength = 4095

	// MaxSinglePayload is the payload capacity of a single-segment frame
	MaxSinglePayload = 6
	// FirstPayload is the payload carried by a first segment
	FirstPayload = 6
	// MaxConsecutivePayload is the payload capacity of a consecutive segment
	MaxConsecutivePayload = 7

	// MaxSequence is the largest consecutive sequence index before wrap
	MaxSequence = 0x0F
)

// PCI type tags in the high nibble of the lead byte
const (
	pciSingle      = 0x00
	pciFirst       = 0x10
	pciConsecutive = 0x20
	pciTypeMask    = 0xF0
)

// Transport layer errors
var (
	// ErrMalformed indicates an unrecognized PCI tag or a PCI field
	// outside its valid range
	ErrMalformed = errors.New("malformed pci")
	// ErrSequence indicates a missing or out-of-order consecutive segment
	ErrSequence = errors.New("sequence fault")
	// ErrEmptyMessage indicates an attempt to segment a zero-length message
	ErrEmptyMessage = errors.New("empty message")
	// ErrMessageTooLong indicates a message longer than MaxMessageLength
	ErrMessageTooLong = errors.New("message exceeds 4095 bytes")
)

// PDU is one transport-layer segment occupying the data area of a physical
// frame: a Single, First or Consecutive.
type PDU interface {
	// MarshalData renders the segment into a full 8-byte frame data area,
	// padded with FillByte.
	MarshalData() ([]byte, error)

	pdu()
}

// Single carries a complete message of up to MaxSinglePayload bytes in
// one frame.
type Single struct {
	Payload []byte
}

// First opens a multi-frame transfer: it declares the total message length
// and carries the first FirstPayload bytes.
type First struct {
	Payload []byte
	Length  int
}

// Consecutive continues a multi-frame transfer with the next payload chunk.
// Sequence starts at 1 after the First and wraps modulo 16.
type Consecutive struct {
	Payload  []byte
	Sequence byte
}

func (*Single) pdu()      {}
func (*First) pdu()       {}
func (*Consecutive) pdu() {}

// MarshalData renders [0x0L payload fill...]; L is the payload length.
func (s *Single) MarshalData() ([]byte, error) {
	if len(s.Payload) > MaxSinglePayload {
		return nil, fmt.Errorf("%w: single payload %d exceeds %d bytes",
			ErrMalformed, len(s.Payload), MaxSinglePayload)
	}
	data := filledFrame()
	data[0] = pciSingle | byte(len(s.Payload))
	copy(data[1:], s.Payload)
	return data, nil
}

// MarshalData renders [0x1H L payload...]; H and L are the high 4 and low
// 8 bits of the declared total message length.
func (f *First) MarshalData() ([]byte, error) {
	if f.Length < 1 || f.Length > MaxMessageLength {
		return nil, fmt.Errorf("%w: first frame length %d outside [1,%d]",
			ErrMalformed, f.Length, MaxMessageLength)
	}
	if len(f.Payload) > FirstPayload {
		return nil, fmt.Errorf("%w: first payload %d exceeds %d bytes",
			ErrMalformed, len(f.Payload), FirstPayload)
	}
	data := filledFrame()
	data[0] = pciFirst | byte(f.Length>>8&0x0F)
	data[1] = byte(f.Length)
	copy(data[2:], f.Payload)
	return data, nil
}

// MarshalData renders [0x2S payload fill...]; S is the sequence index.
func (c *Consecutive) MarshalData() ([]byte, error) {
	if c.Sequence > MaxSequence {
		return nil, fmt.Errorf("%w: sequence index %d exceeds %d",
			ErrMalformed, c.Sequence, MaxSequence)
	}
	if len(c.Payload) > MaxConsecutivePayload {
		return nil, fmt.Errorf("%w: consecutive payload %d exceeds %d bytes",
			ErrMalformed, len(c.Payload), MaxConsecutivePayload)
	}
	data := filledFrame()
	data[0] = pciConsecutive | c.Sequence
	copy(data[1:], c.Payload)
	return data, nil
}

func filledFrame() []byte {
	data := make([]byte, lin.MaxFrameData)
	for i := range data {
		data[i] = FillByte
	}
	return data
}

// DecodePDU classifies the data area of a transport-capable frame by the
// high nibble of its lead byte. Any other tag, a field outside its range,
// or a declared length exceeding the bytes physically present in the frame
// fails with ErrMalformed; a declared length is never trusted without
// bound-checking it against the frame.
func DecodePDU(data []byte) (PDU, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty frame data", ErrMalformed)
	}

	switch data[0] & pciTypeMask {
	case pciSingle:
		length := int(data[0] & 0x0F)
		if length > MaxSinglePayload {
			return nil, fmt.Errorf("%w: single length %d exceeds %d",
				ErrMalformed, length, MaxSinglePayload)
		}
		if length > len(data)-1 {
			return nil, fmt.Errorf("%w: single declares %d bytes, frame holds %d",
				ErrMalformed, length, len(data)-1)
		}
		return &Single{Payload: clone(data[1 : 1+length])}, nil

	case pciFirst:
		if len(data) < 2 {
			return nil, fmt.Errorf("%w: first frame shorter than its length field", ErrMalformed)
		}
		total := int(data[0]&0x0F)<<8 | int(data[1])
		if total == 0 {
			return nil, fmt.Errorf("%w: first frame declares zero length", ErrMalformed)
		}
		payload := data[2:]
		if len(payload) > FirstPayload {
			payload = payload[:FirstPayload]
		}
		return &First{Length: total, Payload: clone(payload)}, nil

	case pciConsecutive:
		payload := data[1:]
		if len(payload) > MaxConsecutivePayload {
			payload = payload[:MaxConsecutivePayload]
		}
		return &Consecutive{Sequence: data[0] & 0x0F, Payload: clone(payload)}, nil

	default:
		return nil, fmt.Errorf("%w: unknown pci type 0x%02X", ErrMalformed, data[0]&pciTypeMask)
	}
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
