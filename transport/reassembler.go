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

package transport

import (
	"fmt"

	lin "github.com/openlin/go-lin"
)

// State is the reassembler's transfer state.
type State string

const (
	// StateIdle means no multi-frame transfer is in progress.
	StateIdle State = "idle"
	// StateAssembling means a First has been accepted and consecutive
	// segments are being accumulated.
	StateAssembling State = "assembling"
)

// SequenceError reports a consecutive segment whose sequence index is not
// the expected next value. It unwraps to ErrSequence.
type SequenceError struct {
	Expected byte
	Got      byte
}

func (e *SequenceError) Error() string {
	return fmt.Sprintf("sequence fault: expected index %d, got %d", e.Expected, e.Got)
}

func (e *SequenceError) Unwrap() error {
	return ErrSequence
}

// Reassembler accumulates transport segments from one logical channel into
// complete messages. At most one transfer is in progress at a time; a new
// Single or First always wins over an unfinished transfer, and any
// sequencing violation discards the partial message rather than delivering
// it. Transitions are deterministic functions of (state, segment) with no
// timing dependency.
//
// A Reassembler is not safe for concurrent use; give each channel its own.
// Discarding a Reassembler discards any partial message, there is nothing
// to clean up.
type Reassembler struct {
	buf      []byte
	expected int
	seq      byte
	state    State
}

// NewReassembler creates an idle reassembler.
func NewReassembler() *Reassembler {
	return &Reassembler{state: StateIdle}
}

// State returns the current transfer state.
func (r *Reassembler) State() State {
	return r.state
}

// Reset discards any in-progress transfer and returns to idle.
func (r *Reassembler) Reset() {
	r.state = StateIdle
	r.buf = nil
	r.expected = 0
	r.seq = 0
}

// Feed consumes one segment. It returns (message, nil) when the segment
// completes a message, (nil, nil) when the transfer is still in progress,
// and (nil, err) on a fault. A fault resets only this reassembler's state;
// partial data is never delivered.
func (r *Reassembler) Feed(pdu PDU) ([]byte, error) {
	switch p := pdu.(type) {
	case *Single:
		return r.feedSingle(p)
	case *First:
		return r.feedFirst(p)
	case *Consecutive:
		return r.feedConsecutive(p)
	default:
		return nil, fmt.Errorf("%w: unknown segment %T", ErrMalformed, pdu)
	}
}

// FeedFrame decodes the PCI of a received frame's data and feeds the
// resulting segment. The frame has already passed parity and checksum
// validation when it was decoded; PCI classification comes after both.
func (r *Reassembler) FeedFrame(frame *lin.Frame) ([]byte, error) {
	pdu, err := DecodePDU(frame.Data())
	if err != nil {
		return nil, err
	}
	return r.Feed(pdu)
}

func (r *Reassembler) feedSingle(s *Single) ([]byte, error) {
	// a newer message always wins over an unfinished transfer
	r.Reset()
	if len(s.Payload) > MaxSinglePayload {
		return nil, fmt.Errorf("%w: single payload %d exceeds %d bytes",
			ErrMalformed, len(s.Payload), MaxSinglePayload)
	}
	return clone(s.Payload), nil
}

func (r *Reassembler) feedFirst(f *First) ([]byte, error) {
	r.Reset()
	if f.Length < 1 || f.Length > MaxMessageLength {
		return nil, fmt.Errorf("%w: first frame length %d outside [1,%d]",
			ErrMalformed, f.Length, MaxMessageLength)
	}

	payload := f.Payload
	if len(payload) > f.Length {
		payload = payload[:f.Length]
	}
	if len(payload) == f.Length {
		// declared total already satisfied by the first chunk
		return clone(payload), nil
	}

	r.state = StateAssembling
	r.expected = f.Length
	r.seq = 0
	r.buf = make([]byte, 0, f.Length)
	r.buf = append(r.buf, payload...)
	return nil, nil
}

func (r *Reassembler) feedConsecutive(c *Consecutive) ([]byte, error) {
	if r.state != StateAssembling {
		return nil, fmt.Errorf("%w: consecutive segment with no transfer in progress", ErrSequence)
	}

	want := (r.seq + 1) & MaxSequence
	if c.Sequence != want {
		r.Reset()
		return nil, &SequenceError{Expected: want, Got: c.Sequence}
	}
	r.seq = want

	chunk := c.Payload
	if remain := r.expected - len(r.buf); len(chunk) > remain {
		// final chunk, drop the fill bytes beyond the declared total
		chunk = chunk[:remain]
	}
	r.buf = append(r.buf, chunk...)

	if len(r.buf) < r.expected {
		return nil, nil
	}
	message := r.buf
	r.Reset()
	return message, nil
}

// Segment splits a logical message into transport segments: one Single for
// up to MaxSinglePayload bytes, otherwise a First carrying the leading
// FirstPayload bytes followed by Consecutives of up to MaxConsecutivePayload
// bytes each, sequence indices starting at 1 and wrapping modulo 16.
func Segment(message []byte) ([]PDU, error) {
	if len(message) == 0 {
		return nil, ErrEmptyMessage
	}
	if len(message) > MaxMessageLength {
		return nil, ErrMessageTooLong
	}

	if len(message) <= MaxSinglePayload {
		return []PDU{&Single{Payload: clone(message)}}, nil
	}

	pdus := []PDU{&First{Length: len(message), Payload: clone(message[:FirstPayload])}}
	seq := byte(1)
	for rest := message[FirstPayload:]; len(rest) > 0; {
		n := len(rest)
		if n > MaxConsecutivePayload {
			n = MaxConsecutivePayload
		}
		pdus = append(pdus, &Consecutive{Sequence: seq, Payload: clone(rest[:n])})
		rest = rest[n:]
		seq = (seq + 1) & MaxSequence
	}
	return pdus, nil
}

// SegmentFrames segments a message and wraps every segment into a
// checksummed frame carrying the given identifier.
func SegmentFrames(pid lin.PID, message []byte) ([]*lin.Frame, error) {
	pdus, err := Segment(message)
	if err != nil {
		return nil, err
	}
	frames := make([]*lin.Frame, 0, len(pdus))
	for _, pdu := range pdus {
		data, err := pdu.MarshalData()
		if err != nil {
			return nil, err
		}
		frame, err := lin.NewFrame(pid, data)
		if err != nil {
			return nil, err
		}
		frames = append(frames, frame)
	}
	return frames, nil
}

// Reassemble feeds a full sequence of segments through a fresh reassembler
// and returns the completed message. It fails if the sequence does not end
// exactly one complete message.
func Reassemble(pdus []PDU) ([]byte, error) {
	r := NewReassembler()
	for i, pdu := range pdus {
		message, err := r.Feed(pdu)
		if err != nil {
			return nil, err
		}
		if message != nil {
			if i != len(pdus)-1 {
				return nil, fmt.Errorf("%w: message complete with %d segments left",
					ErrMalformed, len(pdus)-1-i)
			}
			return message, nil
		}
	}
	return nil, fmt.Errorf("%w: segments ended mid-transfer", ErrSequence)
}
