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
	"fmt"
)

// Codec errors
var (
	// ErrInvalidID indicates a frame identifier outside 0..63
	ErrInvalidID = errors.New("identifier out of range")
	// ErrParity indicates a protected identifier byte whose parity bits
	// do not match its identifier bits
	ErrParity = errors.New("pid parity mismatch")
	// ErrChecksumMismatch indicates frame data that does not match its
	// checksum byte
	ErrChecksumMismatch = errors.New("checksum mismatch")
	// ErrDataTooLong indicates more than 8 data bytes for one frame
	ErrDataTooLong = errors.New("frame data exceeds 8 bytes")
	// ErrFrameTooShort indicates a wire buffer too short to hold a frame
	ErrFrameTooShort = errors.New("frame too short")
)

// Bus I/O errors
var (
	// ErrBusRead indicates a failed read from the hardware driver
	ErrBusRead = errors.New("bus read failed")
	// ErrBusWrite indicates a failed write to the hardware driver
	ErrBusWrite = errors.New("bus write failed")
	// ErrBusTimeout indicates a response that did not arrive in time
	ErrBusTimeout = errors.New("bus timeout")
	// ErrEchoMismatch indicates the transceiver echo did not match the
	// bytes written (bus collision or wiring fault)
	ErrEchoMismatch = errors.New("transceiver echo mismatch")
)

// ErrorType classifies errors for retry decisions made by the caller.
// This library never retries on its own; retry policy belongs to the bus
// scheduler.
type ErrorType string

const (
	// ErrorTypeTransient represents errors that may succeed on retry,
	// such as corruption of a single frame on the wire.
	ErrorTypeTransient ErrorType = "transient"
	// ErrorTypePermanent represents errors that will not succeed on retry,
	// such as invalid parameters.
	ErrorTypePermanent ErrorType = "permanent"
	// ErrorTypeTimeout represents timeout errors.
	ErrorTypeTimeout ErrorType = "timeout"
)

// BusError wraps an error from a hardware driver operation with context
// about the operation and port it occurred on.
type BusError struct {
	Err       error
	Op        string
	Port      string
	Type      ErrorType
	Retryable bool
}

// NewBusError creates a new BusError with the given classification.
func NewBusError(op, port string, err error, errType ErrorType) *BusError {
	return &BusError{
		Op:        op,
		Port:      port,
		Err:       err,
		Type:      errType,
		Retryable: errType != ErrorTypePermanent,
	}
}

// NewTimeoutError creates a BusError for an operation that timed out.
func NewTimeoutError(op, port string) *BusError {
	return &BusError{
		Op:        op,
		Port:      port,
		Err:       ErrBusTimeout,
		Type:      ErrorTypeTimeout,
		Retryable: true,
	}
}

func (e *BusError) Error() string {
	if e.Port != "" {
		return fmt.Sprintf("lin %s %s: %v", e.Op, e.Port, e.Err)
	}
	return fmt.Sprintf("lin %s: %v", e.Op, e.Err)
}

func (e *BusError) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether the error is worth retrying at the bus
// scheduling layer. Corruption errors are retryable because the next
// transmission of the same frame may arrive intact; parameter errors
// are not.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var busErr *BusError
	if errors.As(err, &busErr) {
		return busErr.Retryable
	}

	switch {
	case errors.Is(err, ErrParity),
		errors.Is(err, ErrChecksumMismatch),
		errors.Is(err, ErrFrameTooShort),
		errors.Is(err, ErrBusRead),
		errors.Is(err, ErrBusWrite),
		errors.Is(err, ErrBusTimeout),
		errors.Is(err, ErrEchoMismatch):
		return true
	default:
		return false
	}
}

// GetErrorType returns the classification of an error. Unknown errors are
// treated as permanent.
func GetErrorType(err error) ErrorType {
	if err == nil {
		return ErrorTypePermanent
	}

	var busErr *BusError
	if errors.As(err, &busErr) {
		return busErr.Type
	}

	switch {
	case errors.Is(err, ErrBusTimeout):
		return ErrorTypeTimeout
	case errors.Is(err, ErrParity),
		errors.Is(err, ErrChecksumMismatch),
		errors.Is(err, ErrFrameTooShort),
		errors.Is(err, ErrBusRead),
		errors.Is(err, ErrBusWrite),
		errors.Is(err, ErrEchoMismatch):
		return ErrorTypeTransient
	default:
		return ErrorTypePermanent
	}
}
