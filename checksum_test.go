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
	"testing"
)

func TestEnhancedChecksum(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		pid  PID
		data []byte
		want byte
	}{
		{
			name: "single byte",
			pid:  PID(0xDD),
			data: []byte{0x01},
			want: 0x21,
		},
		{
			name: "carry folds back in",
			pid:  PID(0x4A),
			data: []byte{0x55, 0x93, 0xE5},
			want: 0xE6,
		},
		{
			name: "sum inverts to zero",
			pid:  PID(0xBF),
			data: []byte{0x40, 0xFF},
			want: 0x00,
		},
		{
			name: "empty data",
			pid:  PID(0x80),
			data: []byte{},
			want: 0x7F,
		},
	}

	for _, tt := range tests {
		tt := tt // capture loop variable
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := EnhancedChecksum(tt.pid, tt.data); got != tt.want {
				t.Errorf("EnhancedChecksum() = 0x%02X, want 0x%02X", got, tt.want)
			}
		})
	}
}

func TestClassicChecksum(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		data []byte
		want byte
	}{
		{
			name: "single byte",
			data: []byte{0x01},
			want: 0xFE,
		},
		{
			name: "full frame",
			data: []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08},
			want: 0xDB,
		},
		{
			name: "empty data",
			data: []byte{},
			want: 0xFF,
		},
	}

	for _, tt := range tests {
		tt := tt // capture loop variable
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ClassicChecksum(tt.data); got != tt.want {
				t.Errorf("ClassicChecksum() = 0x%02X, want 0x%02X", got, tt.want)
			}
		})
	}
}

// TestChecksumSelection verifies that the variant is derived from the
// identifier alone: diagnostic identifiers ignore the PID byte in the sum,
// all others include it.
func TestChecksumSelection(t *testing.T) {
	t.Parallel()
	data := []byte{0x10, 0x20, 0x30}

	for id := byte(0); id <= MaxID; id++ {
		pid, err := PIDFromID(id)
		if err != nil {
			t.Fatalf("PIDFromID(%d): %v", id, err)
		}

		want := EnhancedChecksum(pid, data)
		if id >= 60 {
			want = ClassicChecksum(data)
		}
		if got := ChecksumOf(pid, data); got != want {
			t.Errorf("ChecksumOf(id=%d) = 0x%02X, want 0x%02X", id, got, want)
		}
	}
}

func TestValidateChecksum(t *testing.T) {
	t.Parallel()
	pid := PID(0x4A)
	data := []byte{0x55, 0x93, 0xE5}
	sum := ChecksumOf(pid, data)

	if err := ValidateChecksum(pid, data, sum); err != nil {
		t.Fatalf("ValidateChecksum() on valid frame: %v", err)
	}

	// flipping any data byte must be detected
	for i := range data {
		corrupted := append([]byte(nil), data...)
		corrupted[i] ^= 0x01
		if err := ValidateChecksum(pid, corrupted, sum); !errors.Is(err, ErrChecksumMismatch) {
			t.Errorf("ValidateChecksum() with byte %d flipped = %v, want ErrChecksumMismatch", i, err)
		}
	}

	if err := ValidateChecksum(pid, data, sum^0xFF); !errors.Is(err, ErrChecksumMismatch) {
		t.Errorf("ValidateChecksum() with bad checksum byte = %v, want ErrChecksumMismatch", err)
	}
}
