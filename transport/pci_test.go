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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingle_MarshalData(t *testing.T) {
	t.Parallel()

	data, err := (&Single{Payload: []byte{0x01, 0x02, 0x03}}).MarshalData()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x03, 0x01, 0x02, 0x03, 0xFF, 0xFF, 0xFF, 0xFF}, data)

	data, err = (&Single{}).MarshalData()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, data)

	_, err = (&Single{Payload: make([]byte, 7)}).MarshalData()
	require.ErrorIs(t, err, ErrMalformed)
}

func TestFirst_MarshalData(t *testing.T) {
	t.Parallel()

	data, err := (&First{Length: 0x234, Payload: []byte{1, 2, 3, 4, 5, 6}}).MarshalData()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x12, 0x34, 1, 2, 3, 4, 5, 6}, data)

	_, err = (&First{Length: 0, Payload: []byte{1}}).MarshalData()
	require.ErrorIs(t, err, ErrMalformed)
	_, err = (&First{Length: MaxMessageLength + 1, Payload: []byte{1}}).MarshalData()
	require.ErrorIs(t, err, ErrMalformed)
	_, err = (&First{Length: 20, Payload: make([]byte, 7)}).MarshalData()
	require.ErrorIs(t, err, ErrMalformed)
}

func TestConsecutive_MarshalData(t *testing.T) {
	t.Parallel()

	data, err := (&Consecutive{Sequence: 5, Payload: []byte{1, 2, 3, 4, 5, 6, 7}}).MarshalData()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x25, 1, 2, 3, 4, 5, 6, 7}, data)

	// final chunk padded with fill bytes
	data, err = (&Consecutive{Sequence: 2, Payload: []byte{0xAB}}).MarshalData()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x22, 0xAB, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, data)

	_, err = (&Consecutive{Sequence: 16, Payload: []byte{1}}).MarshalData()
	require.ErrorIs(t, err, ErrMalformed)
	_, err = (&Consecutive{Sequence: 1, Payload: make([]byte, 8)}).MarshalData()
	require.ErrorIs(t, err, ErrMalformed)
}

func TestDecodePDU(t *testing.T) {
	t.Parallel()

	t.Run("single", func(t *testing.T) {
		t.Parallel()
		pdu, err := DecodePDU([]byte{0x02, 0xAA, 0xBB, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF})
		require.NoError(t, err)
		single, ok := pdu.(*Single)
		require.True(t, ok)
		assert.Equal(t, []byte{0xAA, 0xBB}, single.Payload)
	})

	t.Run("first", func(t *testing.T) {
		t.Parallel()
		pdu, err := DecodePDU([]byte{0x10, 0x14, 1, 2, 3, 4, 5, 6})
		require.NoError(t, err)
		first, ok := pdu.(*First)
		require.True(t, ok)
		assert.Equal(t, 20, first.Length)
		assert.Equal(t, []byte{1, 2, 3, 4, 5, 6}, first.Payload)
	})

	t.Run("consecutive", func(t *testing.T) {
		t.Parallel()
		pdu, err := DecodePDU([]byte{0x21, 7, 8, 9, 10, 11, 12, 13})
		require.NoError(t, err)
		cf, ok := pdu.(*Consecutive)
		require.True(t, ok)
		assert.Equal(t, byte(1), cf.Sequence)
		assert.Equal(t, []byte{7, 8, 9, 10, 11, 12, 13}, cf.Payload)
	})

	t.Run("sequence index wraps within nibble", func(t *testing.T) {
		t.Parallel()
		pdu, err := DecodePDU([]byte{0x2F, 1, 2, 3, 4, 5, 6, 7})
		require.NoError(t, err)
		assert.Equal(t, byte(15), pdu.(*Consecutive).Sequence)
	})
}

func TestDecodePDU_Malformed(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		data []byte
	}{
		{
			name: "empty data",
			data: []byte{},
		},
		{
			name: "unknown pci type",
			data: []byte{0x30, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			name: "reserved high nibble",
			data: []byte{0xF0, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			name: "single length above capacity",
			data: []byte{0x07, 1, 2, 3, 4, 5, 6, 7},
		},
		{
			// the declared length must never be trusted without checking
			// the bytes actually present in the frame
			name: "single declares more bytes than present",
			data: []byte{0x06, 0x01, 0x02},
		},
		{
			name: "first shorter than its length field",
			data: []byte{0x11},
		},
		{
			name: "first declares zero length",
			data: []byte{0x10, 0x00, 1, 2, 3, 4, 5, 6},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := DecodePDU(tt.data)
			require.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestPDU_WireRoundTrip(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		pdu  PDU
	}{
		{name: "single", pdu: &Single{Payload: []byte{1, 2, 3, 4, 5, 6}}},
		{name: "first", pdu: &First{Length: 100, Payload: []byte{1, 2, 3, 4, 5, 6}}},
		{name: "consecutive", pdu: &Consecutive{Sequence: 9, Payload: []byte{1, 2, 3, 4, 5, 6, 7}}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			data, err := tt.pdu.MarshalData()
			require.NoError(t, err)
			require.Len(t, data, 8)

			decoded, err := DecodePDU(data)
			require.NoError(t, err)
			assert.Equal(t, tt.pdu, decoded)
		})
	}
}
