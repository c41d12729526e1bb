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

package ldf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/openlin/go-lin/diagnostic"
)

func TestWithDefaultTiming(t *testing.T) {
	t.Parallel()

	product := diagnostic.ProductID{SupplierID: 0x005A, FunctionID: 0x0100, Variant: 1}
	attrs := WithDefaultTiming(0x0A, 0x0B, product)

	assert.Equal(t, diagnostic.NAD(0x0A), attrs.ConfiguredNAD)
	assert.Equal(t, diagnostic.NAD(0x0B), attrs.InitialNAD)
	assert.Equal(t, product, attrs.Product)
	assert.Equal(t, 50*time.Millisecond, attrs.P2Min)
	assert.Equal(t, time.Duration(0), attrs.STMin)
	assert.Equal(t, time.Second, attrs.NAsTimeout)
	assert.Equal(t, time.Second, attrs.NCrTimeout)
}
