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

// Package ldf holds the node attribute data found in LIN description files:
// the configured and initial node addresses, the product identifier and the
// diagnostic timing parameters.
package ldf

import (
	"time"

	"github.com/openlin/go-lin/diagnostic"
)

// Default timing parameters from the node attributes section of an LDF.
const (
	// DefaultP2Min is the minimum time between request and node response
	DefaultP2Min = 50 * time.Millisecond
	// DefaultSTMin is the minimum separation between transport frames
	DefaultSTMin = 0
	// DefaultNAsTimeout bounds transmission of a transport message
	DefaultNAsTimeout = time.Second
	// DefaultNCrTimeout bounds reception of a transport message
	DefaultNCrTimeout = time.Second
)

// NodeAttributes describes a slave node as configured in an LDF.
type NodeAttributes struct {
	ConfiguredNAD diagnostic.NAD
	InitialNAD    diagnostic.NAD
	Product       diagnostic.ProductID
	P2Min         time.Duration
	STMin         time.Duration
	NAsTimeout    time.Duration
	NCrTimeout    time.Duration
}

// WithDefaultTiming builds node attributes with the standard timing
// parameters.
func WithDefaultTiming(configured, initial diagnostic.NAD, product diagnostic.ProductID) NodeAttributes {
	return NodeAttributes{
		ConfiguredNAD: configured,
		InitialNAD:    initial,
		Product:       product,
		P2Min:         DefaultP2Min,
		STMin:         DefaultSTMin,
		NAsTimeout:    DefaultNAsTimeout,
		NCrTimeout:    DefaultNCrTimeout,
	}
}
