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
	"time"
)

// Option is a functional option for configuring a Master
type Option func(*Master) error

// WithFrameDelay sets a pause inserted after every frame slot, modelling
// the inter-frame space of a schedule table.
func WithFrameDelay(delay time.Duration) Option {
	return func(m *Master) error {
		if delay < 0 {
			return errors.New("frame delay must not be negative")
		}
		m.frameDelay = delay
		return nil
	}
}

// WithReadTimeout sets the response timeout on the underlying driver.
func WithReadTimeout(timeout time.Duration) Option {
	return func(m *Master) error {
		return m.driver.SetTimeout(timeout)
	}
}
