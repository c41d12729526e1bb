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

// Package diagnostic models the fixed-layout node identity records carried
// in LIN diagnostic messages: product identifier, serial number and node
// attributes. The records are derived views over a completed transport
// message; they hold no state of their own.
package diagnostic

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrTruncated indicates a message shorter than the record schema requires.
var ErrTruncated = errors.New("diagnostic message truncated")

// NAD is a node address for diagnostics.
type NAD byte

// Reserved node addresses
const (
	// NADSleep is reserved for go-to-sleep commands
	NADSleep NAD = 0x00
	// NADFunctional addresses a function rather than a node
	NADFunctional NAD = 0x7E
	// NADBroadcast addresses every node on the bus
	NADBroadcast NAD = 0x7F
)

// Diagnostic service identifiers
const (
	// SIDReadByIdentifier requests an identification record from a node
	SIDReadByIdentifier = 0xB2
	// RSIDOffset is added to a SID to form the positive response SID
	RSIDOffset = 0x40
)

// Identifiers accepted by read-by-identifier requests
const (
	// IdentifierProductID selects the LIN product identification record
	IdentifierProductID = 0x00
	// IdentifierSerialNumber selects the serial number record
	IdentifierSerialNumber = 0x01
)

// ProductID identifies the manufacturer and part of a node. Supplier and
// function IDs travel least-significant byte first.
type ProductID struct {
	SupplierID uint16
	FunctionID uint16
	Variant    byte
}

// productIDSize is the encoded width of a ProductID.
const productIDSize = 5

// Encode appends the 5-byte wire form of the product identifier to dst.
func (p ProductID) Encode(dst []byte) []byte {
	dst = binary.LittleEndian.AppendUint16(dst, p.SupplierID)
	dst = binary.LittleEndian.AppendUint16(dst, p.FunctionID)
	return append(dst, p.Variant)
}

// DecodeProductID reads a product identifier from the start of message.
func DecodeProductID(message []byte) (ProductID, error) {
	if len(message) < productIDSize {
		return ProductID{}, fmt.Errorf("%w: product id needs %d bytes, have %d",
			ErrTruncated, productIDSize, len(message))
	}
	return ProductID{
		SupplierID: binary.LittleEndian.Uint16(message[0:2]),
		FunctionID: binary.LittleEndian.Uint16(message[2:4]),
		Variant:    message[4],
	}, nil
}

// SerialNumber is a node's unique identifier, 4 bytes on the wire,
// least-significant byte first.
type SerialNumber uint32

// serialNumberSize is the encoded width of a SerialNumber.
const serialNumberSize = 4

// Encode appends the 4-byte wire form of the serial number to dst.
func (s SerialNumber) Encode(dst []byte) []byte {
	return binary.LittleEndian.AppendUint32(dst, uint32(s))
}

// DecodeSerialNumber reads a serial number from the start of message.
func DecodeSerialNumber(message []byte) (SerialNumber, error) {
	if len(message) < serialNumberSize {
		return 0, fmt.Errorf("%w: serial number needs %d bytes, have %d",
			ErrTruncated, serialNumberSize, len(message))
	}
	return SerialNumber(binary.LittleEndian.Uint32(message[:serialNumberSize])), nil
}

// ServiceMask is a bitmask of the diagnostic services a node supports.
// Bit n corresponds to SID 0xB0+n.
type ServiceMask uint16

// Supported-service flags
const (
	ServiceAssignNAD          ServiceMask = 1 << 0 // SID 0xB0
	ServiceAssignFrameID      ServiceMask = 1 << 1 // SID 0xB1
	ServiceReadByIdentifier   ServiceMask = 1 << 2 // SID 0xB2
	ServiceConditionalChange  ServiceMask = 1 << 3 // SID 0xB3
	ServiceDataDump           ServiceMask = 1 << 4 // SID 0xB4
	ServiceSaveConfiguration  ServiceMask = 1 << 6 // SID 0xB6
	ServiceAssignFrameIDRange ServiceMask = 1 << 7 // SID 0xB7
)

// Supports reports whether every service in mask is supported.
func (m ServiceMask) Supports(mask ServiceMask) bool {
	return m&mask == mask
}

// NodeAttributes aggregates a node's identity: address, product identifier,
// serial number and supported services.
//
// Record layout over a completed diagnostic message:
//
//	offset 0      NAD
//	offset 1..5   ProductID (supplier LE16, function LE16, variant)
//	offset 6..9   SerialNumber (LE32)
//	offset 10..11 ServiceMask (LE16)
type NodeAttributes struct {
	NAD      NAD
	Product  ProductID
	Serial   SerialNumber
	Services ServiceMask
}

// nodeAttributesSize is the encoded width of a NodeAttributes record.
const nodeAttributesSize = 1 + productIDSize + serialNumberSize + 2

// Encode serializes the record into a payload ready for transport-layer
// segmentation. The 12-byte record always spans more than one frame.
func (n NodeAttributes) Encode() []byte {
	buf := make([]byte, 0, nodeAttributesSize)
	buf = append(buf, byte(n.NAD))
	buf = n.Product.Encode(buf)
	buf = n.Serial.Encode(buf)
	return binary.LittleEndian.AppendUint16(buf, uint16(n.Services))
}

// DecodeNodeAttributes reads a node attribute record from a completed
// diagnostic message. Returns ErrTruncated if the message is shorter than
// the record.
func DecodeNodeAttributes(message []byte) (NodeAttributes, error) {
	if len(message) < nodeAttributesSize {
		return NodeAttributes{}, fmt.Errorf("%w: node attributes need %d bytes, have %d",
			ErrTruncated, nodeAttributesSize, len(message))
	}
	product, err := DecodeProductID(message[1:])
	if err != nil {
		return NodeAttributes{}, err
	}
	serial, err := DecodeSerialNumber(message[1+productIDSize:])
	if err != nil {
		return NodeAttributes{}, err
	}
	return NodeAttributes{
		NAD:      NAD(message[0]),
		Product:  product,
		Serial:   serial,
		Services: ServiceMask(binary.LittleEndian.Uint16(message[1+productIDSize+serialNumberSize:])),
	}, nil
}

// ReadByIdentifierRequest builds the payload of a master request asking a
// node for one of its identification records: NAD, SID, identifier, then
// the supplier and function IDs the node must match (wildcard 0x7FFF and
// 0xFFFF address any node).
func ReadByIdentifierRequest(nad NAD, identifier byte, supplierID, functionID uint16) []byte {
	buf := make([]byte, 0, 7)
	buf = append(buf, byte(nad), SIDReadByIdentifier, identifier)
	buf = binary.LittleEndian.AppendUint16(buf, supplierID)
	return binary.LittleEndian.AppendUint16(buf, functionID)
}
