// go-nextion
// Copyright (c) 2025 The OpenHMI Project Contributors.
// SPDX-License-Identifier: LGPL-3.0-or-later
//
// This file is part of go-nextion.
//
// go-nextion is free software; you can redistribute it and/or
// modify it under the terms of the GNU Lesser General Public
// License as published by the Free Software Foundation; either
// version 3 of the License, or (at your option) any later version.
//
// go-nextion is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with go-nextion; if not, write to the Free Software Foundation,
// Inc., 51 Franklin Street, Fifth Floor, Boston, MA  02110-1301, USA.

// Package testing builds scripted display responses for tests.
package testing

import "fmt"

// Handshake describes the identification record a simulated display
// answers the connect command with.
type Handshake struct {
	Model           string
	FirmwareVersion string
	MCUCode         string
	SerialNumber    string
	FlashSize       string
	Touchscreen     bool
}

// DefaultHandshake returns a record matching a stock NX3224T024 display.
func DefaultHandshake() Handshake {
	return Handshake{
		Touchscreen:     true,
		Model:           "NX3224T024_011R",
		FirmwareVersion: "52",
		MCUCode:         "61488",
		SerialNumber:    "D264B8204F0E1828",
		FlashSize:       "16777216",
	}
}

// Build renders the record as the display sends it on the wire: the comok
// status line, six more comma-separated fields, and the trailing frame
// terminator.
func (h Handshake) Build() []byte {
	touch := "0"
	if h.Touchscreen {
		touch = "1"
	}
	body := fmt.Sprintf("comok %s,30601-0,%s,%s,%s,%s,%s",
		touch, h.Model, h.FirmwareVersion, h.MCUCode, h.SerialNumber, h.FlashSize)
	return append([]byte(body), 0xFF, 0xFF, 0xFF)
}

// Ack is the single-byte acknowledgement the display sends after the
// baud-switch command and each data chunk.
func Ack() []byte {
	return []byte{0x05}
}

// Nak is an arbitrary non-acknowledgement byte.
func Nak() []byte {
	return []byte{0x1A}
}
