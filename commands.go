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

package nextion

import "time"

// Bootloader command verbs
const (
	cmdConnect = "connect"
	cmdWhmiWri = "whmi-wri"
)

// handshakeOK is the marker the display answers the connect command with.
const handshakeOK = "comok"

// ackByte is the single-byte acknowledgement the display sends after the
// baud-switch command and after every data chunk.
const ackByte = 0x05

// frameTerminator ends every command sent to the display. Data chunks are
// sent raw, without framing.
var frameTerminator = []byte{0xFF, 0xFF, 0xFF}

// negotiationBaudRates are probed in this order. The scan stops at the first
// rate the display answers on, so faster rates always win.
var negotiationBaudRates = []int{115200, 57600, 38400, 19200, 9600}

// DefaultUploadBaudRate is the rate the link is switched to for the data
// transfer phase.
const DefaultUploadBaudRate = 115200

const (
	// chunkSize is the transfer segment size the bootloader acknowledges.
	chunkSize = 4096

	// handshakeReadLimit bounds the connect response read.
	handshakeReadLimit = 128

	// handshakeFieldCount is the number of comma-separated fields in the
	// comok identification record.
	handshakeFieldCount = 7
)

const (
	// baudSwitchDelay gives the display time to process the whmi-wri
	// command before the host changes its own rate.
	baudSwitchDelay = 50 * time.Millisecond

	// chunkSettleDelay is the display's per-chunk processing time before
	// it emits the acknowledgement byte.
	chunkSettleDelay = 500 * time.Millisecond

	// ackTimeout bounds the single-byte acknowledgement reads.
	ackTimeout = 500 * time.Millisecond

	// chunkWriteTimeout is set on the port for the write phase of each chunk.
	chunkWriteTimeout = 5 * time.Second
)
